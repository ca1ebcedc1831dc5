package sentiment

// polarityWords maps lower-case opinion words to a polarity in [-1, 1].
var polarityWords = map[string]float64{
	// general positive
	"good": 0.7, "great": 0.8, "excellent": 1.0, "amazing": 0.6, "awesome": 1.0,
	"wonderful": 1.0, "fantastic": 0.4, "best": 1.0, "better": 0.5, "nice": 0.6,
	"happy": 0.8, "glad": 0.5, "pleased": 0.5, "love": 0.5, "loved": 0.7,
	"beautiful": 0.85, "brilliant": 0.9, "perfect": 1.0, "positive": 0.23,
	"success": 0.3, "successful": 0.75, "win": 0.8, "wins": 0.8, "won": 0.5,
	"hope": 0.3, "hopeful": 0.4, "optimistic": 0.5, "confident": 0.5,
	"strong": 0.43, "stronger": 0.45, "safe": 0.5, "secure": 0.4, "healthy": 0.5,
	"improve": 0.4, "improved": 0.4, "improvement": 0.4, "benefit": 0.4,
	"benefits": 0.4, "favorable": 0.5, "popular": 0.6, "impressive": 1.0,
	"remarkable": 0.75, "celebrate": 0.5, "celebrated": 0.5, "praise": 0.5,
	"praised": 0.5, "support": 0.3, "welcome": 0.8, "peaceful": 0.5,
	"progress": 0.4, "innovative": 0.5, "easy": 0.43, "fun": 0.3, "fair": 0.7,
	"free": 0.4, "interesting": 0.5, "important": 0.4, "valuable": 0.5,
	"effective": 0.6, "efficient": 0.5, "stable": 0.3, "record": 0.2,
	"thriving": 0.6, "breakthrough": 0.7, "recovery": 0.5, "rebound": 0.5,

	// market positive
	"bullish": 0.7, "rally": 0.6, "rallied": 0.6, "surge": 0.7, "surged": 0.7,
	"soar": 0.8, "soared": 0.8, "upbeat": 0.5, "growth": 0.4, "upgrade": 0.6,
	"upgraded": 0.6, "outperform": 0.6, "gain": 0.5, "gains": 0.5,
	"profit": 0.3, "profits": 0.3, "profitable": 0.5, "dividend": 0.4,
	"boost": 0.5, "boosted": 0.5, "beat": 0.5, "exceeds": 0.5, "exceeded": 0.5,
	"expansion": 0.4, "breakout": 0.6, "all-time": 0.3,

	// general negative
	"bad": -0.7, "worse": -0.4, "worst": -1.0, "poor": -0.4, "terrible": -1.0,
	"awful": -1.0, "horrible": -1.0, "sad": -0.5, "angry": -0.5, "upset": -0.5,
	"hate": -0.8, "hated": -0.9, "fear": -0.5, "fears": -0.5, "afraid": -0.6,
	"worried": -0.5, "worry": -0.4, "concern": -0.3, "concerns": -0.3,
	"negative": -0.3, "fail": -0.5, "failed": -0.5, "failure": -0.6,
	"wrong": -0.5, "difficult": -0.5, "hard": -0.29, "problem": -0.4,
	"problems": -0.4, "crisis": -0.7, "disaster": -0.8, "dangerous": -0.6,
	"danger": -0.6, "threat": -0.5, "risk": -0.3, "risky": -0.5, "weak": -0.4,
	"weaker": -0.45, "killed": -0.2, "death": -0.5, "dead": -0.2, "violent": -0.8,
	"violence": -0.8, "attack": -0.5, "war": -0.6, "conflict": -0.4,
	"corrupt": -0.5, "corruption": -0.6, "scandal": -0.6, "unfair": -0.5,
	"disappointing": -0.6, "disappointed": -0.75, "tragic": -0.75, "tragedy": -0.7,
	"damage": -0.4, "damaged": -0.4, "painful": -0.7, "injured": -0.5,
	"ugly": -0.7, "stupid": -0.8, "boring": -1.0, "uncertain": -0.3,
	"uncertainty": -0.3, "volatile": -0.3, "unstable": -0.4, "struggle": -0.4,
	"struggling": -0.4, "lawsuit": -0.4, "warning": -0.5, "warned": -0.4,

	// market negative
	"bearish": -0.7, "crash": -0.8, "crashed": -0.8, "plunge": -0.7,
	"plunged": -0.7, "slump": -0.6, "slumped": -0.6, "downgrade": -0.6,
	"downgraded": -0.6, "underperform": -0.6, "decline": -0.5, "declined": -0.5,
	"loss": -0.4, "losses": -0.4, "selloff": -0.7, "fall": -0.4, "fell": -0.4,
	"correction": -0.3, "default": -0.5, "fraud": -0.8, "scam": -0.8,
	"investigation": -0.3, "miss": -0.4, "missed": -0.4, "recession": -0.7,
	"layoffs": -0.6, "bankruptcy": -0.8, "inflation": -0.2, "debt": -0.2,
}

// polarityPhrases are two-word expressions scored as a unit.
var polarityPhrases = map[string]float64{
	"record high":    0.7,
	"record low":     -0.6,
	"beats estimate": 0.6,
	"well done":      0.8,
	"bad news":       -0.7,
	"good news":      0.7,
	"sell off":       -0.7,
	"not bad":        0.35,
}

// intensifierWords scale the polarity of the following opinion word.
var intensifierWords = map[string]float64{
	"very": 1.3, "really": 1.3, "extremely": 1.5, "incredibly": 1.4,
	"highly": 1.3, "so": 1.2, "too": 1.2, "quite": 1.1, "most": 1.2,
	"more": 1.1, "deeply": 1.4, "hugely": 1.4, "totally": 1.3,
	"slightly": 0.6, "somewhat": 0.7, "fairly": 0.8, "less": 0.7,
}

// negationWords flip the polarity of a nearby opinion word.
var negationWords = map[string]bool{
	"not": true, "n't": true, "no": true, "never": true, "nor": true,
	"without": true, "hardly": true, "neither": true, "nobody": true,
	"nothing": true,
}
