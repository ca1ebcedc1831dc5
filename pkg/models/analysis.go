package models

// KeywordEntry is one ranked keyword and how often it occurs in the article.
type KeywordEntry struct {
	Keyword   string `json:"keyword"`
	Frequency int    `json:"frequency"`
}

// AnalysisResult is the output of analyzing a single article text.
// Zero-valued fields are meaningful: an empty text yields a zero result.
type AnalysisResult struct {
	SentimentScore      float64        `json:"sentiment_score"` // -1.0 to +1.0
	TopKeywords         []KeywordEntry `json:"top_keywords"`    // descending frequency
	WordsCount          int            `json:"words_count"`
	SentencesCount      int            `json:"sentences_count"`
	AvgWordsPerSentence float64        `json:"avg_words_per_sentence"`
}

// SentimentLabel returns a coarse human label for the sentiment score.
func (r AnalysisResult) SentimentLabel() string {
	switch {
	case r.SentimentScore > 0.1:
		return "Positive"
	case r.SentimentScore < -0.1:
		return "Negative"
	default:
		return "Neutral"
	}
}
