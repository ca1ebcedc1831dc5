package sentiment

import (
	"math"
	"strings"

	"github.com/seenimoa/newsnugget/internal/analysis/tokenize"
)

// ------------------------------------------------------------------
// Lexicon-based polarity scorer (offline, deterministic).
// Each opinion word found in the text contributes its polarity; a
// preceding intensifier scales it and a nearby negation flips and
// dampens it. The article score is the mean contribution.
// ------------------------------------------------------------------

// Scorer maps a text to a polarity score in [-1, 1].
type Scorer interface {
	Score(text string) float64
}

// negationWindow is how many tokens before an opinion word are searched
// for a negation.
const negationWindow = 3

// negationFactor is applied to negated opinion words ("not good" is
// mildly negative, not the opposite of "good").
const negationFactor = -0.5

// Lexicon scores text against fixed word polarity tables.
// It holds only read-only data and is safe for concurrent use.
type Lexicon struct {
	words        map[string]float64
	phrases      map[string]float64
	intensifiers map[string]float64
	negations    map[string]bool
	tokenizer    tokenize.Tokenizer
}

// New returns a scorer backed by the bundled English lexicon.
func New() *Lexicon {
	return &Lexicon{
		words:        polarityWords,
		phrases:      polarityPhrases,
		intensifiers: intensifierWords,
		negations:    negationWords,
		tokenizer:    tokenize.New(),
	}
}

// Score returns the polarity of text, from -1.0 (very negative) to +1.0
// (very positive). Text without opinion words, including empty text, scores 0.
func (l *Lexicon) Score(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}

	words := l.tokenizer.Words(text)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}

	sum := 0.0
	matches := 0
	for i := 0; i < len(words); i++ {
		polarity, width, ok := l.lookup(words, i)
		if !ok {
			continue
		}

		if i > 0 {
			if factor, ok := l.intensifiers[words[i-1]]; ok {
				polarity = clamp(polarity * factor)
			}
		}
		if l.negated(words, i) {
			polarity *= negationFactor
		}

		sum += polarity
		matches++
		i += width - 1
	}

	if matches == 0 {
		return 0
	}
	return clamp(sum / float64(matches))
}

// lookup finds the opinion entry starting at words[i]. Two-word phrases
// take precedence over single words.
func (l *Lexicon) lookup(words []string, i int) (polarity float64, width int, ok bool) {
	if i+1 < len(words) {
		if p, found := l.phrases[words[i]+" "+words[i+1]]; found {
			return p, 2, true
		}
	}
	if p, found := l.words[words[i]]; found {
		return p, 1, true
	}
	return 0, 0, false
}

// negated reports whether a negation occurs shortly before words[i] within
// the same clause.
func (l *Lexicon) negated(words []string, i int) bool {
	for j := i - 1; j >= 0 && j >= i-negationWindow; j-- {
		w := words[j]
		if l.negations[w] {
			return true
		}
		if !tokenize.IsAlnum(w) {
			return false // clause boundary
		}
	}
	return false
}

func clamp(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
