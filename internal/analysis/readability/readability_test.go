package readability

import (
	"math"
	"testing"

	"github.com/seenimoa/newsnugget/internal/analysis/tokenize"
)

func TestFromCounts(t *testing.T) {
	tests := []struct {
		name      string
		words     int
		sentences int
		wantAvg   float64
	}{
		{"zero sentences", 0, 0, 0},
		{"words without sentences", 5, 0, 0},
		{"even", 12, 2, 6},
		{"fraction", 10, 3, 10.0 / 3.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FromCounts(tt.words, tt.sentences)
			if s.Words != tt.words || s.Sentences != tt.sentences {
				t.Errorf("counts: got %d/%d, want %d/%d", s.Words, s.Sentences, tt.words, tt.sentences)
			}
			if math.Abs(s.AvgWordsPerSentence-tt.wantAvg) > 1e-9 {
				t.Errorf("avg: got %f, want %f", s.AvgWordsPerSentence, tt.wantAvg)
			}
		})
	}
}

// count mirrors how the analyzer feeds tokenizer output into FromCounts.
func count(text string) Stats {
	tok := tokenize.New()
	return FromCounts(len(tok.Words(text)), len(tok.Sentences(text)))
}

func TestTokenizedText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Stats
	}{
		{"two sentences", "The cat sat on the mat. The cat was happy.", Stats{Words: 12, Sentences: 2, AvgWordsPerSentence: 6}},
		{"no terminal punctuation", "breaking news from the wire", Stats{Words: 5, Sentences: 1, AvgWordsPerSentence: 5}},
		{"empty", "", Stats{}},
		{"whitespace", "  \n", Stats{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := count(tt.text); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
