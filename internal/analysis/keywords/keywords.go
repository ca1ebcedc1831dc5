// Package keywords ranks tokens by frequency.
package keywords

import (
	"sort"

	"github.com/kljensen/snowball"

	"github.com/seenimoa/newsnugget/pkg/models"
)

// DefaultTopN is the number of keywords reported when no limit is configured.
const DefaultTopN = 10

// Ranker counts token frequencies and returns the most frequent ones.
// Ties are broken by first occurrence, so the ranking is deterministic.
// A Ranker has no mutable state and is safe for concurrent use.
type Ranker struct {
	topN int
	stem bool
}

// Option configures a Ranker.
type Option func(*Ranker)

// WithTopN sets how many keywords are returned. Values < 1 select DefaultTopN.
func WithTopN(n int) Option {
	return func(r *Ranker) {
		if n > 0 {
			r.topN = n
		}
	}
}

// WithStemming groups tokens by their Snowball English stem before counting.
// The first surface form seen for a stem is reported as the keyword.
func WithStemming(enabled bool) Option {
	return func(r *Ranker) { r.stem = enabled }
}

// New returns a Ranker.
func New(opts ...Option) *Ranker {
	r := &Ranker{topN: DefaultTopN}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rank returns at most topN entries sorted by descending frequency.
// An empty token sequence yields an empty, non-nil slice.
func (r *Ranker) Rank(tokens []string) []models.KeywordEntry {
	index := make(map[string]int, len(tokens))
	entries := make([]models.KeywordEntry, 0, len(tokens))

	for _, tok := range tokens {
		key := tok
		if r.stem {
			key = stem(tok)
		}
		if i, ok := index[key]; ok {
			entries[i].Frequency++
			continue
		}
		index[key] = len(entries)
		entries = append(entries, models.KeywordEntry{Keyword: tok, Frequency: 1})
	}

	// entries are in first-occurrence order; a stable sort keeps that order for ties.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Frequency > entries[j].Frequency
	})

	if len(entries) > r.topN {
		entries = entries[:r.topN]
	}
	return entries
}

func stem(word string) string {
	s, err := snowball.Stem(word, "english", false)
	if err != nil || s == "" {
		return word
	}
	return s
}
