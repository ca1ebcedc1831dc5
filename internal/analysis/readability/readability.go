// Package readability computes simple text statistics: word count,
// sentence count and the average sentence length.
package readability

// Stats holds the readability figures for one text.
type Stats struct {
	Words               int
	Sentences           int
	AvgWordsPerSentence float64
}

// FromCounts builds Stats from raw counts. The average is 0 when there are
// no sentences.
func FromCounts(words, sentences int) Stats {
	s := Stats{Words: words, Sentences: sentences}
	if sentences > 0 {
		s.AvgWordsPerSentence = float64(words) / float64(sentences)
	}
	return s
}
