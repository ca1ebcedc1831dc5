// Package analysis turns article text into an AnalysisResult: sentiment,
// top keywords and readability statistics.
//
// The heavy lifting lives in the sub-packages (tokenize, stopwords, keywords,
// sentiment, readability). Analyzer wires them together and holds only
// read-only collaborators, so one value can serve concurrent callers.
package analysis

import (
	"github.com/seenimoa/newsnugget/internal/analysis/keywords"
	"github.com/seenimoa/newsnugget/internal/analysis/readability"
	"github.com/seenimoa/newsnugget/internal/analysis/sentiment"
	"github.com/seenimoa/newsnugget/internal/analysis/stopwords"
	"github.com/seenimoa/newsnugget/internal/analysis/tokenize"
	"github.com/seenimoa/newsnugget/pkg/models"
)

// Analyzer runs the text analytics pipeline.
type Analyzer struct {
	tokenizer tokenize.Tokenizer
	stopwords *stopwords.Set
	scorer    sentiment.Scorer
	ranker    *keywords.Ranker
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithTokenizer replaces the default Treebank tokenizer.
func WithTokenizer(t tokenize.Tokenizer) Option {
	return func(a *Analyzer) { a.tokenizer = t }
}

// WithStopwords replaces the bundled English stop-word set.
func WithStopwords(s *stopwords.Set) Option {
	return func(a *Analyzer) { a.stopwords = s }
}

// WithScorer replaces the lexicon sentiment scorer.
func WithScorer(s sentiment.Scorer) Option {
	return func(a *Analyzer) { a.scorer = s }
}

// WithRanker replaces the keyword ranker (top 10, no stemming by default).
func WithRanker(r *keywords.Ranker) Option {
	return func(a *Analyzer) { a.ranker = r }
}

// New builds an Analyzer with the bundled English resources unless
// overridden by opts.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		tokenizer: tokenize.New(),
		stopwords: stopwords.English(),
		scorer:    sentiment.New(),
		ranker:    keywords.New(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze computes the analytical summary of text. It never fails: empty
// text yields a zero result with an empty keyword list.
func (a *Analyzer) Analyze(text string) models.AnalysisResult {
	words := a.tokenizer.Words(text)
	sentences := a.tokenizer.Sentences(text)

	tokens := a.stopwords.Filter(tokenize.Normalize(words))
	stats := readability.FromCounts(len(words), len(sentences))

	return models.AnalysisResult{
		SentimentScore:      a.scorer.Score(text),
		TopKeywords:         a.ranker.Rank(tokens),
		WordsCount:          stats.Words,
		SentencesCount:      stats.Sentences,
		AvgWordsPerSentence: stats.AvgWordsPerSentence,
	}
}
