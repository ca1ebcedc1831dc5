// Package nugget is the application service: it fetches articles, runs the
// analyzer and derives chart data, for a single URL, raw text or a whole
// feed.
package nugget

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/seenimoa/newsnugget/internal/analysis"
	"github.com/seenimoa/newsnugget/internal/article"
	"github.com/seenimoa/newsnugget/internal/chartdata"
	"github.com/seenimoa/newsnugget/internal/logging"
	"github.com/seenimoa/newsnugget/pkg/models"
)

// ArticleFetcher downloads and parses one article.
type ArticleFetcher interface {
	Fetch(ctx context.Context, url string) (*models.Article, error)
}

// FeedSource reads the items of an RSS/Atom feed.
type FeedSource interface {
	Read(ctx context.Context, feedURL string, limit int) (*article.Feed, error)
}

// DefaultFeedConcurrency bounds parallel article fetches in AnalyzeFeed.
const DefaultFeedConcurrency = 4

// Service analyzes articles end to end. It is safe for concurrent use.
type Service struct {
	fetcher          ArticleFetcher
	feeds            FeedSource
	analyzer         *analysis.Analyzer
	summarySentences int
	concurrency      int
	logger           *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithAnalyzer replaces the default analyzer.
func WithAnalyzer(a *analysis.Analyzer) Option {
	return func(s *Service) { s.analyzer = a }
}

// WithConcurrency sets how many feed items are analyzed at once.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithSummarySentences sets the summary length for AnalyzeText.
func WithSummarySentences(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.summarySentences = n
		}
	}
}

// WithLogger sets the logger. A nil logger keeps the default, which
// discards output.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Service.
func New(fetcher ArticleFetcher, feeds FeedSource, opts ...Option) *Service {
	s := &Service{
		fetcher:          fetcher,
		feeds:            feeds,
		analyzer:         analysis.New(),
		summarySentences: article.DefaultSummarySentences,
		concurrency:      DefaultFeedConcurrency,
		logger:           logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CachedArticles reports the size of the fetcher's article cache, or 0 when
// the fetcher does not cache.
func (s *Service) CachedArticles() int {
	if c, ok := s.fetcher.(interface{ CachedArticles() int }); ok {
		return c.CachedArticles()
	}
	return 0
}

// Build runs the analyzer over a's text and attaches chart data.
func (s *Service) Build(a models.Article) models.Nugget {
	result := s.analyzer.Analyze(a.Text)
	return models.Nugget{
		Article:  a,
		Analysis: result,
		Charts:   chartdata.Build(result),
	}
}

// AnalyzeText analyzes raw article text that was not fetched from a URL.
func (s *Service) AnalyzeText(text string) models.Nugget {
	return s.Build(models.Article{
		Text:    text,
		Summary: article.Summarize("", text, s.summarySentences),
	})
}

// AnalyzeURL fetches the article at url and analyzes it. Errors are the
// extractor's typed errors, unwrapped.
func (s *Service) AnalyzeURL(ctx context.Context, url string) (*models.Nugget, error) {
	start := time.Now()
	a, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		s.logger.Warn("article fetch failed", "url", url, "error", err)
		return nil, err
	}

	n := s.Build(*a)
	s.logger.Info("article analyzed",
		"url", url,
		"words", n.Analysis.WordsCount,
		"sentiment", n.Analysis.SentimentScore,
		"duration", time.Since(start))
	return &n, nil
}

// AnalyzeFeed reads feedURL and analyzes its first limit items concurrently.
// A failing item is recorded in its entry and does not stop the batch.
// Entries keep feed order.
func (s *Service) AnalyzeFeed(ctx context.Context, feedURL string, limit int) (*models.FeedReport, error) {
	feed, err := s.feeds.Read(ctx, feedURL, limit)
	if err != nil {
		return nil, fmt.Errorf("read feed: %w", err)
	}

	report := &models.FeedReport{
		FeedURL:   feedURL,
		FeedTitle: feed.Title,
		Entries:   make([]models.FeedEntry, len(feed.Items)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, item := range feed.Items {
		report.Entries[i].Item = item
		g.Go(func() error {
			n, err := s.AnalyzeURL(gctx, item.URL)
			if err != nil {
				report.Entries[i].Error = err.Error()
				return nil
			}
			if n.Article.Title == "" {
				n.Article.Title = item.Title
			}
			if n.Article.PublishedAt == nil {
				n.Article.PublishedAt = item.PublishedAt
			}
			report.Entries[i].Nugget = n
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return report, err
	}
	s.logger.Info("feed analyzed", "feed", feedURL, "items", len(report.Entries), "succeeded", report.Succeeded())
	return report, nil
}
