package nugget

import (
	"log/slog"

	"github.com/seenimoa/newsnugget/internal/analysis"
	"github.com/seenimoa/newsnugget/internal/analysis/keywords"
	"github.com/seenimoa/newsnugget/internal/article"
	"github.com/seenimoa/newsnugget/internal/config"
)

// FromConfig wires a Service with an HTTP extractor and feed reader built
// from cfg.
func FromConfig(cfg *config.Config, logger *slog.Logger) *Service {
	opts := article.FetchOptions{
		Timeout:           cfg.Fetch.Timeout(),
		UserAgent:         cfg.Fetch.UserAgent,
		MaxBodyBytes:      cfg.Fetch.MaxBodyBytes,
		RatePerSecond:     cfg.Fetch.RateLimit,
		CacheTTL:          cfg.Fetch.CacheDuration(),
		AllowPrivateHosts: cfg.Fetch.AllowPrivateHosts,
	}
	ranker := keywords.New(
		keywords.WithTopN(cfg.Analysis.TopKeywords),
		keywords.WithStemming(cfg.Analysis.StemKeywords),
	)
	return New(
		article.NewExtractor(opts, cfg.Analysis.SummarySentences),
		article.NewFeedReader(opts),
		WithAnalyzer(analysis.New(analysis.WithRanker(ranker))),
		WithConcurrency(cfg.Feed.Concurrency),
		WithSummarySentences(cfg.Analysis.SummarySentences),
		WithLogger(logger),
	)
}
