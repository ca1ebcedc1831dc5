// Package article downloads news pages and feeds and turns them into
// models.Article values: metadata, clean body text and an extractive
// summary. Failures are reported as *ValidationError, *FetchError or
// *ParseError.
package article

import (
	"context"
	"slices"

	"github.com/seenimoa/newsnugget/internal/infra"
	"github.com/seenimoa/newsnugget/pkg/models"
)

// Extractor fetches and parses article pages. Parsed articles are cached
// by URL. It is safe for concurrent use.
type Extractor struct {
	fetch     *fetcher
	cache     *infra.Cache[*models.Article]
	sentences int
}

// NewExtractor builds an Extractor. summarySentences < 1 selects
// DefaultSummarySentences.
func NewExtractor(opts FetchOptions, summarySentences int) *Extractor {
	opts = opts.withDefaults()
	if summarySentences < 1 {
		summarySentences = DefaultSummarySentences
	}
	return &Extractor{
		fetch:     newFetcher(opts),
		cache:     infra.NewCache[*models.Article](opts.CacheTTL),
		sentences: summarySentences,
	}
}

// Fetch downloads rawURL and extracts its article.
func (e *Extractor) Fetch(ctx context.Context, rawURL string) (*models.Article, error) {
	u, err := ValidateURL(rawURL)
	if err != nil {
		return nil, err
	}
	key := u.String()
	if a, ok := e.cache.Get(key); ok {
		return cloneArticle(a), nil
	}

	body, err := e.fetch.get(ctx, key, "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")
	if err != nil {
		return nil, err
	}

	a, err := Parse(key, body)
	if err != nil {
		return nil, err
	}
	a.Summary = Summarize(a.Title, a.Text, e.sentences)

	e.cache.Set(key, a)
	return cloneArticle(a), nil
}

// CachedArticles reports how many parsed articles the cache holds.
func (e *Extractor) CachedArticles() int { return e.cache.Len() }

// cloneArticle copies a so callers cannot modify the cached value.
func cloneArticle(a *models.Article) *models.Article {
	c := *a
	c.Authors = slices.Clone(a.Authors)
	if a.PublishedAt != nil {
		t := *a.PublishedAt
		c.PublishedAt = &t
	}
	return &c
}
