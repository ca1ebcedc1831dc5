package article

import (
	"bytes"
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"github.com/seenimoa/newsnugget/pkg/models"
)

// Feed is a parsed RSS or Atom feed.
type Feed struct {
	Title string
	Items []models.FeedItem
}

// FeedReader downloads and parses RSS/Atom feeds.
type FeedReader struct {
	fetch  *fetcher
	parser *gofeed.Parser
}

// NewFeedReader builds a FeedReader sharing the extractor's HTTP settings.
func NewFeedReader(opts FetchOptions) *FeedReader {
	return &FeedReader{
		fetch:  newFetcher(opts.withDefaults()),
		parser: gofeed.NewParser(),
	}
}

// Read fetches feedURL and returns at most limit items with a link, in feed
// order. limit <= 0 returns every item.
func (r *FeedReader) Read(ctx context.Context, feedURL string, limit int) (*Feed, error) {
	body, err := r.fetch.get(ctx, feedURL, "application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8")
	if err != nil {
		return nil, err
	}

	parsed, err := r.parser.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, &ParseError{URL: feedURL, Reason: "read feed", Err: err}
	}

	feed := &Feed{Title: strings.TrimSpace(parsed.Title)}
	for _, item := range parsed.Items {
		link := strings.TrimSpace(item.Link)
		if link == "" {
			continue
		}
		fi := models.FeedItem{
			Title:       strings.TrimSpace(item.Title),
			URL:         resolve(feedURL, link),
			Description: cleanHTML(item.Description),
		}
		if item.PublishedParsed != nil {
			t := *item.PublishedParsed
			fi.PublishedAt = &t
		} else if item.UpdatedParsed != nil {
			t := *item.UpdatedParsed
			fi.PublishedAt = &t
		}
		feed.Items = append(feed.Items, fi)
		if limit > 0 && len(feed.Items) == limit {
			break
		}
	}
	return feed, nil
}

// cleanHTML strips markup from a feed description.
func cleanHTML(s string) string {
	if s == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<body>" + s + "</body>"))
	if err != nil {
		return s
	}
	return collapse(doc.Text())
}
