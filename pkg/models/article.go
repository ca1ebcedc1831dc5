package models

import "time"

// Article is a downloaded and parsed news article.
// Only Text is analyzed; the rest is passed through for display.
type Article struct {
	URL         string     `json:"url"`
	Website     string     `json:"website"`
	Title       string     `json:"title"`
	Authors     []string   `json:"authors,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	TopImage    string     `json:"top_image,omitempty"`
	Summary     string     `json:"summary,omitempty"`
	Text        string     `json:"text"`
}

// FeedItem is a single entry read from an RSS/Atom feed.
type FeedItem struct {
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	Description string     `json:"description,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// Nugget bundles an article with its analysis and chart data.
type Nugget struct {
	Article  Article        `json:"article"`
	Analysis AnalysisResult `json:"analysis"`
	Charts   ChartSeries    `json:"charts"`
}

// FeedEntry is the outcome of analyzing one feed item.
// Exactly one of Nugget or Error is set.
type FeedEntry struct {
	Item   FeedItem `json:"item"`
	Nugget *Nugget  `json:"nugget,omitempty"`
	Error  string   `json:"error,omitempty"`
}

// FeedReport is the result of analyzing the newest items of a feed.
type FeedReport struct {
	FeedURL   string      `json:"feed_url"`
	FeedTitle string      `json:"feed_title"`
	Entries   []FeedEntry `json:"entries"`
}

// Succeeded returns the number of entries that were analyzed without error.
func (f FeedReport) Succeeded() int {
	n := 0
	for _, e := range f.Entries {
		if e.Nugget != nil {
			n++
		}
	}
	return n
}
