package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/seenimoa/newsnugget/pkg/models"
	"github.com/seenimoa/newsnugget/pkg/utils"
)

// ════════════════════════════════════════════════════════════════════
// Report Generator: orchestrates chart + template rendering
// ════════════════════════════════════════════════════════════════════

// Format specifies the output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatHTML Format = "html"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatHTML:
		return f, nil
	case "":
		return FormatText, nil
	}
	return "", fmt.Errorf("unknown report format %q (want text, json or html)", s)
}

// Options controls report rendering.
type Options struct {
	ChartWidth   int // keyword chart width in pixels; the gauge is half as wide
	SummaryWords int // words of summary shown before "..."
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{ChartWidth: 600, SummaryWords: 100}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.ChartWidth <= 0 {
		o.ChartWidth = d.ChartWidth
	}
	if o.SummaryWords <= 0 {
		o.SummaryWords = d.SummaryWords
	}
	return o
}

// ════════════════════════════════════════════════════════════════════
// Report Data: flattened for template rendering
// ════════════════════════════════════════════════════════════════════

// ReportData is the template model passed to the HTML template.
type ReportData struct {
	// Header
	Title       string
	URL         string
	Website     string
	Authors     string
	PublishDate string
	TopImage    string
	GeneratedAt string

	Summary string

	// Sentiment
	SentimentScore string
	SentimentLabel string
	GaugeValue     string
	GaugeZone      string

	// Keywords
	Keywords []models.KeywordEntry

	// Text statistics
	Words     string
	Sentences string
	AvgWords  string

	// Charts (embedded SVG strings)
	KeywordChart template.HTML
	GaugeChart   template.HTML

	Text string
}

// ════════════════════════════════════════════════════════════════════
// Generate Report
// ════════════════════════════════════════════════════════════════════

// Render writes n to w in the requested format.
func Render(w io.Writer, n *models.Nugget, format Format, opts Options) error {
	var (
		out string
		err error
	)
	switch format {
	case FormatJSON:
		return GenerateJSON(w, n)
	case FormatHTML:
		out, err = GenerateHTML(n, opts)
	default:
		out, err = GenerateText(n, opts)
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// GenerateJSON writes n as indented JSON.
func GenerateJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

// GenerateHTML generates a standalone HTML report page for n.
func GenerateHTML(n *models.Nugget, opts Options) (string, error) {
	if n == nil {
		return "", fmt.Errorf("nugget is nil")
	}

	data := buildReportData(n, opts.withDefaults())

	tmpl, err := template.New("report").Parse(ReportTemplate)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}

// GenerateText generates a plain-text report (terminal / CLI friendly).
func GenerateText(n *models.Nugget, opts Options) (string, error) {
	if n == nil {
		return "", fmt.Errorf("nugget is nil")
	}

	data := buildReportData(n, opts.withDefaults())
	return renderTextReport(data), nil
}

// ════════════════════════════════════════════════════════════════════
// Internal: build template data
// ════════════════════════════════════════════════════════════════════

func buildReportData(n *models.Nugget, opts Options) ReportData {
	a := n.Article
	r := n.Analysis

	title := a.Title
	if title == "" {
		title = "Article Analysis"
	}
	website := a.Website
	if website == "" {
		website = utils.WebsiteName(a.URL)
	}
	if website == "" {
		website = utils.NotAvailable
	}

	keywords := r.TopKeywords
	if keywords == nil {
		keywords = []models.KeywordEntry{}
	}

	return ReportData{
		Title:       title,
		URL:         a.URL,
		Website:     website,
		Authors:     utils.JoinOrNA(a.Authors),
		PublishDate: utils.FormatPublishDate(a.PublishedAt),
		TopImage:    a.TopImage,
		GeneratedAt: ReportTimestamp(),

		Summary: utils.TruncateWords(a.Summary, opts.SummaryWords),

		SentimentScore: utils.FormatScore(r.SentimentScore),
		SentimentLabel: r.SentimentLabel(),
		GaugeValue:     fmt.Sprintf("%.1f", n.Charts.Gauge.DisplayValue),
		GaugeZone:      string(n.Charts.Gauge.Zone),

		Keywords: keywords,

		Words:     utils.FormatCount(r.WordsCount),
		Sentences: utils.FormatCount(r.SentencesCount),
		AvgWords:  fmt.Sprintf("%.2f", r.AvgWordsPerSentence),

		KeywordChart: template.HTML(KeywordBarChart(n.Charts.KeywordBars, WithWidth(opts.ChartWidth))),
		GaugeChart:   template.HTML(SentimentGauge(n.Charts.Gauge, opts.ChartWidth/2)),

		Text: a.Text,
	}
}

// ════════════════════════════════════════════════════════════════════
// Plain-text renderer
// ════════════════════════════════════════════════════════════════════

func renderTextReport(d ReportData) string {
	var sb strings.Builder
	line := strings.Repeat("═", 60)
	thinLine := strings.Repeat("─", 60)

	sb.WriteString("\n" + line + "\n")
	fmt.Fprintf(&sb, "  %s\n", d.Title)
	fmt.Fprintf(&sb, "  Generated: %s\n", d.GeneratedAt)
	sb.WriteString(line + "\n\n")

	// Article overview
	fmt.Fprintf(&sb, "  Website:      %s\n", d.Website)
	fmt.Fprintf(&sb, "  Authors:      %s\n", d.Authors)
	fmt.Fprintf(&sb, "  Publish Date: %s\n", d.PublishDate)
	if d.TopImage != "" {
		fmt.Fprintf(&sb, "  Image:        %s\n", d.TopImage)
	}
	sb.WriteString(thinLine + "\n")

	if d.Summary != "" {
		sb.WriteString("\n  ■ ARTICLE SUMMARY\n")
		fmt.Fprintf(&sb, "  %s\n", d.Summary)
		sb.WriteString(thinLine + "\n")
	}

	sb.WriteString("\n  ■ SENTIMENT\n")
	fmt.Fprintf(&sb, "  Score: %s (%s) | Gauge: %s/100 [%s]\n",
		d.SentimentScore, d.SentimentLabel, d.GaugeValue, d.GaugeZone)
	sb.WriteString(thinLine + "\n")

	sb.WriteString("\n  ■ TOP KEYWORDS\n")
	if len(d.Keywords) == 0 {
		sb.WriteString("    (none)\n")
	}
	maxFreq := 0
	for _, k := range d.Keywords {
		maxFreq = max(maxFreq, k.Frequency)
	}
	for i, k := range d.Keywords {
		bar := strings.Repeat("█", max(1, k.Frequency*30/max(maxFreq, 1)))
		fmt.Fprintf(&sb, "    %2d. %-18s %4d  %s\n", i+1, k.Keyword, k.Frequency, bar)
	}
	sb.WriteString(thinLine + "\n")

	sb.WriteString("\n  ■ TEXT STATISTICS\n")
	fmt.Fprintf(&sb, "    %-20s %s\n", "Total Words", d.Words)
	fmt.Fprintf(&sb, "    %-20s %s\n", "Total Sentences", d.Sentences)
	fmt.Fprintf(&sb, "    %-20s %s\n", "Avg Words/Sentence", d.AvgWords)

	sb.WriteString("\n" + line + "\n")
	return sb.String()
}

// ════════════════════════════════════════════════════════════════════
// Feed report
// ════════════════════════════════════════════════════════════════════

// GenerateFeedText renders a one-line-per-item summary of a feed batch.
func GenerateFeedText(fr *models.FeedReport) string {
	var sb strings.Builder
	line := strings.Repeat("═", 60)

	title := fr.FeedTitle
	if title == "" {
		title = fr.FeedURL
	}
	sb.WriteString("\n" + line + "\n")
	fmt.Fprintf(&sb, "  %s\n", title)
	fmt.Fprintf(&sb, "  %d of %d articles analyzed\n", fr.Succeeded(), len(fr.Entries))
	sb.WriteString(line + "\n\n")

	for i, e := range fr.Entries {
		name := e.Item.Title
		if name == "" {
			name = e.Item.URL
		}
		if e.Nugget == nil {
			fmt.Fprintf(&sb, "  %2d. %s\n      error: %s\n", i+1, name, e.Error)
			continue
		}
		r := e.Nugget.Analysis
		var top []string
		for j, k := range r.TopKeywords {
			if j == 3 {
				break
			}
			top = append(top, k.Keyword)
		}
		fmt.Fprintf(&sb, "  %2d. %s\n      %s %-8s | %s words | %s\n",
			i+1, name, utils.FormatScore(r.SentimentScore), r.SentimentLabel(),
			utils.FormatCount(r.WordsCount), strings.Join(top, ", "))
	}
	return sb.String()
}

// ════════════════════════════════════════════════════════════════════
// Utility: Timestamp
// ════════════════════════════════════════════════════════════════════

// ReportTimestamp returns the current UTC time formatted for report headers.
func ReportTimestamp() string {
	return time.Now().UTC().Format("02 Jan 2006, 15:04 UTC")
}
