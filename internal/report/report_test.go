package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/seenimoa/newsnugget/internal/chartdata"
	"github.com/seenimoa/newsnugget/pkg/models"
)

// ════════════════════════════════════════════════════════════════════
// Test Helpers
// ════════════════════════════════════════════════════════════════════

func sampleNugget() *models.Nugget {
	published := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	result := models.AnalysisResult{
		SentimentScore: 0.8,
		TopKeywords: []models.KeywordEntry{
			{Keyword: "cat", Frequency: 2},
			{Keyword: "sat", Frequency: 1},
			{Keyword: "mat", Frequency: 1},
			{Keyword: "happy", Frequency: 1},
		},
		WordsCount:          12,
		SentencesCount:      2,
		AvgWordsPerSentence: 6,
	}
	return &models.Nugget{
		Article: models.Article{
			URL:         "https://www.example.com/2024/03/05/cats",
			Website:     "example.com",
			Title:       "Cat Sits On Mat",
			PublishedAt: &published,
			TopImage:    "https://www.example.com/cat.jpg",
			Summary:     "The cat sat on the mat.",
			Text:        "The cat sat on the mat. The cat was happy.",
		},
		Analysis: result,
		Charts:   chartdata.Build(result),
	}
}

// ════════════════════════════════════════════════════════════════════
// Chart Tests
// ════════════════════════════════════════════════════════════════════

func TestKeywordBarChart_Basic(t *testing.T) {
	points := []models.BarPoint{
		{Label: "cat", Value: 2},
		{Label: "sat", Value: 1},
		{Label: "mat", Value: 1},
	}
	svg := KeywordBarChart(points, DefaultChartConfig())

	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("expected a complete SVG document")
	}
	if got := strings.Count(svg, `class="bar"`); got != 3 {
		t.Errorf("expected 3 bars, got %d", got)
	}
	if !strings.Contains(svg, "Top Keywords in the Article") {
		t.Error("expected default title")
	}
	// Bars follow series order.
	if strings.Index(svg, "<title>cat: 2</title>") > strings.Index(svg, "<title>mat: 1</title>") {
		t.Error("expected bars in series order")
	}
}

func TestKeywordBarChart_Empty(t *testing.T) {
	svg := KeywordBarChart(nil, DefaultChartConfig())
	if !strings.Contains(svg, "No keywords found") {
		t.Error("expected empty message for nil points")
	}
	if strings.Contains(svg, `class="bar"`) {
		t.Error("expected no bars")
	}
}

func TestKeywordBarChart_EscapesLabels(t *testing.T) {
	cfg := DefaultChartConfig()
	cfg.Title = "R&D <news>"
	svg := KeywordBarChart([]models.BarPoint{{Label: `a<b>"c"`, Value: 1}}, cfg)
	if strings.Contains(svg, "<b>") || strings.Contains(svg, "<news>") {
		t.Error("expected markup in labels to be escaped")
	}
	if !strings.Contains(svg, "R&amp;D &lt;news&gt;") {
		t.Error("expected escaped title")
	}
}

func TestKeywordBarChart_ZeroConfig(t *testing.T) {
	svg := KeywordBarChart([]models.BarPoint{{Label: "x", Value: 3}}, ChartConfig{})
	if !strings.Contains(svg, `width="600"`) {
		t.Error("expected default width for zero config")
	}
}

func TestWithWidth(t *testing.T) {
	cfg := WithWidth(800)
	if cfg.Width != 800 || cfg.Height != 480 {
		t.Errorf("got %dx%d, want 800x480", cfg.Width, cfg.Height)
	}
	if def := WithWidth(0); def.Width != 600 || def.Height != 360 {
		t.Errorf("got %dx%d, want default 600x360", def.Width, def.Height)
	}
}

func TestGridStep(t *testing.T) {
	tests := []struct {
		max, want int
	}{
		{1, 1},
		{5, 1},
		{6, 2},
		{12, 5},
		{30, 10},
		{100, 20},
		{1000, 200},
	}
	for _, tt := range tests {
		if got := gridStep(tt.max); got != tt.want {
			t.Errorf("gridStep(%d): got %d, want %d", tt.max, got, tt.want)
		}
	}
}

func TestSentimentGauge_Values(t *testing.T) {
	tests := []struct {
		name  string
		gauge models.SentimentGauge
		label string
	}{
		{"low", models.SentimentGauge{DisplayValue: 15, Zone: models.ZoneLow}, "15.0"},
		{"neutral", models.SentimentGauge{DisplayValue: 50, Zone: models.ZoneMedium}, "50.0"},
		{"high", models.SentimentGauge{DisplayValue: 90, Zone: models.ZoneHigh}, "90.0"},
		{"clamped_max", models.SentimentGauge{DisplayValue: 150, Zone: models.ZoneHigh}, "100.0"},
		{"clamped_zero", models.SentimentGauge{DisplayValue: -10, Zone: models.ZoneLow}, "0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svg := SentimentGauge(tt.gauge, 300)
			if !strings.Contains(svg, ">"+tt.label+"</text>") {
				t.Errorf("expected value '%s' in output", tt.label)
			}
			for _, class := range []string{"zone-low", "zone-medium", "zone-high", "needle"} {
				if !strings.Contains(svg, `class="`+class+`"`) {
					t.Errorf("expected element with class %s", class)
				}
			}
		})
	}
}

func TestSentimentGauge_ZeroWidth(t *testing.T) {
	svg := SentimentGauge(models.SentimentGauge{DisplayValue: 50}, 0)
	if !strings.Contains(svg, `width="300"`) {
		t.Error("expected SVG with default width")
	}
}

// ════════════════════════════════════════════════════════════════════
// Report Generator Tests
// ════════════════════════════════════════════════════════════════════

func TestGenerateHTML_Basic(t *testing.T) {
	html, err := GenerateHTML(sampleNugget(), DefaultOptions())
	if err != nil {
		t.Fatalf("GenerateHTML failed: %v", err)
	}

	checks := []struct {
		name   string
		substr string
	}{
		{"html tag", "<html"},
		{"title", "Cat Sits On Mat"},
		{"website", "example.com"},
		{"authors", "N/A"},
		{"publish date", "March 05, 2024"},
		{"image", `src="https://www.example.com/cat.jpg"`},
		{"summary", "The cat sat on the mat...."},
		{"keyword chart", `class="bar"`},
		{"gauge chart", `class="zone-high"`},
		{"sentiment label", "Positive"},
		{"avg words", "6.00"},
		{"full text", "The cat was happy."},
		{"CSS", "font-family"},
	}

	for _, c := range checks {
		t.Run(c.name, func(t *testing.T) {
			if !strings.Contains(html, c.substr) {
				t.Errorf("expected '%s' in HTML output", c.substr)
			}
		})
	}
}

func TestGenerateHTML_Nil(t *testing.T) {
	if _, err := GenerateHTML(nil, DefaultOptions()); err == nil {
		t.Error("expected error for nil nugget")
	}
}

func TestGenerateHTML_EscapesArticleFields(t *testing.T) {
	n := sampleNugget()
	n.Article.Title = "<script>alert(1)</script>"
	html, err := GenerateHTML(n, Options{})
	if err != nil {
		t.Fatalf("GenerateHTML failed: %v", err)
	}
	if strings.Contains(html, "<script>alert") {
		t.Error("expected title to be escaped")
	}
}

func TestGenerateHTML_Minimal(t *testing.T) {
	n := &models.Nugget{Charts: chartdata.Build(models.AnalysisResult{})}
	html, err := GenerateHTML(n, Options{})
	if err != nil {
		t.Fatalf("GenerateHTML failed: %v", err)
	}
	if !strings.Contains(html, "Article Analysis") {
		t.Error("expected fallback title")
	}
	if !strings.Contains(html, "No keywords found") {
		t.Error("expected empty keyword chart")
	}
	if strings.Contains(html, "Article Summary") {
		t.Error("expected summary section to be omitted")
	}
}

func TestGenerateText_Basic(t *testing.T) {
	text, err := GenerateText(sampleNugget(), DefaultOptions())
	if err != nil {
		t.Fatalf("GenerateText failed: %v", err)
	}
	checks := []string{
		"Cat Sits On Mat",
		"Website:      example.com",
		"Authors:      N/A",
		"Publish Date: March 05, 2024",
		"ARTICLE SUMMARY",
		"Score: +0.80 (Positive) | Gauge: 90.0/100 [high]",
		"cat",
		"Avg Words/Sentence",
		"6.00",
	}
	for _, c := range checks {
		if !strings.Contains(text, c) {
			t.Errorf("expected %q in text output", c)
		}
	}
}

func TestGenerateText_NoKeywords(t *testing.T) {
	n := &models.Nugget{Charts: chartdata.Build(models.AnalysisResult{})}
	text, err := GenerateText(n, Options{})
	if err != nil {
		t.Fatalf("GenerateText failed: %v", err)
	}
	if !strings.Contains(text, "(none)") {
		t.Error("expected placeholder for empty keyword list")
	}
	if !strings.Contains(text, "[medium]") {
		t.Error("expected neutral gauge zone")
	}
}

func TestGenerateText_Nil(t *testing.T) {
	if _, err := GenerateText(nil, DefaultOptions()); err == nil {
		t.Error("expected error for nil nugget")
	}
}

func TestRender(t *testing.T) {
	n := sampleNugget()

	var buf bytes.Buffer
	if err := Render(&buf, n, FormatJSON, DefaultOptions()); err != nil {
		t.Fatalf("Render json: %v", err)
	}
	var decoded models.Nugget
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if decoded.Analysis.WordsCount != 12 || decoded.Charts.Gauge.Zone != models.ZoneHigh {
		t.Errorf("unexpected decoded nugget: %+v", decoded.Analysis)
	}

	buf.Reset()
	if err := Render(&buf, n, FormatHTML, DefaultOptions()); err != nil {
		t.Fatalf("Render html: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "<!DOCTYPE html>") {
		t.Error("expected an HTML document")
	}

	buf.Reset()
	if err := Render(&buf, n, FormatText, DefaultOptions()); err != nil {
		t.Fatalf("Render text: %v", err)
	}
	if !strings.Contains(buf.String(), "TOP KEYWORDS") {
		t.Error("expected text report")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{" html ", FormatHTML, false},
		{"pdf", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q): err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerateFeedText(t *testing.T) {
	fr := &models.FeedReport{
		FeedURL:   "https://example.com/rss",
		FeedTitle: "Example News",
		Entries: []models.FeedEntry{
			{Item: models.FeedItem{Title: "Cats", URL: "https://example.com/a"}, Nugget: sampleNugget()},
			{Item: models.FeedItem{URL: "https://example.com/b"}, Error: "fetch https://example.com/b: HTTP 404 Not Found"},
		},
	}
	text := GenerateFeedText(fr)
	checks := []string{
		"Example News",
		"1 of 2 articles analyzed",
		"Cats",
		"+0.80 Positive",
		"cat, sat, mat",
		"https://example.com/b",
		"error: fetch https://example.com/b: HTTP 404 Not Found",
	}
	for _, c := range checks {
		if !strings.Contains(text, c) {
			t.Errorf("expected %q in feed text", c)
		}
	}
}
