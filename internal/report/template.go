package report

// ReportTemplate is the HTML template for a single-article report.
// It is embedded as a Go constant, no external file dependencies.
const ReportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<style>
  :root {
    --bg: #ffffff;
    --text: #1a1a2e;
    --muted: #6b7280;
    --border: #e5e7eb;
    --accent: #2563eb;
    --green: #16a34a;
    --red: #dc2626;
    --section-bg: #f8fafc;
  }
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
    color: var(--text);
    background: var(--bg);
    line-height: 1.6;
    max-width: 900px;
    margin: 0 auto;
    padding: 20px;
  }
  h1, h2, h3 { font-weight: 600; }
  h1 { font-size: 1.5rem; margin-bottom: 4px; color: var(--accent); }
  h2 { font-size: 1.2rem; margin: 24px 0 12px; padding-bottom: 6px; border-bottom: 2px solid var(--accent); }
  p { margin: 6px 0; }
  .muted { color: var(--muted); font-size: 0.85rem; }

  .header { border-bottom: 3px solid var(--accent); padding-bottom: 12px; margin-bottom: 16px; }
  .meta-table { width: 100%; border-collapse: collapse; margin: 8px 0; }
  .meta-table td { padding: 4px 8px; border-bottom: 1px solid var(--border); }
  .meta-table td:first-child { color: var(--muted); width: 160px; }
  .top-image { max-width: 100%; border-radius: 6px; margin: 12px 0; }

  .summary-box {
    background: var(--section-bg);
    border-left: 4px solid var(--accent);
    padding: 12px 16px;
    margin: 12px 0;
  }
  .charts { display: flex; flex-wrap: wrap; gap: 16px; align-items: flex-start; }
  .chart-container { text-align: center; }

  .sentiment-positive { color: var(--green); font-weight: 600; }
  .sentiment-negative { color: var(--red); font-weight: 600; }
  .sentiment-neutral { color: var(--muted); font-weight: 600; }

  .stats-grid { display: grid; grid-template-columns: repeat(3, 1fr); gap: 12px; }
  .stat-card {
    background: var(--section-bg);
    border: 1px solid var(--border);
    border-radius: 6px;
    padding: 12px;
    text-align: center;
  }
  .stat-value { font-size: 1.4rem; font-weight: 700; }
  .article-text { white-space: pre-wrap; font-size: 0.95rem; }
  .footer { margin-top: 32px; padding-top: 12px; border-top: 1px solid var(--border); }
</style>
</head>
<body>

<div class="header">
  <h1>{{.Title}}</h1>
  <p class="muted">Generated {{.GeneratedAt}}{{if .URL}} · <a href="{{.URL}}">{{.URL}}</a>{{end}}</p>
</div>

<table class="meta-table">
  <tr><td>Website</td><td>{{.Website}}</td></tr>
  <tr><td>Authors</td><td>{{.Authors}}</td></tr>
  <tr><td>Publish Date</td><td>{{.PublishDate}}</td></tr>
</table>

{{if .TopImage}}<img class="top-image" src="{{.TopImage}}" alt="Article image">{{end}}

{{if .Summary}}
<h2>Article Summary</h2>
<div class="summary-box"><p>{{.Summary}}</p></div>
{{end}}

<h2>Analysis</h2>
<p>Sentiment:
  <span class="sentiment-{{if eq .SentimentLabel "Positive"}}positive{{else if eq .SentimentLabel "Negative"}}negative{{else}}neutral{{end}}">{{.SentimentScore}} ({{.SentimentLabel}})</span>
  <span class="muted">gauge {{.GaugeValue}}/100, {{.GaugeZone}} zone</span>
</p>
<div class="charts">
  <div class="chart-container">{{.KeywordChart}}</div>
  <div class="chart-container">{{.GaugeChart}}</div>
</div>

<h2>Text Statistics</h2>
<div class="stats-grid">
  <div class="stat-card"><div class="stat-value">{{.Words}}</div><div class="muted">Total Words</div></div>
  <div class="stat-card"><div class="stat-value">{{.Sentences}}</div><div class="muted">Total Sentences</div></div>
  <div class="stat-card"><div class="stat-value">{{.AvgWords}}</div><div class="muted">Avg Words per Sentence</div></div>
</div>

{{if .Text}}
<h2>Full Article Text</h2>
<div class="article-text">{{.Text}}</div>
{{end}}

<div class="footer muted">
  <p>Keyword counts exclude common English stop words. Sentiment is scored from a word lexicon and ranges from -1 to +1.</p>
</div>

</body>
</html>`
