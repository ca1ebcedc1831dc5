// Package report renders analyzed articles: SVG charts, an HTML report
// page and a plain-text terminal report.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/seenimoa/newsnugget/internal/chartdata"
	"github.com/seenimoa/newsnugget/pkg/models"
)

// ════════════════════════════════════════════════════════════════════
// SVG Chart Generator
// ════════════════════════════════════════════════════════════════════

// ChartConfig holds rendering parameters for SVG charts.
type ChartConfig struct {
	Width        int    // SVG width in pixels (default: 600)
	Height       int    // SVG height in pixels (default: 360)
	MarginTop    int    // top margin (default: 40)
	MarginRight  int    // right margin (default: 20)
	MarginBottom int    // bottom margin, holds the x labels (default: 70)
	MarginLeft   int    // left margin (default: 45)
	BgColor      string // background color (default: "#ffffff")
	GridColor    string // grid line color (default: "#e8e8e8")
	TextColor    string // axis label color (default: "#333333")
	FontSize     int    // axis label font size (default: 11)
	Title        string // chart title
}

// DefaultChartConfig returns sensible defaults for chart rendering.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Width:        600,
		Height:       360,
		MarginTop:    40,
		MarginRight:  20,
		MarginBottom: 70,
		MarginLeft:   45,
		BgColor:      "#ffffff",
		GridColor:    "#e8e8e8",
		TextColor:    "#333333",
		FontSize:     11,
	}
}

// WithWidth returns the default config scaled to width, keeping a 5:3 ratio.
func WithWidth(width int) ChartConfig {
	cfg := DefaultChartConfig()
	if width > 0 {
		cfg.Width = width
		cfg.Height = width * 3 / 5
	}
	return cfg
}

// plotArea returns the usable drawing area dimensions.
func (c ChartConfig) plotArea() (x, y, w, h int) {
	return c.MarginLeft, c.MarginTop,
		c.Width - c.MarginLeft - c.MarginRight,
		c.Height - c.MarginTop - c.MarginBottom
}

// ════════════════════════════════════════════════════════════════════
// Keyword Bar Chart
// ════════════════════════════════════════════════════════════════════

// KeywordBarChart draws one vertical bar per point, in series order.
// Bar color deepens with frequency.
func KeywordBarChart(points []models.BarPoint, cfg ChartConfig) string {
	if cfg.Width == 0 {
		cfg = DefaultChartConfig()
	}
	if cfg.Title == "" {
		cfg.Title = "Top Keywords in the Article"
	}
	if len(points) == 0 {
		return emptySVG(cfg, "No keywords found")
	}

	px, py, pw, ph := cfg.plotArea()

	maxVal := 0
	for _, p := range points {
		maxVal = max(maxVal, p.Value)
	}
	maxVal = max(maxVal, 1)

	slot := float64(pw) / float64(len(points))
	barW := math.Min(slot*0.7, 48)

	var sb strings.Builder
	sb.WriteString(svgHeader(cfg))
	fmt.Fprintf(&sb, `<rect x="0" y="0" width="%d" height="%d" fill="%s"/>`,
		cfg.Width, cfg.Height, cfg.BgColor)
	fmt.Fprintf(&sb, `<text x="%d" y="22" font-size="14" font-weight="bold" fill="%s" text-anchor="middle">%s</text>`,
		cfg.Width/2, cfg.TextColor, escapeXML(cfg.Title))

	// Horizontal grid at integer frequencies
	step := gridStep(maxVal)
	for v := 0; v <= maxVal; v += step {
		gy := float64(py+ph) - float64(v)/float64(maxVal)*float64(ph)
		fmt.Fprintf(&sb, `<line x1="%d" y1="%.1f" x2="%d" y2="%.1f" stroke="%s" stroke-width="1"/>`,
			px, gy, px+pw, gy, cfg.GridColor)
		fmt.Fprintf(&sb, `<text x="%d" y="%.1f" font-size="%d" fill="%s" text-anchor="end">%d</text>`,
			px-6, gy+4, cfg.FontSize, cfg.TextColor, v)
	}

	for i, p := range points {
		bh := float64(p.Value) / float64(maxVal) * float64(ph)
		bx := float64(px) + float64(i)*slot + (slot-barW)/2
		by := float64(py+ph) - bh
		cx := bx + barW/2

		fmt.Fprintf(&sb, `<rect class="bar" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" rx="2"><title>%s: %d</title></rect>`,
			bx, by, barW, bh, blueScale(float64(p.Value)/float64(maxVal)), escapeXML(p.Label), p.Value)
		fmt.Fprintf(&sb, `<text x="%.1f" y="%.1f" font-size="%d" fill="%s" text-anchor="middle">%d</text>`,
			cx, by-4, cfg.FontSize, cfg.TextColor, p.Value)
		// Rotated label under the axis
		ly := py + ph + 12
		fmt.Fprintf(&sb, `<text x="%.1f" y="%d" font-size="%d" fill="%s" text-anchor="end" transform="rotate(-40 %.1f %d)">%s</text>`,
			cx, ly, cfg.FontSize, cfg.TextColor, cx, ly, escapeXML(p.Label))
	}

	fmt.Fprintf(&sb, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#999" stroke-width="1"/>`,
		px, py+ph, px+pw, py+ph)
	sb.WriteString("</svg>")
	return sb.String()
}

// gridStep picks a 1-2-5 spacing giving at most 6 grid lines.
func gridStep(maxVal int) int {
	for magnitude := 1; ; magnitude *= 10 {
		for _, m := range []int{1, 2, 5} {
			if step := m * magnitude; maxVal/step <= 5 {
				return step
			}
		}
	}
}

// blueScale interpolates from light to dark blue for t in [0, 1].
func blueScale(t float64) string {
	t = math.Max(0, math.Min(1, t))
	from := [3]float64{0xc6, 0xdb, 0xef}
	to := [3]float64{0x08, 0x30, 0x6b}
	var c [3]int
	for i := range c {
		c[i] = int(math.Round(from[i] + (to[i]-from[i])*t))
	}
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}

// ════════════════════════════════════════════════════════════════════
// Sentiment Gauge
// ════════════════════════════════════════════════════════════════════

// Zone colors of the sentiment dial.
const (
	colorLow    = "#ef5350" // red
	colorMedium = "#ffeb3b" // yellow
	colorHigh   = "#4caf50" // green
)

// SentimentGauge renders a 0-100 semicircular dial with red, yellow and
// green steps at 33 and 66 and a needle at the gauge value.
func SentimentGauge(g models.SentimentGauge, width int) string {
	if width <= 0 {
		width = 300
	}
	height := width/2 + 50

	cx := float64(width) / 2
	cy := float64(width)/2 + 20
	radius := float64(width)/2 - 20

	value := math.Max(0, math.Min(100, g.DisplayValue))

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif">`,
		width, height, width, height)
	fmt.Fprintf(&sb, `<rect width="%d" height="%d" fill="white"/>`, width, height)
	fmt.Fprintf(&sb, `<text x="%.1f" y="20" font-size="14" font-weight="bold" fill="#333" text-anchor="middle">Sentiment Score</text>`, cx)

	steps := []struct {
		from, to float64
		color    string
		zone     models.GaugeZone
	}{
		{0, chartdata.MediumThreshold, colorLow, models.ZoneLow},
		{chartdata.MediumThreshold, chartdata.HighThreshold, colorMedium, models.ZoneMedium},
		{chartdata.HighThreshold, 100, colorHigh, models.ZoneHigh},
	}
	for _, s := range steps {
		x1, y1 := gaugePoint(cx, cy, radius, s.from)
		x2, y2 := gaugePoint(cx, cy, radius, s.to)
		fmt.Fprintf(&sb, `<path class="zone-%s" d="M%.1f,%.1f A%.1f,%.1f 0 0,1 %.1f,%.1f" fill="none" stroke="%s" stroke-width="18"/>`,
			s.zone, x1, y1, radius, radius, x2, y2, s.color)
	}

	// Axis ticks
	for _, v := range []float64{0, 50, 100} {
		tx, ty := gaugePoint(cx, cy, radius+14, v)
		fmt.Fprintf(&sb, `<text x="%.1f" y="%.1f" font-size="10" fill="#666" text-anchor="middle">%.0f</text>`, tx, ty+4, v)
	}

	// Needle
	nx, ny := gaugePoint(cx, cy, radius*0.8, value)
	fmt.Fprintf(&sb, `<line class="needle" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#1a237e" stroke-width="3"/>`,
		cx, cy, nx, ny)
	fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="6" fill="#1a237e"/>`, cx, cy)

	fmt.Fprintf(&sb, `<text x="%.1f" y="%.1f" font-size="22" font-weight="bold" fill="#1a237e" text-anchor="middle">%.1f</text>`,
		cx, cy+28, value)

	sb.WriteString("</svg>")
	return sb.String()
}

// gaugePoint maps a 0-100 value onto the upper semicircle: 0 is at the
// left end, 100 at the right.
func gaugePoint(cx, cy, r, value float64) (float64, float64) {
	angle := math.Pi - (value/100)*math.Pi
	return cx + r*math.Cos(angle), cy - r*math.Sin(angle)
}

// ════════════════════════════════════════════════════════════════════
// Helpers
// ════════════════════════════════════════════════════════════════════

func svgHeader(cfg ChartConfig) string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif">`,
		cfg.Width, cfg.Height, cfg.Width, cfg.Height)
}

func emptySVG(cfg ChartConfig, msg string) string {
	if cfg.Width == 0 {
		cfg.Width = 400
	}
	if cfg.Height == 0 {
		cfg.Height = 200
	}
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d"><rect width="%d" height="%d" fill="#f5f5f5"/><text x="%d" y="%d" text-anchor="middle" fill="#999" font-size="14">%s</text></svg>`,
		cfg.Width, cfg.Height, cfg.Width, cfg.Height, cfg.Width/2, cfg.Height/2, escapeXML(msg))
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escapeXML(s string) string { return xmlEscaper.Replace(s) }
