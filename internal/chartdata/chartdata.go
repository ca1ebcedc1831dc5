// Package chartdata derives presentation series from an analysis result.
// It does no rendering; see internal/report for the SVG output.
package chartdata

import (
	"math"

	"github.com/seenimoa/newsnugget/pkg/models"
)

// Zone thresholds on the 0-100 gauge dial.
const (
	MediumThreshold = 33.0
	HighThreshold   = 66.0
)

// KeywordBars maps keyword entries onto bar points in the same order.
func KeywordBars(entries []models.KeywordEntry) []models.BarPoint {
	points := make([]models.BarPoint, len(entries))
	for i, e := range entries {
		points[i] = models.BarPoint{Label: e.Keyword, Value: e.Frequency}
	}
	return points
}

// Gauge maps a sentiment score in [-1, 1] onto the 0-100 dial.
func Gauge(score float64) models.SentimentGauge {
	v := DisplayValue(score)
	return models.SentimentGauge{DisplayValue: v, Zone: ZoneFor(v)}
}

// DisplayValue returns score*50+50 rounded to 9 decimals and clamped to
// [0, 100]. Rounding absorbs float noise next to a zone boundary without
// moving genuinely smaller scores across it.
func DisplayValue(score float64) float64 {
	if math.IsNaN(score) {
		return 50
	}
	v := math.Round((score*50+50)*1e9) / 1e9
	return math.Max(0, math.Min(100, v))
}

// ZoneFor classifies a display value: [0,33) low, [33,66) medium,
// [66,100] high.
func ZoneFor(display float64) models.GaugeZone {
	switch {
	case display >= HighThreshold:
		return models.ZoneHigh
	case display >= MediumThreshold:
		return models.ZoneMedium
	default:
		return models.ZoneLow
	}
}

// Build derives both chart series from r.
func Build(r models.AnalysisResult) models.ChartSeries {
	return models.ChartSeries{
		KeywordBars: KeywordBars(r.TopKeywords),
		Gauge:       Gauge(r.SentimentScore),
	}
}
