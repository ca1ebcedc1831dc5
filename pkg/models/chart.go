package models

// GaugeZone classifies a sentiment gauge reading.
type GaugeZone string

const (
	ZoneLow    GaugeZone = "low"
	ZoneMedium GaugeZone = "medium"
	ZoneHigh   GaugeZone = "high"
)

// BarPoint is one bar in a keyword bar series.
type BarPoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// SentimentGauge is the sentiment score mapped onto a 0-100 dial.
type SentimentGauge struct {
	DisplayValue float64   `json:"display_value"`
	Zone         GaugeZone `json:"zone"`
}

// ChartSeries holds the presentation datasets derived from an AnalysisResult.
type ChartSeries struct {
	KeywordBars []BarPoint     `json:"keyword_bars"`
	Gauge       SentimentGauge `json:"gauge"`
}
