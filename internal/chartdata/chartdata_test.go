package chartdata

import (
	"math"
	"reflect"
	"testing"

	"github.com/seenimoa/newsnugget/pkg/models"
)

func TestKeywordBars(t *testing.T) {
	entries := []models.KeywordEntry{
		{Keyword: "cat", Frequency: 2},
		{Keyword: "sat", Frequency: 1},
		{Keyword: "mat", Frequency: 1},
	}
	want := []models.BarPoint{
		{Label: "cat", Value: 2},
		{Label: "sat", Value: 1},
		{Label: "mat", Value: 1},
	}
	if got := KeywordBars(entries); !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestKeywordBarsEmpty(t *testing.T) {
	got := KeywordBars(nil)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil series, got %#v", got)
	}
}

func TestGauge(t *testing.T) {
	tests := []struct {
		score float64
		value float64
		zone  models.GaugeZone
	}{
		{-1, 0, models.ZoneLow},
		{-0.5, 25, models.ZoneLow},
		{-0.34, 33, models.ZoneMedium},
		{0, 50, models.ZoneMedium},
		{0.32, 66, models.ZoneHigh},
		{0.32 - 1e-15, 66, models.ZoneHigh},
		{-0.34 - 1e-15, 33, models.ZoneMedium},
		{-0.3400000001, 32.999999995, models.ZoneLow},
		{0.3199999999, 65.999999995, models.ZoneMedium},
		{0.8, 90, models.ZoneHigh},
		{1, 100, models.ZoneHigh},
	}
	for _, tt := range tests {
		g := Gauge(tt.score)
		if math.Abs(g.DisplayValue-tt.value) > 1e-9 {
			t.Errorf("Gauge(%v).DisplayValue = %v, want %v", tt.score, g.DisplayValue, tt.value)
		}
		if g.Zone != tt.zone {
			t.Errorf("Gauge(%v).Zone = %q, want %q", tt.score, g.Zone, tt.zone)
		}
	}
}

func TestDisplayValueClamped(t *testing.T) {
	for _, score := range []float64{-3, -1.0000001, 1.0000001, 7, math.NaN()} {
		v := DisplayValue(score)
		if v < 0 || v > 100 {
			t.Errorf("DisplayValue(%v) = %v out of [0, 100]", score, v)
		}
	}
}

func TestZoneFor(t *testing.T) {
	tests := map[float64]models.GaugeZone{
		0:         models.ZoneLow,
		32.999999: models.ZoneLow,
		33:        models.ZoneMedium,
		65.999999: models.ZoneMedium,
		66:        models.ZoneHigh,
		100:       models.ZoneHigh,
	}
	for v, want := range tests {
		if got := ZoneFor(v); got != want {
			t.Errorf("ZoneFor(%v) = %q, want %q", v, got, want)
		}
	}
}

func TestBuild(t *testing.T) {
	r := models.AnalysisResult{
		SentimentScore: 0.8,
		TopKeywords:    []models.KeywordEntry{{Keyword: "cat", Frequency: 2}},
	}
	cs := Build(r)
	if len(cs.KeywordBars) != 1 || cs.KeywordBars[0].Label != "cat" {
		t.Errorf("unexpected bars: %+v", cs.KeywordBars)
	}
	if cs.Gauge.Zone != models.ZoneHigh {
		t.Errorf("zone: got %q, want high", cs.Gauge.Zone)
	}
}
