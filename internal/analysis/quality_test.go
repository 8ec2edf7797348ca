package analysis

import (
	"math"
	"testing"
	"time"

	"github.com/heliocast/heliocast/internal/types"
	"github.com/heliocast/heliocast/pkg/config"
)

func TestQualityScoreStableDry(t *testing.T) {
	// Perfectly steady weather is as forecastable as it gets
	series := flatSeries(24)
	got := QualityScore(series, config.DefaultQualityParams())
	if got != 0.99 {
		t.Errorf("quality = %v for a flat dry series, expected the 0.99 ceiling", got)
	}
}

func TestQualityScorePrecipitationDiscount(t *testing.T) {
	p := config.DefaultQualityParams()

	dry := flatSeries(24)
	wet := flatSeries(24)
	wet[5].Precipitation = 1.2

	dryScore := QualityScore(dry, p)
	wetScore := QualityScore(wet, p)
	if wetScore >= dryScore {
		t.Errorf("wet score %v, expected below dry score %v", wetScore, dryScore)
	}

	// Flat series: stabilities are both 1, so the wet score is exactly
	// the weighted sum with the discounted precipitation factor
	want := p.TempWeight + p.CloudWeight + p.PrecipWeight*p.WetPrecipFactor
	if math.Abs(wetScore-want) > 1e-9 {
		t.Errorf("wet score = %v, expected %v", wetScore, want)
	}
}

func TestQualityScoreVolatileWeather(t *testing.T) {
	series := flatSeries(24)
	for i := range series {
		// Wild hour-to-hour swings
		series[i].Temperature = float64((i % 2) * 30)
		series[i].CloudCover = float64((i % 2) * 100)
	}

	volatile := QualityScore(series, config.DefaultQualityParams())
	stable := QualityScore(flatSeries(24), config.DefaultQualityParams())
	if volatile >= stable {
		t.Errorf("volatile score %v, expected below stable score %v", volatile, stable)
	}
}

func TestQualityScoreBounds(t *testing.T) {
	start := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	for n := 2; n <= 48; n += 7 {
		series := make(types.Series, n)
		for i := 0; i < n; i++ {
			series[i] = types.Sample{
				Time:          start.Add(time.Duration(i) * time.Hour),
				Temperature:   -30 + float64((i*17)%70),
				CloudCover:    float64((i * 41) % 101),
				Precipitation: float64(i % 2),
			}
		}
		got := QualityScore(series, config.DefaultQualityParams())
		if got < 0.1 || got > 0.99 {
			t.Errorf("quality %v outside [0.1, 0.99] for n=%d", got, n)
		}
	}
}

func TestQualityScoreDegenerateSeries(t *testing.T) {
	p := config.DefaultQualityParams()
	if got := QualityScore(nil, p); got != 0.5 {
		t.Errorf("quality of empty series = %v, expected 0.5", got)
	}
	if got := QualityScore(flatSeries(1), p); got != 0.5 {
		t.Errorf("quality of single sample = %v, expected 0.5", got)
	}
}

func TestAnalyzeComposition(t *testing.T) {
	analyzer := NewAnalyzer(config.DefaultAlertThresholds(), config.DefaultQualityParams())

	series := flatSeries(24)
	series[0].CloudCover = 85
	for i := range series {
		series[i].Temperature = 10 + 0.5*float64(i)
	}

	got := analyzer.Analyze(series)

	if got.CurrentConditions.CloudCover != 85 {
		t.Errorf("current conditions cloud = %v, expected snapshot of sample 0", got.CurrentConditions.CloudCover)
	}
	if !got.Alerts.CloudCover {
		t.Error("expected cloud alert from 85% current cover")
	}
	if math.Abs(got.Trends.Temperature-0.5) > 1e-9 {
		t.Errorf("temperature trend = %v, expected 0.5", got.Trends.Temperature)
	}
	if got.ForecastQuality < 0.1 || got.ForecastQuality > 0.99 {
		t.Errorf("quality %v outside bounds", got.ForecastQuality)
	}
}

func TestAnalyzeEmptySeries(t *testing.T) {
	analyzer := NewAnalyzer(config.DefaultAlertThresholds(), config.DefaultQualityParams())
	got := analyzer.Analyze(nil)
	if got.ForecastQuality != 0.5 {
		t.Errorf("quality = %v for empty series, expected 0.5", got.ForecastQuality)
	}
	if got.Alerts != (types.Alerts{}) {
		t.Errorf("empty series raised alerts: %+v", got.Alerts)
	}
}
