package analysis

import (
	"github.com/heliocast/heliocast/internal/types"
	"github.com/heliocast/heliocast/pkg/config"
)

// Analyzer summarizes a weather series into the trend/alert/quality
// report consumed by the presentation layer. It holds only threshold
// configuration; Analyze is a pure function of its input.
type Analyzer struct {
	alerts  config.AlertThresholds
	quality config.QualityParams
}

// NewAnalyzer creates an analyzer with the given thresholds.
func NewAnalyzer(alerts config.AlertThresholds, quality config.QualityParams) *Analyzer {
	return &Analyzer{alerts: alerts, quality: quality}
}

// Analyze runs trends, alerts and quality scoring once over the series.
// An empty series produces an empty snapshot with the degenerate
// quality fallback and no alerts.
func (a *Analyzer) Analyze(series types.Series) types.Analysis {
	if len(series) == 0 {
		return types.Analysis{ForecastQuality: degenerateQuality}
	}

	trends := AnalyzeTrends(series)

	return types.Analysis{
		CurrentConditions: series[0],
		Trends:            trends,
		Alerts:            DetectAlerts(series, trends, a.alerts),
		ForecastQuality:   QualityScore(series, a.quality),
	}
}
