package analysis

import (
	"math"

	"github.com/heliocast/heliocast/internal/types"
	"github.com/heliocast/heliocast/pkg/config"
)

// DetectAlerts evaluates the five independent alert rules against the
// series and its trends. "Current" means the first sample. An empty
// series raises no alerts.
func DetectAlerts(series types.Series, trends types.Trends, th config.AlertThresholds) types.Alerts {
	if len(series) == 0 {
		return types.Alerts{}
	}
	current := series[0]

	// Cloud alert fires on heavy current cover or on a large swing over
	// the next few hours
	cloudSwing := 0.0
	window := th.CloudSwingWindow
	if window > len(series) {
		window = len(series)
	}
	if window > 0 {
		minCloud, maxCloud := series[0].CloudCover, series[0].CloudCover
		for i := 1; i < window; i++ {
			minCloud = math.Min(minCloud, series[i].CloudCover)
			maxCloud = math.Max(maxCloud, series[i].CloudCover)
		}
		cloudSwing = maxCloud - minCloud
	}

	return types.Alerts{
		CloudCover:    current.CloudCover > th.CloudCoverPct || cloudSwing > th.CloudSwingPct,
		Temperature:   current.Temperature < th.TempLowC || current.Temperature > th.TempHighC,
		Wind:          current.WindSpeed > th.WindSpeedMS,
		Pressure:      math.Abs(trends.Pressure) > th.PressureTrendHPaH,
		Precipitation: current.Precipitation > th.PrecipitationMM,
	}
}
