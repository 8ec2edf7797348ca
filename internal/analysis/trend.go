// Package analysis derives short-term weather stability signals from an
// hourly series: per-channel trends, alert flags, and a composite
// forecast quality score.
package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/heliocast/heliocast/internal/types"
)

// trendWindow caps how many leading samples feed the trend and quality
// estimators. One day of hourly data is enough; older samples describe
// a different weather regime.
const trendWindow = 24

// TrendSlope fits an ordinary least-squares line to the first
// min(24, n) samples of one channel against its hour index, returning
// the slope in channel units per hour. Returns 0 for series shorter
// than two samples.
func TrendSlope(series types.Series, value func(types.Sample) float64) float64 {
	n := len(series)
	if n > trendWindow {
		n = trendWindow
	}
	if n < 2 {
		return 0
	}

	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = float64(i)
		ys[i] = value(series[i])
	}

	_, slope := stat.LinearRegression(xs, ys, nil, false)
	if math.IsNaN(slope) || math.IsInf(slope, 0) {
		return 0
	}
	return slope
}

// AnalyzeTrends computes the slope of each tracked weather channel
// independently.
func AnalyzeTrends(series types.Series) types.Trends {
	return types.Trends{
		Temperature: TrendSlope(series, func(s types.Sample) float64 { return s.Temperature }),
		CloudCover:  TrendSlope(series, func(s types.Sample) float64 { return s.CloudCover }),
		WindSpeed:   TrendSlope(series, func(s types.Sample) float64 { return s.WindSpeed }),
		Pressure:    TrendSlope(series, func(s types.Sample) float64 { return s.Pressure }),
		Humidity:    TrendSlope(series, func(s types.Sample) float64 { return s.Humidity }),
	}
}
