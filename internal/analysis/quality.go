package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/heliocast/heliocast/internal/types"
	"github.com/heliocast/heliocast/pkg/config"
)

// degenerateQuality is returned for series too short to estimate
// variance. A sparse series is legitimate input, just low-information.
const degenerateQuality = 0.5

// QualityScore rates how forecastable the weather is over the first
// min(24, n) samples: steady temperature and cloud cover score high,
// any forecast precipitation discounts the result. The score is always
// within [0.1, 0.99].
func QualityScore(series types.Series, p config.QualityParams) float64 {
	n := len(series)
	if n > trendWindow {
		n = trendWindow
	}
	if n < 2 {
		return degenerateQuality
	}

	temps := make([]float64, n)
	clouds := make([]float64, n)
	wet := false
	for i := 0; i < n; i++ {
		temps[i] = series[i].Temperature
		clouds[i] = series[i].CloudCover
		if series[i].Precipitation > 0 {
			wet = true
		}
	}

	tempStability := math.Max(0.3, 1.0-math.Sqrt(stat.Variance(temps, nil))/p.TempStdScale)
	cloudStability := math.Max(0.3, 1.0-math.Sqrt(stat.Variance(clouds, nil))/p.CloudStdScale)

	precipFactor := 1.0
	if wet {
		precipFactor = p.WetPrecipFactor
	}

	score := p.TempWeight*tempStability + p.CloudWeight*cloudStability + p.PrecipWeight*precipFactor

	if score < 0.1 {
		return 0.1
	}
	if score > 0.99 {
		return 0.99
	}
	return score
}
