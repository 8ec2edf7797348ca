package forecast

import (
	"math"

	"github.com/heliocast/heliocast/internal/types"
)

// NightConfidence is the fixed confidence reported while the sun is
// below the horizon: the zero-irradiance prediction is near-certain.
const NightConfidence = 0.95

// estimateConfidence scores how trustworthy the prediction for sample i
// is, from local cloud variability, solar elevation, and temperature
// extremity. The result is always within [0.1, 1]. Neighboring samples
// are only read, never written, so the per-hour loop stays independent.
func estimateConfidence(series types.Series, i int, elevationDeg float64) float64 {
	if elevationDeg < 0 {
		return NightConfidence
	}

	// Cloud variability across the two neighboring hours; edges have no
	// neighbors and count as stable
	cloudVariance := 0.0
	if i-1 >= 0 && i+1 < len(series) {
		cloudVariance = math.Abs(series[i-1].CloudCover-series[i+1].CloudCover) / 100.0
	}
	cloudConfidence := 1.0 - 0.4*cloudVariance

	// Higher sun is easier to predict; saturates at 80° elevation
	elevationConfidence := math.Min(1.0, elevationDeg/80.0)

	tempConfidence := 0.9
	if t := series[i].Temperature; t < -10 || t > 40 {
		tempConfidence = 0.7
	}

	confidence := cloudConfidence * elevationConfidence * tempConfidence
	if confidence < 0.1 {
		return 0.1
	}
	return confidence
}
