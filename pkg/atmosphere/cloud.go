// Package atmosphere provides empirical atmospheric attenuation models:
// cloud impact, aerosol transmission, and direct/diffuse decomposition.
package atmosphere

import "math"

// CloudImpact returns an irradiance attenuation factor in (0, 1] for a
// given cloud cover percentage and air temperature. Temperature is only
// a crude stand-in for cloud altitude/type: warmer air tends to carry
// lower, optically thicker clouds.
func CloudImpact(cloudCoverPct, temperatureC float64) float64 {
	// Near-clear skies still scatter a little, so the factor tops out
	// below 1.0
	if cloudCoverPct < 10 {
		return 0.95
	}
	// Fully overcast floor
	if cloudCoverPct > 90 {
		return 0.15
	}

	opacity := math.Pow(cloudCoverPct/100.0, 1.3)

	tempFactor := (temperatureC + 5.0) / 45.0
	if tempFactor < 0.8 {
		tempFactor = 0.8
	} else if tempFactor > 1.0 {
		tempFactor = 1.0
	}

	reduction := 1.0 - opacity*tempFactor*0.85
	if reduction < 0.1 {
		return 0.1
	}
	// Thin cover attenuates at least as much as the near-clear floor;
	// keeps the factor non-increasing across the 10% seam
	if reduction > 0.95 {
		return 0.95
	}
	return reduction
}
