package atmosphere

import (
	"math"

	"github.com/heliocast/heliocast/pkg/solar"
)

// Components splits global irradiance into its beam and scattered parts.
type Components struct {
	DNI float64 // Direct Normal Irradiance, W/m²
	DHI float64 // Diffuse Horizontal Irradiance, W/m²
}

// Decompose estimates the direct and diffuse components of a global
// horizontal irradiance value from the clearness index, using the
// elevation-dependent piecewise diffuse-fraction correlation in three
// clearness bands. Both components are non-negative; both are zero when
// the sun is below the horizon.
func Decompose(ghi, elevationDeg, cloudCoverPct float64) Components {
	if elevationDeg <= 0 || ghi <= 0 {
		return Components{}
	}

	sinEl := math.Sin(elevationDeg * math.Pi / 180.0)

	clearSky := solar.CalculateClearSkyGHI(elevationDeg, 90.0-elevationDeg)
	clearness := 0.0
	if clearSky > 0 {
		clearness = math.Min(1.0, ghi/clearSky)
	}

	var diffuseFraction float64
	switch {
	case clearness <= 0.3:
		diffuseFraction = 1.02 - 0.254*clearness + 0.0123*sinEl
	case clearness <= 0.78:
		diffuseFraction = 1.4 - 1.749*clearness + 0.177*sinEl
	default:
		diffuseFraction = 0.486*clearness - 0.182*sinEl
	}
	if diffuseFraction < 0 {
		diffuseFraction = 0
	} else if diffuseFraction > 1 {
		diffuseFraction = 1
	}

	dhi := ghi * diffuseFraction

	// The sine floor keeps DNI from blowing up just above the horizon
	dni := (ghi - dhi) / math.Max(0.01, sinEl)
	if dni < 0 {
		dni = 0
	}

	return Components{DNI: dni, DHI: dhi}
}
