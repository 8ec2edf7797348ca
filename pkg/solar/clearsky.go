package solar

import "math"

// CalculateClearSkyGHI computes the theoretical cloud-free Global
// Horizontal Irradiance (W/m²) for a given solar elevation and zenith
// angle, using the Kasten-Young airmass approximation with empirical
// transmission coefficients. Returns 0 when the sun is at or below the
// horizon. The airmass formula is valid for zenith angles below ~96°,
// which the elevation guard already ensures.
func CalculateClearSkyGHI(elevationDeg, zenithDeg float64) float64 {
	if elevationDeg <= 0 {
		return 0
	}

	zenRad := degToRad(zenithDeg)

	// Kasten-Young relative airmass
	airmass := 1.0 / (math.Cos(zenRad) + 0.50572*math.Pow(96.07995-zenithDeg, -1.6364))

	ghi := 910.6 * math.Exp(0.6797+0.00639*airmass) * math.Max(0, math.Cos(zenRad))
	if ghi < 0 {
		return 0
	}
	return ghi
}
