package atmosphere

// AerosolTransmission returns the fraction of irradiance surviving
// aerosol scattering for a given solar elevation. Low sun angles take a
// longer path through the aerosol layer and lose more. The breakpoints
// are fixed; historical sessions depend on these exact values.
func AerosolTransmission(elevationDeg float64) float64 {
	switch {
	case elevationDeg < 0:
		return 0
	case elevationDeg < 10:
		return 0.85
	case elevationDeg < 20:
		return 0.90
	case elevationDeg < 30:
		return 0.93
	default:
		return 0.95
	}
}
