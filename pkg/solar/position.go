// Package solar computes the sun's position and clear-sky irradiance
// for a geographic point at a given instant.
package solar

import (
	"math"
	"time"
)

// degToRad converts an angle from degrees to radians for trigonometric calculations
func degToRad(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}

// radToDeg converts an angle from radians to degrees for human-readable output
func radToDeg(rad float64) float64 {
	return rad * (180.0 / math.Pi)
}

// clamp constrains v to [lo, hi]
func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// Position is the sun's angular position: height above the horizon,
// angle from vertical, and compass direction.
type Position struct {
	ElevationDeg float64
	ZenithDeg    float64
	AzimuthDeg   float64
}

// CalculatePosition returns the solar position for the given UTC instant
// using Spencer's fractional-year Fourier series. Longitude acts as a
// direct time offset (4 minutes per degree); no timezone or DST lookup
// is involved. The result is always finite; night is signalled by a
// negative elevation, never by an error.
func CalculatePosition(t time.Time, latitude, longitude float64) Position {
	t = t.UTC()

	// Fractional year (radians), 1-based day of year
	gamma := 2 * math.Pi * float64(t.YearDay()-1) / 365.0

	// Solar declination (radians), Spencer series
	decl := 0.006918 -
		0.399912*math.Cos(gamma) +
		0.070257*math.Sin(gamma) -
		0.006758*math.Cos(2*gamma) +
		0.000907*math.Sin(2*gamma) -
		0.00205*math.Cos(3*gamma) +
		0.00029*math.Sin(3*gamma)

	// Equation of time (minutes), Spencer series
	eqTimeMin := 229.18 * (0.017645*math.Cos(gamma) -
		0.033827*math.Sin(gamma) -
		0.00969*math.Cos(2*gamma) -
		0.00569*math.Sin(2*gamma))

	// True solar time in minutes: UTC clock + EoT + 4 min per degree of longitude
	utcMin := float64(t.Hour()*60+t.Minute()) + float64(t.Second())/60.0
	solarMin := utcMin + eqTimeMin + longitude*4.0

	// Hour angle: solar noon = 0, 15 degrees per hour
	hourAngleRad := degToRad((solarMin/60.0 - 12.0) * 15.0)

	latRad := degToRad(latitude)
	sinEl := math.Sin(latRad)*math.Sin(decl) + math.Cos(latRad)*math.Cos(decl)*math.Cos(hourAngleRad)
	elRad := math.Asin(clamp(sinEl, -1, 1))
	elDeg := radToDeg(elRad)
	zenDeg := 90.0 - elDeg

	// Azimuth is meaningless below the horizon
	if elDeg <= 0 {
		return Position{ElevationDeg: elDeg, ZenithDeg: zenDeg, AzimuthDeg: 0}
	}

	azNum := math.Sin(decl) - math.Sin(elRad)*math.Sin(latRad)
	azDen := math.Cos(elRad) * math.Cos(latRad)
	azDeg := 180.0 // sun due south when the denominator degenerates (polar zenith)
	if azDen != 0 {
		azDeg = radToDeg(math.Acos(clamp(azNum/azDen, -1, 1)))
	}
	if math.Sin(hourAngleRad) > 0 {
		azDeg = 360.0 - azDeg
	}

	return Position{ElevationDeg: elDeg, ZenithDeg: zenDeg, AzimuthDeg: azDeg}
}
