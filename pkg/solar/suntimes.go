package solar

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// SunTimes describes the daylight window for one calendar day at a
// location. Times are minutes from midnight UTC. Polar day and polar
// night are signalled by Polar=true with -1 sunrise/sunset.
type SunTimes struct {
	SunriseUTCMin   int  `json:"sunrise_utc_min"`
	SunsetUTCMin    int  `json:"sunset_utc_min"`
	SolarNoonUTCMin int  `json:"solar_noon_utc_min"`
	Polar           bool `json:"polar"`
}

// fixAngle normalizes an angle to the range [0, 360) degrees
func fixAngle(angle float64) float64 {
	return math.Mod(angle+360, 360)
}

// equationOfTime calculates the Equation of Time (minutes), the
// difference between apparent and mean solar time, from solar
// coordinates at the instant's Julian century. Higher accuracy than the
// Spencer series used in the forecast path, so it is preferred for the
// daylight-window metadata where no output-parity constraint applies.
func equationOfTime(t time.Time) float64 {
	jd := julian.TimeToJD(t.UTC())
	T := (jd - 2451545.0) / 36525.0 // Julian centuries since J2000.0

	L0 := fixAngle(280.46646 + T*(36000.76983+T*0.0003032))            // mean longitude of the Sun (degrees)
	M := fixAngle(357.52911 + T*(35999.05029-T*0.0001537))             // mean anomaly of the Sun (degrees)
	e := 0.016708634 - T*(0.000042037+T*0.0000001267)                  // eccentricity of Earth's orbit
	eps0 := 23 + (26+(21.448-T*(46.815+T*(0.00059-T*0.001813)))/60)/60 // mean obliquity of the ecliptic (degrees)

	y := math.Tan(degToRad(eps0)/2) * math.Tan(degToRad(eps0)/2)
	return radToDeg(y*math.Sin(degToRad(2*L0))-
		2*e*math.Sin(degToRad(M))+
		4*e*y*math.Sin(degToRad(M))*math.Cos(degToRad(2*L0))-
		0.5*y*y*math.Sin(degToRad(4*L0))-
		1.25*e*e*math.Sin(degToRad(2*M))) * 4 // convert to minutes (4 min/degree)
}

// CalculateSunTimes returns sunrise, sunset and solar noon for the
// calendar day containing t (UTC) at the given location.
func CalculateSunTimes(t time.Time, latitude, longitude float64) SunTimes {
	t = t.UTC()

	// Spencer declination for the day, matching the position calculator
	gamma := 2 * math.Pi * float64(t.YearDay()-1) / 365.0
	decl := 0.006918 -
		0.399912*math.Cos(gamma) +
		0.070257*math.Sin(gamma) -
		0.006758*math.Cos(2*gamma) +
		0.000907*math.Sin(2*gamma) -
		0.00205*math.Cos(3*gamma) +
		0.00029*math.Sin(3*gamma)

	// Hour angle at sunrise/sunset: cos(H) = -tan(lat)·tan(decl)
	cosH := -math.Tan(degToRad(latitude)) * math.Tan(decl)
	if cosH < -1.0 || cosH > 1.0 {
		// Midnight sun or polar night
		return SunTimes{SunriseUTCMin: -1, SunsetUTCMin: -1, SolarNoonUTCMin: -1, Polar: true}
	}

	noon := time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC)
	eotMin := equationOfTime(noon)

	// Solar noon in UTC minutes: 720 shifted by longitude (4 min/degree) and EoT
	solarNoonUTC := 720.0 - longitude*4.0 - eotMin

	halfDayMin := radToDeg(math.Acos(cosH)) / 15.0 * 60.0

	sunrise := math.Mod(solarNoonUTC-halfDayMin+1440, 1440)
	sunset := math.Mod(solarNoonUTC+halfDayMin+1440, 1440)

	return SunTimes{
		SunriseUTCMin:   int(math.Round(sunrise)),
		SunsetUTCMin:    int(math.Round(sunset)),
		SolarNoonUTCMin: int(math.Round(math.Mod(solarNoonUTC+1440, 1440))),
	}
}
