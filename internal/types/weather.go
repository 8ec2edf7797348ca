// Package types defines the weather data model shared by the forecast
// engine and the analysis layer.
package types

import (
	"fmt"
	"math"
	"time"
)

// Defaults applied for missing required channels when a Series is built.
// Filling happens once, at the construction boundary, so the engine's
// per-sample math never has to handle absent values.
const (
	DefaultTemperature        = 25.0 // °C
	DefaultCloudCover         = 0.0  // percent
	DefaultShortwaveRadiation = 0.0  // W/m²
)

// Location is a geographic point in decimal degrees.
type Location struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// Validate rejects non-finite or out-of-range coordinates.
func (l Location) Validate() error {
	if math.IsNaN(l.Latitude) || math.IsInf(l.Latitude, 0) ||
		math.IsNaN(l.Longitude) || math.IsInf(l.Longitude, 0) {
		return fmt.Errorf("location has non-finite coordinates: lat=%v lon=%v", l.Latitude, l.Longitude)
	}
	if l.Latitude < -90 || l.Latitude > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", l.Latitude)
	}
	if l.Longitude < -180 || l.Longitude > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", l.Longitude)
	}
	return nil
}

// Sample is one hour of weather data. Temperature, CloudCover and
// ShortwaveRadiation are always populated (defaulted at construction);
// the remaining channels are zero when the upstream payload omits them.
type Sample struct {
	Time               time.Time `json:"time"`
	Temperature        float64   `json:"temperature"`         // °C
	CloudCover         float64   `json:"cloud_cover"`         // percent 0-100
	ShortwaveRadiation float64   `json:"shortwave_radiation"` // W/m²
	Humidity           float64   `json:"humidity"`            // percent 0-100
	WindSpeed          float64   `json:"wind_speed"`          // m/s
	WindDirection      float64   `json:"wind_direction"`      // degrees
	Pressure           float64   `json:"pressure"`            // hPa
	Precipitation      float64   `json:"precipitation"`       // mm
	UVIndex            float64   `json:"uv_index"`
	Visibility         float64   `json:"visibility"` // m
}

// Series is an hourly weather series ordered by timestamp ascending.
type Series []Sample

// At returns the sample whose timestamp equals t, if one exists.
// Lookups are keyed on timestamp equality rather than position so that
// two independently fetched series can be correlated safely.
func (s Series) At(t time.Time) (Sample, bool) {
	for i := range s {
		if s[i].Time.Equal(t) {
			return s[i], true
		}
	}
	return Sample{}, false
}

// JoinByTime overlays observed shortwave radiation onto a forecast
// series, matching rows by timestamp equality. Rows without a match are
// left untouched. The input series are not modified.
func JoinByTime(primary, observed Series) Series {
	out := make(Series, len(primary))
	copy(out, primary)
	if len(observed) == 0 {
		return out
	}

	byTime := make(map[int64]Sample, len(observed))
	for i := range observed {
		byTime[observed[i].Time.Unix()] = observed[i]
	}

	for i := range out {
		if obs, ok := byTime[out[i].Time.Unix()]; ok {
			out[i].ShortwaveRadiation = obs.ShortwaveRadiation
		}
	}
	return out
}

// ForecastPoint is one hour of predicted irradiance with its confidence.
type ForecastPoint struct {
	Time                time.Time `json:"time"`
	PredictedIrradiance float64   `json:"predicted_irradiance"` // W/m², >= 0
	Confidence          float64   `json:"confidence"`           // [0.1, 1]
	ClearSkyGHI         float64   `json:"clear_sky_ghi"`        // W/m², theoretical cloud-free
	DirectNormal        float64   `json:"direct_normal"`        // W/m², advisory
	DiffuseHorizontal   float64   `json:"diffuse_horizontal"`   // W/m², advisory
	SolarElevation      float64   `json:"solar_elevation"`      // degrees
}

// Trends holds per-channel linear-regression slopes in units per hour.
type Trends struct {
	Temperature float64 `json:"temperature"` // °C/h
	CloudCover  float64 `json:"cloud_cover"` // %/h
	WindSpeed   float64 `json:"wind_speed"`  // m/s/h
	Pressure    float64 `json:"pressure"`    // hPa/h
	Humidity    float64 `json:"humidity"`    // %/h
}

// Alerts holds the five independent alert flags.
type Alerts struct {
	CloudCover    bool `json:"cloud_cover"`
	Temperature   bool `json:"temperature"`
	Wind          bool `json:"wind"`
	Pressure      bool `json:"pressure"`
	Precipitation bool `json:"precipitation"`
}

// Analysis is the per-series weather summary handed to the presentation
// layer alongside the forecast.
type Analysis struct {
	CurrentConditions Sample  `json:"current_conditions"`
	Trends            Trends  `json:"trends"`
	Alerts            Alerts  `json:"alerts"`
	ForecastQuality   float64 `json:"forecast_quality"` // [0.1, 0.99]
}
