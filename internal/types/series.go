package types

import (
	"fmt"
	"time"
)

// HourlyData is the wire shape of an hourly weather payload: a time
// column plus index-aligned channel arrays, as produced by the upstream
// weather API. Channel arrays are either empty (channel absent) or the
// same length as Time.
type HourlyData struct {
	Time               []string  `json:"time"`
	Temperature        []float64 `json:"temperature_2m"`
	CloudCover         []float64 `json:"cloud_cover"`
	ShortwaveRadiation []float64 `json:"shortwave_radiation"`
	Humidity           []float64 `json:"relative_humidity_2m"`
	WindSpeed          []float64 `json:"wind_speed_10m"`
	WindDirection      []float64 `json:"wind_direction_10m"`
	Pressure           []float64 `json:"surface_pressure"`
	Precipitation      []float64 `json:"precipitation"`
	UVIndex            []float64 `json:"uv_index"`
	Visibility         []float64 `json:"visibility"`
}

// Timestamp layouts accepted for the hourly time column. The upstream
// API emits minute-resolution ISO-8601 without a zone suffix; such
// times are interpreted as UTC.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func parseHourlyTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", s)
}

// channel returns the value at index i, or def when the channel is
// absent from the payload.
func channel(values []float64, i int, def float64) float64 {
	if len(values) == 0 {
		return def
	}
	return values[i]
}

// NewSeriesFromHourly converts an hourly payload into a Series,
// validating that every present channel is index-aligned with the time
// column and filling the documented defaults for absent required
// channels. This is the single place where defaulting happens; the
// resulting samples are complete and the engine's math is total over
// them.
func NewSeriesFromHourly(h HourlyData) (Series, error) {
	n := len(h.Time)

	channels := []struct {
		name   string
		values []float64
	}{
		{"temperature_2m", h.Temperature},
		{"cloud_cover", h.CloudCover},
		{"shortwave_radiation", h.ShortwaveRadiation},
		{"relative_humidity_2m", h.Humidity},
		{"wind_speed_10m", h.WindSpeed},
		{"wind_direction_10m", h.WindDirection},
		{"surface_pressure", h.Pressure},
		{"precipitation", h.Precipitation},
		{"uv_index", h.UVIndex},
		{"visibility", h.Visibility},
	}
	for _, c := range channels {
		if len(c.values) != 0 && len(c.values) != n {
			return nil, fmt.Errorf("channel %s has %d values, expected %d", c.name, len(c.values), n)
		}
	}

	series := make(Series, n)
	var prev time.Time
	for i := 0; i < n; i++ {
		t, err := parseHourlyTime(h.Time[i])
		if err != nil {
			return nil, fmt.Errorf("hourly time column index %d: %w", i, err)
		}
		if i > 0 && !t.After(prev) {
			return nil, fmt.Errorf("hourly time column not ascending at index %d (%s)", i, h.Time[i])
		}
		prev = t

		series[i] = Sample{
			Time:               t,
			Temperature:        channel(h.Temperature, i, DefaultTemperature),
			CloudCover:         channel(h.CloudCover, i, DefaultCloudCover),
			ShortwaveRadiation: channel(h.ShortwaveRadiation, i, DefaultShortwaveRadiation),
			Humidity:           channel(h.Humidity, i, 0),
			WindSpeed:          channel(h.WindSpeed, i, 0),
			WindDirection:      channel(h.WindDirection, i, 0),
			Pressure:           channel(h.Pressure, i, 0),
			Precipitation:      channel(h.Precipitation, i, 0),
			UVIndex:            channel(h.UVIndex, i, 0),
			Visibility:         channel(h.Visibility, i, 0),
		}
	}

	return series, nil
}
