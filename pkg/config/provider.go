// Package config loads engine configuration from YAML files or SQLite
// databases through a common provider interface.
package config

import "github.com/heliocast/heliocast/internal/types"

// Provider defines the interface for configuration data sources
type Provider interface {
	// Load complete configuration
	LoadConfig() (*Data, error)

	// IsReadOnly reports whether the backend supports writes
	IsReadOnly() bool
	Close() error
}

// Data represents the complete configuration structure
type Data struct {
	Location types.Location  `json:"location"`
	Model    ModelParams     `json:"model"`
	Alerts   AlertThresholds `json:"alerts"`
	Quality  QualityParams   `json:"quality"`
}

// ModelParams holds the tunable constants of the irradiance model.
// They are configuration, not literals, so they can be adjusted and
// tested without touching model logic.
type ModelParams struct {
	// SystemEfficiency is the flat panel/inverter efficiency scalar
	SystemEfficiency float64 `json:"system_efficiency"`
	// TempCoefficient is the output loss per °C above ReferenceTemp
	TempCoefficient float64 `json:"temp_coefficient"`
	// ReferenceTemp is the temperature (°C) above which derating applies
	ReferenceTemp float64 `json:"reference_temp"`
}

// AlertThresholds holds the trigger levels for the five weather alerts.
type AlertThresholds struct {
	CloudCoverPct     float64 `json:"cloud_cover_pct"`  // current cloud cover above this alerts
	CloudSwingPct     float64 `json:"cloud_swing_pct"`  // max-min swing over the swing window
	CloudSwingWindow  int     `json:"cloud_swing_window"` // samples examined for the swing
	TempLowC          float64 `json:"temp_low_c"`
	TempHighC         float64 `json:"temp_high_c"`
	WindSpeedMS       float64 `json:"wind_speed_ms"`
	PressureTrendHPaH float64 `json:"pressure_trend_hpa_h"` // absolute slope threshold
	PrecipitationMM   float64 `json:"precipitation_mm"`
}

// QualityParams holds the weighting and scaling of the forecast quality
// score.
type QualityParams struct {
	TempWeight      float64 `json:"temp_weight"`
	CloudWeight     float64 `json:"cloud_weight"`
	PrecipWeight    float64 `json:"precip_weight"`
	TempStdScale    float64 `json:"temp_std_scale"`    // °C of std-dev that zeroes temperature stability
	CloudStdScale   float64 `json:"cloud_std_scale"`   // % of std-dev that zeroes cloud stability
	WetPrecipFactor float64 `json:"wet_precip_factor"` // precip factor when any rain is forecast
}

// DefaultModelParams returns the production model constants.
func DefaultModelParams() ModelParams {
	return ModelParams{
		SystemEfficiency: 0.85,
		TempCoefficient:  -0.004,
		ReferenceTemp:    25.0,
	}
}

// DefaultAlertThresholds returns the production alert trigger levels.
func DefaultAlertThresholds() AlertThresholds {
	return AlertThresholds{
		CloudCoverPct:     80.0,
		CloudSwingPct:     50.0,
		CloudSwingWindow:  6,
		TempLowC:          -10.0,
		TempHighC:         40.0,
		WindSpeedMS:       20.0,
		PressureTrendHPaH: 1.5,
		PrecipitationMM:   5.0,
	}
}

// DefaultQualityParams returns the production quality-score weighting.
func DefaultQualityParams() QualityParams {
	return QualityParams{
		TempWeight:      0.4,
		CloudWeight:     0.4,
		PrecipWeight:    0.2,
		TempStdScale:    20.0,
		CloudStdScale:   40.0,
		WetPrecipFactor: 0.85,
	}
}

// DefaultData returns a complete configuration with production defaults
// and an unset location.
func DefaultData() *Data {
	return &Data{
		Model:   DefaultModelParams(),
		Alerts:  DefaultAlertThresholds(),
		Quality: DefaultQualityParams(),
	}
}

// applyDefaults fills zero-valued sections of a loaded configuration so
// a partial config file still yields a runnable engine.
func applyDefaults(d *Data) {
	if d.Model == (ModelParams{}) {
		d.Model = DefaultModelParams()
	}
	if d.Alerts == (AlertThresholds{}) {
		d.Alerts = DefaultAlertThresholds()
	}
	if d.Quality == (QualityParams{}) {
		d.Quality = DefaultQualityParams()
	}
}
