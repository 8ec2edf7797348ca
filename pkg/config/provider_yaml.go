package config

import (
	"os"

	"gopkg.in/yaml.v2"

	"github.com/heliocast/heliocast/internal/types"
)

// YAMLProvider implements Provider for YAML configuration files
type YAMLProvider struct {
	filename string
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{filename: filename}
}

// LoadConfig loads the complete configuration from a YAML file
func (y *YAMLProvider) LoadConfig() (*Data, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	// Load into a temporary struct with YAML tags
	var yamlConfig struct {
		Location struct {
			Latitude  float64 `yaml:"latitude"`
			Longitude float64 `yaml:"longitude"`
		} `yaml:"location"`
		Model struct {
			SystemEfficiency float64 `yaml:"system_efficiency"`
			TempCoefficient  float64 `yaml:"temp_coefficient"`
			ReferenceTemp    float64 `yaml:"reference_temp"`
		} `yaml:"model,omitempty"`
		Alerts struct {
			CloudCoverPct     float64 `yaml:"cloud_cover_pct"`
			CloudSwingPct     float64 `yaml:"cloud_swing_pct"`
			CloudSwingWindow  int     `yaml:"cloud_swing_window"`
			TempLowC          float64 `yaml:"temp_low_c"`
			TempHighC         float64 `yaml:"temp_high_c"`
			WindSpeedMS       float64 `yaml:"wind_speed_ms"`
			PressureTrendHPaH float64 `yaml:"pressure_trend_hpa_h"`
			PrecipitationMM   float64 `yaml:"precipitation_mm"`
		} `yaml:"alerts,omitempty"`
		Quality struct {
			TempWeight      float64 `yaml:"temp_weight"`
			CloudWeight     float64 `yaml:"cloud_weight"`
			PrecipWeight    float64 `yaml:"precip_weight"`
			TempStdScale    float64 `yaml:"temp_std_scale"`
			CloudStdScale   float64 `yaml:"cloud_std_scale"`
			WetPrecipFactor float64 `yaml:"wet_precip_factor"`
		} `yaml:"quality,omitempty"`
	}

	if err := yaml.Unmarshal(cfgFile, &yamlConfig); err != nil {
		return nil, err
	}

	config := &Data{
		Location: types.Location{
			Latitude:  yamlConfig.Location.Latitude,
			Longitude: yamlConfig.Location.Longitude,
		},
		Model: ModelParams{
			SystemEfficiency: yamlConfig.Model.SystemEfficiency,
			TempCoefficient:  yamlConfig.Model.TempCoefficient,
			ReferenceTemp:    yamlConfig.Model.ReferenceTemp,
		},
		Alerts: AlertThresholds{
			CloudCoverPct:     yamlConfig.Alerts.CloudCoverPct,
			CloudSwingPct:     yamlConfig.Alerts.CloudSwingPct,
			CloudSwingWindow:  yamlConfig.Alerts.CloudSwingWindow,
			TempLowC:          yamlConfig.Alerts.TempLowC,
			TempHighC:         yamlConfig.Alerts.TempHighC,
			WindSpeedMS:       yamlConfig.Alerts.WindSpeedMS,
			PressureTrendHPaH: yamlConfig.Alerts.PressureTrendHPaH,
			PrecipitationMM:   yamlConfig.Alerts.PrecipitationMM,
		},
		Quality: QualityParams{
			TempWeight:      yamlConfig.Quality.TempWeight,
			CloudWeight:     yamlConfig.Quality.CloudWeight,
			PrecipWeight:    yamlConfig.Quality.PrecipWeight,
			TempStdScale:    yamlConfig.Quality.TempStdScale,
			CloudStdScale:   yamlConfig.Quality.CloudStdScale,
			WetPrecipFactor: yamlConfig.Quality.WetPrecipFactor,
		},
	}
	applyDefaults(config)

	return config, nil
}

// IsReadOnly returns true: YAML files are never written by the engine
func (y *YAMLProvider) IsReadOnly() bool {
	return true
}

// Close is a no-op for the YAML backend
func (y *YAMLProvider) Close() error {
	return nil
}
