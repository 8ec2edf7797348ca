package config

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/heliocast/heliocast/internal/types"
)

// SQLiteProvider implements Provider for SQLite database configuration.
// The database holds one row per named parameter in a key/value table,
// which lets deployments tune individual model constants without
// rewriting a whole config file.
type SQLiteProvider struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteProvider creates a new SQLite configuration provider
func NewSQLiteProvider(dbPath string) (*SQLiteProvider, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	return &SQLiteProvider{db: db, dbPath: dbPath}, nil
}

// LoadConfig loads the complete configuration from the SQLite database
func (s *SQLiteProvider) LoadConfig() (*Data, error) {
	config := DefaultData()

	rows, err := s.db.Query(`SELECT name, value FROM engine_config`)
	if err != nil {
		return nil, fmt.Errorf("failed to query engine_config: %w", err)
	}
	defer rows.Close()

	params := make(map[string]float64)
	for rows.Next() {
		var name string
		var value float64
		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("failed to scan engine_config row: %w", err)
		}
		params[name] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read engine_config rows: %w", err)
	}

	s.applyParams(config, params)

	return config, nil
}

func (s *SQLiteProvider) applyParams(config *Data, params map[string]float64) {
	set := func(name string, dst *float64) {
		if v, ok := params[name]; ok {
			*dst = v
		}
	}

	var lat, lon float64
	set("location.latitude", &lat)
	set("location.longitude", &lon)
	if _, ok := params["location.latitude"]; ok {
		config.Location = types.Location{Latitude: lat, Longitude: lon}
	}

	set("model.system_efficiency", &config.Model.SystemEfficiency)
	set("model.temp_coefficient", &config.Model.TempCoefficient)
	set("model.reference_temp", &config.Model.ReferenceTemp)

	set("alerts.cloud_cover_pct", &config.Alerts.CloudCoverPct)
	set("alerts.cloud_swing_pct", &config.Alerts.CloudSwingPct)
	if v, ok := params["alerts.cloud_swing_window"]; ok {
		config.Alerts.CloudSwingWindow = int(v)
	}
	set("alerts.temp_low_c", &config.Alerts.TempLowC)
	set("alerts.temp_high_c", &config.Alerts.TempHighC)
	set("alerts.wind_speed_ms", &config.Alerts.WindSpeedMS)
	set("alerts.pressure_trend_hpa_h", &config.Alerts.PressureTrendHPaH)
	set("alerts.precipitation_mm", &config.Alerts.PrecipitationMM)

	set("quality.temp_weight", &config.Quality.TempWeight)
	set("quality.cloud_weight", &config.Quality.CloudWeight)
	set("quality.precip_weight", &config.Quality.PrecipWeight)
	set("quality.temp_std_scale", &config.Quality.TempStdScale)
	set("quality.cloud_std_scale", &config.Quality.CloudStdScale)
	set("quality.wet_precip_factor", &config.Quality.WetPrecipFactor)
}

// IsReadOnly returns false: the SQLite backend supports writes
func (s *SQLiteProvider) IsReadOnly() bool {
	return false
}

// Close closes the database connection
func (s *SQLiteProvider) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
