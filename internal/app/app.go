// Package app wires configuration, the forecast engine and the weather
// analyzer into a one-shot run that reads an hourly weather payload and
// emits a combined report.
package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/heliocast/heliocast/internal/analysis"
	"github.com/heliocast/heliocast/internal/forecast"
	"github.com/heliocast/heliocast/internal/types"
	"github.com/heliocast/heliocast/pkg/config"
	"github.com/heliocast/heliocast/pkg/solar"
)

// App represents the main application
type App struct {
	cfg    *config.Data
	logger *zap.SugaredLogger
}

// Report is the engine's complete output for one run: the hour-by-hour
// forecast plus the weather analysis summary, tagged so downstream
// consumers can correlate exports with runs.
type Report struct {
	RunID       uuid.UUID             `json:"run_id"`
	GeneratedAt time.Time             `json:"generated_at"`
	Location    types.Location        `json:"location"`
	SunTimes    solar.SunTimes        `json:"sun_times"`
	Forecast    []types.ForecastPoint `json:"forecast"`
	Analysis    types.Analysis        `json:"analysis"`
}

// New creates a new application instance
func New(cfg *config.Data, logger *zap.SugaredLogger) *App {
	return &App{cfg: cfg, logger: logger}
}

// Run reads the hourly weather payload (and the optional independently
// observed series), produces the forecast and analysis, and writes the
// report as JSON to outPath, or stdout when outPath is empty.
func (a *App) Run(inputPath, observedPath, outPath string) error {
	series, err := readSeries(inputPath)
	if err != nil {
		return fmt.Errorf("reading weather series: %w", err)
	}
	a.logger.Infow("weather series loaded", "path", inputPath, "samples", len(series))

	if observedPath != "" {
		observed, err := readSeries(observedPath)
		if err != nil {
			return fmt.Errorf("reading observed series: %w", err)
		}
		series = types.JoinByTime(series, observed)
		a.logger.Infow("observed radiation joined", "path", observedPath, "samples", len(observed))
	}

	engine := forecast.NewEngine(a.cfg.Model)
	points, err := engine.Forecast(a.cfg.Location, series)
	if err != nil {
		return err
	}

	analyzer := analysis.NewAnalyzer(a.cfg.Alerts, a.cfg.Quality)
	summary := analyzer.Analyze(series)

	report := Report{
		RunID:       uuid.New(),
		GeneratedAt: time.Now().UTC(),
		Location:    a.cfg.Location,
		Forecast:    points,
		Analysis:    summary,
	}
	if len(series) > 0 {
		report.SunTimes = solar.CalculateSunTimes(series[0].Time, a.cfg.Location.Latitude, a.cfg.Location.Longitude)
	}

	a.logger.Infow("forecast complete",
		"run_id", report.RunID,
		"hours", len(points),
		"quality", summary.ForecastQuality)

	return writeReport(report, outPath)
}

// readSeries loads an hourly payload from a JSON file. Both the bare
// hourly object and the full API response (hourly nested under an
// "hourly" key) are accepted.
func readSeries(path string) (types.Series, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wrapped struct {
		Hourly types.HourlyData `json:"hourly"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	hourly := wrapped.Hourly
	if len(hourly.Time) == 0 {
		if err := json.Unmarshal(raw, &hourly); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	return types.NewSeriesFromHourly(hourly)
}

func writeReport(report Report, outPath string) error {
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	out = append(out, '\n')

	if outPath == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(outPath, out, 0o644)
}
