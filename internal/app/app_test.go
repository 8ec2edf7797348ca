package app

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/heliocast/heliocast/internal/types"
	"github.com/heliocast/heliocast/pkg/config"
)

const wrappedPayload = `{
  "latitude": 40.0,
  "longitude": -74.0,
  "hourly": {
    "time": ["2024-06-21T15:00", "2024-06-21T16:00", "2024-06-21T17:00"],
    "temperature_2m": [24.1, 25.3, 26.0],
    "cloud_cover": [5, 0, 10],
    "shortwave_radiation": [720, 800, 760]
  }
}`

func testConfig() *config.Data {
	cfg := config.DefaultData()
	cfg.Location = types.Location{Latitude: 40.0, Longitude: -74.0}
	return cfg
}

func TestReadSeriesWrappedAndBare(t *testing.T) {
	dir := t.TempDir()

	wrapped := filepath.Join(dir, "wrapped.json")
	if err := os.WriteFile(wrapped, []byte(wrappedPayload), 0o644); err != nil {
		t.Fatal(err)
	}

	bare := filepath.Join(dir, "bare.json")
	barePayload := `{"time": ["2024-06-21T15:00"], "temperature_2m": [24.1]}`
	if err := os.WriteFile(bare, []byte(barePayload), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, tt := range []struct {
		name string
		path string
		want int
	}{
		{"wrapped API response", wrapped, 3},
		{"bare hourly object", bare, 1},
	} {
		t.Run(tt.name, func(t *testing.T) {
			series, err := readSeries(tt.path)
			if err != nil {
				t.Fatalf("readSeries: %v", err)
			}
			if len(series) != tt.want {
				t.Errorf("got %d samples, expected %d", len(series), tt.want)
			}
		})
	}
}

func TestRunProducesReport(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "weather.json")
	if err := os.WriteFile(input, []byte(wrappedPayload), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "report.json")

	a := New(testConfig(), zap.NewNop().Sugar())
	if err := a.Run(input, "", out); err != nil {
		t.Fatalf("Run: %v", err)
	}

	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	var report Report
	if err := json.Unmarshal(raw, &report); err != nil {
		t.Fatalf("parsing report: %v", err)
	}

	if len(report.Forecast) != 3 {
		t.Errorf("forecast has %d points, expected 3", len(report.Forecast))
	}
	if report.Location.Latitude != 40.0 {
		t.Errorf("report location = %+v", report.Location)
	}
	if report.RunID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("report run ID not set")
	}
	if report.Analysis.ForecastQuality < 0.1 || report.Analysis.ForecastQuality > 0.99 {
		t.Errorf("quality %v out of bounds", report.Analysis.ForecastQuality)
	}
	// Mid-June afternoon in New Jersey: all three hours are daylight
	for i, p := range report.Forecast {
		if p.PredictedIrradiance <= 0 {
			t.Errorf("point %d predicted %v, expected daylight production", i, p.PredictedIrradiance)
		}
	}
}

func TestRunJoinsObservedSeries(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "weather.json")
	if err := os.WriteFile(input, []byte(wrappedPayload), 0o644); err != nil {
		t.Fatal(err)
	}

	observed := filepath.Join(dir, "observed.json")
	observedPayload := `{"time": ["2024-06-21T16:00"], "shortwave_radiation": [400]}`
	if err := os.WriteFile(observed, []byte(observedPayload), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "report.json")

	a := New(testConfig(), zap.NewNop().Sugar())
	if err := a.Run(input, observed, out); err != nil {
		t.Fatalf("Run: %v", err)
	}

	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var report Report
	if err := json.Unmarshal(raw, &report); err != nil {
		t.Fatal(err)
	}

	// The joined hour runs on 400 W/m² instead of 800, so it must now
	// predict less than its unjoined neighbor at 15:00 (720 W/m²)
	if report.Forecast[1].PredictedIrradiance >= report.Forecast[0].PredictedIrradiance {
		t.Errorf("joined hour predicted %.2f, expected below neighbor %.2f",
			report.Forecast[1].PredictedIrradiance, report.Forecast[0].PredictedIrradiance)
	}
}

func TestRunMissingInput(t *testing.T) {
	a := New(testConfig(), zap.NewNop().Sugar())
	if err := a.Run(filepath.Join(t.TempDir(), "absent.json"), "", ""); err == nil {
		t.Error("expected error for missing input file")
	}
}
