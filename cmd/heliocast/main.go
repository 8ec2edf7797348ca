package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/heliocast/heliocast/internal/app"
	"github.com/heliocast/heliocast/internal/constants"
	"github.com/heliocast/heliocast/internal/log"
	"github.com/heliocast/heliocast/pkg/config"
)

func main() {
	cfgFile := flag.String("config", "", "Path to configuration source:\n\t\t\t  YAML: config.yaml\n\t\t\t  SQLite: config.db\n\t\t\tOmit to run with built-in defaults")
	cfgBackend := flag.String("config-backend", "yaml", "Configuration backend type: 'yaml' for YAML files, 'sqlite' for SQLite databases")
	input := flag.String("input", "", "Path to hourly weather series JSON (required)")
	observed := flag.String("observed", "", "Optional path to an independently observed radiation series, joined by timestamp")
	lat := flag.Float64("lat", 91, "Latitude override in decimal degrees")
	lon := flag.Float64("lon", 181, "Longitude override in decimal degrees")
	out := flag.String("out", "", "Write the report to this file instead of stdout")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("heliocast %s\n", constants.Version)
		os.Exit(0)
	}

	// Set up logging
	if err := log.Init(*debug); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if *input == "" {
		log.Error("no weather series given; pass -input. Run with -h for help")
		os.Exit(1)
	}

	cfgData, err := loadConfig(*cfgFile, *cfgBackend)
	if err != nil {
		log.Errorf("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	// CLI coordinates take precedence over the configured location
	if *lat >= -90 && *lat <= 90 {
		cfgData.Location.Latitude = *lat
	}
	if *lon >= -180 && *lon <= 180 {
		cfgData.Location.Longitude = *lon
	}

	application := app.New(cfgData, log.GetSugaredLogger())
	if err := application.Run(*input, *observed, *out); err != nil {
		log.Errorf("Application error: %v", err)
		os.Exit(1)
	}
}

func loadConfig(cfgFile, cfgBackend string) (*config.Data, error) {
	if cfgFile == "" {
		return config.DefaultData(), nil
	}

	filename, _ := filepath.Abs(cfgFile)

	var provider config.Provider
	var err error

	switch cfgBackend {
	case "yaml":
		provider = config.NewYAMLProvider(filename)
	case "sqlite":
		provider, err = config.NewSQLiteProvider(filename)
		if err != nil {
			return nil, fmt.Errorf("error creating SQLite provider: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported configuration backend: %s. Use 'yaml' or 'sqlite'", cfgBackend)
	}
	defer provider.Close()

	cfgData, err := provider.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return cfgData, nil
}
