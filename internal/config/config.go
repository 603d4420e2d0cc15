package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Config holds all explorer settings, populated from environment variables.
type Config struct {
	// DataPath is the ship dataset export the loader reads at startup.
	DataPath string

	LogLevel  string
	LogFormat string

	// HistoryFile is where readline persists command history. Empty disables
	// persistence.
	HistoryFile string

	// HTTPAddr serves /healthz and /metrics when MetricsEnabled is true.
	HTTPAddr       string
	MetricsEnabled bool

	// HistogramBins is the bin count for the speed histogram. Fixed per
	// session so a given dataset always renders the same image.
	HistogramBins int
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	bins, err := parseHistogramBins()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DataPath:       envOrDefault("SHIP_DATA_PATH", "data/ships.json"),
		LogLevel:       envOrDefault("LOG_LEVEL", "warn"),
		LogFormat:      envOrDefault("LOG_FORMAT", "text"),
		HistoryFile:    os.Getenv("HISTORY_FILE"),
		HTTPAddr:       envOrDefault("HTTP_ADDR", ":8080"),
		MetricsEnabled: os.Getenv("METRICS_ENABLED") == "true",
		HistogramBins:  bins,
	}

	if cfg.DataPath == "" {
		return nil, errors.New("SHIP_DATA_PATH is required")
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: must be json or text", cfg.LogFormat)
	}
	if cfg.MetricsEnabled && cfg.HTTPAddr == "" {
		return nil, errors.New("METRICS_ENABLED is true but HTTP_ADDR is not set")
	}

	return cfg, nil
}

func parseHistogramBins() (int, error) {
	s := os.Getenv("HISTOGRAM_BINS")
	if s == "" {
		return 20, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid HISTOGRAM_BINS %q: must be a positive integer", s)
	}
	return n, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
