package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data/ships.json", cfg.DataPath)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.HistoryFile)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, 20, cfg.HistogramBins)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("SHIP_DATA_PATH", "/tmp/fleet.json")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("HISTORY_FILE", "/tmp/history")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("METRICS_ENABLED", "true")
	t.Setenv("HISTOGRAM_BINS", "40")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/fleet.json", cfg.DataPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "/tmp/history", cfg.HistoryFile)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, 40, cfg.HistogramBins)
}

func TestLoad_InvalidHistogramBins(t *testing.T) {
	for _, bad := range []string{"0", "-5", "twenty"} {
		t.Run(bad, func(t *testing.T) {
			t.Setenv("HISTOGRAM_BINS", bad)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "HISTOGRAM_BINS")
		})
	}
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "xml")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_FORMAT")
}
