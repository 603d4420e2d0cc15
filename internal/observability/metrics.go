package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for an
// explorer session.
type Metrics struct {
	CommandsTotal   *prometheus.CounterVec   // labels: command, outcome={success,error}
	UnknownCommands prometheus.Counter
	CommandDuration *prometheus.HistogramVec // labels: command
	PlotsWritten    *prometheus.CounterVec   // labels: plot={histogram,map}
	DatasetRecords  prometheus.Gauge
	SessionActive   prometheus.Gauge
}

// NewMetrics creates and registers all session metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.CommandsTotal,
		m.UnknownCommands,
		m.CommandDuration,
		m.PlotsWritten,
		m.DatasetRecords,
		m.SessionActive,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		CommandsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ship_explorer",
			Name:      "commands_total",
			Help:      "Commands executed by name and outcome.",
		}, []string{"command", "outcome"}),
		UnknownCommands: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ship_explorer",
			Name:      "unknown_commands_total",
			Help:      "Input lines naming no registered command.",
		}),
		CommandDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ship_explorer",
			Name:      "command_duration_seconds",
			Help:      "Wall time per command execution.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		}, []string{"command"}),
		PlotsWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ship_explorer",
			Name:      "plots_written_total",
			Help:      "Image files written by plot kind.",
		}, []string{"plot"}),
		DatasetRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ship_explorer",
			Name:      "dataset_records",
			Help:      "Number of ship records loaded for this session.",
		}),
		SessionActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ship_explorer",
			Name:      "session_active",
			Help:      "1 while the interactive session loop is running.",
		}),
	}
}
