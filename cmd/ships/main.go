package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	httpadapter "github.com/couchcryptid/ship-data-explorer/internal/adapter/http"
	"github.com/couchcryptid/ship-data-explorer/internal/cli"
	"github.com/couchcryptid/ship-data-explorer/internal/config"
	"github.com/couchcryptid/ship-data-explorer/internal/loader"
	"github.com/couchcryptid/ship-data-explorer/internal/observability"
	"github.com/couchcryptid/ship-data-explorer/internal/render"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	fleet, err := loader.Load(cfg.DataPath)
	if err != nil {
		logger.Error("failed to load dataset", "error", err)
		os.Exit(1)
	}
	metrics.DatasetRecords.Set(float64(len(fleet)))
	logger.Info("dataset loaded", "path", cfg.DataPath, "records", len(fleet))

	clock := clockwork.NewRealClock()
	session := cli.NewSession(
		fleet,
		render.NewHistogram(cfg.HistogramBins, clock),
		render.NewWorldMap(clock),
		logger,
		metrics,
		clock,
	)

	// SIGINT is left to readline so Ctrl-C interrupts the current input line
	// instead of killing the process mid-render.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	var srv *httpadapter.Server
	if cfg.MetricsEnabled {
		srv = httpadapter.NewServer(cfg.HTTPAddr, session, logger)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("http server error", "error", err)
			}
		}()
	}

	reader, err := cli.NewReadline(cfg.HistoryFile)
	if err != nil {
		logger.Error("failed to init input", "error", err)
		os.Exit(1)
	}
	defer reader.Close()

	if err := session.Run(ctx, reader); err != nil {
		logger.Error("session error", "error", err)
	}

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("http server shutdown error", "error", err)
		}
	}

	logger.Info("session ended")
}
