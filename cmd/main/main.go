package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnknownOlympus/hestia/internal/config"
	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/repository"
	"github.com/UnknownOlympus/hestia/internal/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

// main is the entry point of the application.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()

	logger := sl.New(cfg.Env, os.Stdout)

	// Create a separate registry for metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	store, err := repository.Open(ctx, cfg.Storage, appMetrics)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer store.Close()

	logger.InfoContext(ctx, "Storage ready",
		"driver", store.Driver(), "applied_migrations", store.AppliedMigrations())

	api := server.NewAPI(cfg.HTTP, logger, appMetrics, store)

	grp, grpCtx := errgroup.WithContext(ctx)

	grp.Go(func() error {
		return server.StartMonitoringServer(
			grpCtx, logger, reg, store, cfg.Monitoring.Port, cfg.HTTP.ShutdownTimeout)
	})

	grp.Go(func() error {
		return api.Run(grpCtx)
	})

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	if err = grp.Wait(); err != nil {
		logger.ErrorContext(ctx, "Application stopped with error", sl.Err(err))
		return
	}

	logger.InfoContext(ctx, "Application stopped gracefully...")
}
