package main

import (
	"context"
	"log"

	"github.com/UnknownOlympus/hestia/internal/config"
	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/repository"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg := config.MustLoad()

	store, err := repository.Open(context.Background(), cfg.Storage, metrics.NewMetrics(prometheus.NewRegistry()))
	if err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}
	defer store.Close()

	log.Printf("Migrations applied successfully (driver=%s, applied=%d)", store.Driver(), store.AppliedMigrations())
}
