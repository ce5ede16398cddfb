package server

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewMonitoringHandler exposes /metrics from reg and /healthz backed by db.
func NewMonitoringHandler(log *slog.Logger, reg *prometheus.Registry, db DBPinger) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	mux.Handle("/healthz", NewHealthChecker(db, log))

	return mux
}

// StartMonitoringServer serves the monitoring handler on port until ctx is cancelled.
func StartMonitoringServer(
	ctx context.Context,
	log *slog.Logger,
	reg *prometheus.Registry,
	db DBPinger,
	port int,
	shutdownTimeout time.Duration,
) error {
	readHeaderTimeout := 5 * time.Second

	srv := &http.Server{
		Addr:              net.JoinHostPort("", strconv.Itoa(port)),
		Handler:           NewMonitoringHandler(log, reg, db),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	log.InfoContext(ctx, "Starting monitoring server", "addr", srv.Addr)

	return serve(ctx, log, srv, shutdownTimeout)
}
