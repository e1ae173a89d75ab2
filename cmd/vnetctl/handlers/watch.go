package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vnetops/vnetctl/internal/config"
	"github.com/vnetops/vnetctl/internal/reconcile"
)

// WatchOptions are the invocation parameters for Watch.
type WatchOptions struct {
	ConfigPath  string
	Interval    time.Duration
	MetricsAddr string
}

// Watch reconciles the network on a fixed interval until the context is
// cancelled. Each tick is a full, independent pass; a failed pass is logged
// and retried on the next tick. Prometheus metrics are served on the
// configured address for the lifetime of the loop.
func Watch(ctx context.Context, opts WatchOptions) error {
	cfg, err := loadConfigFile(opts.ConfigPath)
	if err != nil {
		return err
	}

	client, err := newController(ctx, cfg)
	if err != nil {
		return err
	}

	srv := startMetricsServer(opts.MetricsAddr)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	rec := reconcile.New(client, reconcile.WithMetrics())

	log.Printf("Watching network %s/%s every %s", cfg.Project, cfg.Network, opts.Interval)

	ticker := time.NewTicker(opts.Interval)
	defer ticker.Stop()

	for {
		runPass(ctx, rec, cfg)

		select {
		case <-ctx.Done():
			log.Printf("Watch stopped")
			return nil
		case <-ticker.C:
		}
	}
}

func runPass(ctx context.Context, rec *reconcile.Reconciler, cfg *config.Config) {
	outcome, err := rec.Reconcile(ctx, cfg)
	if err != nil {
		log.Printf("Reconciliation pass failed: %v", err)
		return
	}
	if outcome.Changed {
		log.Printf("Network %s/%s converged: action %s", outcome.Project, outcome.Network, outcome.Action)
	}
}

// startMetricsServer serves the prometheus registry on addr.
func startMetricsServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Metrics server error: %v", err)
		}
	}()

	return srv
}
