package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/court-finder/internal/backend"
	"github.com/mauv0809/court-finder/internal/catalog"
	"github.com/mauv0809/court-finder/internal/config"
	server "github.com/mauv0809/court-finder/internal/http"
	"github.com/mauv0809/court-finder/internal/loader"
	"github.com/mauv0809/court-finder/internal/metrics"
	"github.com/mauv0809/court-finder/internal/selection"
	"github.com/mauv0809/court-finder/internal/snapshot"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load configuration: %s", err)
	}
	log.SetLevel(cfg.Level())

	var backendClient backend.Client
	if cfg.APIBaseURL != "" {
		backendClient = backend.NewClient(cfg.APIBaseURL, cfg.FetchTimeout)
	} else {
		log.Warn("No API base URL configured, backend source disabled")
	}

	var snapshotFetcher snapshot.Fetcher
	if cfg.SnapshotURL != "" {
		snapshotFetcher = snapshot.NewHTTPFetcher(cfg.SnapshotURL, cfg.FetchTimeout)
	} else {
		snapshotFetcher = snapshot.FileFetcher{Path: cfg.SnapshotPath}
	}

	store := catalog.New()
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	state := selection.New()
	slotLoader := loader.New(backendClient, snapshotFetcher, store, metricsSvc, cfg.FetchTimeout)

	s := server.NewServer(store, slotLoader, state, metricsSvc, metricsHandler, *cfg)

	// The mock selection is served until the first load completes.
	go slotLoader.Run(ctx, cfg.RefreshInterval)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port, "city", cfg.City)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)
		stop()

		// Create a context with a timeout for the shutdown.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
