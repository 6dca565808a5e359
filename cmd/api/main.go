// Package main is the entry point for the Itinero API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
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

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"itinero-server/internal/config"
	"itinero-server/internal/handler"
	"itinero-server/internal/middleware"
	"itinero-server/internal/repo"
	"itinero-server/internal/repo/memory"
	"itinero-server/internal/repo/sqlite"
	"itinero-server/internal/seed"
	"itinero-server/internal/service"
	apispec "itinero-server/spec"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger introduced in Go 1.21.
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Store ------------------------------------------------------------
	// The store is constructed once per process and injected everywhere;
	// there is no package-level singleton. Memory is the default; sqlite
	// keeps trips across restarts.
	var store repo.Store
	switch cfg.StorageDriver {
	case config.DriverSQLite:
		db, err := sqlite.Open(context.Background(), cfg.SQLitePath)
		if err != nil {
			slog.Error("failed to open sqlite store", "path", cfg.SQLitePath, "error", err)
			os.Exit(1)
		}
		defer db.Close()
		store = db.Repos()
		slog.Info("sqlite store ready", "path", cfg.SQLitePath)
	default:
		store = memory.New().Repos()
		slog.Info("in-memory store ready")
	}

	if cfg.Seed && cfg.StorageDriver == config.DriverMemory {
		// The memory store starts empty every boot, so seed unconditionally.
		// A sqlite store carries data across restarts; reseeding it would
		// duplicate the catalog, so sqlite deployments seed out of band.
		if err := seed.Apply(context.Background(), store); err != nil {
			slog.Error("failed to seed store", "error", err)
			os.Exit(1)
		}
		slog.Info("store seeded with demo data")
	}

	// --- Services ---------------------------------------------------------
	destinationSvc := service.NewDestinationService(store.Destinations)
	activitySvc := service.NewActivityService(store.Activities)
	tripSvc := service.NewTripService(store.Trips, store.Activities)
	exportSvc := service.NewExportService(store.Trips)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order:
	// RequestID → RealIP → SlogLogger → Metrics → Recoverer → CORS → MaxBodySize.
	metrics := middleware.NewMetrics()

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(metrics.Handler())
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	srvHandler := handler.NewServer(destinationSvc, activitySvc, tripSvc, exportSvc)
	r.Mount("/", srvHandler.Routes())

	r.Method(http.MethodGet, "/metrics", metrics.ScrapeHandler())
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(apispec.OpenAPI)
	})

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
