package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/skystack/flightform/internal"
	"github.com/skystack/flightform/internal/catalog"
	"github.com/skystack/flightform/internal/editor"
	"github.com/skystack/flightform/internal/handler"
	"github.com/skystack/flightform/internal/metrics"
	"github.com/skystack/flightform/internal/middleware"
	"github.com/skystack/flightform/internal/service"
	"github.com/skystack/flightform/internal/storage"
	"github.com/skystack/flightform/internal/store"
	"github.com/skystack/flightform/internal/weather"
)

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize the report store
	var reportStore store.ReportStore
	switch cfg.StoreProvider {
	case store.ProviderMemory:
		reportStore = store.NewMemoryStore()
		logger.Info("using in-memory report store")

	case store.ProviderSQLite:
		db, err := store.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return fmt.Errorf("sqlite open failed: %w", err)
		}
		defer db.Close()

		if err := internal.RunMigrations(db, "sqlite3"); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		reportStore = store.NewSQLiteStore(db)
		logger.Info("database ready", "provider", "sqlite", "path", cfg.SQLitePath)

	case store.ProviderPostgres:
		// Migrations run over database/sql; the store itself uses a
		// pgx pool.
		migrateDB, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}
		if err := internal.RunMigrations(migrateDB, "postgres"); err != nil {
			migrateDB.Close()
			return fmt.Errorf("migration failed: %w", err)
		}
		migrateDB.Close()

		pool, err := store.OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("postgres connection failed: %w", err)
		}
		defer pool.Close()
		reportStore = store.NewPostgresStore(pool)
		logger.Info("database ready", "provider", "postgres")
	}

	// Initialize object storage for export artifacts
	var objectStorage storage.Storage
	switch cfg.StorageProvider {
	case storage.ProviderS3:
		objectStorage, err = storage.NewS3Storage(storage.S3Config{
			Endpoint:        cfg.S3Endpoint,
			Region:          cfg.S3Region,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			BucketName:      cfg.S3BucketName,
			PublicURL:       cfg.S3PublicURL,
		}, logger)
	default:
		objectStorage, err = storage.NewLocalStorage(storage.LocalConfig{
			BasePath: cfg.LocalStoragePath,
			BaseURL:  cfg.LocalStorageURL,
		}, logger)
	}
	if err != nil {
		return fmt.Errorf("storage initialization failed: %w", err)
	}

	// Initialize the weather service and background refresher
	var provider weather.Provider
	if cfg.WeatherProvider == weather.ProviderOpenMeteo {
		provider = weather.NewOpenMeteoProvider(logger)
	} else {
		provider = weather.NewMockProvider(logger)
	}

	weatherSvc := weather.NewService(provider, weather.Config{
		Latitude:  cfg.WeatherLatitude,
		Longitude: cfg.WeatherLongitude,
		CacheTTL:  cfg.WeatherCacheTTL,
	}, logger)

	if cfg.WeatherRefreshInterval > 0 {
		refresher := weather.NewRefresher(weatherSvc, cfg.WeatherRefreshInterval, nil, logger)
		refresher.Start(ctx)
		defer refresher.Stop()
	}

	// Initialize services and handlers
	cat := catalog.Default()
	reportSvc := service.NewReportService(
		reportStore, cat, weatherSvc, editor.UUIDGenerator{}, nil, logger)

	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus scrape endpoint
	mux.Handle("GET /metrics", metrics.Handler())

	handler.NewReportHandler(reportSvc, objectStorage, logger).RegisterRoutes(mux)
	handler.NewCatalogHandler(cat, reportSvc, logger).RegisterRoutes(mux)
	handler.NewWeatherHandler(weatherSvc, logger).RegisterRoutes(mux)

	loggingMw := middleware.NewRequestLoggingMiddleware(logger)
	root := middleware.Stack(mux, metrics.Middleware, loggingMw.Handler)

	// ==========================================================================
	// Start server
	// ==========================================================================

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: root,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("server started", "address", server.Addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
		}
	}()

	<-sigChan
	logger.Info("shutdown signal received, initiating graceful shutdown")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	logger.Info("graceful shutdown complete")
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
