package server

import (
	"context"
	"fmt"
	"log/slog"

	"cdf-insights/internal/config"
	"cdf-insights/internal/database"
	"cdf-insights/internal/dataset"
	"cdf-insights/internal/middleware"
	"cdf-insights/internal/models"
	"cdf-insights/internal/repositories"
	"cdf-insights/internal/services"
)

// App holds the services wired for one process
type App struct {
	Config     *config.Config
	DB         *database.DB
	Allocation services.AllocationServiceInterface
	Export     services.ExportServiceInterface
	Tokens     services.TokenServiceInterface
	Seeder     *services.DatasetSeeder
	Limiter    *middleware.VisitorLimiter
	// Watcher is set for a file source with DATASET_WATCH enabled
	Watcher *services.DatasetWatcher
}

// Bootstrap wires the dataset source, services and rate limiter from cfg and
// performs the startup load. A failed startup load is logged and the API
// serves DATASET_001 until an admin reload succeeds.
func Bootstrap(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	metrics := services.NewPrometheusMetrics()
	datasetLogger := services.NewDatasetLogger(logger)

	app := &App{
		Config:  cfg,
		Export:  services.NewExportService(metrics),
		Tokens:  services.NewTokenService(&cfg.Security),
		Limiter: middleware.NewVisitorLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst),
	}

	var (
		source  dataset.Source
		history repositories.DatasetLoadLogRepositoryInterface
	)

	switch cfg.Dataset.Source {
	case config.SourceFile:
		source = dataset.NewFileSource(cfg.Dataset.RecordsPath, cfg.Dataset.ProvincesPath)
	case config.SourceDatabase:
		db, err := database.Initialize(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		app.DB = db

		allocations := repositories.NewAllocationRepository(db.DB)
		provinces := repositories.NewProvinceRepository(db.DB)
		app.Seeder = services.NewDatasetSeeder(repositories.NewTransactor(db.DB), allocations, provinces, datasetLogger)

		// an empty database is always seeded; SEED_DATABASE overwrites existing rows
		if _, err := app.Seeder.Seed(ctx, dataset.NewEmbeddedSource(), cfg.Dataset.SeedDatabase); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to seed database: %w", err)
		}

		source = services.NewBreakerSource(services.NewRepositorySource(allocations, provinces), services.DefaultBreakerConfig())
		history = repositories.NewDatasetLoadLogRepository(db.DB)
	default:
		source = dataset.NewEmbeddedSource()
	}

	loader := services.NewDatasetLoader(source, datasetLogger, metrics, services.LoaderOptions{
		Strict:    cfg.Dataset.StrictLoading,
		Normalize: cfg.Dataset.NormalizeLabels,
	})
	app.Allocation = services.NewAllocationService(loader, history, datasetLogger, metrics)

	if _, err := app.Allocation.Reload(ctx, models.LoadTriggerStartup, ""); err != nil {
		logger.Error("startup dataset load failed", "source", source.Name(), "error", err)
	}

	if cfg.Dataset.Source == config.SourceFile && cfg.Dataset.WatchFiles {
		watcher, err := services.NewDatasetWatcher(app.Allocation, logger, cfg.Dataset.RecordsPath, cfg.Dataset.ProvincesPath)
		if err != nil {
			return nil, err
		}
		app.Watcher = watcher
	}

	return app, nil
}

// Dependencies returns the HTTP layer's view of the app
func (a *App) Dependencies() Dependencies {
	deps := Dependencies{
		Config:     a.Config,
		Allocation: a.Allocation,
		Export:     a.Export,
		Tokens:     a.Tokens,
		Limiter:    a.Limiter,
	}
	if a.DB != nil {
		deps.DB = a.DB.DB
	}
	if a.Seeder != nil {
		deps.Seeder = a.Seeder
	}
	return deps
}

// Close releases the database connection, if any
func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}
	return a.DB.Close()
}
