package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cdf-insights/internal/config"
	"cdf-insights/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const pingTimeout = 5 * time.Second

// DB is the gorm handle shared by the repositories
type DB struct {
	*gorm.DB
	driver string
}

// schemaModels backs the sqlite schema and the postgres fallback when the
// migrator cannot run
var schemaModels = []any{
	&models.AllocationRecord{},
	&models.ProvinceConstituency{},
	&models.DatasetLoadLog{},
}

// lookupIndexes mirror the indexes in db/migrations for gorm managed schemas
var lookupIndexes = []struct {
	name, table, columns string
}{
	{"idx_cdf_allocations_position", "cdf_allocations", "position"},
	{"idx_cdf_allocations_constituency", "cdf_allocations", "constituency"},
	{"idx_cdf_allocations_category", "cdf_allocations", "category"},
	{"idx_province_constituencies_province", "province_constituencies", "province"},
	{"idx_dataset_load_logs_created_at", "dataset_load_logs", "created_at"},
	{"idx_dataset_load_logs_status", "dataset_load_logs", "status"},
}

func dialectorFor(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverPostgres, "":
		return postgres.Open(cfg.DSN()), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Open connects with the configured pool limits. gorm warnings and slow
// queries go to the default slog handler.
func Open(ctx context.Context, cfg *config.DatabaseConfig) (*DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	gormLogger := logger.New(
		slog.NewLogLogger(slog.Default().Handler(), slog.LevelWarn),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: gdb, driver: cfg.Driver}, nil
}

// AutoMigrate creates the schema from the gorm models and adds the lookup indexes
func (db *DB) AutoMigrate() error {
	if err := db.DB.AutoMigrate(schemaModels...); err != nil {
		return err
	}
	migrator := db.DB.Migrator()
	for _, idx := range lookupIndexes {
		if migrator.HasIndex(idx.table, idx.name) {
			continue
		}
		stmt := fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s(%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(stmt).Error; err != nil {
			slog.Warn("failed to create index", "index", idx.name, "error", err)
		}
	}
	return nil
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Initialize opens the database and prepares its schema. Postgres with
// AUTO_MIGRATE runs the versioned migrations; sqlite, or a migrator
// failure, falls back to gorm's AutoMigrate.
func Initialize(ctx context.Context, cfg *config.Config) (*DB, error) {
	db, err := Open(ctx, &cfg.Database)
	if err != nil {
		return nil, err
	}

	if db.driver != config.DriverSQLite && cfg.Database.AutoMigrate {
		version, err := migrateUp(ctx, db)
		if err == nil {
			slog.InfoContext(ctx, "database initialized", "driver", db.driver, "schema_version", version)
			return db, nil
		}
		slog.WarnContext(ctx, "versioned migrations failed, falling back to gorm automigrate", "error", err)
	}

	if err := db.AutoMigrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.InfoContext(ctx, "database initialized", "driver", db.driver)
	return db, nil
}

func migrateUp(ctx context.Context, db *DB) (uint, error) {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return 0, err
	}
	m := NewMigrator(sqlDB)
	if err := m.Wait(ctx); err != nil {
		return 0, err
	}
	return m.Up(ctx)
}
