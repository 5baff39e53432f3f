package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"cdf-insights/db/migrations"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Migrator applies the embedded postgres migrations
type Migrator struct {
	db       *sql.DB
	source   fs.FS
	attempts int
	interval time.Duration
}

func NewMigrator(db *sql.DB) *Migrator {
	return &Migrator{
		db:       db,
		source:   migrations.FS,
		attempts: 30,
		interval: 2 * time.Second,
	}
}

// Wait pings until the database answers, giving up after the configured
// attempts or when ctx ends
func (m *Migrator) Wait(ctx context.Context) error {
	var lastErr error
	for attempt := 1; attempt <= m.attempts; attempt++ {
		if lastErr = m.db.PingContext(ctx); lastErr == nil {
			return nil
		}
		slog.WarnContext(ctx, "database not ready", "attempt", attempt, "max_attempts", m.attempts, "error", lastErr)

		if attempt == m.attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(m.interval):
		}
	}
	return fmt.Errorf("database not ready after %d attempts: %w", m.attempts, lastErr)
}

// Up applies pending migrations and returns the resulting schema version.
// A dirty schema is forced back to its recorded version first. Cancelling
// ctx stops after the migration in flight.
func (m *Migrator) Up(ctx context.Context) (uint, error) {
	src, err := iofs.New(m.source, ".")
	if err != nil {
		return 0, fmt.Errorf("failed to open migration source: %w", err)
	}
	driver, err := postgres.WithInstance(m.db, &postgres.Config{})
	if err != nil {
		return 0, fmt.Errorf("failed to create postgres driver: %w", err)
	}
	mg, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return 0, fmt.Errorf("failed to create migration instance: %w", err)
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			mg.GracefulStop <- true
		case <-done:
		}
	}()

	from, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	if dirty {
		slog.WarnContext(ctx, "schema is dirty, forcing version", "version", from)
		if err := mg.Force(int(from)); err != nil {
			return 0, fmt.Errorf("failed to force version %d: %w", from, err)
		}
	}

	if err := mg.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return from, nil
		}
		return 0, fmt.Errorf("migration failed: %w", err)
	}

	to, _, err := mg.Version()
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	slog.InfoContext(ctx, "applied migrations", "from_version", from, "to_version", to)
	return to, nil
}
