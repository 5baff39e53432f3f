package repositories

import (
	"context"
	"time"

	"cdf-insights/internal/models"
)

// AllocationRepositoryInterface defines the contract for persisted allocation records
type AllocationRepositoryInterface interface {
	ReplaceAll(ctx context.Context, records []models.AllocationRecord) error
	List(ctx context.Context) ([]models.AllocationRecord, error)
	Count(ctx context.Context) (int64, error)
}

// ProvinceRepositoryInterface defines the contract for the persisted province registry
type ProvinceRepositoryInterface interface {
	ReplaceAll(ctx context.Context, registry models.ProvinceRegistry) error
	Registry(ctx context.Context) (models.ProvinceRegistry, error)
	Count(ctx context.Context) (int64, error)
}

// DatasetLoadLogRepositoryInterface defines the contract for dataset load history
type DatasetLoadLogRepositoryInterface interface {
	Create(ctx context.Context, entry *models.DatasetLoadLog) error
	List(ctx context.Context, offset, limit int) ([]*models.DatasetLoadLog, int64, error)
	GetLatestSuccessful(ctx context.Context) (*models.DatasetLoadLog, error)
	DeleteOlderThan(ctx context.Context, duration time.Duration) (int64, error)
}
