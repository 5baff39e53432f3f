package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cdf-insights/internal/models"

	"gorm.io/gorm"
)

var ErrLoadLogNotFound = errors.New("dataset load log not found")

// DatasetLoadLogRepository handles database operations for load history
type DatasetLoadLogRepository struct {
	db *gorm.DB
}

// NewDatasetLoadLogRepository creates a new load history repository
func NewDatasetLoadLogRepository(db *gorm.DB) DatasetLoadLogRepositoryInterface {
	return &DatasetLoadLogRepository{
		db: db,
	}
}

func (r *DatasetLoadLogRepository) Create(ctx context.Context, entry *models.DatasetLoadLog) error {
	if entry == nil {
		return errors.New("dataset load log cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create dataset load log: %w", err)
	}

	return nil
}

// List returns load history, newest first
func (r *DatasetLoadLogRepository) List(ctx context.Context, offset, limit int) ([]*models.DatasetLoadLog, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var logs []*models.DatasetLoadLog
	var total int64

	query := r.db.WithContext(ctx).Model(&models.DatasetLoadLog{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count dataset load logs: %w", err)
	}

	if err := query.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list dataset load logs: %w", err)
	}

	return logs, total, nil
}

func (r *DatasetLoadLogRepository) GetLatestSuccessful(ctx context.Context) (*models.DatasetLoadLog, error) {
	var entry models.DatasetLoadLog
	err := r.db.WithContext(ctx).
		Where("status = ?", models.LoadStatusSuccess).
		Order("created_at DESC").
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLoadLogNotFound
		}
		return nil, fmt.Errorf("failed to get latest dataset load: %w", err)
	}
	return &entry, nil
}

// DeleteOlderThan prunes history older than duration
func (r *DatasetLoadLogRepository) DeleteOlderThan(ctx context.Context, duration time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-duration)
	result := r.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&models.DatasetLoadLog{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete old dataset load logs: %w", result.Error)
	}
	return result.RowsAffected, nil
}
