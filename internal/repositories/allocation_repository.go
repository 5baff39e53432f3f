package repositories

import (
	"context"
	"fmt"

	"cdf-insights/internal/models"

	"gorm.io/gorm"
)

const insertBatchSize = 200

// AllocationRepository handles database operations for allocation records
type AllocationRepository struct {
	db *gorm.DB
}

// NewAllocationRepository creates a new allocation repository
func NewAllocationRepository(db *gorm.DB) AllocationRepositoryInterface {
	return &AllocationRepository{
		db: db,
	}
}

// ReplaceAll swaps the stored dataset for records in one transaction.
// Positions are reassigned from slice order.
func (r *AllocationRepository) ReplaceAll(ctx context.Context, records []models.AllocationRecord) error {
	rows := make([]models.AllocationRecord, len(records))
	for i, rec := range records {
		rec.ID = 0
		rec.Position = i
		rows[i] = rec
	}

	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.AllocationRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear allocations: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, insertBatchSize).Error; err != nil {
			return fmt.Errorf("failed to insert allocations: %w", err)
		}
		return nil
	})
}

// List returns every record in dataset order
func (r *AllocationRepository) List(ctx context.Context) ([]models.AllocationRecord, error) {
	var records []models.AllocationRecord
	if err := conn(ctx, r.db).Order("position ASC, id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list allocations: %w", err)
	}
	return records, nil
}

func (r *AllocationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := conn(ctx, r.db).Model(&models.AllocationRecord{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count allocations: %w", err)
	}
	return count, nil
}
