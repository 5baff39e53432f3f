package repositories

import (
	"context"
	"fmt"

	"cdf-insights/internal/models"

	"gorm.io/gorm"
)

// ProvinceRepository persists the province registry as flat rows
type ProvinceRepository struct {
	db *gorm.DB
}

func NewProvinceRepository(db *gorm.DB) ProvinceRepositoryInterface {
	return &ProvinceRepository{
		db: db,
	}
}

// ReplaceAll stores registry, dropping any previous entries
func (r *ProvinceRepository) ReplaceAll(ctx context.Context, registry models.ProvinceRegistry) error {
	rows := registry.Entries()

	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.ProvinceConstituency{}).Error; err != nil {
			return fmt.Errorf("failed to clear province registry: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, insertBatchSize).Error; err != nil {
			return fmt.Errorf("failed to insert province registry: %w", err)
		}
		return nil
	})
}

// Registry rebuilds the registry in its stored order
func (r *ProvinceRepository) Registry(ctx context.Context) (models.ProvinceRegistry, error) {
	var rows []models.ProvinceConstituency
	err := conn(ctx, r.db).
		Order("province_position ASC, position ASC").
		Find(&rows).Error
	if err != nil {
		return models.ProvinceRegistry{}, fmt.Errorf("failed to load province registry: %w", err)
	}
	return models.RegistryFromEntries(rows), nil
}

func (r *ProvinceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := conn(ctx, r.db).Model(&models.ProvinceConstituency{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count province entries: %w", err)
	}
	return count, nil
}
