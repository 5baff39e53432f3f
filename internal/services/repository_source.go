package services

import (
	"context"
	"fmt"

	"cdf-insights/internal/dataset"
	"cdf-insights/internal/models"
	"cdf-insights/internal/repositories"
)

// RepositorySource serves a dataset previously stored in the database
type RepositorySource struct {
	allocations repositories.AllocationRepositoryInterface
	provinces   repositories.ProvinceRepositoryInterface
}

func NewRepositorySource(allocations repositories.AllocationRepositoryInterface, provinces repositories.ProvinceRepositoryInterface) *RepositorySource {
	return &RepositorySource{allocations: allocations, provinces: provinces}
}

func (s *RepositorySource) Name() string {
	return "database"
}

func (s *RepositorySource) Records(ctx context.Context) ([]dataset.RawRecord, error) {
	records, err := s.allocations.List(ctx)
	if err != nil {
		return nil, err
	}

	raw := make([]dataset.RawRecord, len(records))
	for i, rec := range records {
		raw[i] = dataset.RawRecord{Index: i, Record: rec}
	}
	return raw, nil
}

func (s *RepositorySource) Provinces(ctx context.Context) ([]models.Province, error) {
	registry, err := s.provinces.Registry(ctx)
	if err != nil {
		return nil, err
	}
	if registry.Len() == 0 {
		return nil, dataset.ErrEmptyRegistry
	}
	return registry.Provinces(), nil
}

// DatasetSeeder copies a dataset source into the database
type DatasetSeeder struct {
	tx          repositories.Transactor
	allocations repositories.AllocationRepositoryInterface
	provinces   repositories.ProvinceRepositoryInterface
	logger      DatasetLoggerInterface
}

func NewDatasetSeeder(tx repositories.Transactor, allocations repositories.AllocationRepositoryInterface, provinces repositories.ProvinceRepositoryInterface, logger DatasetLoggerInterface) *DatasetSeeder {
	return &DatasetSeeder{tx: tx, allocations: allocations, provinces: provinces, logger: logger}
}

// Seed stores the well-formed records of src. An already populated database
// is left alone unless force is set. Registry and records are replaced in one
// transaction. It returns the number of records stored.
func (s *DatasetSeeder) Seed(ctx context.Context, src dataset.Source, force bool) (int, error) {
	if !force {
		count, err := s.allocations.Count(ctx)
		if err != nil {
			return 0, err
		}
		if count > 0 {
			return 0, nil
		}
	}

	raw, err := src.Records(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read seed records: %w", err)
	}
	provinces, err := src.Provinces(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read seed provinces: %w", err)
	}

	records := make([]models.AllocationRecord, 0, len(raw))
	for _, r := range raw {
		if r.Err != nil || !r.Record.IsWellFormed() {
			continue
		}
		records = append(records, r.Record)
	}

	registry := models.NewProvinceRegistry(provinces)
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.provinces.ReplaceAll(ctx, registry); err != nil {
			return err
		}
		return s.allocations.ReplaceAll(ctx, records)
	})
	if err != nil {
		return 0, err
	}

	s.logger.LogSeedCompleted(ctx, src.Name(), len(records), registry.Len())
	return len(records), nil
}
