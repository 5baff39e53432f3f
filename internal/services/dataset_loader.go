package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cdf-insights/internal/dataset"
	"cdf-insights/internal/models"
	"cdf-insights/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	ErrMalformedRecord = errors.New("malformed allocation record")
	ErrNoRecords       = errors.New("dataset contains no usable records")
)

// LoaderOptions controls how a dataset load treats bad input
type LoaderOptions struct {
	// Strict aborts the load on the first malformed record instead of skipping it
	Strict bool
	// Normalize folds category misspellings and subcategory casing at load time
	Normalize bool
}

type datasetLoader struct {
	source     dataset.Source
	validator  *validation.Validator
	normalizer LabelNormalizerInterface
	logger     DatasetLoggerInterface
	metrics    MetricsRecorderInterface
	opts       LoaderOptions
}

// NewDatasetLoader creates a loader that validates records from source
func NewDatasetLoader(source dataset.Source, logger DatasetLoggerInterface, metrics MetricsRecorderInterface, opts LoaderOptions) DatasetLoaderInterface {
	return &datasetLoader{
		source:     source,
		validator:  validation.GetValidator(),
		normalizer: NewLabelNormalizer(),
		logger:     logger,
		metrics:    metrics,
		opts:       opts,
	}
}

// Load reads, validates and optionally normalizes the dataset
func (l *datasetLoader) Load(ctx context.Context) (*models.AllocationDataset, *models.LoadReport, error) {
	start := time.Now()
	l.logger.LogLoadStarted(ctx, l.source.Name(), l.opts.Strict)

	ds, report, err := l.load(ctx)
	if err != nil {
		l.logger.LogLoadFailed(ctx, l.source.Name(), err)
		l.metrics.IncrementCounter("dataset_load", map[string]string{"status": "failed"})
		return nil, report, err
	}

	l.metrics.IncrementCounter("dataset_load", map[string]string{"status": "success"})
	l.metrics.RecordProcessingTime("dataset_load", time.Since(start))
	l.metrics.RecordGauge("dataset_records", float64(report.Loaded), nil)
	l.metrics.RecordGauge("dataset_skipped_records", float64(report.Skipped), nil)
	l.logger.LogLoadCompleted(ctx, report.Version, report.Loaded, report.Skipped, report.Provinces, time.Since(start))

	return ds, report, nil
}

func (l *datasetLoader) load(ctx context.Context) (*models.AllocationDataset, *models.LoadReport, error) {
	report := &models.LoadReport{
		Version:  uuid.New(),
		Source:   l.source.Name(),
		LoadedAt: time.Now().UTC(),
	}

	raw, err := l.source.Records(ctx)
	if err != nil {
		return nil, report, fmt.Errorf("failed to read records: %w", err)
	}
	provinces, err := l.source.Provinces(ctx)
	if err != nil {
		return nil, report, fmt.Errorf("failed to read provinces: %w", err)
	}

	report.Total = len(raw)
	records := make([]models.AllocationRecord, 0, len(raw))

	for _, r := range raw {
		if err := ctx.Err(); err != nil {
			return nil, report, err
		}

		reason := l.rejectReason(r)
		if reason != "" {
			if l.opts.Strict {
				return nil, report, fmt.Errorf("%w at index %d: %s", ErrMalformedRecord, r.Index, reason)
			}
			report.Skipped++
			report.Issues = append(report.Issues, models.LoadIssue{Index: r.Index, Reason: reason})
			l.logger.LogRecordSkipped(ctx, r.Index, reason)
			continue
		}

		record := r.Record
		if l.opts.Normalize {
			normalized := l.normalizer.Normalize(record)
			if normalized.Category != record.Category || normalized.SubCategory != record.SubCategory {
				report.Normalized++
			}
			record = normalized
		}
		records = append(records, record)
	}

	if len(records) == 0 && report.Total > 0 {
		return nil, report, ErrNoRecords
	}

	registry := models.NewProvinceRegistry(provinces)
	report.Loaded = len(records)
	report.Provinces = registry.Len()

	return &models.AllocationDataset{
		Version:  report.Version,
		Source:   report.Source,
		LoadedAt: report.LoadedAt,
		Records:  records,
		Registry: registry,
	}, report, nil
}

// rejectReason returns why a raw record cannot be used, or "" when it is valid
func (l *datasetLoader) rejectReason(r dataset.RawRecord) string {
	if r.Err != nil {
		return r.Err.Error()
	}

	if err := l.validator.Struct(r.Record); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
			}
			return strings.Join(msgs, "; ")
		}
		return err.Error()
	}

	// whitespace-only labels pass "required"
	if err := r.Record.Validate(); err != nil {
		return err.Error()
	}
	return ""
}
