package services

import (
	"context"
	"io"
	"time"

	"cdf-insights/internal/dataset"
	"cdf-insights/internal/models"

	"github.com/google/uuid"
)

// AllocationServiceInterface serves dashboard views over the active dataset
type AllocationServiceInterface interface {
	Reload(ctx context.Context, trigger, ipAddress string) (*models.LoadReport, error)
	Status() (*models.LoadReport, error)
	LoadHistory(ctx context.Context, offset, limit int) ([]*models.DatasetLoadLog, int64, error)

	Records(ctx context.Context, criteria models.FilterCriteria) ([]models.AllocationRecord, error)
	Summary(ctx context.Context, criteria models.FilterCriteria) (*models.DashboardSummary, error)
	Totals(ctx context.Context, criteria models.FilterCriteria, dimension string) ([]models.PercentageShare, error)
	CategoryPerformance(ctx context.Context) ([]models.CategoryPerformance, error)
	SubcategoryBreakdown(ctx context.Context, category string) (models.Totals, error)
	Constituencies(ctx context.Context) ([]string, error)
	TopConstituencies(ctx context.Context, criteria models.FilterCriteria, limit int) (models.Totals, error)
	ProvinceBreakdown(ctx context.Context, criteria models.FilterCriteria) ([]models.PercentageShare, error)
	ProvinceEfficiency(ctx context.Context, limit int) ([]models.ProvinceEfficiency, error)
	Provinces(ctx context.Context) ([]models.Province, error)
}

// ExportServiceInterface renders allocation records for download
type ExportServiceInterface interface {
	ContentType(format string) (string, error)
	FileName(format string, at time.Time) string
	Export(w io.Writer, records []models.AllocationRecord, format string) error
}

// DatasetLoaderInterface produces a validated dataset from a source
type DatasetLoaderInterface interface {
	Load(ctx context.Context) (*models.AllocationDataset, *models.LoadReport, error)
}

// DatasetSeederInterface copies a dataset source into the database
type DatasetSeederInterface interface {
	Seed(ctx context.Context, src dataset.Source, force bool) (int, error)
}

// TokenServiceInterface signs and validates admin tokens
type TokenServiceInterface interface {
	GenerateToken(subject, role string, ttl time.Duration) (string, time.Time, error)
	ValidateToken(tokenString string) (*models.AdminClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// LabelNormalizerInterface folds label variants onto canonical spellings
type LabelNormalizerInterface interface {
	Category(label string) string
	SubCategory(label string) string
	Normalize(record models.AllocationRecord) models.AllocationRecord
}

// DatasetLoggerInterface provides structured logging for dataset events
type DatasetLoggerInterface interface {
	LogLoadStarted(ctx context.Context, source string, strict bool)
	LogRecordSkipped(ctx context.Context, index int, reason string)
	LogLoadCompleted(ctx context.Context, version uuid.UUID, loaded, skipped, provinces int, duration time.Duration)
	LogLoadFailed(ctx context.Context, source string, err error)
	LogQuery(ctx context.Context, view string, criteria models.FilterCriteria, resultCount int)
	LogHistoryFailed(ctx context.Context, err error)
	LogSeedCompleted(ctx context.Context, source string, records, provinces int)
}

// MetricsRecorderInterface records metrics for monitoring
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
