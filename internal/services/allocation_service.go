package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"cdf-insights/internal/models"
	"cdf-insights/internal/repositories"

	"golang.org/x/sync/singleflight"
)

var (
	ErrDatasetNotLoaded   = errors.New("allocation dataset not loaded")
	ErrHistoryUnavailable = errors.New("dataset load history requires a database")
)

// Query views recorded in metrics and logs
const (
	ViewRecords             = "records"
	ViewSummary             = "summary"
	ViewTotals              = "totals"
	ViewCategoryPerformance = "category_performance"
	ViewSubcategories       = "subcategories"
	ViewConstituencies      = "constituencies"
	ViewTopConstituencies   = "top_constituencies"
	ViewProvinces           = "provinces"
	ViewProvinceEfficiency  = "province_efficiency"
)

type allocationService struct {
	reloads singleflight.Group

	mu      sync.RWMutex
	current *models.AllocationDataset
	report  *models.LoadReport

	loader  DatasetLoaderInterface
	history repositories.DatasetLoadLogRepositoryInterface
	logger  DatasetLoggerInterface
	metrics MetricsRecorderInterface
}

// NewAllocationService creates the dashboard service. The dataset is loaded
// by Reload. history may be nil when no database is configured.
func NewAllocationService(loader DatasetLoaderInterface, history repositories.DatasetLoadLogRepositoryInterface, logger DatasetLoggerInterface, metrics MetricsRecorderInterface) AllocationServiceInterface {
	return &allocationService{
		loader:  loader,
		history: history,
		logger:  logger,
		metrics: metrics,
	}
}

type reloadResult struct {
	report *models.LoadReport
	err    error
}

// Reload loads a fresh dataset and swaps it in. The previous dataset stays
// active when loading fails. Concurrent calls share one load.
func (s *allocationService) Reload(ctx context.Context, trigger, ipAddress string) (*models.LoadReport, error) {
	v, _, _ := s.reloads.Do("reload", func() (interface{}, error) {
		report, err := s.reload(ctx, trigger, ipAddress)
		return reloadResult{report: report, err: err}, nil
	})
	res := v.(reloadResult)
	return res.report, res.err
}

func (s *allocationService) reload(ctx context.Context, trigger, ipAddress string) (*models.LoadReport, error) {
	ds, report, err := s.loader.Load(ctx)
	s.recordHistory(ctx, report, trigger, ipAddress, err)
	if err != nil {
		s.metrics.IncrementCounter("dataset_reload", map[string]string{"trigger": trigger, "status": "failed"})
		return report, fmt.Errorf("failed to reload dataset: %w", err)
	}
	s.metrics.IncrementCounter("dataset_reload", map[string]string{"trigger": trigger, "status": "success"})

	s.mu.Lock()
	s.current = ds
	s.report = report
	s.mu.Unlock()

	s.metrics.RecordGauge("total_allocation_amount", SummarizeRecords(ds.Records).TotalAmount.InexactFloat64(), nil)
	return report, nil
}

func (s *allocationService) recordHistory(ctx context.Context, report *models.LoadReport, trigger, ipAddress string, loadErr error) {
	if s.history == nil {
		return
	}
	entry := models.NewDatasetLoadLog(report, trigger, ipAddress, loadErr)
	if err := s.history.Create(ctx, entry); err != nil {
		s.logger.LogHistoryFailed(ctx, err)
	}
}

// LoadHistory returns past load attempts, newest first
func (s *allocationService) LoadHistory(ctx context.Context, offset, limit int) ([]*models.DatasetLoadLog, int64, error) {
	if s.history == nil {
		return nil, 0, ErrHistoryUnavailable
	}
	return s.history.List(ctx, offset, limit)
}

// Status returns the report of the active dataset
func (s *allocationService) Status() (*models.LoadReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.report == nil {
		return nil, ErrDatasetNotLoaded
	}
	report := *s.report
	return &report, nil
}

func (s *allocationService) snapshot() (*models.AllocationDataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, ErrDatasetNotLoaded
	}
	return s.current, nil
}

func (s *allocationService) observe(ctx context.Context, view string, criteria models.FilterCriteria, start time.Time, results int) {
	s.metrics.IncrementCounter("allocation_query", map[string]string{"view": view, "status": "success"})
	s.metrics.RecordProcessingTime(view, time.Since(start))
	s.metrics.RecordGauge("query_results", float64(results), map[string]string{"view": view})
	s.logger.LogQuery(ctx, view, criteria, results)
}

func (s *allocationService) Records(ctx context.Context, criteria models.FilterCriteria) ([]models.AllocationRecord, error) {
	start := time.Now()
	ds, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	records := FilterRecords(ds.Records, criteria, ds.Registry)
	s.observe(ctx, ViewRecords, criteria, start, len(records))
	return records, nil
}

func (s *allocationService) Summary(ctx context.Context, criteria models.FilterCriteria) (*models.DashboardSummary, error) {
	start := time.Now()
	ds, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	summary := &models.DashboardSummary{
		Overall:  SummarizeRecords(ds.Records),
		Filtered: SummarizeRecords(FilterRecords(ds.Records, criteria, ds.Registry)),
		Filters:  criteria.String(),
	}
	s.observe(ctx, ViewSummary, criteria, start, summary.Filtered.RecordCount)
	return summary, nil
}

// Totals groups the filtered records along dimension. Percentages are
// relative to the filtered grand total.
func (s *allocationService) Totals(ctx context.Context, criteria models.FilterCriteria, dimension string) ([]models.PercentageShare, error) {
	start := time.Now()
	ds, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	keyFn, err := KeyFuncFor(dimension, ds.Registry)
	if err != nil {
		return nil, err
	}

	filtered := FilterRecords(ds.Records, criteria, ds.Registry)
	shares := PercentageBreakdown(GroupTotals(filtered, keyFn), SummarizeRecords(filtered).TotalAmount)
	s.observe(ctx, ViewTotals, criteria, start, len(shares))
	return shares, nil
}

func (s *allocationService) CategoryPerformance(ctx context.Context) ([]models.CategoryPerformance, error) {
	start := time.Now()
	ds, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	perf := CategoryPerformanceOf(ds.Records)
	s.observe(ctx, ViewCategoryPerformance, models.FilterCriteria{}, start, len(perf))
	return perf, nil
}

func (s *allocationService) SubcategoryBreakdown(ctx context.Context, category string) (models.Totals, error) {
	start := time.Now()
	ds, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	totals := SubcategoryBreakdown(ds.Records, category)
	s.observe(ctx, ViewSubcategories, models.FilterCriteria{Category: category}, start, len(totals))
	return totals, nil
}

func (s *allocationService) Constituencies(ctx context.Context) ([]string, error) {
	start := time.Now()
	ds, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	names := ConstituencyNames(ds.Records)
	s.observe(ctx, ViewConstituencies, models.FilterCriteria{}, start, len(names))
	return names, nil
}

func (s *allocationService) TopConstituencies(ctx context.Context, criteria models.FilterCriteria, limit int) (models.Totals, error) {
	start := time.Now()
	ds, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	filtered := FilterRecords(ds.Records, criteria, ds.Registry)
	top := TopN(GroupTotals(filtered, ByConstituency), limit)
	s.observe(ctx, ViewTopConstituencies, criteria, start, len(top))
	return top, nil
}

// ProvinceBreakdown returns every registry province with its share of the
// filtered grand total, orphans included in the denominator
func (s *allocationService) ProvinceBreakdown(ctx context.Context, criteria models.FilterCriteria) ([]models.PercentageShare, error) {
	start := time.Now()
	ds, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	filtered := FilterRecords(ds.Records, criteria, ds.Registry)
	shares := PercentageBreakdown(ProvinceBreakdown(filtered, ds.Registry), SummarizeRecords(filtered).TotalAmount)
	s.observe(ctx, ViewProvinces, criteria, start, len(shares))
	return shares, nil
}

func (s *allocationService) ProvinceEfficiency(ctx context.Context, limit int) ([]models.ProvinceEfficiency, error) {
	start := time.Now()
	ds, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	eff := ProvinceEfficiencyOf(ds.Records, ds.Registry, limit)
	s.observe(ctx, ViewProvinceEfficiency, models.FilterCriteria{}, start, len(eff))
	return eff, nil
}

func (s *allocationService) Provinces(ctx context.Context) ([]models.Province, error) {
	ds, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return ds.Registry.Provinces(), nil
}
