package services

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	datasetLoads          *prometheus.CounterVec
	datasetLoadDuration   prometheus.Histogram
	datasetRecords        prometheus.Gauge
	datasetSkipped        prometheus.Gauge
	allocationQueries     *prometheus.CounterVec
	allocationQueryTime   *prometheus.HistogramVec
	allocationResultSize  *prometheus.HistogramVec
	exportsTotal          *prometheus.CounterVec
	exportedRecords       prometheus.Counter
	datasetReloadsTotal   *prometheus.CounterVec
	totalAllocationAmount prometheus.Gauge
}

var (
	metricsInstance MetricsRecorderInterface
	metricsOnce     sync.Once
)

// NewPrometheusMetrics returns the process-wide recorder. Collectors register
// with the default registry once.
func NewPrometheusMetrics() MetricsRecorderInterface {
	metricsOnce.Do(func() {
		metricsInstance = newPrometheusMetrics()
	})
	return metricsInstance
}

func newPrometheusMetrics() *PrometheusMetrics {
	return &PrometheusMetrics{
		datasetLoads: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cdf_dataset_loads_total",
				Help: "Total number of allocation dataset loads",
			},
			[]string{"status"},
		),
		datasetLoadDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "cdf_dataset_load_duration_milliseconds",
				Help:    "Allocation dataset load duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		datasetRecords: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "cdf_dataset_records",
				Help: "Number of allocation records in the active dataset",
			},
		),
		datasetSkipped: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "cdf_dataset_skipped_records",
				Help: "Number of malformed records skipped by the last load",
			},
		),
		allocationQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cdf_allocation_queries_total",
				Help: "Total number of allocation aggregation queries by view",
			},
			[]string{"view", "status"},
		),
		allocationQueryTime: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cdf_allocation_query_duration_seconds",
				Help:    "Allocation aggregation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"view"},
		),
		allocationResultSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cdf_allocation_query_results",
				Help:    "Number of entries returned by allocation queries",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
			[]string{"view"},
		),
		exportsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cdf_exports_total",
				Help: "Total number of allocation exports by format",
			},
			[]string{"format", "status"},
		),
		exportedRecords: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "cdf_exported_records_total",
				Help: "Total number of allocation records exported",
			},
		),
		datasetReloadsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cdf_dataset_reloads_total",
				Help: "Total number of dataset reloads by trigger",
			},
			[]string{"trigger", "status"},
		),
		totalAllocationAmount: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "cdf_total_allocation_amount",
				Help: "Sum of all allocation amounts in the active dataset",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]
	if status == "" {
		status = "success"
	}

	switch name {
	case "dataset_load":
		m.datasetLoads.WithLabelValues(status).Inc()
	case "allocation_query":
		if view := tags["view"]; view != "" {
			m.allocationQueries.WithLabelValues(view, status).Inc()
		}
	case "export":
		if format := tags["format"]; format != "" {
			m.exportsTotal.WithLabelValues(format, status).Inc()
		}
	case "dataset_reload":
		trigger := tags["trigger"]
		if trigger == "" {
			trigger = "unknown"
		}
		m.datasetReloadsTotal.WithLabelValues(trigger, status).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "dataset_load":
		m.datasetLoadDuration.Observe(float64(duration.Milliseconds()))
	default:
		m.allocationQueryTime.WithLabelValues(name).Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "dataset_records":
		m.datasetRecords.Set(value)
	case "dataset_skipped_records":
		m.datasetSkipped.Set(value)
	case "total_allocation_amount":
		m.totalAllocationAmount.Set(value)
	case "exported_records":
		m.exportedRecords.Add(value)
	case "query_results":
		if view := tags["view"]; view != "" {
			m.allocationResultSize.WithLabelValues(view).Observe(value)
		}
	}
}

// NoopMetrics discards every measurement
type NoopMetrics struct{}

// NewNoopMetrics creates a recorder for tools that do not expose metrics
func NewNoopMetrics() MetricsRecorderInterface {
	return NoopMetrics{}
}

func (NoopMetrics) IncrementCounter(string, map[string]string) {}

func (NoopMetrics) RecordProcessingTime(string, time.Duration) {}

func (NoopMetrics) RecordGauge(string, float64, map[string]string) {}
