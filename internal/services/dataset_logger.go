package services

import (
	"context"
	"log/slog"
	"time"

	"cdf-insights/internal/models"

	"github.com/google/uuid"
)

type contextKey string

// TraceIDKey carries the request trace ID through request contexts
const TraceIDKey contextKey = "trace_id"

// ContextWithTraceID returns a copy of ctx carrying the trace ID
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// DatasetLogger provides structured logging for dataset lifecycle events
type DatasetLogger struct {
	logger *slog.Logger
}

// NewDatasetLogger creates a new dataset logger
func NewDatasetLogger(logger *slog.Logger) DatasetLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &DatasetLogger{logger: logger}
}

// LogLoadStarted logs the start of a dataset load
func (dl *DatasetLogger) LogLoadStarted(ctx context.Context, source string, strict bool) {
	dl.logger.InfoContext(ctx, "dataset load started",
		slog.String("event_type", "dataset_load_started"),
		slog.String("source", source),
		slog.Bool("strict", strict),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

// LogRecordSkipped logs a record rejected during loading
func (dl *DatasetLogger) LogRecordSkipped(ctx context.Context, index int, reason string) {
	dl.logger.WarnContext(ctx, "skipping malformed allocation record",
		slog.String("event_type", "dataset_record_skipped"),
		slog.Int("index", index),
		slog.String("reason", reason),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

// LogLoadCompleted logs a successful dataset load
func (dl *DatasetLogger) LogLoadCompleted(ctx context.Context, version uuid.UUID, loaded, skipped, provinces int, duration time.Duration) {
	dl.logger.InfoContext(ctx, "dataset load completed",
		slog.String("event_type", "dataset_load_completed"),
		slog.String("version", version.String()),
		slog.Int("record_count", loaded),
		slog.Int("skipped", skipped),
		slog.Int("province_count", provinces),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

// LogLoadFailed logs a failed dataset load
func (dl *DatasetLogger) LogLoadFailed(ctx context.Context, source string, err error) {
	dl.logger.ErrorContext(ctx, "dataset load failed",
		slog.String("event_type", "dataset_load_failed"),
		slog.String("source", source),
		slog.String("error", err.Error()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

// LogQuery logs an aggregation query at debug level
func (dl *DatasetLogger) LogQuery(ctx context.Context, view string, criteria models.FilterCriteria, resultCount int) {
	dl.logger.DebugContext(ctx, "allocation query served",
		slog.String("event_type", "allocation_query"),
		slog.String("view", view),
		slog.String("filters", criteria.String()),
		slog.Int("result_count", resultCount),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

// LogHistoryFailed logs a load history entry that could not be persisted
func (dl *DatasetLogger) LogHistoryFailed(ctx context.Context, err error) {
	dl.logger.WarnContext(ctx, "failed to record dataset load history",
		slog.String("event_type", "dataset_history_failed"),
		slog.String("error", err.Error()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

// LogSeedCompleted logs a database seed from a dataset source
func (dl *DatasetLogger) LogSeedCompleted(ctx context.Context, source string, records, provinces int) {
	dl.logger.InfoContext(ctx, "database seeded",
		slog.String("event_type", "dataset_seeded"),
		slog.String("source", source),
		slog.Int("record_count", records),
		slog.Int("province_count", provinces),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func getTraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if traceID, ok := ctx.Value(TraceIDKey).(string); ok {
		return traceID
	}
	return ""
}
