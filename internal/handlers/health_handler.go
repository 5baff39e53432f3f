package handlers

import (
	"net/http"
	"time"

	"cdf-insights/internal/errors"
	"cdf-insights/internal/services"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type HealthCheckHandler struct {
	db                *gorm.DB
	allocationService services.AllocationServiceInterface
}

// HealthResponse reports the live dataset and, when one is configured, the database
type HealthResponse struct {
	Status         string    `json:"status"`
	Time           time.Time `json:"time"`
	Database       string    `json:"database"`
	DatasetVersion string    `json:"dataset_version"`
	DatasetSource  string    `json:"dataset_source"`
	Records        int       `json:"records"`
	LoadedAt       time.Time `json:"loaded_at"`
}

// NewHealthCheckHandler creates the handler. db is nil for sources that are
// not database backed.
func NewHealthCheckHandler(db *gorm.DB, allocationService services.AllocationServiceInterface) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, allocationService: allocationService}
}

// HealthCheck answers 200 while a dataset is loaded and the database, if any, responds
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	dbState := "disabled"
	if h.db != nil {
		if err := h.pingDatabase(c); err != nil {
			return SendError(c, errors.SystemDatabaseError, errors.WithDetails("Database connection failed"))
		}
		dbState = "up"
	}

	report, err := h.allocationService.Status()
	if err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Allocation dataset not loaded"))
	}

	return c.JSON(http.StatusOK, HealthResponse{
		Status:         "healthy",
		Time:           time.Now().UTC(),
		Database:       dbState,
		DatasetVersion: report.Version.String(),
		DatasetSource:  report.Source,
		Records:        report.Loaded,
		LoadedAt:       report.LoadedAt,
	})
}

func (h *HealthCheckHandler) pingDatabase(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(c.Request().Context())
}
