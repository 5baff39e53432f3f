package handlers

import (
	"net/http"
	"strconv"
	"time"

	"cdf-insights/internal/dataset"
	"cdf-insights/internal/dto"
	"cdf-insights/internal/errors"
	"cdf-insights/internal/models"
	"cdf-insights/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	seeder            services.DatasetSeederInterface
	allocationService services.AllocationServiceInterface
}

// NewDevHandler creates a new development handler. seeder is nil when the
// dataset is not served from a database.
func NewDevHandler(seeder services.DatasetSeederInterface, allocationService services.AllocationServiceInterface) *DevHandler {
	return &DevHandler{
		seeder:            seeder,
		allocationService: allocationService,
	}
}

// GenerateSyntheticData replaces the stored dataset with generated records and reloads it
//
// Method: POST /api/v1/dev/synthetic
// Environment: Development only
//
// Query parameters:
//   - count: Number of records to generate (default: 200, max: 10000)
//   - seed: Generator seed (default: current time), the same seed yields the same records
//
// Success Response: 200 OK
//   - message: Success message
//   - records_stored: Number of records written to the database
//   - seed: The seed used
//   - dataset: The reload report
//
// Error Responses:
//   - 400: Invalid count or seed
//   - 500: Seeding or reload failed
//   - 503: No database configured
func (h *DevHandler) GenerateSyntheticData(c echo.Context) error {
	if h.seeder == nil {
		return SendError(c, errors.SystemServiceUnavailable,
			errors.WithDetails("synthetic data requires DATASET_SOURCE=database"))
	}

	count := getIntParam(c, "count", dataset.DefaultSyntheticCount)
	if count < 1 || count > dataset.MaxSyntheticCount {
		return SendError(c, errors.ValidationOutOfRange,
			errors.WithDetails("count: must be between 1 and 10000"))
	}

	seed := uint64(time.Now().UnixNano())
	if raw := c.QueryParam("seed"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return SendError(c, errors.ValidationInvalidFormat,
				errors.WithDetails("seed: must be a non-negative integer"))
		}
		seed = parsed
	}

	ctx := c.Request().Context()
	stored, err := h.seeder.Seed(ctx, dataset.NewSyntheticSource(count, seed), true)
	if err != nil {
		return SendSystemError(c, err)
	}

	report, err := h.allocationService.Reload(ctx, models.LoadTriggerSeed, getClientIP(c))
	if err != nil {
		return SendError(c, errors.DatasetReloadFailed, errors.WithDetails(err.Error()))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":        "synthetic data generated successfully",
		"records_stored": stored,
		"seed":           strconv.FormatUint(seed, 10),
		"dataset":        dto.NewReloadResponse(report),
	})
}
