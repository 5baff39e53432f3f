package handlers

import (
	"net/http"

	"cdf-insights/internal/dto"
	"cdf-insights/internal/errors"
	"cdf-insights/internal/models"
	"cdf-insights/internal/services"

	"github.com/labstack/echo/v4"
)

// AdminHandler handles dataset administration endpoints
type AdminHandler struct {
	allocationService services.AllocationServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(allocationService services.AllocationServiceInterface) *AdminHandler {
	return &AdminHandler{allocationService: allocationService}
}

// RegisterRoutes mounts the admin routes on g, which must already carry the admin auth middleware
func (h *AdminHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/reload", h.ReloadDataset)
	g.GET("/history", h.ListLoadHistory)
}

// ReloadDataset reloads the allocation dataset from its configured source
// @Summary Reload allocation dataset (admin)
// @Description Loads a fresh dataset and swaps it in. The previous dataset stays active on failure.
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse "Dataset reloaded"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_004 - Requires admin role"
// @Failure 500 {object} errors.ErrorResponse "DATASET_005 - Reload failed"
// @Router /cdf/admin/reload [post]
func (h *AdminHandler) ReloadDataset(c echo.Context) error {
	report, err := h.allocationService.Reload(c.Request().Context(), models.LoadTriggerAdmin, getClientIP(c))
	if err != nil {
		opts := []errors.ErrorOption{errors.WithDetails(err.Error())}
		if report != nil {
			opts = append(opts, errors.WithLoadIssues(report.Issues))
		}
		return SendError(c, errors.DatasetReloadFailed, opts...)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Dataset reloaded successfully",
		Data:    dto.NewReloadResponse(report),
	})
}

// ListLoadHistory lists past dataset loads, newest first
// @Summary List dataset load history (admin)
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(20)
// @Success 200 {object} SuccessResponse "History retrieved"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid pagination parameters"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - No database configured"
// @Router /cdf/admin/history [get]
func (h *AdminHandler) ListLoadHistory(c echo.Context) error {
	page := getIntParam(c, "page", 1)
	limit := getIntParam(c, "limit", 20)

	if page < 1 {
		return SendError(c, errors.ValidationGeneral,
			errors.WithDetails("page: must be greater than 0"))
	}
	if limit < 1 || limit > 100 {
		return SendError(c, errors.ValidationGeneral,
			errors.WithDetails("limit: must be between 1 and 100"))
	}

	offset := (page - 1) * limit

	loads, total, err := h.allocationService.LoadHistory(c.Request().Context(), offset, limit)
	if err != nil {
		if err == services.ErrHistoryUnavailable {
			return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.LoadHistoryResponse{Loads: loads, Total: total, Page: page, Limit: limit},
		Meta: map[string]interface{}{
			"total_pages": (total + int64(limit) - 1) / int64(limit),
		},
	})
}
