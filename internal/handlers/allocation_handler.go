package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"time"

	"cdf-insights/internal/dto"
	apierrors "cdf-insights/internal/errors"
	"cdf-insights/internal/services"
	"cdf-insights/internal/validation"

	"github.com/labstack/echo/v4"
)

const (
	defaultTopLimit        = 10
	defaultEfficiencyLimit = 5
	maxLimit               = 100
)

// HeaderRecordCount carries the number of exported records
const HeaderRecordCount = "X-Record-Count"

// AllocationHandler serves the CDF dashboard views
type AllocationHandler struct {
	allocationService services.AllocationServiceInterface
	exportService     services.ExportServiceInterface
	now               func() time.Time
}

// NewAllocationHandler creates a new allocation handler
func NewAllocationHandler(allocationService services.AllocationServiceInterface, exportService services.ExportServiceInterface) *AllocationHandler {
	return &AllocationHandler{
		allocationService: allocationService,
		exportService:     exportService,
		now:               time.Now,
	}
}

// RegisterRoutes mounts the dashboard routes on g
func (h *AllocationHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/status", h.GetStatus)
	g.GET("/records", h.ListRecords)
	g.GET("/summary", h.GetSummary)
	g.GET("/totals", h.GetTotals)
	g.GET("/categories", h.GetCategoryTotals)
	g.GET("/categories/performance", h.GetCategoryPerformance)
	g.GET("/subcategories", h.GetSubcategoryBreakdown)
	g.GET("/constituencies", h.ListConstituencies)
	g.GET("/constituencies/top", h.GetTopConstituencies)
	g.GET("/provinces", h.GetProvinceBreakdown)
	g.GET("/provinces/registry", h.ListProvinces)
	g.GET("/provinces/efficiency", h.GetProvinceEfficiency)
	g.GET("/export", h.Export)
}

func (h *AllocationHandler) handleServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrDatasetNotLoaded):
		return SendError(c, apierrors.DatasetNotLoaded)
	case errors.Is(err, services.ErrUnknownGrouping):
		return SendError(c, apierrors.ValidationUnknownFilter, apierrors.WithDetails(err.Error()))
	case errors.Is(err, services.ErrUnsupportedExportFormat):
		return SendError(c, apierrors.DatasetUnsupportedFormat, apierrors.WithDetails(err.Error()))
	case errors.Is(err, services.ErrNoDataToExport):
		return SendError(c, apierrors.DatasetNoData)
	case errors.Is(err, services.ErrHistoryUnavailable):
		return SendError(c, apierrors.SystemServiceUnavailable, apierrors.WithDetails(err.Error()))
	default:
		return SendSystemError(c, err)
	}
}

// GetStatus reports the active dataset
//
// Method: GET /api/v1/cdf/status
//
// Error Responses:
//   - 503: Dataset not loaded
func (h *AllocationHandler) GetStatus(c echo.Context) error {
	report, err := h.allocationService.Status()
	if err != nil {
		return h.handleServiceError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: report})
}

// ListRecords returns the filtered records in dataset order
//
// Method: GET /api/v1/cdf/records
//
// Query parameters:
//   - search: case-insensitive substring of constituency, category or subcategory
//   - category, constituency, province: exact match, "all" disables
//
// Error Responses:
//   - 400: Invalid filter value
//   - 503: Dataset not loaded
func (h *AllocationHandler) ListRecords(c echo.Context) error {
	var req dto.AllocationQuery
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	criteria := req.ToCriteria()
	records, err := h.allocationService.Records(c.Request().Context(), criteria)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.RecordsResponse{Records: records, Count: len(records), Filters: criteria.String()},
	})
}

// GetSummary returns the key metrics of the whole dataset and of the filtered selection
func (h *AllocationHandler) GetSummary(c echo.Context) error {
	var req dto.AllocationQuery
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	summary, err := h.allocationService.Summary(c.Request().Context(), req.ToCriteria())
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: summary})
}

// GetTotals groups the filtered records by the "by" dimension
//
// Method: GET /api/v1/cdf/totals?by=category|constituency|subcategory|province
//
// Error Responses:
//   - 400: Unknown dimension or invalid filter value
//   - 503: Dataset not loaded
func (h *AllocationHandler) GetTotals(c echo.Context) error {
	var req dto.TotalsQuery
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}
	if req.By == "" {
		req.By = services.GroupByCategory
	}

	return h.totals(c, req.AllocationQuery, req.By)
}

// GetCategoryTotals is GetTotals fixed to the category dimension
func (h *AllocationHandler) GetCategoryTotals(c echo.Context) error {
	var req dto.AllocationQuery
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	return h.totals(c, req, services.GroupByCategory)
}

func (h *AllocationHandler) totals(c echo.Context, req dto.AllocationQuery, by string) error {
	criteria := req.ToCriteria()
	shares, err := h.allocationService.Totals(c.Request().Context(), criteria, by)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.TotalsResponse{By: by, Totals: shares, Filters: criteria.String()},
	})
}

// GetCategoryPerformance returns amount, count and average per category
func (h *AllocationHandler) GetCategoryPerformance(c echo.Context) error {
	perf, err := h.allocationService.CategoryPerformance(c.Request().Context())
	if err != nil {
		return h.handleServiceError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: perf})
}

// GetSubcategoryBreakdown totals subcategories within one exact category
//
// Method: GET /api/v1/cdf/subcategories?category=Bursaries
func (h *AllocationHandler) GetSubcategoryBreakdown(c echo.Context) error {
	var req dto.SubcategoryQuery
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	totals, err := h.allocationService.SubcategoryBreakdown(c.Request().Context(), req.Category)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: totals,
		Meta: map[string]interface{}{"category": req.Category},
	})
}

// ListConstituencies returns the sorted distinct constituency names
func (h *AllocationHandler) ListConstituencies(c echo.Context) error {
	names, err := h.allocationService.Constituencies(c.Request().Context())
	if err != nil {
		return h.handleServiceError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{
		Data: names,
		Meta: map[string]interface{}{"count": len(names)},
	})
}

// GetTopConstituencies ranks constituencies of the filtered selection by total amount
//
// Method: GET /api/v1/cdf/constituencies/top?limit=10
func (h *AllocationHandler) GetTopConstituencies(c echo.Context) error {
	var req dto.TopQuery
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}
	if req.Limit == 0 {
		req.Limit = defaultTopLimit
	}

	criteria := req.ToCriteria()
	top, err := h.allocationService.TopConstituencies(c.Request().Context(), criteria, req.Limit)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.RankingResponse{Items: top, Limit: req.Limit, Filters: criteria.String()},
	})
}

// GetProvinceBreakdown returns every province with its share of the filtered total
func (h *AllocationHandler) GetProvinceBreakdown(c echo.Context) error {
	var req dto.AllocationQuery
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	criteria := req.ToCriteria()
	shares, err := h.allocationService.ProvinceBreakdown(c.Request().Context(), criteria)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.TotalsResponse{By: services.GroupByProvince, Totals: shares, Filters: criteria.String()},
	})
}

// ListProvinces returns the province registry
func (h *AllocationHandler) ListProvinces(c echo.Context) error {
	provinces, err := h.allocationService.Provinces(c.Request().Context())
	if err != nil {
		return h.handleServiceError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: provinces})
}

// GetProvinceEfficiency relates the top province totals to their constituency counts
//
// Method: GET /api/v1/cdf/provinces/efficiency?limit=5
func (h *AllocationHandler) GetProvinceEfficiency(c echo.Context) error {
	limit := getIntParam(c, "limit", defaultEfficiencyLimit)
	if limit < 1 || limit > maxLimit {
		return SendError(c, apierrors.ValidationOutOfRange,
			apierrors.WithDetails("limit: must be between 1 and 100"))
	}

	eff, err := h.allocationService.ProvinceEfficiency(c.Request().Context(), limit)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: eff,
		Meta: map[string]interface{}{"limit": limit},
	})
}

// Export downloads the filtered records
//
// Method: GET /api/v1/cdf/export?format=csv|json
//
// Error Responses:
//   - 400: Invalid filter value or format
//   - 422: No records match the filters
//   - 503: Dataset not loaded
func (h *AllocationHandler) Export(c echo.Context) error {
	var req dto.ExportQuery
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}
	if req.Format == "" {
		req.Format = validation.FormatCSV
	}

	contentType, err := h.exportService.ContentType(req.Format)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	records, err := h.allocationService.Records(c.Request().Context(), req.ToCriteria())
	if err != nil {
		return h.handleServiceError(c, err)
	}

	// render before committing headers so failures still produce an error body
	var buf bytes.Buffer
	if err := h.exportService.Export(&buf, records, req.Format); err != nil {
		return h.handleServiceError(c, err)
	}

	fileName := h.exportService.FileName(req.Format, h.now())
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	c.Response().Header().Set(HeaderRecordCount, strconv.Itoa(len(records)))
	return c.Blob(http.StatusOK, contentType, buf.Bytes())
}
