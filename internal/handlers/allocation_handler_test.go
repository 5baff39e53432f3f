package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cdf-insights/internal/models"
	"cdf-insights/internal/services"
	"cdf-insights/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestAllocationHandler(t *testing.T) {
	suite.Run(t, new(AllocationHandlerSuite))
}

type AllocationHandlerSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	allocationService *service_mocks.MockAllocationServiceInterface
	exportService     *service_mocks.MockExportServiceInterface
	handler           *AllocationHandler
	e                 *echo.Echo
}

func (s *AllocationHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.allocationService = service_mocks.NewMockAllocationServiceInterface(s.ctrl)
	s.exportService = service_mocks.NewMockExportServiceInterface(s.ctrl)
	s.handler = NewAllocationHandler(s.allocationService, s.exportService)
	s.handler.now = func() time.Time { return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC) }
	s.e = echo.New()
	s.e.Validator = NewValidator()
}

func (s *AllocationHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AllocationHandlerSuite) serve(target string, h echo.HandlerFunc) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-123")
	s.Require().NoError(h(c))
	return rec
}

func (s *AllocationHandlerSuite) decodeError(rec *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func amount(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func (s *AllocationHandlerSuite) TestListRecords_PassesCriteria() {
	records := []models.AllocationRecord{
		{Constituency: "Kabwata", Category: models.CategoryBursaries, SubCategory: "Secondary", Amount: amount(500)},
	}
	s.allocationService.EXPECT().
		Records(gomock.Any(), models.FilterCriteria{SearchTerm: "kab", Category: "Bursaries", Province: "all"}).
		Return(records, nil)

	rec := s.serve("/api/v1/cdf/records?search=%20kab%20&category=Bursaries&province=all", s.handler.ListRecords)

	s.Equal(http.StatusOK, rec.Code)
	var body struct {
		Data struct {
			Records []models.AllocationRecord `json:"records"`
			Count   int                       `json:"count"`
			Filters string                    `json:"filters"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(1, body.Data.Count)
	s.Equal("Kabwata", body.Data.Records[0].Constituency)
	s.Equal("search=kab,category=Bursaries", body.Data.Filters)
}

func (s *AllocationHandlerSuite) TestListRecords_RejectsControlCharacters() {
	rec := s.serve("/api/v1/cdf/records?category=Bur%00saries", s.handler.ListRecords)

	s.Equal(http.StatusBadRequest, rec.Code)
	resp := s.decodeError(rec)
	s.Equal("VALIDATION_001", resp.Error.Code)
	s.Equal("trace-123", resp.Error.TraceID)
	s.Contains(resp.Error.Details[0], "category")
}

func (s *AllocationHandlerSuite) TestServiceErrorMapping() {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{"dataset not loaded", services.ErrDatasetNotLoaded, http.StatusServiceUnavailable, "DATASET_001"},
		{"unknown grouping", services.ErrUnknownGrouping, http.StatusBadRequest, "VALIDATION_005"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "SYSTEM_001"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.allocationService.EXPECT().Summary(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rec := s.serve("/api/v1/cdf/summary", s.handler.GetSummary)

			s.Equal(tt.expectedStatus, rec.Code)
			s.Equal(tt.expectedCode, s.decodeError(rec).Error.Code)
			s.NotContains(rec.Body.String(), "boom")
		})
	}
}

func (s *AllocationHandlerSuite) TestGetSummary_Success() {
	summary := &models.DashboardSummary{
		Overall:  models.SummaryStatistics{TotalAmount: amount(1250), RecordCount: 5},
		Filtered: models.SummaryStatistics{TotalAmount: amount(950), RecordCount: 3},
		Filters:  "province=Lusaka",
	}
	s.allocationService.EXPECT().
		Summary(gomock.Any(), models.FilterCriteria{Province: "Lusaka"}).
		Return(summary, nil)

	rec := s.serve("/api/v1/cdf/summary?province=Lusaka", s.handler.GetSummary)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"total_amount":"950"`)
	s.Contains(rec.Body.String(), `"filters":"province=Lusaka"`)
}

func (s *AllocationHandlerSuite) TestGetTotals() {
	shares := []models.PercentageShare{{Key: "Lusaka", Amount: amount(950), Percent: 76}}

	s.Run("defaults to category", func() {
		s.allocationService.EXPECT().
			Totals(gomock.Any(), models.FilterCriteria{}, services.GroupByCategory).
			Return(shares, nil)

		rec := s.serve("/api/v1/cdf/totals", s.handler.GetTotals)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"by":"category"`)
	})

	s.Run("groups by province", func() {
		s.allocationService.EXPECT().
			Totals(gomock.Any(), models.FilterCriteria{}, services.GroupByProvince).
			Return(shares, nil)

		rec := s.serve("/api/v1/cdf/totals?by=province", s.handler.GetTotals)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"percent":76`)
	})

	s.Run("rejects unknown dimension", func() {
		rec := s.serve("/api/v1/cdf/totals?by=ward", s.handler.GetTotals)
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(s.decodeError(rec).Error.Details[0], "by")
	})
}

func (s *AllocationHandlerSuite) TestGetCategoryTotals() {
	s.allocationService.EXPECT().
		Totals(gomock.Any(), models.FilterCriteria{Constituency: "Kabwata"}, services.GroupByCategory).
		Return([]models.PercentageShare{}, nil)

	rec := s.serve("/api/v1/cdf/categories?constituency=Kabwata", s.handler.GetCategoryTotals)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"totals":[]`)
}

func (s *AllocationHandlerSuite) TestGetSubcategoryBreakdown() {
	s.Run("requires category", func() {
		rec := s.serve("/api/v1/cdf/subcategories?category=%20%20", s.handler.GetSubcategoryBreakdown)
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal("VALIDATION_001", s.decodeError(rec).Error.Code)
	})

	s.Run("returns totals", func() {
		s.allocationService.EXPECT().
			SubcategoryBreakdown(gomock.Any(), "Bursaries").
			Return(models.Totals{{Key: "Secondary", Amount: amount(700)}}, nil)

		rec := s.serve("/api/v1/cdf/subcategories?category=Bursaries", s.handler.GetSubcategoryBreakdown)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"key":"Secondary"`)
		s.Contains(rec.Body.String(), `"category":"Bursaries"`)
	})
}

func (s *AllocationHandlerSuite) TestGetTopConstituencies() {
	s.Run("default limit", func() {
		s.allocationService.EXPECT().
			TopConstituencies(gomock.Any(), models.FilterCriteria{}, defaultTopLimit).
			Return(models.Totals{}, nil)

		rec := s.serve("/api/v1/cdf/constituencies/top", s.handler.GetTopConstituencies)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"limit":10`)
	})

	s.Run("explicit limit", func() {
		s.allocationService.EXPECT().
			TopConstituencies(gomock.Any(), models.FilterCriteria{Category: "Projects"}, 3).
			Return(models.Totals{{Key: "Kabwata", Amount: amount(300)}}, nil)

		rec := s.serve("/api/v1/cdf/constituencies/top?limit=3&category=Projects", s.handler.GetTopConstituencies)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"key":"Kabwata"`)
	})

	s.Run("limit out of range", func() {
		rec := s.serve("/api/v1/cdf/constituencies/top?limit=500", s.handler.GetTopConstituencies)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *AllocationHandlerSuite) TestGetProvinceEfficiency() {
	s.Run("default limit", func() {
		s.allocationService.EXPECT().
			ProvinceEfficiency(gomock.Any(), defaultEfficiencyLimit).
			Return([]models.ProvinceEfficiency{{Province: "Lusaka", TotalAmount: amount(950), ConstituencyCount: 2, PerConstituency: amount(475)}}, nil)

		rec := s.serve("/api/v1/cdf/provinces/efficiency", s.handler.GetProvinceEfficiency)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"per_constituency":"475"`)
	})

	s.Run("zero limit rejected", func() {
		rec := s.serve("/api/v1/cdf/provinces/efficiency?limit=0", s.handler.GetProvinceEfficiency)
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal("VALIDATION_004", s.decodeError(rec).Error.Code)
	})
}

func (s *AllocationHandlerSuite) TestListConstituenciesAndProvinces() {
	s.allocationService.EXPECT().Constituencies(gomock.Any()).Return([]string{"Chongwe", "Kabwata"}, nil)
	rec := s.serve("/api/v1/cdf/constituencies", s.handler.ListConstituencies)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"count":2`)

	s.allocationService.EXPECT().Provinces(gomock.Any()).
		Return([]models.Province{{Name: "Lusaka", Constituencies: []string{"Kabwata"}}}, nil)
	rec = s.serve("/api/v1/cdf/provinces/registry", s.handler.ListProvinces)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"name":"Lusaka"`)
}

func (s *AllocationHandlerSuite) TestGetStatus() {
	s.allocationService.EXPECT().Status().Return(&models.LoadReport{Version: uuid.New(), Source: "embedded", Loaded: 5}, nil)

	rec := s.serve("/api/v1/cdf/status", s.handler.GetStatus)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"source":"embedded"`)
}

func (s *AllocationHandlerSuite) TestExport() {
	records := []models.AllocationRecord{
		{Constituency: "Kabwata", Category: models.CategoryBursaries, SubCategory: "Secondary", Amount: amount(500)},
	}

	s.Run("csv download", func() {
		s.exportService.EXPECT().ContentType("csv").Return("text/csv; charset=utf-8", nil)
		s.allocationService.EXPECT().Records(gomock.Any(), models.FilterCriteria{Province: "Lusaka"}).Return(records, nil)
		s.exportService.EXPECT().Export(gomock.Any(), records, "csv").
			DoAndReturn(func(w io.Writer, _ []models.AllocationRecord, _ string) error {
				_, err := io.WriteString(w, "Constituency,Category,SubCategory,Amount\nKabwata,Bursaries,Secondary,500\n")
				return err
			})
		s.exportService.EXPECT().FileName("csv", gomock.Any()).Return("cdf-allocations-2024-03-01.csv")

		rec := s.serve("/api/v1/cdf/export?province=Lusaka", s.handler.Export)

		s.Equal(http.StatusOK, rec.Code)
		s.Equal("text/csv; charset=utf-8", rec.Header().Get(echo.HeaderContentType))
		s.Equal(`attachment; filename="cdf-allocations-2024-03-01.csv"`, rec.Header().Get(echo.HeaderContentDisposition))
		s.Equal("1", rec.Header().Get("X-Record-Count"))
		s.Contains(rec.Body.String(), "Kabwata,Bursaries,Secondary,500")
	})

	s.Run("invalid format", func() {
		rec := s.serve("/api/v1/cdf/export?format=xml", s.handler.Export)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("no matching records", func() {
		s.exportService.EXPECT().ContentType("json").Return("application/json; charset=utf-8", nil)
		s.allocationService.EXPECT().Records(gomock.Any(), gomock.Any()).Return([]models.AllocationRecord{}, nil)
		s.exportService.EXPECT().Export(gomock.Any(), gomock.Any(), "json").Return(services.ErrNoDataToExport)

		rec := s.serve("/api/v1/cdf/export?format=json&province=Atlantis", s.handler.Export)

		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		s.Equal("DATASET_004", s.decodeError(rec).Error.Code)
		s.Empty(rec.Header().Get(echo.HeaderContentDisposition))
	})
}
