package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cdf-insights/internal/models"
	"cdf-insights/internal/services"
	"cdf-insights/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAdminHandler(t *testing.T) {
	suite.Run(t, new(AdminHandlerSuite))
}

type AdminHandlerSuite struct {
	suite.Suite
	handler           *AdminHandler
	allocationService *service_mocks.MockAllocationServiceInterface
	e                 *echo.Echo
}

func (s *AdminHandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.allocationService = service_mocks.NewMockAllocationServiceInterface(ctrl)
	s.handler = NewAdminHandler(s.allocationService)
	s.e = echo.New()
	s.e.IPExtractor = echo.ExtractIPFromXFFHeader()
}

func (s *AdminHandlerSuite) TestReloadDataset() {
	version := uuid.New()

	tests := []struct {
		name           string
		expectedStatus int
		expectedBody   string
		setupMocks     func()
	}{
		{
			name:           "successful reload",
			expectedStatus: http.StatusOK,
			expectedBody:   version.String(),
			setupMocks: func() {
				s.allocationService.EXPECT().
					Reload(gomock.Any(), models.LoadTriggerAdmin, "203.0.113.7").
					Return(&models.LoadReport{Version: version, Source: "file", Total: 3, Loaded: 3}, nil)
			},
		},
		{
			name:           "reload failure keeps previous dataset",
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "record 2: amount cannot be negative",
			setupMocks: func() {
				report := &models.LoadReport{Total: 3, Skipped: 1, Issues: []models.LoadIssue{{Index: 2, Reason: "amount cannot be negative"}}}
				s.allocationService.EXPECT().
					Reload(gomock.Any(), models.LoadTriggerAdmin, gomock.Any()).
					Return(report, errors.New("failed to reload dataset: malformed record"))
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			ctrl := gomock.NewController(s.T())
			defer ctrl.Finish()
			s.allocationService = service_mocks.NewMockAllocationServiceInterface(ctrl)
			s.handler = NewAdminHandler(s.allocationService)

			tt.setupMocks()

			req := httptest.NewRequest(http.MethodPost, "/api/v1/cdf/admin/reload", nil)
			req.RemoteAddr = "10.0.0.1:4321"
			req.Header.Set("X-Forwarded-For", "203.0.113.7, 172.16.0.1")
			rec := httptest.NewRecorder()
			c := s.e.NewContext(req, rec)

			err := s.handler.ReloadDataset(c)
			s.NoError(err)
			s.Equal(tt.expectedStatus, rec.Code)
			s.Contains(rec.Body.String(), tt.expectedBody)
		})
	}
}

func (s *AdminHandlerSuite) TestListLoadHistory() {
	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedCode   string
		setupMocks     func()
	}{
		{
			name:           "first page",
			query:          "",
			expectedStatus: http.StatusOK,
			setupMocks: func() {
				loads := []*models.DatasetLoadLog{{ID: uuid.New(), Status: models.LoadStatusSuccess}}
				s.allocationService.EXPECT().LoadHistory(gomock.Any(), 0, 20).Return(loads, int64(41), nil)
			},
		},
		{
			name:           "offset from page",
			query:          "?page=3&limit=10",
			expectedStatus: http.StatusOK,
			setupMocks: func() {
				s.allocationService.EXPECT().LoadHistory(gomock.Any(), 20, 10).Return([]*models.DatasetLoadLog{}, int64(0), nil)
			},
		},
		{
			name:           "invalid page",
			query:          "?page=0",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_001",
			setupMocks:     func() {},
		},
		{
			name:           "limit too large",
			query:          "?limit=101",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_001",
			setupMocks:     func() {},
		},
		{
			name:           "no database configured",
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   "SYSTEM_003",
			setupMocks: func() {
				s.allocationService.EXPECT().LoadHistory(gomock.Any(), 0, 20).Return(nil, int64(0), services.ErrHistoryUnavailable)
			},
		},
		{
			name:           "repository failure",
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "SYSTEM_001",
			setupMocks: func() {
				s.allocationService.EXPECT().LoadHistory(gomock.Any(), 0, 20).Return(nil, int64(0), errors.New("connection reset"))
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			ctrl := gomock.NewController(s.T())
			defer ctrl.Finish()
			s.allocationService = service_mocks.NewMockAllocationServiceInterface(ctrl)
			s.handler = NewAdminHandler(s.allocationService)

			tt.setupMocks()

			req := httptest.NewRequest(http.MethodGet, "/api/v1/cdf/admin/history"+tt.query, nil)
			rec := httptest.NewRecorder()
			c := s.e.NewContext(req, rec)

			s.NoError(s.handler.ListLoadHistory(c))
			s.Equal(tt.expectedStatus, rec.Code)

			if tt.expectedCode != "" {
				var resp ErrorResponse
				s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
				s.Equal(tt.expectedCode, resp.Error.Code)
			}
		})
	}
}

func (s *AdminHandlerSuite) TestListLoadHistory_TotalPages() {
	s.allocationService.EXPECT().LoadHistory(gomock.Any(), 0, 20).Return([]*models.DatasetLoadLog{}, int64(41), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cdf/admin/history", nil)
	rec := httptest.NewRecorder()
	s.NoError(s.handler.ListLoadHistory(s.e.NewContext(req, rec)))

	s.Contains(rec.Body.String(), `"total_pages":3`)
	s.Contains(rec.Body.String(), `"total":41`)
}
