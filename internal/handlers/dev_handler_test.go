package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cdf-insights/internal/dataset"
	"cdf-insights/internal/models"
	"cdf-insights/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestDevHandler(t *testing.T) {
	suite.Run(t, new(DevHandlerSuite))
}

type DevHandlerSuite struct {
	suite.Suite
	seeder            *service_mocks.MockDatasetSeederInterface
	allocationService *service_mocks.MockAllocationServiceInterface
	handler           *DevHandler
	e                 *echo.Echo
}

func (s *DevHandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.seeder = service_mocks.NewMockDatasetSeederInterface(ctrl)
	s.allocationService = service_mocks.NewMockAllocationServiceInterface(ctrl)
	s.handler = NewDevHandler(s.seeder, s.allocationService)
	s.e = echo.New()
}

func (s *DevHandlerSuite) post(h *DevHandler, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/dev/synthetic"+query, nil)
	rec := httptest.NewRecorder()
	s.NoError(h.GenerateSyntheticData(s.e.NewContext(req, rec)))
	return rec
}

func (s *DevHandlerSuite) TestGenerateSyntheticData_Success() {
	s.seeder.EXPECT().
		Seed(gomock.Any(), gomock.AssignableToTypeOf(&dataset.SyntheticSource{}), true).
		DoAndReturn(func(_ context.Context, src dataset.Source, _ bool) (int, error) {
			s.Equal("synthetic:99", src.Name())
			return 25, nil
		})
	s.allocationService.EXPECT().
		Reload(gomock.Any(), models.LoadTriggerSeed, gomock.Any()).
		Return(&models.LoadReport{Version: uuid.New(), Source: "database", Loaded: 25}, nil)

	rec := s.post(s.handler, "?count=25&seed=99")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"records_stored":25`)
	s.Contains(rec.Body.String(), `"seed":"99"`)
}

func (s *DevHandlerSuite) TestGenerateSyntheticData_Validation() {
	s.Equal(http.StatusBadRequest, s.post(s.handler, "?count=0").Code)
	s.Equal(http.StatusBadRequest, s.post(s.handler, "?count=10001").Code)
	s.Equal(http.StatusBadRequest, s.post(s.handler, "?seed=-4").Code)
}

func (s *DevHandlerSuite) TestGenerateSyntheticData_NoDatabase() {
	rec := s.post(NewDevHandler(nil, s.allocationService), "")

	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_003")
}

func (s *DevHandlerSuite) TestGenerateSyntheticData_SeedFailure() {
	s.seeder.EXPECT().Seed(gomock.Any(), gomock.Any(), true).Return(0, errors.New("disk full"))

	rec := s.post(s.handler, "?seed=1")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "disk full")
}
