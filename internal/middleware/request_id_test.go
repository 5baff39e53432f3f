package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cdf-insights/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

// serve runs RequestID with the given inbound header and returns the trace ID
// seen by the handler alongside the recorder
func (s *RequestIDTestSuite) serve(inbound string) (string, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cdf/summary", nil)
	if inbound != "" {
		req.Header.Set(TraceIDHeader, inbound)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	var seen string
	handler := RequestID()(func(c echo.Context) error {
		seen = GetTraceID(c)
		s.Equal(seen, c.Request().Context().Value(services.TraceIDKey))
		return c.NoContent(http.StatusOK)
	})
	s.Require().NoError(handler(c))
	return seen, rec
}

func (s *RequestIDTestSuite) TestMintsUUIDWhenAbsent() {
	traceID, rec := s.serve("")

	_, err := uuid.Parse(traceID)
	s.NoError(err)
	s.Equal(traceID, rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestReusesCallerTraceID() {
	traceID, rec := s.serve("dashboard-7f3a")

	s.Equal("dashboard-7f3a", traceID)
	s.Equal("dashboard-7f3a", rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestReplacesUnusableTraceID() {
	for name, inbound := range map[string]string{
		"too long":      strings.Repeat("a", maxTraceIDLength+1),
		"whitespace":    "abc def",
		"control chars": "abc\x1bdef",
		"non ascii":     "trace-ñ",
	} {
		s.Run(name, func() {
			traceID, _ := s.serve(inbound)
			s.NotEqual(inbound, traceID)
			_, err := uuid.Parse(traceID)
			s.NoError(err)
		})
	}
}

func (s *RequestIDTestSuite) TestGetTraceIDOutsideMiddleware() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	s.Empty(GetTraceID(c))
}
