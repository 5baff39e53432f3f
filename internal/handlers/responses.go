package handlers

import (
	"log/slog"
	"net/http"

	"cdf-insights/internal/errors"

	"github.com/labstack/echo/v4"
)

// Error responses go through SendError (catalogued 4xx and 503 codes) or
// SendSystemError (anything unexpected, logged and reported as SYSTEM_001
// without internal details). Handlers never build error bodies themselves.

// TraceIDContextKey matches the key the request id middleware sets
const TraceIDContextKey = "trace_id"

// SuccessResponse is the envelope for every successful dashboard response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	if traceID, _ := c.Get(TraceIDContextKey).(string); traceID != "" {
		return traceID
	}
	return "unknown"
}

// SendError writes the catalogued response for code
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	body := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(body.GetHTTPStatus(), body)
}

// SendSystemError logs err and answers 500 with a generic body
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	slog.ErrorContext(c.Request().Context(), "request failed",
		"trace_id", traceID,
		"method", c.Request().Method,
		"path", c.Path(),
		"error", err,
	)
	body, _ := errors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, body)
}

// sendValidationError converts validator failures into a VALIDATION_001 response
func sendValidationError(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, errors.NewValidationErrorFromList(validationDetails(err), getTraceID(c)))
}
