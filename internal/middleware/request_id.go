package middleware

import (
	"unicode"

	"cdf-insights/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	TraceIDHeader     = "X-Trace-ID"
	TraceIDContextKey = "trace_id"

	// maxTraceIDLength bounds client supplied trace IDs before they reach logs
	maxTraceIDLength = 128
)

// RequestID tags every request with a trace ID. A well-formed X-Trace-ID from
// the caller is reused, otherwise a UUID is minted. The ID is echoed in the
// response header, stored on the echo context and carried on the request
// context for service logs.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			traceID := req.Header.Get(TraceIDHeader)
			if !acceptableTraceID(traceID) {
				traceID = uuid.NewString()
			}

			c.Set(TraceIDContextKey, traceID)
			c.SetRequest(req.WithContext(services.ContextWithTraceID(req.Context(), traceID)))
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

func acceptableTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLength {
		return false
	}
	for _, r := range id {
		if r > unicode.MaxASCII || !unicode.IsPrint(r) || unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// GetTraceID returns the request's trace ID, or "" outside RequestID
func GetTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}
