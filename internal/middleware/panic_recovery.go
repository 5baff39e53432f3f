package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var panicsRecoveredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "cdf_panics_recovered_total",
		Help: "Handler panics recovered, by route",
	},
	[]string{"endpoint"},
)

// PanicError is returned in place of a recovered handler panic
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// PanicRecovery turns a handler panic into a *PanicError so the error handler
// answers SYSTEM_001. http.ErrAbortHandler is re-raised for net/http.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				perr := &PanicError{Value: r, Stack: debug.Stack()}
				panicsRecoveredTotal.WithLabelValues(c.Path()).Inc()
				slog.ErrorContext(c.Request().Context(), "panic recovered",
					"trace_id", GetTraceID(c),
					"panic", perr.Error(),
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
					"stack_trace", string(perr.Stack),
				)
				err = perr
			}()

			return next(c)
		}
	}
}
