package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"

	"cdf-insights/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "cdf_api_errors_total",
		Help: "API errors by code, route and status",
	},
	[]string{"code", "endpoint", "status"},
)

// codeByStatus covers the statuses echo itself raises (routing, binding, body limits)
var codeByStatus = map[int]errors.ErrorCode{
	http.StatusBadRequest:            errors.ValidationGeneral,
	http.StatusUnauthorized:          errors.AuthMissingToken,
	http.StatusForbidden:             errors.AuthInsufficientPermission,
	http.StatusNotFound:              errors.SystemRouteNotFound,
	http.StatusMethodNotAllowed:      errors.SystemRouteNotFound,
	http.StatusRequestEntityTooLarge: errors.ValidationOutOfRange,
	http.StatusUnprocessableEntity:   errors.ValidationGeneral,
	http.StatusTooManyRequests:       errors.SystemRateLimitExceeded,
	http.StatusInternalServerError:   errors.SystemInternalError,
	http.StatusServiceUnavailable:    errors.SystemServiceUnavailable,
}

// tagMessages holds validator tags whose message has no parameter
var tagMessages = map[string]string{
	"required":            "is required",
	"numeric":             "must be a valid number",
	"not_blank":           "must not be blank",
	"filter_value":        "must not contain control characters",
	"export_format":       "must be csv or json",
	"non_negative_amount": "must not be negative",
}

// CustomHTTPErrorHandler renders every error that escapes a handler as the
// catalogued error body. Echo errors keep their status, validator errors
// become VALIDATION_001 with one detail per field and anything else is
// hidden behind SYSTEM_001.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	response, status := classifyError(err, traceID)

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	req := c.Request()
	slog.Log(req.Context(), level, "request failed",
		"trace_id", traceID,
		"error_code", response.Error.Code,
		"status", status,
		"method", req.Method,
		"path", req.URL.Path,
		"error", err.Error(),
	)

	apiErrorsTotal.WithLabelValues(response.Error.Code, c.Path(), strconv.Itoa(status)).Inc()

	var sendErr error
	if req.Method == http.MethodHead {
		sendErr = c.NoContent(status)
	} else {
		sendErr = c.JSON(status, response)
	}
	if sendErr != nil {
		slog.Error("failed to write error response", "trace_id", traceID, "error", sendErr)
	}
}

func classifyError(err error, traceID string) (*errors.ErrorResponse, int) {
	var httpErr *echo.HTTPError
	if stderrors.As(err, &httpErr) {
		code, ok := codeByStatus[httpErr.Code]
		if !ok {
			code = errors.SystemUnexpectedError
		}
		response := errors.NewErrorResponse(code, traceID, errors.WithMessage(fmt.Sprint(httpErr.Message)))
		return response, httpErr.Code
	}

	var fieldErrs validator.ValidationErrors
	if stderrors.As(err, &fieldErrs) {
		fields := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields[fe.Field()] = describeFieldError(fe)
		}
		return errors.NewValidationError(fields, traceID), http.StatusBadRequest
	}

	response, _ := errors.WrapSystemError(err, traceID)
	return response, response.GetHTTPStatus()
}

// describeFieldError turns a validator failure into "must ..." text
func describeFieldError(fe validator.FieldError) string {
	if msg, ok := tagMessages[fe.Tag()]; ok {
		return msg
	}

	switch fe.Tag() {
	case "min":
		return boundMessage("at least", fe)
	case "max":
		return boundMessage("at most", fe)
	case "len":
		return fmt.Sprintf("must be exactly %s characters long", fe.Param())
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lt":
		return "must be less than " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	}
	return fmt.Sprintf("failed validation for '%s'", fe.Tag())
}

func boundMessage(bound string, fe validator.FieldError) string {
	switch fe.Kind() {
	case reflect.String:
		return fmt.Sprintf("must be %s %s characters long", bound, fe.Param())
	case reflect.Slice, reflect.Map, reflect.Array:
		return fmt.Sprintf("must contain %s %s items", bound, fe.Param())
	default:
		return fmt.Sprintf("must be %s %s", bound, fe.Param())
	}
}
