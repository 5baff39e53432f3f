package errors

import (
	"fmt"
	"net/http"
	"sort"

	"cdf-insights/internal/models"
)

// maxIssueDetails caps how many load issues a reload failure reports
const maxIssueDetails = 5

// ErrorResponse is the body of every API error
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

type ErrorOption func(*ErrorResponse)

// WithDetails replaces the detail lines
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage overrides the catalogue message
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// WithLoadIssues appends the first skipped records of a failed load as
// "record <index>: <reason>" lines
func WithLoadIssues(issues []models.LoadIssue) ErrorOption {
	return func(er *ErrorResponse) {
		for i, issue := range issues {
			if i == maxIssueDetails {
				er.Error.Details = append(er.Error.Details, fmt.Sprintf("%d more records skipped", len(issues)-maxIssueDetails))
				return
			}
			er.Error.Details = append(er.Error.Details, fmt.Sprintf("record %d: %s", issue.Index, issue.Reason))
		}
	}
}

// NewErrorResponse builds the catalogued error for code. A code missing from
// the catalogue is reported as SYSTEM_005.
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	if !IsValidErrorCode(code) {
		code = SystemUnexpectedError
	}
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
			Details: []string{},
		},
	}
	for _, opt := range opts {
		opt(response)
	}
	return response
}

// NewValidationError renders field errors as "field: message" lines sorted by field
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	details := make([]string, len(fields))
	for i, field := range fields {
		details[i] = fmt.Sprintf("%s: %s", field, fieldErrors[field])
	}
	return NewValidationErrorFromList(details, traceID)
}

func NewValidationErrorFromList(details []string, traceID string) *ErrorResponse {
	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

// WrapSystemError hides err behind SYSTEM_001. err is handed back for logging.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

var statusByCode = map[ErrorCode]int{
	ValidationGeneral:       http.StatusBadRequest,
	ValidationRequiredField: http.StatusBadRequest,
	ValidationInvalidFormat: http.StatusBadRequest,
	ValidationOutOfRange:    http.StatusBadRequest,
	ValidationUnknownFilter: http.StatusBadRequest,

	AuthMissingToken:           http.StatusUnauthorized,
	AuthExpiredToken:           http.StatusUnauthorized,
	AuthInvalidTokenFormat:     http.StatusUnauthorized,
	AuthInsufficientPermission: http.StatusForbidden,

	DatasetNotLoaded:         http.StatusServiceUnavailable,
	DatasetMalformed:         http.StatusUnprocessableEntity,
	DatasetUnsupportedFormat: http.StatusUnprocessableEntity,
	DatasetNoData:            http.StatusUnprocessableEntity,
	DatasetReloadFailed:      http.StatusInternalServerError,

	SystemRouteNotFound:      http.StatusNotFound,
	SystemRateLimitExceeded:  http.StatusTooManyRequests,
	SystemServiceUnavailable: http.StatusServiceUnavailable,
	SystemDatabaseError:      http.StatusServiceUnavailable,
	SystemConfigurationError: http.StatusServiceUnavailable,
}

// GetHTTPStatus maps a code to its status. Unlisted codes are 500.
func GetHTTPStatus(code ErrorCode) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}

func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Error.Code, er.Error.Message, er.Error.TraceID)
}
