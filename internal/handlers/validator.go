package handlers

import (
	stderrors "errors"
	"fmt"

	"cdf-insights/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator interface
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a validator carrying the dashboard's custom rules
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.GetValidator().GetValidate()}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

// validationDetails renders one "field: reason" line per failed rule
func validationDetails(err error) []string {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fmt.Sprintf("%s: %s", fe.Field(), describeRule(fe)))
	}
	return details
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "not_blank":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "export_format":
		return "must be csv or json"
	case "filter_value":
		return "contains control characters"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
