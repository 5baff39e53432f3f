package validation

import (
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Export formats accepted by the export_format rule
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// Struct validates a struct against its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("non_negative_amount", validateNonNegativeAmount)
	_ = v.RegisterValidation("not_blank", validateNotBlank)
	_ = v.RegisterValidation("export_format", validateExportFormat)
	_ = v.RegisterValidation("filter_value", validateFilterValue)

	// decimals are validated by value, not traversed as structs
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// validateNonNegativeAmount accepts decimal or numeric amounts that are >= 0
func validateNonNegativeAmount(fl validator.FieldLevel) bool {
	field := fl.Field()
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return !d.IsNegative()
	}

	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return field.Int() >= 0
	case reflect.Float32, reflect.Float64:
		return field.Float() >= 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

// validateNotBlank rejects strings made only of whitespace
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// validateExportFormat accepts csv or json, case-insensitively
func validateExportFormat(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case FormatCSV, FormatJSON:
		return true
	default:
		return false
	}
}

// validateFilterValue rejects control characters in filter query values
func validateFilterValue(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}
