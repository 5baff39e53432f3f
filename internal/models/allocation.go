package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Canonical category labels as they appear in the CDF dataset.
const (
	CategoryBursaries         = "Bursaries"
	CategoryProjects          = "Projects"
	CategoryCommunityProjects = "Community Projects"
	CategoryEmpowerment       = "Empowerment"

	// CategoryNotReported marks a constituency that has not reported any data yet.
	CategoryNotReported = "0"

	// FilterAll disables a filter criterion.
	FilterAll = "all"
)

var (
	ErrEmptyConstituency = errors.New("constituency is required")
	ErrEmptyCategory     = errors.New("category is required")
	ErrNegativeAmount    = errors.New("amount cannot be negative")
)

// AllocationRecord is one CDF disbursement line item.
type AllocationRecord struct {
	ID           uint            `gorm:"primaryKey" json:"-"`
	Position     int             `gorm:"not null;index" json:"-"`
	Constituency string          `gorm:"type:varchar(120);not null;index" json:"constituency" validate:"required"`
	Category     string          `gorm:"type:varchar(60);not null;index" json:"category" validate:"required"`
	SubCategory  string          `gorm:"type:varchar(120)" json:"subCategory"`
	Amount       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"amount" validate:"non_negative_amount"`
	CreatedAt    time.Time       `json:"-"`
}

// TableName overrides the gorm table name
func (AllocationRecord) TableName() string {
	return "cdf_allocations"
}

// Validate checks the fields the aggregation pipeline relies on
func (r AllocationRecord) Validate() error {
	if strings.TrimSpace(r.Constituency) == "" {
		return ErrEmptyConstituency
	}
	if strings.TrimSpace(r.Category) == "" {
		return ErrEmptyCategory
	}
	if r.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}

// IsWellFormed reports whether the record can take part in aggregation
func (r AllocationRecord) IsWellFormed() bool {
	return r.Validate() == nil
}

// IsUnreported reports whether the record is the "no data yet" placeholder row
func (r AllocationRecord) IsUnreported() bool {
	return r.Category == CategoryNotReported && r.Amount.IsZero()
}
