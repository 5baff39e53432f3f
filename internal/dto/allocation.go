package dto

import (
	"time"

	"cdf-insights/internal/models"

	"github.com/google/uuid"
)

// Allocation Request DTOs

// AllocationQuery carries the dashboard filter selections shared by most views.
// "all" or an empty value disables a criterion.
type AllocationQuery struct {
	Search       string `query:"search" validate:"omitempty,max=100,filter_value"`
	Category     string `query:"category" validate:"omitempty,max=60,filter_value"`
	Constituency string `query:"constituency" validate:"omitempty,max=120,filter_value"`
	Province     string `query:"province" validate:"omitempty,max=60,filter_value"`
}

// ToCriteria converts the query into aggregation criteria. Every value,
// search term included, is passed through unchanged: a search of " " is a
// substring filter, not an empty one.
func (q AllocationQuery) ToCriteria() models.FilterCriteria {
	return models.FilterCriteria{
		SearchTerm:   q.Search,
		Category:     q.Category,
		Constituency: q.Constituency,
		Province:     q.Province,
	}
}

// TotalsQuery groups the filtered records along one dimension
type TotalsQuery struct {
	AllocationQuery
	By string `query:"by" validate:"omitempty,oneof=category constituency subcategory sub_category province"`
}

// TopQuery limits a ranked view
type TopQuery struct {
	AllocationQuery
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

// SubcategoryQuery selects the category whose subcategories are totalled
type SubcategoryQuery struct {
	Category string `query:"category" validate:"required,not_blank,max=60,filter_value"`
}

// ExportQuery selects the export format for the filtered records
type ExportQuery struct {
	AllocationQuery
	Format string `query:"format" validate:"omitempty,export_format"`
}

// Allocation Response DTOs

// RecordsResponse lists the filtered records
type RecordsResponse struct {
	Records []models.AllocationRecord `json:"records"`
	Count   int                       `json:"count"`
	Filters string                    `json:"filters"`
}

// TotalsResponse holds a grouping with its percentages
type TotalsResponse struct {
	By      string                   `json:"by"`
	Totals  []models.PercentageShare `json:"totals"`
	Filters string                   `json:"filters"`
}

// RankingResponse holds a ranked key/amount list
type RankingResponse struct {
	Items   models.Totals `json:"items"`
	Limit   int           `json:"limit"`
	Filters string        `json:"filters"`
}

// ReloadResponse summarises an admin-triggered reload
type ReloadResponse struct {
	Version  uuid.UUID          `json:"version"`
	Source   string             `json:"source"`
	Total    int                `json:"total"`
	Loaded   int                `json:"loaded"`
	Skipped  int                `json:"skipped"`
	Issues   []models.LoadIssue `json:"issues,omitempty"`
	LoadedAt time.Time          `json:"loaded_at"`
}

// NewReloadResponse builds the response body from a load report
func NewReloadResponse(report *models.LoadReport) ReloadResponse {
	return ReloadResponse{
		Version:  report.Version,
		Source:   report.Source,
		Total:    report.Total,
		Loaded:   report.Loaded,
		Skipped:  report.Skipped,
		Issues:   report.Issues,
		LoadedAt: report.LoadedAt,
	}
}

// LoadHistoryResponse is a page of dataset load history
type LoadHistoryResponse struct {
	Loads []*models.DatasetLoadLog `json:"loads"`
	Total int64                    `json:"total"`
	Page  int                      `json:"page"`
	Limit int                      `json:"limit"`
}
