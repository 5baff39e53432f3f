package models

import "github.com/shopspring/decimal"

// KeyAmount is an amount aggregated under a grouping key
type KeyAmount struct {
	Key    string          `json:"key"`
	Amount decimal.Decimal `json:"amount"`
}

// Totals is an ordered key → amount mapping
type Totals []KeyAmount

// Amount returns the total recorded for key
func (t Totals) Amount(key string) (decimal.Decimal, bool) {
	for _, e := range t {
		if e.Key == key {
			return e.Amount, true
		}
	}
	return decimal.Zero, false
}

// Keys returns the keys in order
func (t Totals) Keys() []string {
	keys := make([]string, len(t))
	for i, e := range t {
		keys[i] = e.Key
	}
	return keys
}

// Sum adds every amount
func (t Totals) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, e := range t {
		sum = sum.Add(e.Amount)
	}
	return sum
}

// SummaryStatistics contains the dashboard key metrics
type SummaryStatistics struct {
	TotalAmount          decimal.Decimal `json:"total_amount"`
	RecordCount          int             `json:"record_count"`
	UniqueConstituencies int             `json:"unique_constituencies"`
	ProjectCount         int             `json:"project_count"`
	BursaryCount         int             `json:"bursary_count"`
	EmpowermentCount     int             `json:"empowerment_count"`
}

// PercentageShare is a key's amount and its share of a grand total
type PercentageShare struct {
	Key     string          `json:"key"`
	Amount  decimal.Decimal `json:"amount"`
	Percent float64         `json:"percent"`
}

// CategoryPerformance contains aggregated allocation data by category
type CategoryPerformance struct {
	Category      string          `json:"category"`
	RecordCount   int             `json:"record_count"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	AverageAmount decimal.Decimal `json:"average_amount"`
}

// ProvinceEfficiency relates a province total to its registered constituencies
type ProvinceEfficiency struct {
	Province          string          `json:"province"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	ConstituencyCount int             `json:"constituency_count"`
	PerConstituency   decimal.Decimal `json:"per_constituency"`
}

// DashboardSummary pairs the key metrics of the whole dataset with those of the
// filtered selection
type DashboardSummary struct {
	Overall  SummaryStatistics `json:"overall"`
	Filtered SummaryStatistics `json:"filtered"`
	Filters  string            `json:"filters"`
}
