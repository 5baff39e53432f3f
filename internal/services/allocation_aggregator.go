package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"cdf-insights/internal/models"

	"github.com/shopspring/decimal"
)

// KeyFunc derives a grouping key from a record. Returning false skips the record.
type KeyFunc func(models.AllocationRecord) (string, bool)

// Grouping dimensions accepted by KeyFuncFor
const (
	GroupByCategory     = "category"
	GroupByConstituency = "constituency"
	GroupBySubCategory  = "subcategory"
	GroupByProvince     = "province"
)

var ErrUnknownGrouping = errors.New("unknown grouping dimension")

var hundred = decimal.NewFromInt(100)

// ByCategory groups by the literal category string
func ByCategory(r models.AllocationRecord) (string, bool) {
	return r.Category, true
}

// ByConstituency groups by the literal constituency string
func ByConstituency(r models.AllocationRecord) (string, bool) {
	return r.Constituency, true
}

// BySubCategory groups by the literal subcategory string
func BySubCategory(r models.AllocationRecord) (string, bool) {
	return r.SubCategory, true
}

// ByProvince groups by the registry province of the record's constituency.
// Constituencies missing from the registry are skipped.
func ByProvince(registry models.ProvinceRegistry) KeyFunc {
	return func(r models.AllocationRecord) (string, bool) {
		return registry.ProvinceOf(r.Constituency)
	}
}

// KeyFuncFor resolves a grouping dimension name to its key function
func KeyFuncFor(dimension string, registry models.ProvinceRegistry) (KeyFunc, error) {
	switch strings.ToLower(dimension) {
	case GroupByCategory:
		return ByCategory, nil
	case GroupByConstituency:
		return ByConstituency, nil
	case GroupBySubCategory, "sub_category":
		return BySubCategory, nil
	case GroupByProvince:
		return ByProvince(registry), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGrouping, dimension)
	}
}

// FilterRecords returns the well-formed records matching every active criterion,
// in their original order. The input slice is never modified.
func FilterRecords(records []models.AllocationRecord, criteria models.FilterCriteria, registry models.ProvinceRegistry) []models.AllocationRecord {
	search := strings.ToLower(criteria.SearchTerm)
	filtered := make([]models.AllocationRecord, 0, len(records))

	for _, r := range records {
		if !r.IsWellFormed() {
			continue
		}
		if search != "" && !matchesSearch(r, search) {
			continue
		}
		if models.IsActive(criteria.Category) && r.Category != criteria.Category {
			continue
		}
		if models.IsActive(criteria.Constituency) && r.Constituency != criteria.Constituency {
			continue
		}
		if models.IsActive(criteria.Province) && !registry.Contains(criteria.Province, r.Constituency) {
			continue
		}
		filtered = append(filtered, r)
	}

	return filtered
}

func matchesSearch(r models.AllocationRecord, lowered string) bool {
	return strings.Contains(strings.ToLower(r.Constituency), lowered) ||
		strings.Contains(strings.ToLower(r.Category), lowered) ||
		strings.Contains(strings.ToLower(r.SubCategory), lowered)
}

// GroupTotals sums amounts per key in a single pass. Keys keep the order of
// their first occurrence.
func GroupTotals(records []models.AllocationRecord, keyFn KeyFunc) models.Totals {
	positions := make(map[string]int)
	totals := make(models.Totals, 0)

	for _, r := range records {
		if !r.IsWellFormed() {
			continue
		}
		key, ok := keyFn(r)
		if !ok {
			continue
		}
		idx, seen := positions[key]
		if !seen {
			positions[key] = len(totals)
			totals = append(totals, models.KeyAmount{Key: key, Amount: r.Amount})
			continue
		}
		totals[idx].Amount = totals[idx].Amount.Add(r.Amount)
	}

	return totals
}

// TopN returns the n largest entries, descending by amount. Ties keep their
// original relative order.
func TopN(totals models.Totals, n int) models.Totals {
	if n <= 0 || len(totals) == 0 {
		return models.Totals{}
	}

	sorted := make(models.Totals, len(totals))
	copy(sorted, totals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount.GreaterThan(sorted[j].Amount)
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// SummarizeRecords computes the dashboard key metrics. Category matches are
// exact, so misspelled labels are not counted.
func SummarizeRecords(records []models.AllocationRecord) models.SummaryStatistics {
	stats := models.SummaryStatistics{TotalAmount: decimal.Zero}
	constituencies := make(map[string]struct{})

	for _, r := range records {
		if !r.IsWellFormed() {
			continue
		}
		stats.RecordCount++
		stats.TotalAmount = stats.TotalAmount.Add(r.Amount)
		constituencies[r.Constituency] = struct{}{}

		switch r.Category {
		case models.CategoryProjects, models.CategoryCommunityProjects:
			stats.ProjectCount++
		case models.CategoryBursaries:
			stats.BursaryCount++
		case models.CategoryEmpowerment:
			stats.EmpowermentCount++
		}
	}

	stats.UniqueConstituencies = len(constituencies)
	return stats
}

// PercentageBreakdown expresses each total as a percentage of grandTotal.
// A zero grand total yields zero for every entry.
func PercentageBreakdown(totals models.Totals, grandTotal decimal.Decimal) []models.PercentageShare {
	shares := make([]models.PercentageShare, len(totals))
	for i, t := range totals {
		shares[i] = models.PercentageShare{Key: t.Key, Amount: t.Amount}
		if grandTotal.IsZero() {
			continue
		}
		shares[i].Percent = t.Amount.Mul(hundred).Div(grandTotal).InexactFloat64()
	}
	return shares
}

// SubcategoryBreakdown totals subcategories within one exact category.
// An inactive category yields no entries.
func SubcategoryBreakdown(records []models.AllocationRecord, category string) models.Totals {
	if !models.IsActive(category) {
		return models.Totals{}
	}
	return GroupTotals(records, func(r models.AllocationRecord) (string, bool) {
		return r.SubCategory, r.Category == category
	})
}

// ProvinceBreakdown totals every registry province, including those without
// records, sorted descending. Ties keep registry order.
func ProvinceBreakdown(records []models.AllocationRecord, registry models.ProvinceRegistry) models.Totals {
	grouped := GroupTotals(records, ByProvince(registry))

	totals := make(models.Totals, 0, registry.Len())
	for _, name := range registry.Names() {
		amount, _ := grouped.Amount(name)
		totals = append(totals, models.KeyAmount{Key: name, Amount: amount})
	}

	return TopN(totals, len(totals))
}

// CategoryPerformanceOf returns amount, count and average per category in
// first-occurrence order.
func CategoryPerformanceOf(records []models.AllocationRecord) []models.CategoryPerformance {
	positions := make(map[string]int)
	perf := make([]models.CategoryPerformance, 0)

	for _, r := range records {
		if !r.IsWellFormed() {
			continue
		}
		idx, seen := positions[r.Category]
		if !seen {
			idx = len(perf)
			positions[r.Category] = idx
			perf = append(perf, models.CategoryPerformance{Category: r.Category, TotalAmount: decimal.Zero})
		}
		perf[idx].RecordCount++
		perf[idx].TotalAmount = perf[idx].TotalAmount.Add(r.Amount)
	}

	for i := range perf {
		perf[i].AverageAmount = perf[i].TotalAmount.Div(decimal.NewFromInt(int64(perf[i].RecordCount)))
	}

	return perf
}

// ProvinceEfficiencyOf relates the top n province totals to the number of
// constituencies each province has in the registry.
func ProvinceEfficiencyOf(records []models.AllocationRecord, registry models.ProvinceRegistry, n int) []models.ProvinceEfficiency {
	top := TopN(ProvinceBreakdown(records, registry), n)

	efficiency := make([]models.ProvinceEfficiency, len(top))
	for i, t := range top {
		count := registry.ConstituencyCount(t.Key)
		per := decimal.Zero
		if count > 0 {
			per = t.Amount.Div(decimal.NewFromInt(int64(count)))
		}
		efficiency[i] = models.ProvinceEfficiency{
			Province:          t.Key,
			TotalAmount:       t.Amount,
			ConstituencyCount: count,
			PerConstituency:   per,
		}
	}

	return efficiency
}

// ConstituencyNames returns the distinct constituency names in ascending order
func ConstituencyNames(records []models.AllocationRecord) []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, r := range records {
		if !r.IsWellFormed() {
			continue
		}
		if _, ok := seen[r.Constituency]; ok {
			continue
		}
		seen[r.Constituency] = struct{}{}
		names = append(names, r.Constituency)
	}
	sort.Strings(names)
	return names
}
