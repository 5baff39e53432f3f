package services

import (
	"math"
	"testing"

	"cdf-insights/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AllocationAggregatorTestSuite struct {
	suite.Suite
	registry models.ProvinceRegistry
	records  []models.AllocationRecord
}

func TestAllocationAggregatorSuite(t *testing.T) {
	suite.Run(t, new(AllocationAggregatorTestSuite))
}

var (
	fixtureConstituencies = []string{"Katuba", "Keembe", "Chongwe", "Kafue", "Kitwe", "kitwe", "Mwandi Constituency"}
	fixtureCategories     = []string{"Bursaries", "Busaries", "Burseries", "Projects", "Community Projects", "Empowerment", "0"}
	fixtureSubCategories  = []string{"Secondary Boarding School", "Skills Development", "Grants", "N/A", "0", ""}
)

func allocation(constituency, category, subCategory string, amount int64) models.AllocationRecord {
	return models.AllocationRecord{
		Constituency: constituency,
		Category:     category,
		SubCategory:  subCategory,
		Amount:       decimal.NewFromInt(amount),
	}
}

func randomAllocations(n int) []models.AllocationRecord {
	records := make([]models.AllocationRecord, n)
	for i := range records {
		records[i] = allocation(
			gofakeit.RandomString(fixtureConstituencies),
			gofakeit.RandomString(fixtureCategories),
			gofakeit.RandomString(fixtureSubCategories),
			int64(gofakeit.IntRange(0, 500000)),
		)
	}
	return records
}

func (s *AllocationAggregatorTestSuite) SetupTest() {
	s.registry = models.NewProvinceRegistry([]models.Province{
		{Name: "Central", Constituencies: []string{"Katuba", "Keembe"}},
		{Name: "Lusaka", Constituencies: []string{"Chongwe", "Kafue"}},
		{Name: "Copperbelt", Constituencies: []string{"Kitwe"}},
		{Name: "Western", Constituencies: []string{"Sioma"}},
	})
	s.records = randomAllocations(200)
}

func (s *AllocationAggregatorTestSuite) sum(records []models.AllocationRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
	}
	return total
}

// Filtering

func (s *AllocationAggregatorTestSuite) TestFilterRecords_NoCriteriaReturnsEverythingInOrder() {
	for _, criteria := range []models.FilterCriteria{
		{},
		{Category: models.FilterAll, Constituency: models.FilterAll, Province: models.FilterAll},
	} {
		result := FilterRecords(s.records, criteria, s.registry)
		s.Equal(s.records, result)
	}
}

func (s *AllocationAggregatorTestSuite) TestFilterRecords_Idempotent() {
	criteria := []models.FilterCriteria{
		{SearchTerm: "ka"},
		{Category: "Bursaries"},
		{Province: "Central"},
		{SearchTerm: "school", Province: "Lusaka"},
		{Constituency: "Kitwe", Category: "Empowerment"},
	}

	for _, c := range criteria {
		once := FilterRecords(s.records, c, s.registry)
		twice := FilterRecords(once, c, s.registry)
		s.Equal(once, twice, "filtering twice with %s changed the result", c)
	}
}

func (s *AllocationAggregatorTestSuite) TestFilterRecords_Monotonic() {
	base := models.FilterCriteria{SearchTerm: "a"}
	baseLen := len(FilterRecords(s.records, base, s.registry))

	narrowed := []models.FilterCriteria{
		{SearchTerm: "a", Category: "Projects"},
		{SearchTerm: "a", Constituency: "Keembe"},
		{SearchTerm: "a", Province: "Copperbelt"},
	}
	for _, c := range narrowed {
		s.LessOrEqual(len(FilterRecords(s.records, c, s.registry)), baseLen, "criteria %s grew the result", c)
	}
}

func (s *AllocationAggregatorTestSuite) TestFilterRecords_SearchIsCaseInsensitiveAcrossFields() {
	records := []models.AllocationRecord{
		allocation("Katuba", "Bursaries", "Secondary Boarding School", 10),
		allocation("Keembe", "Projects", "Community Projects", 20),
		allocation("Chongwe", "Empowerment", "Grants", 30),
	}

	s.Len(FilterRecords(records, models.FilterCriteria{SearchTerm: "KATU"}, s.registry), 1)
	s.Len(FilterRecords(records, models.FilterCriteria{SearchTerm: "burs"}, s.registry), 1)
	s.Len(FilterRecords(records, models.FilterCriteria{SearchTerm: "GRANTS"}, s.registry), 1)
	s.Len(FilterRecords(records, models.FilterCriteria{SearchTerm: "e"}, s.registry), 3)
	s.Empty(FilterRecords(records, models.FilterCriteria{SearchTerm: "zzz"}, s.registry))
}

func (s *AllocationAggregatorTestSuite) TestFilterRecords_SearchWhitespaceIsLiteral() {
	records := []models.AllocationRecord{
		allocation("Katuba", "Bursaries", "Secondary Boarding School", 10),
		allocation("Keembe", "Projects", "Community Projects", 20),
		allocation("Chongwe", "Empowerment", "Grants", 30),
	}

	s.Len(FilterRecords(records, models.FilterCriteria{SearchTerm: " "}, s.registry), 2)
	s.Empty(FilterRecords(records, models.FilterCriteria{SearchTerm: " katuba"}, s.registry))
	s.Len(FilterRecords(records, models.FilterCriteria{SearchTerm: "boarding school"}, s.registry), 1)
}

func (s *AllocationAggregatorTestSuite) TestFilterRecords_CategoryIsExact() {
	records := []models.AllocationRecord{
		allocation("Katuba", "Bursaries", "", 100),
		allocation("Keembe", "Busaries", "", 200),
		allocation("Kafue", "bursaries", "", 300),
	}

	result := FilterRecords(records, models.FilterCriteria{Category: "Bursaries"}, s.registry)
	s.Require().Len(result, 1)
	s.Equal("Katuba", result[0].Constituency)
}

func (s *AllocationAggregatorTestSuite) TestFilterRecords_UnknownProvinceIsEmpty() {
	result := FilterRecords(s.records, models.FilterCriteria{Province: "Atlantis"}, s.registry)
	s.Empty(result)
}

func (s *AllocationAggregatorTestSuite) TestFilterRecords_ProvinceExcludesOrphans() {
	records := []models.AllocationRecord{
		allocation("Katuba", "Projects", "", 10),
		allocation("Mwandi Constituency", "Projects", "", 20),
		allocation("kitwe", "Projects", "", 30),
	}

	for _, province := range s.registry.Names() {
		for _, r := range FilterRecords(records, models.FilterCriteria{Province: province}, s.registry) {
			s.NotEqual("Mwandi Constituency", r.Constituency)
			s.NotEqual("kitwe", r.Constituency)
		}
	}
}

func (s *AllocationAggregatorTestSuite) TestFilterRecords_DoesNotMutateInput() {
	original := make([]models.AllocationRecord, len(s.records))
	copy(original, s.records)

	_ = FilterRecords(s.records, models.FilterCriteria{SearchTerm: "k", Province: "Central"}, s.registry)

	s.Equal(original, s.records)
}

func (s *AllocationAggregatorTestSuite) TestFilterRecords_SkipsMalformed() {
	records := []models.AllocationRecord{
		allocation("Katuba", "Projects", "", 10),
		allocation("", "Projects", "", 10),
		allocation("Keembe", " ", "", 10),
		allocation("Kafue", "Projects", "", -5),
	}

	result := FilterRecords(records, models.FilterCriteria{}, s.registry)
	s.Require().Len(result, 1)
	s.Equal("Katuba", result[0].Constituency)
}

// Grouping

func (s *AllocationAggregatorTestSuite) TestGroupTotals_CategoryConservesAmounts() {
	totals := GroupTotals(s.records, ByCategory)
	s.True(totals.Sum().Equal(s.sum(s.records)), "category totals %s != record sum %s", totals.Sum(), s.sum(s.records))
}

func (s *AllocationAggregatorTestSuite) TestGroupTotals_FirstOccurrenceOrder() {
	records := []models.AllocationRecord{
		allocation("Keembe", "Projects", "", 1),
		allocation("Katuba", "Bursaries", "", 2),
		allocation("Keembe", "Empowerment", "", 3),
		allocation("Chongwe", "Bursaries", "", 4),
	}

	s.Equal([]string{"Keembe", "Katuba", "Chongwe"}, GroupTotals(records, ByConstituency).Keys())
	s.Equal([]string{"Projects", "Bursaries", "Empowerment"}, GroupTotals(records, ByCategory).Keys())
}

func (s *AllocationAggregatorTestSuite) TestGroupTotals_ProvinceExcludesOrphans() {
	records := []models.AllocationRecord{
		allocation("Katuba", "Projects", "", 100),
		allocation("Mwandi Constituency", "Projects", "", 900),
		allocation("Chongwe", "Bursaries", "", 50),
	}

	totals := GroupTotals(records, ByProvince(s.registry))
	s.Equal([]string{"Central", "Lusaka"}, totals.Keys())
	s.True(totals.Sum().Equal(decimal.NewFromInt(150)))

	stats := SummarizeRecords(records)
	s.True(stats.TotalAmount.Equal(decimal.NewFromInt(1050)))
	s.Equal(3, stats.UniqueConstituencies)
}

func (s *AllocationAggregatorTestSuite) TestGroupTotals_MisspellingsAreNotMerged() {
	records := []models.AllocationRecord{
		allocation("Katuba", "Bursaries", "", 100),
		allocation("Keembe", "Busaries", "", 200),
	}

	totals := GroupTotals(records, ByCategory)
	s.Require().Len(totals, 2)
	bursaries, _ := totals.Amount("Bursaries")
	busaries, _ := totals.Amount("Busaries")
	s.True(bursaries.Equal(decimal.NewFromInt(100)))
	s.True(busaries.Equal(decimal.NewFromInt(200)))

	s.Equal(1, SummarizeRecords(records).BursaryCount)
}

func (s *AllocationAggregatorTestSuite) TestGroupTotals_BySubCategory() {
	records := []models.AllocationRecord{
		allocation("Katuba", "Bursaries", "Secondary Boarding School", 100),
		allocation("Keembe", "Bursaries", "Secondary Boarding School", 50),
		allocation("Keembe", "Empowerment", "Grants", 25),
	}

	totals := GroupTotals(records, BySubCategory)
	s.Equal([]string{"Secondary Boarding School", "Grants"}, totals.Keys())
	amount, ok := totals.Amount("Secondary Boarding School")
	s.True(ok)
	s.True(amount.Equal(decimal.NewFromInt(150)))
}

// Ranking

func (s *AllocationAggregatorTestSuite) TestTopN_SortedAndComplete() {
	totals := GroupTotals(s.records, ByConstituency)
	top := TopN(totals, len(totals)+5)

	s.Len(top, len(totals))
	s.ElementsMatch(totals.Keys(), top.Keys())
	for i := 1; i < len(top); i++ {
		s.True(top[i-1].Amount.GreaterThanOrEqual(top[i].Amount), "entry %d out of order", i)
	}
}

func (s *AllocationAggregatorTestSuite) TestTopN_StableTies() {
	totals := models.Totals{
		{Key: "a", Amount: decimal.NewFromInt(5)},
		{Key: "b", Amount: decimal.NewFromInt(10)},
		{Key: "c", Amount: decimal.NewFromInt(5)},
		{Key: "d", Amount: decimal.NewFromInt(10)},
	}

	s.Equal([]string{"b", "d", "a", "c"}, TopN(totals, 4).Keys())
	s.Equal([]string{"b", "d", "a"}, TopN(totals, 3).Keys())
	s.Equal([]string{"a", "b", "c", "d"}, totals.Keys(), "input must not be reordered")
}

func (s *AllocationAggregatorTestSuite) TestTopN_NonPositive() {
	totals := GroupTotals(s.records, ByCategory)
	s.Empty(TopN(totals, 0))
	s.Empty(TopN(totals, -3))
	s.Empty(TopN(nil, 5))
}

// Summary

func (s *AllocationAggregatorTestSuite) TestSummarizeRecords_KatubaKeembe() {
	records := []models.AllocationRecord{
		allocation("Katuba", "Bursaries", "Secondary Boarding School", 126000),
		allocation("Keembe", "Bursaries", "Secondary Boarding School", 476011),
	}

	totals := GroupTotals(records, ByCategory)
	s.Require().Len(totals, 1)
	s.Equal("Bursaries", totals[0].Key)
	s.True(totals[0].Amount.Equal(decimal.NewFromInt(602011)))

	stats := SummarizeRecords(records)
	s.True(stats.TotalAmount.Equal(decimal.NewFromInt(602011)))
	s.Equal(2, stats.RecordCount)
	s.Equal(2, stats.UniqueConstituencies)
	s.Equal(2, stats.BursaryCount)
	s.Equal(0, stats.ProjectCount)
	s.Equal(0, stats.EmpowermentCount)
}

func (s *AllocationAggregatorTestSuite) TestSummarizeRecords_CategoryCounts() {
	records := []models.AllocationRecord{
		allocation("Katuba", "Projects", "", 1),
		allocation("Katuba", "Community Projects", "", 1),
		allocation("Katuba", "Community projects", "", 1),
		allocation("Katuba", "Empowerment", "", 1),
		allocation("Katuba", "Burseries", "", 1),
		allocation("kitwe", "0", "0", 0),
	}

	stats := SummarizeRecords(records)
	s.Equal(2, stats.ProjectCount)
	s.Equal(1, stats.EmpowermentCount)
	s.Equal(0, stats.BursaryCount)
	s.Equal(2, stats.UniqueConstituencies)
	s.Equal(6, stats.RecordCount)
}

func (s *AllocationAggregatorTestSuite) TestSummarizeRecords_Empty() {
	stats := SummarizeRecords(nil)
	s.True(stats.TotalAmount.IsZero())
	s.Zero(stats.UniqueConstituencies)
}

// Percentages

func (s *AllocationAggregatorTestSuite) TestPercentageBreakdown_ZeroGrandTotal() {
	totals := models.Totals{
		{Key: "a", Amount: decimal.Zero},
		{Key: "b", Amount: decimal.NewFromInt(10)},
	}

	for _, share := range PercentageBreakdown(totals, decimal.Zero) {
		s.Zero(share.Percent)
		s.False(math.IsNaN(share.Percent))
	}
}

func (s *AllocationAggregatorTestSuite) TestPercentageBreakdown_SumsToHundred() {
	totals := GroupTotals(s.records, ByCategory)
	shares := PercentageBreakdown(totals, totals.Sum())

	s.Len(shares, len(totals))
	if totals.Sum().IsZero() {
		return
	}
	var sum float64
	for _, share := range shares {
		sum += share.Percent
	}
	s.InDelta(100.0, sum, 1e-6)
}

func (s *AllocationAggregatorTestSuite) TestPercentageBreakdown_Values() {
	totals := models.Totals{
		{Key: "Bursaries", Amount: decimal.NewFromInt(25)},
		{Key: "Projects", Amount: decimal.NewFromInt(75)},
	}

	shares := PercentageBreakdown(totals, decimal.NewFromInt(100))
	s.InDelta(25.0, shares[0].Percent, 1e-9)
	s.InDelta(75.0, shares[1].Percent, 1e-9)
	s.Equal("Projects", shares[1].Key)
}

// Dashboard views

func (s *AllocationAggregatorTestSuite) TestSubcategoryBreakdown() {
	records := []models.AllocationRecord{
		allocation("Katuba", "Bursaries", "Secondary Boarding School", 100),
		allocation("Keembe", "Bursaries", "Tertiary", 40),
		allocation("Keembe", "Projects", "Tertiary", 1000),
	}

	totals := SubcategoryBreakdown(records, "Bursaries")
	s.Equal([]string{"Secondary Boarding School", "Tertiary"}, totals.Keys())
	tertiary, _ := totals.Amount("Tertiary")
	s.True(tertiary.Equal(decimal.NewFromInt(40)))

	s.Empty(SubcategoryBreakdown(records, models.FilterAll))
	s.Empty(SubcategoryBreakdown(records, ""))
}

func (s *AllocationAggregatorTestSuite) TestProvinceBreakdown_IncludesEveryProvince() {
	records := []models.AllocationRecord{
		allocation("Kitwe", "Projects", "", 10),
		allocation("Katuba", "Projects", "", 300),
		allocation("Chongwe", "Projects", "", 300),
	}

	totals := ProvinceBreakdown(records, s.registry)
	s.Equal([]string{"Central", "Lusaka", "Copperbelt", "Western"}, totals.Keys())
	western, _ := totals.Amount("Western")
	s.True(western.IsZero())
}

func (s *AllocationAggregatorTestSuite) TestCategoryPerformanceOf() {
	records := []models.AllocationRecord{
		allocation("Katuba", "Projects", "", 100),
		allocation("Keembe", "Projects", "", 50),
		allocation("Keembe", "Empowerment", "", 30),
	}

	perf := CategoryPerformanceOf(records)
	s.Require().Len(perf, 2)
	s.Equal("Projects", perf[0].Category)
	s.Equal(2, perf[0].RecordCount)
	s.True(perf[0].TotalAmount.Equal(decimal.NewFromInt(150)))
	s.True(perf[0].AverageAmount.Equal(decimal.NewFromInt(75)))
	s.True(perf[1].AverageAmount.Equal(decimal.NewFromInt(30)))
}

func (s *AllocationAggregatorTestSuite) TestProvinceEfficiencyOf() {
	records := []models.AllocationRecord{
		allocation("Katuba", "Projects", "", 100),
		allocation("Keembe", "Projects", "", 100),
		allocation("Kitwe", "Projects", "", 150),
	}

	eff := ProvinceEfficiencyOf(records, s.registry, 2)
	s.Require().Len(eff, 2)
	s.Equal("Central", eff[0].Province)
	s.Equal(2, eff[0].ConstituencyCount)
	s.True(eff[0].PerConstituency.Equal(decimal.NewFromInt(100)))
	s.Equal("Copperbelt", eff[1].Province)
	s.True(eff[1].PerConstituency.Equal(decimal.NewFromInt(150)))
}

func (s *AllocationAggregatorTestSuite) TestConstituencyNames() {
	records := []models.AllocationRecord{
		allocation("Keembe", "Projects", "", 1),
		allocation("Katuba", "Projects", "", 1),
		allocation("kitwe", "Projects", "", 1),
		allocation("Keembe", "Empowerment", "", 1),
	}

	s.Equal([]string{"Katuba", "Keembe", "kitwe"}, ConstituencyNames(records))
	s.Empty(ConstituencyNames(nil))
}

func (s *AllocationAggregatorTestSuite) TestKeyFuncFor() {
	record := allocation("Katuba", "Bursaries", "Grants", 1)

	for dimension, want := range map[string]string{
		"category":     "Bursaries",
		"Constituency": "Katuba",
		"subcategory":  "Grants",
		"province":     "Central",
	} {
		fn, err := KeyFuncFor(dimension, s.registry)
		s.Require().NoError(err)
		key, ok := fn(record)
		s.True(ok)
		s.Equal(want, key)
	}

	_, err := KeyFuncFor("district", s.registry)
	s.ErrorIs(err, ErrUnknownGrouping)
}
