package dataset

import (
	"context"
	"fmt"

	"cdf-insights/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

const (
	DefaultSyntheticCount = 200
	MaxSyntheticCount     = 10000
)

type amountRange struct {
	min, max float64
}

var syntheticSubCategories = map[string][]string{
	models.CategoryBursaries:         {"Secondary School", "Secondary Boarding School", "Skills Development"},
	models.CategoryProjects:          {"Community Projects"},
	models.CategoryCommunityProjects: {"Community Projects"},
	models.CategoryEmpowerment:       {"Grants"},
}

var syntheticAmounts = map[string]amountRange{
	models.CategoryBursaries:         {20000, 800000},
	models.CategoryProjects:          {150000, 4000000},
	models.CategoryCommunityProjects: {150000, 4000000},
	models.CategoryEmpowerment:       {50000, 1500000},
}

var syntheticCategories = []string{
	models.CategoryBursaries,
	models.CategoryProjects,
	models.CategoryCommunityProjects,
	models.CategoryEmpowerment,
}

// SyntheticSource generates a reproducible dataset over the embedded province
// registry. The same seed always yields the same records.
type SyntheticSource struct {
	Count int
	Seed  uint64
}

// NewSyntheticSource creates a generator; count is clamped to (0, MaxSyntheticCount]
func NewSyntheticSource(count int, seed uint64) *SyntheticSource {
	if count <= 0 {
		count = DefaultSyntheticCount
	}
	if count > MaxSyntheticCount {
		count = MaxSyntheticCount
	}
	return &SyntheticSource{Count: count, Seed: seed}
}

func (s *SyntheticSource) Name() string {
	return fmt.Sprintf("synthetic:%d", s.Seed)
}

func (s *SyntheticSource) Records(ctx context.Context) ([]RawRecord, error) {
	provinces, err := s.Provinces(ctx)
	if err != nil {
		return nil, err
	}

	var constituencies []string
	for _, p := range provinces {
		constituencies = append(constituencies, p.Constituencies...)
	}
	if len(constituencies) == 0 {
		return nil, ErrEmptyRegistry
	}

	faker := gofakeit.New(s.Seed)
	records := make([]RawRecord, 0, s.Count)
	for i := 0; i < s.Count; i++ {
		records = append(records, RawRecord{Index: i, Record: syntheticRecord(faker, constituencies)})
	}
	return records, nil
}

func (s *SyntheticSource) Provinces(ctx context.Context) ([]models.Province, error) {
	return NewEmbeddedSource().Provinces(ctx)
}

func syntheticRecord(faker *gofakeit.Faker, constituencies []string) models.AllocationRecord {
	constituency := faker.RandomString(constituencies)

	// roughly one in fifty constituencies has not reported yet
	if faker.IntRange(1, 50) == 1 {
		return models.AllocationRecord{
			Constituency: constituency,
			Category:     models.CategoryNotReported,
			SubCategory:  models.CategoryNotReported,
			Amount:       decimal.Zero,
		}
	}

	category := faker.RandomString(syntheticCategories)
	r := syntheticAmounts[category]
	return models.AllocationRecord{
		Constituency: constituency,
		Category:     category,
		SubCategory:  faker.RandomString(syntheticSubCategories[category]),
		Amount:       decimal.NewFromFloat(faker.Float64Range(r.min, r.max)).Round(2),
	}
}
