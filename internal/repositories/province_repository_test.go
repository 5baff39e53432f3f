package repositories

import (
	"context"
	"testing"

	"cdf-insights/internal/database"
	"cdf-insights/internal/models"

	"github.com/stretchr/testify/suite"
)

func TestProvinceRepository(t *testing.T) {
	suite.Run(t, new(ProvinceRepositorySuite))
}

type ProvinceRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo ProvinceRepositoryInterface
	ctx  context.Context
}

func (s *ProvinceRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewProvinceRepository(s.db.DB)
	s.ctx = context.Background()
}

func (s *ProvinceRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *ProvinceRepositorySuite) TestRoundTripKeepsRegistryOrder() {
	registry := models.NewProvinceRegistry([]models.Province{
		{Name: "Western", Constituencies: []string{"Sioma", "Mongu Central"}},
		{Name: "Central", Constituencies: []string{"Katuba", "Keembe"}},
		{Name: "Lusaka", Constituencies: []string{"Kafue"}},
	})

	s.Require().NoError(s.repo.ReplaceAll(s.ctx, registry))

	loaded, err := s.repo.Registry(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"Western", "Central", "Lusaka"}, loaded.Names())
	s.Equal(registry.Provinces(), loaded.Provinces())

	province, ok := loaded.ProvinceOf("Keembe")
	s.True(ok)
	s.Equal("Central", province)

	count, err := s.repo.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(5), count)
}

func (s *ProvinceRepositorySuite) TestReplaceAll_Overwrites() {
	s.Require().NoError(s.repo.ReplaceAll(s.ctx, models.NewProvinceRegistry([]models.Province{
		{Name: "Central", Constituencies: []string{"Katuba"}},
	})))
	s.Require().NoError(s.repo.ReplaceAll(s.ctx, models.NewProvinceRegistry([]models.Province{
		{Name: "Copperbelt", Constituencies: []string{"Kitwe"}},
	})))

	loaded, err := s.repo.Registry(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"Copperbelt"}, loaded.Names())
	s.False(loaded.Contains("Central", "Katuba"))
}

func (s *ProvinceRepositorySuite) TestRegistry_Empty() {
	loaded, err := s.repo.Registry(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, loaded.Len())
}
