package repositories

import (
	"context"
	"testing"
	"time"

	"cdf-insights/internal/database"
	"cdf-insights/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestDatasetLoadLogRepository(t *testing.T) {
	suite.Run(t, new(DatasetLoadLogRepositorySuite))
}

type DatasetLoadLogRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo DatasetLoadLogRepositoryInterface
	ctx  context.Context
}

func (s *DatasetLoadLogRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewDatasetLoadLogRepository(s.db.DB)
	s.ctx = context.Background()
}

func (s *DatasetLoadLogRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *DatasetLoadLogRepositorySuite) createEntry(status string, createdAt time.Time) *models.DatasetLoadLog {
	entry := &models.DatasetLoadLog{
		Version:   uuid.New(),
		Source:    "embedded",
		Trigger:   models.LoadTriggerAdmin,
		Status:    status,
		Loaded:    10,
		CreatedAt: createdAt,
	}
	s.Require().NoError(s.repo.Create(s.ctx, entry))
	return entry
}

func (s *DatasetLoadLogRepositorySuite) TestCreate() {
	entry := s.createEntry(models.LoadStatusSuccess, time.Time{})

	s.NotEqual(uuid.Nil, entry.ID)
	s.NotZero(entry.CreatedAt)
}

func (s *DatasetLoadLogRepositorySuite) TestCreate_Nil() {
	err := s.repo.Create(s.ctx, nil)
	s.Error(err)
	s.Contains(err.Error(), "cannot be nil")
}

func (s *DatasetLoadLogRepositorySuite) TestList_NewestFirstWithPagination() {
	now := time.Now().UTC()
	oldest := s.createEntry(models.LoadStatusSuccess, now.Add(-3*time.Hour))
	middle := s.createEntry(models.LoadStatusFailed, now.Add(-2*time.Hour))
	newest := s.createEntry(models.LoadStatusSuccess, now.Add(-1*time.Hour))

	logs, total, err := s.repo.List(s.ctx, 0, 2)
	s.Require().NoError(err)
	s.Equal(int64(3), total)
	s.Require().Len(logs, 2)
	s.Equal(newest.ID, logs[0].ID)
	s.Equal(middle.ID, logs[1].ID)

	logs, _, err = s.repo.List(s.ctx, 2, 2)
	s.Require().NoError(err)
	s.Require().Len(logs, 1)
	s.Equal(oldest.ID, logs[0].ID)
}

func (s *DatasetLoadLogRepositorySuite) TestList_ClampsLimit() {
	s.createEntry(models.LoadStatusSuccess, time.Time{})

	logs, total, err := s.repo.List(s.ctx, -5, 0)
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Len(logs, 1)
}

func (s *DatasetLoadLogRepositorySuite) TestGetLatestSuccessful() {
	now := time.Now().UTC()
	s.createEntry(models.LoadStatusSuccess, now.Add(-2*time.Hour))
	latest := s.createEntry(models.LoadStatusSuccess, now.Add(-1*time.Hour))
	s.createEntry(models.LoadStatusFailed, now)

	entry, err := s.repo.GetLatestSuccessful(s.ctx)
	s.Require().NoError(err)
	s.Equal(latest.ID, entry.ID)
}

func (s *DatasetLoadLogRepositorySuite) TestGetLatestSuccessful_NotFound() {
	s.createEntry(models.LoadStatusFailed, time.Time{})

	_, err := s.repo.GetLatestSuccessful(s.ctx)
	s.ErrorIs(err, ErrLoadLogNotFound)
}

func (s *DatasetLoadLogRepositorySuite) TestDeleteOlderThan() {
	now := time.Now().UTC()
	s.createEntry(models.LoadStatusSuccess, now.Add(-48*time.Hour))
	s.createEntry(models.LoadStatusFailed, now.Add(-30*time.Hour))
	s.createEntry(models.LoadStatusSuccess, now.Add(-1*time.Hour))

	deleted, err := s.repo.DeleteOlderThan(s.ctx, 24*time.Hour)
	s.Require().NoError(err)
	s.Equal(int64(2), deleted)

	_, total, err := s.repo.List(s.ctx, 0, 10)
	s.Require().NoError(err)
	s.Equal(int64(1), total)
}
