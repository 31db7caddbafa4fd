package hubrepo_test

import (
	"context"
	"testing"

	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/hubrepo"
	"logistics/internal/adapters/out/postgres/pgtest"
	"logistics/internal/core/domain/model/hub"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(key string, aggregate any) {
	m.Called(key, aggregate)
}

type HubRepositoryIntegrationTestSuite struct {
	pgtest.Suite
	repo    *hubrepo.GormHubRepository
	tracker *MockAggregateTracker
}

func (s *HubRepositoryIntegrationTestSuite) SetupSuite() {
	s.Suite.SetupSuite()
	s.Require().NoError(postgres.Migrate(s.DB))
}

func (s *HubRepositoryIntegrationTestSuite) SetupTest() {
	s.Truncate("hubs")
	s.tracker = new(MockAggregateTracker)
	s.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	s.repo = hubrepo.NewGormHubRepository(s.DB, s.tracker)
}

func (s *HubRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	point, err := kernel.NewGeoPoint(11.2443, 125.0048)
	s.Require().NoError(err)
	address, err := kernel.NewLocation("Real St", "Tacloban", "Leyte", &point)
	s.Require().NoError(err)
	h, err := hub.NewHub("HUB-TAC", "Tacloban Hub", address, []string{"Leyte", "Samar"})
	s.Require().NoError(err)

	s.Require().NoError(s.repo.Add(ctx, h))

	got, err := s.repo.Get(ctx, "HUB-TAC")
	s.Require().NoError(err)
	s.Equal("Tacloban Hub", got.Name())
	s.True(got.Address().IsEqual(address))
	s.Equal([]string{"leyte", "samar"}, got.CoverageKeywords())
	s.True(got.IsActive())
	s.tracker.AssertCalled(s.T(), "TrackAggregate", "HUB-TAC", h)
}

func (s *HubRepositoryIntegrationTestSuite) TestAdd_DuplicateCodeFails() {
	ctx := context.Background()
	h := hub.DefaultHubs()[0]
	s.Require().NoError(s.repo.Add(ctx, h))

	s.Require().Error(s.repo.Add(ctx, h))
}

func (s *HubRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := s.repo.Get(context.Background(), "HUB-NOPE")

	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *HubRepositoryIntegrationTestSuite) TestUpdate_DeactivationHidesHub() {
	ctx := context.Background()
	for _, h := range hub.DefaultHubs() {
		s.Require().NoError(s.repo.Add(ctx, h))
	}

	manila, err := s.repo.Get(ctx, "HUB-MNL")
	s.Require().NoError(err)
	manila.Deactivate()
	s.Require().NoError(s.repo.Update(ctx, manila))

	active, err := s.repo.GetAllActive(ctx)
	s.Require().NoError(err)
	s.Len(active, len(hub.DefaultHubs())-1)
	for i, h := range active {
		s.NotEqual("HUB-MNL", h.Code())
		if i > 0 {
			s.Less(active[i-1].Code(), h.Code())
		}
	}

	stored, err := s.repo.Get(ctx, "HUB-MNL")
	s.Require().NoError(err)
	s.False(stored.IsActive())
}

func (s *HubRepositoryIntegrationTestSuite) TestUpdate_MissingHub() {
	h := hub.DefaultHubs()[0]

	err := s.repo.Update(context.Background(), h)

	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestHubRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(HubRepositoryIntegrationTestSuite))
}
