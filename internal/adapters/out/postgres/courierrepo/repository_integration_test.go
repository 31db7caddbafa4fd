package courierrepo_test

import (
	"context"
	"sync"
	"testing"

	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/courierrepo"
	"logistics/internal/adapters/out/postgres/pgtest"
	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(key string, aggregate any) {
	m.Called(key, aggregate)
}

// CourierRepositoryIntegrationTestSuite provides integration tests for CourierRepository
// using PostgreSQL containers to verify database persistence behavior.
type CourierRepositoryIntegrationTestSuite struct {
	pgtest.Suite
	repo    *courierrepo.GormCourierRepository
	tracker *MockAggregateTracker
}

func (s *CourierRepositoryIntegrationTestSuite) SetupSuite() {
	s.Suite.SetupSuite()
	s.Require().NoError(postgres.Migrate(s.DB))
}

func (s *CourierRepositoryIntegrationTestSuite) SetupTest() {
	s.Truncate("couriers")
	s.tracker = new(MockAggregateTracker)
	s.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	s.repo = courierrepo.NewGormCourierRepository(s.DB, s.tracker)
}

func (s *CourierRepositoryIntegrationTestSuite) newCourier(
	hubCode string,
	driverType courier.DriverType,
	status courier.Status,
	rating float64,
	completed int,
) *courier.Courier {
	vehicle, err := courier.NewVehicle(courier.Van, 500)
	s.Require().NoError(err)
	c, err := courier.RestoreCourier(kernel.NewUUID(), "Courier", hubCode, driverType, vehicle,
		status, rating, completed, true)
	s.Require().NoError(err)
	return c
}

func (s *CourierRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	vehicle, err := courier.NewVehicle(courier.Truck, 2000)
	s.Require().NoError(err)
	c, err := courier.NewCourier(kernel.NewUUID(), "Pedro Penduko", "HUB-CEB", courier.LineHaulDriver, vehicle)
	s.Require().NoError(err)
	s.Require().NoError(c.SetRating(4.25))

	s.Require().NoError(s.repo.Add(ctx, c))

	got, err := s.repo.Get(ctx, c.ID())
	s.Require().NoError(err)
	s.True(got.IsEqual(c))
	s.Equal("Pedro Penduko", got.Name())
	s.Equal("HUB-CEB", got.HomeHubCode())
	s.Equal(courier.LineHaulDriver, got.DriverType())
	s.Equal(courier.Truck, got.Vehicle().Type())
	s.InDelta(2000, got.Vehicle().MaxWeight(), 0.001)
	s.Equal(courier.Available, got.Status())
	s.InDelta(4.25, got.Rating(), 0.001)
	s.True(got.IsActive())
	s.tracker.AssertCalled(s.T(), "TrackAggregate", c.ID().String(), c)
}

func (s *CourierRepositoryIntegrationTestSuite) TestAdd_InvalidCourierIsRejected() {
	var zero courier.Courier

	err := s.repo.Add(context.Background(), &zero)

	s.Require().ErrorIs(err, courier.ErrCourierIsNotConstructed)
}

func (s *CourierRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := s.repo.Get(context.Background(), kernel.NewUUID())

	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *CourierRepositoryIntegrationTestSuite) TestUpdate_PersistsZeroValues() {
	ctx := context.Background()
	c := s.newCourier("HUB-BUL", courier.PickupDriver, courier.Busy, 4, 7)
	s.Require().NoError(s.repo.Add(ctx, c))

	s.Require().NoError(c.CompleteJob())
	c.Deactivate()
	s.Require().NoError(c.SetRating(0))
	s.Require().NoError(s.repo.Update(ctx, c))

	got, err := s.repo.Get(ctx, c.ID())
	s.Require().NoError(err)
	s.Equal(courier.Available, got.Status())
	s.Equal(8, got.CompletedCount())
	s.False(got.IsActive())
	s.InDelta(0, got.Rating(), 0.001)
}

func (s *CourierRepositoryIntegrationTestSuite) TestUpdate_MissingCourier() {
	c := s.newCourier("HUB-BUL", courier.PickupDriver, courier.Available, 0, 0)

	err := s.repo.Update(context.Background(), c)

	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *CourierRepositoryIntegrationTestSuite) TestGetAvailableAtHub_FiltersAndOrders() {
	ctx := context.Background()
	low := s.newCourier("HUB-BUL", courier.PickupDriver, courier.Available, 3.5, 10)
	high := s.newCourier("HUB-BUL", courier.DeliveryDriver, courier.Available, 4.8, 2)
	busy := s.newCourier("HUB-BUL", courier.PickupDriver, courier.Busy, 5, 0)
	offline := s.newCourier("HUB-BUL", courier.PickupDriver, courier.Offline, 5, 0)
	elsewhere := s.newCourier("HUB-MNL", courier.PickupDriver, courier.Available, 5, 0)
	inactive := s.newCourier("HUB-BUL", courier.PickupDriver, courier.Available, 5, 0)
	inactive.Deactivate()

	for _, c := range []*courier.Courier{low, high, busy, offline, elsewhere, inactive} {
		s.Require().NoError(s.repo.Add(ctx, c))
	}

	got, err := s.repo.GetAvailableAtHub(ctx, "HUB-BUL")

	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.True(got[0].IsEqual(high))
	s.True(got[1].IsEqual(low))
}

func (s *CourierRepositoryIntegrationTestSuite) TestClaimIfAvailable() {
	ctx := context.Background()
	c := s.newCourier("HUB-BUL", courier.PickupDriver, courier.Available, 4, 0)
	s.Require().NoError(s.repo.Add(ctx, c))

	claimed, err := s.repo.ClaimIfAvailable(ctx, c.ID())
	s.Require().NoError(err)
	s.True(claimed)

	again, err := s.repo.ClaimIfAvailable(ctx, c.ID())
	s.Require().NoError(err)
	s.False(again, "a busy courier cannot be claimed twice")

	stored, err := s.repo.Get(ctx, c.ID())
	s.Require().NoError(err)
	s.Equal(courier.Busy, stored.Status())
}

func (s *CourierRepositoryIntegrationTestSuite) TestClaimIfAvailable_UnknownCourier() {
	claimed, err := s.repo.ClaimIfAvailable(context.Background(), kernel.NewUUID())

	s.Require().NoError(err)
	s.False(claimed)
}

func (s *CourierRepositoryIntegrationTestSuite) TestClaimIfAvailable_ConcurrentClaimsHaveOneWinner() {
	ctx := context.Background()
	c := s.newCourier("HUB-BUL", courier.PickupDriver, courier.Available, 4, 0)
	s.Require().NoError(s.repo.Add(ctx, c))

	const workers = 8
	results := make(chan bool, workers)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			repo := courierrepo.NewGormCourierRepository(s.DB, s.tracker)
			claimed, err := repo.ClaimIfAvailable(ctx, c.ID())
			if err == nil {
				results <- claimed
			}
		}()
	}
	wg.Wait()
	close(results)

	winners := 0
	total := 0
	for claimed := range results {
		total++
		if claimed {
			winners++
		}
	}
	s.Equal(workers, total)
	s.Equal(1, winners)
}

func TestCourierRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CourierRepositoryIntegrationTestSuite))
}
