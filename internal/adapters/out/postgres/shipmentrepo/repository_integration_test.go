package shipmentrepo_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/pgtest"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/core/domain/model/hub"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/zone"
	"logistics/internal/core/domain/services"
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

type ShipmentRepositoryIntegrationTestSuite struct {
	pgtest.Suite
	repo    *shipmentrepo.GormShipmentRepository
	tracker *MockAggregateTracker
	engine  services.Engine
}

func (s *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
	s.Suite.SetupSuite()
	s.Require().NoError(postgres.Migrate(s.DB))
	s.engine = services.NewEngine(services.DefaultTables())
}

func (s *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	s.Truncate("shipment_legs", "shipments")
	s.tracker = new(MockAggregateTracker)
	s.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	s.repo = shipmentrepo.NewGormShipmentRepository(s.DB, s.tracker)
}

func (s *ShipmentRepositoryIntegrationTestSuite) plan(pickup, delivery services.Stop, createdAt time.Time) *shipment.Shipment {
	directory := s.engine.Directory(hub.DefaultHubs())
	plan, err := s.engine.Planner.CalculateRoute(directory, services.RouteRequest{Pickup: pickup, Delivery: delivery})
	s.Require().NoError(err)

	pickupLocation, err := kernel.NewLocation(pickup.Name, pickup.City, pickup.Province, pickup.Coordinates)
	s.Require().NoError(err)
	deliveryLocation, err := kernel.NewLocation(delivery.Name, delivery.City, delivery.Province, delivery.Coordinates)
	s.Require().NoError(err)

	quote := s.engine.QuoteFee(pickup.Address(), delivery.Address(), 1200)
	eta, err := s.engine.ETA.Estimate(plan.Tier(), &createdAt)
	s.Require().NoError(err)

	details := shipment.Details{Zone: quote.Zone, Quote: quote, EstimatedDelivery: eta}
	if plan.IsDirect() {
		details.LocalHubCode = directory.FindHubForLocation(pickup.City, pickup.Province).Code()
	}

	entity, err := shipment.NewShipment(kernel.NewUUID(), pickupLocation, deliveryLocation, 12, plan, details, createdAt)
	s.Require().NoError(err)
	return entity
}

func (s *ShipmentRepositoryIntegrationTestSuite) hubToHub(createdAt time.Time) *shipment.Shipment {
	point, err := kernel.NewGeoPoint(15.145, 120.5887)
	s.Require().NoError(err)
	return s.plan(
		services.Stop{Name: "Angeles Warehouse", City: "Angeles", Province: "Pampanga", Coordinates: &point},
		services.Stop{City: "Cebu City", Province: "Cebu"},
		createdAt,
	)
}

func (s *ShipmentRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	createdAt := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	entity := s.hubToHub(createdAt)

	s.Require().NoError(s.repo.Add(ctx, entity))

	got, err := s.repo.Get(ctx, entity.ID())
	s.Require().NoError(err)
	s.True(got.IsEqual(entity))
	s.True(got.Pickup().IsEqual(entity.Pickup()))
	s.True(got.Delivery().IsEqual(entity.Delivery()))
	s.Equal(zone.HubToHub, got.Tier())
	s.Equal(entity.Zone(), got.Zone())
	s.InDelta(entity.Quote().Fee, got.Quote().Fee, 0.001)
	s.Equal(entity.Quote().ZoneName, got.Quote().ZoneName)
	s.True(entity.EstimatedDelivery().Equal(got.EstimatedDelivery()))
	s.True(createdAt.Equal(got.CreatedAt()))
	s.Equal("HUB-PAM", got.OriginHubCode())
	s.Equal("HUB-CEB", got.DestinationHubCode())
	s.Equal(shipment.Planned, got.Status())

	want := entity.Legs()
	legs := got.Legs()
	s.Require().Len(legs, len(want))
	for i := range legs {
		s.Equal(want[i].Number(), legs[i].Number())
		s.Equal(want[i].Type(), legs[i].Type())
		s.True(want[i].From().IsEqual(legs[i].From()))
		s.True(want[i].To().IsEqual(legs[i].To()))
	}
	s.True(legs[1].From().IsHub())
}

func (s *ShipmentRepositoryIntegrationTestSuite) TestDirectShipmentKeepsLocalHub() {
	ctx := context.Background()
	entity := s.plan(
		services.Stop{City: "Malolos", Province: "Bulacan"},
		services.Stop{City: "Malolos", Province: "Bulacan"},
		time.Now().UTC(),
	)
	s.Require().NoError(s.repo.Add(ctx, entity))

	got, err := s.repo.Get(ctx, entity.ID())

	s.Require().NoError(err)
	s.Equal(zone.Direct, got.Tier())
	s.Equal("HUB-BUL", got.LocalHubCode())
	s.Empty(got.OriginHubCode())
}

func (s *ShipmentRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := s.repo.Get(context.Background(), kernel.NewUUID())

	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *ShipmentRepositoryIntegrationTestSuite) TestUpdate_PersistsLegProgress() {
	ctx := context.Background()
	entity := s.hubToHub(time.Now().UTC())
	s.Require().NoError(s.repo.Add(ctx, entity))

	courierID := kernel.NewUUID()
	s.Require().NoError(entity.AssignLeg(1, courierID))
	s.Require().NoError(entity.UpdateLegStatus(1, route.InTransit))
	s.Require().NoError(s.repo.Update(ctx, entity))

	got, err := s.repo.Get(ctx, entity.ID())
	s.Require().NoError(err)
	s.Equal(shipment.InProgress, got.Status())

	first, err := got.Leg(1)
	s.Require().NoError(err)
	s.Equal(route.InTransit, first.Status())
	s.Require().NotNil(first.CourierID())
	s.True(courierID.IsEqual(*first.CourierID()))

	second, err := got.Leg(2)
	s.Require().NoError(err)
	s.Equal(route.Pending, second.Status())
	s.Nil(second.CourierID())
}

func (s *ShipmentRepositoryIntegrationTestSuite) TestUpdate_MissingShipment() {
	entity := s.hubToHub(time.Now().UTC())

	err := s.repo.Update(context.Background(), entity)

	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *ShipmentRepositoryIntegrationTestSuite) TestListWithReadyLeg_OnlyReadyOldestFirst() {
	ctx := context.Background()
	base := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	failed := s.hubToHub(base)
	s.Require().NoError(failed.AssignLeg(1, kernel.NewUUID()))
	s.Require().NoError(failed.UpdateLegStatus(1, route.Failed))

	waiting := s.hubToHub(base.Add(time.Hour))
	s.Require().NoError(waiting.AssignLeg(1, kernel.NewUUID()))

	moving := s.hubToHub(base.Add(2 * time.Hour))
	s.Require().NoError(moving.AssignLeg(1, kernel.NewUUID()))
	s.Require().NoError(moving.UpdateLegStatus(1, route.InTransit))

	fresh := s.hubToHub(base.Add(3 * time.Hour))

	for _, e := range []*shipment.Shipment{fresh, failed, moving, waiting} {
		s.Require().NoError(s.repo.Add(ctx, e))
	}

	got, err := s.repo.ListWithReadyLeg(ctx, 0, 10)

	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.True(got[0].IsEqual(moving))
	s.Equal(2, got[0].ReadyLeg().Number())
	s.True(got[1].IsEqual(fresh))
	s.Equal(1, got[1].ReadyLeg().Number())
}

func (s *ShipmentRepositoryIntegrationTestSuite) TestListWithReadyLeg_Pages() {
	ctx := context.Background()
	base := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	shipments := make([]*shipment.Shipment, 3)
	for i := range shipments {
		shipments[i] = s.hubToHub(base.Add(time.Duration(i) * time.Hour))
		s.Require().NoError(s.repo.Add(ctx, shipments[i]))
	}

	first, err := s.repo.ListWithReadyLeg(ctx, 0, 2)
	s.Require().NoError(err)
	second, err := s.repo.ListWithReadyLeg(ctx, 2, 2)
	s.Require().NoError(err)

	s.Require().Len(first, 2)
	s.Require().Len(second, 1)
	s.True(first[0].IsEqual(shipments[0]))
	s.True(first[1].IsEqual(shipments[1]))
	s.True(second[0].IsEqual(shipments[2]))
}

func (s *ShipmentRepositoryIntegrationTestSuite) TestListWithReadyLeg_NoneLeft() {
	got, err := s.repo.ListWithReadyLeg(context.Background(), 0, 10)

	s.Require().NoError(err)
	s.Empty(got)
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}
