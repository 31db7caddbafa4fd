package commands_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/hub"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations for testing.
type MockCourierRepository struct {
	mock.Mock
}

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*courier.Courier)
	return c, args.Error(1)
}

func (m *MockCourierRepository) GetAvailableAtHub(ctx context.Context, hubCode string) ([]*courier.Courier, error) {
	args := m.Called(ctx, hubCode)
	couriers, _ := args.Get(0).([]*courier.Courier)
	return couriers, args.Error(1)
}

func (m *MockCourierRepository) ClaimIfAvailable(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockHubRepository struct {
	mock.Mock
}

func (m *MockHubRepository) Add(ctx context.Context, h *hub.Hub) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockHubRepository) Update(ctx context.Context, h *hub.Hub) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockHubRepository) Get(ctx context.Context, code string) (*hub.Hub, error) {
	args := m.Called(ctx, code)
	h, _ := args.Get(0).(*hub.Hub)
	return h, args.Error(1)
}

func (m *MockHubRepository) GetAllActive(ctx context.Context) ([]*hub.Hub, error) {
	args := m.Called(ctx)
	hubs, _ := args.Get(0).([]*hub.Hub)
	return hubs, args.Error(1)
}

type MockShipmentRepository struct {
	mock.Mock
}

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*shipment.Shipment)
	return s, args.Error(1)
}

func (m *MockShipmentRepository) ListWithReadyLeg(
	ctx context.Context,
	offset, limit int,
) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, offset, limit)
	s, _ := args.Get(0).([]*shipment.Shipment)
	return s, args.Error(1)
}

// MockUoW satisfies every unit of work interface the handlers consume.
type MockUoW struct {
	mock.Mock
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

func (m *MockUoW) HubRepository() ports.HubRepository {
	args := m.Called()
	return args.Get(0).(ports.HubRepository)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

type MockHubUoWFactory struct {
	mock.Mock
}

func (m *MockHubUoWFactory) Create() commands.HubUoW {
	args := m.Called()
	return args.Get(0).(commands.HubUoW)
}

type MockCourierUoWFactory struct {
	mock.Mock
}

func (m *MockCourierUoWFactory) Create() commands.CourierUoW {
	args := m.Called()
	return args.Get(0).(commands.CourierUoW)
}

type MockShipmentUoWFactory struct {
	mock.Mock
}

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockUoWFactory struct {
	mock.Mock
}

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

var fixedNow = time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

func testEngine() services.Engine {
	tables := services.DefaultTables()
	tables.Now = func() time.Time { return fixedNow }
	return services.NewEngine(tables)
}

func stop(city, province string) services.Stop {
	return services.Stop{City: city, Province: province}
}

// plannedShipment plans a shipment between two stops against the default hub network.
func plannedShipment(t *testing.T, pickup, delivery services.Stop, weight float64) *shipment.Shipment {
	t.Helper()
	engine := testEngine()
	directory := engine.Directory(hub.DefaultHubs())

	plan, err := engine.Planner.CalculateRoute(directory, services.RouteRequest{Pickup: pickup, Delivery: delivery})
	require.NoError(t, err)

	pickupLocation, err := kernel.NewLocation(pickup.Address(), pickup.City, pickup.Province, nil)
	require.NoError(t, err)
	deliveryLocation, err := kernel.NewLocation(delivery.Address(), delivery.City, delivery.Province, nil)
	require.NoError(t, err)

	quote := engine.QuoteFee(pickup.Address(), delivery.Address(), 1000)
	eta, err := engine.ETA.Estimate(plan.Tier(), nil)
	require.NoError(t, err)

	details := shipment.Details{Zone: quote.Zone, Quote: quote, EstimatedDelivery: eta}
	if plan.IsDirect() {
		details.LocalHubCode = directory.FindHubForLocation(pickup.City, pickup.Province).Code()
	}

	s, err := shipment.NewShipment(kernel.NewUUID(), pickupLocation, deliveryLocation, weight, plan, details, fixedNow)
	require.NoError(t, err)
	return s
}

// hubToHubShipment is a 12 kg parcel from Angeles to Cebu City: pickup at HUB-PAM,
// line haul to HUB-CEB, delivery from HUB-CEB.
func hubToHubShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	return plannedShipment(t, stop("Angeles", "Pampanga"), stop("Cebu City", "Cebu"), 12)
}

func testCourier(
	t *testing.T,
	hubCode string,
	driverType courier.DriverType,
	status courier.Status,
	rating float64,
) *courier.Courier {
	t.Helper()
	vehicle, err := courier.NewVehicle(courier.Van, 500)
	require.NoError(t, err)
	c, err := courier.RestoreCourier(kernel.NewUUID(), "Courier", hubCode, driverType, vehicle, status, rating, 0, true)
	require.NoError(t, err)
	return c
}
