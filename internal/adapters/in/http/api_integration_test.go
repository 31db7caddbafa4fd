package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"logistics/cmd"
	"logistics/internal/adapters/in/http/api"
	postgres_adapter "logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/pgtest"
	"logistics/internal/core/domain/model/hub"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// APIIntegrationTestSuite drives the full HTTP surface against PostgreSQL through the
// same composition root the application uses.
type APIIntegrationTestSuite struct {
	pgtest.Suite
	root cmd.CompositionRoot
	e    *echo.Echo
}

func (suite *APIIntegrationTestSuite) SetupSuite() {
	suite.Suite.SetupSuite()
	suite.Require().NoError(postgres_adapter.Migrate(suite.DB))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.root = cmd.NewCompositionRoot(cmd.Config{}, suite.DB, logger)

	e, err := suite.root.CreateRouter()
	suite.Require().NoError(err)
	suite.e = e
}

func (suite *APIIntegrationTestSuite) SetupTest() {
	suite.Truncate("shipment_legs", "shipments", "couriers", "hubs")

	created, err := suite.root.SeedHubs(context.Background())
	suite.Require().NoError(err)
	suite.Require().Equal(len(hub.DefaultHubs()), created)
}

func (suite *APIIntegrationTestSuite) call(method, target, body string, want int, out any) {
	rec := do(suite.e, method, target, body)
	suite.Require().Equal(want, rec.Code, rec.Body.String())
	if out != nil {
		suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
	}
}

func (suite *APIIntegrationTestSuite) createCourier(body string) api.Created {
	var created api.Created
	suite.call(http.MethodPost, "/api/v1/couriers", body, http.StatusCreated, &created)
	return created
}

func (suite *APIIntegrationTestSuite) createShipment() api.Shipment {
	var shipment api.Shipment
	suite.call(http.MethodPost, "/api/v1/shipments",
		`{"pickup":{"city":"Angeles","province":"Pampanga"},`+
			`"delivery":{"city":"Cebu City","province":"Cebu"},"weight":3}`,
		http.StatusCreated, &shipment)
	return shipment
}

func (suite *APIIntegrationTestSuite) Test_SeedingIsIdempotent() {
	created, err := suite.root.SeedHubs(context.Background())

	suite.Require().NoError(err)
	suite.Equal(0, created)

	var hubs []api.Hub
	suite.call(http.MethodGet, "/api/v1/hubs", "", http.StatusOK, &hubs)
	suite.Len(hubs, len(hub.DefaultHubs()))
}

func (suite *APIIntegrationTestSuite) Test_CreateHub() {
	suite.call(http.MethodPost, "/api/v1/hubs",
		`{"code":"hub-bag","name":"Baguio Hub","address":{"city":"Baguio","province":"Benguet"},`+
			`"coverageKeywords":["baguio","benguet"]}`,
		http.StatusCreated, nil)

	var hubs []api.Hub
	suite.call(http.MethodGet, "/api/v1/hubs", "", http.StatusOK, &hubs)
	suite.Len(hubs, len(hub.DefaultHubs())+1)

	suite.call(http.MethodPost, "/api/v1/hubs",
		`{"code":"HUB-BAG","name":"Baguio Hub","address":{"city":"Baguio"}}`,
		http.StatusConflict, nil)
}

func (suite *APIIntegrationTestSuite) Test_CreateCourierForUnknownHub() {
	var problem api.Error
	suite.call(http.MethodPost, "/api/v1/couriers",
		`{"name":"Ana","homeHubCode":"HUB-NOPE","driverType":"pickup","vehicleType":"van","maxWeight":50}`,
		http.StatusNotFound, &problem)

	suite.Equal(http.StatusNotFound, problem.Code)
}

func (suite *APIIntegrationTestSuite) Test_PreviewRoute() {
	var plan api.RoutePlan
	suite.call(http.MethodPost, "/api/v1/routes",
		`{"pickup":{"city":"Angeles","province":"Pampanga"},"delivery":{"city":"Cebu City","province":"Cebu"}}`,
		http.StatusOK, &plan)

	suite.True(plan.Success)
	suite.Equal(api.DeliveryTierHubToHub, plan.Tier)
	suite.False(plan.IsDirect)
	suite.Equal("HUB-PAM", plan.OriginHub)
	suite.Equal("HUB-CEB", plan.DestinationHub)
	suite.Require().Len(plan.Legs, 3)
	suite.Equal(api.LegTypeLineHaul, plan.Legs[1].Type)
}

func (suite *APIIntegrationTestSuite) Test_ShipmentLifecycle() {
	ana := suite.createCourier(
		`{"name":"Ana","homeHubCode":"HUB-PAM","driverType":"pickup","vehicleType":"van","maxWeight":50,"rating":4.8}`)

	shipment := suite.createShipment()
	suite.Equal("planned", shipment.Status)
	suite.Equal("HUB-PAM", shipment.OriginHub)
	suite.Equal("HUB-CEB", shipment.DestinationHub)
	suite.Require().Len(shipment.Legs, 3)
	for _, leg := range shipment.Legs {
		suite.Equal(api.LegStatusPending, leg.Status)
		suite.Nil(leg.CourierId)
	}

	var candidates []api.CourierCandidate
	suite.call(http.MethodGet, "/api/v1/hubs/HUB-PAM/couriers?legType=pickup&weight=3", "",
		http.StatusOK, &candidates)
	suite.Require().Len(candidates, 1)
	suite.Equal(ana.Id, candidates[0].Id)

	base := "/api/v1/shipments/" + shipment.Id.String()

	var assignment api.LegAssignment
	suite.call(http.MethodPost, base+"/legs/1/assignment", "", http.StatusOK, &assignment)
	suite.Equal(ana.Id, assignment.CourierId)

	var stored api.Shipment
	suite.call(http.MethodGet, base, "", http.StatusOK, &stored)
	suite.Equal("in_progress", stored.Status)
	suite.Equal(api.LegStatusAssigned, stored.Legs[0].Status)
	suite.Require().NotNil(stored.Legs[0].CourierId)
	suite.Equal(ana.Id, *stored.Legs[0].CourierId)

	suite.call(http.MethodGet, "/api/v1/hubs/HUB-PAM/couriers?legType=pickup&weight=3", "",
		http.StatusOK, &candidates)
	suite.Empty(candidates)

	suite.call(http.MethodPost, base+"/legs/1/assignment", "", http.StatusConflict, nil)
	suite.call(http.MethodPost, base+"/legs/2/assignment", "", http.StatusConflict, nil)
	suite.call(http.MethodPost, base+"/legs/9/assignment", "", http.StatusNotFound, nil)

	suite.call(http.MethodPut, base+"/legs/1/status", `{"status":"in_transit"}`, http.StatusNoContent, nil)
	suite.call(http.MethodPut, base+"/legs/1/status", `{"status":"completed"}`, http.StatusNoContent, nil)

	suite.call(http.MethodGet, base, "", http.StatusOK, &stored)
	suite.Equal(api.LegStatusCompleted, stored.Legs[0].Status)
	suite.Equal(api.LegStatusPending, stored.Legs[1].Status)

	suite.call(http.MethodGet, "/api/v1/hubs/HUB-PAM/couriers?legType=pickup&weight=3", "",
		http.StatusOK, &candidates)
	suite.Require().Len(candidates, 1)
	suite.Equal(1, candidates[0].CompletedCount)
}

func (suite *APIIntegrationTestSuite) Test_GetUnknownShipment() {
	var problem api.Error
	suite.call(http.MethodGet, "/api/v1/shipments/3f1c7c3e-8a52-4c55-9f39-2d0e8d1d7a10", "",
		http.StatusNotFound, &problem)

	suite.Contains(problem.Message, "Failed to retrieve shipment")
}

func TestAPIIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(APIIntegrationTestSuite))
}
