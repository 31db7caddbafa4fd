package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Preview a route without creating a shipment
	// (POST /api/v1/routes)
	PreviewRoute(ctx echo.Context) error
	// Quote the shipping fee for a seller and buyer location
	// (POST /api/v1/quotes)
	QuoteFee(ctx echo.Context) error
	// Estimate the delivery time for a tier
	// (POST /api/v1/estimates)
	EstimateDelivery(ctx echo.Context) error
	// List active hubs ordered by code
	// (GET /api/v1/hubs)
	GetHubs(ctx echo.Context) error
	// Register a hub
	// (POST /api/v1/hubs)
	CreateHub(ctx echo.Context) error
	// Rank the couriers at a hub that could take a leg
	// (GET /api/v1/hubs/{hubCode}/couriers)
	GetHubCouriers(ctx echo.Context, hubCode string, params GetHubCouriersParams) error
	// Register a courier at its home hub
	// (POST /api/v1/couriers)
	CreateCourier(ctx echo.Context) error
	// Plan and store a shipment
	// (POST /api/v1/shipments)
	CreateShipment(ctx echo.Context) error
	// Read a shipment and its legs
	// (GET /api/v1/shipments/{shipmentId})
	GetShipment(ctx echo.Context, shipmentID openapi_types.UUID) error
	// Assign the best available courier to a pending leg
	// (POST /api/v1/shipments/{shipmentId}/legs/{legNumber}/assignment)
	AssignLegCourier(ctx echo.Context, shipmentID openapi_types.UUID, legNumber int) error
	// Move a leg to in transit, completed or failed
	// (PUT /api/v1/shipments/{shipmentId}/legs/{legNumber}/status)
	UpdateLegStatus(ctx echo.Context, shipmentID openapi_types.UUID, legNumber int) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) PreviewRoute(ctx echo.Context) error {
	return w.Handler.PreviewRoute(ctx)
}

func (w *ServerInterfaceWrapper) QuoteFee(ctx echo.Context) error {
	return w.Handler.QuoteFee(ctx)
}

func (w *ServerInterfaceWrapper) EstimateDelivery(ctx echo.Context) error {
	return w.Handler.EstimateDelivery(ctx)
}

func (w *ServerInterfaceWrapper) GetHubs(ctx echo.Context) error {
	return w.Handler.GetHubs(ctx)
}

func (w *ServerInterfaceWrapper) CreateHub(ctx echo.Context) error {
	return w.Handler.CreateHub(ctx)
}

func (w *ServerInterfaceWrapper) GetHubCouriers(ctx echo.Context) error {
	var hubCode string
	err := runtime.BindStyledParameterWithOptions("simple", "hubCode", ctx.Param("hubCode"), &hubCode,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter hubCode: %s", err))
	}

	var params GetHubCouriersParams
	err = runtime.BindQueryParameter("form", true, true, "legType", ctx.QueryParams(), &params.LegType)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter legType: %s", err))
	}
	err = runtime.BindQueryParameter("form", true, true, "weight", ctx.QueryParams(), &params.Weight)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter weight: %s", err))
	}
	err = runtime.BindQueryParameter("form", true, false, "size", ctx.QueryParams(), &params.Size)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter size: %s", err))
	}

	return w.Handler.GetHubCouriers(ctx, hubCode, params)
}

func (w *ServerInterfaceWrapper) CreateCourier(ctx echo.Context) error {
	return w.Handler.CreateCourier(ctx)
}

func (w *ServerInterfaceWrapper) CreateShipment(ctx echo.Context) error {
	return w.Handler.CreateShipment(ctx)
}

func (w *ServerInterfaceWrapper) GetShipment(ctx echo.Context) error {
	shipmentID, err := bindShipmentID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetShipment(ctx, shipmentID)
}

func (w *ServerInterfaceWrapper) AssignLegCourier(ctx echo.Context) error {
	shipmentID, err := bindShipmentID(ctx)
	if err != nil {
		return err
	}
	legNumber, err := bindLegNumber(ctx)
	if err != nil {
		return err
	}
	return w.Handler.AssignLegCourier(ctx, shipmentID, legNumber)
}

func (w *ServerInterfaceWrapper) UpdateLegStatus(ctx echo.Context) error {
	shipmentID, err := bindShipmentID(ctx)
	if err != nil {
		return err
	}
	legNumber, err := bindLegNumber(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateLegStatus(ctx, shipmentID, legNumber)
}

func bindShipmentID(ctx echo.Context) (openapi_types.UUID, error) {
	var shipmentID openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "shipmentId", ctx.Param("shipmentId"), &shipmentID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return shipmentID, echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("Invalid format for parameter shipmentId: %s", err))
	}
	return shipmentID, nil
}

func bindLegNumber(ctx echo.Context) (int, error) {
	var legNumber int
	err := runtime.BindStyledParameterWithOptions("simple", "legNumber", ctx.Param("legNumber"), &legNumber,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("Invalid format for parameter legNumber: %s", err))
	}
	return legNumber, nil
}

// EchoRouter is the subset of echo.Echo and echo.Group the handlers register on.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the handlers under a common prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.POST(baseURL+"/api/v1/routes", wrapper.PreviewRoute)
	router.POST(baseURL+"/api/v1/quotes", wrapper.QuoteFee)
	router.POST(baseURL+"/api/v1/estimates", wrapper.EstimateDelivery)
	router.GET(baseURL+"/api/v1/hubs", wrapper.GetHubs)
	router.POST(baseURL+"/api/v1/hubs", wrapper.CreateHub)
	router.GET(baseURL+"/api/v1/hubs/:hubCode/couriers", wrapper.GetHubCouriers)
	router.POST(baseURL+"/api/v1/couriers", wrapper.CreateCourier)
	router.POST(baseURL+"/api/v1/shipments", wrapper.CreateShipment)
	router.GET(baseURL+"/api/v1/shipments/:shipmentId", wrapper.GetShipment)
	router.POST(baseURL+"/api/v1/shipments/:shipmentId/legs/:legNumber/assignment", wrapper.AssignLegCourier)
	router.PUT(baseURL+"/api/v1/shipments/:shipmentId/legs/:legNumber/status", wrapper.UpdateLegStatus)
}
