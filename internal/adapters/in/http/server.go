package http

import (
	"log/slog"
	"net/http"
	"strings"

	"logistics/internal/adapters/in/http/api"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/zone"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Commands groups the command handlers the server dispatches to.
type Commands struct {
	CreateHub        commands.CreateHubCommandHandler
	CreateCourier    commands.CreateCourierCommandHandler
	PlanShipment     commands.PlanShipmentCommandHandler
	AssignLegCourier commands.AssignLegCourierCommandHandler
	UpdateLegStatus  commands.UpdateLegStatusCommandHandler
}

// Queries groups the query handlers the server reads through.
type Queries struct {
	PreviewRoute         queries.PreviewRouteQueryHandler
	QuoteFee             queries.QuoteFeeQueryHandler
	EstimateDelivery     queries.EstimateDeliveryQueryHandler
	GetActiveHubs        queries.GetActiveHubsQueryHandler
	GetAvailableCouriers queries.GetAvailableCouriersQueryHandler
	GetShipmentRoute     queries.GetShipmentRouteQueryHandler
}

// Server implements api.ServerInterface.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	commands Commands
	queries  Queries
	logger   *slog.Logger
}

func NewServer(cmds Commands, qrs Queries, logger *slog.Logger) *Server {
	return &Server{
		commands: cmds,
		queries:  qrs,
		logger:   logger.With("component", "http_server"),
	}
}

// PreviewRoute handles POST /api/v1/routes.
func (s *Server) PreviewRoute(ctx echo.Context) error {
	var body api.RouteRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	pickup, err := stopFromAPI(body.Pickup)
	if err != nil {
		return s.fail(ctx, err, "Invalid pickup")
	}
	delivery, err := stopFromAPI(body.Delivery)
	if err != nil {
		return s.fail(ctx, err, "Invalid delivery")
	}

	query, err := queries.NewPreviewRouteQuery(pickup, delivery)
	if err != nil {
		return s.fail(ctx, err, "Invalid route request")
	}

	plan, err := s.queries.PreviewRoute.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to plan route")
	}

	return ctx.JSON(http.StatusOK, planToAPI(plan))
}

// QuoteFee handles POST /api/v1/quotes.
func (s *Server) QuoteFee(ctx echo.Context) error {
	var body api.QuoteRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	query, err := queries.NewQuoteFeeQuery(body.SellerLocation, body.BuyerLocation, body.Subtotal)
	if err != nil {
		return s.fail(ctx, err, "Invalid quote request")
	}

	quote, err := s.queries.QuoteFee.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to quote fee")
	}

	return ctx.JSON(http.StatusOK, api.Quote{
		Fee:           quote.Fee,
		MinimumOrder:  quote.MinimumOrder,
		MeetsMinimum:  quote.MeetsMinimum,
		EstimatedDays: quote.EstimatedDays,
		Zone:          quote.Zone.String(),
		ZoneName:      quote.ZoneName,
		Tier:          api.DeliveryTier(quote.Tier.String()),
	})
}

// EstimateDelivery handles POST /api/v1/estimates.
func (s *Server) EstimateDelivery(ctx echo.Context) error {
	var body api.EstimateRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	tier, err := zone.ParseDeliveryTier(string(body.Tier))
	if err != nil {
		return s.fail(ctx, err, "Invalid tier")
	}

	query, err := queries.NewEstimateDeliveryQuery(tier, body.Start)
	if err != nil {
		return s.fail(ctx, err, "Invalid estimate request")
	}

	estimate, err := s.queries.EstimateDelivery.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to estimate delivery")
	}

	return ctx.JSON(http.StatusOK, api.Estimate{
		Tier:              api.DeliveryTier(estimate.Tier.String()),
		EstimatedDelivery: estimate.EstimatedDelivery,
	})
}

// GetHubs handles GET /api/v1/hubs.
func (s *Server) GetHubs(ctx echo.Context) error {
	hubs, err := s.queries.GetActiveHubs.Handle(ctx.Request().Context(), queries.NewGetActiveHubsQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve hubs")
	}

	response := make([]api.Hub, len(hubs))
	for i, h := range hubs {
		response[i] = api.Hub{
			Code:             h.Code,
			Name:             h.Name,
			Address:          locationToAPI(h.Address),
			CoverageKeywords: h.CoverageKeywords,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateHub handles POST /api/v1/hubs.
func (s *Server) CreateHub(ctx echo.Context) error {
	var body api.NewHub
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	address, err := locationFromAPI(body.Address)
	if err != nil {
		return s.fail(ctx, err, "Invalid hub address")
	}

	cmd, err := commands.NewCreateHubCommand(body.Code, body.Name, address, body.CoverageKeywords)
	if err != nil {
		return s.fail(ctx, err, "Invalid hub data")
	}

	if err = s.commands.CreateHub.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to create hub")
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetHubCouriers handles GET /api/v1/hubs/{hubCode}/couriers.
func (s *Server) GetHubCouriers(ctx echo.Context, hubCode string, params api.GetHubCouriersParams) error {
	legType, err := route.ParseLegType(string(params.LegType))
	if err != nil {
		return s.fail(ctx, err, "Invalid leg type")
	}

	size := courier.PackageSizeUnknown
	if params.Size != nil {
		if size, err = courier.ParsePackageSize(string(*params.Size)); err != nil {
			return s.fail(ctx, err, "Invalid package size")
		}
	}

	query, err := queries.NewGetAvailableCouriersQuery(hubCode, legType, size, params.Weight)
	if err != nil {
		return s.fail(ctx, err, "Invalid courier search")
	}

	candidates, err := s.queries.GetAvailableCouriers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve couriers")
	}

	response := make([]api.CourierCandidate, len(candidates))
	for i, c := range candidates {
		response[i] = api.CourierCandidate{
			Id:             c.ID.Bytes(),
			Name:           c.Name,
			DriverType:     api.DriverType(c.DriverType.String()),
			VehicleType:    api.VehicleType(c.VehicleType.String()),
			MaxWeight:      c.MaxWeight,
			Rating:         c.Rating,
			CompletedCount: c.CompletedCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCourier handles POST /api/v1/couriers.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var body api.NewCourier
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverType, err := courier.ParseDriverType(string(body.DriverType))
	if err != nil {
		return s.fail(ctx, err, "Invalid driver type")
	}
	vehicleType, err := courier.ParseVehicleType(string(body.VehicleType))
	if err != nil {
		return s.fail(ctx, err, "Invalid vehicle type")
	}
	vehicle, err := courier.NewVehicle(vehicleType, body.MaxWeight)
	if err != nil {
		return s.fail(ctx, err, "Invalid vehicle")
	}

	rating := courier.MinRating
	if body.Rating != nil {
		rating = *body.Rating
	}

	cmd, err := commands.NewCreateCourierCommand(body.Name, body.HomeHubCode, driverType, vehicle, rating)
	if err != nil {
		return s.fail(ctx, err, "Invalid courier data")
	}

	if err = s.commands.CreateCourier.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to create courier")
	}

	return ctx.JSON(http.StatusCreated, api.Created{Id: cmd.CourierID().Bytes()})
}

// CreateShipment handles POST /api/v1/shipments. The stored shipment is read back
// through the shipment route query.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var body api.NewShipment
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	pickup, err := stopFromAPI(body.Pickup)
	if err != nil {
		return s.fail(ctx, err, "Invalid pickup")
	}
	delivery, err := stopFromAPI(body.Delivery)
	if err != nil {
		return s.fail(ctx, err, "Invalid delivery")
	}

	var subtotal float64
	if body.Subtotal != nil {
		subtotal = *body.Subtotal
	}

	cmd, err := commands.NewPlanShipmentCommand(pickup, delivery, body.Weight, subtotal)
	if err != nil {
		return s.fail(ctx, err, "Invalid shipment data")
	}

	if err = s.commands.PlanShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to plan shipment")
	}

	return s.writeShipment(ctx, cmd.ShipmentID(), http.StatusCreated)
}

// GetShipment handles GET /api/v1/shipments/{shipmentId}.
func (s *Server) GetShipment(ctx echo.Context, shipmentID openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(shipmentID[:])
	if err != nil {
		return s.fail(ctx, err, "Invalid shipment id")
	}
	return s.writeShipment(ctx, id, http.StatusOK)
}

// AssignLegCourier handles POST /api/v1/shipments/{shipmentId}/legs/{legNumber}/assignment.
func (s *Server) AssignLegCourier(ctx echo.Context, shipmentID openapi_types.UUID, legNumber int) error {
	id, err := kernel.UUIDFromBytes(shipmentID[:])
	if err != nil {
		return s.fail(ctx, err, "Invalid shipment id")
	}

	cmd, err := commands.NewAssignLegCourierCommand(id, legNumber)
	if err != nil {
		return s.fail(ctx, err, "Invalid assignment request")
	}

	courierID, err := s.commands.AssignLegCourier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to assign courier")
	}

	return ctx.JSON(http.StatusOK, api.LegAssignment{CourierId: courierID.Bytes()})
}

// UpdateLegStatus handles PUT /api/v1/shipments/{shipmentId}/legs/{legNumber}/status.
func (s *Server) UpdateLegStatus(ctx echo.Context, shipmentID openapi_types.UUID, legNumber int) error {
	var body api.LegStatusUpdate
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(shipmentID[:])
	if err != nil {
		return s.fail(ctx, err, "Invalid shipment id")
	}
	status, err := route.ParseLegStatus(strings.TrimSpace(string(body.Status)))
	if err != nil {
		return s.fail(ctx, err, "Invalid leg status")
	}

	cmd, err := commands.NewUpdateLegStatusCommand(id, legNumber, status)
	if err != nil {
		return s.fail(ctx, err, "Invalid status update")
	}

	if err = s.commands.UpdateLegStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to update leg status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) writeShipment(ctx echo.Context, id kernel.UUID, status int) error {
	query, err := queries.NewGetShipmentRouteQuery(id)
	if err != nil {
		return s.fail(ctx, err, "Invalid shipment id")
	}

	shipment, err := s.queries.GetShipmentRoute.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve shipment")
	}

	return ctx.JSON(status, shipmentToAPI(shipment))
}
