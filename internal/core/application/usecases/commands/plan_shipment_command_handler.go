package commands

import (
	"context"
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
)

var ErrBelowMinimumOrder = errors.New("order subtotal is below the minimum for this zone")

// PlanShipmentCommandHandler plans and stores a shipment.
//
// The active hubs are read once per command. An unresolved hub fails the command with
// an error wrapping services.ErrHubNotFound, which callers may show to the user as a
// request for a more specific address.
type PlanShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	engine     services.Engine
}

func NewPlanShipmentCommandHandler(uowFactory ShipmentUoWFactory, engine services.Engine) PlanShipmentCommandHandler {
	return PlanShipmentCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
	}
}

func (h *PlanShipmentCommandHandler) Handle(ctx context.Context, cmd PlanShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	hubs, err := uow.HubRepository().GetAllActive(ctx)
	if err != nil {
		return err
	}
	directory := h.engine.Directory(hubs)

	plan, err := h.engine.Planner.CalculateRoute(directory, services.RouteRequest{
		Pickup:   cmd.Pickup(),
		Delivery: cmd.Delivery(),
	})
	if err != nil {
		return err
	}

	quote := h.engine.QuoteFee(cmd.Pickup().Address(), cmd.Delivery().Address(), cmd.Subtotal())
	if !quote.MeetsMinimum {
		return fmt.Errorf("%w: %v < %v", ErrBelowMinimumOrder, cmd.Subtotal(), quote.MinimumOrder)
	}

	eta, err := h.engine.ETA.Estimate(plan.Tier(), nil)
	if err != nil {
		return err
	}

	details := shipment.Details{
		Zone:              quote.Zone,
		Quote:             quote,
		EstimatedDelivery: eta,
	}
	if plan.IsDirect() {
		local := directory.FindHubForLocation(cmd.Pickup().City, cmd.Pickup().Province)
		if local == nil {
			return fmt.Errorf("%w for direct pickup %q", services.ErrHubNotFound, cmd.Pickup().Address())
		}
		details.LocalHubCode = local.Code()
	}

	pickup, err := stopLocation(cmd.Pickup())
	if err != nil {
		return err
	}
	delivery, err := stopLocation(cmd.Delivery())
	if err != nil {
		return err
	}

	entity, err := shipment.NewShipment(cmd.ShipmentID(), pickup, delivery, cmd.Weight(), plan, details, h.engine.Now())
	if err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Add(ctx, entity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func stopLocation(stop services.Stop) (kernel.Location, error) {
	return kernel.NewLocation(stop.Address(), stop.City, stop.Province, stop.Coordinates)
}
