package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
)

// AssignLegCourierCommandHandler assigns a courier to a specific leg.
//
// Example:
//
//	cmd, _ := NewAssignLegCourierCommand(shipmentID, 2)
//	courierID, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrNoDriverAvailable):
//	    // retry later or escalate to manual assignment
//	case err != nil:
//	    return err
//	}
type AssignLegCourierCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.CourierDispatcher
}

func NewAssignLegCourierCommandHandler(
	uowFactory UoWFactory,
	dispatcher services.CourierDispatcher,
) AssignLegCourierCommandHandler {
	return AssignLegCourierCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle returns the id of the courier bound to the leg.
func (h *AssignLegCourierCommandHandler) Handle(ctx context.Context, cmd AssignLegCourierCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	entity, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return kernel.UUID{}, err
	}

	leg, err := entity.Leg(cmd.LegNumber())
	if err != nil {
		return kernel.UUID{}, err
	}

	courierID, err := assignLeg(ctx, uow, h.dispatcher, entity, leg)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return courierID, nil
}
