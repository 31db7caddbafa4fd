package commands

import (
	"context"

	"logistics/internal/core/domain/model/route"
)

// UpdateLegStatusCommandHandler applies a leg status change. Completing a leg counts a
// job for its courier and frees them; failing a leg frees the courier without counting.
type UpdateLegStatusCommandHandler struct {
	uowFactory UoWFactory
}

func NewUpdateLegStatusCommandHandler(uowFactory UoWFactory) UpdateLegStatusCommandHandler {
	return UpdateLegStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UpdateLegStatusCommandHandler) Handle(ctx context.Context, cmd UpdateLegStatusCommand) error {
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

	shipmentRepo := uow.ShipmentRepository()
	courierRepo := uow.CourierRepository()

	entity, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = entity.UpdateLegStatus(cmd.LegNumber(), cmd.Status()); err != nil {
		return err
	}

	if cmd.Status().IsFinal() {
		leg, legErr := entity.Leg(cmd.LegNumber())
		if legErr != nil {
			return legErr
		}

		if courierID := leg.CourierID(); courierID != nil {
			assigned, getErr := courierRepo.Get(ctx, *courierID)
			if getErr != nil {
				return getErr
			}

			if cmd.Status() == route.Completed {
				err = assigned.CompleteJob()
			} else {
				err = assigned.Release()
			}
			if err != nil {
				return err
			}

			if err = courierRepo.Update(ctx, assigned); err != nil {
				return err
			}
		}
	}

	if err = shipmentRepo.Update(ctx, entity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
