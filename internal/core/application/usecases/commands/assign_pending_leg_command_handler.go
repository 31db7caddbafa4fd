package commands

import (
	"context"
	"errors"
	"fmt"

	"logistics/internal/core/domain/services"
)

var ErrNoPendingLegFound = errors.New("no pending leg found")

// ReadyLegBatchSize is the page size used to walk shipments with a ready leg.
const ReadyLegBatchSize = 20

// AssignPendingLegCommandHandler staffs one ready leg per call. Shipments are walked
// oldest first; a leg no courier can take right now is skipped, so it never holds up
// shipments behind it. Only leg 1, or a leg whose predecessor is already moving, is
// considered ready.
//
// Example:
//
//	err := handler.Handle(ctx, NewAssignPendingLegCommand())
//	switch {
//	case errors.Is(err, ErrNoPendingLegFound):
//	    log.Println("Nothing to assign")
//	case errors.Is(err, services.ErrNoDriverAvailable):
//	    log.Println("Every ready leg is waiting for a courier")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	}
type AssignPendingLegCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.CourierDispatcher
}

func NewAssignPendingLegCommandHandler(
	uowFactory UoWFactory,
	dispatcher services.CourierDispatcher,
) AssignPendingLegCommandHandler {
	return AssignPendingLegCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

func (h AssignPendingLegCommandHandler) Handle(ctx context.Context, command AssignPendingLegCommand) error {
	if err := command.Validate(); err != nil {
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

	var (
		skipped      int
		lastNoDriver error
	)
	for offset := 0; ; offset += ReadyLegBatchSize {
		batch, err := shipmentRepo.ListWithReadyLeg(ctx, offset, ReadyLegBatchSize)
		if err != nil {
			return err
		}

		for _, entity := range batch {
			leg := entity.ReadyLeg()
			if leg == nil {
				continue
			}

			_, err = assignLeg(ctx, uow, h.dispatcher, entity, leg)
			if errors.Is(err, services.ErrNoDriverAvailable) {
				skipped++
				lastNoDriver = err
				continue
			}
			if err != nil {
				return err
			}

			return uow.Commit(ctx)
		}

		if len(batch) < ReadyLegBatchSize {
			break
		}
	}

	if skipped > 0 {
		return fmt.Errorf("%d ready legs without a courier, last: %w", skipped, lastNoDriver)
	}
	return ErrNoPendingLegFound
}
