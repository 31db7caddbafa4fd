package commands

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrUpdateLegStatusCommandIsNotConstructed = errors.New(
	"UpdateLegStatusCommand must be created via NewUpdateLegStatusCommand constructor",
)

// UpdateLegStatusCommand reports progress on a leg: in_transit, completed or failed.
type UpdateLegStatusCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	legNumber  int
	status     route.LegStatus

	guard guard.ConstructorGuard
}

func NewUpdateLegStatusCommand(shipmentID kernel.UUID, legNumber int, status route.LegStatus) (UpdateLegStatusCommand, error) {
	command := UpdateLegStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipmentID(shipmentID),
		command.setLegNumber(legNumber),
		command.setStatus(status),
	); err != nil {
		return UpdateLegStatusCommand{}, err
	}

	return command, nil
}

func (c UpdateLegStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLegStatusCommandIsNotConstructed)
}

func (c UpdateLegStatusCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c UpdateLegStatusCommand) LegNumber() int {
	return c.legNumber
}

func (c UpdateLegStatusCommand) Status() route.LegStatus {
	return c.status
}

func (c *UpdateLegStatusCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *UpdateLegStatusCommand) setLegNumber(number int) error {
	if number < 1 {
		return errs.NewValueIsOutOfRangeError("leg number", number, 1, 3)
	}
	c.legNumber = number
	return nil
}

func (c *UpdateLegStatusCommand) setStatus(status route.LegStatus) error {
	if status != route.InTransit && status != route.Completed && status != route.Failed {
		return errs.NewValueIsInvalidErrorWithCause("leg status",
			fmt.Errorf("%s is not a status a courier can report", status))
	}
	c.status = status
	return nil
}
