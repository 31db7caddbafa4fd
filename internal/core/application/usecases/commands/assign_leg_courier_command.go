package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrAssignLegCourierCommandIsNotConstructed = errors.New(
	"AssignLegCourierCommand must be created via NewAssignLegCourierCommand constructor",
)

// AssignLegCourierCommand binds the best available courier to one leg of a shipment.
type AssignLegCourierCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	legNumber  int

	guard guard.ConstructorGuard
}

func NewAssignLegCourierCommand(shipmentID kernel.UUID, legNumber int) (AssignLegCourierCommand, error) {
	command := AssignLegCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipmentID(shipmentID),
		command.setLegNumber(legNumber),
	); err != nil {
		return AssignLegCourierCommand{}, err
	}

	return command, nil
}

func (c AssignLegCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignLegCourierCommandIsNotConstructed)
}

func (c AssignLegCourierCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c AssignLegCourierCommand) LegNumber() int {
	return c.legNumber
}

func (c *AssignLegCourierCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *AssignLegCourierCommand) setLegNumber(number int) error {
	if number < 1 {
		return errs.NewValueIsOutOfRangeError("leg number", number, 1, 3)
	}
	c.legNumber = number
	return nil
}
