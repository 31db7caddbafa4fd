package commands

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrPlanShipmentCommandIsNotConstructed = errors.New(
	"PlanShipmentCommand must be created via NewPlanShipmentCommand constructor",
)

// PlanShipmentCommand asks the engine to route, price and schedule a new shipment.
// The shipment id is generated up front so callers can read the result afterwards.
type PlanShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	pickup     services.Stop
	delivery   services.Stop
	weight     float64
	subtotal   float64

	guard guard.ConstructorGuard
}

func NewPlanShipmentCommand(
	pickup, delivery services.Stop,
	weight, subtotal float64,
) (PlanShipmentCommand, error) {
	command := PlanShipmentCommand{
		shipmentID: kernel.NewUUID(),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setStops(pickup, delivery),
		command.setWeight(weight),
		command.setSubtotal(subtotal),
	); err != nil {
		return PlanShipmentCommand{}, err
	}

	return command, nil
}

func (c PlanShipmentCommand) Validate() error {
	return c.guard.Validate(ErrPlanShipmentCommandIsNotConstructed)
}

func (c PlanShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c PlanShipmentCommand) Pickup() services.Stop {
	return c.pickup
}

func (c PlanShipmentCommand) Delivery() services.Stop {
	return c.delivery
}

func (c PlanShipmentCommand) Weight() float64 {
	return c.weight
}

func (c PlanShipmentCommand) Subtotal() float64 {
	return c.subtotal
}

func (c *PlanShipmentCommand) setStops(pickup, delivery services.Stop) error {
	req := services.RouteRequest{Pickup: pickup, Delivery: delivery}
	if err := req.Validate(); err != nil {
		return err
	}
	c.pickup = pickup
	c.delivery = delivery
	return nil
}

func (c *PlanShipmentCommand) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is not greater than 0", weight))
	}
	c.weight = weight
	return nil
}

func (c *PlanShipmentCommand) setSubtotal(subtotal float64) error {
	if subtotal < 0 {
		return errs.NewValueIsInvalidErrorWithCause("subtotal", fmt.Errorf("%v is negative", subtotal))
	}
	c.subtotal = subtotal
	return nil
}
