package commands

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateCourierCommandIsNotConstructed = errors.New(
		"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
	)
	ErrNameIsRequired    = errors.New("name is required")
	ErrHomeHubIsRequired = errors.New("home hub code is required")
)

// CreateCourierCommand represents a request to register a new courier in the fleet.
//
// Example:
//
//	vehicle, _ := courier.NewVehicle(courier.Van, 500)
//	cmd, err := NewCreateCourierCommand("Juan Dela Cruz", "HUB-BUL", courier.AllRoundDriver, vehicle, 4.7)
//	if err != nil {
//	    return fmt.Errorf("invalid courier data: %w", err)
//	}
//
//	handler := NewCreateCourierCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create courier: %w", err)
//	}
//	fmt.Printf("Created courier with ID: %s", cmd.CourierID())
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID   kernel.UUID
	name        string
	homeHubCode string
	driverType  courier.DriverType
	vehicle     courier.Vehicle
	rating      float64

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand creates a command to register a new courier.
// Automatically generates a unique ID for the courier.
func NewCreateCourierCommand(
	name string,
	homeHubCode string,
	driverType courier.DriverType,
	vehicle courier.Vehicle,
	rating float64,
) (CreateCourierCommand, error) {
	command := CreateCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(kernel.NewUUID()),
		command.setName(name),
		command.setHomeHubCode(homeHubCode),
		command.setDriverType(driverType),
		command.setVehicle(vehicle),
		command.setRating(rating),
	); err != nil {
		return CreateCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateCourierCommandIsNotConstructed if validation fails.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

func (c CreateCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c CreateCourierCommand) Name() string {
	return c.name
}

func (c CreateCourierCommand) HomeHubCode() string {
	return c.homeHubCode
}

func (c CreateCourierCommand) DriverType() courier.DriverType {
	return c.driverType
}

func (c CreateCourierCommand) Vehicle() courier.Vehicle {
	return c.vehicle
}

func (c CreateCourierCommand) Rating() float64 {
	return c.rating
}

func (c *CreateCourierCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}

func (c *CreateCourierCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateCourierCommand) setHomeHubCode(code string) error {
	if code == "" {
		return ErrHomeHubIsRequired
	}

	c.homeHubCode = code
	return nil
}

func (c *CreateCourierCommand) setDriverType(driverType courier.DriverType) error {
	if err := driverType.Validate(); err != nil {
		return err
	}

	c.driverType = driverType
	return nil
}

func (c *CreateCourierCommand) setVehicle(vehicle courier.Vehicle) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}

	c.vehicle = vehicle
	return nil
}

func (c *CreateCourierCommand) setRating(rating float64) error {
	if rating < courier.MinRating || rating > courier.MaxRating {
		return errs.NewValueIsOutOfRangeErrorWithCause("rating", rating, courier.MinRating, courier.MaxRating,
			fmt.Errorf("rating must be between %v and %v", courier.MinRating, courier.MaxRating))
	}

	c.rating = rating
	return nil
}
