package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrAssignPendingLegCommandIsNotConstructed = errors.New(
	"AssignPendingLegCommand must be created via NewAssignPendingLegCommand constructor",
)

// AssignPendingLegCommand triggers the assignment of a courier to the oldest ready leg.
// This is a parameterless command, issued on a schedule.
//
// Example:
//
//	cmd := NewAssignPendingLegCommand()
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("No legs to assign or no available couriers: %v", err)
//	}
type AssignPendingLegCommand struct {
	guard guard.ConstructorGuard
}

func NewAssignPendingLegCommand() AssignPendingLegCommand {
	return AssignPendingLegCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *AssignPendingLegCommand) Validate() error {
	return c.guard.Validate(
		ErrAssignPendingLegCommandIsNotConstructed,
	)
}
