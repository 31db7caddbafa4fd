package commands

import (
	"context"
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/courier"
	"logistics/internal/pkg/errs"
)

var ErrHomeHubNotFound = errors.New("home hub not found")

// CreateCourierCommandHandler handles the business logic for courier registration.
// The home hub must exist and be active.
//
// Example:
//
//	handler := NewCreateCourierCommandHandler(uowFactory)
//	cmd, _ := NewCreateCourierCommand("Ana", "HUB-CEB", courier.DeliveryDriver, vehicle, 0)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("courier registration failed: %w", err)
//	}
type CreateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewCreateCourierCommandHandler creates a handler for courier registration.
// Requires a CourierUoWFactory for transactional persistence operations.
func NewCreateCourierCommandHandler(uowFactory CourierUoWFactory) CreateCourierCommandHandler {
	return CreateCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the courier creation command.
// Automatically rolls back on any error to prevent partial data.
func (h *CreateCourierCommandHandler) Handle(ctx context.Context, cmd CreateCourierCommand) error {
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

	courierRepo := uow.CourierRepository()
	hubRepo := uow.HubRepository()

	home, err := hubRepo.Get(ctx, cmd.HomeHubCode())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Errorf("%w: %s", ErrHomeHubNotFound, cmd.HomeHubCode())
	}
	if err != nil {
		return err
	}
	if !home.IsActive() {
		return fmt.Errorf("%w: %s is inactive", ErrHomeHubNotFound, home.Code())
	}

	courierEntity, err := courier.NewCourier(cmd.CourierID(), cmd.Name(), home.Code(), cmd.DriverType(), cmd.Vehicle())
	if err != nil {
		return err
	}
	if err = courierEntity.SetRating(cmd.Rating()); err != nil {
		return err
	}

	if err = courierRepo.Add(ctx, courierEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
