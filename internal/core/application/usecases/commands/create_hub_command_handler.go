package commands

import (
	"context"
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/hub"
	"logistics/internal/pkg/errs"
)

var ErrHubAlreadyExists = errors.New("hub already exists")

// CreateHubCommandHandler persists new hubs.
type CreateHubCommandHandler struct {
	uowFactory HubUoWFactory
}

func NewCreateHubCommandHandler(uowFactory HubUoWFactory) CreateHubCommandHandler {
	return CreateHubCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the hub. Returns ErrHubAlreadyExists when the code is taken.
func (h *CreateHubCommandHandler) Handle(ctx context.Context, cmd CreateHubCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	entity, err := hub.NewHub(cmd.Code(), cmd.Name(), cmd.Address(), cmd.CoverageKeywords())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	hubRepo := uow.HubRepository()

	_, err = hubRepo.Get(ctx, entity.Code())
	switch {
	case err == nil:
		return fmt.Errorf("%w: %s", ErrHubAlreadyExists, entity.Code())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	if err = hubRepo.Add(ctx, entity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
