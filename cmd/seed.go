package cmd

import (
	"context"
	"errors"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/hub"
)

// SeedHubs registers the built-in hub network through the create-hub use case. Hubs
// that already exist are left untouched, so it is safe on every start.
func (c *CompositionRoot) SeedHubs(ctx context.Context) (int, error) {
	handler := c.CreateCreateHubCommandHandler()

	created := 0
	for _, h := range hub.DefaultHubs() {
		cmd, err := commands.NewCreateHubCommand(h.Code(), h.Name(), h.Address(), h.CoverageKeywords())
		if err != nil {
			return created, err
		}

		err = handler.Handle(ctx, cmd)
		if errors.Is(err, commands.ErrHubAlreadyExists) {
			continue
		}
		if err != nil {
			return created, err
		}
		created++
	}

	return created, nil
}
