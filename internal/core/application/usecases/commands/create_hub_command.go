package commands

import (
	"errors"
	"slices"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateHubCommandIsNotConstructed = errors.New(
	"CreateHubCommand must be created via NewCreateHubCommand constructor",
)

// CreateHubCommand registers a new regional hub. Issued by the admin process that
// maintains the hub network.
type CreateHubCommand struct { //nolint:recvcheck //using for validation
	code             string
	name             string
	address          kernel.Location
	coverageKeywords []string

	guard guard.ConstructorGuard
}

func NewCreateHubCommand(
	code, name string,
	address kernel.Location,
	coverageKeywords []string,
) (CreateHubCommand, error) {
	command := CreateHubCommand{
		coverageKeywords: slices.Clone(coverageKeywords),
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCode(code),
		command.setName(name),
		command.setAddress(address),
	); err != nil {
		return CreateHubCommand{}, err
	}

	return command, nil
}

func (c CreateHubCommand) Validate() error {
	return c.guard.Validate(ErrCreateHubCommandIsNotConstructed)
}

func (c CreateHubCommand) Code() string {
	return c.code
}

func (c CreateHubCommand) Name() string {
	return c.name
}

func (c CreateHubCommand) Address() kernel.Location {
	return c.address
}

func (c CreateHubCommand) CoverageKeywords() []string {
	return slices.Clone(c.coverageKeywords)
}

func (c *CreateHubCommand) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	c.code = code
	return nil
}

func (c *CreateHubCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateHubCommand) setAddress(address kernel.Location) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = address
	return nil
}
