package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var ErrCreateMenuGroupCommandIsNotConstructed = errors.New(
	"CreateMenuGroupCommand must be created via NewCreateMenuGroupCommand constructor",
)

// CreateMenuGroupCommand represents a request to register a new menu group,
// a named category that menus are filed under.
type CreateMenuGroupCommand struct { //nolint:recvcheck //using for validation
	menuGroupID kernel.UUID
	name        string

	guard guard.ConstructorGuard
}

// NewCreateMenuGroupCommand creates a command to register a new menu group.
// Automatically generates a unique ID for the group.
func NewCreateMenuGroupCommand(name string) (CreateMenuGroupCommand, error) {
	command := CreateMenuGroupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setMenuGroupID(kernel.NewUUID()),
		command.setName(name),
	); err != nil {
		return CreateMenuGroupCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMenuGroupCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuGroupCommandIsNotConstructed)
}

// MenuGroupID returns the generated menu group ID.
func (c CreateMenuGroupCommand) MenuGroupID() kernel.UUID {
	return c.menuGroupID
}

// Name returns the menu group name from the command.
func (c CreateMenuGroupCommand) Name() string {
	return c.name
}

func (c *CreateMenuGroupCommand) setMenuGroupID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.menuGroupID = id
	return nil
}

func (c *CreateMenuGroupCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
