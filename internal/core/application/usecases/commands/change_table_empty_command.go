package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var ErrChangeTableEmptyCommandIsNotConstructed = errors.New(
	"ChangeTableEmptyCommand must be created via NewChangeTableEmptyCommand constructor",
)

// ChangeTableEmptyCommand represents a request to mark a table as occupied
// or vacated.
type ChangeTableEmptyCommand struct { //nolint:recvcheck //using for validation
	orderTableID kernel.UUID
	empty        bool

	guard guard.ConstructorGuard
}

// NewChangeTableEmptyCommand creates a command to change a table's occupancy flag.
func NewChangeTableEmptyCommand(orderTableID kernel.UUID, empty bool) (ChangeTableEmptyCommand, error) {
	command := ChangeTableEmptyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderTableID(orderTableID); err != nil {
		return ChangeTableEmptyCommand{}, err
	}

	command.empty = empty
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeTableEmptyCommand) Validate() error {
	return c.guard.Validate(ErrChangeTableEmptyCommandIsNotConstructed)
}

// OrderTableID returns the target table ID from the command.
func (c ChangeTableEmptyCommand) OrderTableID() kernel.UUID {
	return c.orderTableID
}

// Empty returns the requested occupancy flag.
func (c ChangeTableEmptyCommand) Empty() bool {
	return c.empty
}

func (c *ChangeTableEmptyCommand) setOrderTableID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderTableID = id
	return nil
}
