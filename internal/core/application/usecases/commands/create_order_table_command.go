package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var ErrCreateOrderTableCommandIsNotConstructed = errors.New(
	"CreateOrderTableCommand must be created via NewCreateOrderTableCommand constructor",
)

// CreateOrderTableCommand represents a request to register a new physical
// table in the restaurant. Tables start ungrouped.
type CreateOrderTableCommand struct { //nolint:recvcheck //using for validation
	orderTableID   kernel.UUID
	numberOfGuests int
	empty          bool

	guard guard.ConstructorGuard
}

// NewCreateOrderTableCommand creates a command to register a new table.
// Automatically generates a unique ID for the table.
// Validates that the number of guests is not negative.
func NewCreateOrderTableCommand(numberOfGuests int, empty bool) (CreateOrderTableCommand, error) {
	command := CreateOrderTableCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderTableID(kernel.NewUUID()),
		command.setNumberOfGuests(numberOfGuests),
	); err != nil {
		return CreateOrderTableCommand{}, err
	}

	command.empty = empty
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderTableCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderTableCommandIsNotConstructed)
}

// OrderTableID returns the generated table ID.
func (c CreateOrderTableCommand) OrderTableID() kernel.UUID {
	return c.orderTableID
}

// NumberOfGuests returns the seated guest count from the command.
func (c CreateOrderTableCommand) NumberOfGuests() int {
	return c.numberOfGuests
}

// Empty reports whether the table starts unoccupied.
func (c CreateOrderTableCommand) Empty() bool {
	return c.empty
}

func (c *CreateOrderTableCommand) setOrderTableID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderTableID = id
	return nil
}

func (c *CreateOrderTableCommand) setNumberOfGuests(numberOfGuests int) error {
	if numberOfGuests < 0 {
		return errs.NewValueIsInvalidErrorWithCause("numberOfGuests", errors.New("must not be negative"))
	}

	c.numberOfGuests = numberOfGuests
	return nil
}
