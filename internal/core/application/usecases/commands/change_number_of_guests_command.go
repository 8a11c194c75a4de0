package commands

import (
	"errors"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var ErrChangeNumberOfGuestsCommandIsNotConstructed = errors.New(
	"ChangeNumberOfGuestsCommand must be created via NewChangeNumberOfGuestsCommand constructor",
)

// ChangeNumberOfGuestsCommand represents a request to update the seated
// guest count on an occupied table.
type ChangeNumberOfGuestsCommand struct { //nolint:recvcheck //using for validation
	orderTableID   kernel.UUID
	numberOfGuests int

	guard guard.ConstructorGuard
}

// NewChangeNumberOfGuestsCommand creates a command to update a table's guest count.
// Validates that the number of guests is not negative.
func NewChangeNumberOfGuestsCommand(orderTableID kernel.UUID, numberOfGuests int) (ChangeNumberOfGuestsCommand, error) {
	command := ChangeNumberOfGuestsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderTableID(orderTableID),
		command.setNumberOfGuests(numberOfGuests),
	); err != nil {
		return ChangeNumberOfGuestsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeNumberOfGuestsCommand) Validate() error {
	return c.guard.Validate(ErrChangeNumberOfGuestsCommandIsNotConstructed)
}

// OrderTableID returns the target table ID from the command.
func (c ChangeNumberOfGuestsCommand) OrderTableID() kernel.UUID {
	return c.orderTableID
}

// NumberOfGuests returns the requested guest count.
func (c ChangeNumberOfGuestsCommand) NumberOfGuests() int {
	return c.numberOfGuests
}

func (c *ChangeNumberOfGuestsCommand) setOrderTableID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderTableID = id
	return nil
}

func (c *ChangeNumberOfGuestsCommand) setNumberOfGuests(numberOfGuests int) error {
	if numberOfGuests < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"numberOfGuests",
			fmt.Errorf("%d is negative", numberOfGuests),
		)
	}

	c.numberOfGuests = numberOfGuests
	return nil
}
