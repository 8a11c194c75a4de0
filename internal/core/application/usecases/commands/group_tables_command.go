package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var (
	ErrGroupTablesCommandIsNotConstructed = errors.New(
		"GroupTablesCommand must be created via NewGroupTablesCommand constructor",
	)
	ErrNotEnoughTableIDs = errors.New("grouping requires at least two tables")
	ErrDuplicateTableIDs = errors.New("table ids must be distinct")
)

// GroupTablesCommand represents a request to join tables into a billing group.
//
// Example:
//
//	cmd, err := NewGroupTablesCommand([]kernel.UUID{firstID, secondID})
//	if err != nil {
//	    return fmt.Errorf("invalid grouping request: %w", err)
//	}
//
//	handler := NewGroupTablesCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to group tables: %w", err)
//	}
//	fmt.Printf("Created table group with ID: %s", cmd.TableGroupID())
type GroupTablesCommand struct { //nolint:recvcheck //using for validation
	tableGroupID  kernel.UUID
	orderTableIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewGroupTablesCommand creates a command to form a table group.
// Automatically generates a unique ID for the group.
// Validates that at least two distinct valid table ids are given.
func NewGroupTablesCommand(orderTableIDs []kernel.UUID) (GroupTablesCommand, error) {
	command := GroupTablesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTableGroupID(kernel.NewUUID()),
		command.setOrderTableIDs(orderTableIDs),
	); err != nil {
		return GroupTablesCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c GroupTablesCommand) Validate() error {
	return c.guard.Validate(ErrGroupTablesCommandIsNotConstructed)
}

// TableGroupID returns the generated group ID.
func (c GroupTablesCommand) TableGroupID() kernel.UUID {
	return c.tableGroupID
}

// OrderTableIDs returns the tables to be grouped.
func (c GroupTablesCommand) OrderTableIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.orderTableIDs))
	copy(ids, c.orderTableIDs)
	return ids
}

func (c *GroupTablesCommand) setTableGroupID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.tableGroupID = id
	return nil
}

func (c *GroupTablesCommand) setOrderTableIDs(ids []kernel.UUID) error {
	if len(ids) < 2 {
		return ErrNotEnoughTableIDs
	}

	seen := make(map[kernel.UUID]struct{}, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, dup := seen[id]; dup {
			return ErrDuplicateTableIDs
		}
		seen[id] = struct{}{}
	}

	c.orderTableIDs = make([]kernel.UUID, len(ids))
	copy(c.orderTableIDs, ids)
	return nil
}
