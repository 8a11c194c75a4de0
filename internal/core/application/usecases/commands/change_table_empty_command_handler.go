package commands

import (
	"context"
	"errors"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
)

// ErrTableHasActiveOrder is returned when a table's occupancy cannot change
// because an order on it is still in the Cooking or Meal status.
var ErrTableHasActiveOrder = errors.New("table has an order in an active status")

// ChangeTableEmptyCommandHandler handles occupancy changes for a table.
//
// Business rules:
//   - A grouped table cannot change occupancy (rejected by the aggregate)
//   - A table with an active order cannot change occupancy
//
// Example:
//
//	handler := NewChangeTableEmptyCommandHandler(uowFactory)
//	cmd, _ := NewChangeTableEmptyCommand(tableID, true)
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, table.ErrTableGrouped):
//	    // ungroup first
//	case errors.Is(err, ErrTableHasActiveOrder):
//	    // complete the order first
//	}
type ChangeTableEmptyCommandHandler struct {
	uowFactory TableOrdersUoWFactory
}

// NewChangeTableEmptyCommandHandler creates a handler for table occupancy operations.
func NewChangeTableEmptyCommandHandler(uowFactory TableOrdersUoWFactory) ChangeTableEmptyCommandHandler {
	return ChangeTableEmptyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the occupancy change command.
// Loads the table, rejects the change while any order on the table is
// active, then applies the aggregate-level rules and persists the table.
func (h ChangeTableEmptyCommandHandler) Handle(ctx context.Context, cmd ChangeTableEmptyCommand) error {
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

	orderTable, err := uow.OrderTableRepository().Get(ctx, cmd.OrderTableID())
	if err != nil {
		return err
	}

	orders, err := uow.OrderRepository().GetAllByTableIDs(ctx, []kernel.UUID{cmd.OrderTableID()})
	if err != nil {
		return err
	}
	for _, o := range orders {
		if o.IsActive() {
			return fmt.Errorf("order %s is %s: %w", o.ID(), o.Status(), ErrTableHasActiveOrder)
		}
	}

	if err = orderTable.ChangeEmpty(cmd.Empty()); err != nil {
		return err
	}

	if err = uow.OrderTableRepository().Update(ctx, orderTable); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
