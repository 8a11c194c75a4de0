package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/core/domain/services"
)

// UngroupTablesCommandHandler handles the business logic for dissolving
// table groups. Delegates the active-order check to the TableUngrouper
// domain service.
//
// Example:
//
//	handler := NewUngroupTablesCommandHandler(uowFactory)
//	cmd, _ := NewUngroupTablesCommand(groupID)
//
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrActiveOrderInGroup) {
//	    // complete the open orders first
//	}
type UngroupTablesCommandHandler struct {
	uowFactory UngroupingUoWFactory
}

// NewUngroupTablesCommandHandler creates a handler for table ungrouping operations.
func NewUngroupTablesCommandHandler(uowFactory UngroupingUoWFactory) UngroupTablesCommandHandler {
	return UngroupTablesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the ungrouping command.
// Loads the group, its member tables and every order on those tables,
// dissolves the group via the domain service and persists the freed tables
// and the group deletion in one transaction.
func (h UngroupTablesCommandHandler) Handle(ctx context.Context, cmd UngroupTablesCommand) error {
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

	group, err := uow.TableGroupRepository().Get(ctx, cmd.TableGroupID())
	if err != nil {
		return err
	}

	tables, err := uow.OrderTableRepository().GetAllByGroupID(ctx, group.ID())
	if err != nil {
		return err
	}

	tableIDs := make([]kernel.UUID, 0, len(tables))
	for _, orderTable := range tables {
		tableIDs = append(tableIDs, orderTable.ID())
	}

	orders, err := uow.OrderRepository().GetAllByTableIDs(ctx, tableIDs)
	if err != nil {
		return err
	}

	if err = services.NewTableUngrouper().Ungroup(group, tables, orders); err != nil {
		return err
	}

	if err = updateTables(ctx, uow, tables); err != nil {
		return err
	}

	if err = uow.TableGroupRepository().Delete(ctx, group.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func updateTables(ctx context.Context, uow UngroupingUoW, tables []*table.OrderTable) error {
	repo := uow.OrderTableRepository()
	for _, orderTable := range tables {
		if err := repo.Update(ctx, orderTable); err != nil {
			return err
		}
	}
	return nil
}
