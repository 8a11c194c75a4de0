package commands

import (
	"context"
	"time"

	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/pkg/errs"
)

// GroupTablesCommandHandler handles the business logic for forming table groups.
//
// Example:
//
//	handler := NewGroupTablesCommandHandler(uowFactory)
//	cmd, _ := NewGroupTablesCommand(tableIDs)
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // a referenced table is not registered
//	case errors.Is(err, table.ErrTableNotAvailableForGrouping):
//	    // a table is occupied or already grouped
//	}
type GroupTablesCommandHandler struct {
	uowFactory GroupingUoWFactory
}

// NewGroupTablesCommandHandler creates a handler for table grouping operations.
func NewGroupTablesCommandHandler(uowFactory GroupingUoWFactory) GroupTablesCommandHandler {
	return GroupTablesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the grouping command.
// Resolves every requested table, forms the group (which marks each member
// occupied) and persists the group together with the updated tables in one
// transaction.
func (h GroupTablesCommandHandler) Handle(ctx context.Context, cmd GroupTablesCommand) error {
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

	tableIDs := cmd.OrderTableIDs()
	tables, err := uow.OrderTableRepository().GetAllByIDs(ctx, tableIDs)
	if err != nil {
		return err
	}
	if len(tables) != len(tableIDs) {
		return errs.NewObjectNotFoundError("orderTableIds", tableIDs)
	}

	group, err := table.NewTableGroup(cmd.TableGroupID(), tables, time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.TableGroupRepository().Add(ctx, group); err != nil {
		return err
	}

	for _, orderTable := range tables {
		if err = uow.OrderTableRepository().Update(ctx, orderTable); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
