package commands

import (
	"context"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for opening orders.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(tableID, lines)
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // table or a referenced menu is not registered
//	case errors.Is(err, table.ErrTableIsEmpty):
//	    // seat guests before ordering
//	case err != nil:
//	    // persistence failure
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderCreationUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order opening operations.
func NewCreateOrderCommandHandler(uowFactory OrderCreationUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order opening command.
// Verifies every referenced menu is registered, loads the target table and
// creates the order, which enforces the occupancy and distinct-menu rules.
// The order starts in Cooking status.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	lineItems, menuIDs, err := buildLineItems(cmd.OrderLines())
	if err != nil {
		return err
	}

	menuCount, err := uow.MenuRepository().CountByIDs(ctx, menuIDs)
	if err != nil {
		return err
	}
	if menuCount != int64(len(menuIDs)) {
		return errs.NewObjectNotFoundError("menuIds", menuIDs)
	}

	orderTable, err := uow.OrderTableRepository().Get(ctx, cmd.OrderTableID())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), orderTable, lineItems, time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// buildLineItems converts request lines to domain line items and collects
// the distinct menu identifiers to verify. The order aggregate itself
// rejects duplicate menu references.
func buildLineItems(lines []OrderLine) ([]*order.OrderLineItem, []kernel.UUID, error) {
	lineItems := make([]*order.OrderLineItem, 0, len(lines))
	menuIDs := make([]kernel.UUID, 0, len(lines))
	seen := make(map[kernel.UUID]struct{}, len(lines))

	for _, line := range lines {
		quantity, err := kernel.NewQuantity(line.Quantity)
		if err != nil {
			return nil, nil, err
		}

		lineItem, err := order.NewOrderLineItem(line.MenuID, quantity)
		if err != nil {
			return nil, nil, err
		}

		lineItems = append(lineItems, lineItem)
		if _, dup := seen[line.MenuID]; !dup {
			seen[line.MenuID] = struct{}{}
			menuIDs = append(menuIDs, line.MenuID)
		}
	}

	return lineItems, menuIDs, nil
}
