package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/table"
)

// CreateOrderTableCommandHandler handles the business logic for table registration.
type CreateOrderTableCommandHandler struct {
	uowFactory TableUoWFactory
}

// NewCreateOrderTableCommandHandler creates a handler for table registration operations.
func NewCreateOrderTableCommandHandler(uowFactory TableUoWFactory) CreateOrderTableCommandHandler {
	return CreateOrderTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the table registration command.
func (h CreateOrderTableCommandHandler) Handle(ctx context.Context, cmd CreateOrderTableCommand) error {
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

	orderTable, err := table.NewOrderTable(cmd.OrderTableID(), cmd.NumberOfGuests(), cmd.Empty())
	if err != nil {
		return err
	}

	if err = uow.OrderTableRepository().Add(ctx, orderTable); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
