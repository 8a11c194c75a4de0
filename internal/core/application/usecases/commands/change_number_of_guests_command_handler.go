package commands

import (
	"context"
)

// ChangeNumberOfGuestsCommandHandler handles guest count updates.
// The aggregate rejects updates on empty tables.
type ChangeNumberOfGuestsCommandHandler struct {
	uowFactory TableUoWFactory
}

// NewChangeNumberOfGuestsCommandHandler creates a handler for guest count operations.
func NewChangeNumberOfGuestsCommandHandler(uowFactory TableUoWFactory) ChangeNumberOfGuestsCommandHandler {
	return ChangeNumberOfGuestsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the guest count change command.
func (h ChangeNumberOfGuestsCommandHandler) Handle(ctx context.Context, cmd ChangeNumberOfGuestsCommand) error {
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

	if err = orderTable.ChangeNumberOfGuests(cmd.NumberOfGuests()); err != nil {
		return err
	}

	if err = uow.OrderTableRepository().Update(ctx, orderTable); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
