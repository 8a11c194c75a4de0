package commands_test

import (
	"testing"
	"time"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableOrder(t *testing.T, tableID kernel.UUID, status order.Status) *order.Order {
	t.Helper()

	qty, err := kernel.NewQuantity(1)
	require.NoError(t, err)
	li, err := order.NewOrderLineItem(kernel.NewUUID(), qty)
	require.NoError(t, err)

	o, err := order.RestoreOrder(kernel.NewUUID(), tableID, status, time.Now().UTC(),
		[]*order.OrderLineItem{li})
	require.NoError(t, err)
	return o
}

func TestChangeTableEmptyCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	orderTable, err := table.NewOrderTable(kernel.NewUUID(), 4, false)
	require.NoError(t, err)

	cmd, err := commands.NewChangeTableEmptyCommand(orderTable.ID(), true)
	require.NoError(t, err)

	mockTableRepo := new(MockOrderTableRepository)
	mockOrderRepo := new(MockOrderRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockTableOrdersUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("OrderTableRepository").Return(mockTableRepo).Twice()
	mockTableRepo.On("Get", ctx, orderTable.ID()).Return(orderTable, nil).Once()
	mockUoW.On("OrderRepository").Return(mockOrderRepo).Once()
	mockOrderRepo.On("GetAllByTableIDs", ctx, []kernel.UUID{orderTable.ID()}).
		Return([]*order.Order{tableOrder(t, orderTable.ID(), order.Completion)}, nil).Once()
	mockTableRepo.On("Update", ctx, orderTable).Return(nil).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewChangeTableEmptyCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.True(t, orderTable.IsEmpty())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockTableRepo.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
}

func TestChangeTableEmptyCommandHandler_Handle_ActiveOrder(t *testing.T) {
	// Arrange
	ctx := t.Context()
	orderTable, err := table.NewOrderTable(kernel.NewUUID(), 4, false)
	require.NoError(t, err)

	cmd, err := commands.NewChangeTableEmptyCommand(orderTable.ID(), true)
	require.NoError(t, err)

	mockTableRepo := new(MockOrderTableRepository)
	mockOrderRepo := new(MockOrderRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockTableOrdersUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("OrderTableRepository").Return(mockTableRepo).Once()
	mockTableRepo.On("Get", ctx, orderTable.ID()).Return(orderTable, nil).Once()
	mockUoW.On("OrderRepository").Return(mockOrderRepo).Once()
	mockOrderRepo.On("GetAllByTableIDs", ctx, []kernel.UUID{orderTable.ID()}).
		Return([]*order.Order{tableOrder(t, orderTable.ID(), order.Cooking)}, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewChangeTableEmptyCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTableHasActiveOrder)
	assert.False(t, orderTable.IsEmpty(), "table must stay unchanged on failure")
	mockUoW.AssertExpectations(t)
}

func TestChangeTableEmptyCommandHandler_Handle_GroupedTable(t *testing.T) {
	// Arrange
	ctx := t.Context()
	groupID := kernel.NewUUID()
	orderTable, err := table.RestoreOrderTable(kernel.NewUUID(), 4, false, &groupID)
	require.NoError(t, err)

	cmd, err := commands.NewChangeTableEmptyCommand(orderTable.ID(), true)
	require.NoError(t, err)

	mockTableRepo := new(MockOrderTableRepository)
	mockOrderRepo := new(MockOrderRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockTableOrdersUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("OrderTableRepository").Return(mockTableRepo).Once()
	mockTableRepo.On("Get", ctx, orderTable.ID()).Return(orderTable, nil).Once()
	mockUoW.On("OrderRepository").Return(mockOrderRepo).Once()
	mockOrderRepo.On("GetAllByTableIDs", ctx, []kernel.UUID{orderTable.ID()}).
		Return([]*order.Order{}, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewChangeTableEmptyCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, table.ErrTableGrouped)
	mockUoW.AssertExpectations(t)
}
