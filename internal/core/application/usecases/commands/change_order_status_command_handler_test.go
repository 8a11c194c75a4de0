package commands_test

import (
	"testing"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStatusCommand(t *testing.T) {
	t.Run("should create command", func(t *testing.T) {
		orderID := kernel.NewUUID()

		cmd, err := commands.NewChangeOrderStatusCommand(orderID, order.Meal)

		require.NoError(t, err)
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.Equal(t, order.Meal, cmd.Status())
	})

	t.Run("should fail with unknown status", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), order.Unknown)

		require.Error(t, err)
	})
}

func TestChangeOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	existingOrder := tableOrder(t, kernel.NewUUID(), order.Cooking)

	cmd, err := commands.NewChangeOrderStatusCommand(existingOrder.ID(), order.Meal)
	require.NoError(t, err)

	mockOrderRepo := new(MockOrderRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockOrderUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("OrderRepository").Return(mockOrderRepo).Twice()
	mockOrderRepo.On("Get", ctx, existingOrder.ID()).Return(existingOrder, nil).Once()
	mockOrderRepo.On("Update", ctx, existingOrder).Return(nil).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewChangeOrderStatusCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, order.Meal, existingOrder.Status())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_CompletedOrder(t *testing.T) {
	// Arrange
	ctx := t.Context()
	completedOrder := tableOrder(t, kernel.NewUUID(), order.Completion)

	cmd, err := commands.NewChangeOrderStatusCommand(completedOrder.ID(), order.Meal)
	require.NoError(t, err)

	mockOrderRepo := new(MockOrderRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockOrderUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("OrderRepository").Return(mockOrderRepo).Once()
	mockOrderRepo.On("Get", ctx, completedOrder.ID()).Return(completedOrder, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewChangeOrderStatusCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrOrderAlreadyCompleted)
	assert.Equal(t, order.Completion, completedOrder.Status())
	mockUoW.AssertExpectations(t)
}
