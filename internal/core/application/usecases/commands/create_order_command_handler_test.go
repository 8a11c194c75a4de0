package commands_test

import (
	"testing"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	tableID := kernel.NewUUID()

	t.Run("should create command with generated order id", func(t *testing.T) {
		lines := []commands.OrderLine{{MenuID: kernel.NewUUID(), Quantity: 2}}

		cmd, err := commands.NewCreateOrderCommand(tableID, lines)

		require.NoError(t, err)
		assert.NoError(t, cmd.OrderID().Validate())
		assert.True(t, cmd.OrderTableID().IsEqual(tableID))
		assert.Equal(t, lines, cmd.OrderLines())
	})

	t.Run("should fail without lines", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(tableID, nil)

		assert.ErrorIs(t, err, commands.ErrNoLineItems)
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		lines := []commands.OrderLine{{MenuID: kernel.NewUUID(), Quantity: -1}}

		_, err := commands.NewCreateOrderCommand(tableID, lines)

		require.Error(t, err)
	})
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	orderTable, err := table.NewOrderTable(kernel.NewUUID(), 4, false)
	require.NoError(t, err)
	menuID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderTable.ID(),
		[]commands.OrderLine{{MenuID: menuID, Quantity: 2}})
	require.NoError(t, err)

	var capturedOrder *order.Order
	mockMenuRepo := new(MockMenuRepository)
	mockTableRepo := new(MockOrderTableRepository)
	mockOrderRepo := new(MockOrderRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockOrderCreationUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("MenuRepository").Return(mockMenuRepo).Once()
	mockMenuRepo.On("CountByIDs", ctx, []kernel.UUID{menuID}).Return(int64(1), nil).Once()
	mockUoW.On("OrderTableRepository").Return(mockTableRepo).Once()
	mockTableRepo.On("Get", ctx, orderTable.ID()).Return(orderTable, nil).Once()
	mockUoW.On("OrderRepository").Return(mockOrderRepo).Once()
	mockOrderRepo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
		capturedOrder = o
		return true
	})).Return(nil).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateOrderCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, capturedOrder)
	assert.True(t, capturedOrder.ID().IsEqual(cmd.OrderID()))
	assert.True(t, capturedOrder.OrderTableID().IsEqual(orderTable.ID()))
	assert.Equal(t, order.Cooking, capturedOrder.Status())
	require.Len(t, capturedOrder.LineItems(), 1)
	assert.True(t, capturedOrder.LineItems()[0].MenuID().IsEqual(menuID))
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockMenuRepo.AssertExpectations(t)
	mockTableRepo.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_MenuNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	menuID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(),
		[]commands.OrderLine{{MenuID: menuID, Quantity: 1}})
	require.NoError(t, err)

	mockMenuRepo := new(MockMenuRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockOrderCreationUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("MenuRepository").Return(mockMenuRepo).Once()
	mockMenuRepo.On("CountByIDs", ctx, []kernel.UUID{menuID}).Return(int64(0), nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateOrderCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	mockUoW.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_EmptyTable(t *testing.T) {
	// Arrange
	ctx := t.Context()
	emptyTable, err := table.NewOrderTable(kernel.NewUUID(), 0, true)
	require.NoError(t, err)
	menuID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(emptyTable.ID(),
		[]commands.OrderLine{{MenuID: menuID, Quantity: 1}})
	require.NoError(t, err)

	mockMenuRepo := new(MockMenuRepository)
	mockTableRepo := new(MockOrderTableRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockOrderCreationUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("MenuRepository").Return(mockMenuRepo).Once()
	mockMenuRepo.On("CountByIDs", ctx, []kernel.UUID{menuID}).Return(int64(1), nil).Once()
	mockUoW.On("OrderTableRepository").Return(mockTableRepo).Once()
	mockTableRepo.On("Get", ctx, emptyTable.ID()).Return(emptyTable, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateOrderCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, table.ErrTableIsEmpty)
	mockUoW.AssertExpectations(t)
}
