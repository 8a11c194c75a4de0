package commands_test

import (
	"testing"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeNumberOfGuestsCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		tableID := kernel.NewUUID()

		cmd, err := commands.NewChangeNumberOfGuestsCommand(tableID, 6)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderTableID().IsEqual(tableID))
		assert.Equal(t, 6, cmd.NumberOfGuests())
	})

	t.Run("should fail with invalid table id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewChangeNumberOfGuestsCommand(invalidID, 6)

		require.Error(t, err)
	})

	t.Run("should fail with negative guest count", func(t *testing.T) {
		_, err := commands.NewChangeNumberOfGuestsCommand(kernel.NewUUID(), -1)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail validation on zero-value command", func(t *testing.T) {
		var cmd commands.ChangeNumberOfGuestsCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrChangeNumberOfGuestsCommandIsNotConstructed)
	})
}

func TestChangeNumberOfGuestsCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	orderTable, err := table.NewOrderTable(kernel.NewUUID(), 2, false)
	require.NoError(t, err)

	cmd, err := commands.NewChangeNumberOfGuestsCommand(orderTable.ID(), 6)
	require.NoError(t, err)

	mockTableRepo := new(MockOrderTableRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockTableUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("OrderTableRepository").Return(mockTableRepo).Twice()
	mockTableRepo.On("Get", ctx, orderTable.ID()).Return(orderTable, nil).Once()
	mockTableRepo.On("Update", ctx, orderTable).Return(nil).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewChangeNumberOfGuestsCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 6, orderTable.NumberOfGuests())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockTableRepo.AssertExpectations(t)
}

func TestChangeNumberOfGuestsCommandHandler_Handle_EmptyTable(t *testing.T) {
	// Arrange
	ctx := t.Context()
	orderTable, err := table.NewOrderTable(kernel.NewUUID(), 0, true)
	require.NoError(t, err)

	cmd, err := commands.NewChangeNumberOfGuestsCommand(orderTable.ID(), 4)
	require.NoError(t, err)

	mockTableRepo := new(MockOrderTableRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockTableUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("OrderTableRepository").Return(mockTableRepo).Once()
	mockTableRepo.On("Get", ctx, orderTable.ID()).Return(orderTable, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewChangeNumberOfGuestsCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, table.ErrTableIsEmpty)
	assert.Equal(t, 0, orderTable.NumberOfGuests())
	mockUoW.AssertExpectations(t)
}

func TestChangeNumberOfGuestsCommandHandler_Handle_TableNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	tableID := kernel.NewUUID()

	cmd, err := commands.NewChangeNumberOfGuestsCommand(tableID, 4)
	require.NoError(t, err)

	mockTableRepo := new(MockOrderTableRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockTableUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("OrderTableRepository").Return(mockTableRepo).Once()
	mockTableRepo.On("Get", ctx, tableID).
		Return(nil, errs.NewObjectNotFoundError("orderTable", tableID.String())).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewChangeNumberOfGuestsCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	mockUoW.AssertExpectations(t)
}
