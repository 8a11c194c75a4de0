package commands_test

import (
	"testing"
	"time"

	"kitchenpos/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPurgeOrphanedTableGroupsCommand(t *testing.T) {
	t.Run("should create command", func(t *testing.T) {
		cutoff := time.Now().UTC().Add(-24 * time.Hour)

		cmd, err := commands.NewPurgeOrphanedTableGroupsCommand(cutoff)

		require.NoError(t, err)
		assert.Equal(t, cutoff, cmd.CreatedBefore())
	})

	t.Run("should fail with zero cutoff", func(t *testing.T) {
		_, err := commands.NewPurgeOrphanedTableGroupsCommand(time.Time{})

		require.Error(t, err)
	})
}

func TestPurgeOrphanedTableGroupsCommandHandler_Handle(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cutoff := time.Now().UTC().Add(-24 * time.Hour)
	cmd, err := commands.NewPurgeOrphanedTableGroupsCommand(cutoff)
	require.NoError(t, err)

	mockGroupRepo := new(MockTableGroupRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockTableGroupUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("TableGroupRepository").Return(mockGroupRepo).Once()
	mockGroupRepo.On("DeleteOrphaned", ctx, cutoff).Return(int64(3), nil).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewPurgeOrphanedTableGroupsCommandHandler(mockFactory)

	// Act
	purged, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(3), purged)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockGroupRepo.AssertExpectations(t)
}
