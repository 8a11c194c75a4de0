package commands

import (
	"context"
)

// PurgeOrphanedTableGroupsCommandHandler removes table groups left behind
// by interrupted ungrouping. Intended to be driven by a scheduled job.
type PurgeOrphanedTableGroupsCommandHandler struct {
	uowFactory TableGroupUoWFactory
}

// NewPurgeOrphanedTableGroupsCommandHandler creates a handler for the purge operation.
func NewPurgeOrphanedTableGroupsCommandHandler(uowFactory TableGroupUoWFactory) PurgeOrphanedTableGroupsCommandHandler {
	return PurgeOrphanedTableGroupsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the purge command and returns how many groups were removed.
func (h PurgeOrphanedTableGroupsCommandHandler) Handle(
	ctx context.Context,
	cmd PurgeOrphanedTableGroupsCommand,
) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	purged, err := uow.TableGroupRepository().DeleteOrphaned(ctx, cmd.CreatedBefore())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
