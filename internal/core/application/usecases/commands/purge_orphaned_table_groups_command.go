package commands

import (
	"errors"
	"time"

	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var ErrPurgeOrphanedTableGroupsCommandIsNotConstructed = errors.New(
	"PurgeOrphanedTableGroupsCommand must be created via NewPurgeOrphanedTableGroupsCommand constructor",
)

// PurgeOrphanedTableGroupsCommand represents a request to remove table
// groups that no table references anymore. Ungrouping deletes the group
// row, but a crash between freeing the tables and deleting the group can
// leave a group behind; the purge job sweeps those up.
type PurgeOrphanedTableGroupsCommand struct { //nolint:recvcheck //using for validation
	createdBefore time.Time

	guard guard.ConstructorGuard
}

// NewPurgeOrphanedTableGroupsCommand creates a command to purge orphaned
// groups created before the given cutoff.
func NewPurgeOrphanedTableGroupsCommand(createdBefore time.Time) (PurgeOrphanedTableGroupsCommand, error) {
	command := PurgeOrphanedTableGroupsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCreatedBefore(createdBefore); err != nil {
		return PurgeOrphanedTableGroupsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeOrphanedTableGroupsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeOrphanedTableGroupsCommandIsNotConstructed)
}

// CreatedBefore returns the purge cutoff.
func (c PurgeOrphanedTableGroupsCommand) CreatedBefore() time.Time {
	return c.createdBefore
}

func (c *PurgeOrphanedTableGroupsCommand) setCreatedBefore(createdBefore time.Time) error {
	if createdBefore.IsZero() {
		return errs.NewValueIsRequiredError("createdBefore")
	}

	c.createdBefore = createdBefore
	return nil
}
