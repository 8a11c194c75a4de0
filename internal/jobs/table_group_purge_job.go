package jobs

import (
	"context"
	"log/slog"
	"time"

	"kitchenpos/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// TableGroupPurgeJob periodically removes table groups that no order table
// references anymore. Groups become orphaned when every member table is
// detached outside the normal ungroup flow, for example by manual data
// fixes; the purge keeps the table_groups relation from accumulating them.
type TableGroupPurgeJob struct {
	handler   commands.PurgeOrphanedTableGroupsCommandHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewTableGroupPurgeJob creates a job that purges orphaned table groups
// older than the given retention period.
func NewTableGroupPurgeJob(
	handler commands.PurgeOrphanedTableGroupsCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *TableGroupPurgeJob {
	return &TableGroupPurgeJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(),
		logger:    logger.With("component", "table_group_purge_job"),
	}
}

// Start begins the purge job to run at the start of every hour.
func (j *TableGroupPurgeJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewPurgeOrphanedTableGroupsCommand(time.Now().UTC().Add(-j.retention))
		if err != nil {
			j.logger.ErrorContext(ctx, "Table group purge job failed to build command", "error", err)
			return
		}

		purged, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Table group purge job failed", "error", err)
			return
		}

		if purged > 0 {
			j.logger.InfoContext(ctx, "Purged orphaned table groups", "count", purged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Table group purge job started (running hourly)")
	return nil
}

// Stop stops the purge job.
func (j *TableGroupPurgeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Table group purge job stopped")
}
