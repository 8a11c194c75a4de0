package tablegrouprepo

import (
	"context"
	"errors"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTableGroupRepository implements TableGroupRepository using GORM.
type GormTableGroupRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTableGroupRepository creates a new GORM table group repository.
func NewGormTableGroupRepository(db *gorm.DB, tracker aggregateTracker) *GormTableGroupRepository {
	return &GormTableGroupRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new table group to the database.
func (r *GormTableGroupRepository) Add(ctx context.Context, aggregate *table.TableGroup) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a table group by ID. Membership is reconstructed from
// the table_group_id column of order_tables.
func (r *GormTableGroupRepository) Get(ctx context.Context, id kernel.UUID) (*table.TableGroup, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TableGroupDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tableGroup", id.String())
		}
		return nil, err
	}

	var memberIDs []uuid.UUID
	err := r.db.WithContext(ctx).
		Table("order_tables").
		Where("table_group_id = ?", id.Bytes()).
		Pluck("id", &memberIDs).Error
	if err != nil {
		return nil, err
	}

	tableIDs := make([]kernel.UUID, 0, len(memberIDs))
	for _, memberID := range memberIDs {
		tableID, err := kernel.UUIDFromBytes(memberID[:])
		if err != nil {
			return nil, err
		}
		tableIDs = append(tableIDs, tableID)
	}

	return table.RestoreTableGroup(id, dto.CreatedAt, tableIDs)
}

// Delete removes a table group by ID.
func (r *GormTableGroupRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&TableGroupDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("tableGroup", id.String())
	}

	return nil
}

// DeleteOrphaned removes table groups created before the given time that
// no order table references anymore, returning the number of deleted rows.
func (r *GormTableGroupRepository) DeleteOrphaned(ctx context.Context, createdBefore time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", createdBefore).
		Where("id NOT IN (?)", r.db.
			Table("order_tables").
			Select("table_group_id").
			Where("table_group_id IS NOT NULL")).
		Delete(&TableGroupDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
