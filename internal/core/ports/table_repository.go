package ports

import (
	"context"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"
)

// OrderTableRepository defines the persistence contract for order table aggregates.
type OrderTableRepository interface {
	// Add persists a new order table aggregate to storage.
	Add(ctx context.Context, aggregate *table.OrderTable) error

	// Update persists changes to an existing order table aggregate.
	Update(ctx context.Context, aggregate *table.OrderTable) error

	// Get retrieves an order table aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*table.OrderTable, error)

	// GetAllByIDs retrieves the tables matching the given identifiers.
	// Returns only the tables that exist; callers detect missing tables
	// by comparing the result against the requested identifiers.
	GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*table.OrderTable, error)

	// GetAllByGroupID retrieves every table belonging to the given group.
	GetAllByGroupID(ctx context.Context, groupID kernel.UUID) ([]*table.OrderTable, error)

	// GetAll retrieves every registered order table.
	GetAll(ctx context.Context) ([]*table.OrderTable, error)
}

// TableGroupRepository defines the persistence contract for table group aggregates.
type TableGroupRepository interface {
	// Add persists a new table group aggregate to storage.
	Add(ctx context.Context, aggregate *table.TableGroup) error

	// Get retrieves a table group aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*table.TableGroup, error)

	// Delete removes a table group from storage.
	// Member tables are untouched; clearing their group reference is the
	// caller's responsibility within the same transaction.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteOrphaned removes groups created before the cutoff that no
	// table references anymore. Returns how many groups were removed.
	DeleteOrphaned(ctx context.Context, createdBefore time.Time) (int64, error)
}
