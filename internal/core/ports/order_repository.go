package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is stored together with its line items.
type OrderRepository interface {
	// Add persists a new order aggregate with its line items to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByTableIDs retrieves every order placed against any of the
	// given tables. Used to check for active orders before freeing or
	// ungrouping tables.
	GetAllByTableIDs(ctx context.Context, tableIDs []kernel.UUID) ([]*order.Order, error)

	// GetAll retrieves every order with its line items.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
