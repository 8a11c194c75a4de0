package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
)

// MenuGroupRepository defines the persistence contract for menu group aggregates.
type MenuGroupRepository interface {
	// Add persists a new menu group aggregate to storage.
	Add(ctx context.Context, aggregate *menu.MenuGroup) error

	// Get retrieves a menu group aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuGroup, error)

	// GetAll retrieves every registered menu group.
	GetAll(ctx context.Context) ([]*menu.MenuGroup, error)
}

// MenuRepository defines the persistence contract for menu aggregates.
// A menu is stored together with its menu product lines.
type MenuRepository interface {
	// Add persists a new menu aggregate with its product lines to storage.
	Add(ctx context.Context, aggregate *menu.Menu) error

	// Get retrieves a menu aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error)

	// CountByIDs counts how many of the given menu identifiers exist.
	// Used to verify that every menu referenced by an order is registered.
	CountByIDs(ctx context.Context, ids []kernel.UUID) (int64, error)

	// GetAll retrieves every registered menu with its product lines.
	GetAll(ctx context.Context) ([]*menu.Menu, error)
}
