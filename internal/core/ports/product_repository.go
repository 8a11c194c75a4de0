// Package ports defines repository interfaces for the point-of-sale domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	// The product must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAllByIDs retrieves the products matching the given identifiers.
	// Returns only the products that exist; callers detect missing products
	// by comparing the result against the requested identifiers.
	GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)

	// GetAll retrieves every registered product.
	GetAll(ctx context.Context) ([]*product.Product, error)
}
