package product

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product represents a purchasable item in the point-of-sale system.
// It is an aggregate root holding the product's identity, display name, and
// unit price in minor currency units.
//
// Business rules:
//   - Product must have a valid UUID and a non-empty name
//   - Price is non-negative (enforced by kernel.Price)
//   - Products do not change after being referenced by a menu; menus capture
//     the price as a snapshot during their own validation
type Product struct {
	id    kernel.UUID
	name  string
	price kernel.Price

	guard guard.ConstructorGuard
}

// NewProduct creates a new Product with the given identity, name, and price.
// This is the only way to create a valid Product instance; it is also used to
// rehydrate products from persistence since a product carries no further state.
func NewProduct(id kernel.UUID, name string, price kernel.Price) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product instance was properly constructed through NewProduct.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the product's unit price.
func (p *Product) Price() kernel.Price {
	return p.price
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Price) error {
	p.price = price
	return nil
}
