package menu

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

// ErrMenuProductIsNotConstructed is returned when using an improperly initialized MenuProduct.
var ErrMenuProductIsNotConstructed = errors.New("MenuProduct must be created via NewMenuProduct constructor")

// MenuProduct is one line of a menu's composition: a product reference with
// the quantity of that product included in the menu. The quantity is fixed
// when the menu is created.
type MenuProduct struct {
	productID kernel.UUID
	quantity  kernel.Quantity

	guard guard.ConstructorGuard
}

// NewMenuProduct creates a composition line referencing a product by identifier.
func NewMenuProduct(productID kernel.UUID, quantity kernel.Quantity) (*MenuProduct, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}

	return &MenuProduct{
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the MenuProduct was properly constructed through NewMenuProduct.
func (mp *MenuProduct) Validate() error {
	if mp == nil {
		return ErrMenuProductIsNotConstructed
	}
	return mp.guard.Validate(ErrMenuProductIsNotConstructed)
}

// ProductID returns the identifier of the referenced product.
func (mp *MenuProduct) ProductID() kernel.UUID {
	return mp.productID
}

// Quantity returns how many units of the product the line contributes.
func (mp *MenuProduct) Quantity() kernel.Quantity {
	return mp.quantity
}
