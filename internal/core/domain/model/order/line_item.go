package order

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

// ErrOrderLineItemIsNotConstructed is returned when using an improperly initialized OrderLineItem.
var ErrOrderLineItemIsNotConstructed = errors.New("OrderLineItem must be created via NewOrderLineItem constructor")

// OrderLineItem is a (menu, quantity) entry within an order. The quantity is
// copied verbatim from the request at order creation time and stays
// independent of later menu changes; the line references a menu by identifier
// only, never a price.
type OrderLineItem struct {
	menuID   kernel.UUID
	quantity kernel.Quantity

	guard guard.ConstructorGuard
}

// NewOrderLineItem creates a line item referencing a menu by identifier.
func NewOrderLineItem(menuID kernel.UUID, quantity kernel.Quantity) (*OrderLineItem, error) {
	if err := menuID.Validate(); err != nil {
		return nil, err
	}

	return &OrderLineItem{
		menuID:   menuID,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the OrderLineItem was properly constructed.
func (li *OrderLineItem) Validate() error {
	if li == nil {
		return ErrOrderLineItemIsNotConstructed
	}
	return li.guard.Validate(ErrOrderLineItemIsNotConstructed)
}

// MenuID returns the identifier of the referenced menu.
func (li *OrderLineItem) MenuID() kernel.UUID {
	return li.menuID
}

// Quantity returns how many units of the menu were ordered.
func (li *OrderLineItem) Quantity() kernel.Quantity {
	return li.quantity
}
