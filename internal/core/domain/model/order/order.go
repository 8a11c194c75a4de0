package order

import (
	"errors"
	"fmt"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when using an improperly initialized Order.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
	// ErrNoOrderLineItems is returned when creating an order without line items.
	ErrNoOrderLineItems = errors.New("order requires at least one line item")
	// ErrDuplicateMenu is returned when two line items reference the same menu.
	ErrDuplicateMenu = errors.New("order line items must reference distinct menus")
)

// Order represents a customer's request for menu items against an occupied
// table. It is the aggregate root that owns its line items and manages the
// lifecycle status from Cooking through Meal to Completion.
//
// Business rules:
//   - The target table must be occupied at creation time
//   - At least one line item, each referencing a distinct menu
//   - Line-item quantities are fixed at creation and never re-validated
//     against the menu composition
//   - Status moves forward only; Completion is terminal
//
// The table is referenced by identifier only; the aggregate holds no
// navigable table object.
type Order struct {
	id           kernel.UUID
	orderTableID kernel.UUID
	status       Status
	orderedAt    time.Time
	lineItems    []*OrderLineItem

	guard guard.ConstructorGuard
}

// NewOrder opens an order in Cooking status against the given table.
//
// The caller supplies the already-fetched table so the occupancy check stays
// pure; an empty table fails with table.ErrTableIsEmpty. Line items are
// copied verbatim. Whether every referenced menu actually exists is checked
// by the caller against the menu store before calling NewOrder.
func NewOrder(id kernel.UUID, orderTable *table.OrderTable, lineItems []*OrderLineItem, now time.Time) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderTable.Validate(); err != nil {
		return nil, err
	}
	if err := validateLineItems(lineItems); err != nil {
		return nil, err
	}
	if orderTable.IsEmpty() {
		return nil, fmt.Errorf("table %s: %w", orderTable.ID(), table.ErrTableIsEmpty)
	}

	o := &Order{
		id:           id,
		orderTableID: orderTable.ID(),
		status:       Cooking,
		orderedAt:    now,
		guard:        guard.NewConstructorGuard(),
	}
	o.lineItems = make([]*OrderLineItem, len(lineItems))
	copy(o.lineItems, lineItems)

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// The table occupancy check is skipped: it held at creation time and the
// table's occupancy is independent state from that point on.
func RestoreOrder(
	id kernel.UUID,
	orderTableID kernel.UUID,
	status Status,
	orderedAt time.Time,
	lineItems []*OrderLineItem,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderTableID.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := validateLineItems(lineItems); err != nil {
		return nil, err
	}

	o := &Order{
		id:           id,
		orderTableID: orderTableID,
		status:       status,
		orderedAt:    orderedAt,
		guard:        guard.NewConstructorGuard(),
	}
	o.lineItems = make([]*OrderLineItem, len(lineItems))
	copy(o.lineItems, lineItems)

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderTableID returns the identifier of the table the order was opened against.
func (o *Order) OrderTableID() kernel.UUID {
	return o.orderTableID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// OrderedAt returns the order's creation timestamp.
func (o *Order) OrderedAt() time.Time {
	return o.orderedAt
}

// LineItems returns the order's line items.
// The returned slice is a copy; mutating it does not affect the order.
func (o *Order) LineItems() []*OrderLineItem {
	items := make([]*OrderLineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// IsActive reports whether the order is still in service (Cooking or Meal).
func (o *Order) IsActive() bool {
	return o.status.IsActive()
}

// ChangeStatus advances the order lifecycle to target, subject to the
// Status state machine: Completion is terminal and regression is rejected.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.ChangeTo(target)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

func validateLineItems(lineItems []*OrderLineItem) error {
	if len(lineItems) == 0 {
		return ErrNoOrderLineItems
	}

	seen := make(map[kernel.UUID]struct{}, len(lineItems))
	for _, li := range lineItems {
		if err := li.Validate(); err != nil {
			return err
		}
		if _, dup := seen[li.MenuID()]; dup {
			return fmt.Errorf("menu %s: %w", li.MenuID(), ErrDuplicateMenu)
		}
		seen[li.MenuID()] = struct{}{}
	}
	return nil
}
