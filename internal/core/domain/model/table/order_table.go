package table

import (
	"errors"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var (
	// ErrOrderTableIsNotConstructed is returned when using an improperly initialized OrderTable.
	ErrOrderTableIsNotConstructed = errors.New("OrderTable must be created via NewOrderTable or RestoreOrderTable constructor")
	// ErrTableGrouped is returned when toggling occupancy on a table that
	// belongs to a table group. The group must be ungrouped first.
	ErrTableGrouped = errors.New("table belongs to a table group")
	// ErrTableIsEmpty is returned when an operation requires an occupied
	// table: changing the guest count, or opening an order.
	ErrTableIsEmpty = errors.New("order table is empty")
)

// OrderTable represents a physical seating unit with occupancy state.
//
// Business rules:
//   - Guest count is never negative
//   - A grouped table cannot toggle its occupancy flag independently
//   - Guest count changes require an occupied table
//   - Occupancy and guest count are independent toggles with no coupling
type OrderTable struct {
	id             kernel.UUID
	numberOfGuests int
	empty          bool
	tableGroupID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewOrderTable creates a new ungrouped OrderTable, either empty or occupied.
func NewOrderTable(id kernel.UUID, numberOfGuests int, empty bool) (*OrderTable, error) {
	t := &OrderTable{
		empty: empty,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setNumberOfGuests(numberOfGuests),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreOrderTable reconstructs an OrderTable from persistent storage,
// including its group reference.
func RestoreOrderTable(id kernel.UUID, numberOfGuests int, empty bool, tableGroupID *kernel.UUID) (*OrderTable, error) {
	t, err := NewOrderTable(id, numberOfGuests, empty)
	if err != nil {
		return nil, err
	}

	if tableGroupID != nil {
		if err := tableGroupID.Validate(); err != nil {
			return nil, err
		}
		groupID := *tableGroupID
		t.tableGroupID = &groupID
	}

	return t, nil
}

// Validate ensures the OrderTable was properly constructed.
func (t *OrderTable) Validate() error {
	if t == nil {
		return ErrOrderTableIsNotConstructed
	}
	return t.guard.Validate(ErrOrderTableIsNotConstructed)
}

// IsEqual compares two tables by their unique identifiers.
func (t *OrderTable) IsEqual(other *OrderTable) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the table's unique identifier.
func (t *OrderTable) ID() kernel.UUID {
	return t.id
}

// NumberOfGuests returns the current guest count.
func (t *OrderTable) NumberOfGuests() int {
	return t.numberOfGuests
}

// IsEmpty reports whether the table is unoccupied.
func (t *OrderTable) IsEmpty() bool {
	return t.empty
}

// IsGrouped reports whether the table belongs to a table group.
func (t *OrderTable) IsGrouped() bool {
	return t.tableGroupID != nil
}

// TableGroupID returns the identifier of the group the table belongs to,
// or nil when the table is ungrouped.
func (t *OrderTable) TableGroupID() *kernel.UUID {
	if t.tableGroupID == nil {
		return nil
	}
	groupID := *t.tableGroupID
	return &groupID
}

// ChangeEmpty toggles the occupancy flag.
// Fails with ErrTableGrouped while the table belongs to a group,
// regardless of the requested value. Guest count is left untouched.
func (t *OrderTable) ChangeEmpty(empty bool) error {
	if t.tableGroupID != nil {
		return fmt.Errorf("table %s: %w", t.id, ErrTableGrouped)
	}
	t.empty = empty
	return nil
}

// ChangeNumberOfGuests sets the guest count.
// Negative counts are rejected; so is any count while the table is empty,
// since a guest count is meaningless on an unoccupied table.
func (t *OrderTable) ChangeNumberOfGuests(numberOfGuests int) error {
	if numberOfGuests < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"numberOfGuests",
			fmt.Errorf("%d is negative", numberOfGuests),
		)
	}
	if t.empty {
		return fmt.Errorf("table %s: %w", t.id, ErrTableIsEmpty)
	}
	t.numberOfGuests = numberOfGuests
	return nil
}

// LeaveGroup clears the table's group reference. The occupancy flag keeps
// its current value; from this point it is the table's own independent state.
func (t *OrderTable) LeaveGroup() {
	t.tableGroupID = nil
}

// joinGroup binds the table to a group and marks it occupied: grouped tables
// are in use as a combined seating unit. Only NewTableGroup calls this, after
// checking the table was empty and ungrouped.
func (t *OrderTable) joinGroup(groupID kernel.UUID) {
	t.tableGroupID = &groupID
	t.empty = false
}

func (t *OrderTable) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *OrderTable) setNumberOfGuests(numberOfGuests int) error {
	if numberOfGuests < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"numberOfGuests",
			fmt.Errorf("%d is negative", numberOfGuests),
		)
	}
	t.numberOfGuests = numberOfGuests
	return nil
}
