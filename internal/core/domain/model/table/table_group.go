package table

import (
	"errors"
	"fmt"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

const minGroupSize = 2

var (
	// ErrTableGroupIsNotConstructed is returned when using an improperly initialized TableGroup.
	ErrTableGroupIsNotConstructed = errors.New("TableGroup must be created via NewTableGroup or RestoreTableGroup constructor")
	// ErrNotEnoughTables is returned when grouping fewer than two tables.
	ErrNotEnoughTables = errors.New("table group requires at least two tables")
	// ErrTableNotAvailableForGrouping is returned when a grouping candidate
	// is occupied or already belongs to another group.
	ErrTableNotAvailableForGrouping = errors.New("table is not empty or already grouped")
)

// TableGroup combines two or more tables into one seating unit for shared
// billing. The group holds member table identifiers only; the member tables
// carry the back reference and continue to exist independently after
// ungrouping. Membership is a set: enumeration order carries no meaning.
type TableGroup struct {
	id            kernel.UUID
	createdAt     time.Time
	orderTableIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewTableGroup creates a group over the given tables and binds every member
// to it as a side effect: each member's group reference is set and its
// occupancy forced to occupied, since grouped tables are in use as a combined
// seating unit.
//
// Every candidate must be empty and ungrouped; the caller is responsible for
// resolving the candidate identifiers to tables beforehand (duplicate or
// unknown identifiers surface there as a count mismatch). On any violation no
// table is mutated.
func NewTableGroup(id kernel.UUID, tables []*OrderTable, now time.Time) (*TableGroup, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if len(tables) < minGroupSize {
		return nil, fmt.Errorf("%d table(s) given: %w", len(tables), ErrNotEnoughTables)
	}

	for _, t := range tables {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if !t.IsEmpty() || t.IsGrouped() {
			return nil, fmt.Errorf("table %s: %w", t.ID(), ErrTableNotAvailableForGrouping)
		}
	}

	group := &TableGroup{
		id:        id,
		createdAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	for _, t := range tables {
		t.joinGroup(id)
		group.orderTableIDs = append(group.orderTableIDs, t.ID())
	}

	return group, nil
}

// RestoreTableGroup reconstructs a TableGroup from persistent storage.
func RestoreTableGroup(id kernel.UUID, createdAt time.Time, orderTableIDs []kernel.UUID) (*TableGroup, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	for _, tableID := range orderTableIDs {
		if err := tableID.Validate(); err != nil {
			return nil, err
		}
	}

	group := &TableGroup{
		id:        id,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}
	group.orderTableIDs = make([]kernel.UUID, len(orderTableIDs))
	copy(group.orderTableIDs, orderTableIDs)

	return group, nil
}

// Validate ensures the TableGroup was properly constructed.
func (g *TableGroup) Validate() error {
	if g == nil {
		return ErrTableGroupIsNotConstructed
	}
	return g.guard.Validate(ErrTableGroupIsNotConstructed)
}

// ID returns the group's unique identifier.
func (g *TableGroup) ID() kernel.UUID {
	return g.id
}

// CreatedAt returns the group's creation timestamp.
func (g *TableGroup) CreatedAt() time.Time {
	return g.createdAt
}

// OrderTableIDs returns the member table identifiers.
// The returned slice is a copy; mutating it does not affect the group.
func (g *TableGroup) OrderTableIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(g.orderTableIDs))
	copy(ids, g.orderTableIDs)
	return ids
}
