package services

import (
	"errors"
	"fmt"

	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/table"
)

// ErrActiveOrderInGroup is returned when a table group cannot be dissolved
// because at least one of its member tables still has an order in the
// Cooking or Meal status.
var ErrActiveOrderInGroup = errors.New("table group has tables with active orders")

// TableUngrouper is a domain service responsible for dissolving a table group.
//
// Business rules:
//   - A group can only be dissolved when none of its member tables has an
//     order in an active (Cooking or Meal) status
//   - Member tables keep their occupancy and guest count; only the group
//     membership is cleared
//   - Dissolution is all-or-nothing: no table is mutated if any check fails
//
// Example usage:
//
//	ungrouper := NewTableUngrouper()
//	if err := ungrouper.Ungroup(group, tables, orders); err != nil {
//	    // group stays intact
//	    return err
//	}
//	// tables are now free to be grouped or emptied individually
type TableUngrouper struct{}

// NewTableUngrouper creates a new TableUngrouper instance.
func NewTableUngrouper() TableUngrouper {
	return TableUngrouper{}
}

// Ungroup clears the group membership of every table in the group.
//
// The caller supplies the group's member tables and every order placed
// against those tables; an order in Cooking or Meal status blocks the whole
// operation with ErrActiveOrderInGroup. On success each table's group
// reference is cleared and the caller is expected to persist the tables and
// delete the group within one transaction.
func (u TableUngrouper) Ungroup(group *table.TableGroup, tables []*table.OrderTable, orders []*order.Order) error {
	if err := group.Validate(); err != nil {
		return err
	}

	for _, t := range tables {
		if err := t.Validate(); err != nil {
			return err
		}
	}

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return err
		}
		if o.IsActive() {
			return fmt.Errorf("order %s is %s: %w", o.ID(), o.Status(), ErrActiveOrderInGroup)
		}
	}

	for _, t := range tables {
		t.LeaveGroup()
	}

	return nil
}
