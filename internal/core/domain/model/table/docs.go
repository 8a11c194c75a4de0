// Package table contains the OrderTable aggregate and the TableGroup aggregate.
//
// An OrderTable is a physical seating unit with an independent occupancy flag
// and guest count. The two do not couple: clearing a table does not reset its
// guest count, and changing the guest count does not touch the flag.
//
// A TableGroup combines two or more empty, ungrouped tables into one seating
// unit for shared billing. Joining a group marks every member occupied and
// sets its group reference; while grouped, a table cannot toggle its
// occupancy on its own. Ungrouping is handled by the TableGroupingService
// domain service because it must consult order state across member tables.
package table
