// Package order provides domain entities and business logic for customer
// orders in the point-of-sale system. It implements the Order aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root owning its line items and lifecycle state
//   - OrderLineItem: A (menu, quantity) entry fixed at order creation time
//   - Status: A state machine over Cooking -> Meal -> Completion
//
// Key business rules:
//   - Orders must reference an occupied table and carry at least one line item
//   - Line items must reference distinct menus
//   - Status moves forward only; Completion is terminal
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
