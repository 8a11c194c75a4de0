// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the point-of-sale system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - TableUngrouper: A domain service for dissolving table groups while
//     respecting active orders on the member tables
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
