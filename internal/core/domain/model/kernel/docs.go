// Package kernel provides core domain primitives shared by every aggregate
// of the point-of-sale domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Price: A non-negative monetary amount held in minor currency units
//   - Quantity: A non-negative count of products or menus within a line
//
// These primitives enforce domain invariants at construction time, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
