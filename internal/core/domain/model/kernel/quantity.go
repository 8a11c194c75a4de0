package kernel

import (
	"fmt"

	"kitchenpos/internal/pkg/errs"
)

// Quantity is a non-negative count of products within a menu line or menus
// within an order line. Quantities are fixed at the time the owning line is
// created and never re-validated afterwards.
type Quantity struct {
	value int64
}

// NewQuantity creates a Quantity. Negative counts are rejected;
// zero is allowed.
func NewQuantity(value int64) (Quantity, error) {
	if value < 0 {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is negative", value),
		)
	}
	return Quantity{value: value}, nil
}

// Value returns the count.
func (q Quantity) Value() int64 {
	return q.value
}

// IsEqual reports whether two quantities represent the same count.
func (q Quantity) IsEqual(other Quantity) bool {
	return q.value == other.value
}

// String renders the count, for error messages and logs.
func (q Quantity) String() string {
	return fmt.Sprintf("%d", q.value)
}
