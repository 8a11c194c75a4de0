package kernel

import (
	"fmt"

	"kitchenpos/internal/pkg/errs"
)

// Price is a monetary amount held in minor currency units (e.g. cents).
// Price is a value object: it is immutable and always non-negative.
// The zero value is a valid zero price.
type Price struct {
	minorUnits int64
}

// NewPrice creates a Price from an amount in minor currency units.
// Negative amounts are rejected.
func NewPrice(minorUnits int64) (Price, error) {
	if minorUnits < 0 {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%d is negative", minorUnits),
		)
	}
	return Price{minorUnits: minorUnits}, nil
}

// MinorUnits returns the amount in minor currency units.
func (p Price) MinorUnits() int64 {
	return p.minorUnits
}

// Multiply returns the price scaled by a quantity, as when pricing
// a (product, quantity) line of a menu composition.
func (p Price) Multiply(q Quantity) Price {
	return Price{minorUnits: p.minorUnits * q.Value()}
}

// Add returns the sum of two prices.
func (p Price) Add(other Price) Price {
	return Price{minorUnits: p.minorUnits + other.minorUnits}
}

// IsGreaterThan reports whether p exceeds other.
func (p Price) IsGreaterThan(other Price) bool {
	return p.minorUnits > other.minorUnits
}

// IsEqual reports whether two prices represent the same amount.
func (p Price) IsEqual(other Price) bool {
	return p.minorUnits == other.minorUnits
}

// String renders the amount in minor units, for error messages and logs.
func (p Price) String() string {
	return fmt.Sprintf("%d", p.minorUnits)
}
