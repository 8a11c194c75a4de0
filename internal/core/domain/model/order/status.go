package order

import (
	"errors"
	"fmt"

	"kitchenpos/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions:
//
//	Cooking ──> Meal ──> Completion
//
// Transitions move forward or stay in place; skipping ahead (Cooking to
// Completion) is allowed, moving backwards is not, and Completion is a
// terminal state that accepts no further transitions.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Cooking is the initial status when an order is first created.
	// The kitchen is preparing the ordered items.
	Cooking

	// Meal indicates the prepared items were served and the meal is in progress.
	Meal

	// Completion indicates the order is finished.
	// This is a terminal state with no further transitions allowed.
	Completion
)

var (
	// ErrOrderAlreadyCompleted is returned when changing the status of an
	// order that already reached Completion.
	ErrOrderAlreadyCompleted = errors.New("order is already completed")
	// ErrStatusMovesBackwards is returned when a requested transition would
	// regress the order lifecycle.
	ErrStatusMovesBackwards = errors.New("order status cannot move backwards")
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Cooking:    "COOKING",
		Meal:       "MEAL",
		Completion: "COMPLETION",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Cooking:    "COOKING",
		Meal:       "MEAL",
		Completion: "COMPLETION",
	}
}

// StatusFromString parses a status name as received from the outside world.
// An unrecognized name fails with a value-is-invalid violation.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"order status",
		fmt.Errorf("%q is not a valid status name", name),
	)
}

// Validate checks if the Status value is one of Cooking, Meal, Completion.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the status name in its wire form ("COOKING", "MEAL",
// "COMPLETION"), or "UNKNOWN" for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsActive reports whether the order is still in service (Cooking or Meal).
// Active orders block ungrouping of the table group their table belongs to.
func (s Status) IsActive() bool {
	return s == Cooking || s == Meal
}

// ChangeTo validates a transition from s to target and returns the new status.
//
// Rules:
//   - Completion accepts no transition (ErrOrderAlreadyCompleted)
//   - target must be a valid status value
//   - target must not precede s (ErrStatusMovesBackwards); forward-or-equal
//     is accepted, including Cooking straight to Completion
func (s Status) ChangeTo(target Status) (Status, error) {
	if s == Completion {
		return 0, ErrOrderAlreadyCompleted
	}
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if target < s {
		return 0, fmt.Errorf("%s to %s: %w", s, target, ErrStatusMovesBackwards)
	}
	return target, nil
}
