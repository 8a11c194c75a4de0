// Package guard provides the ConstructorGuard pattern used to ensure that
// domain objects, commands, and queries are only created through their
// designated constructor functions, never as bare zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// was not constructed and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects zero-value instantiation of value types.
// Embed one in a struct and set it via NewConstructorGuard inside the
// constructor; Validate then distinguishes constructed instances from
// zero values.
//
// Example:
//
//	type ChangeEmptyCommand struct {
//	    tableID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewChangeEmptyCommand(tableID kernel.UUID) (ChangeEmptyCommand, error) {
//	    ...
//	    return ChangeEmptyCommand{tableID: tableID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c ChangeEmptyCommand) Validate() error {
//	    return c.guard.Validate(ErrChangeEmptyCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its holder as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
