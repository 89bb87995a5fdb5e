// Package guard implements the constructor-guard pattern used by value
// objects, commands and queries to reject zero-value instances that bypassed
// their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is provided and the object was not constructed properly.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes objects built through their designated
// constructor from zero values. Embedding a guard in a struct and checking it
// in Validate keeps invariants intact even when callers hand us structs they
// assembled by hand.
//
// Example usage:
//
//	var ErrCartLineNotConstructed = errors.New("Line must be created via NewLine")
//
//	type Line struct {
//	    menuItemID kernel.UUID
//	    quantity   int
//	    guard      guard.ConstructorGuard
//	}
//
//	func NewLine(menuItemID kernel.UUID, quantity int) (Line, error) {
//	    // validate...
//	    return Line{menuItemID: menuItemID, quantity: quantity, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (l Line) Validate() error {
//	    return l.guard.Validate(ErrCartLineNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it only from constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for properly constructed objects. For zero-value
// guards it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
