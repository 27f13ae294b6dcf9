// Package guard detects values that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in commands and queries so that a zero value
// (built as a struct literal) fails validation before reaching a handler.
//
// Example:
//
//	var ErrTrackOrderQueryIsNotConstructed = errors.New("TrackOrderQuery must be created via NewTrackOrderQuery")
//
//	type TrackOrderQuery struct {
//	    orderNumber kernel.OrderNumber
//	    guard       guard.ConstructorGuard
//	}
//
//	func (q TrackOrderQuery) Validate() error {
//	    return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
