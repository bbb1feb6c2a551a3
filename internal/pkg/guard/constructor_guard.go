// Package guard provides a small helper for enforcing constructor usage
// on value objects and commands. A zero-value guard fails validation,
// so any object holding a guard must be created through its constructor
// to be considered valid.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guard is a
// zero value and no custom error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed.
// Embed it as a private field and set it with NewConstructorGuard inside
// the constructor; the zero value reports the object as not constructed.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guard was created via NewConstructorGuard.
// For a zero-value guard it returns customErr, or ErrDefaultConstructorGuard
// when customErr is nil.
func (g ConstructorGuard) Validate(customErr error) error {
	if g.isConstructed {
		return nil
	}
	if customErr != nil {
		return customErr
	}
	return ErrDefaultConstructorGuard
}
