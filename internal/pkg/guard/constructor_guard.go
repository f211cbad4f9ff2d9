// Package guard enforces constructor usage for domain objects.
//
// A zero-value struct bypasses every invariant its constructor checks.
// Embedding a ConstructorGuard and validating it catches such values at
// the first boundary they cross.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no custom error
// is supplied for a zero-value guard.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been built by its constructor.
// The zero value is invalid; obtain one via NewConstructorGuard.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard creates a properly constructed guard.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns err, or ErrDefaultConstructorGuard when err is nil.
func (g ConstructorGuard) Validate(err error) error {
	if g.constructed {
		return nil
	}
	if err == nil {
		return ErrDefaultConstructorGuard
	}
	return err
}
