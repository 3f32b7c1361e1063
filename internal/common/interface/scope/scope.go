// Released under an MIT license. See LICENSE.

// Package scope defines the interface for mel's environment chain.
package scope

import (
	"github.com/mel-lang/mel/internal/common/interface/cell"
	"github.com/mel-lang/mel/internal/common/interface/reference"
)

// I (scope) is one frame in a chain of name to value bindings.
//
// Bind always installs a fresh slot in this frame, shadowing any binding
// for the same name in an enclosing frame. Define overwrites this frame's
// slot in place when the name is already bound here and otherwise adds a
// new slot to this frame. Neither ever touches an enclosing frame.
type I interface {
	cell.I

	Bind(k string, v cell.I)
	Define(k string, v cell.I)
	Enclosing() I
	Lookup(k string) reference.I
}

type scope = I

// Is returns true if c is a scope.
func Is(c cell.I) bool {
	_, ok := c.(scope)

	return ok
}

// To returns a scope if c is a scope; Otherwise it panics.
func To(c cell.I) scope {
	if t, ok := c.(scope); ok {
		return t
	}

	panic(c.Name() + " cannot be used in an environment context")
}
