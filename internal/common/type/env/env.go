// Released under an MIT license. See LICENSE.

// Package env provides mel's environment type.
//
// An environment is a chain of frames. Each frame maps names to slots.
// Frames are shared by reference: a closure holds the frame that was
// current when its lambda was evaluated, so a frame stays reachable for
// as long as the longest-lived closure or pending evaluation that can
// see it. Nothing ever destroys a frame; unreachable frames are
// reclaimed by the collector.
package env

import (
	"github.com/mel-lang/mel/internal/common/interface/cell"
	"github.com/mel-lang/mel/internal/common/interface/reference"
	"github.com/mel-lang/mel/internal/common/interface/scope"
	"github.com/mel-lang/mel/internal/common/struct/hash"
)

const name = "environment"

// T (env) is one frame in a chain of name to value bindings.
type T struct {
	previous scope.I
	frame    *hash.T
}

type env = T

// New creates a new, empty frame chained to previous.
// Previous may be nil for the root frame.
func New(previous scope.I) scope.I {
	return &env{
		previous: previous,
		frame:    hash.New(),
	}
}

// The env type is a cell.

// Equal returns true if c is the same env as e.
func (e *env) Equal(c cell.I) bool {
	return Is(c) && e == To(c)
}

// Name returns the type name for the env e.
func (e *env) Name() string {
	return name
}

// The env type is a scope.

// Bind installs a fresh slot for the name k in the frame e. Any binding
// for k in an enclosing frame is shadowed, never modified. Used for
// parameters and for let-introduced bindings.
func (e *env) Bind(k string, v cell.I) {
	e.frame.Set(k, v)
}

// Define overwrites the slot for the name k in place when k is already
// bound in the frame e itself, so that every closure sharing this frame
// observes the new value. Otherwise it adds a new slot to this frame.
// Bindings in enclosing frames are never consulted and never modified.
func (e *env) Define(k string, v cell.I) {
	if r := e.frame.Get(k); r != nil {
		r.Set(v)

		return
	}

	e.frame.Set(k, v)
}

// Enclosing returns the enclosing scope, nil for the root frame.
func (e *env) Enclosing() scope.I {
	return e.previous
}

// Lookup walks the chain from the frame e outward and returns the first
// reference for the name k, or nil if no frame binds k.
func (e *env) Lookup(k string) reference.I {
	if e == nil {
		return nil
	}

	v := e.frame.Get(k)

	if v == nil && e.previous != nil {
		v = e.previous.Lookup(k)
	}

	return v
}

// The two functions below could be generated for each type.

// Is returns true if c is an env.
func Is(c cell.I) bool {
	_, ok := c.(*env)

	return ok
}

// To returns a *T if c is an env; Otherwise it panics.
func To(c cell.I) *env {
	if t, ok := c.(*env); ok {
		return t
	}

	panic("not an " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t env

	// The env type is a cell.
	_ = cell.I(&t)

	// The env type is a scope.
	_ = scope.I(&t)
}
