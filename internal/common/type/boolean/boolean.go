// Released under an MIT license. See LICENSE.

// Package boolean provides mel's boolean value type.
//
// False is the only false value in the language. Everything else,
// including zero and the empty list, is true.
package boolean

import (
	"github.com/mel-lang/mel/internal/common"
	"github.com/mel-lang/mel/internal/common/interface/cell"
	"github.com/mel-lang/mel/internal/common/interface/literal"
	"github.com/mel-lang/mel/internal/common/interface/truth"
)

const name = "boolean"

// T (boolean) wraps Go's bool type.
type T bool

type boolean = T

//nolint:gochecknoglobals
var (
	False = f()
	True  = t()
)

// Bool returns the shared boolean cell for the bool b.
func Bool(b bool) cell.I {
	if b {
		return True
	}

	return False
}

// Spelled returns the boolean cell spelled s, if there is one.
func Spelled(s string) (cell.I, bool) {
	switch s {
	case "#t":
		return True, true
	case "#f":
		return False, true
	}

	return nil, false
}

// The boolean type is a cell.

// Equal returns true if c is a boolean with a matching value.
func (b *boolean) Equal(c cell.I) bool {
	return Is(c) && *b == *To(c)
}

// Name returns the type name for the boolean b.
func (b *boolean) Name() string {
	return name
}

// The boolean type has a literal representation.

// Literal returns the literal representation of the boolean b.
func (b *boolean) Literal() string {
	if bool(*b) {
		return "#t"
	}

	return "#f"
}

// The boolean type is a stringer.

// String returns the text of the boolean b.
func (b *boolean) String() string {
	return b.Literal()
}

// The boolean type has a truth value.

// Bool returns the value of the boolean b as a bool.
func (b *boolean) Bool() bool {
	return bool(*b)
}

func f() cell.I {
	b := boolean(false)

	return &b
}

func t() cell.I {
	b := boolean(true)

	return &b
}

// The two functions below could be generated for each type.

// Is returns true if c is a boolean.
func Is(c cell.I) bool {
	_, ok := c.(*boolean)

	return ok
}

// To returns a *T if c is a boolean; Otherwise it panics.
func To(c cell.I) *boolean {
	if t, ok := c.(*boolean); ok {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t boolean

	// The boolean type is a cell.
	_ = cell.I(&t)

	// The boolean type has a literal representation.
	_ = literal.I(&t)

	// The boolean type is a stringer.
	_ = common.Stringer(&t)

	// The boolean type has a truth value.
	_ = truth.I(&t)
}
