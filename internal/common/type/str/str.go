// Released under an MIT license. See LICENSE.

// Package str provides mel's string type.
package str

import (
	"strconv"

	"github.com/mel-lang/mel/internal/common"
	"github.com/mel-lang/mel/internal/common/interface/cell"
	"github.com/mel-lang/mel/internal/common/interface/literal"
)

const name = "string"

// T (str) wraps Go's string type.
type T string

type str = T

// New creates a new str cell.
func New(v string) cell.I {
	s := str(v)

	return &s
}

// The str type is a cell.

// Equal returns true if the cell c wraps the same string and false otherwise.
func (s *str) Equal(c cell.I) bool {
	return Is(c) && s.String() == To(c).String()
}

// Name returns the name of the str type.
func (s *str) Name() string {
	return name
}

// The str type has a literal representation.

// Literal returns the literal representation of the str s.
func (s *str) Literal() string {
	return strconv.Quote(string(*s))
}

// The str type is a stringer.

// String returns the text of the str s.
func (s *str) String() string {
	return string(*s)
}

// The two functions below could be generated for each type.

// Is returns true if c is a str.
func Is(c cell.I) bool {
	_, ok := c.(*str)

	return ok
}

// To returns a *T if c is a str; Otherwise it panics.
func To(c cell.I) *str {
	if t, ok := c.(*str); ok {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t str

	// The str type is a cell.
	_ = cell.I(&t)

	// The str type has a literal representation.
	_ = literal.I(&t)

	// The str type is a stringer.
	_ = common.Stringer(&t)
}
