// Released under an MIT license. See LICENSE.

// Package sym provides mel's symbol cell type.
package sym

import (
	"github.com/michaelmacinnis/adapted"

	"github.com/mel-lang/mel/internal/common"
	"github.com/mel-lang/mel/internal/common/interface/cell"
	"github.com/mel-lang/mel/internal/common/interface/literal"
)

const (
	name  = "symbol"
	short = 3
)

// T (sym) wraps Go's string type. Short and common strings are interned.
type T string

type sym = T

// Unit is the result of expressions that exist only for their effect,
// like define, and of an if with no alternative and a false condition.
var Unit cell.I //nolint:gochecknoglobals

// New creates a sym cell.
func New(v string) cell.I {
	return symnew(v)
}

// The sym type is a cell.

// Equal returns true if c is a sym that wraps the same string.
func (s *sym) Equal(c cell.I) bool {
	return Is(c) && s.String() == To(c).String()
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return name
}

// The sym type has a literal representation.

// Literal returns the literal representation of the sym s.
func (s *sym) Literal() string {
	return repr(string(*s))
}

// The sym type is a stringer.

// String returns the text of the sym s.
func (s *sym) String() string {
	return string(*s)
}

//nolint:gochecknoglobals
var cache = map[string]*sym{}

func init() { //nolint:gochecknoinits
	v := "nil"
	s := sym(v)

	Unit = &s
	cache[v] = &s
}

func meta(s string) string {
	return "(|" + name + " " + s + "|)"
}

// repr returns s unless it contains characters that would confuse the
// reader, in which case an unambiguous form is returned.
func repr(s string) string {
	q := adapted.CanonicalString(s)

	if len(s) == 0 {
		return meta(q)
	}

	for _, r := range s {
		if r == ' ' || r == '(' || r == ')' || r == ';' || r == '"' {
			return meta(q)
		}
	}

	if q[2:len(q)-1] != s {
		return meta(q)
	}

	return s
}

func symnew(v string) *sym {
	p, ok := cache[v]
	if ok {
		return p
	}

	s := sym(v)
	p = &s

	if len(v) <= short {
		cache[v] = p
	}

	return p
}

// The two functions below could be generated for each type.

// Is returns true if c is a sym.
func Is(c cell.I) bool {
	switch c.(type) {
	case *sym, *Plus:
		return true
	}

	return false
}

// To returns a *T if c is a sym or sym plus; Otherwise it panics.
func To(c cell.I) *sym {
	switch t := c.(type) {
	case *sym:
		return t
	case *Plus:
		return t.sym
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)

	// The sym type has a literal representation.
	_ = literal.I(&t)

	// The sym type is a stringer.
	_ = common.Stringer(&t)
}
