// Released under an MIT license. See LICENSE.

// Package builtin provides the type for procedures implemented in Go.
package builtin

import (
	"github.com/mel-lang/mel/internal/common"
	"github.com/mel-lang/mel/internal/common/interface/cell"
	"github.com/mel-lang/mel/internal/common/interface/literal"
)

const name = "builtin"

// Do is the signature shared by all builtin procedures. Arguments arrive
// already evaluated, as a list.
type Do func(args cell.I) (cell.I, error)

// T (builtin) is a procedure implemented in Go.
type T struct {
	do    Do
	label string
}

type builtin = T

// New creates a new builtin labelled label.
func New(label string, do Do) cell.I {
	return &builtin{do: do, label: label}
}

// The builtin type is a cell.

// Equal returns true if the cell c is the same builtin as b.
func (b *builtin) Equal(c cell.I) bool {
	return Is(c) && b == To(c)
}

// Name returns the name of the builtin type.
func (b *builtin) Name() string {
	return name
}

// The builtin type has a literal representation.

// Literal returns the literal representation of the builtin b.
func (b *builtin) Literal() string {
	return "(|" + name + " " + b.label + "|)"
}

// The builtin type is a stringer.

// String returns the text of the builtin b.
func (b *builtin) String() string {
	return b.Literal()
}

// Methods specific to builtin.

// Apply invokes the builtin b with the evaluated arguments args.
func (b *builtin) Apply(args cell.I) (cell.I, error) {
	return b.do(args)
}

// The two functions below could be generated for each type.

// Is returns true if c is a builtin.
func Is(c cell.I) bool {
	_, ok := c.(*builtin)

	return ok
}

// To returns a *T if c is a builtin; Otherwise it panics.
func To(c cell.I) *builtin {
	if t, ok := c.(*builtin); ok {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t builtin

	// The builtin type is a cell.
	_ = cell.I(&t)

	// The builtin type has a literal representation.
	_ = literal.I(&t)

	// The builtin type is a stringer.
	_ = common.Stringer(&t)
}
