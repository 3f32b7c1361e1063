// Released under an MIT license. See LICENSE.

// Package pair provides mel's cons cell type.
//
// The reader produces pairs; the evaluator consumes them. Once the reader
// hands an expression tree to a caller it is never mutated. SetCar and
// SetCdr exist so that the parser can build lists in place.
package pair

import (
	"github.com/mel-lang/mel/internal/common/interface/cell"
	"github.com/mel-lang/mel/internal/common/interface/literal"
)

const name = "cons"

// Null is the empty list. It is also used to mark the end of a list.
var Null cell.I //nolint:gochecknoglobals

// T (pair) is a cons cell.
type T struct {
	car cell.I
	cdr cell.I
}

type pair = T

// Cons joins h and t in a new pair.
func Cons(h, t cell.I) cell.I {
	return &pair{car: h, cdr: t}
}

// The pair type is a cell.

// Equal returns true if c is a pair with elements equal to p's.
func (p *pair) Equal(c cell.I) bool {
	if p == Null || c == Null {
		return cell.I(p) == c
	}

	if !Is(c) {
		return false
	}

	return p.car.Equal(Car(c)) && p.cdr.Equal(Cdr(c))
}

// Name returns the name for the pair type.
func (p *pair) Name() string {
	return name
}

// The pair type has a literal representation.

// Literal returns the literal representation of the pair p.
func (p *pair) Literal() string {
	if p == Null {
		return "()"
	}

	s := "(" + literal.String(p.car)

	c := p.cdr
	for Is(c) && c != Null {
		s += " " + literal.String(Car(c))
		c = Cdr(c)
	}

	if c != Null {
		s += " . " + literal.String(c)
	}

	return s + ")"
}

// The pair type is a stringer.

// String returns the text representation of the pair p.
func (p *pair) String() string {
	return p.Literal()
}

// Functions specific to pair.

// Car returns the car/head/first member of the pair c.
// If c is not a pair, this function will panic.
func Car(c cell.I) cell.I {
	return To(c).car
}

// Cdr returns the cdr/tail/rest member of the pair c.
// If c is not a pair, this function will panic.
func Cdr(c cell.I) cell.I {
	return To(c).cdr
}

// Cadr returns the car of the cdr of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Cadr(c cell.I) cell.I {
	return To(To(c).cdr).car
}

// Cddr returns the cdr of the cdr of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Cddr(c cell.I) cell.I {
	return To(To(c).cdr).cdr
}

// SetCar sets the car/head/first of the pair c to value.
// If c is not a pair, this function will panic.
func SetCar(c, value cell.I) {
	To(c).car = value
}

// SetCdr sets the cdr/tail/rest of the pair c to value.
// If c is not a pair, this function will panic.
func SetCdr(c, value cell.I) {
	To(c).cdr = value
}

// Is returns true if c is a pair.
func Is(c cell.I) bool {
	_, ok := c.(*pair)

	return ok
}

// IsNull returns true if c is the Null cell.
func IsNull(c cell.I) bool {
	return c == Null
}

// To returns a *T if c is a pair; Otherwise it panics.
func To(c cell.I) *pair {
	if t, ok := c.(*pair); ok {
		return t
	}

	panic("not a " + name + " cell")
}

//nolint:gochecknoinits
func init() {
	p := &pair{}
	p.car = p
	p.cdr = p

	Null = cell.I(p)
}
