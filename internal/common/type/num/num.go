// Released under an MIT license. See LICENSE.

// Package num provides mel's rational number type.
//
// A number is an exact rational of arbitrary precision. It is mel's only
// numeric type; integer and decimal literals are different spellings of
// the same thing.
package num

import (
	"math/big"

	"github.com/mel-lang/mel/internal/common"
	"github.com/mel-lang/mel/internal/common/interface/cell"
	"github.com/mel-lang/mel/internal/common/interface/literal"
	"github.com/mel-lang/mel/internal/common/interface/rational"
)

const name = "number"

// T (num) wraps Go's big.Rat type.
type T big.Rat

type num = T

// New creates a new num cell from a string.
func New(s string) cell.I {
	v, ok := Parse(s)
	if !ok {
		panic("'" + s + "' is not a valid number")
	}

	return v
}

// Parse creates a num from a string, if the string spells a number.
func Parse(s string) (cell.I, bool) {
	v := &big.Rat{}

	if _, ok := v.SetString(s); !ok {
		return nil, false
	}

	return Rat(v), true
}

// Int creates a num from the integer i.
func Int(i int) cell.I {
	return Rat(big.NewRat(int64(i), 1))
}

// Rat wraps the *big.Rat r as a num.
func Rat(r *big.Rat) cell.I {
	return (*num)(r)
}

// The num type is a cell.

// Equal returns true if c is the same number as the num n.
func (n *num) Equal(c cell.I) bool {
	return Is(c) && n.Rat().Cmp(To(c).Rat()) == 0
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// The num type has a literal representation.

// Literal returns the literal representation of the num n.
func (n *num) Literal() string {
	return n.String()
}

// The num type is a rational.

// Rat returns the value of the num n as a *big.Rat.
func (n *num) Rat() *big.Rat {
	return (*big.Rat)(n)
}

// The num type is a stringer.

// String returns the text of the num n.
func (n *num) String() string {
	return n.Rat().RatString()
}

// The two functions below could be generated for each type.

// Is returns true if c is a num.
func Is(c cell.I) bool {
	_, ok := c.(*num)

	return ok
}

// To returns a *T if c is a num; Otherwise it panics.
func To(c cell.I) *num {
	if t, ok := c.(*num); ok {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a cell.
	_ = cell.I(&t)

	// The num type has a literal representation.
	_ = literal.I(&t)

	// The num type is a rational.
	_ = rational.I(&t)

	// The num type is a stringer.
	_ = common.Stringer(&t)
}
