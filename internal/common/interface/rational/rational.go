// Released under an MIT license. See LICENSE.

// Package rational defines the interface for mel's numeric type.
package rational

import (
	"math/big"

	"github.com/mel-lang/mel/internal/common/interface/cell"
	"github.com/mel-lang/mel/internal/common/struct/errs"
)

// I (rational) is anything that can be treated as a rational number.
type I interface {
	Rat() *big.Rat
}

type rational = I

// Number returns the *big.Rat value for the cell c,
// or a type error if c is not a number.
func Number(c cell.I) (*big.Rat, error) {
	r, ok := c.(rational)
	if !ok {
		return nil, &errs.Type{Want: "number", Have: c.Name()}
	}

	return r.Rat(), nil
}
