// Released under an MIT license. See LICENSE.

package commands

import (
	"math/big"

	"github.com/mel-lang/mel/internal/common/interface/cell"
	"github.com/mel-lang/mel/internal/common/interface/rational"
	"github.com/mel-lang/mel/internal/common/struct/errs"
	"github.com/mel-lang/mel/internal/common/type/num"
	"github.com/mel-lang/mel/internal/common/type/pair"
	"github.com/mel-lang/mel/internal/common/validate"
)

func add(args cell.I) (cell.I, error) {
	if _, _, err := validate.Variadic(args, 1, 1); err != nil {
		return nil, err
	}

	sum := &big.Rat{}

	for ; args != pair.Null; args = pair.Cdr(args) {
		r, err := rational.Number(pair.Car(args))
		if err != nil {
			return nil, err
		}

		sum.Add(sum, r)
	}

	return num.Rat(sum), nil
}

func div(args cell.I) (cell.I, error) {
	v, rest, err := validate.Variadic(args, 1, 1)
	if err != nil {
		return nil, err
	}

	first, err := rational.Number(v[0])
	if err != nil {
		return nil, err
	}

	quotient := &big.Rat{}

	if rest == pair.Null {
		// With a single argument, / returns the reciprocal.
		if first.Sign() == 0 {
			return nil, &errs.DivisionByZero{}
		}

		return num.Rat(quotient.Inv(first)), nil
	}

	quotient.Set(first)

	for ; rest != pair.Null; rest = pair.Cdr(rest) {
		r, err := rational.Number(pair.Car(rest))
		if err != nil {
			return nil, err
		}

		if r.Sign() == 0 {
			return nil, &errs.DivisionByZero{}
		}

		quotient.Quo(quotient, r)
	}

	return num.Rat(quotient), nil
}

func mul(args cell.I) (cell.I, error) {
	v, rest, err := validate.Variadic(args, 1, 1)
	if err != nil {
		return nil, err
	}

	first, err := rational.Number(v[0])
	if err != nil {
		return nil, err
	}

	product := &big.Rat{}
	product.Set(first)

	for ; rest != pair.Null; rest = pair.Cdr(rest) {
		r, err := rational.Number(pair.Car(rest))
		if err != nil {
			return nil, err
		}

		product.Mul(product, r)
	}

	return num.Rat(product), nil
}

func sub(args cell.I) (cell.I, error) {
	v, rest, err := validate.Variadic(args, 1, 1)
	if err != nil {
		return nil, err
	}

	first, err := rational.Number(v[0])
	if err != nil {
		return nil, err
	}

	difference := &big.Rat{}

	if rest == pair.Null {
		// With a single argument, - negates.
		return num.Rat(difference.Neg(first)), nil
	}

	difference.Set(first)

	for ; rest != pair.Null; rest = pair.Cdr(rest) {
		r, err := rational.Number(pair.Car(rest))
		if err != nil {
			return nil, err
		}

		difference.Sub(difference, r)
	}

	return num.Rat(difference), nil
}
