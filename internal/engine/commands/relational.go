// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/mel-lang/mel/internal/common/interface/cell"
	"github.com/mel-lang/mel/internal/common/interface/rational"
	"github.com/mel-lang/mel/internal/common/type/create"
	"github.com/mel-lang/mel/internal/common/validate"
)

func eq(args cell.I) (cell.I, error) {
	return compare(args, func(c int) bool { return c == 0 })
}

func ge(args cell.I) (cell.I, error) {
	return compare(args, func(c int) bool { return c >= 0 })
}

func gt(args cell.I) (cell.I, error) {
	return compare(args, func(c int) bool { return c > 0 })
}

func le(args cell.I) (cell.I, error) {
	return compare(args, func(c int) bool { return c <= 0 })
}

func lt(args cell.I) (cell.I, error) {
	return compare(args, func(c int) bool { return c < 0 })
}

// compare applies the binary numeric comparisons. Comparisons are fixed
// arity: exactly two numbers.
func compare(args cell.I, holds func(int) bool) (cell.I, error) {
	v, err := validate.Fixed(args, 2, 2)
	if err != nil {
		return nil, err
	}

	a, err := rational.Number(v[0])
	if err != nil {
		return nil, err
	}

	b, err := rational.Number(v[1])
	if err != nil {
		return nil, err
	}

	return create.Bool(holds(a.Cmp(b))), nil
}
