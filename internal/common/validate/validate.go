// Released under an MIT license. See LICENSE.

// Package validate checks the shape of argument lists.
package validate

import (
	"github.com/mel-lang/mel/internal/common/interface/cell"
	"github.com/mel-lang/mel/internal/common/struct/errs"
	"github.com/mel-lang/mel/internal/common/type/list"
	"github.com/mel-lang/mel/internal/common/type/pair"
)

// Variadic checks that the list actual has at least min elements and
// returns the first max elements along with the remaining tail.
func Variadic(actual cell.I, min, max int) ([]cell.I, cell.I, error) {
	expected := make([]cell.I, 0, max)

	for i := 0; i < max; i++ {
		if actual == pair.Null {
			if i < min {
				return nil, nil, &errs.Arity{Min: min, Max: -1, Have: i}
			}

			break
		}

		expected = append(expected, pair.Car(actual))

		actual = pair.Cdr(actual)
	}

	return expected, actual, nil
}

// Fixed checks that the list actual has between min and max elements
// and returns them.
func Fixed(actual cell.I, min, max int) ([]cell.I, error) {
	expected, rest, err := Variadic(actual, min, max)
	if err != nil {
		return nil, &errs.Arity{Min: min, Max: max, Have: list.Length(actual)}
	}

	if rest != pair.Null {
		return nil, &errs.Arity{Min: min, Max: max, Have: list.Length(actual)}
	}

	return expected, nil
}
