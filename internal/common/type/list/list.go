// Released under an MIT license. See LICENSE.

// Package list provides common list operations. A list is not a true type.
// Lists are more of a type by convention. They are composed of cons cells.
package list

import (
	"github.com/mel-lang/mel/internal/common/interface/cell"
	"github.com/mel-lang/mel/internal/common/type/pair"
)

// Length returns the number of elements in list.
// A non-pair value where a pair is expected will cause a panic.
// The list must be non-circular.
func Length(list cell.I) int {
	length := 0

	for list != nil && list != pair.Null {
		length++

		list = pair.Cdr(list)
	}

	return length
}

// New creates a new list composed of all of the elements in elements.
func New(elements ...cell.I) cell.I {
	if len(elements) == 0 {
		return pair.Null
	}

	start := pair.Cons(elements[0], pair.Null)
	end := start

	for _, e := range elements[1:] {
		p := pair.Cons(e, pair.Null)
		pair.SetCdr(end, p)
		end = p
	}

	return start
}

// Slice copies the elements of list into a Go slice.
// The list must be non-circular.
func Slice(list cell.I) []cell.I {
	elements := make([]cell.I, 0, Length(list))

	for list != nil && list != pair.Null {
		elements = append(elements, pair.Car(list))

		list = pair.Cdr(list)
	}

	return elements
}
