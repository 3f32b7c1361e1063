// Released under an MIT license. See LICENSE.

// Package truth defines the interface for mel types that have a truth value.
package truth

import (
	"github.com/mel-lang/mel/internal/common/interface/cell"
)

// I (truth) is anything with an explicit true or false value.
type I interface {
	Bool() bool
}

// Value returns the truth value for the cell c. Only the boolean false
// cell is false. Every other value, zero included, is true.
func Value(c cell.I) bool {
	if b, ok := c.(I); ok {
		return b.Bool()
	}

	return true
}
