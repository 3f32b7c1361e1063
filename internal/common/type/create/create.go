// Released under an MIT license. See LICENSE.

// Package create provides helper functions for creating mel types.
package create

import (
	"github.com/mel-lang/mel/internal/common/interface/cell"
	"github.com/mel-lang/mel/internal/common/type/boolean"
	"github.com/mel-lang/mel/internal/common/type/sym"
)

// Bool returns the mel value corresponding to the value of the bool a.
func Bool(a bool) cell.I {
	return boolean.Bool(a)
}

// Unit returns the mel value for expressions evaluated only for effect.
func Unit() cell.I {
	return sym.Unit
}
