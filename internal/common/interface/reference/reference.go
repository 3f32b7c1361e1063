// Released under an MIT license. See LICENSE.

// Package reference defines the interface for mel's variable type.
package reference

import (
	"github.com/mel-lang/mel/internal/common/interface/cell"
)

// I (reference) is anything that can hold a value.
type I interface {
	Get() cell.I
	Set(cell.I)
}
