// Released under an MIT license. See LICENSE.

// Package slot provides mel's variable type.
package slot

import (
	"github.com/mel-lang/mel/internal/common/interface/cell"
	"github.com/mel-lang/mel/internal/common/interface/reference"
)

// T (slot) holds a cell value. A slot is shared by every closure and
// every pending evaluation that can reach the frame holding it, so
// setting a slot is visible through all of them.
type T struct {
	c cell.I
}

type slot = T

// New creates a new slot holding the cell c.
func New(c cell.I) *slot {
	return &slot{c: c}
}

// Get returns the cell in the slot s.
func (s *slot) Get() cell.I {
	return s.c
}

// Set replaces the cell in the slot s with the cell c.
func (s *slot) Set(c cell.I) {
	s.c = c
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t slot

	// The slot type is a reference.
	_ = reference.I(&t)
}
