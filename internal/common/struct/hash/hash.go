// Released under an MIT license. See LICENSE.

// Package hash provides mel's name to value mapping type.
package hash

import (
	"github.com/mel-lang/mel/internal/common/interface/cell"
	"github.com/mel-lang/mel/internal/common/interface/reference"
	"github.com/mel-lang/mel/internal/common/struct/slot"
)

// T (hash) maps names to references for a single frame. There is only
// ever one evaluation goroutine so access to the map is not locked.
type T struct {
	m map[string]reference.I
}

type hash = T

// New creates a new hash.
func New() *hash {
	return &hash{m: map[string]reference.I{}}
}

// Get retrieves the reference associated with the name k in the hash h.
func (h *hash) Get(k string) reference.I {
	if h == nil {
		return nil
	}

	return h.m[k]
}

// Set associates the name k with a fresh slot holding the cell v,
// replacing any reference previously associated with k.
func (h *hash) Set(k string, v cell.I) {
	h.m[k] = slot.New(v)
}
