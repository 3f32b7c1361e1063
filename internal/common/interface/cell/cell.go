// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all mel types.
package cell

// I (cell) is the basic unit of storage in mel. Parsed expressions and
// runtime values are both cells.
type I interface {
	Equal(c I) bool
	Name() string
}
