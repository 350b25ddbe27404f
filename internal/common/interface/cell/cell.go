// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all minilisp terms.
package cell

// I (cell) is the basic unit of storage in minilisp. Every term is a cell.
// Cells are immutable once constructed.
type I interface {
	Equal(c I) bool
	Name() string
}
