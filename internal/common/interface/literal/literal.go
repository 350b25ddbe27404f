// Released under an MIT license. See LICENSE.

// Package literal defines the interface for terms that have a diagnostic form.
package literal

import (
	"strings"

	"github.com/Dentosal/minilisp/internal/common/interface/cell"
	"github.com/samber/lo"
)

// I (literal) is any type that can be expressed as a literal.
type I interface {
	Literal() string
}

// Join returns the literal forms of cs separated by single spaces.
func Join(cs []cell.I) string {
	return strings.Join(lo.Map(cs, func(c cell.I, _ int) string {
		return String(c)
	}), " ")
}

// String returns the literal string representation for a cell, if possible.
func String(c cell.I) string {
	l, ok := c.(I)
	if !ok {
		// Not all cell types can be expressed as literals.
		panic(c.Name() + " does not have a literal representation")
	}

	return l.Literal()
}
