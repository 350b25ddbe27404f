// Released under an MIT license. See LICENSE.

// Package unit provides minilisp's empty value. Unit is also false.
package unit

import (
	"github.com/Dentosal/minilisp/internal/common"
	"github.com/Dentosal/minilisp/internal/common/interface/cell"
	"github.com/Dentosal/minilisp/internal/common/interface/literal"
	"github.com/Dentosal/minilisp/internal/common/interface/truth"
)

const name = "unit"

//nolint:gochecknoglobals
var (
	// Unit is the only value of type T. Empty expressions parse to Unit.
	Unit cell.I = &unit{}
)

// T (unit) is the type of the empty value.
type T struct{}

type unit = T

// Bool returns false. Unit is the only false value.
func (u *unit) Bool() bool {
	return false
}

// Equal returns true if c is Unit.
func (u *unit) Equal(c cell.I) bool {
	return Is(c)
}

// Literal returns the literal representation of Unit.
func (u *unit) Literal() string {
	return "Unit"
}

// Name returns the name for the unit type.
func (u *unit) Name() string {
	return name
}

// String returns the text representation of Unit.
func (u *unit) String() string {
	return "()"
}

// Is returns true if c is Unit.
func Is(c cell.I) bool {
	_, ok := c.(*unit)

	return ok
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t unit

	// The unit type is a cell.
	_ = cell.I(&t)

	// The unit type has a literal representation.
	_ = literal.I(&t)

	// The unit type is a stringer.
	_ = common.Stringer(&t)

	// The unit type has a truth value.
	_ = truth.I(&t)
}
