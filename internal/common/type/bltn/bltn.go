// Released under an MIT license. See LICENSE.

// Package bltn provides minilisp's builtin reference type.
package bltn

import (
	"github.com/Dentosal/minilisp/internal/common"
	"github.com/Dentosal/minilisp/internal/common/interface/cell"
	"github.com/Dentosal/minilisp/internal/common/interface/literal"
)

const name = "builtin"

// T (bltn) names a primitive operation. It is opaque to the language.
type T struct {
	name string
}

type bltn = T

// New creates a reference to the builtin called n.
func New(n string) cell.I {
	return &bltn{name: n}
}

// Equal returns true if c refers to the same builtin as b.
func (b *bltn) Equal(c cell.I) bool {
	return Is(c) && b.name == To(c).name
}

// Literal returns the literal representation of the builtin b.
func (b *bltn) Literal() string {
	return "#" + b.name
}

// Name returns the name for the builtin type.
func (b *bltn) Name() string {
	return name
}

// String returns the text representation of the builtin b.
func (b *bltn) String() string {
	return b.Literal()
}

// Methods specific to bltn.

// Builtin returns the name of the primitive operation b refers to.
func (b *bltn) Builtin() string {
	return b.name
}

// Is returns true if c is a builtin reference.
func Is(c cell.I) bool {
	_, ok := c.(*bltn)

	return ok
}

// To returns a builtin reference if c is one; Otherwise it panics.
func To(c cell.I) *bltn {
	if b, ok := c.(*bltn); ok {
		return b
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t bltn

	// The bltn type is a cell.
	_ = cell.I(&t)

	// The bltn type has a literal representation.
	_ = literal.I(&t)

	// The bltn type is a stringer.
	_ = common.Stringer(&t)
}
