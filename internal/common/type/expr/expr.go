// Released under an MIT license. See LICENSE.

// Package expr provides minilisp's expression type, an ordered sequence of
// terms used both for application and as list data.
package expr

import (
	"strings"

	"github.com/Dentosal/minilisp/internal/common"
	"github.com/Dentosal/minilisp/internal/common/interface/cell"
	"github.com/Dentosal/minilisp/internal/common/interface/literal"
	"github.com/Dentosal/minilisp/internal/common/type/unit"
)

const name = "expression"

// T (expr) is a non-empty, immutable sequence of terms.
type T struct {
	items []cell.I
}

type expr = T

// New creates an expression from items. With no items the result is Unit;
// an empty expression is never constructed.
func New(items ...cell.I) cell.I {
	if len(items) == 0 {
		return unit.Unit
	}

	return &expr{items: items}
}

// Equal returns true if c is an expression with elements equal to e's.
func (e *expr) Equal(c cell.I) bool {
	o, ok := c.(*expr)
	if !ok {
		return false
	}

	if e == o {
		return true
	}

	if len(e.items) != len(o.items) {
		return false
	}

	for i, v := range e.items {
		if !v.Equal(o.items[i]) {
			return false
		}
	}

	return true
}

// Literal returns the literal representation of the expression e.
func (e *expr) Literal() string {
	return "(" + literal.Join(e.items) + ")"
}

// Name returns the name for the expression type.
func (e *expr) Name() string {
	return name
}

// String returns the text representation of the expression e.
func (e *expr) String() string {
	var b strings.Builder

	b.WriteByte('(')
	b.WriteString(common.Join(e.items))
	b.WriteByte(')')

	return b.String()
}

// Methods specific to expr.

// Head returns the first element of the expression e.
func (e *expr) Head() cell.I {
	return e.items[0]
}

// Items returns the elements of the expression e. The slice is shared and
// must not be modified.
func (e *expr) Items() []cell.I {
	return e.items
}

// Len returns the number of elements in the expression e.
func (e *expr) Len() int {
	return len(e.items)
}

// Rest returns every element of the expression e after the first. The slice
// is shared and must not be modified.
func (e *expr) Rest() []cell.I {
	return e.items[1:]
}

// Is returns true if c is an expression.
func Is(c cell.I) bool {
	_, ok := c.(*expr)

	return ok
}

// To returns an expression if c is an expression; Otherwise it panics.
func To(c cell.I) *expr {
	if e, ok := c.(*expr); ok {
		return e
	}

	panic("not an " + name)
}

// With returns a new expression made of head followed by rest.
func With(head cell.I, rest []cell.I) cell.I {
	items := make([]cell.I, 0, len(rest)+1)
	items = append(items, head)
	items = append(items, rest...)

	return &expr{items: items}
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t expr

	// The expr type is a cell.
	_ = cell.I(&t)

	// The expr type has a literal representation.
	_ = literal.I(&t)

	// The expr type is a stringer.
	_ = common.Stringer(&t)
}
