// Released under an MIT license. See LICENSE.

// Package quote provides minilisp's no-evaluate marker.
package quote

import (
	"github.com/Dentosal/minilisp/internal/common"
	"github.com/Dentosal/minilisp/internal/common/interface/cell"
	"github.com/Dentosal/minilisp/internal/common/interface/literal"
	"github.com/Dentosal/minilisp/internal/common/type/sym"
)

const name = "quote"

// T (quote) suppresses evaluation of the term it wraps.
type T struct {
	payload cell.I
}

type quote = T

// New wraps c in a quote.
func New(c cell.I) cell.I {
	return &quote{payload: c}
}

// Equal returns true if c is a quote of a term equal to q's payload.
func (q *quote) Equal(c cell.I) bool {
	o, ok := c.(*quote)

	return ok && (q == o || q.payload.Equal(o.payload))
}

// Literal returns the literal representation of the quote q.
func (q *quote) Literal() string {
	return "'" + literal.String(q.payload)
}

// Name returns the name for the quote type.
func (q *quote) Name() string {
	return name
}

// String returns the text representation of the quoted term.
func (q *quote) String() string {
	return common.String(q.payload)
}

// Methods specific to quote.

// Payload returns the quoted term.
func (q *quote) Payload() cell.I {
	return q.payload
}

// Identifier returns the name of a quoted identifier and true, or "" and
// false if c is anything else.
func Identifier(c cell.I) (string, bool) {
	q, ok := c.(*quote)
	if !ok || !sym.Is(q.payload) {
		return "", false
	}

	return sym.To(q.payload).String(), true
}

// Is returns true if c is a quote.
func Is(c cell.I) bool {
	_, ok := c.(*quote)

	return ok
}

// To returns a quote if c is a quote; Otherwise it panics.
func To(c cell.I) *quote {
	if q, ok := c.(*quote); ok {
		return q
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t quote

	// The quote type is a cell.
	_ = cell.I(&t)

	// The quote type has a literal representation.
	_ = literal.I(&t)

	// The quote type is a stringer.
	_ = common.Stringer(&t)
}
