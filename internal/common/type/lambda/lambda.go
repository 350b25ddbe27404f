// Released under an MIT license. See LICENSE.

// Package lambda provides minilisp's curried function type.
package lambda

import (
	"strings"

	"github.com/Dentosal/minilisp/internal/common"
	"github.com/Dentosal/minilisp/internal/common/interface/cell"
	"github.com/Dentosal/minilisp/internal/common/interface/literal"
	"golang.org/x/exp/slices"
)

const name = "lambda"

// T (lambda) is a function awaiting zero or more named parameters.
// Arguments are substituted into the body one parameter at a time.
type T struct {
	body   cell.I
	params []string
}

type lambda = T

// New creates a lambda. The params slice is retained and must not be
// modified by the caller.
func New(params []string, body cell.I) cell.I {
	return &lambda{body: body, params: params}
}

// Equal returns true if c is a lambda with the same parameters and body.
func (l *lambda) Equal(c cell.I) bool {
	o, ok := c.(*lambda)
	if !ok {
		return false
	}

	return l == o || (slices.Equal(l.params, o.params) && l.body.Equal(o.body))
}

// Literal returns the literal representation of the lambda l.
func (l *lambda) Literal() string {
	return l.format(literal.String(l.body))
}

// Name returns the name for the lambda type.
func (l *lambda) Name() string {
	return name
}

// String returns the text representation of the lambda l.
func (l *lambda) String() string {
	return l.format(common.String(l.body))
}

// Methods specific to lambda.

// Body returns the lambda's body.
func (l *lambda) Body() cell.I {
	return l.body
}

// Binds returns true if n is one of the lambda's own parameters.
func (l *lambda) Binds(n string) bool {
	return slices.Contains(l.params, n)
}

// Params returns the names of the parameters still awaiting arguments.
// The slice is shared and must not be modified.
func (l *lambda) Params() []string {
	return l.params
}

func (l *lambda) format(body string) string {
	if len(l.params) == 0 {
		return "(\\ -> " + body + ")"
	}

	return "(\\ " + strings.Join(l.params, " ") + " -> " + body + ")"
}

// Is returns true if c is a lambda.
func Is(c cell.I) bool {
	_, ok := c.(*lambda)

	return ok
}

// To returns a lambda if c is a lambda; Otherwise it panics.
func To(c cell.I) *lambda {
	if l, ok := c.(*lambda); ok {
		return l
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t lambda

	// The lambda type is a cell.
	_ = cell.I(&t)

	// The lambda type has a literal representation.
	_ = literal.I(&t)

	// The lambda type is a stringer.
	_ = common.Stringer(&t)
}
