// Released under an MIT license. See LICENSE.

// Package rewrite provides the structural transformations used by the
// engine: parameter substitution and resolution to ground form.
//
// Terms are immutable. Both transformations return new terms that share
// every sub-term they did not change, and return their input unchanged
// (by identity) when nothing was replaced.
package rewrite

import (
	"github.com/Dentosal/minilisp/internal/common/interface/cell"
	"github.com/Dentosal/minilisp/internal/common/type/expr"
	"github.com/Dentosal/minilisp/internal/common/type/lambda"
	"github.com/Dentosal/minilisp/internal/common/type/quote"
	"github.com/Dentosal/minilisp/internal/common/type/sym"
	"github.com/samber/lo"
)

// Lookup returns the term bound to a name, if any.
type Lookup func(name string) (cell.I, bool)

// Substitute replaces every free occurrence of the identifier n in c with v.
//
// Quotes do not block substitution. A lambda that binds n itself is left
// alone, but only the lambda's own parameters are checked: a v that
// mentions a name bound by a lambda nested deeper in c can be captured.
func Substitute(c cell.I, n string, v cell.I) cell.I {
	switch t := c.(type) {
	case *quote.T:
		p := Substitute(t.Payload(), n, v)
		if p == t.Payload() {
			return c
		}

		return quote.New(p)

	case *expr.T:
		items, changed := each(t.Items(), func(i cell.I) cell.I {
			return Substitute(i, n, v)
		})
		if !changed {
			return c
		}

		return expr.New(items...)

	case *lambda.T:
		if t.Binds(n) {
			return c
		}

		b := Substitute(t.Body(), n, v)
		if b == t.Body() {
			return c
		}

		return lambda.New(t.Params(), b)
	}

	if sym.Is(c) && sym.To(c).String() == n {
		return v
	}

	return c
}

// Resolve replaces identifiers in c with what they are bound to, until
// reaching the stop identifier, an unbound name, or a name that is already
// being unfolded. A binding to a quoted term unfolds to the quoted term.
func Resolve(c cell.I, lookup Lookup, stop string) cell.I {
	r := &resolver{
		active: map[string]int{},
		lookup: lookup,
		stop:   stop,
	}

	return r.resolve(c)
}

type resolver struct {
	active map[string]int
	lookup Lookup
	stop   string
}

func (r *resolver) resolve(c cell.I) cell.I {
	switch t := c.(type) {
	case *quote.T:
		p := r.resolve(t.Payload())
		if p == t.Payload() {
			return c
		}

		return quote.New(p)

	case *expr.T:
		items, changed := each(t.Items(), r.resolve)
		if !changed {
			return c
		}

		return expr.New(items...)

	case *lambda.T:
		// Parameters are placeholders, not references.
		for _, p := range t.Params() {
			r.active[p]++
		}

		b := r.resolve(t.Body())

		for _, p := range t.Params() {
			r.active[p]--
		}

		if b == t.Body() {
			return c
		}

		return lambda.New(t.Params(), b)
	}

	if sym.Is(c) {
		return r.identifier(c)
	}

	return c
}

func (r *resolver) identifier(c cell.I) cell.I {
	n := sym.To(c).String()
	if n == r.stop || r.active[n] > 0 {
		return c
	}

	v, ok := r.lookup(n)
	if !ok {
		return c
	}

	r.active[n]++
	defer func() { r.active[n]-- }()

	if quote.Is(v) {
		return r.resolve(quote.To(v).Payload())
	}

	return r.resolve(v)
}

func each(items []cell.I, fn func(cell.I) cell.I) ([]cell.I, bool) {
	changed := false

	mapped := lo.Map(items, func(i cell.I, _ int) cell.I {
		m := fn(i)
		if m != i {
			changed = true
		}

		return m
	})

	return mapped, changed
}
