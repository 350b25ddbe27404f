// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/Dentosal/minilisp/internal/common/fault"
	"github.com/Dentosal/minilisp/internal/common/interface/cell"
	"github.com/Dentosal/minilisp/internal/common/interface/literal"
	"github.com/Dentosal/minilisp/internal/common/type/bltn"
	"github.com/Dentosal/minilisp/internal/common/type/expr"
	"github.com/Dentosal/minilisp/internal/common/type/lambda"
	"github.com/Dentosal/minilisp/internal/common/type/quote"
	"github.com/Dentosal/minilisp/internal/common/type/sym"
	"github.com/Dentosal/minilisp/internal/engine/commands"
	"github.com/Dentosal/minilisp/internal/engine/rewrite"
)

type state int

const (
	reducing state = iota
	normal
	failed
)

// Execute reduces c until no rewrite rule applies and returns the result.
func (e *T) Execute(c cell.I) (cell.I, error) {
	e.printf("EXEC: %s", literal.String(c))

	e.depth++

	s := reducing

	var err error

	for s == reducing {
		c, s, err = e.step(c)
	}

	e.depth--

	if s == failed {
		return nil, err
	}

	e.printf("DONE: %s", literal.String(c))

	return c, nil
}

// Step applies at most one rewrite rule to c. A term in normal form is
// returned unchanged.
func (e *T) Step(c cell.I) (cell.I, error) {
	c, _, err := e.step(c)

	return c, err
}

func (e *T) step(c cell.I) (cell.I, state, error) {
	e.printf("STEP: %s", literal.String(c))

	switch {
	case expr.Is(c):
		return e.apply(expr.To(c))

	case lambda.Is(c):
		l := lambda.To(c)
		if len(l.Params()) == 0 {
			return unwrap(l)
		}

	case sym.Is(c):
		v, err := e.lookup(c)
		if err != nil {
			return nil, failed, err
		}

		if v.Equal(c) {
			return c, normal, nil
		}

		return v, reducing, nil
	}

	return c, normal, nil
}

func (e *T) apply(x *expr.T) (cell.I, state, error) {
	if x.Len() == 1 {
		return x.Head(), reducing, nil
	}

	h := x.Head()

	switch {
	case bltn.Is(h):
		return e.builtin(bltn.To(h).Builtin(), x)

	case expr.Is(h):
		v, err := e.Execute(h)
		if err != nil {
			return nil, failed, err
		}

		if v == h {
			return x, normal, nil
		}

		return expr.With(v, x.Rest()), reducing, nil

	case lambda.Is(h):
		return e.call(lambda.To(h), x)

	case quote.Is(h):
		return nil, failed, fault.New(
			fault.TypeMismatch, "quote cannot be executed: %s", literal.String(h),
		)

	case sym.Is(h):
		v, err := e.lookup(h)
		if err != nil {
			return nil, failed, err
		}

		if v.Equal(h) {
			return x, normal, nil
		}

		return expr.With(v, x.Rest()), reducing, nil
	}

	return x, normal, nil
}

func (e *T) builtin(name string, x *expr.T) (cell.I, state, error) {
	rest := x.Rest()

	switch name {
	case commands.Quote.String():
		if len(rest) != 1 {
			return nil, failed, fault.New(
				fault.ArityMismatch, "quote: expected 1 argument, passed %d", len(rest),
			)
		}

		return quote.New(rest[0]), reducing, nil

	case commands.Error.String():
		return nil, failed, fault.New(fault.UserRaised, "Runtime Error: %s", literal.Join(rest))
	}

	args := make([]cell.I, len(rest))

	for i, a := range rest {
		v, err := e.Execute(a)
		if err != nil {
			return nil, failed, err
		}

		args[i] = v
	}

	e.printf("CALL: %s", literal.String(expr.With(bltn.New(name), args)))

	for _, r := range e.registries {
		v, found, err := r.Invoke(e, name, args)
		if !found {
			continue
		}

		if err != nil {
			return nil, failed, err
		}

		return v, reducing, nil
	}

	return nil, failed, fault.New(fault.UnknownFunction, "function %s not found", sym.Repr(name))
}

// The first argument is evaluated and substituted for the first parameter.
// Remaining arguments are applied to the resulting, narrower, lambda.
func (e *T) call(l *lambda.T, x *expr.T) (cell.I, state, error) {
	params := l.Params()
	if len(params) == 0 {
		return nil, failed, fault.New(
			fault.ArityMismatch, "too many arguments applied to a lambda: %s", literal.String(x),
		)
	}

	items := x.Items()

	v, err := e.Execute(items[1])
	if err != nil {
		return nil, failed, err
	}

	body := rewrite.Substitute(l.Body(), params[0], v)

	return expr.With(lambda.New(params[1:], body), items[2:]), reducing, nil
}

func unwrap(l *lambda.T) (cell.I, state, error) {
	body := l.Body()
	if !quote.Is(body) {
		return nil, failed, fault.New(
			fault.TypeMismatch, "lambda body must be quoted: %s", literal.String(body),
		)
	}

	return quote.To(body).Payload(), reducing, nil
}
