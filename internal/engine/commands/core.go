// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/Dentosal/minilisp/internal/common/fault"
	"github.com/Dentosal/minilisp/internal/common/interface/cell"
	"github.com/Dentosal/minilisp/internal/common/interface/literal"
	"github.com/Dentosal/minilisp/internal/common/interface/truth"
	"github.com/Dentosal/minilisp/internal/common/type/bltn"
	"github.com/Dentosal/minilisp/internal/common/type/expr"
	"github.com/Dentosal/minilisp/internal/common/type/lambda"
	"github.com/Dentosal/minilisp/internal/common/type/quote"
	"github.com/Dentosal/minilisp/internal/common/type/sym"
	"github.com/Dentosal/minilisp/internal/common/type/unit"
	"github.com/Dentosal/minilisp/internal/common/validate"
)

func assert(args []cell.I) (cell.I, error) {
	if err := validate.Fixed(Assert.String(), args, 1, 1); err != nil {
		return nil, err
	}

	if unit.Is(args[0]) {
		return nil, fault.New(fault.AssertionFailed, "assertion failed")
	}

	return args[0], nil
}

// The chosen arm is returned wrapped in unquote so that the engine
// evaluates only that arm, on its next step.
func branch(m Machine, args []cell.I) (cell.I, error) {
	if err := validate.Fixed(Branch.String(), args, 3, 3); err != nil {
		return nil, err
	}

	arm := args[2]

	if truth.Value(args[0]) {
		if m.Strict() && !args[0].Equal(quote.New(sym.True)) {
			return nil, fault.New(fault.TypeMismatch,
				"branch: strict true required, got %s", literal.String(args[0]))
		}

		arm = args[1]
	}

	return expr.New(bltn.New(Unquote.String()), arm), nil
}

func block(m Machine, args []cell.I) (cell.I, error) {
	res := unit.Unit

	for _, a := range args {
		c, err := m.Execute(expr.New(bltn.New(Unquote.String()), a))
		if err != nil {
			return nil, err
		}

		res = c
	}

	return res, nil
}

func discard(_ []cell.I) (cell.I, error) {
	return unit.Unit, nil
}

func makeLambda(args []cell.I) (cell.I, error) {
	if err := validate.Variadic(Lambda.String(), args, 1); err != nil {
		return nil, err
	}

	last := len(args) - 1
	params := make([]string, 0, last)

	for _, a := range args[:last] {
		n, ok := quote.Identifier(a)
		if !ok {
			return nil, fault.New(fault.TypeMismatch,
				"lambda: quoted identifier required as parameter, got %s", literal.String(a))
		}

		params = append(params, n)
	}

	return lambda.New(params, args[last]), nil
}

func unquote(args []cell.I) (cell.I, error) {
	if err := validate.Fixed(Unquote.String(), args, 1, 1); err != nil {
		return nil, err
	}

	if !quote.Is(args[0]) {
		return nil, fault.New(fault.TypeMismatch,
			"unquote: only a quote can be unquoted, %s is invalid", literal.String(args[0]))
	}

	return quote.To(args[0]).Payload(), nil
}
