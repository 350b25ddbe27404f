// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/Dentosal/minilisp/internal/common/fault"
	"github.com/Dentosal/minilisp/internal/common/interface/cell"
	"github.com/Dentosal/minilisp/internal/common/interface/literal"
	"github.com/Dentosal/minilisp/internal/common/type/create"
	"github.com/Dentosal/minilisp/internal/common/type/expr"
	"github.com/Dentosal/minilisp/internal/common/type/quote"
	"github.com/Dentosal/minilisp/internal/common/type/unit"
	"github.com/Dentosal/minilisp/internal/common/validate"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// A quoted expression is a list. A quoted Unit is the empty list.

func concat(args []cell.I) (cell.I, error) {
	if err := validate.Fixed(QConcat.String(), args, 2, 2); err != nil {
		return nil, err
	}

	a, err := elements(QConcat, args[0])
	if err != nil {
		return nil, err
	}

	b, err := elements(QConcat, args[1])
	if err != nil {
		return nil, err
	}

	switch {
	case len(a) == 0:
		return args[1], nil
	case len(b) == 0:
		return args[0], nil
	}

	return quote.New(expr.New(append(slices.Clone(a), b...)...)), nil
}

func head(args []cell.I) (cell.I, error) {
	if err := validate.Fixed(QHead.String(), args, 1, 1); err != nil {
		return nil, err
	}

	v, err := elements(QHead, args[0])
	if err != nil {
		return nil, err
	}

	if len(v) == 0 {
		return nil, fault.New(fault.TypeMismatch,
			"q:head: cannot get first element of an empty list")
	}

	return v[0], nil
}

func isEmpty(args []cell.I) (cell.I, error) {
	p, err := quoted(QEmpty, args)
	if err != nil {
		return nil, err
	}

	return create.Bool(unit.Is(p)), nil
}

func isExpr(args []cell.I) (cell.I, error) {
	p, err := quoted(QExpr, args)
	if err != nil {
		return nil, err
	}

	return create.Bool(unit.Is(p) || expr.Is(p)), nil
}

func reverse(args []cell.I) (cell.I, error) {
	if err := validate.Fixed(QReverse.String(), args, 1, 1); err != nil {
		return nil, err
	}

	v, err := elements(QReverse, args[0])
	if err != nil {
		return nil, err
	}

	return quote.New(expr.New(lo.Reverse(slices.Clone(v))...)), nil
}

func tail(args []cell.I) (cell.I, error) {
	if err := validate.Fixed(QTail.String(), args, 1, 1); err != nil {
		return nil, err
	}

	v, err := elements(QTail, args[0])
	if err != nil {
		return nil, err
	}

	if len(v) < 2 {
		return quote.New(unit.Unit), nil
	}

	return quote.New(expr.New(v[1:]...)), nil
}

// The returned slice is shared with the expression and must not be modified.
func elements(o Op, c cell.I) ([]cell.I, error) {
	if quote.Is(c) {
		p := quote.To(c).Payload()

		switch {
		case unit.Is(p):
			return nil, nil
		case expr.Is(p):
			return expr.To(p).Items(), nil
		}
	}

	return nil, fault.New(fault.TypeMismatch,
		"%s: quoted expression required, got %s", o, literal.String(c))
}

func quoted(o Op, args []cell.I) (cell.I, error) {
	if err := validate.Fixed(o.String(), args, 1, 1); err != nil {
		return nil, err
	}

	if !quote.Is(args[0]) {
		return nil, fault.New(fault.TypeMismatch,
			"%s: quoted value required as argument, got %s", o, literal.String(args[0]))
	}

	return quote.To(args[0]).Payload(), nil
}
