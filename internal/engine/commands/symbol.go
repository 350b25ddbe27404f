// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/Dentosal/minilisp/internal/common/fault"
	"github.com/Dentosal/minilisp/internal/common/interface/cell"
	"github.com/Dentosal/minilisp/internal/common/interface/literal"
	"github.com/Dentosal/minilisp/internal/common/type/quote"
	"github.com/Dentosal/minilisp/internal/common/type/unit"
	"github.com/Dentosal/minilisp/internal/common/validate"
)

func del(m Machine, args []cell.I) (cell.I, error) {
	if err := validate.Fixed(Del.String(), args, 1, 1); err != nil {
		return nil, err
	}

	n, ok := quote.Identifier(args[0])
	if !ok {
		return nil, fault.New(fault.TypeMismatch,
			"del: can only delete a quoted identifier, got %s", literal.String(args[0]))
	}

	m.Delete(n)

	return unit.Unit, nil
}

func set(m Machine, args []cell.I) (cell.I, error) {
	if err := validate.Fixed(Set.String(), args, 2, 2); err != nil {
		return nil, err
	}

	n, ok := quote.Identifier(args[0])
	if !ok {
		return nil, fault.New(fault.TypeMismatch,
			"set: must bind to a quoted identifier, got %s", literal.String(args[0]))
	}

	m.Bind(n, args[1])

	return args[1], nil
}
