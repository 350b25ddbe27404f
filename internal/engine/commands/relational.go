// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/Dentosal/minilisp/internal/common/interface/cell"
	"github.com/Dentosal/minilisp/internal/common/type/create"
	"github.com/Dentosal/minilisp/internal/common/validate"
)

// Terms that are structurally different may still be equal once the
// identifiers inside them are resolved.
func eq(m Machine, args []cell.I) (cell.I, error) {
	if err := validate.Fixed(Eq.String(), args, 2, 2); err != nil {
		return nil, err
	}

	if args[0].Equal(args[1]) {
		return create.Bool(true), nil
	}

	return create.Bool(m.Resolve(args[0]).Equal(m.Resolve(args[1]))), nil
}

func eqTree(args []cell.I) (cell.I, error) {
	if err := validate.Fixed(EqTree.String(), args, 2, 2); err != nil {
		return nil, err
	}

	return create.Bool(args[0].Equal(args[1])), nil
}
