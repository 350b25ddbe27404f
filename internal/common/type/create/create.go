// Released under an MIT license. See LICENSE.

// Package create provides helper functions for creating minilisp terms.
package create

import (
	"github.com/Dentosal/minilisp/internal/common/interface/cell"
	"github.com/Dentosal/minilisp/internal/common/type/sym"
	"github.com/Dentosal/minilisp/internal/common/type/unit"
)

// Bool returns the term corresponding to the value of the boolean a.
func Bool(a bool) cell.I {
	if a {
		return sym.True
	}

	return unit.Unit
}
