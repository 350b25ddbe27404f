// Released under an MIT license. See LICENSE.

// Package common defines common interfaces
package common

import (
	"fmt"
	"strings"

	"github.com/Dentosal/minilisp/internal/common/interface/cell"
	"github.com/samber/lo"
)

type Stringer = fmt.Stringer

// Join returns the display forms of cs separated by single spaces.
func Join(cs []cell.I) string {
	return strings.Join(lo.Map(cs, func(c cell.I, _ int) string {
		return String(c)
	}), " ")
}

// String returns the string value for a cell, if possible.
func String(c cell.I) string {
	b, ok := c.(Stringer)
	if !ok {
		panic(c.Name() + " cannot be used in a string context")
	}

	return b.String()
}
