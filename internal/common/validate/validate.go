// Released under an MIT license. See LICENSE.

// Package validate checks builtin argument counts.
package validate

import (
	"fmt"

	"github.com/Dentosal/minilisp/internal/common/fault"
	"github.com/Dentosal/minilisp/internal/common/interface/cell"
)

// Variadic checks that at least min arguments were passed to the builtin n.
func Variadic(n string, actual []cell.I, min int) error {
	if len(actual) < min {
		s := count(min, "argument", "s")

		return fault.New(fault.ArityMismatch,
			"%s: expected at least %s, passed %d", n, s, len(actual))
	}

	return nil
}

// Fixed checks that between min and max arguments were passed to the builtin n.
func Fixed(n string, actual []cell.I, min, max int) error {
	if len(actual) >= min && len(actual) <= max {
		return nil
	}

	s := count(max, "argument", "s")
	if min != max {
		s = fmt.Sprintf("%d to %s", min, s)
	}

	return fault.New(fault.ArityMismatch, "%s: expected %s, passed %d", n, s, len(actual))
}

// The label is pluralized with p unless n is 1.
func count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
