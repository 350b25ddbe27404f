// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"

	"github.com/Dentosal/minilisp/internal/common"
	"github.com/Dentosal/minilisp/internal/common/interface/cell"
	"github.com/Dentosal/minilisp/internal/common/type/unit"
)

func printLine(m Machine, args []cell.I) (cell.I, error) {
	// Output errors are not evaluation failures.
	_, _ = fmt.Fprintln(m.Output(), common.Join(args))

	return unit.Unit, nil
}
