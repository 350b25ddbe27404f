// Released under an MIT license. See LICENSE.

// Package boot provides the prelude loaded by every new minilisp engine.
package boot

import _ "embed" // Blank import required by embed.

// Unit is a named piece of source text.
type Unit struct {
	Name string
	Text string
}

//nolint:gochecknoglobals
var (
	//go:embed logic.mls
	logic string

	//go:embed peano.mls
	peano string
)

// Prelude returns the bundled prelude units in the order they must run.
func Prelude() []Unit {
	return []Unit{
		{Name: "logic.mls", Text: logic},
		{Name: "peano.mls", Text: peano},
	}
}
