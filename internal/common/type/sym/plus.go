// Released under an MIT license. See LICENSE.

package sym

import (
	"github.com/Dentosal/minilisp/internal/common/interface/cell"
	"github.com/Dentosal/minilisp/internal/common/struct/loc"
	"github.com/Dentosal/minilisp/internal/common/struct/token"
)

// Plus is a symbol plus its lexical location.
type Plus struct {
	*sym
	source *loc.T
}

// Token creates a Plus from a token.T.
func Token(t *token.T) cell.I {
	p := symnew(t.Value())

	return &Plus{p, t.Source()}
}

// Source returns the lexical location for a sym that has it.
func (p *Plus) Source() *loc.T {
	return p.source
}

// Source returns the lexical location of c if c is a sym plus, or nil.
func Source(c cell.I) *loc.T {
	if p, ok := c.(*Plus); ok {
		return p.source
	}

	return nil
}
