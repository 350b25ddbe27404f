// Released under an MIT license. See LICENSE.

// Package parser groups minilisp tokens into forms.
package parser

import (
	"errors"
	"fmt"

	"github.com/Dentosal/minilisp/internal/common/interface/cell"
	"github.com/Dentosal/minilisp/internal/common/struct/token"
	"github.com/Dentosal/minilisp/internal/common/type/expr"
	"github.com/Dentosal/minilisp/internal/common/type/sym"
)

// ErrIncomplete is returned by Parse when tokens run out inside a form.
// More tokens may complete it.
var ErrIncomplete = errors.New("incomplete form")

// T holds the state of the parser.
type T struct {
	emit func(cell.I)
	item func() *token.T

	open  []*token.T // Unmatched opening parentheses.
	stack [][]cell.I // Items of each open form.
}

// New creates a new parser. Item supplies tokens and emit receives each
// complete top-level form.
func New(emit func(cell.I), item func() *token.T) *T {
	return &T{emit: emit, item: item}
}

// Parse consumes tokens until none are available. It returns ErrIncomplete
// if a form is still open. Any other error leaves the parser reset.
func (p *T) Parse() error {
	for t := p.item(); t != nil; t = p.item() {
		switch {
		case t.Is('('):
			p.open = append(p.open, t)
			p.stack = append(p.stack, nil)

		case t.Is(')'):
			if len(p.open) == 0 {
				p.Reset()

				return fmt.Errorf("%s: unexpected ')'", t.Source())
			}

			n := len(p.stack) - 1
			c := expr.New(p.stack[n]...)

			p.open = p.open[:n]
			p.stack = p.stack[:n]

			p.add(c)

		case t.Is(token.Symbol):
			p.add(sym.Token(t))

		default:
			p.Reset()

			return fmt.Errorf("%s: unexpected %v", t.Source(), t)
		}
	}

	if len(p.open) > 0 {
		return ErrIncomplete
	}

	return nil
}

// Reset abandons any open forms.
func (p *T) Reset() {
	p.open = nil
	p.stack = nil
}

// Unclosed returns an error locating the innermost open form, or nil.
func (p *T) Unclosed() error {
	if len(p.open) == 0 {
		return nil
	}

	return fmt.Errorf("%s: unmatched '('", p.open[len(p.open)-1].Source())
}

func (p *T) add(c cell.I) {
	n := len(p.stack) - 1
	if n < 0 {
		p.emit(c)

		return
	}

	p.stack[n] = append(p.stack[n], c)
}
