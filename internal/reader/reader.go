// Released under an MIT license. See LICENSE.

// Package reader encapsulates the minilisp lexer and parser.
package reader

import (
	"errors"

	"github.com/Dentosal/minilisp/internal/common/interface/cell"
	"github.com/Dentosal/minilisp/internal/reader/lexer"
	"github.com/Dentosal/minilisp/internal/reader/parser"
)

// ErrIncomplete is returned by Scan while a form is still open.
var ErrIncomplete = parser.ErrIncomplete

// T (reader) turns lines of text into forms.
type T struct {
	forms []cell.I
	name  string
	p     *parser.T
	s     *lexer.T
}

type reader = T

// New creates a new reader for name.
func New(name string) *T {
	r := &T{name: name}

	r.Reset()

	return r
}

// Forms returns every form in text. If text does not parse, no forms are
// returned.
func Forms(name, text string) ([]cell.I, error) {
	r := New(name)

	forms, err := r.Scan(text + "\n")
	if errors.Is(err, ErrIncomplete) {
		return nil, r.p.Unclosed()
	} else if err != nil {
		return nil, err
	}

	return forms, nil
}

// Reset discards any partially read form.
func (r *reader) Reset() {
	r.forms = nil
	r.s = lexer.New(r.name)
	r.p = parser.New(func(c cell.I) {
		r.forms = append(r.forms, c)
	}, r.s.Token)
}

// Scan reads line and returns the forms it completes. If a form is left
// open, the completed forms are returned along with ErrIncomplete and the
// next call to Scan continues the open form. After any other error the
// reader starts afresh.
func (r *reader) Scan(line string) ([]cell.I, error) {
	r.s.Scan(line)

	err := r.p.Parse()

	forms := r.forms
	r.forms = nil

	if err != nil && !errors.Is(err, ErrIncomplete) {
		r.Reset()
	}

	return forms, err
}
