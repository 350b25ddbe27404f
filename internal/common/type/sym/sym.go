// Released under an MIT license. See LICENSE.

// Package sym provides minilisp's identifier type.
package sym

import (
	"sync"

	"github.com/Dentosal/minilisp/internal/common"
	"github.com/Dentosal/minilisp/internal/common/interface/cell"
	"github.com/Dentosal/minilisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/adapted"
)

const (
	name  = "identifier"
	short = 3
)

// T (sym) wraps Go's string type. Short and common strings are interned.
type T string

type sym = T

// True is the identifier returned by builtins for a true result.
var True cell.I //nolint:gochecknoglobals

// New creates a sym cell. Identifiers are never empty.
func New(v string) cell.I {
	if v == "" {
		panic("identifiers cannot be empty")
	}

	return symnew(v)
}

// Equal returns true if c is a sym and wraps the same string.
func (s *sym) Equal(c cell.I) bool {
	return Is(c) && s.String() == To(c).String()
}

// Literal returns the literal representation of the sym s.
func (s *sym) Literal() string {
	return ":" + Repr(string(*s))
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return name
}

// String returns the text of the sym s.
func (s *sym) String() string {
	return string(*s)
}

// Repr returns s, or its canonical quoted form if s would not survive
// being scanned as a single identifier.
func Repr(s string) string {
	q := adapted.CanonicalString(s)

	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '(', ')', '#':
			return q
		}
	}

	if q[2:len(q)-1] != s {
		return q
	}

	return s
}

//nolint:gochecknoglobals
var (
	cache  = map[string]*sym{}
	cachel = &sync.RWMutex{}
)

func init() { //nolint:gochecknoinits
	v := "true"
	s := sym(v)

	True = &s
	cache[v] = &s
}

func symnew(v string) *sym {
	p, ok, cacheable := symtry(v)
	if !ok {
		if cacheable {
			cachel.Lock()
			defer cachel.Unlock()

			if p, ok = cache[v]; ok {
				return p
			}
		}

		s := sym(v)
		p = &s

		if cacheable {
			cache[v] = p
		}
	}

	return p
}

func symtry(v string) (p *sym, ok bool, cacheable bool) {
	cachel.RLock()
	defer cachel.RUnlock()

	cacheable = len(v) <= short

	p, ok = cache[v]

	return
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)

	// The sym type has a literal representation.
	_ = literal.I(&t)

	// The sym type is a stringer.
	_ = common.Stringer(&t)
}
