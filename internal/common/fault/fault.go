// Released under an MIT license. See LICENSE.

// Package fault provides the errors produced while evaluating minilisp.
package fault

import (
	"fmt"

	"github.com/Dentosal/minilisp/internal/common/struct/loc"
)

// Kind classifies a failure. A Kind is also an error so that
// errors.Is(err, fault.UnboundSymbol) matches any failure of that kind.
type Kind int

// Failure kinds.
const (
	UnboundSymbol Kind = iota + 1
	ArityMismatch
	TypeMismatch
	UnknownFunction
	UserRaised
	AssertionFailed
)

// Error returns the name of the kind k.
func (k Kind) Error() string {
	return k.String()
}

// String returns the name of the kind k.
func (k Kind) String() string {
	switch k {
	case UnboundSymbol:
		return "unbound symbol"
	case ArityMismatch:
		return "arity mismatch"
	case TypeMismatch:
		return "type mismatch"
	case UnknownFunction:
		return "unknown function"
	case UserRaised:
		return "user raised"
	case AssertionFailed:
		return "assertion failed"
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

// T (fault) is an evaluation failure.
type T struct {
	Kind   Kind
	Msg    string
	Source *loc.T // Where the offending term was read, if known.
}

type fault = T

// New creates a fault of kind k with a formatted message.
func New(k Kind, format string, a ...interface{}) *fault {
	return &fault{Kind: k, Msg: fmt.Sprintf(format, a...)}
}

// At records where the offending term came from and returns f.
func (f *fault) At(source *loc.T) *fault {
	f.Source = source

	return f
}

// Error returns the message for f, prefixed by its location when known.
func (f *fault) Error() string {
	if f.Source != nil {
		return f.Source.String() + ": " + f.Msg
	}

	return f.Msg
}

// Is reports whether target is f's Kind.
func (f *fault) Is(target error) bool {
	k, ok := target.(Kind)

	return ok && k == f.Kind
}
