// Released under an MIT license. See LICENSE.

// Package commands provides minilisp's primitive operations.
package commands

import (
	"io"

	"github.com/Dentosal/minilisp/internal/common/fault"
	"github.com/Dentosal/minilisp/internal/common/interface/cell"
)

// Machine is what a primitive may ask of the engine running it.
type Machine interface {
	Bind(name string, v cell.I)
	Delete(name string) bool
	Execute(c cell.I) (cell.I, error)
	Output() io.Writer
	Resolve(c cell.I) cell.I
	Strict() bool
}

// Registry maps builtin names to primitive operations. Invoke reports
// false, with no error, when it has no primitive called name.
type Registry interface {
	Invoke(m Machine, name string, args []cell.I) (cell.I, bool, error)
}

// Op is a primitive operation.
type Op int

// Primitive operations. Quote and Error are special forms: the engine
// handles them before their arguments are evaluated.
const (
	Quote Op = iota
	Error
	Unquote
	Discard
	Assert
	Lambda
	Block
	Branch
	Eq
	EqTree
	Set
	Del
	QReverse
	QConcat
	QHead
	QTail
	QEmpty
	QExpr
	Println

	count
)

//nolint:gochecknoglobals
var (
	// Core is the registry of every non-special Op.
	Core Registry = core{}

	names = [count]string{
		Quote:    "quote",
		Error:    "error",
		Unquote:  "unquote",
		Discard:  "discard",
		Assert:   "assert",
		Lambda:   "lambda",
		Block:    "block",
		Branch:   "branch",
		Eq:       "eq?",
		EqTree:   "eqtree?",
		Set:      "set",
		Del:      "del",
		QReverse: "q:reverse",
		QConcat:  "q:concat",
		QHead:    "q:head",
		QTail:    "q:tail",
		QEmpty:   "q:empty?",
		QExpr:    "q:expr?",
		Println:  "println",
	}

	ops = map[string]Op{}
)

func init() { //nolint:gochecknoinits
	for i, n := range names {
		ops[n] = Op(i)
	}
}

// Lookup returns the Op called name.
func Lookup(name string) (Op, bool) {
	op, ok := ops[name]

	return op, ok
}

// Names returns the name of every Op, special forms included.
func Names() []string {
	return append([]string(nil), names[:]...)
}

// Call runs the primitive o on already evaluated arguments.
func (o Op) Call(m Machine, args []cell.I) (cell.I, error) {
	switch o {
	case Quote, Error:
		return nil, fault.New(fault.UnknownFunction, "%s is a special form", o)
	case Unquote:
		return unquote(args)
	case Discard:
		return discard(args)
	case Assert:
		return assert(args)
	case Lambda:
		return makeLambda(args)
	case Block:
		return block(m, args)
	case Branch:
		return branch(m, args)
	case Eq:
		return eq(m, args)
	case EqTree:
		return eqTree(args)
	case Set:
		return set(m, args)
	case Del:
		return del(m, args)
	case QReverse:
		return reverse(args)
	case QConcat:
		return concat(args)
	case QHead:
		return head(args)
	case QTail:
		return tail(args)
	case QEmpty:
		return isEmpty(args)
	case QExpr:
		return isExpr(args)
	case Println:
		return printLine(m, args)
	case count:
	}

	return nil, fault.New(fault.UnknownFunction, "no such operation %d", int(o))
}

// Special returns true for operations the engine handles itself.
func (o Op) Special() bool {
	return o == Quote || o == Error
}

// String returns the name of the operation o.
func (o Op) String() string {
	if o < 0 || o >= count {
		return "unknown"
	}

	return names[o]
}

type core struct{}

func (core) Invoke(m Machine, name string, args []cell.I) (cell.I, bool, error) {
	op, ok := Lookup(name)
	if !ok || op.Special() {
		return nil, false, nil
	}

	c, err := op.Call(m, args)

	return c, true, err
}

// Func is a primitive supplied by the host program.
type Func func(m Machine, args []cell.I) (cell.I, error)

// Table is a registry of host primitives.
type Table map[string]Func

// Invoke calls the primitive called name, if t has one.
func (t Table) Invoke(m Machine, name string, args []cell.I) (cell.I, bool, error) {
	fn, ok := t[name]
	if !ok {
		return nil, false, nil
	}

	c, err := fn(m, args)

	return c, true, err
}
