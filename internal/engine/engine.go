// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed minilisp code.
//
// Evaluation is rewriting. Step applies a single rewrite rule to a term and
// Execute applies Step until the term is in normal form, that is, until no
// rule applies. Builtins may call back into the engine.
package engine

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Dentosal/minilisp/internal/common/fault"
	"github.com/Dentosal/minilisp/internal/common/interface/cell"
	"github.com/Dentosal/minilisp/internal/common/struct/hash"
	"github.com/Dentosal/minilisp/internal/common/type/bltn"
	"github.com/Dentosal/minilisp/internal/common/type/sym"
	"github.com/Dentosal/minilisp/internal/common/type/unit"
	"github.com/Dentosal/minilisp/internal/engine/boot"
	"github.com/Dentosal/minilisp/internal/engine/commands"
	"github.com/Dentosal/minilisp/internal/engine/rewrite"
	"github.com/Dentosal/minilisp/internal/reader"
)

// Stop is the default stop identifier for resolved equality.
const Stop = "true"

// Config holds the settings for a new engine. The zero value is usable.
type Config struct {
	Lax    bool      // Accept any non-unit branch condition.
	Output io.Writer // Where println writes. Defaults to os.Stdout.
	Stop   string    // Stop identifier for eq?. Defaults to Stop.
	Trace  io.Writer // Where to print every step. Nil disables tracing.
}

// T (engine) owns a namespace and reduces terms against it.
type T struct {
	depth      int
	host       commands.Table
	namespace  *hash.T
	output     io.Writer
	registries []commands.Registry
	stop       string
	strict     bool
	trace      io.Writer
}

// New creates a new T with an empty namespace. Call Boot to bind the
// builtins and load a prelude.
func New(cfg Config) *T {
	e := &T{
		host:      commands.Table{},
		namespace: hash.New(),
		output:    cfg.Output,
		stop:      cfg.Stop,
		strict:    !cfg.Lax,
		trace:     cfg.Trace,
	}

	if e.output == nil {
		e.output = os.Stdout
	}

	if e.stop == "" {
		e.stop = Stop
	}

	e.registries = []commands.Registry{commands.Core, e.host}

	return e
}

// Boot binds every builtin under its own name and then runs each prelude
// unit in order. Any failure is returned; the engine should not be used.
func (e *T) Boot(prelude ...boot.Unit) error {
	for _, n := range commands.Names() {
		e.namespace.Set(n, bltn.New(n))
	}

	for _, u := range prelude {
		e.printf("EXECUTING FILE: %s", u.Name)

		if _, err := e.Run(u.Name, u.Text); err != nil {
			return fmt.Errorf("prelude %s: %w", u.Name, err)
		}
	}

	return nil
}

// Define adds the host primitive fn as the builtin called name and binds it.
// Core operations take precedence over host primitives of the same name.
func (e *T) Define(name string, fn commands.Func) {
	e.host[name] = fn
	e.namespace.Set(name, bltn.New(name))
}

// Evaluate parses text and executes each top-level form in turn, passing
// each result, or the error that ended that form, to emit. A failed form
// does not stop later forms. Text that does not parse is not executed.
func (e *T) Evaluate(name, text string, emit func(cell.I, error)) error {
	forms, err := reader.Forms(name, text)
	if err != nil {
		return err
	}

	for _, f := range forms {
		emit(e.Execute(f))
	}

	return nil
}

// Load evaluates the file at path as Run does.
func (e *T) Load(path string) (cell.I, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return e.Run(path, string(b))
}

// Lookup returns the term bound to name.
func (e *T) Lookup(name string) (cell.I, bool) {
	return e.namespace.Get(name)
}

// Names returns every bound name in sorted order.
func (e *T) Names() []string {
	return e.namespace.Names()
}

// Run parses text and executes each top-level form in turn, stopping at
// the first failure. It returns the value of the last form.
func (e *T) Run(name, text string) (cell.I, error) {
	forms, err := reader.Forms(name, text)
	if err != nil {
		return nil, err
	}

	var v cell.I

	for _, f := range forms {
		v, err = e.Execute(f)
		if err != nil {
			return nil, err
		}
	}

	if v == nil {
		return unit.Unit, nil
	}

	return v, nil
}

// Trace directs the step-by-step trace to w. A nil w disables tracing.
func (e *T) Trace(w io.Writer) {
	e.trace = w
}

// The engine is a commands.Machine.

// Bind associates name with v in the engine's namespace.
func (e *T) Bind(name string, v cell.I) {
	e.namespace.Set(name, v)
}

// Delete removes any binding for name.
func (e *T) Delete(name string) bool {
	return e.namespace.Del(name)
}

// Output returns the writer used by println.
func (e *T) Output() io.Writer {
	return e.output
}

// Resolve returns c with its identifiers resolved against the namespace,
// as far as the stop identifier.
func (e *T) Resolve(c cell.I) cell.I {
	return rewrite.Resolve(c, e.namespace.Get, e.stop)
}

// Strict returns true if branch conditions must be exactly 'true or Unit.
func (e *T) Strict() bool {
	return e.strict
}

func (e *T) lookup(c cell.I) (cell.I, error) {
	n := sym.To(c).String()

	v, ok := e.namespace.Get(n)
	if !ok {
		return nil, fault.New(fault.UnboundSymbol, "resolution failed: %s", sym.Repr(n)).At(sym.Source(c))
	}

	return v, nil
}

func (e *T) printf(format string, a ...interface{}) {
	if e.trace == nil {
		return
	}

	_, _ = fmt.Fprintf(e.trace, strings.Repeat("  ", e.depth)+format+"\n", a...)
}
