// Released under an MIT license. See LICENSE.

/*
Minilisp is a minimal homoiconic language. Programs are parenthesized forms
that are evaluated by rewriting them until they reach a normal form:

	(set (quote x) (quote hello))
	(println x)
	((lambda (quote a) (quote (println a))) (quote world))

With no arguments and a terminal on stdin, minilisp starts a REPL that
echoes each result. Otherwise it runs each form of each script in order,
reporting errors and carrying on with the next form.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Dentosal/minilisp/internal/common/fault"
	"github.com/Dentosal/minilisp/internal/common/interface/cell"
	"github.com/Dentosal/minilisp/internal/common/interface/literal"
	"github.com/Dentosal/minilisp/internal/common/type/quote"
	"github.com/Dentosal/minilisp/internal/common/validate"
	"github.com/Dentosal/minilisp/internal/engine"
	"github.com/Dentosal/minilisp/internal/engine/commands"
	"github.com/Dentosal/minilisp/internal/system/options"
	"github.com/Dentosal/minilisp/internal/ui"
)

const version = "minilisp 0.1.0"

func main() {
	o := options.Parse(os.Args[1:], version)

	os.Exit(run(o, os.Stdin, os.Stdout, os.Stderr))
}

func batch(e *engine.T, name, text string, stderr io.Writer) int {
	status := 0

	err := e.Evaluate(name, text, func(_ cell.I, err error) {
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)

			status = 1
		}
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)

		return 1
	}

	return status
}

// The load builtin runs the file at the quoted path and returns the value
// of its last form.
func load(e *engine.T) commands.Func {
	return func(_ commands.Machine, args []cell.I) (cell.I, error) {
		if err := validate.Fixed("load", args, 1, 1); err != nil {
			return nil, err
		}

		path, ok := quote.Identifier(args[0])
		if !ok {
			return nil, fault.New(fault.TypeMismatch,
				"load: quoted path required, got %s", literal.String(args[0]))
		}

		return e.Load(path)
	}
}

func run(o *options.T, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg := engine.Config{
		Lax:    o.Lax,
		Output: stdout,
		Stop:   o.Stop,
	}

	if o.Trace {
		cfg.Trace = stderr
	}

	e := engine.New(cfg)

	e.Define("load", load(e))

	units, err := prelude(o)
	if err == nil {
		err = e.Boot(units...)
	}

	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)

		return 1
	}

	switch {
	case o.Command != "":
		return batch(e, "command", o.Command, stderr)

	case len(o.Scripts) > 0:
		status := 0

		for _, path := range o.Scripts {
			b, err := os.ReadFile(path)
			if err != nil {
				fmt.Fprintf(stderr, "Error: %v\n", err)

				status = 1

				continue
			}

			if batch(e, path, string(b), stderr) != 0 {
				status = 1
			}
		}

		return status

	case o.Interactive:
		if err := ui.Run(e, stdout, stderr); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)

			return 1
		}

		return 0
	}

	b, err := io.ReadAll(stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)

		return 1
	}

	return batch(e, "stdin", string(b), stderr)
}
