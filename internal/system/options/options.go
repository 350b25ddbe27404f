// Released under an MIT license. See LICENSE.

// Package options parses the minilisp command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

const usage = `minilisp

Usage:
  minilisp [options] SCRIPT...
  minilisp [options] -c COMMAND
  minilisp [options] [-s]
  minilisp -h | --help
  minilisp -v | --version

Arguments:
  SCRIPT  Path to a minilisp script. Scripts are run in order.

Options:
  -c, --command=COMMAND  Evaluate COMMAND.
  -i, --interactive      Invert interactive mode.
  -s, --stdin            Read forms from stdin.
  -t, --trace            Print every reduction step to stderr.
  -p, --prelude=GLOB     Load prelude files matching GLOB.
  -n, --no-prelude       Do not load any prelude.
  -l, --lax              Accept any non-unit branch condition.
  --stop=NAME            Stop identifier for eq? [default: true].
  -h, --help             Display this help.
  -v, --version          Print minilisp version.

If minilisp's stdin is a TTY, and minilisp was invoked with no scripts and
no command, interactive mode is enabled. Otherwise, it is disabled.
`

// T (options) holds the parsed command line.
type T struct {
	Command     string
	Interactive bool
	Lax         bool
	NoPrelude   bool
	Prelude     string
	Scripts     []string
	Stop        string
	Trace       bool
}

// Parse parses argv. On a usage error, or when help or the version is
// requested, it prints a message and exits.
func Parse(argv []string, version string) *T {
	p := &docopt.Parser{HelpHandler: docopt.PrintHelpAndExit}

	o, err := parse(p, argv, version, isatty.IsTerminal(os.Stdin.Fd()))
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	return o
}

func parse(p *docopt.Parser, argv []string, version string, terminal bool) (*T, error) {
	opts, err := p.ParseArgs(usage, argv, version)
	if err != nil {
		return nil, err
	}

	o := &T{}

	o.Command, _ = opts.String("--command")
	o.Lax, _ = opts.Bool("--lax")
	o.NoPrelude, _ = opts.Bool("--no-prelude")
	o.Prelude, _ = opts.String("--prelude")
	o.Scripts, _ = opts["SCRIPT"].([]string)
	o.Stop, _ = opts.String("--stop")
	o.Trace, _ = opts.Bool("--trace")

	if len(o.Scripts) == 0 && o.Command == "" {
		o.Interactive = terminal
	}

	invert, _ := opts.Bool("--interactive")
	o.Interactive = o.Interactive != invert

	return o, nil
}
