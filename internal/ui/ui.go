// Released under an MIT license. See LICENSE.

// Package ui provides an interactive command-line interface for minilisp.
package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Dentosal/minilisp/internal/common/interface/cell"
	"github.com/Dentosal/minilisp/internal/common/interface/literal"
	"github.com/Dentosal/minilisp/internal/reader"
	"github.com/Dentosal/minilisp/internal/system/history"
	"github.com/peterh/liner"
	"github.com/samber/lo"
)

const (
	prompt       = "> "
	continuation = ". "
)

// Evaluator is the interface for things that want to process parsed forms.
type Evaluator interface {
	Execute(c cell.I) (cell.I, error)
	Names() []string
}

type prompter interface {
	AppendHistory(item string)
	Prompt(p string) (string, error)
}

// Run launches the UI which sends forms to the Evaluator. Each result is
// written to stdout in literal form. Errors are written to stderr.
func Run(e Evaluator, stdout, stderr io.Writer) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(completer(e))

	path := history.Path()

	if err := history.Load(path, cli.ReadHistory); err != nil {
		fmt.Fprintf(stderr, "Error: reading history: %v\n", err)
	}

	err := loop(cli, e, stdout, stderr)

	if herr := history.Save(path, cli.WriteHistory); herr != nil {
		fmt.Fprintf(stderr, "Error: saving history: %v\n", herr)
	}

	return err
}

// Print writes the result of executing a form: v in literal form to stdout,
// or err to stderr.
func Print(stdout, stderr io.Writer, v cell.I, err error) {
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)

		return
	}

	fmt.Fprintln(stdout, literal.String(v))
}

func completer(e Evaluator) liner.WordCompleter {
	return func(line string, pos int) (string, []string, string) {
		head, tail := line[:pos], line[pos:]

		i := strings.LastIndexAny(head, " \t()") + 1
		word := head[i:]

		cs := lo.Filter(e.Names(), func(n string, _ int) bool {
			return strings.HasPrefix(n, word)
		})

		return head[:i], cs, tail
	}
}

func loop(cli prompter, e Evaluator, stdout, stderr io.Writer) error {
	r := reader.New("repl")
	p := prompt

	for {
		line, err := cli.Prompt(p)

		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			r.Reset()

			p = prompt

			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(stdout)

			return nil
		case err != nil:
			return err
		}

		if strings.TrimSpace(line) != "" {
			cli.AppendHistory(line)
		}

		forms, err := r.Scan(line + "\n")

		for _, c := range forms {
			v, err := e.Execute(c)
			Print(stdout, stderr, v, err)
		}

		p = prompt

		if errors.Is(err, reader.ErrIncomplete) {
			p = continuation
		} else if err != nil {
			Print(stdout, stderr, nil, err)
		}
	}
}
