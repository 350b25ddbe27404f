// Released under an MIT license. See LICENSE.

package options

import (
	"testing"

	"github.com/docopt/docopt-go"
	"golang.org/x/exp/slices"
)

func TestCommand(t *testing.T) {
	o := check(t, false, "-c", "(println (quote hi))")

	if o.Command != "(println (quote hi))" || o.Interactive {
		t.Fatalf("unexpected options: %+v", o)
	}
}

func TestDefaults(t *testing.T) {
	o := check(t, false)

	switch {
	case o.Stop != "true":
		t.Fatalf("expected stop identifier true, got %q", o.Stop)
	case o.Lax, o.NoPrelude, o.Trace, o.Interactive:
		t.Fatalf("unexpected flags: %+v", o)
	case o.Prelude != "" || o.Command != "" || len(o.Scripts) != 0:
		t.Fatalf("unexpected values: %+v", o)
	}
}

func TestFlags(t *testing.T) {
	o := check(t, false, "-t", "--lax", "-n", "--stop=yes", "-p", "lib/*.mls", "-s")

	switch {
	case !o.Trace, !o.Lax, !o.NoPrelude:
		t.Fatalf("expected flags to be set: %+v", o)
	case o.Stop != "yes", o.Prelude != "lib/*.mls":
		t.Fatalf("unexpected values: %+v", o)
	}
}

func TestInteractive(t *testing.T) {
	if o := check(t, true); !o.Interactive {
		t.Fatal("expected interactive mode on a terminal")
	}

	if o := check(t, true, "-i"); o.Interactive {
		t.Fatal("expected -i to disable interactive mode")
	}

	if o := check(t, false, "-i"); !o.Interactive {
		t.Fatal("expected -i to enable interactive mode")
	}

	if o := check(t, true, "a.mls"); o.Interactive {
		t.Fatal("expected a script to disable interactive mode")
	}
}

func TestScripts(t *testing.T) {
	o := check(t, false, "--trace", "a.mls", "b.mls")

	if !slices.Equal(o.Scripts, []string{"a.mls", "b.mls"}) || !o.Trace {
		t.Fatalf("unexpected options: %+v", o)
	}
}

func TestUsageError(t *testing.T) {
	p := &docopt.Parser{HelpHandler: docopt.NoHelpHandler}

	if _, err := parse(p, []string{"--bogus"}, "test", false); err == nil {
		t.Fatal("expected an error for an unknown option")
	}
}

func check(t *testing.T, terminal bool, argv ...string) *T {
	t.Helper()

	if argv == nil {
		// A nil argv means os.Args.
		argv = []string{}
	}

	p := &docopt.Parser{HelpHandler: docopt.NoHelpHandler}

	o, err := parse(p, argv, "test", terminal)
	if err != nil {
		t.Fatal(err)
	}

	return o
}
