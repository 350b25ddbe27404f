// Released under an MIT license. See LICENSE.

package validate

import (
	"errors"
	"testing"

	"github.com/Dentosal/minilisp/internal/common/fault"
	"github.com/Dentosal/minilisp/internal/common/interface/cell"
	"github.com/Dentosal/minilisp/internal/common/type/unit"
)

func TestFixed(t *testing.T) {
	one := []cell.I{unit.Unit}

	if err := Fixed("assert", one, 1, 1); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	err := Fixed("eq?", one, 2, 2)
	if !errors.Is(err, fault.ArityMismatch) {
		t.Fatalf("expected an arity mismatch, got %v", err)
	}

	if s := err.Error(); s != "eq?: expected 2 arguments, passed 1" {
		t.Fatalf("unexpected message %q", s)
	}
}

func TestVariadic(t *testing.T) {
	if err := Variadic("lambda", nil, 1); !errors.Is(err, fault.ArityMismatch) {
		t.Fatalf("expected an arity mismatch, got %v", err)
	}

	if err := Variadic("block", nil, 0); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestCount(t *testing.T) {
	for n, want := range map[int]string{
		0: "0 arguments",
		1: "1 argument",
		3: "3 arguments",
	} {
		if s := count(n, "argument", "s"); s != want {
			t.Fatalf("expected %q, got %q", want, s)
		}
	}

	err := Fixed("branch", nil, 2, 3)
	if s := err.Error(); s != "branch: expected 2 to 3 arguments, passed 0" {
		t.Fatalf("unexpected message %q", s)
	}

	err = Variadic("lambda", nil, 1)
	if s := err.Error(); s != "lambda: expected at least 1 argument, passed 0" {
		t.Fatalf("unexpected message %q", s)
	}
}
