// Released under an MIT license. See LICENSE.

package fault

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Dentosal/minilisp/internal/common/struct/loc"
)

func TestIsMatchesKind(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", New(UnboundSymbol, "resolution failed %q", "x"))

	if !errors.Is(err, UnboundSymbol) {
		t.Fatal("expected an unbound symbol fault")
	}

	if errors.Is(err, TypeMismatch) {
		t.Fatal("did not expect a type mismatch")
	}

	var f *T
	if !errors.As(err, &f) || f.Kind != UnboundSymbol {
		t.Fatal("expected to unwrap a fault")
	}
}

func TestSource(t *testing.T) {
	f := New(AssertionFailed, "assertion failed").At(&loc.T{Name: "test", Line: 2, Char: 7})

	if s := f.Error(); s != "test:2:7: assertion failed" {
		t.Fatalf("unexpected message %q", s)
	}
}
