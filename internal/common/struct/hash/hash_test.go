// Released under an MIT license. See LICENSE.

package hash

import (
	"testing"

	"github.com/Dentosal/minilisp/internal/common/type/sym"
	"github.com/Dentosal/minilisp/internal/common/type/unit"
)

func TestSetGetDel(t *testing.T) {
	h := New()

	if _, ok := h.Get("x"); ok {
		t.Fatal("fresh hash should be empty")
	}

	h.Set("x", sym.New("five"))

	v, ok := h.Get("x")
	if !ok || !v.Equal(sym.New("five")) {
		t.Fatal("expected x to be bound to five")
	}

	if !h.Del("x") {
		t.Fatal("expected x to be deleted")
	}

	if h.Del("x") {
		t.Fatal("deleting an unbound name should report false")
	}

	if names := h.Names(); len(names) != 0 {
		t.Fatalf("expected an empty hash, got %v", names)
	}
}

func TestNames(t *testing.T) {
	h := New()
	h.Set("b", unit.Unit)
	h.Set("a", unit.Unit)

	names := h.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Fatalf("unexpected names %v", names)
	}
}

func TestNilHash(t *testing.T) {
	var h *T

	if _, ok := h.Get("x"); ok || h.Del("x") || len(h.Names()) != 0 {
		t.Fatal("a nil hash should behave as empty")
	}
}
