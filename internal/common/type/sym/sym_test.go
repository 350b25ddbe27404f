// Released under an MIT license. See LICENSE.

package sym

import (
	"testing"

	"github.com/Dentosal/minilisp/internal/common/struct/loc"
	"github.com/Dentosal/minilisp/internal/common/struct/token"
)

func TestInterning(t *testing.T) {
	if New("abc") != New("abc") {
		t.Fatal("short identifiers should be interned")
	}

	if New("true") != True {
		t.Fatal("true should be interned as True")
	}

	a, b := New("abcd"), New("abcd")
	if a == b {
		t.Fatal("long identifiers should not be interned")
	}

	if !a.Equal(b) {
		t.Fatal("long identifiers with the same name should compare equal")
	}
}

func TestPlusEqualsPlain(t *testing.T) {
	p := Token(token.New(token.Symbol, "foo", &loc.T{Name: "test", Line: 1, Char: 1}))

	if !p.Equal(New("foo")) || !New("foo").Equal(p) {
		t.Fatal("located and plain identifiers should compare equal")
	}

	if Source(p) == nil || Source(New("foo")) != nil {
		t.Fatal("only located identifiers have a source")
	}
}

func TestLiteral(t *testing.T) {
	if s := New("q:head").(*T).Literal(); s != ":q:head" {
		t.Fatalf("expected :q:head, got %s", s)
	}

	if s := Repr("a b"); s == "a b" {
		t.Fatalf("expected a quoted form for an identifier with a space, got %s", s)
	}
}

func TestEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an empty identifier")
		}
	}()

	New("")
}
