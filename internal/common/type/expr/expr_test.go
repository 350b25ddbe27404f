// Released under an MIT license. See LICENSE.

package expr

import (
	"testing"

	"github.com/Dentosal/minilisp/internal/common"
	"github.com/Dentosal/minilisp/internal/common/interface/cell"
	"github.com/Dentosal/minilisp/internal/common/interface/literal"
	"github.com/Dentosal/minilisp/internal/common/type/quote"
	"github.com/Dentosal/minilisp/internal/common/type/sym"
	"github.com/Dentosal/minilisp/internal/common/type/unit"
)

func TestEmptyIsUnit(t *testing.T) {
	if New() != unit.Unit {
		t.Fatal("an empty expression should be Unit")
	}
}

func TestEqual(t *testing.T) {
	a := New(sym.New("a"), quote.New(sym.New("b")))
	b := New(sym.New("a"), quote.New(sym.New("b")))
	c := New(sym.New("a"), sym.New("b"))

	if !a.Equal(b) {
		t.Fatalf("%s and %s should be equal", literal.String(a), literal.String(b))
	}

	if a.Equal(c) {
		t.Fatalf("%s and %s should differ", literal.String(a), literal.String(c))
	}

	if a.Equal(New(sym.New("a"))) {
		t.Fatal("expressions of different length should differ")
	}
}

func TestForms(t *testing.T) {
	e := New(sym.New("println"), quote.New(sym.New("hello")), unit.Unit)

	if s := literal.String(e); s != "(:println ':hello Unit)" {
		t.Fatalf("unexpected literal %s", s)
	}

	if s := common.String(e); s != "(println hello ())" {
		t.Fatalf("unexpected display %s", s)
	}
}

func TestWith(t *testing.T) {
	rest := []cell.I{sym.New("x"), sym.New("y")}

	e := To(With(sym.New("f"), rest))
	if e.Len() != 3 || !e.Head().Equal(sym.New("f")) {
		t.Fatalf("unexpected expression %s", e.Literal())
	}

	rest[0] = sym.New("z")
	if !e.Items()[1].Equal(sym.New("x")) {
		t.Fatal("With should not share the rest slice")
	}
}
