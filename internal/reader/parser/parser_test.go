// Released under an MIT license. See LICENSE.

package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/Dentosal/minilisp/internal/common"
	"github.com/Dentosal/minilisp/internal/common/interface/cell"
	"github.com/Dentosal/minilisp/internal/common/interface/literal"
	"github.com/Dentosal/minilisp/internal/common/type/expr"
	"github.com/Dentosal/minilisp/internal/common/type/sym"
	"github.com/Dentosal/minilisp/internal/common/type/unit"
	"github.com/Dentosal/minilisp/internal/engine/boot"
	"github.com/Dentosal/minilisp/internal/reader/lexer"
)

func TestBoot(t *testing.T) {
	for _, u := range boot.Prelude() {
		check(t, u.Text)
	}
}

func TestEmptyIsUnit(t *testing.T) {
	forms, err := parse("()\n(a ())\n")
	if err != nil {
		t.Fatal(err)
	}

	if len(forms) != 2 || forms[0] != unit.Unit {
		t.Fatalf("expected Unit first, got %v", literal.Join(forms))
	}

	e := expr.To(forms[1])
	if e.Items()[1] != unit.Unit {
		t.Fatalf("expected (a ()) to hold Unit, got %s", literal.String(forms[1]))
	}
}

func TestIncomplete(t *testing.T) {
	l := lexer.New("test")

	var forms []cell.I

	p := New(func(c cell.I) { forms = append(forms, c) }, l.Token)

	l.Scan("(println\n")

	if err := p.Parse(); !errors.Is(err, ErrIncomplete) {
		t.Fatalf("expected ErrIncomplete, got %v", err)
	}

	if err := p.Unclosed(); err == nil || !strings.HasPrefix(err.Error(), "test:1:1") {
		t.Fatalf("expected unmatched '(' at test:1:1, got %v", err)
	}

	l.Scan("  hello)\n")

	if err := p.Parse(); err != nil {
		t.Fatal(err)
	}

	if len(forms) != 1 || literal.String(forms[0]) != "(:println :hello)" {
		t.Fatalf("unexpected forms: %s", literal.Join(forms))
	}
}

func TestLocations(t *testing.T) {
	forms, err := parse("\n  (f x)\n")
	if err != nil {
		t.Fatal(err)
	}

	x := expr.To(forms[0]).Items()[1]
	if s := sym.Source(x).String(); s != "test:2:6" {
		t.Fatalf("expected x at test:2:6, got %s", s)
	}
}

func TestNested(t *testing.T) {
	check(t, "(set (quote one) (q:concat (quote (s)) zero))\n")
}

func TestUnexpectedClose(t *testing.T) {
	_, err := parse("(a))\n")
	if err == nil || err.Error() != "test:1:4: unexpected ')'" {
		t.Fatalf("expected unexpected ')' at test:1:4, got %v", err)
	}
}

func check(t *testing.T, s string) {
	t.Helper()

	p := reparse(t, s)
	r := reparse(t, p)

	if p != r {
		t.Fatalf("Parsed (%s) and reparsed (%s) do not match", p, r)
	}
}

func parse(s string) ([]cell.I, error) {
	l := lexer.New("test")

	l.Scan(s)

	var forms []cell.I

	err := New(func(c cell.I) {
		forms = append(forms, c)
	}, l.Token).Parse()

	return forms, err
}

func reparse(t *testing.T, s string) string {
	t.Helper()

	forms, err := parse(s)
	if err != nil {
		t.Fatal(err)
	}

	r := ""
	for _, c := range forms {
		r += common.String(c) + "\n"
	}

	return r
}
