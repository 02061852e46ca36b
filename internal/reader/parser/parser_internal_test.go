// Released under an MIT license. See LICENSE.

package parser

import (
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/drhodes/lazarus/internal/common/failure"
	"github.com/drhodes/lazarus/internal/reader/ast"
	"github.com/drhodes/lazarus/internal/reader/lexer"
)

func setup(t *testing.T, text string) *T {
	ts, err := lexer.New(t.Name(), text).Tokens()
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}

	return New(t.Name(), ts)
}

func TestFailedProductionKeepsCursor(t *testing.T) {
	p := setup(t, "foo")

	if _, err := p.Float(); err == nil {
		t.Fatal("expected float to fail on a symbol")
	}

	if p.Mark() != 0 {
		t.Fatalf("expected cursor 0; got %d", p.Mark())
	}

	n, err := p.Symbol()
	if err != nil {
		t.Fatalf("expected the same token to parse as a symbol: %v", err)
	}

	if n.Token().Value() != "foo" {
		t.Fatalf("expected foo; got %s", spew.Sdump(n))
	}
}

func TestFailedListKeepsCursor(t *testing.T) {
	p := setup(t, "(a b")

	if _, err := p.List(); err == nil {
		t.Fatal("expected an unterminated list to fail")
	}

	if p.Mark() != 0 {
		t.Fatalf("expected cursor 0; got %d", p.Mark())
	}

	if _, err := p.LParen(); err != nil {
		t.Fatalf("expected '(' to still be available: %v", err)
	}
}

func TestNested(t *testing.T) {
	p := setup(t, "(define (f x) (* x 2.5))")

	n, err := p.Form()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n.Rule() != ast.List || len(n.Children()) != 3 {
		t.Fatalf("expected a three element list; got %s", spew.Sdump(n))
	}

	if s := n.String(); s != "(define (f x) (* x 2.5))" {
		t.Fatalf("expected round trip; got %q", s)
	}
}

func TestEmptyList(t *testing.T) {
	p := setup(t, "()")

	n, err := p.Form()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n.Rule() != ast.List || len(n.Children()) != 0 {
		t.Fatalf("expected an empty list; got %s", spew.Sdump(n))
	}
}

func TestForms(t *testing.T) {
	p := setup(t, "1 (a) b\n")

	ns, err := p.Forms()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ns) != 3 {
		t.Fatalf("expected 3 forms; got %s", spew.Sdump(ns))
	}
}

func TestParseFailures(t *testing.T) {
	for _, text := range []string{
		"",
		")",
		"(a b",
		"(a . b)",
		"1 2",
	} {
		p := setup(t, text)

		if _, err := p.Form(); !failure.Is(err, failure.Parse) {
			t.Fatalf("%q: expected a parse failure; got %v", text, err)
		}
	}
}
