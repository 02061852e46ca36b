// Released under an MIT license. See LICENSE.

package ast

import (
	"testing"

	"github.com/drhodes/lazarus/internal/common/struct/loc"
	"github.com/drhodes/lazarus/internal/common/struct/token"
	"github.com/drhodes/lazarus/internal/common/type/integer"
	"github.com/drhodes/lazarus/internal/common/type/list"
	"github.com/drhodes/lazarus/internal/common/type/pair"
	"github.com/drhodes/lazarus/internal/common/type/sym"
)

func leaf(class token.Class, text string) *T {
	source := loc.New("test", 0, len(text))

	switch class {
	case token.Int:
		return Leaf(token.NewInt(1, text, source))
	case token.Symbol:
		return Leaf(token.NewSymbol(text, source))
	}

	return Leaf(token.New(class, text, source))
}

func TestCell(t *testing.T) {
	n := Node(List, leaf(token.Symbol, "a"), Node(List), leaf(token.Int, "1"))

	expected := list.New(sym.New("a"), pair.Null, integer.New(1))
	if c := n.Cell(); !c.Equal(expected) {
		t.Fatalf("expected (a () 1); got %v", c)
	}

	if s := n.String(); s != "(a () 1)" {
		t.Fatalf("unexpected text %q", s)
	}
}

func TestEmptyRules(t *testing.T) {
	for _, r := range []Rule{Empty, EmptyList} {
		if c := Node(r).Cell(); c != pair.Null {
			t.Fatalf("%v: expected the empty list; got %v", r, c)
		}
	}
}

func TestExprsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected converting an Exprs node to panic")
		}
	}()

	Node(Exprs, leaf(token.Int, "1")).Cell()
}

func TestPunctuationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected converting a paren leaf to panic")
		}
	}()

	leaf(token.LParen, "(").Cell()
}
