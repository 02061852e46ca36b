// Released under an MIT license. See LICENSE.

package lexer

import (
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/drhodes/lazarus/internal/common/failure"
	"github.com/drhodes/lazarus/internal/common/struct/token"
)

func TestFloats(t *testing.T) {
	h := setup(t, "Floats")

	h.scan("1.5 -0.25 .5 +.5 2.0e3 1.5E-2",
		h.float("1.5", 1.5),
		h.space(" "),
		h.float("-0.25", -0.25),
		h.space(" "),
		h.float(".5", 0.5),
		h.space(" "),
		h.float("+.5", 0.5),
		h.space(" "),
		h.float("2.0e3", 2000),
		h.space(" "),
		h.float("1.5E-2", 0.015),
		nil,
	)
}

func TestIntegers(t *testing.T) {
	h := setup(t, "Integers")

	h.scan("42 -5 +7 0",
		h.int("42", 42),
		h.space(" "),
		h.int("-5", -5),
		h.space(" "),
		h.int("+7", 7),
		h.space(" "),
		h.int("0", 0),
		nil,
	)
}

func TestList(t *testing.T) {
	h := setup(t, "List")

	h.scan("(+ 1 2)",
		h.punct('('),
		h.symbol("+"),
		h.space(" "),
		h.int("1", 1),
		h.space(" "),
		h.int("2", 2),
		h.punct(')'),
		nil,
	)
}

func TestNumberThenSymbol(t *testing.T) {
	h := setup(t, "NumberThenSymbol")

	// A float needs digits after the dot.
	h.scan("1.x",
		h.int("1", 1),
		h.punct('.'),
		h.symbol("x"),
		nil,
	)
}

func TestSigns(t *testing.T) {
	h := setup(t, "Signs")

	h.scan("- + -x",
		h.symbol("-"),
		h.space(" "),
		h.symbol("+"),
		h.space(" "),
		h.symbol("-x"),
		nil,
	)
}

func TestSymbols(t *testing.T) {
	h := setup(t, "Symbols")

	h.scan("set! null? <= a1 #t x\\y",
		h.symbol("set!"),
		h.space(" "),
		h.symbol("null?"),
		h.space(" "),
		h.symbol("<="),
		h.space(" "),
		h.symbol("a1"),
		h.space(" "),
		h.symbol("#t"),
		h.space(" "),
		h.symbol("x\\y"),
		nil,
	)
}

func TestLines(t *testing.T) {
	l := New("Lines", "a\n  b")

	ts, err := l.Tokens()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ts) != 3 {
		t.Fatalf("expected 3 tokens; got %s", spew.Sdump(ts))
	}

	b := ts[2].Source()
	if b.Line != 2 || b.Char != 3 || b.Start != 4 {
		t.Fatalf("expected b at line 2, column 3, offset 4; got %s", spew.Sdump(b))
	}
}

func TestInvalidCharacter(t *testing.T) {
	_, err := New("Invalid", "(a @ b)").Tokens()
	if !failure.Is(err, failure.Lex) {
		t.Fatalf("expected a lex failure; got %v", err)
	}
}

func TestIntegerOverflow(t *testing.T) {
	_, err := New("Overflow", "99999999999999999999").Tokens()
	if !failure.Is(err, failure.Lex) {
		t.Fatalf("expected a lex failure; got %v", err)
	}
}

func TestEmpty(t *testing.T) {
	ts, err := New("Empty", "").Tokens()
	if err != nil || len(ts) != 0 {
		t.Fatalf("expected no tokens; got %s %v", spew.Sdump(ts), err)
	}
}

type expected struct {
	class token.Class
	f     float64
	i     int64
	start int
	value string
}

type harness struct {
	index int
	label string
	t     *testing.T
}

func setup(t *testing.T, label string) *harness {
	return &harness{label: label, t: t}
}

func (h *harness) next(class token.Class, s string) *expected {
	e := &expected{class: class, start: h.index, value: s}
	h.index += len(s)

	return e
}

func (h *harness) float(s string, f float64) *expected {
	e := h.next(token.Float, s)
	e.f = f

	return e
}

func (h *harness) int(s string, i int64) *expected {
	e := h.next(token.Int, s)
	e.i = i

	return e
}

func (h *harness) punct(r rune) *expected {
	return h.next(token.Class(r), string(r))
}

func (h *harness) space(s string) *expected {
	return h.next(token.Space, s)
}

func (h *harness) symbol(s string) *expected {
	return h.next(token.Symbol, s)
}

func (h *harness) scan(text string, tokens ...*expected) {
	l := New(h.label, text)

	for _, e := range tokens {
		a := l.Token()

		switch {
		case a == nil && e == nil:
			continue
		case a == nil:
			h.t.Fatalf("Expected %v but there are no tokens", spew.Sdump(e))
		case e == nil:
			h.t.Fatalf("Expected no tokens; got %v", a)
		case a.Class() != e.class || a.Value() != e.value || a.Start() != e.start:
			h.t.Fatalf("Expected %v; got %v", spew.Sdump(e), a)
		case a.Is(token.Float) && a.Float() != e.f:
			h.t.Fatalf("Expected %v; got %v", e.f, a.Float())
		case a.Is(token.Int) && a.Int() != e.i:
			h.t.Fatalf("Expected %v; got %v", e.i, a.Int())
		case a.Is(token.Symbol) && a.Symbol().Name != e.value:
			h.t.Fatalf("Expected symbol %q; got %v", e.value, a.Symbol())
		}
	}
}
