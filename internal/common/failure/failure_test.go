// Released under an MIT license. See LICENSE.

package failure

import (
	"errors"
	"testing"

	"github.com/drhodes/lazarus/internal/common/struct/loc"
)

func TestArityMessage(t *testing.T) {
	err := ArityError("cons", 2, 1)

	if s := err.Error(); s != "cons: expected 2 arguments, passed 1" {
		t.Fatalf("unexpected message %q", s)
	}

	if err.Expected != 2 || err.Actual != 1 {
		t.Fatalf("expected 2 and 1; got %d and %d", err.Expected, err.Actual)
	}
}

func TestKindThroughCauses(t *testing.T) {
	var err error = ParseError(loc.New("test", 3, 4), "expected an expression",
		LexError(loc.New("test", 3, 4), "@"))

	if !Is(err, Parse) || !Is(err, Lex) {
		t.Fatalf("expected parse and lex kinds in %v", err)
	}

	if Is(err, Type) {
		t.Fatalf("did not expect a type failure in %v", err)
	}
}

func TestSourcePrefix(t *testing.T) {
	err := Undefined("x", loc.New("main.scm", 10, 11))

	if s := err.Error(); s != "main.scm:10: undefined variable: x" {
		t.Fatalf("unexpected message %q", s)
	}
}

func TestCause(t *testing.T) {
	cause := errors.New("boom")
	err := ParseError(loc.New("test", 0, 1), "unterminated list", cause)

	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause")
	}

	if s := err.Error(); s != "test:0: unterminated list\n  boom" {
		t.Fatalf("unexpected message %q", s)
	}
}

func TestNotAFailure(t *testing.T) {
	if Is(errors.New("plain"), Type) {
		t.Fatal("a plain error has no kind")
	}

	if Is(nil, Type) {
		t.Fatal("nil has no kind")
	}
}
