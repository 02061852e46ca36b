// Released under an MIT license. See LICENSE.

package env_test

import (
	"testing"

	"github.com/drhodes/lazarus/internal/common/failure"
	"github.com/drhodes/lazarus/internal/common/interface/cell"
	"github.com/drhodes/lazarus/internal/common/struct/symbol"
	"github.com/drhodes/lazarus/internal/common/type/env"
	"github.com/drhodes/lazarus/internal/common/type/integer"
	"github.com/drhodes/lazarus/internal/common/type/list"
	"github.com/drhodes/lazarus/internal/common/type/sym"
)

func TestLookupWalksOutward(t *testing.T) {
	global := env.New(nil)
	global.Define(symbol.Named("x"), integer.New(1))

	inner := env.New(env.New(global))

	v, err := inner.Lookup(symbol.Named("x"))
	if err != nil || !v.Equal(integer.New(1)) {
		t.Fatalf("expected 1; got %v %v", v, err)
	}
}

func TestShadowing(t *testing.T) {
	global := env.New(nil)
	global.Define(symbol.Named("x"), integer.New(1))

	inner := env.New(global)
	inner.Define(symbol.Named("x"), integer.New(2))

	v, _ := inner.Lookup(symbol.Named("x"))
	if !v.Equal(integer.New(2)) {
		t.Fatalf("expected inner binding 2; got %v", v)
	}

	v, _ = global.Lookup(symbol.Named("x"))
	if !v.Equal(integer.New(1)) {
		t.Fatalf("expected outer binding 1; got %v", v)
	}
}

func TestRedefinition(t *testing.T) {
	e := env.New(nil)

	for i := int64(0); i < 3; i++ {
		e.Define(symbol.Named("x"), integer.New(i))
	}

	v, _ := e.Lookup(symbol.Named("x"))
	if !v.Equal(integer.New(2)) {
		t.Fatalf("expected most recent value 2; got %v", v)
	}

	if n := e.Frame().Size(); n != 1 {
		t.Fatalf("expected one binding; got %d", n)
	}
}

func TestSetUpdatesDefiningFrame(t *testing.T) {
	global := env.New(nil)
	global.Define(symbol.Named("x"), integer.New(1))

	inner := env.New(global)

	if err := inner.Set(symbol.Named("x"), integer.New(5)); err != nil {
		t.Fatal(err)
	}

	if inner.Frame().Size() != 0 {
		t.Fatal("set! must not create a binding in the inner frame")
	}

	v, _ := global.Lookup(symbol.Named("x"))
	if !v.Equal(integer.New(5)) {
		t.Fatalf("expected 5; got %v", v)
	}
}

func TestSetUnbound(t *testing.T) {
	err := env.New(env.New(nil)).Set(symbol.Named("y"), integer.New(1))
	if !failure.Is(err, failure.Unbound) {
		t.Fatalf("expected an unbound failure; got %v", err)
	}
}

func TestLookupUnbound(t *testing.T) {
	_, err := env.New(nil).Lookup(symbol.Named("nope"))
	if !failure.Is(err, failure.Unbound) {
		t.Fatalf("expected an unbound failure; got %v", err)
	}
}

func TestExtend(t *testing.T) {
	global := env.New(nil)
	params := list.New(sym.New("a"), sym.New("b"))

	x, err := global.Extend(params, list.New(integer.New(1), integer.New(2)))
	if err != nil {
		t.Fatal(err)
	}

	if x.Enclosing() != global {
		t.Fatal("expected the new env to enclose global")
	}

	v, _ := x.Lookup(symbol.Named("b"))
	if !v.Equal(integer.New(2)) {
		t.Fatalf("expected b = 2; got %v", v)
	}

	for _, args := range []cell.I{
		list.New(integer.New(1)),
		list.New(integer.New(1), integer.New(2), integer.New(3)),
	} {
		_, err := global.Extend(params, args)
		if !failure.Is(err, failure.Arity) {
			t.Fatalf("expected an arity failure; got %v", err)
		}
	}
}
