// Released under an MIT license. See LICENSE.

package list_test

import (
	"testing"

	"github.com/drhodes/lazarus/internal/common/failure"
	"github.com/drhodes/lazarus/internal/common/interface/cell"
	"github.com/drhodes/lazarus/internal/common/type/integer"
	"github.com/drhodes/lazarus/internal/common/type/list"
	"github.com/drhodes/lazarus/internal/common/type/pair"
)

func TestLength(t *testing.T) {
	for expected, l := range []cell.I{
		pair.Null,
		list.New(integer.New(1)),
		list.New(integer.New(1), integer.New(2)),
	} {
		n, err := list.Length(l)
		if err != nil || n != expected {
			t.Fatalf("expected %d; got %d %v", expected, n, err)
		}
	}
}

func TestLengthOfNonList(t *testing.T) {
	if _, err := list.Length(integer.New(1)); !failure.Is(err, failure.Type) {
		t.Fatalf("expected a type failure; got %v", err)
	}
}

func TestSlice(t *testing.T) {
	cs, err := list.Slice(list.New(integer.New(1), integer.New(2)))
	if err != nil || len(cs) != 2 || !cs[1].Equal(integer.New(2)) {
		t.Fatalf("expected [1 2]; got %v %v", cs, err)
	}

	_, err = list.Slice(pair.Cons(integer.New(1), integer.New(2)))
	if !failure.Is(err, failure.Type) {
		t.Fatalf("expected a type failure for a dotted pair; got %v", err)
	}
}
