// Released under an MIT license. See LICENSE.

// Package pair provides the cons cell type.
package pair

import (
	"github.com/drhodes/lazarus/internal/common"
	"github.com/drhodes/lazarus/internal/common/failure"
	"github.com/drhodes/lazarus/internal/common/interface/cell"
	"github.com/drhodes/lazarus/internal/common/interface/literal"
)

const name = "cons"

//nolint:gochecknoglobals
var (
	// Null is the empty list. It is also used to mark the end of a list.
	Null cell.I
)

// T (pair) is a cons cell.
type T struct {
	car cell.I
	cdr cell.I
}

type pair = T

// Equal returns true if c is a pair with elements that are equal to p's.
func (p *pair) Equal(c cell.I) bool {
	if p == Null || c == Null {
		return c == cell.I(p)
	}

	if !Is(c) {
		return false
	}

	o := To(c)

	return p.car.Equal(o.car) && p.cdr.Equal(o.cdr)
}

// Literal returns the printed representation of the pair p.
func (p *pair) Literal() string {
	if p == Null {
		return "()"
	}

	return "(" + literal.String(p.car) + " . " + literal.String(p.cdr) + ")"
}

// Name returns the name for a pair type.
func (p *pair) Name() string {
	if p == Null {
		return "nil"
	}

	return name
}

// String returns the text representation of the pair p.
func (p *pair) String() string {
	return p.Literal()
}

// Functions specific to pair.

// Car returns the car/head/first member of the pair c.
func Car(c cell.I) (cell.I, error) {
	if !IsCons(c) {
		return nil, failure.TypeError("car: expected a pair, got %s", describe(c))
	}

	return To(c).car, nil
}

// Cdr returns the cdr/tail/rest member of the pair c.
func Cdr(c cell.I) (cell.I, error) {
	if !IsCons(c) {
		return nil, failure.TypeError("cdr: expected a pair, got %s", describe(c))
	}

	return To(c).cdr, nil
}

// Cadr returns the car of the cdr of the pair c.
func Cadr(c cell.I) (cell.I, error) {
	return walk(c, Cdr, Car)
}

// Caddr returns the car of the cdr of the cdr of the pair c.
func Caddr(c cell.I) (cell.I, error) {
	return walk(c, Cdr, Cdr, Car)
}

// Cdadr returns the cdr of the car of the cdr of the pair c.
func Cdadr(c cell.I) (cell.I, error) {
	return walk(c, Cdr, Car, Cdr)
}

// Cddr returns the cdr of the cdr of the pair c.
func Cddr(c cell.I) (cell.I, error) {
	return walk(c, Cdr, Cdr)
}

// Cdddr returns the cdr of the cdr of the cdr of the pair c.
func Cdddr(c cell.I) (cell.I, error) {
	return walk(c, Cdr, Cdr, Cdr)
}

// Cons conses h and t together to form a new pair.
func Cons(h, t cell.I) cell.I {
	return &pair{car: h, cdr: t}
}

// IsCons returns true if c is a pair other than Null.
func IsCons(c cell.I) bool {
	return c != Null && Is(c)
}

// IsList returns true if c is Null or a pair whose cdr is a list.
func IsList(c cell.I) bool {
	for c != Null {
		if !Is(c) {
			return false
		}

		c = To(c).cdr
	}

	return true
}

func describe(c cell.I) string {
	if c == nil {
		return "nothing"
	}

	if c == Null {
		return "the empty list"
	}

	return c.Name() + " " + literal.String(c)
}

func walk(c cell.I, steps ...func(cell.I) (cell.I, error)) (cell.I, error) {
	var err error

	for _, step := range steps {
		c, err = step(c)
		if err != nil {
			return nil, err
		}
	}

	return c, nil
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t pair

	// The pair type is a cell.
	_ = cell.I(&t)

	// The pair type has a literal representation.
	_ = literal.I(&t)

	// The pair type is a stringer.
	_ = common.Stringer(&t)
}

func init() { //nolint:gochecknoinits
	pair := &pair{}
	pair.car = pair
	pair.cdr = pair

	Null = cell.I(pair)
}
