// Released under an MIT license. See LICENSE.

// Package integer provides the exact number type.
package integer

import (
	"strconv"

	"github.com/nukata/goarith"

	"github.com/drhodes/lazarus/internal/common"
	"github.com/drhodes/lazarus/internal/common/interface/cell"
	"github.com/drhodes/lazarus/internal/common/interface/literal"
	"github.com/drhodes/lazarus/internal/common/interface/number"
	"github.com/drhodes/lazarus/internal/common/struct/loc"
)

const name = "int"

// T (integer) wraps Go's int64 type.
type T struct {
	source *loc.T
	v      int64
}

type integer = T

// New creates an integer cell.
func New(v int64) cell.I {
	return &integer{v: v}
}

// At creates an integer cell read from source.
func At(v int64, source *loc.T) cell.I {
	return &integer{source: source, v: v}
}

// Equal returns true if c is an integer with the same value.
func (i *integer) Equal(c cell.I) bool {
	return Is(c) && i.v == To(c).v
}

// Inexact returns false. Integers are exact.
func (i *integer) Inexact() bool {
	return false
}

// Int returns the value of the integer i.
func (i *integer) Int() int64 {
	return i.v
}

// Literal returns the printed representation of the integer i.
func (i *integer) Literal() string {
	return strconv.FormatInt(i.v, 10)
}

// Name returns the type name for the integer i.
func (i *integer) Name() string {
	return name
}

// Number returns the value of i for arithmetic.
func (i *integer) Number() goarith.Number {
	return goarith.AsNumber(i.v)
}

// Source returns where i was read, or nil.
func (i *integer) Source() *loc.T {
	return i.source
}

// String returns the text of the integer i.
func (i *integer) String() string {
	return i.Literal()
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t integer

	// The integer type is a cell.
	_ = cell.I(&t)

	// The integer type has a literal representation.
	_ = literal.I(&t)

	// The integer type is a number.
	_ = number.I(&t)

	// The integer type is a stringer.
	_ = common.Stringer(&t)
}
