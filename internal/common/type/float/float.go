// Released under an MIT license. See LICENSE.

// Package float provides the inexact number type.
package float

import (
	"strconv"
	"strings"

	"github.com/nukata/goarith"

	"github.com/drhodes/lazarus/internal/common"
	"github.com/drhodes/lazarus/internal/common/interface/cell"
	"github.com/drhodes/lazarus/internal/common/interface/literal"
	"github.com/drhodes/lazarus/internal/common/interface/number"
	"github.com/drhodes/lazarus/internal/common/struct/loc"
)

const name = "float"

// T (float) wraps Go's float64 type.
type T struct {
	source *loc.T
	v      float64
}

type float = T

// New creates a float cell.
func New(v float64) cell.I {
	return &float{v: v}
}

// At creates a float cell read from source.
func At(v float64, source *loc.T) cell.I {
	return &float{source: source, v: v}
}

// Equal returns true if c is a float with the same value.
func (f *float) Equal(c cell.I) bool {
	return Is(c) && f.v == To(c).v
}

// Float returns the value of the float f.
func (f *float) Float() float64 {
	return f.v
}

// Inexact returns true.
func (f *float) Inexact() bool {
	return true
}

// Literal returns the printed representation of the float f.
// It always reads back as a float.
func (f *float) Literal() string {
	s := strconv.FormatFloat(f.v, 'g', -1, 64)
	if strings.ContainsAny(s, ".eIN") {
		return s
	}

	return s + ".0"
}

// Name returns the type name for the float f.
func (f *float) Name() string {
	return name
}

// Number returns the value of f for arithmetic.
func (f *float) Number() goarith.Number {
	return goarith.AsNumber(f.v)
}

// Source returns where f was read, or nil.
func (f *float) Source() *loc.T {
	return f.source
}

// String returns the text of the float f.
func (f *float) String() string {
	return f.Literal()
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t float

	// The float type is a cell.
	_ = cell.I(&t)

	// The float type has a literal representation.
	_ = literal.I(&t)

	// The float type is a number.
	_ = number.I(&t)

	// The float type is a stringer.
	_ = common.Stringer(&t)
}
