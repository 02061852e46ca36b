// Released under an MIT license. See LICENSE.

// Package builtin provides the primitive procedure type.
package builtin

import (
	"github.com/drhodes/lazarus/internal/common"
	"github.com/drhodes/lazarus/internal/common/interface/cell"
	"github.com/drhodes/lazarus/internal/common/interface/literal"
)

const name = "primitive"

// Function is the Go implementation of a primitive. It receives the
// evaluated arguments as a list.
type Function func(args cell.I) (cell.I, error)

// T (builtin) is a primitive procedure.
type T struct {
	fn    Function
	label string
}

type builtin = T

// New creates a builtin called label.
func New(label string, fn Function) cell.I {
	return &builtin{fn: fn, label: label}
}

// Call applies the builtin b to the list args.
func (b *builtin) Call(args cell.I) (cell.I, error) {
	return b.fn(args)
}

// Equal returns true if c is the same builtin as b.
func (b *builtin) Equal(c cell.I) bool {
	return Is(c) && b == To(c)
}

// Label returns the name the builtin b was created with.
func (b *builtin) Label() string {
	return b.label
}

// Literal returns the printed representation of the builtin b.
func (b *builtin) Literal() string {
	return "<fn>"
}

// Name returns the type name for the builtin b.
func (b *builtin) Name() string {
	return name
}

// String returns the text of the builtin b.
func (b *builtin) String() string {
	return b.Literal()
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t builtin

	// The builtin type is a cell.
	_ = cell.I(&t)

	// The builtin type has a literal representation.
	_ = literal.I(&t)

	// The builtin type is a stringer.
	_ = common.Stringer(&t)
}
