// Released under an MIT license. See LICENSE.

// Package truth defines the interface for types that have a truth value.
package truth

import (
	"github.com/drhodes/lazarus/internal/common/interface/cell"
)

// I (truth) is anything that can be false.
type I interface {
	Bool() bool
}

// Value returns the truth value for a cell.
// Only a cell that says it is false is false; everything else is true.
func Value(c cell.I) bool {
	b, ok := c.(I)
	if !ok {
		return true
	}

	return b.Bool()
}
