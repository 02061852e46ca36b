// Released under an MIT license. See LICENSE.

// Package slot provides the variable type.
package slot

import (
	"github.com/drhodes/lazarus/internal/common/interface/cell"
)

// T (slot) holds a cell value. A binding is a slot, so every holder of
// the slot sees a value stored through any of them.
type T struct {
	c cell.I
}

type slot = T

// New creates a new slot with the cell c.
func New(c cell.I) *slot {
	return &slot{c: c}
}

// Get returns the cell in slot s.
func (s *slot) Get() cell.I {
	return s.c
}

// Set replaces the cell in slot s with the cell c.
func (s *slot) Set(c cell.I) {
	s.c = c
}
