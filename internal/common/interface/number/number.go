// Released under an MIT license. See LICENSE.

// Package number defines the interface for numeric types.
package number

import (
	"github.com/nukata/goarith"

	"github.com/drhodes/lazarus/internal/common/failure"
	"github.com/drhodes/lazarus/internal/common/interface/cell"
)

// I (number) is anything that can be used in a numeric context.
type I interface {
	Number() goarith.Number
	Inexact() bool
}

type number = I

// Is returns true if c is a number.
func Is(c cell.I) bool {
	_, ok := c.(number)

	return ok
}

// Value returns the number for a cell, if possible.
func Value(who string, c cell.I) (I, error) {
	n, ok := c.(number)
	if !ok {
		return nil, failure.TypeError(
			"%s: %s cannot be used in a numeric context", who, c.Name(),
		)
	}

	return n, nil
}
