// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all runtime values.
package cell

// I (cell) is the basic unit of storage. Cells are shared by pointer, so a
// cell reachable from two places is the same cell in both.
type I interface {
	Equal(c I) bool
	Name() string
}
