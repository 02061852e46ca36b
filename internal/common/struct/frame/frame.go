// Released under an MIT license. See LICENSE.

// Package frame provides the mapping of names to values for one scope.
package frame

import (
	"sort"

	"github.com/drhodes/lazarus/internal/common/interface/cell"
	"github.com/drhodes/lazarus/internal/common/struct/slot"
	"github.com/drhodes/lazarus/internal/common/struct/symbol"
)

// T (frame) maps symbol names to slots. Each name appears at most once.
type T struct {
	m map[string]*slot.T
}

type frame = T

// New creates a new frame.
func New() *frame {
	return &frame{m: map[string]*slot.T{}}
}

// Get retrieves the slot associated with the symbol k in the frame f.
func (f *frame) Get(k *symbol.T) *slot.T {
	if f == nil {
		return nil
	}

	return f.m[k.Key()]
}

// Names returns the names bound in the frame f, sorted.
func (f *frame) Names() []string {
	names := make([]string, 0, len(f.m))
	for k := range f.m {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// Set associates the symbol k with the cell v in the frame f.
// An existing binding for k is overwritten in place.
func (f *frame) Set(k *symbol.T, v cell.I) {
	if s, ok := f.m[k.Key()]; ok {
		s.Set(v)

		return
	}

	f.m[k.Key()] = slot.New(v)
}

// Size returns the number of entries in the frame f.
func (f *frame) Size() int {
	return len(f.m)
}
