// Released under an MIT license. See LICENSE.

// Package sym provides the symbol cell type.
package sym

import (
	"github.com/michaelmacinnis/adapted"

	"github.com/drhodes/lazarus/internal/common"
	"github.com/drhodes/lazarus/internal/common/interface/cell"
	"github.com/drhodes/lazarus/internal/common/interface/literal"
	"github.com/drhodes/lazarus/internal/common/struct/loc"
	"github.com/drhodes/lazarus/internal/common/struct/symbol"
	"github.com/drhodes/lazarus/internal/common/struct/token"
)

const name = "symbol"

// T (sym) is a symbol plus, when read from source, its lexical location.
type T struct {
	source *loc.T
	symbol *symbol.T
}

type sym = T

//nolint:gochecknoglobals
var cache = map[string]*sym{}

// New creates a sym cell that was not read from source.
// These are interned.
func New(v string) cell.I {
	if s, ok := cache[v]; ok {
		return s
	}

	s := &sym{symbol: symbol.Named(v)}
	cache[v] = s

	return s
}

// Token creates a sym from a Symbol token.
func Token(t *token.T) cell.I {
	return &sym{source: t.Source(), symbol: t.Symbol()}
}

// Equal returns true if c is a sym with the same name.
func (s *sym) Equal(c cell.I) bool {
	return Is(c) && s.symbol.Equal(To(c).symbol)
}

// Literal returns the printed representation of the sym s.
func (s *sym) Literal() string {
	return "'" + repr(s.symbol.Name)
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return name
}

// Source returns where s was read, or nil.
func (s *sym) Source() *loc.T {
	return s.source
}

// String returns the text of the sym s.
func (s *sym) String() string {
	return s.symbol.Name
}

// Symbol returns the symbol s names.
func (s *sym) Symbol() *symbol.T {
	return s.symbol
}

// Matches returns true if c is a sym named v.
func Matches(c cell.I, v string) bool {
	return Is(c) && To(c).symbol.Name == v
}

func repr(s string) string {
	q := adapted.CanonicalString(s)

	if len(s) == 0 || q[2:len(q)-1] != s {
		return q
	}

	return s
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)

	// The sym type has a literal representation.
	_ = literal.I(&t)

	// The sym type is a stringer.
	_ = common.Stringer(&t)
}
