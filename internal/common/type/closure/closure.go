// Released under an MIT license. See LICENSE.

// Package closure provides the compound procedure type.
package closure

import (
	"github.com/drhodes/lazarus/internal/common"
	"github.com/drhodes/lazarus/internal/common/interface/cell"
	"github.com/drhodes/lazarus/internal/common/interface/literal"
	"github.com/drhodes/lazarus/internal/common/type/env"
)

const name = "procedure"

// T (closure) is a user-defined procedure: parameters, a body of one or
// more expressions and the env it was created in.
type T struct {
	body   cell.I
	params cell.I
	scope  *env.T
}

type closure = T

// New creates a closure. The env is captured by reference.
func New(params, body cell.I, scope *env.T) cell.I {
	return &closure{body: body, params: params, scope: scope}
}

// Body returns the list of expressions evaluated when c is applied.
func (c *closure) Body() cell.I {
	return c.body
}

// Env returns the env captured when c was created.
func (c *closure) Env() *env.T {
	return c.scope
}

// Equal returns true if o is the same closure as c.
func (c *closure) Equal(o cell.I) bool {
	return Is(o) && c == To(o)
}

// Literal returns the printed representation of the closure c.
func (c *closure) Literal() string {
	return "<procedure>"
}

// Name returns the type name for the closure c.
func (c *closure) Name() string {
	return name
}

// Params returns the list of parameter symbols for c.
func (c *closure) Params() cell.I {
	return c.params
}

// String returns the text of the closure c.
func (c *closure) String() string {
	return c.Literal()
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t closure

	// The closure type is a cell.
	_ = cell.I(&t)

	// The closure type has a literal representation.
	_ = literal.I(&t)

	// The closure type is a stringer.
	_ = common.Stringer(&t)
}
