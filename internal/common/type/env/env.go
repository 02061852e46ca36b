// Released under an MIT license. See LICENSE.

// Package env provides the chained environment type.
package env

import (
	"github.com/drhodes/lazarus/internal/common"
	"github.com/drhodes/lazarus/internal/common/failure"
	"github.com/drhodes/lazarus/internal/common/interface/cell"
	"github.com/drhodes/lazarus/internal/common/interface/literal"
	"github.com/drhodes/lazarus/internal/common/struct/frame"
	"github.com/drhodes/lazarus/internal/common/struct/loc"
	"github.com/drhodes/lazarus/internal/common/struct/symbol"
	"github.com/drhodes/lazarus/internal/common/type/list"
	"github.com/drhodes/lazarus/internal/common/type/sym"
)

const name = "environment"

// T (env) is a frame of bindings and the environment it is nested in.
// An env with no enclosing env is the global environment.
//
// Frames are shared by pointer. Every closure that captured an env sees
// later definitions and assignments made in it.
type T struct {
	enclosing *env
	frame     *frame.T
}

type env = T

// New creates a new env with an empty frame inside enclosing.
func New(enclosing *env) *env {
	return &env{
		enclosing: enclosing,
		frame:     frame.New(),
	}
}

// Define binds k to v in the env e's own frame. Enclosing envs are not
// searched and an existing binding in this frame is overwritten.
func (e *env) Define(k *symbol.T, v cell.I) {
	e.frame.Set(k, v)
}

// Enclosing returns the enclosing env or nil for the global env.
func (e *env) Enclosing() *env {
	return e.enclosing
}

// Equal returns true if c is the same env as e.
func (e *env) Equal(c cell.I) bool {
	return Is(c) && e == To(c)
}

// Extend creates a new env inside e binding each symbol in params to the
// value at the same position in args.
func (e *env) Extend(params, args cell.I) (*env, error) {
	ps, err := list.Slice(params)
	if err != nil {
		return nil, err
	}

	as, err := list.Slice(args)
	if err != nil {
		return nil, err
	}

	if len(ps) != len(as) {
		return nil, failure.ArityError("procedure", len(ps), len(as))
	}

	x := New(e)

	for i, p := range ps {
		if !sym.Is(p) {
			return nil, failure.TypeError(
				"parameter must be a symbol, got %s", p.Name(),
			)
		}

		x.Define(sym.To(p).Symbol(), as[i])
	}

	return x, nil
}

// Frame returns the env e's own frame.
func (e *env) Frame() *frame.T {
	return e.frame
}

// IsGlobal returns true if e has no enclosing env.
func (e *env) IsGlobal() bool {
	return e.enclosing == nil
}

// Literal returns the printed representation of the env e.
func (e *env) Literal() string {
	return "<env>"
}

// Lookup returns the value bound to k in e or the nearest enclosing env
// that binds it.
func (e *env) Lookup(k *symbol.T) (cell.I, error) {
	if s := e.frame.Get(k); s != nil {
		return s.Get(), nil
	}

	if e.IsGlobal() {
		return nil, failure.Undefined(k.Name, source(k))
	}

	return e.enclosing.Lookup(k)
}

// Name returns the type name for the env e.
func (e *env) Name() string {
	return name
}

// Set replaces the value bound to k in the frame where Lookup would find
// it. Set never creates a binding.
func (e *env) Set(k *symbol.T, v cell.I) error {
	if s := e.frame.Get(k); s != nil {
		s.Set(v)

		return nil
	}

	if e.IsGlobal() {
		return failure.Unassigned(k.Name, source(k))
	}

	return e.enclosing.Set(k, v)
}

// String returns the text of the env e.
func (e *env) String() string {
	return e.Literal()
}

func source(k *symbol.T) *loc.T {
	if k.Filename == symbol.Unknown {
		return nil
	}

	return loc.New(k.Filename, k.Pos, k.Pos+len(k.Name))
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t env

	// The env type is a cell.
	_ = cell.I(&t)

	// The env type has a literal representation.
	_ = literal.I(&t)

	// The env type is a stringer.
	_ = common.Stringer(&t)
}
