// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for lazarus code.
package engine

import (
	"github.com/drhodes/lazarus/internal/common/interface/cell"
	"github.com/drhodes/lazarus/internal/common/type/boolean"
	"github.com/drhodes/lazarus/internal/common/type/builtin"
	"github.com/drhodes/lazarus/internal/common/type/env"
	"github.com/drhodes/lazarus/internal/common/type/pair"
	"github.com/drhodes/lazarus/internal/common/type/sym"
	"github.com/drhodes/lazarus/internal/engine/boot"
	"github.com/drhodes/lazarus/internal/engine/commands"
	"github.com/drhodes/lazarus/internal/engine/eval"
	"github.com/drhodes/lazarus/internal/reader"
)

// T (engine) is a facade in front of the machinery for evaluating code.
type T struct {
	global *env.T
}

// New creates a new T with a freshly seeded global environment.
func New() *T {
	global := env.New(nil)

	for k, v := range map[string]cell.I{
		"#f":    boolean.False,
		"#t":    boolean.True,
		"false": boolean.False,
		"true":  boolean.True,
	} {
		define(global, k, v)
	}

	for k, fn := range commands.Functions() {
		define(global, k, builtin.New(k, fn))
	}

	e := &T{global: global}

	_, err := e.Run(boot.Label, boot.Script())
	if err != nil {
		panic("interpreter bug: " + err.Error())
	}

	return e
}

// Each evaluates every top-level form in text and calls fn with each result.
// Evaluation stops at the first failure.
func (e *T) Each(label, text string, fn func(cell.I)) error {
	forms, err := reader.ReadAll(label, text)
	if err != nil {
		return err
	}

	for _, c := range forms {
		v, err := e.Evaluate(c)
		if err != nil {
			return err
		}

		fn(v)
	}

	return nil
}

// Evaluate evaluates c in the global environment.
func (e *T) Evaluate(c cell.I) (cell.I, error) {
	return eval.Eval(c, e.global)
}

// Names returns the names bound in the global environment, sorted.
func (e *T) Names() []string {
	return e.global.Frame().Names()
}

// Run evaluates every top-level form in text and returns the last value.
// An empty program evaluates to the empty list.
func (e *T) Run(label, text string) (cell.I, error) {
	last := pair.Null

	err := e.Each(label, text, func(c cell.I) {
		last = c
	})
	if err != nil {
		return nil, err
	}

	return last, nil
}

func define(e *env.T, k string, v cell.I) {
	e.Define(sym.To(sym.New(k)).Symbol(), v)
}
