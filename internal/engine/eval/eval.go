// Released under an MIT license. See LICENSE.

// Package eval provides the eval/apply core.
//
// Evaluation is recursive. A body or begin sequence evaluates all but its
// last expression for effect and returns the value of the last. There is
// no tail call elimination, so deep non-tail recursion is bounded by the
// Go stack.
package eval

import (
	"github.com/drhodes/lazarus/internal/common/failure"
	"github.com/drhodes/lazarus/internal/common/interface/cell"
	"github.com/drhodes/lazarus/internal/common/type/boolean"
	"github.com/drhodes/lazarus/internal/common/type/builtin"
	"github.com/drhodes/lazarus/internal/common/type/closure"
	"github.com/drhodes/lazarus/internal/common/type/env"
	"github.com/drhodes/lazarus/internal/common/type/list"
	"github.com/drhodes/lazarus/internal/common/type/pair"
	"github.com/drhodes/lazarus/internal/common/type/sym"
	"github.com/drhodes/lazarus/internal/engine/syntax"
)

// Ok is returned by a definition.
const Ok = "ok"

// Eval evaluates the expression x in the env e.
func Eval(x cell.I, e *env.T) (cell.I, error) {
	switch {
	case syntax.IsSelfEvaluating(x):
		return x, nil
	case syntax.IsVariable(x):
		return e.Lookup(sym.To(x).Symbol())
	case syntax.IsQuoted(x):
		return syntax.TextOfQuotation(x)
	case syntax.IsAssignment(x):
		return assignment(x, e)
	case syntax.IsDefinition(x):
		return definition(x, e)
	case syntax.IsIf(x):
		return conditional(x, e)
	case syntax.IsLambda(x):
		return lambda(x, e)
	case syntax.IsBegin(x):
		actions, err := syntax.BeginActions(x)
		if err != nil {
			return nil, err
		}

		return Sequence(actions, e)
	case syntax.IsApplication(x):
		return application(x, e)
	}

	return nil, failure.UnknownExpressionError(syntax.Describe(x))
}

// Apply applies the procedure proc to the list of values args.
func Apply(proc, args cell.I) (cell.I, error) {
	switch {
	case syntax.IsPrimitiveProcedure(proc):
		return builtin.To(proc).Call(args)
	case syntax.IsCompoundProcedure(proc):
		c := closure.To(proc)

		x, err := c.Env().Extend(c.Params(), args)
		if err != nil {
			return nil, err
		}

		return Sequence(c.Body(), x)
	}

	return nil, failure.UnknownProcedureError(syntax.Describe(proc))
}

// Sequence evaluates each expression in the list exps in order and
// returns the value of the last.
func Sequence(exps cell.I, e *env.T) (cell.I, error) {
	if exps == pair.Null {
		return nil, failure.UnknownExpressionError("empty sequence")
	}

	for {
		first, err := pair.Car(exps)
		if err != nil {
			return nil, err
		}

		rest, err := pair.Cdr(exps)
		if err != nil {
			return nil, err
		}

		if rest == pair.Null {
			return Eval(first, e)
		}

		if _, err := Eval(first, e); err != nil {
			return nil, err
		}

		exps = rest
	}
}

// Values evaluates each expression in the list exps from left to right
// and returns a list of the results.
func Values(exps cell.I, e *env.T) (cell.I, error) {
	xs, err := list.Slice(exps)
	if err != nil {
		return nil, err
	}

	vs := make([]cell.I, len(xs))

	for i, x := range xs {
		vs[i], err = Eval(x, e)
		if err != nil {
			return nil, err
		}
	}

	return list.New(vs...), nil
}

func application(x cell.I, e *env.T) (cell.I, error) {
	operator, err := syntax.Operator(x)
	if err != nil {
		return nil, err
	}

	proc, err := Eval(operator, e)
	if err != nil {
		return nil, err
	}

	operands, err := syntax.Operands(x)
	if err != nil {
		return nil, err
	}

	args, err := Values(operands, e)
	if err != nil {
		return nil, err
	}

	return Apply(proc, args)
}

func assignment(x cell.I, e *env.T) (cell.I, error) {
	name, err := syntax.AssignmentVariable(x)
	if err != nil {
		return nil, err
	}

	expr, err := syntax.AssignmentValue(x)
	if err != nil {
		return nil, err
	}

	v, err := Eval(expr, e)
	if err != nil {
		return nil, err
	}

	err = e.Set(name.Symbol(), v)
	if err != nil {
		return nil, err
	}

	return v, nil
}

func conditional(x cell.I, e *env.T) (cell.I, error) {
	predicate, err := syntax.IfPredicate(x)
	if err != nil {
		return nil, err
	}

	v, err := Eval(predicate, e)
	if err != nil {
		return nil, err
	}

	if syntax.IsTrue(v) {
		consequent, err := syntax.IfConsequent(x)
		if err != nil {
			return nil, err
		}

		return Eval(consequent, e)
	}

	alternative, err := syntax.IfAlternative(x)
	if err != nil {
		return nil, err
	}

	// A missing alternative is already the value false.
	if boolean.Is(alternative) {
		return alternative, nil
	}

	return Eval(alternative, e)
}

func definition(x cell.I, e *env.T) (cell.I, error) {
	name, err := syntax.DefinitionVariable(x)
	if err != nil {
		return nil, err
	}

	expr, err := syntax.DefinitionValue(x)
	if err != nil {
		return nil, err
	}

	v, err := Eval(expr, e)
	if err != nil {
		return nil, err
	}

	e.Define(name.Symbol(), v)

	return sym.New(Ok), nil
}

func lambda(x cell.I, e *env.T) (cell.I, error) {
	params, err := syntax.LambdaParameters(x)
	if err != nil {
		return nil, err
	}

	body, err := syntax.LambdaBody(x)
	if err != nil {
		return nil, err
	}

	return closure.New(params, body, e), nil
}
