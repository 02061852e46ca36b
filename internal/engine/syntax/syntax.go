// Released under an MIT license. See LICENSE.

// Package syntax recognizes and takes apart the shapes of expressions.
package syntax

import (
	"github.com/drhodes/lazarus/internal/common/failure"
	"github.com/drhodes/lazarus/internal/common/interface/cell"
	"github.com/drhodes/lazarus/internal/common/interface/literal"
	"github.com/drhodes/lazarus/internal/common/interface/truth"
	"github.com/drhodes/lazarus/internal/common/type/boolean"
	"github.com/drhodes/lazarus/internal/common/type/builtin"
	"github.com/drhodes/lazarus/internal/common/type/closure"
	"github.com/drhodes/lazarus/internal/common/type/float"
	"github.com/drhodes/lazarus/internal/common/type/integer"
	"github.com/drhodes/lazarus/internal/common/type/pair"
	"github.com/drhodes/lazarus/internal/common/type/sym"
)

// Special form keywords.
const (
	Begin      = "begin"
	Define     = "define"
	If         = "if"
	Lambda     = "lambda"
	Quote      = "quote"
	Assignment = "set!"
)

// IsSelfEvaluating returns true for integers and floats.
func IsSelfEvaluating(c cell.I) bool {
	return integer.Is(c) || float.Is(c)
}

// IsVariable returns true for symbols.
func IsVariable(c cell.I) bool {
	return sym.Is(c)
}

// IsTaggedList returns true if c is a pair whose car is the symbol tag.
func IsTaggedList(c cell.I, tag string) bool {
	if !pair.IsCons(c) {
		return false
	}

	head, _ := pair.Car(c)

	return sym.Matches(head, tag)
}

// IsQuoted returns true for (quote x).
func IsQuoted(c cell.I) bool {
	return IsTaggedList(c, Quote)
}

// IsAssignment returns true for (set! var value).
func IsAssignment(c cell.I) bool {
	return IsTaggedList(c, Assignment)
}

// IsDefinition returns true for (define ...).
func IsDefinition(c cell.I) bool {
	return IsTaggedList(c, Define)
}

// IsIf returns true for (if ...).
func IsIf(c cell.I) bool {
	return IsTaggedList(c, If)
}

// IsLambda returns true for (lambda ...).
func IsLambda(c cell.I) bool {
	return IsTaggedList(c, Lambda)
}

// IsBegin returns true for (begin ...).
func IsBegin(c cell.I) bool {
	return IsTaggedList(c, Begin)
}

// IsApplication returns true for any non-empty proper list.
func IsApplication(c cell.I) bool {
	return pair.IsCons(c) && pair.IsList(c)
}

// IsPrimitiveProcedure returns true for builtins.
func IsPrimitiveProcedure(c cell.I) bool {
	return builtin.Is(c)
}

// IsCompoundProcedure returns true for closures.
func IsCompoundProcedure(c cell.I) bool {
	return closure.Is(c)
}

// IsTrue returns false only for the boolean false.
func IsTrue(c cell.I) bool {
	return truth.Value(c)
}

// TextOfQuotation returns x from (quote x).
func TextOfQuotation(c cell.I) (cell.I, error) {
	return part(Quote, "datum", c, pair.Cadr)
}

// AssignmentVariable returns var from (set! var value).
func AssignmentVariable(c cell.I) (*sym.T, error) {
	v, err := part(Assignment, "variable", c, pair.Cadr)
	if err != nil {
		return nil, err
	}

	return variable(Assignment, v)
}

// AssignmentValue returns value from (set! var value).
func AssignmentValue(c cell.I) (cell.I, error) {
	return part(Assignment, "value", c, pair.Caddr)
}

// DefinitionVariable returns the name bound by either
// (define name value) or (define (name params...) body...).
func DefinitionVariable(c cell.I) (*sym.T, error) {
	target, err := part(Define, "name", c, pair.Cadr)
	if err != nil {
		return nil, err
	}

	if sym.Is(target) {
		return sym.To(target), nil
	}

	name, err := part(Define, "name", target, pair.Car)
	if err != nil {
		return nil, err
	}

	return variable(Define, name)
}

// DefinitionValue returns the expression whose value is bound by a
// definition. The procedure form becomes a lambda expression.
func DefinitionValue(c cell.I) (cell.I, error) {
	target, err := part(Define, "name", c, pair.Cadr)
	if err != nil {
		return nil, err
	}

	if sym.Is(target) {
		return part(Define, "value", c, pair.Caddr)
	}

	params, err := pair.Cdadr(c)
	if err != nil {
		return nil, err
	}

	body, err := pair.Cddr(c)
	if err != nil {
		return nil, err
	}

	return MakeLambda(params, body), nil
}

// MakeLambda builds (lambda params body...).
func MakeLambda(params, body cell.I) cell.I {
	return pair.Cons(sym.New(Lambda), pair.Cons(params, body))
}

// LambdaParameters returns params from (lambda params body...).
func LambdaParameters(c cell.I) (cell.I, error) {
	return part(Lambda, "parameters", c, pair.Cadr)
}

// LambdaBody returns the list of body expressions of a lambda.
func LambdaBody(c cell.I) (cell.I, error) {
	return part(Lambda, "parameters", c, pair.Cddr)
}

// IfPredicate returns pred from (if pred conseq alt).
func IfPredicate(c cell.I) (cell.I, error) {
	return part(If, "predicate", c, pair.Cadr)
}

// IfConsequent returns conseq from (if pred conseq alt).
func IfConsequent(c cell.I) (cell.I, error) {
	return part(If, "consequent", c, pair.Caddr)
}

// IfAlternative returns alt from (if pred conseq alt), or false when
// there is no alternative.
func IfAlternative(c cell.I) (cell.I, error) {
	rest, err := part(If, "consequent", c, pair.Cdddr)
	if err != nil {
		return nil, err
	}

	if rest == pair.Null {
		return boolean.False, nil
	}

	return pair.Car(rest)
}

// BeginActions returns the expressions in (begin e1 ... en).
func BeginActions(c cell.I) (cell.I, error) {
	return pair.Cdr(c)
}

// Operator returns the procedure expression of an application.
func Operator(c cell.I) (cell.I, error) {
	return pair.Car(c)
}

// Operands returns the argument expressions of an application.
func Operands(c cell.I) (cell.I, error) {
	return pair.Cdr(c)
}

// Describe returns a short description of c for messages.
func Describe(c cell.I) string {
	if c == pair.Null {
		return "()"
	}

	if builtin.Is(c) {
		return c.Name() + " " + builtin.To(c).Label()
	}

	return c.Name() + " " + literal.String(c)
}

// part takes one piece of a special form apart with step. A form too
// short for the piece fails naming the form and the missing piece.
func part(form, piece string, c cell.I, step func(cell.I) (cell.I, error)) (cell.I, error) {
	v, err := step(c)
	if err != nil {
		return nil, failure.TypeError("%s: missing %s", form, piece)
	}

	return v, nil
}

func variable(form string, c cell.I) (*sym.T, error) {
	if !sym.Is(c) {
		return nil, failure.TypeError("%s: expected a symbol, got %s", form, Describe(c))
	}

	return sym.To(c), nil
}
