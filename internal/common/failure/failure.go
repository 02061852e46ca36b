// Released under an MIT license. See LICENSE.

// Package failure provides the error type returned by the reader and evaluator.
package failure

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/drhodes/lazarus/internal/common/struct/loc"
)

// Kind classifies a failure.
type Kind int

// Failure kinds.
const (
	Lex Kind = iota
	Parse
	Type
	Unbound
	Arity
	UnknownExpression
	UnknownProcedure
)

// T (failure) describes why reading or evaluating stopped.
type T struct {
	Kind     Kind
	Message  string
	Source   *loc.T // Where, if known.
	Symbol   string // The name involved, if any.
	Expected int    // Expected count for Arity failures.
	Actual   int    // Actual count for Arity failures.

	cause error
}

type failure = T

func (k Kind) String() string {
	switch k {
	case Lex:
		return "lex error"
	case Parse:
		return "parse error"
	case Type:
		return "type error"
	case Unbound:
		return "unbound variable"
	case Arity:
		return "arity mismatch"
	case UnknownExpression:
		return "unknown expression type"
	case UnknownProcedure:
		return "unknown procedure type"
	}

	return "failure " + strconv.Itoa(int(k))
}

// Error returns the message followed by the trace of nested causes.
func (f *failure) Error() string {
	s := f.Message
	if f.Source != nil {
		s = f.Source.Offset() + ": " + s
	}

	if f.cause != nil {
		s += "\n  " + f.cause.Error()
	}

	return s
}

// Unwrap returns the failure that caused f, if any.
func (f *failure) Unwrap() error {
	return f.cause
}

// Is returns true if err is, or wraps, a failure of kind k.
func Is(err error, k Kind) bool {
	var f *failure

	for err != nil {
		if !errors.As(err, &f) {
			return false
		}

		if f.Kind == k {
			return true
		}

		err = f.cause
	}

	return false
}

// LexError reports input that no token pattern matches.
func LexError(source *loc.T, text string) *failure {
	return &failure{
		Kind:    Lex,
		Message: "unexpected input " + strconv.Quote(text),
		Source:  source,
	}
}

// ParseError reports an expected production that was not found.
func ParseError(source *loc.T, msg string, cause error) *failure {
	return &failure{
		Kind:    Parse,
		Message: msg,
		Source:  source,
		cause:   cause,
	}
}

// TypeError reports an operation applied to the wrong type of value.
func TypeError(format string, args ...interface{}) *failure {
	return &failure{
		Kind:    Type,
		Message: fmt.Sprintf(format, args...),
	}
}

// Undefined reports a lookup that reached the global environment.
func Undefined(name string, source *loc.T) *failure {
	return &failure{
		Kind:    Unbound,
		Message: "undefined variable: " + name,
		Source:  source,
		Symbol:  name,
	}
}

// Unassigned reports a set! of a name with no binding.
func Unassigned(name string, source *loc.T) *failure {
	return &failure{
		Kind:    Unbound,
		Message: "unbound variable: " + name,
		Source:  source,
		Symbol:  name,
	}
}

// ArityError reports a count mismatch between parameters and arguments.
func ArityError(who string, expected, actual int) *failure {
	return &failure{
		Kind: Arity,
		Message: fmt.Sprintf(
			"%s: expected %s, passed %d",
			who, count(expected, "argument"), actual,
		),
		Symbol:   who,
		Expected: expected,
		Actual:   actual,
	}
}

// UnknownExpressionError reports an expression no evaluation rule matches.
func UnknownExpressionError(shape string) *failure {
	return &failure{
		Kind:    UnknownExpression,
		Message: "unknown expression type: " + shape,
	}
}

// UnknownProcedureError reports an application of a non-procedure.
func UnknownProcedureError(shape string) *failure {
	return &failure{
		Kind:    UnknownProcedure,
		Message: "unknown procedure type: " + shape,
	}
}

func count(n int, label string) string {
	if n == 1 {
		return "1 " + label
	}

	return strconv.Itoa(n) + " " + label + "s"
}
