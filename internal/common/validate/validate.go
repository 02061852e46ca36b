// Released under an MIT license. See LICENSE.

// Package validate checks the arguments passed to primitives.
package validate

import (
	"github.com/drhodes/lazarus/internal/common/failure"
	"github.com/drhodes/lazarus/internal/common/interface/cell"
	"github.com/drhodes/lazarus/internal/common/type/list"
)

// Variadic returns at least min and at most max arguments from actual,
// and the list of any arguments remaining.
func Variadic(who string, actual cell.I, min, max int) ([]cell.I, []cell.I, error) {
	args, err := list.Slice(actual)
	if err != nil {
		return nil, nil, err
	}

	if len(args) < min {
		return nil, nil, failure.ArityError(who, min, len(args))
	}

	if len(args) > max {
		return args[:max], args[max:], nil
	}

	return args, nil, nil
}

// Fixed returns the arguments in actual if there are between min and max.
func Fixed(who string, actual cell.I, min, max int) ([]cell.I, error) {
	expected, rest, err := Variadic(who, actual, min, max)
	if err != nil {
		return nil, err
	}

	if len(rest) != 0 {
		return nil, failure.ArityError(who, max, len(expected)+len(rest))
	}

	return expected, nil
}
