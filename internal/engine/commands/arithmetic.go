// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/nukata/goarith"

	"github.com/drhodes/lazarus/internal/common/failure"
	"github.com/drhodes/lazarus/internal/common/interface/cell"
	"github.com/drhodes/lazarus/internal/common/interface/number"
	"github.com/drhodes/lazarus/internal/common/type/float"
	"github.com/drhodes/lazarus/internal/common/type/integer"
	"github.com/drhodes/lazarus/internal/common/validate"
)

type operation func(goarith.Number, goarith.Number) goarith.Number

func add(args cell.I) (cell.I, error) {
	v, rest, err := validate.Variadic("+", args, 0, 0)
	if err != nil {
		return nil, err
	}

	return fold("+", integer.New(0), append(v, rest...), goarith.Number.Add)
}

func dec(args cell.I) (cell.I, error) {
	v, err := validate.Fixed("dec", args, 1, 1)
	if err != nil {
		return nil, err
	}

	return fold("dec", v[0], []cell.I{integer.New(1)}, goarith.Number.Sub)
}

func mul(args cell.I) (cell.I, error) {
	v, rest, err := validate.Variadic("*", args, 0, 0)
	if err != nil {
		return nil, err
	}

	return fold("*", integer.New(1), append(v, rest...), goarith.Number.Mul)
}

func sub(args cell.I) (cell.I, error) {
	v, rest, err := validate.Variadic("-", args, 1, 1)
	if err != nil {
		return nil, err
	}

	if len(rest) == 0 {
		return fold("-", integer.New(0), v, goarith.Number.Sub)
	}

	return fold("-", v[0], rest, goarith.Number.Sub)
}

// fold combines the initial value with each argument in turn.
func fold(who string, initial cell.I, args []cell.I, op operation) (cell.I, error) {
	acc, err := number.Value(who, initial)
	if err != nil {
		return nil, err
	}

	n := acc.Number()
	inexact := acc.Inexact()

	for _, c := range args {
		v, err := number.Value(who, c)
		if err != nil {
			return nil, err
		}

		n = op(n, v.Number())
		inexact = inexact || v.Inexact()
	}

	return narrow(who, n, inexact)
}

// narrow converts a result back to an int or float value.
func narrow(who string, n goarith.Number, inexact bool) (cell.I, error) {
	switch v := n.(type) {
	case goarith.Float64:
		return float.New(float64(v)), nil
	case goarith.Int32:
		if inexact {
			return float.New(float64(v)), nil
		}

		return integer.New(int64(v)), nil
	case goarith.Int64:
		if inexact {
			return float.New(float64(v)), nil
		}

		return integer.New(int64(v)), nil
	case *goarith.BigInt:
		return nil, failure.TypeError("%s: integer overflow: %s", who, v.String())
	}

	return nil, failure.TypeError("%s: not a number: %s", who, n.String())
}
