// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/drhodes/lazarus/internal/common/interface/cell"
	"github.com/drhodes/lazarus/internal/common/interface/number"
	"github.com/drhodes/lazarus/internal/common/interface/truth"
	"github.com/drhodes/lazarus/internal/common/type/boolean"
	"github.com/drhodes/lazarus/internal/common/type/builtin"
	"github.com/drhodes/lazarus/internal/common/type/closure"
	"github.com/drhodes/lazarus/internal/common/type/sym"
	"github.com/drhodes/lazarus/internal/common/validate"
)

func isNumber(args cell.I) (cell.I, error) {
	return unary("number?", args, number.Is)
}

func isProcedure(args cell.I) (cell.I, error) {
	return unary("procedure?", args, func(c cell.I) bool {
		return builtin.Is(c) || closure.Is(c)
	})
}

func isSymbol(args cell.I) (cell.I, error) {
	return unary("symbol?", args, sym.Is)
}

func not(args cell.I) (cell.I, error) {
	return unary("not", args, func(c cell.I) bool {
		return !truth.Value(c)
	})
}

func unary(who string, args cell.I, p func(cell.I) bool) (cell.I, error) {
	v, err := validate.Fixed(who, args, 1, 1)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(p(v[0])), nil
}
