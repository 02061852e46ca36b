// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/drhodes/lazarus/internal/common/interface/cell"
	"github.com/drhodes/lazarus/internal/common/interface/number"
	"github.com/drhodes/lazarus/internal/common/type/boolean"
	"github.com/drhodes/lazarus/internal/common/type/pair"
	"github.com/drhodes/lazarus/internal/common/validate"
)

func eq(args cell.I) (cell.I, error) {
	v, err := validate.Fixed("eq?", args, 2, 2)
	if err != nil {
		return nil, err
	}

	a, b := v[0], v[1]

	switch {
	case pair.IsCons(a) || pair.IsCons(b):
		return boolean.Bool(a == b), nil
	case number.Is(a) && number.Is(b):
		x, y := a.(number.I), b.(number.I)

		return boolean.Bool(x.Number().Cmp(y.Number()) == 0), nil
	}

	return boolean.Bool(a.Equal(b)), nil
}

func ge(args cell.I) (cell.I, error) {
	return compare(">=", args, func(n int) bool { return n >= 0 })
}

func gt(args cell.I) (cell.I, error) {
	return compare(">", args, func(n int) bool { return n > 0 })
}

func le(args cell.I) (cell.I, error) {
	return compare("<=", args, func(n int) bool { return n <= 0 })
}

func lt(args cell.I) (cell.I, error) {
	return compare("<", args, func(n int) bool { return n < 0 })
}

func numeq(args cell.I) (cell.I, error) {
	return compare("=", args, func(n int) bool { return n == 0 })
}

func compare(who string, args cell.I, ok func(int) bool) (cell.I, error) {
	v, err := validate.Fixed(who, args, 2, 2)
	if err != nil {
		return nil, err
	}

	a, err := number.Value(who, v[0])
	if err != nil {
		return nil, err
	}

	b, err := number.Value(who, v[1])
	if err != nil {
		return nil, err
	}

	return boolean.Bool(ok(a.Number().Cmp(b.Number()))), nil
}
