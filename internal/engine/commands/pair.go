// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/drhodes/lazarus/internal/common/interface/cell"
	"github.com/drhodes/lazarus/internal/common/type/boolean"
	"github.com/drhodes/lazarus/internal/common/type/pair"
	"github.com/drhodes/lazarus/internal/common/validate"
)

func car(args cell.I) (cell.I, error) {
	v, err := validate.Fixed("car", args, 1, 1)
	if err != nil {
		return nil, err
	}

	return pair.Car(v[0])
}

func cdr(args cell.I) (cell.I, error) {
	v, err := validate.Fixed("cdr", args, 1, 1)
	if err != nil {
		return nil, err
	}

	return pair.Cdr(v[0])
}

func cons(args cell.I) (cell.I, error) {
	v, err := validate.Fixed("cons", args, 2, 2)
	if err != nil {
		return nil, err
	}

	return pair.Cons(v[0], v[1]), nil
}

func isNull(args cell.I) (cell.I, error) {
	v, err := validate.Fixed("null?", args, 1, 1)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(v[0] == pair.Null), nil
}

func isPair(args cell.I) (cell.I, error) {
	v, err := validate.Fixed("pair?", args, 1, 1)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(pair.IsCons(v[0])), nil
}
