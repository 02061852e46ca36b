// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/drhodes/lazarus/internal/common/interface/cell"
	"github.com/drhodes/lazarus/internal/common/type/integer"
	"github.com/drhodes/lazarus/internal/common/type/list"
	"github.com/drhodes/lazarus/internal/common/validate"
)

func length(args cell.I) (cell.I, error) {
	v, err := validate.Fixed("length", args, 1, 1)
	if err != nil {
		return nil, err
	}

	n, err := list.Length(v[0])
	if err != nil {
		return nil, err
	}

	return integer.New(int64(n)), nil
}

// The argument list is already a fresh list.
func makeList(args cell.I) (cell.I, error) {
	return args, nil
}
