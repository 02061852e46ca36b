// Released under an MIT license. See LICENSE.

// Package list provides common list operations. A list is not a true type.
// Lists are more of a type by convention. They are composed of cons cells.
package list

import (
	"github.com/drhodes/lazarus/internal/common/failure"
	"github.com/drhodes/lazarus/internal/common/interface/cell"
	"github.com/drhodes/lazarus/internal/common/type/pair"
)

// Length returns the number of elements in list.
// Null has length 0. Anything that is not a list is an error.
// The list must be non-circular.
func Length(list cell.I) (int, error) {
	if list == pair.Null {
		return 0, nil
	}

	if !pair.Is(list) {
		return 0, failure.TypeError("length: expected a list, got %s", list.Name())
	}

	rest, err := pair.Cdr(list)
	if err != nil {
		return 0, err
	}

	n, err := Length(rest)
	if err != nil {
		return 0, err
	}

	return n + 1, nil
}

// New creates a new list composed of all of the elements in elements.
func New(elements ...cell.I) cell.I {
	l := pair.Null

	for i := len(elements) - 1; i >= 0; i-- {
		l = pair.Cons(elements[i], l)
	}

	return l
}

// Slice returns the elements of list in order.
// An improper list is an error.
// The list must be non-circular.
func Slice(list cell.I) ([]cell.I, error) {
	var elements []cell.I

	for list != pair.Null {
		head, err := pair.Car(list)
		if err != nil {
			return nil, failure.TypeError("expected a proper list, got %s", list.Name())
		}

		elements = append(elements, head)

		list, _ = pair.Cdr(list)
	}

	return elements, nil
}
