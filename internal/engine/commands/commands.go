// Released under an MIT license. See LICENSE.

// Package commands provides the primitive procedures seeded into the
// global environment.
package commands

import (
	"github.com/drhodes/lazarus/internal/common/type/builtin"
)

// Functions returns the primitive procedures keyed by the name they are
// bound to.
func Functions() map[string]builtin.Function {
	return map[string]builtin.Function{
		"*":          mul,
		"+":          add,
		"-":          sub,
		"<":          lt,
		"<=":         le,
		"=":          numeq,
		">":          gt,
		">=":         ge,
		"car":        car,
		"cdr":        cdr,
		"cons":       cons,
		"dec":        dec,
		"eq?":        eq,
		"length":     length,
		"list":       makeList,
		"mul":        mul,
		"not":        not,
		"null?":      isNull,
		"number?":    isNumber,
		"pair?":      isPair,
		"procedure?": isProcedure,
		"symbol?":    isSymbol,
	}
}
