// Released under an MIT license. See LICENSE.

// Package options parses the lazarus command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	debug       bool
	expression  string
	interactive bool
	script      string
	version     bool
	usage       = `lazarus

Usage:
  lazarus [-d] SCRIPT
  lazarus [-d] -e EXPRESSION
  lazarus [-di]
  lazarus -h
  lazarus -v

Arguments:
  SCRIPT  Path to a lazarus program.

Options:
  -d, --debug                    Print the value of every top-level form.
  -e, --expression=EXPRESSION    Evaluate the specified expression.
  -i, --interactive              Invert interactive mode.
  -h, --help                     Display this help.
  -v, --version                  Print lazarus version.

If lazarus's stdin is a TTY and there is no script or expression to
evaluate, interactive mode is enabled. Otherwise, lazarus reads a program
from stdin.
`
)

// Debug returns true if every top-level result should be printed.
func Debug() bool {
	return debug
}

// Expression returns the expression passed with -e, if any.
func Expression() string {
	return expression
}

// Interactive returns true if lazarus should prompt for input.
func Interactive() bool {
	return interactive
}

// Parse parses the command line.
func Parse() {
	parse(os.Args[1:], isatty.IsTerminal(os.Stdin.Fd()))
}

// Script returns the path of the program to run, if any.
func Script() string {
	return script
}

// Version returns true if the version was requested.
func Version() bool {
	return version
}

func parse(argv []string, terminal bool) {
	// A nil argv tells docopt to read os.Args.
	if argv == nil {
		argv = []string{}
	}

	opts, err := docopt.ParseArgs(usage, argv, "")
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	debug, _ = opts.Bool("--debug")
	expression, _ = opts.String("--expression")
	script, _ = opts.String("SCRIPT")
	version, _ = opts.Bool("--version")

	interactive = script == "" && expression == "" && terminal

	invert, _ := opts.Bool("--interactive")
	interactive = interactive != invert
}
