// Released under an MIT license. See LICENSE.

// Lazarus evaluates programs written in a small Scheme-like language.
//
// With a SCRIPT argument it evaluates the program in that file. With -e it
// evaluates the expression given on the command line. Otherwise it prompts
// for expressions when standard input is a terminal and reads a program
// from standard input when it is not.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/drhodes/lazarus/internal/common/interface/cell"
	"github.com/drhodes/lazarus/internal/engine"
	"github.com/drhodes/lazarus/internal/system/options"
	"github.com/drhodes/lazarus/internal/ui"
)

const version = "0.1.0"

func main() {
	options.Parse()

	if options.Version() {
		fmt.Println("lazarus", version)

		return
	}

	e := engine.New()

	if options.Interactive() {
		err := ui.Run(e, os.Stdout, os.Stderr)
		if err != nil {
			fmt.Fprintln(os.Stderr, "lazarus:", err)
		}

		return
	}

	label, text, err := source()
	if err != nil {
		fmt.Fprintln(os.Stderr, "lazarus:", err)
		os.Exit(1)
	}

	run(e, label, text, options.Debug())
}

func run(e *engine.T, label, text string, debug bool) {
	if debug {
		err := e.Each(label, text, func(c cell.I) {
			ui.Report(os.Stdout, os.Stderr, c, nil)
		})
		if err != nil {
			ui.Report(os.Stdout, os.Stderr, nil, err)
		}

		return
	}

	c, err := e.Run(label, text)
	ui.Report(os.Stdout, os.Stderr, c, err)
}

func source() (string, string, error) {
	if expr := options.Expression(); expr != "" {
		return "-e", expr, nil
	}

	if path := options.Script(); path != "" {
		b, err := os.ReadFile(path)

		return path, string(b), err
	}

	b, err := io.ReadAll(os.Stdin)

	return "stdin", string(b), err
}
