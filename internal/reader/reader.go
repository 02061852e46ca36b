// Released under an MIT license. See LICENSE.

// Package reader turns source text into values by way of the lexer, the
// parser and the syntax tree.
package reader

import (
	"github.com/drhodes/lazarus/internal/common/interface/cell"
	"github.com/drhodes/lazarus/internal/common/struct/token"
	"github.com/drhodes/lazarus/internal/reader/lexer"
	"github.com/drhodes/lazarus/internal/reader/parser"
)

// Depth returns the number of lists left open at the end of text.
// Text that does not lex counts as complete.
func Depth(text string) int {
	depth := 0

	l := lexer.New("depth", text)
	for t := l.Token(); t != nil; t = l.Token() {
		switch {
		case t.Is(token.LParen):
			depth++
		case t.Is(token.RParen):
			depth--
		case t.Is(token.Error):
			return 0
		}
	}

	return depth
}

// Read converts text holding exactly one expression into a value.
func Read(label, text string) (cell.I, error) {
	p, err := parse(label, text)
	if err != nil {
		return nil, err
	}

	n, err := p.Form()
	if err != nil {
		return nil, err
	}

	return n.Cell(), nil
}

// ReadAll converts text holding zero or more expressions into values.
func ReadAll(label, text string) ([]cell.I, error) {
	p, err := parse(label, text)
	if err != nil {
		return nil, err
	}

	ns, err := p.Forms()
	if err != nil {
		return nil, err
	}

	cs := make([]cell.I, len(ns))
	for i, n := range ns {
		cs[i] = n.Cell()
	}

	return cs, nil
}

func parse(label, text string) (*parser.T, error) {
	ts, err := lexer.New(label, text).Tokens()
	if err != nil {
		return nil, err
	}

	return parser.New(label, ts), nil
}
