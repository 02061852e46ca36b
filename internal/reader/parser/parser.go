// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser with backtracking.
//
// Every production saves the cursor, tries its parts in order and, if any
// part fails, restores the cursor before returning the failure. A failed
// production never consumes tokens, so the caller is free to try another.
package parser

import (
	"github.com/drhodes/lazarus/internal/common/failure"
	"github.com/drhodes/lazarus/internal/common/struct/loc"
	"github.com/drhodes/lazarus/internal/common/struct/token"
	"github.com/drhodes/lazarus/internal/reader/ast"
)

// T holds the state of the parser.
type T struct {
	cursor int        // Index of the next token.
	end    *loc.T     // Where the input ends.
	tokens []*token.T // Tokens with spaces removed.
}

// New creates a new parser for tokens. Space tokens are dropped.
func New(label string, tokens []*token.T) *T {
	p := &T{end: loc.New(label, 0, 0)}

	for _, t := range tokens {
		if !t.Is(token.Space) {
			p.tokens = append(p.tokens, t)
		}
	}

	if n := len(tokens); n > 0 {
		p.end = loc.New(label, tokens[n-1].End(), tokens[n-1].End())
	}

	return p
}

// Done returns true if every token has been consumed.
func (p *T) Done() bool {
	return p.cursor >= len(p.tokens)
}

// Mark returns the current cursor position.
func (p *T) Mark() int {
	return p.cursor
}

// Reset moves the cursor back to mark.
func (p *T) Reset(mark int) {
	p.cursor = mark
}

// Form parses exactly one expression that must cover the whole input.
func (p *T) Form() (*ast.T, error) {
	n, err := p.Expr()
	if err != nil {
		return nil, err
	}

	if !p.Done() {
		return nil, p.fail("unexpected "+describe(p.peek())+" after expression", nil)
	}

	return n, nil
}

// Forms parses zero or more expressions that must cover the whole input.
func (p *T) Forms() ([]*ast.T, error) {
	n := p.Exprs()

	if !p.Done() {
		mark := p.Mark()
		_, err := p.Expr()
		p.Reset(mark)

		return nil, p.fail("unexpected "+describe(p.peek()), err)
	}

	return n.Children(), nil
}

// Productions.

// <expr> ::= <float> | <int> | <symbol> | <list> .
func (p *T) Expr() (*ast.T, error) {
	mark := p.Mark()

	var err error

	for _, production := range []func() (*ast.T, error){
		p.Float, p.Int, p.Symbol, p.List,
	} {
		var n *ast.T

		n, err = production()
		if err == nil {
			return n, nil
		}

		p.Reset(mark)
	}

	return nil, p.fail("expected an expression", err)
}

// <exprs> ::= <expr>* .
func (p *T) Exprs() *ast.T {
	n := ast.Node(ast.Exprs)

	for {
		mark := p.Mark()

		e, err := p.Expr()
		if err != nil {
			p.Reset(mark)

			return n
		}

		n.Append(e)
	}
}

// <list> ::= '(' <exprs> ')' .
func (p *T) List() (*ast.T, error) {
	mark := p.Mark()

	if _, err := p.LParen(); err != nil {
		return nil, p.fail("expected a list", err)
	}

	n := p.Exprs()

	if _, err := p.RParen(); err != nil {
		p.Reset(mark)

		return nil, p.fail("unterminated list", err)
	}

	return n.Retag(ast.List), nil
}

// Float consumes a Float token.
func (p *T) Float() (*ast.T, error) {
	return p.atom(token.Float)
}

// Int consumes an Int token.
func (p *T) Int() (*ast.T, error) {
	return p.atom(token.Int)
}

// LParen consumes a '(' token.
func (p *T) LParen() (*ast.T, error) {
	return p.atom(token.LParen)
}

// RParen consumes a ')' token.
func (p *T) RParen() (*ast.T, error) {
	return p.atom(token.RParen)
}

// Symbol consumes a Symbol token.
func (p *T) Symbol() (*ast.T, error) {
	return p.atom(token.Symbol)
}

func (p *T) atom(class token.Class) (*ast.T, error) {
	t := p.peek()
	if !t.Is(class) {
		return nil, p.fail("expected "+class.String()+", got "+describe(t), nil)
	}

	p.cursor++

	return ast.Leaf(t), nil
}

func (p *T) fail(msg string, cause error) error {
	source := p.end
	if t := p.peek(); t != nil {
		source = t.Source()
	}

	return failure.ParseError(source, msg, cause)
}

func (p *T) peek() *token.T {
	if p.Done() {
		return nil
	}

	return p.tokens[p.cursor]
}

func describe(t *token.T) string {
	if t == nil {
		return "end of input"
	}

	return t.Class().String() + " " + t.Value()
}
