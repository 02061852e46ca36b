// Released under an MIT license. See LICENSE.

// Package token is shared by the lexer and parser.
package token

import (
	"strconv"
	"unicode"

	"github.com/drhodes/lazarus/internal/common/struct/loc"
	"github.com/drhodes/lazarus/internal/common/struct/symbol"
)

// Class is a token's type.
type Class rune

// T (token) is a lexical item returned by the scanner. Tokens are not
// modified once created.
type T struct {
	class  Class
	f      float64
	i      int64
	source *loc.T
	symbol *symbol.T
	value  string
}

type token = T

// Token classes.
const (
	Error Class = iota

	Float Class = unicode.MaxRune + iota
	Int
	Space
	Symbol

	Dot    Class = '.'
	LParen Class = '('
	RParen Class = ')'
)

// New creates a new token for punctuation, space or errors.
func New(class Class, value string, source *loc.T) *token {
	return &token{
		class:  class,
		source: source,
		value:  value,
	}
}

// NewFloat creates a new Float token.
func NewFloat(f float64, value string, source *loc.T) *token {
	t := New(Float, value, source)
	t.f = f

	return t
}

// NewInt creates a new Int token.
func NewInt(i int64, value string, source *loc.T) *token {
	t := New(Int, value, source)
	t.i = i

	return t
}

// NewSymbol creates a new Symbol token.
func NewSymbol(value string, source *loc.T) *token {
	t := New(Symbol, value, source)
	t.symbol = symbol.New(value, source.Name, source.Start)

	return t
}

// String returns a string representation of Class. Useful for debugging.
func (c Class) String() string {
	switch c {
	case Error:
		return "Error"
	case Float:
		return "Float"
	case Int:
		return "Int"
	case Space:
		return "Space"
	case Symbol:
		return "Symbol"
	}

	return strconv.QuoteRune(rune(c))
}

// Class returns the token's class.
func (t *token) Class() Class {
	return t.class
}

// End returns the byte offset one past the token.
func (t *token) End() int {
	return t.source.End
}

// Float returns the value of a Float token.
func (t *token) Float() float64 {
	return t.f
}

// Int returns the value of an Int token.
func (t *token) Int() int64 {
	return t.i
}

// Is returns true if the token t is any of the classes in cs.
func (t *token) Is(cs ...Class) bool {
	if t == nil {
		return false
	}

	for _, c := range cs {
		if t.class == c {
			return true
		}
	}

	return false
}

// Source returns the source location for this token.
func (t *token) Source() *loc.T {
	return t.source
}

// Start returns the byte offset of the token.
func (t *token) Start() int {
	return t.source.Start
}

// String returns the token's string representation. Useful for debugging.
func (t *token) String() string {
	return strconv.Quote(t.value) + "(" +
		t.class.String() + "," +
		t.source.String() + ")"
}

// Symbol returns the symbol carried by a Symbol token or nil.
func (t *token) Symbol() *symbol.T {
	return t.symbol
}

// Value returns the token's text.
func (t *token) Value() string {
	return t.value
}
