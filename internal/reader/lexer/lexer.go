// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for Scheme source text.
//
// The lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/drhodes/lazarus/internal/common/failure"
	"github.com/drhodes/lazarus/internal/common/struct/loc"
	"github.com/drhodes/lazarus/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes string // Buffer being scanned.
	first int    // Index of the current token's first byte.
	index int    // Index of the current byte.
	line  int    // Line of the current byte.
	runes int    // Runes scanned on the current line.
	state action // Current action.

	source loc.T // Where the current token starts.

	tokens chan *token.T
}

// New creates a new T for text. Label can be a file name or other identifier.
func New(label, text string) *T {
	return &T{
		bytes: text,
		line:  1,
		runes: 1,
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
		state:  startState,
		tokens: make(chan *token.T, 2),
	}
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil at the end of the input.
// A byte that starts no token is returned as an Error token and ends the
// sequence.
func (l *T) Token() *token.T {
	for {
		select {
		case t := <-l.tokens:
			return t
		default:
			if l.state == nil {
				return nil
			}

			l.state = l.state(l)
		}
	}
}

// Tokens consumes the remaining tokens.
func (l *T) Tokens() ([]*token.T, error) {
	var ts []*token.T

	for t := l.Token(); t != nil; t = l.Token() {
		if t.Is(token.Error) {
			return ts, failure.LexError(t.Source(), t.Value())
		}

		ts = append(ts, t)
	}

	return ts, nil
}

type action func(*T) action

const eof = -1

func (l *T) accept(r rune, w int) {
	if r == '\n' {
		l.line++
		l.runes = 1
	} else {
		l.runes++
	}

	l.index += w
}

func (l *T) emit(t *token.T) {
	l.tokens <- t
	l.skip()
}

func (l *T) location() *loc.T {
	source := l.source
	source.Start = l.first
	source.End = l.index
	source.Text = l.Text()

	return &source
}

func (l *T) peek() (rune, int) {
	return l.peekAt(0)
}

func (l *T) peekAt(offset int) (rune, int) {
	r, w := rune(eof), 0
	if l.index+offset < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index+offset:])
	}

	return r, w
}

func (l *T) skip() {
	l.source.Char = l.runes
	l.source.Line = l.line
	l.first = l.index
}

// T states.

func scanNumber(l *T) action {
	class := token.Int

	if r, w := l.peek(); r == '+' || r == '-' {
		l.accept(r, w)
	}

	acceptDigits(l)

	if r, w := l.peek(); r == '.' && isDigit(l.peekAt(w)) {
		class = token.Float

		l.accept(r, w)
		acceptDigits(l)

		acceptExponent(l)
	}

	text := l.Text()

	if class == token.Float {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return invalid(l)
		}

		l.emit(token.NewFloat(f, text, l.location()))

		return startState
	}

	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return invalid(l)
	}

	l.emit(token.NewInt(i, text, l.location()))

	return startState
}

func scanSpace(l *T) action {
	for {
		r, w := l.peek()
		if r == eof || !unicode.IsSpace(r) {
			break
		}

		l.accept(r, w)
	}

	l.emit(token.New(token.Space, l.Text(), l.location()))

	return startState
}

func scanSymbol(l *T) action {
	r, w := l.peek()
	l.accept(r, w)

	for {
		r, w = l.peek()
		if !isSymbolRune(r) {
			break
		}

		l.accept(r, w)
	}

	l.emit(token.NewSymbol(l.Text(), l.location()))

	return startState
}

// Patterns are tried in order: symbol, number, space, then punctuation.
func startState(l *T) action {
	r, w := l.peek()

	switch {
	case r == eof:
		return nil
	case isSymbolStart(r) && !signedNumber(l, r, w):
		return scanSymbol
	case isDigit(r, 0), signedNumber(l, r, w):
		return scanNumber
	case r == '.' && isDigit(l.peekAt(w)):
		return scanNumber
	case unicode.IsSpace(r):
		return scanSpace
	case r == '(', r == ')', r == '.':
		l.accept(r, w)
		l.emit(token.New(token.Class(r), l.Text(), l.location()))

		return startState
	}

	l.accept(r, w)

	return invalid(l)
}

// Helper functions.

func acceptDigits(l *T) {
	for {
		r, w := l.peek()
		if !isDigit(r, w) {
			return
		}

		l.accept(r, w)
	}
}

func acceptExponent(l *T) {
	r, w := l.peek()
	if r != 'e' && r != 'E' {
		return
	}

	n := w

	s, sw := l.peekAt(n)
	if s == '+' || s == '-' {
		n += sw
	}

	if !isDigit(l.peekAt(n)) {
		return
	}

	l.accept(r, w)

	if s == '+' || s == '-' {
		l.accept(s, sw)
	}

	acceptDigits(l)
}

func invalid(l *T) action {
	l.emit(token.New(token.Error, l.Text(), l.location()))

	return nil
}

func isDigit(r rune, _ int) bool {
	return '0' <= r && r <= '9'
}

func isSymbolRune(r rune) bool {
	return isSymbolStart(r) || isDigit(r, 0) || r == '\\'
}

func isSymbolStart(r rune) bool {
	return unicode.IsLetter(r) || (r > 0 && strings.ContainsRune("!#$%&*+-/:<=>?^_~", r))
}

// A sign followed by a digit, or by a '.' and a digit, starts a number.
func signedNumber(l *T, r rune, w int) bool {
	if r != '+' && r != '-' {
		return false
	}

	n, nw := l.peekAt(w)
	if isDigit(n, nw) {
		return true
	}

	return n == '.' && isDigit(l.peekAt(w+nw))
}
