// Released under an MIT license. See LICENSE.

// Package loc provides the type used to track the source of tokens and values.
package loc

import (
	"strconv"
)

// T (loc) is a lexical location.
type T struct {
	Char  int    // Character position (column).
	End   int    // Byte offset one past the last byte.
	Line  int    // Line number (row).
	Name  string // Label for the source of this token.
	Start int    // Byte offset of the first byte.
	Text  string // The text at this location.
}

type loc = T

// New creates a location for the span [start, end) in the source name.
func New(name string, start, end int) *loc {
	return &loc{Name: name, Start: start, End: end}
}

// Offset returns the location as name:offset.
func (l *loc) Offset() string {
	if l == nil {
		return "<unknown>"
	}

	return l.Name + ":" + strconv.Itoa(l.Start)
}

func (l *loc) String() string {
	if l == nil {
		return "<unknown>"
	}

	return l.Name + ":" + strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Char)
}
