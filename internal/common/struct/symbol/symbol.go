// Released under an MIT license. See LICENSE.

// Package symbol provides the name carried by a symbol token.
//
// A symbol's identity is its name. The file and position where it was
// written are kept for messages only, so two symbols with the same name
// always refer to the same binding.
package symbol

// T (symbol) is a name and where it was written.
type T struct {
	Name     string
	Filename string
	Pos      int
}

type symbol = T

// Unknown is the file name used for symbols created by the interpreter.
const Unknown = "<unknown file>"

// New creates a symbol.
func New(name, filename string, pos int) *symbol {
	return &symbol{Name: name, Filename: filename, Pos: pos}
}

// Named creates a symbol that was not read from a file.
func Named(name string) *symbol {
	return New(name, Unknown, 0)
}

// Equal returns true if o has the same name as s.
func (s *symbol) Equal(o *symbol) bool {
	if s == nil || o == nil {
		return s == o
	}

	return s.Name == o.Name
}

// Key returns the value symbols are hashed by.
func (s *symbol) Key() string {
	return s.Name
}

func (s *symbol) String() string {
	return s.Name
}
