// Released under an MIT license. See LICENSE.

// Package ast provides the syntax tree produced by the parser.
package ast

import (
	"strings"

	"github.com/drhodes/lazarus/internal/common/interface/cell"
	"github.com/drhodes/lazarus/internal/common/struct/token"
	"github.com/drhodes/lazarus/internal/common/type/float"
	"github.com/drhodes/lazarus/internal/common/type/integer"
	"github.com/drhodes/lazarus/internal/common/type/list"
	"github.com/drhodes/lazarus/internal/common/type/pair"
	"github.com/drhodes/lazarus/internal/common/type/sym"
)

// Rule names the production that built a node.
type Rule int

// Rules.
const (
	List Rule = iota
	Exprs
	Empty
	EmptyList
)

// T (ast) is either a leaf holding a token or a node with children.
type T struct {
	children []*T
	leaf     *token.T
	rule     Rule
}

type ast = T

// Leaf creates a leaf for the token t.
func Leaf(t *token.T) *ast {
	return &ast{leaf: t}
}

// Node creates a node for rule with children.
func Node(rule Rule, children ...*ast) *ast {
	return &ast{children: children, rule: rule}
}

func (r Rule) String() string {
	switch r {
	case List:
		return "List"
	case Exprs:
		return "Exprs"
	case Empty:
		return "Empty"
	case EmptyList:
		return "EmptyList"
	}

	return "Rule(?)"
}

// Append adds child to the node n.
func (n *ast) Append(child *ast) {
	n.children = append(n.children, child)
}

// Cell converts the tree rooted at n to a value. Leaves become symbols,
// floats or integers and lists become proper lists of their converted
// children.
func (n *ast) Cell() cell.I {
	if n.IsLeaf() {
		t := n.leaf

		switch t.Class() {
		case token.Symbol:
			return sym.Token(t)
		case token.Float:
			return float.At(t.Float(), t.Source())
		case token.Int:
			return integer.At(t.Int(), t.Source())
		}

		panic("interpreter bug: no value for token " + t.String())
	}

	switch n.rule {
	case List:
		elements := make([]cell.I, len(n.children))
		for i, c := range n.children {
			elements[i] = c.Cell()
		}

		return list.New(elements...)
	case Empty, EmptyList:
		return pair.Null
	}

	panic("interpreter bug: " + n.rule.String() + " node outside a list")
}

// Children returns the children of the node n.
func (n *ast) Children() []*ast {
	return n.children
}

// IsLeaf returns true if n holds a token.
func (n *ast) IsLeaf() bool {
	return n.leaf != nil
}

// Retag changes the rule of the node n.
func (n *ast) Retag(rule Rule) *ast {
	n.rule = rule

	return n
}

// Rule returns the rule of the node n.
func (n *ast) Rule() Rule {
	return n.rule
}

// String returns source-like text for the tree. Useful for debugging.
func (n *ast) String() string {
	if n.IsLeaf() {
		return n.leaf.Value()
	}

	parts := make([]string, len(n.children))
	for i, c := range n.children {
		parts[i] = c.String()
	}

	s := strings.Join(parts, " ")

	switch n.rule {
	case List, EmptyList:
		return "(" + s + ")"
	case Exprs, Empty:
		return s
	}

	return s
}

// Token returns the token held by the leaf n, or nil.
func (n *ast) Token() *token.T {
	return n.leaf
}
