// Package ast defines the source Abstract Syntax Tree (AST) for the
// lispc compiler, together with a generic visitor-driven traversal
// engine for analysis and transformation passes.
//
// The source AST is faithful to the Lisp-like input syntax: a Program
// holds top-level expressions, a CallExpression holds a callee name
// and its parameters, and the two literal kinds carry their text
// payload. Number literals stay text end-to-end; no numeric conversion
// is ever performed.
package ast

import (
	"fmt"
	"strings"

	"github.com/lispc-lang/lispc/internal/position"
)

// NodeKind identifies the variant of a source AST node. The kind set
// is closed: the traversal engine switches over it exhaustively and
// rejects anything else.
type NodeKind int

const (
	KindProgram NodeKind = iota
	KindCallExpression
	KindNumberLiteral
	KindStringLiteral
)

// kindNames provides string representations for node kinds
var kindNames = map[NodeKind]string{
	KindProgram:        "Program",
	KindCallExpression: "CallExpression",
	KindNumberLiteral:  "NumberLiteral",
	KindStringLiteral:  "StringLiteral",
}

// String returns a string representation of the node kind
func (k NodeKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(k))
}

// Node is the base interface for all source AST nodes
type Node interface {
	// Kind returns the variant tag of this node
	Kind() NodeKind
	// GetSpan returns the source span covered by this node
	GetSpan() position.Span
	// String returns a human-readable representation of the node
	String() string
}

// Program represents the root of the AST - a complete source file.
// Body holds the top-level expressions in encounter order.
type Program struct {
	Span position.Span
	Body []Node
}

func (p *Program) Kind() NodeKind         { return KindProgram }
func (p *Program) GetSpan() position.Span { return p.Span }
func (p *Program) String() string {
	parts := make([]string, 0, len(p.Body))
	for _, node := range p.Body {
		parts = append(parts, node.String())
	}
	return strings.Join(parts, "\n")
}

// CallExpression represents a parenthesized call: a callee name
// followed by zero or more parameters, each itself a literal or a
// nested CallExpression.
type CallExpression struct {
	Span   position.Span
	Name   string // callee name, from the Name token after the open paren
	Params []Node
}

func (c *CallExpression) Kind() NodeKind         { return KindCallExpression }
func (c *CallExpression) GetSpan() position.Span { return c.Span }
func (c *CallExpression) String() string {
	parts := make([]string, 0, len(c.Params)+1)
	parts = append(parts, c.Name)
	for _, param := range c.Params {
		parts = append(parts, param.String())
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// NumberLiteral represents a run of decimal digits, kept as text
type NumberLiteral struct {
	Span  position.Span
	Value string
}

func (n *NumberLiteral) Kind() NodeKind         { return KindNumberLiteral }
func (n *NumberLiteral) GetSpan() position.Span { return n.Span }
func (n *NumberLiteral) String() string         { return n.Value }

// StringLiteral represents a double-quoted string, without the quotes
type StringLiteral struct {
	Span  position.Span
	Value string
}

func (s *StringLiteral) Kind() NodeKind         { return KindStringLiteral }
func (s *StringLiteral) GetSpan() position.Span { return s.Span }
func (s *StringLiteral) String() string         { return fmt.Sprintf("%q", s.Value) }
