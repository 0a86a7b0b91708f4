// Package cast defines the target Abstract Syntax Tree for the lispc
// compiler: a C-like call-expression tree produced by the transformer
// and consumed by the code generator. Target nodes are always newly
// constructed; they never alias source AST nodes.
package cast

import "fmt"

// NodeKind identifies the variant of a target AST node
type NodeKind int

const (
	KindProgram NodeKind = iota
	KindExpressionStatement
	KindCallExpression
	KindIdentifier
	KindNumberLiteral
	KindStringLiteral
)

// kindNames provides string representations for node kinds
var kindNames = map[NodeKind]string{
	KindProgram:             "Program",
	KindExpressionStatement: "ExpressionStatement",
	KindCallExpression:      "CallExpression",
	KindIdentifier:          "Identifier",
	KindNumberLiteral:       "NumberLiteral",
	KindStringLiteral:       "StringLiteral",
}

// String returns a string representation of the node kind
func (k NodeKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(k))
}

// Node is the base interface for all target AST nodes
type Node interface {
	Kind() NodeKind
}

// Program is the root of the target tree. Body holds an
// ExpressionStatement for every top-level call of the source program.
type Program struct {
	Body []Node
}

func (p *Program) Kind() NodeKind { return KindProgram }

// ExpressionStatement wraps a top-level expression so the generator
// can terminate it with a semicolon.
type ExpressionStatement struct {
	Expression Node
}

func (s *ExpressionStatement) Kind() NodeKind { return KindExpressionStatement }

// CallExpression represents a C-style call: callee(arg, arg, ...)
type CallExpression struct {
	Callee    *Identifier
	Arguments []Node
}

func (c *CallExpression) Kind() NodeKind { return KindCallExpression }

// Identifier is a bare name, emitted verbatim
type Identifier struct {
	Name string
}

func (i *Identifier) Kind() NodeKind { return KindIdentifier }

// NumberLiteral carries its digits as text, emitted verbatim
type NumberLiteral struct {
	Value string
}

func (n *NumberLiteral) Kind() NodeKind { return KindNumberLiteral }

// StringLiteral carries its content without quotes; the generator
// adds them back.
type StringLiteral struct {
	Value string
}

func (s *StringLiteral) Kind() NodeKind { return KindStringLiteral }
