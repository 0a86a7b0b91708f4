// Package codegen prints the target AST as C-like call-expression
// source text. Generation is pure recursive structural printing: each
// node kind has one output form and literals are emitted verbatim.
package codegen

import (
	"fmt"
	"strings"

	"github.com/lispc-lang/lispc/internal/cast"
)

// UnknownNodeKindError reports a node whose kind is outside the closed
// target AST kind set. This is an internal invariant violation, not a
// user-input error.
type UnknownNodeKindError struct {
	Kind cast.NodeKind
}

// Error implements the error interface.
func (e *UnknownNodeKindError) Error() string {
	return fmt.Sprintf("unknown target AST node kind: %s", e.Kind)
}

// Generate renders a target AST node as output text.
func Generate(node cast.Node) (string, error) {
	var b strings.Builder
	if err := emit(&b, node); err != nil {
		return "", err
	}
	return b.String(), nil
}

// emit writes one node and its children to the builder
func emit(b *strings.Builder, node cast.Node) error {
	switch n := node.(type) {
	case *cast.Program:
		// Statements joined by a newline.
		for i, stmt := range n.Body {
			if i > 0 {
				b.WriteByte('\n')
			}
			if err := emit(b, stmt); err != nil {
				return err
			}
		}

	case *cast.ExpressionStatement:
		if err := emit(b, n.Expression); err != nil {
			return err
		}
		b.WriteByte(';')

	case *cast.CallExpression:
		if err := emit(b, n.Callee); err != nil {
			return err
		}
		b.WriteByte('(')
		for i, arg := range n.Arguments {
			if i > 0 {
				b.WriteString(", ")
			}
			if err := emit(b, arg); err != nil {
				return err
			}
		}
		b.WriteByte(')')

	case *cast.Identifier:
		b.WriteString(n.Name)

	case *cast.NumberLiteral:
		b.WriteString(n.Value)

	case *cast.StringLiteral:
		// No escaping, mirroring the lexer's no-escape policy.
		b.WriteByte('"')
		b.WriteString(n.Value)
		b.WriteByte('"')

	default:
		return &UnknownNodeKindError{Kind: node.Kind()}
	}

	return nil
}
