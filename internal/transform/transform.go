// Package transform rewrites the Lisp-shaped source AST into the
// C-shaped target AST.
//
// The rewrite is driven entirely by the generic traversal engine in
// the ast package: enter hooks for the three expression kinds append
// newly built target nodes to an "attachment point", the child
// sequence of the nearest enclosing target node. Attachment points are
// kept in a side table keyed by source-node identity, so the source
// tree is never mutated. Each attachment point is established at its
// owner's enter hook, strictly before any descendant hook runs.
package transform

import (
	"fmt"

	"github.com/lispc-lang/lispc/internal/ast"
	"github.com/lispc-lang/lispc/internal/cast"
	"github.com/lispc-lang/lispc/internal/position"
)

// TransformationError represents an internal error during AST
// transformation. It indicates a broken tree invariant, not bad input.
type TransformationError struct {
	Message string
	Span    position.Span
}

// Error implements the error interface.
func (te *TransformationError) Error() string {
	return fmt.Sprintf("transformation error at %s: %s", te.Span, te.Message)
}

// Transform builds a target Program from a source Program. The source
// tree is left untouched; every target node is newly constructed.
func Transform(src *ast.Program) (*cast.Program, error) {
	target := &cast.Program{}

	// Side table from source node identity to the target child
	// sequence that node's translated children append into.
	attach := map[ast.Node]*[]cast.Node{src: &target.Body}

	appendTo := func(parent ast.Node, child cast.Node, span position.Span) error {
		point, ok := attach[parent]
		if !ok {
			return &TransformationError{
				Message: fmt.Sprintf("no attachment point for parent %s", parent.Kind()),
				Span:    span,
			}
		}
		*point = append(*point, child)
		return nil
	}

	rules := ast.Visitor{
		ast.KindNumberLiteral: {
			Enter: func(node, parent ast.Node) error {
				n := node.(*ast.NumberLiteral)
				return appendTo(parent, &cast.NumberLiteral{Value: n.Value}, n.Span)
			},
		},
		ast.KindStringLiteral: {
			Enter: func(node, parent ast.Node) error {
				n := node.(*ast.StringLiteral)
				return appendTo(parent, &cast.StringLiteral{Value: n.Value}, n.Span)
			},
		},
		ast.KindCallExpression: {
			Enter: func(node, parent ast.Node) error {
				n := node.(*ast.CallExpression)
				call := &cast.CallExpression{Callee: &cast.Identifier{Name: n.Name}}

				// This call's own children append into its argument
				// list, not the parent's.
				attach[node] = &call.Arguments

				if parent.Kind() == ast.KindCallExpression {
					// Nested call: it is itself an argument.
					return appendTo(parent, call, n.Span)
				}
				// Top-level call: wrap it as a statement.
				return appendTo(parent, &cast.ExpressionStatement{Expression: call}, n.Span)
			},
		},
	}

	if err := ast.Traverse(src, rules); err != nil {
		return nil, err
	}
	return target, nil
}
