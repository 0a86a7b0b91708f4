package ast

import "fmt"

// UnknownNodeKindError reports a node whose kind is outside the closed
// source AST kind set. This is an internal invariant violation, not a
// user-input error.
type UnknownNodeKindError struct {
	Kind NodeKind
}

// Error implements the error interface.
func (e *UnknownNodeKindError) Error() string {
	return fmt.Sprintf("unknown AST node kind: %s", e.Kind)
}

// MaxDepthExceededError reports a traversal that exceeded the nesting
// depth limit.
type MaxDepthExceededError struct {
	Limit int
}

// Error implements the error interface.
func (e *MaxDepthExceededError) Error() string {
	return fmt.Sprintf("maximum nesting depth exceeded (limit %d)", e.Limit)
}
