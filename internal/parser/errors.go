package parser

import (
	"fmt"

	"github.com/lispc-lang/lispc/internal/lexer"
	"github.com/lispc-lang/lispc/internal/position"
)

// UnexpectedTokenError reports a token whose kind matches none of the
// forms expected at its grammar position.
type UnexpectedTokenError struct {
	Token lexer.Token
}

// Error implements the error interface.
func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected %s token %q at %s", e.Token.Type, e.Token.Literal, e.Token.Span.Start)
}

// UnexpectedEndOfInputError reports a token sequence that ran out
// while a call expression was still expecting its argument list or
// closing paren.
type UnexpectedEndOfInputError struct {
	Pos position.Position
}

// Error implements the error interface.
func (e *UnexpectedEndOfInputError) Error() string {
	return fmt.Sprintf("unexpected end of input at %s", e.Pos)
}
