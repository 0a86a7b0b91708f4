package lexer

import (
	"fmt"

	"github.com/lispc-lang/lispc/internal/position"
)

// UnknownCharacterError reports a character that matches none of the
// recognized lexical classes.
type UnknownCharacterError struct {
	Char rune
	Pos  position.Position
}

// Error implements the error interface.
func (e *UnknownCharacterError) Error() string {
	return fmt.Sprintf("unknown character %q at %s", e.Char, e.Pos)
}

// UnterminatedStringError reports a string literal whose closing quote
// was never found before the end of input. Pos is the position of the
// opening quote.
type UnterminatedStringError struct {
	Pos position.Position
}

// Error implements the error interface.
func (e *UnterminatedStringError) Error() string {
	return fmt.Sprintf("unterminated string literal starting at %s", e.Pos)
}
