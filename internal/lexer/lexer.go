// Package lexer implements the lispc lexical analyzer.
// It turns raw source text into a flat sequence of tokens for the
// recursive descent parser. The grammar is tiny: parentheses, decimal
// number literals, double-quoted string literals, and bare names.
package lexer

import (
	"fmt"
	"unicode/utf8"

	"github.com/lispc-lang/lispc/internal/position"
)

// TokenType represents the type of a token
type TokenType int

// Token types
const (
	TokenEOF TokenType = iota
	TokenLParen
	TokenRParen
	TokenNumber
	TokenString
	TokenName
)

// tokenNames provides string representations for token types
var tokenNames = map[TokenType]string{
	TokenEOF:    "EOF",
	TokenLParen: "LPAREN",
	TokenRParen: "RPAREN",
	TokenNumber: "NUMBER",
	TokenString: "STRING",
	TokenName:   "NAME",
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(tt))
}

// Token represents a lexical token with position information
type Token struct {
	Type    TokenType
	Literal string
	Span    position.Span
}

// String returns a string representation of the token
func (t Token) String() string {
	return fmt.Sprintf("{Type: %s, Literal: %q, Span: %s}", t.Type, t.Literal, t.Span)
}

// Lexer scans source text left to right with a single byte cursor.
// It never backtracks; one character of lookahead is available via
// peekChar.
type Lexer struct {
	input        string
	filename     string // source filename for error reporting
	position     int    // current position in input (points to current char)
	readPosition int    // current reading position in input (after current char)
	ch           byte   // current char under examination
	line         int    // current line number
	column       int    // current column number
}

// New creates a new lexer instance
func New(input string) *Lexer {
	return NewWithFilename(input, "")
}

// NewWithFilename creates a new lexer instance with filename for error reporting
func NewWithFilename(input, filename string) *Lexer {
	l := &Lexer{
		input:    input,
		filename: filename,
		line:     1,
		column:   0,
	}
	l.readChar()
	return l
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

// atEOF reports whether the cursor has moved past the last input
// byte. End of input is detected by position, never by a sentinel
// character value: a literal NUL byte in the input is an ordinary
// (unrecognized) character.
func (l *Lexer) atEOF() bool {
	return l.position >= len(l.input)
}

// peekChar returns the next character without advancing position
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// currentPosition captures the position of the character under the cursor
func (l *Lexer) currentPosition() position.Position {
	return position.Position{
		Filename: l.filename,
		Line:     l.line,
		Column:   l.column,
		Offset:   l.position,
	}
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for !l.atEOF() && isWhitespace(l.ch) {
		l.readChar()
	}
}

// readNumber reads a maximal run of decimal digits.
// No sign, decimal point, or exponent support: purely [0-9]+.
func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readName reads a maximal run of ASCII letters.
// Names may not contain digits or underscores.
func (l *Lexer) readName() string {
	start := l.position
	for isLetter(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readString reads the content between double quotes. There is no
// escape mechanism, so an embedded quote always terminates the string.
// The second return value reports whether a closing quote was found
// before the end of input.
func (l *Lexer) readString() (string, bool) {
	start := l.position + 1 // skip the opening quote
	for {
		l.readChar()
		if l.atEOF() {
			return "", false
		}
		if l.ch == '"' {
			literal := l.input[start:l.position]
			l.readChar() // consume the closing quote
			return literal, true
		}
	}
}

// isLetter checks if character is ASCII letter
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

// isDigit checks if character is ASCII digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// isWhitespace checks if character belongs to the whitespace class
func isWhitespace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// NextToken scans the input and returns the next token with full
// position information. At end of input it returns a TokenEOF token.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespace()

	start := l.currentPosition()

	switch {
	case l.atEOF():
		return Token{Type: TokenEOF, Literal: "", Span: position.NewSpan(start, start)}, nil

	case l.ch == '(':
		l.readChar()
		return l.newToken(TokenLParen, "(", start), nil

	case l.ch == ')':
		l.readChar()
		return l.newToken(TokenRParen, ")", start), nil

	case isDigit(l.ch):
		literal := l.readNumber()
		return l.newToken(TokenNumber, literal, start), nil

	case l.ch == '"':
		literal, terminated := l.readString()
		if !terminated {
			return Token{}, &UnterminatedStringError{Pos: start}
		}
		return l.newToken(TokenString, literal, start), nil

	case isLetter(l.ch):
		literal := l.readName()
		return l.newToken(TokenName, literal, start), nil

	default:
		// Decode the full rune so multi-byte characters are reported
		// intact, not as their first byte.
		r, _ := utf8.DecodeRuneInString(l.input[l.position:])
		return Token{}, &UnknownCharacterError{Char: r, Pos: start}
	}
}

// newToken builds a token spanning from start to the current cursor
func (l *Lexer) newToken(tokenType TokenType, literal string, start position.Position) Token {
	return Token{
		Type:    tokenType,
		Literal: literal,
		Span:    position.NewSpan(start, l.currentPosition()),
	}
}

// Tokenize scans the entire input eagerly and returns all tokens in
// order, terminated by a TokenEOF token. The first lexical error
// aborts the scan.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens, nil
		}
	}
}
