// Package parser implements the lispc recursive descent parser.
// One node-producing procedure, parseExpression, is called repeatedly
// to recognize the grammar: numbers and strings are leaves, an open
// paren introduces a call whose callee must be a bare name.
package parser

import (
	"github.com/lispc-lang/lispc/internal/ast"
	"github.com/lispc-lang/lispc/internal/lexer"
	"github.com/lispc-lang/lispc/internal/position"
)

// MaxNestingDepth bounds call-expression nesting. Inputs nested deeper
// fail with ast.MaxDepthExceededError instead of exhausting the call
// stack.
const MaxNestingDepth = 10000

// Parser represents the recursive descent parser. It consumes the
// eagerly produced token sequence in order and never backtracks.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// New creates a new parser instance over a token sequence, as produced
// by lexer.Tokenize.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// ParseSource lexes and parses source text in one step.
func ParseSource(input, filename string) (*ast.Program, error) {
	tokens, err := lexer.NewWithFilename(input, filename).Tokenize()
	if err != nil {
		return nil, err
	}
	return New(tokens).Parse()
}

// current returns the token under the cursor. Past the end of the
// sequence it returns a synthetic EOF token.
func (p *Parser) current() lexer.Token {
	if p.pos >= len(p.tokens) {
		return lexer.Token{Type: lexer.TokenEOF}
	}
	return p.tokens[p.pos]
}

// advance moves the cursor to the next token
func (p *Parser) advance() {
	p.pos++
}

// currentIs checks if the current token is of the given type
func (p *Parser) currentIs(tokenType lexer.TokenType) bool {
	return p.current().Type == tokenType
}

// Parse parses the token sequence into a Program. Top-level
// expressions are appended to the program body in encounter order.
func (p *Parser) Parse() (*ast.Program, error) {
	program := &ast.Program{}

	for !p.currentIs(lexer.TokenEOF) {
		node, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		program.Body = append(program.Body, node)
	}

	if len(program.Body) > 0 {
		first := program.Body[0].GetSpan()
		last := program.Body[len(program.Body)-1].GetSpan()
		program.Span = first.Union(last)
	}

	return program, nil
}

// parseExpression parses a single expression: a number literal, a
// string literal, or a parenthesized call expression.
func (p *Parser) parseExpression(depth int) (ast.Node, error) {
	if depth >= MaxNestingDepth {
		return nil, &ast.MaxDepthExceededError{Limit: MaxNestingDepth}
	}

	tok := p.current()

	switch tok.Type {
	case lexer.TokenNumber:
		p.advance()
		return &ast.NumberLiteral{Span: tok.Span, Value: tok.Literal}, nil

	case lexer.TokenString:
		p.advance()
		return &ast.StringLiteral{Span: tok.Span, Value: tok.Literal}, nil

	case lexer.TokenLParen:
		return p.parseCallExpression(tok, depth)

	case lexer.TokenEOF:
		return nil, &UnexpectedEndOfInputError{Pos: tok.Span.Start}

	default:
		return nil, &UnexpectedTokenError{Token: tok}
	}
}

// parseCallExpression parses the remainder of a call after its open
// paren. The token immediately after the open paren must be a Name;
// it becomes the callee. Parameters are collected until the matching
// close paren.
func (p *Parser) parseCallExpression(open lexer.Token, depth int) (ast.Node, error) {
	p.advance() // consume '('

	name := p.current()
	if name.Type == lexer.TokenEOF {
		return nil, &UnexpectedEndOfInputError{Pos: name.Span.Start}
	}
	if name.Type != lexer.TokenName {
		return nil, &UnexpectedTokenError{Token: name}
	}
	p.advance()

	call := &ast.CallExpression{Name: name.Literal}

	for !p.currentIs(lexer.TokenRParen) {
		if p.currentIs(lexer.TokenEOF) {
			return nil, &UnexpectedEndOfInputError{Pos: p.current().Span.Start}
		}
		param, err := p.parseExpression(depth + 1)
		if err != nil {
			return nil, err
		}
		call.Params = append(call.Params, param)
	}

	closing := p.current()
	p.advance() // consume ')'

	call.Span = position.NewSpan(open.Span.Start, closing.Span.End)
	return call, nil
}
