package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/lispc-lang/lispc/internal/ast"
	"github.com/lispc-lang/lispc/internal/lexer"
)

func parseInput(t *testing.T, input string) *ast.Program {
	t.Helper()

	program, err := ParseSource(input, "")
	if err != nil {
		t.Fatalf("ParseSource(%q) failed: %v", input, err)
	}
	return program
}

func TestSimpleCall(t *testing.T) {
	program := parseInput(t, "(add 2 2)")

	if len(program.Body) != 1 {
		t.Fatalf("expected 1 top-level expression, got %d", len(program.Body))
	}

	call, ok := program.Body[0].(*ast.CallExpression)
	if !ok {
		t.Fatalf("expected CallExpression, got %T", program.Body[0])
	}
	if call.Name != "add" {
		t.Errorf("callee = %q, want %q", call.Name, "add")
	}
	if len(call.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(call.Params))
	}

	for i, want := range []string{"2", "2"} {
		num, ok := call.Params[i].(*ast.NumberLiteral)
		if !ok {
			t.Fatalf("param %d: expected NumberLiteral, got %T", i, call.Params[i])
		}
		if num.Value != want {
			t.Errorf("param %d = %q, want %q", i, num.Value, want)
		}
	}
}

func TestNestedCall(t *testing.T) {
	program := parseInput(t, "(add 2 (subtract 4 2))")

	call := program.Body[0].(*ast.CallExpression)
	if call.Name != "add" {
		t.Errorf("outer callee = %q, want %q", call.Name, "add")
	}

	inner, ok := call.Params[1].(*ast.CallExpression)
	if !ok {
		t.Fatalf("expected nested CallExpression, got %T", call.Params[1])
	}
	if inner.Name != "subtract" {
		t.Errorf("inner callee = %q, want %q", inner.Name, "subtract")
	}
	if len(inner.Params) != 2 {
		t.Fatalf("expected 2 inner params, got %d", len(inner.Params))
	}
}

func TestStringParams(t *testing.T) {
	program := parseInput(t, `(concat "foo" "bar")`)

	call := program.Body[0].(*ast.CallExpression)
	for i, want := range []string{"foo", "bar"} {
		str, ok := call.Params[i].(*ast.StringLiteral)
		if !ok {
			t.Fatalf("param %d: expected StringLiteral, got %T", i, call.Params[i])
		}
		if str.Value != want {
			t.Errorf("param %d = %q, want %q", i, str.Value, want)
		}
	}
}

func TestMultipleTopLevelExpressions(t *testing.T) {
	program := parseInput(t, "(foo)(bar)")

	if len(program.Body) != 2 {
		t.Fatalf("expected 2 top-level expressions, got %d", len(program.Body))
	}

	for i, want := range []string{"foo", "bar"} {
		call := program.Body[i].(*ast.CallExpression)
		if call.Name != want {
			t.Errorf("body[%d] callee = %q, want %q", i, call.Name, want)
		}
		if len(call.Params) != 0 {
			t.Errorf("body[%d] expected no params, got %d", i, len(call.Params))
		}
	}
}

func TestTopLevelLiterals(t *testing.T) {
	program := parseInput(t, `42 "hello"`)

	if len(program.Body) != 2 {
		t.Fatalf("expected 2 top-level expressions, got %d", len(program.Body))
	}
	if _, ok := program.Body[0].(*ast.NumberLiteral); !ok {
		t.Errorf("body[0]: expected NumberLiteral, got %T", program.Body[0])
	}
	if _, ok := program.Body[1].(*ast.StringLiteral); !ok {
		t.Errorf("body[1]: expected StringLiteral, got %T", program.Body[1])
	}
}

func TestEmptyInput(t *testing.T) {
	program := parseInput(t, "")

	if len(program.Body) != 0 {
		t.Fatalf("expected empty body, got %d nodes", len(program.Body))
	}
}

func TestCallSpan(t *testing.T) {
	program := parseInput(t, "(add 2 2)")

	span := program.Body[0].GetSpan()
	if span.Start.Offset != 0 {
		t.Errorf("span start offset = %d, want 0", span.Start.Offset)
	}
	if span.End.Offset != 9 {
		t.Errorf("span end offset = %d, want 9", span.End.Offset)
	}
}

func TestUnexpectedToken(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantType    lexer.TokenType
		wantLiteral string
	}{
		{
			name:        "stray close paren",
			input:       ")",
			wantType:    lexer.TokenRParen,
			wantLiteral: ")",
		},
		{
			name:        "number instead of callee name",
			input:       "(1 2)",
			wantType:    lexer.TokenNumber,
			wantLiteral: "1",
		},
		{
			name:        "string instead of callee name",
			input:       `("add" 2)`,
			wantType:    lexer.TokenString,
			wantLiteral: "add",
		},
		{
			name:        "paren instead of callee name",
			input:       "((add 1))",
			wantType:    lexer.TokenLParen,
			wantLiteral: "(",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSource(tt.input, "")

			var tokErr *UnexpectedTokenError
			if !errors.As(err, &tokErr) {
				t.Fatalf("expected UnexpectedTokenError, got %v", err)
			}
			if tokErr.Token.Type != tt.wantType {
				t.Errorf("Token.Type = %s, want %s", tokErr.Token.Type, tt.wantType)
			}
			if tokErr.Token.Literal != tt.wantLiteral {
				t.Errorf("Token.Literal = %q, want %q", tokErr.Token.Literal, tt.wantLiteral)
			}
		})
	}
}

func TestUnexpectedEndOfInput(t *testing.T) {
	tests := []string{
		"(",
		"(add",
		"(add 2",
		"(add 2 (subtract 4 2)",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := ParseSource(input, "")

			var eofErr *UnexpectedEndOfInputError
			if !errors.As(err, &eofErr) {
				t.Fatalf("expected UnexpectedEndOfInputError, got %v", err)
			}
		})
	}
}

func TestMaxNestingDepth(t *testing.T) {
	depth := MaxNestingDepth + 1
	input := strings.Repeat("(f ", depth) + "1" + strings.Repeat(")", depth)

	_, err := ParseSource(input, "")

	var depthErr *ast.MaxDepthExceededError
	if !errors.As(err, &depthErr) {
		t.Fatalf("expected MaxDepthExceededError, got %v", err)
	}
}

func TestDeepNestingWithinLimit(t *testing.T) {
	depth := 500
	input := strings.Repeat("(f ", depth) + "1" + strings.Repeat(")", depth)

	if _, err := ParseSource(input, ""); err != nil {
		t.Fatalf("unexpected error at depth %d: %v", depth, err)
	}
}
