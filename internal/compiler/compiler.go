// Package compiler composes the four lispc stages into the single
// source-to-source entry point:
//
//	compile = generate ∘ transform ∘ parse ∘ lex
//
// Each stage is a pure function of its input; the first failure
// propagates unchanged and no partial output is produced. The package
// holds no state, so concurrent calls on independent inputs are safe.
package compiler

import (
	"os"

	"github.com/lispc-lang/lispc/internal/codegen"
	"github.com/lispc-lang/lispc/internal/lexer"
	"github.com/lispc-lang/lispc/internal/parser"
	"github.com/lispc-lang/lispc/internal/transform"
)

// Compile converts Lisp-like call-expression source text into the
// equivalent C-like call-expression text.
func Compile(input string) (string, error) {
	return CompileSource(input, "")
}

// CompileFile reads a source file and compiles it, threading the
// filename into token positions for error reporting.
func CompileFile(path string) (string, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return CompileSource(string(source), path)
}

// CompileSource compiles source text, attributing positions to the
// given filename. An empty filename is allowed.
func CompileSource(input, filename string) (string, error) {
	tokens, err := lexer.NewWithFilename(input, filename).Tokenize()
	if err != nil {
		return "", err
	}

	program, err := parser.New(tokens).Parse()
	if err != nil {
		return "", err
	}

	target, err := transform.Transform(program)
	if err != nil {
		return "", err
	}

	return codegen.Generate(target)
}
