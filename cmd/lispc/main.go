// Package main provides the entry point for the lispc compiler, a
// source-to-source compiler from Lisp-like call expressions to C-like
// call expressions.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/kr/pretty"

	"github.com/lispc-lang/lispc/internal/cli"
	"github.com/lispc-lang/lispc/internal/compiler"
	"github.com/lispc-lang/lispc/internal/lexer"
	"github.com/lispc-lang/lispc/internal/parser"
	"github.com/lispc-lang/lispc/internal/transform"
	"github.com/lispc-lang/lispc/internal/watch"
)

func main() {
	var (
		showVersion    = flag.Bool("version", false, "show version information")
		jsonOutput     = flag.Bool("json", false, "print version information as JSON")
		showHelp       = flag.Bool("help", false, "show help information")
		outFile        = flag.String("o", "", "write output to file instead of stdout")
		debugLexer     = flag.Bool("debug-lexer", false, "print the token stream and exit")
		debugAST       = flag.Bool("debug-ast", false, "print the source and target ASTs and exit")
		watchMode      = flag.Bool("watch", false, "recompile the input file on every change")
		requireVersion = flag.String("require-version", "", "fail unless the tool version satisfies the given semver constraint")
	)

	flag.Parse()

	if *showVersion {
		cli.PrintVersion("lispc", *jsonOutput)
		return
	}

	if *showHelp {
		showUsage()
		return
	}

	if *requireVersion != "" {
		ok, err := cli.Satisfies(*requireVersion)
		if err != nil {
			cli.ExitWithError("%v", err)
		}
		if !ok {
			cli.ExitWithError("lispc v%s does not satisfy constraint %q", cli.Version, *requireVersion)
		}
	}

	args := flag.Args()

	if *watchMode {
		if len(args) == 0 {
			cli.ExitWithError("watch mode requires an input file")
		}
		runWatch(args[0], *outFile)
		return
	}

	source, filename, err := readInput(args)
	if err != nil {
		cli.ExitWithError("%v", err)
	}

	if *debugLexer {
		if err := dumpTokens(source, filename); err != nil {
			cli.ExitWithError("%v", err)
		}
		return
	}

	if *debugAST {
		if err := dumpAST(source, filename); err != nil {
			cli.ExitWithError("%v", err)
		}
		return
	}

	output, err := compiler.CompileSource(source, filename)
	if err != nil {
		cli.ExitWithError("%v", err)
	}

	if err := writeOutput(*outFile, output); err != nil {
		cli.ExitWithError("%v", err)
	}
}

func showUsage() {
	fmt.Println("lispc - Lisp call expressions in, C call expressions out")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("    lispc [OPTIONS] [INPUT_FILE]")
	fmt.Println()
	fmt.Println("Reads INPUT_FILE, or standard input when no file is given, and")
	fmt.Println("writes the generated text to standard output.")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("    --version           Show version information (--json for JSON)")
	fmt.Println("    --help              Show this help message")
	fmt.Println("    -o <file>           Write output to file instead of stdout")
	fmt.Println("    --debug-lexer       Print the token stream and exit")
	fmt.Println("    --debug-ast         Print the source and target ASTs and exit")
	fmt.Println("    --watch             Recompile the input file on every change")
	fmt.Println("    --require-version   Fail unless the tool satisfies a semver constraint")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println(`    echo '(add 2 (subtract 4 2))' | lispc`)
	fmt.Println("    lispc program.lisp -o program.c")
	fmt.Println("    lispc --watch program.lisp")
}

// readInput returns the source text and the filename it came from.
// The filename is empty when reading from standard input.
func readInput(args []string) (string, string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), "", nil
	}

	filename := args[0]
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), filename, nil
}

func writeOutput(outFile, output string) error {
	if outFile == "" {
		fmt.Println(output)
		return nil
	}
	return os.WriteFile(outFile, []byte(output+"\n"), 0o644)
}

// dumpTokens prints the token stream for lexer debugging
func dumpTokens(source, filename string) error {
	tokens, err := lexer.NewWithFilename(source, filename).Tokenize()
	if err != nil {
		return err
	}

	fmt.Println("Lexer Debug Output:")
	fmt.Println(strings.Repeat("=", 50))
	for _, tok := range tokens {
		fmt.Printf("Token: %-8s | Literal: %-20q | Position: %s\n",
			tok.Type, tok.Literal, tok.Span.Start)
	}
	fmt.Println(strings.Repeat("=", 50))
	return nil
}

// dumpAST pretty-prints the source and target trees
func dumpAST(source, filename string) error {
	program, err := parser.ParseSource(source, filename)
	if err != nil {
		return err
	}

	target, err := transform.Transform(program)
	if err != nil {
		return err
	}

	fmt.Println("Source AST:")
	pretty.Println(program)
	fmt.Println("Target AST:")
	pretty.Println(target)
	return nil
}

// runWatch compiles once, then recompiles on every write to the input
// file. Compile errors are reported but do not stop the watch loop.
func runWatch(filename, outFile string) {
	w, err := watch.New()
	if err != nil {
		cli.ExitWithError("failed to create watcher: %v", err)
	}
	defer w.Close()

	if err := w.Add(filename); err != nil {
		cli.ExitWithError("failed to watch %s: %v", filename, err)
	}

	recompile := func() {
		output, err := compiler.CompileFile(filename)
		if err != nil {
			log.Printf("compile failed: %v", err)
			return
		}
		if err := writeOutput(outFile, output); err != nil {
			log.Printf("write failed: %v", err)
		}
	}

	recompile()
	log.Printf("watching %s", filename)

	for {
		select {
		case ev := <-w.Events():
			if ev.Op&(watch.OpWrite|watch.OpCreate) != 0 {
				recompile()
			}
		case err := <-w.Errors():
			log.Printf("watch error: %v", err)
		}
	}
}
