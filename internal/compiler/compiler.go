// Package compiler runs the LA pipeline stages over one source. Each entry
// point stops at the first stage whose diagnostics are not empty.
package compiler

import (
	"fmt"
	"io"

	"github.com/kievzenit/lac/internal/ast"
	"github.com/kievzenit/lac/internal/compiler_errors"
	"github.com/kievzenit/lac/internal/emitter"
	"github.com/kievzenit/lac/internal/lexer"
	"github.com/kievzenit/lac/internal/parser"
	"github.com/kievzenit/lac/internal/semantic_analyzer"
)

// Stage runs one pipeline stage over the tokens of lex.
type Stage func(lex *lexer.Lexer, w io.Writer) error

var (
	LexStage      Stage = tokenize
	SyntaxStage   Stage = checkSyntax
	SemanticStage Stage = checkSemantics
	GenerateStage Stage = compile
)

// RunFile runs stage over the source file at path.
func RunFile(path string, w io.Writer, stage Stage) (err error) {
	lex, err := lexer.OpenLexer(path)
	if err != nil {
		return err
	}
	defer closeSource(lex, &err)

	return stage(lex, w)
}

// ParseFile builds the syntax tree of the source file at path.
func ParseFile(path string) (root *ast.Node, err error) {
	lex, err := lexer.OpenLexer(path)
	if err != nil {
		return nil, err
	}
	defer closeSource(lex, &err)

	return parse(lex)
}

// Tokenize writes the debug form of every token, one per line. A lexical
// error is written in place of its token and ends the listing.
func Tokenize(src io.Reader, w io.Writer) error {
	return tokenize(lexer.NewLexer(src), w)
}

// Parse builds the syntax tree of src. A syntax error is returned as the
// root Error node, not as an error.
func Parse(src io.Reader) (*ast.Node, error) {
	return parse(lexer.NewLexer(src))
}

// CheckSyntax reports the syntax error of src, if any, followed by the end
// of compilation trailer.
func CheckSyntax(src io.Reader, w io.Writer) error {
	return checkSyntax(lexer.NewLexer(src), w)
}

// CheckSemantics reports the syntax error of src or, for a well formed
// source, its semantic diagnostics, followed by the trailer.
func CheckSemantics(src io.Reader, w io.Writer) error {
	return checkSemantics(lexer.NewLexer(src), w)
}

// Compile writes the C translation of src. When src has a syntax error or
// semantic diagnostics those are reported instead.
func Compile(src io.Reader, w io.Writer) error {
	return compile(lexer.NewLexer(src), w)
}

func tokenize(lex *lexer.Lexer, w io.Writer) error {
	for {
		token := lex.NextToken()

		switch token.Kind {
		case lexer.EOF:
			return readError(lex)
		case lexer.ERROR:
			if _, err := fmt.Fprintln(w, lexer.NewLexerError(token).GetMessage()); err != nil {
				return fmt.Errorf("write token: %w", err)
			}
			return readError(lex)
		}

		if _, err := fmt.Fprintln(w, token.String()); err != nil {
			return fmt.Errorf("write token: %w", err)
		}
	}
}

func parse(lex *lexer.Lexer) (*ast.Node, error) {
	root := parser.NewParser(lex).Programa()

	return root, readError(lex)
}

func checkSyntax(lex *lexer.Lexer, w io.Writer) error {
	root, err := parse(lex)
	if err != nil {
		return err
	}

	eh := compiler_errors.NewErrorHandler(w)
	addSyntaxError(eh, root)

	return eh.Report()
}

func checkSemantics(lex *lexer.Lexer, w io.Writer) error {
	root, err := parse(lex)
	if err != nil {
		return err
	}

	eh := compiler_errors.NewErrorHandler(w)
	check(eh, root)

	return eh.Report()
}

func compile(lex *lexer.Lexer, w io.Writer) error {
	root, err := parse(lex)
	if err != nil {
		return err
	}

	eh := compiler_errors.NewErrorHandler(w)
	check(eh, root)
	if eh.HasErrors() {
		return eh.Report()
	}

	gen := emitter.NewCodeGenerator()
	gen.Visit(root)

	if _, err := io.WriteString(w, gen.Output()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

func check(eh compiler_errors.ErrorHandler, root *ast.Node) {
	if addSyntaxError(eh, root) {
		return
	}

	sa := semantic_analyzer.NewSemanticAnalyzer()
	sa.Traverse(root)
	for _, semanticError := range sa.Errors() {
		eh.AddError(semanticError)
	}
}

func addSyntaxError(eh compiler_errors.ErrorHandler, root *ast.Node) bool {
	if !root.IsError() {
		return false
	}

	eh.AddError(parser.NewSyntaxError(root))
	return true
}

func readError(lex *lexer.Lexer) error {
	if err := lex.Err(); err != nil {
		return fmt.Errorf("read source: %w", err)
	}

	return nil
}

func closeSource(lex *lexer.Lexer, err *error) {
	if closeErr := lex.Close(); closeErr != nil && *err == nil {
		*err = fmt.Errorf("close source: %w", closeErr)
	}
}
