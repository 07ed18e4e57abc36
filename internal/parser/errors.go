package parser

import (
	"fmt"

	"github.com/kievzenit/lac/internal/ast"
	"github.com/kievzenit/lac/internal/lexer"
)

type SyntaxError struct {
	Message string
	Line    int
}

// NewSyntaxError wraps the message of an error node.
func NewSyntaxError(node *ast.Node) *SyntaxError {
	return &SyntaxError{
		Message: node.Message,
		Line:    node.Line(),
	}
}

func (e *SyntaxError) GetMessage() string {
	return e.Message
}

// syntaxErrorMessage describes a failure at token. A lexical error token
// already carries its own diagnostic, which wins.
func syntaxErrorMessage(token lexer.Token) string {
	if token.Kind == lexer.ERROR {
		return token.Value
	}

	return fmt.Sprintf("Linha %d: erro sintatico proximo a %s", token.Line, token.Value)
}
