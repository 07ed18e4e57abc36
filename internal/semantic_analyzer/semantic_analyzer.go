package semantic_analyzer

import (
	"fmt"

	"github.com/kievzenit/lac/internal/ast"
	"github.com/kievzenit/lac/internal/binder"
	"github.com/kievzenit/lac/internal/lexer"
	"github.com/kievzenit/lac/internal/scope"
	types "github.com/kievzenit/lac/internal/types"
)

type SemanticError struct {
	message string
	line    int
}

func (e *SemanticError) GetMessage() string {
	return fmt.Sprintf("Linha %d: %s", e.line, e.message)
}

func newSemanticError(line int, message string) *SemanticError {
	return &SemanticError{
		message: message,
		line:    line,
	}
}

// SemanticAnalyzer checks a syntax tree in pre-order. Diagnostics never stop
// the walk.
type SemanticAnalyzer struct {
	binder *binder.Binder
	errors []*SemanticError
}

func NewSemanticAnalyzer() *SemanticAnalyzer {
	sa := &SemanticAnalyzer{
		errors: make([]*SemanticError, 0),
	}
	sa.binder = binder.NewBinder(func(name lexer.Token) {
		sa.addError(name.Line, "identificador %s ja declarado anteriormente", name.Value)
	})

	return sa
}

func (sa *SemanticAnalyzer) addError(line int, format string, args ...any) {
	sa.errors = append(sa.errors, newSemanticError(line, fmt.Sprintf(format, args...)))
}

func (sa *SemanticAnalyzer) scopes() *scope.Stack {
	return sa.binder.Stack()
}

// Traverse visits n and then each of its children.
func (sa *SemanticAnalyzer) Traverse(n *ast.Node) {
	n.Walk(sa.visit)
}

// Errors returns the diagnostics in visit order.
func (sa *SemanticAnalyzer) Errors() []*SemanticError {
	return sa.errors
}

// GetErrors returns the diagnostic messages in visit order.
func (sa *SemanticAnalyzer) GetErrors() []string {
	messages := make([]string, len(sa.errors))
	for i, err := range sa.errors {
		messages[i] = err.GetMessage()
	}

	return messages
}

func (sa *SemanticAnalyzer) visit(n *ast.Node) {
	switch n.Rule {
	case ast.Identifier:
		sa.checkDeclared(n.Children[0].Token.Line, n.DottedName())
	case ast.ForCmd:
		ident := n.Children[0].Token
		sa.checkDeclared(ident.Line, ident.Value)
	case ast.ExtendedType:
		sa.checkNamedType(n.Children[1])
	case ast.AssignCmd:
		sa.checkAssignment(n)
	case ast.ReturnCmd:
		if types.IsVazio(sa.scopes().Current().ReturnType) {
			sa.addError(n.Line(), "comando retorne nao permitido nesse escopo")
		}
	case ast.CallCmd, ast.CallParcel:
		sa.checkCall(n)
	}

	sa.binder.Bind(n)
}

func (sa *SemanticAnalyzer) checkDeclared(line int, name string) {
	if !sa.scopes().Exists(name) {
		sa.addError(line, "identificador %s nao declarado", name)
	}
}

func (sa *SemanticAnalyzer) checkNamedType(n *ast.Node) {
	if n.Rule != ast.Ident {
		return
	}

	if !sa.scopes().Exists(n.Token.Value) {
		sa.addError(n.Token.Line, "tipo %s nao declarado", n.Token.Value)
	}
}

// checkAssignment compares the target, or its pointee through '^', with
// the assigned expression. Numeric types mix freely and an unresolved
// target has already been reported.
func (sa *SemanticAnalyzer) checkAssignment(n *ast.Node) {
	target := n.Children[1].Type(sa.scopes())
	if n.HasCaret() {
		target = types.Deref(target)
	}
	value := n.Children[2].Type(sa.scopes())

	if !types.Compatible(value, target) && !types.IsInvalido(target) {
		name := n.Children[0].Text() + n.Children[1].Text()
		sa.addError(n.Line(), "atribuicao nao compativel para %s", name)
	}
}

// checkCall reports the first argument mismatch of a call, if any.
func (sa *SemanticAnalyzer) checkCall(n *ast.Node) {
	callee := n.Children[0].Token
	t, ok := sa.scopes().Resolve(callee.Value)
	if !ok {
		sa.addError(callee.Line, "identificador %s nao declarado", callee.Value)
		return
	}

	params, ok := types.Signature(t)
	if !ok {
		return
	}

	args := n.Args()
	if len(args) != len(params) {
		sa.addError(n.Line(), "incompatibilidade de parametros na chamada de %s", callee.Value)
		return
	}

	for i, arg := range args {
		if !types.Returned(arg.Type(sa.scopes())).SameAs(params[i].Type) {
			sa.addError(n.Line(), "incompatibilidade de parametros na chamada de %s", callee.Value)
			return
		}
	}
}
