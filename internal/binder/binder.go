// Package binder holds the scope transitions shared by every pass over the
// syntax tree: which nodes declare names, which open a scope and which close
// one.
package binder

import (
	"github.com/kievzenit/lac/internal/ast"
	"github.com/kievzenit/lac/internal/lexer"
	"github.com/kievzenit/lac/internal/scope"
	types "github.com/kievzenit/lac/internal/types"
)

// DuplicateFunc is called with the token of a name already declared in the
// scope it is being declared in again.
type DuplicateFunc func(name lexer.Token)

type Binder struct {
	stack       *scope.Stack
	onDuplicate DuplicateFunc
}

// NewBinder returns a binder over a fresh stack whose global scope does not
// allow retorne. onDuplicate may be nil.
func NewBinder(onDuplicate DuplicateFunc) *Binder {
	return &Binder{
		stack:       scope.NewStack(types.Vazio),
		onDuplicate: onDuplicate,
	}
}

func (b *Binder) Stack() *scope.Stack {
	return b.stack
}

// Bind applies the scope transition of n, if it has one.
func (b *Binder) Bind(n *ast.Node) {
	switch n.Rule {
	case ast.VariableDecl:
		b.DeclareVariable(n.Children[0])
	case ast.TypeDecl:
		b.DeclareType(n)
	case ast.ConstantDecl:
		b.DeclareConstant(n)
	case ast.ProcedureDecl, ast.FunctionDecl:
		b.EnterSubroutine(n)
	case ast.Record:
		b.EnterRecord(n)
	case ast.CloseScope:
		b.stack.Pop()
	}
}

func (b *Binder) duplicate(name lexer.Token) {
	if b.onDuplicate != nil {
		b.onDuplicate(name)
	}
}

// DeclareVariable inserts every name of a Variable into the current scope.
// Record variables also get a "name.field" entry per field.
func (b *Binder) DeclareVariable(variable *ast.Node) {
	t := variable.Type(b.stack.Snapshot())

	current := b.stack.Current()
	for _, name := range variable.DeclaredNames() {
		if current.Exists(name.Value) {
			b.duplicate(name)
			continue
		}

		current.Insert(name.Value, t)
		insertFields(current, name.Value, t)
	}
}

func (b *Binder) DeclareType(decl *ast.Node) {
	b.declareNamed(decl.Children[0].Token, decl.Type(b.stack.Snapshot()))
}

func (b *Binder) DeclareConstant(decl *ast.Node) {
	b.declareNamed(decl.Children[0].Token, decl.Type(b.stack.Snapshot()))
}

func (b *Binder) declareNamed(name lexer.Token, t types.Type) {
	current := b.stack.Current()
	if current.Exists(name.Value) {
		b.duplicate(name)
		return
	}

	current.Insert(name.Value, t)
}

// EnterSubroutine declares a procedure or function in the enclosing scope
// and opens its body scope holding the parameters. The body scope is opened
// even for a duplicate name so its CloseScope stays balanced.
func (b *Binder) EnterSubroutine(decl *ast.Node) {
	snapshot := b.stack.Snapshot()
	signature := decl.Type(snapshot)

	name := decl.Children[0].Token
	if b.stack.Current().Exists(name.Value) {
		b.duplicate(name)
	} else {
		b.stack.Insert(name.Value, signature)
	}

	returnType := types.Vazio
	if funcao, ok := signature.(*types.FuncaoType); ok {
		returnType = funcao.Return
	}
	b.stack.Push(returnType)

	current := b.stack.Current()
	for _, param := range decl.Params(snapshot) {
		current.Insert(param.Name, param.Type)
		insertFields(current, param.Name, param.Type)
	}
}

// EnterRecord opens the scope of a record body with its bare field names.
func (b *Binder) EnterRecord(record *ast.Node) {
	fields := record.Fields(b.stack.Snapshot())

	b.stack.Push(types.Vazio)
	current := b.stack.Current()
	for _, field := range fields {
		current.Insert(field.Name, field.Type)
	}
}

func insertFields(table *scope.Table, base string, t types.Type) {
	registro, ok := t.(*types.RegistroType)
	if !ok {
		return
	}

	for _, field := range registro.Fields {
		name := base + "." + field.Name
		table.Insert(name, field.Type)
		insertFields(table, name, field.Type)
	}
}
