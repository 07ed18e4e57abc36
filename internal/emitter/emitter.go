package emitter

import (
	"bytes"

	"modernc.org/strutil"

	"github.com/kievzenit/lac/internal/ast"
	"github.com/kievzenit/lac/internal/binder"
	"github.com/kievzenit/lac/internal/scope"
)

// CodeGenerator renders a checked syntax tree as C. It keeps its own scope
// stack, driven by the same transitions as the semantic analyzer, so every
// construct can be emitted by its resolved type.
type CodeGenerator struct {
	binder *binder.Binder

	buf bytes.Buffer
	f   strutil.Formatter
}

func NewCodeGenerator() *CodeGenerator {
	g := &CodeGenerator{
		binder: binder.NewBinder(nil),
	}
	g.f = strutil.IndentFormatter(&g.buf, "\t")

	return g
}

func (g *CodeGenerator) Output() string {
	return g.buf.String()
}

func (g *CodeGenerator) scopes() *scope.Stack {
	return g.binder.Stack()
}

// Visit emits root, which should be a Program.
func (g *CodeGenerator) Visit(root *ast.Node) {
	switch root.Rule {
	case ast.Program:
		g.emitForProgram(root)
	case ast.Error, ast.Empty:
	default:
		g.emitForDeclaration(root)
	}
}

func (g *CodeGenerator) emitForProgram(n *ast.Node) {
	g.f.Format("#include <stdio.h>\n")
	g.f.Format("#include <stdlib.h>\n")
	g.f.Format("#include <string.h>\n")
	g.f.Format("#include <stdbool.h>\n")
	g.f.Format("\n")

	for _, decl := range n.Children[0].Items() {
		g.emitForDeclaration(decl)
	}

	body := n.Children[1]
	g.f.Format("int main(void) {%i\n")
	g.emitForBody(body.Children[0], body.Children[1])
	g.f.Format("return 0;\n")
	g.f.Format("%u}\n")
}

func (g *CodeGenerator) emitForBody(decls, cmds *ast.Node) {
	for _, decl := range decls.Items() {
		g.emitForDeclaration(decl)
	}

	g.emitForCommands(cmds)
}

func (g *CodeGenerator) emitForDeclaration(n *ast.Node) {
	switch n.Rule {
	case ast.VariableDecl:
		g.binder.Bind(n)
		g.emitForVariable(n.Children[0])
	case ast.TypeDecl:
		g.binder.Bind(n)
		g.emitForTypeDecl(n)
	case ast.ConstantDecl:
		g.binder.Bind(n)
		g.f.Format("#define %s %s\n", n.Children[0].Token.Value, constantValue(n.Children[2]))
	case ast.ProcedureDecl, ast.FunctionDecl:
		g.emitForSubroutine(n)
	}
}

// emitForVariable writes one C declaration for every name of a Variable.
func (g *CodeGenerator) emitForVariable(v *ast.Node) {
	spec := g.emitForTypeSpec(v.DeclaredType())

	for i, declarator := range v.Declarators() {
		if i > 0 {
			g.f.Format(", ")
		}
		g.f.Format("%s", spec.declarator(g.identifier(declarator)))
	}

	g.f.Format(";\n")
}

func (g *CodeGenerator) emitForTypeDecl(n *ast.Node) {
	g.f.Format("typedef ")
	spec := g.emitForTypeSpec(n.Children[1])
	g.f.Format("%s;\n", spec.declarator(n.Children[0].Token.Value))
}

// emitForTypeSpec writes the type part of a declaration, records as an
// inline struct, and returns how declarators are decorated.
func (g *CodeGenerator) emitForTypeSpec(typeNode *ast.Node) typeSpec {
	if typeNode.Rule == ast.Record {
		g.f.Format("struct {%i\n")
		for _, field := range typeNode.Children[0].Items() {
			g.emitForVariable(field)
		}
		g.f.Format("%u} ")

		return typeSpec{}
	}

	spec := g.extendedTypeSpec(typeNode)
	g.f.Format("%s ", spec.name)

	return spec
}

func (g *CodeGenerator) emitForSubroutine(n *ast.Node) {
	name := n.Children[0].Token.Value
	params := g.params(n.Children[1])

	if n.Rule == ast.FunctionDecl {
		g.f.Format("%s %s(%s) {%i\n", g.extendedTypeSpec(n.Children[2]).returnType(), name, params)
	} else {
		g.f.Format("void %s(%s) {%i\n", name, params)
	}

	g.binder.Bind(n)

	last := len(n.Children) - 1
	g.emitForBody(n.Children[last-2], n.Children[last-1])
	g.binder.Bind(n.Children[last])

	g.f.Format("%u}\n\n")
}
