package emitter

import (
	"strings"

	"github.com/kievzenit/lac/internal/ast"
	types "github.com/kievzenit/lac/internal/types"
)

func (g *CodeGenerator) emitForCommands(n *ast.Node) {
	for _, cmd := range n.Items() {
		g.emitForCommand(cmd)
	}
}

func (g *CodeGenerator) emitForCommand(n *ast.Node) {
	switch n.Rule {
	case ast.ReadCmd:
		g.emitForRead(n)
	case ast.WriteCmd:
		g.emitForWrite(n)
	case ast.IfCmd:
		g.emitForIf(n)
	case ast.CaseCmd:
		g.emitForCase(n)
	case ast.ForCmd:
		g.emitForFor(n)
	case ast.WhileCmd:
		g.f.Format("while (%s) {%i\n", g.expr(n.Children[0]))
		g.emitForCommands(n.Children[1])
		g.f.Format("%u}\n")
	case ast.DoCmd:
		g.f.Format("do {%i\n")
		g.emitForCommands(n.Children[0])
		g.f.Format("%u} while (%s);\n", g.expr(n.Children[1]))
	case ast.AssignCmd:
		g.emitForAssign(n)
	case ast.CallCmd:
		g.f.Format("%s;\n", g.call(n))
	case ast.ReturnCmd:
		g.f.Format("return %s;\n", g.expr(n.Children[0]))
	}
}

// emitForRead writes one scanf per target. Literals and '^' targets are
// already addresses. A logico is read through an int, scanf has no bool
// conversion.
func (g *CodeGenerator) emitForRead(n *ast.Node) {
	for _, target := range n.ReadTargets() {
		identifier := target.Children[1]
		t := identifier.Type(g.scopes())
		if target.HasCaret() {
			t = types.Deref(t)
		}

		if isLogico(t) {
			lvalue := g.identifier(identifier)
			if target.HasCaret() {
				lvalue = "*" + lvalue
			}

			g.f.Format("{%i\n")
			g.f.Format("int %s;\n", readTemp)
			g.f.Format("scanf(\"%s\", &%s);\n", "%d", readTemp)
			g.f.Format("%s = %s != 0;\n", lvalue, readTemp)
			g.f.Format("%u}\n")
			continue
		}

		arg := g.identifier(identifier)
		if !target.HasCaret() && !isCadeia(t) {
			arg = "&" + arg
		}

		g.f.Format("scanf(\"%s\", %s);\n", formatVerb(t), arg)
	}
}

func (g *CodeGenerator) emitForWrite(n *ast.Node) {
	exprs := append([]*ast.Node{n.Children[0]}, n.Children[1].Items()...)

	var format strings.Builder
	args := make([]string, len(exprs))
	for i, e := range exprs {
		format.WriteString(formatVerb(e.Type(g.scopes())))
		args[i] = g.expr(e)
	}

	g.f.Format("printf(\"%s\", %s);\n", format.String(), strings.Join(args, ", "))
}

func (g *CodeGenerator) emitForIf(n *ast.Node) {
	g.f.Format("if (%s) {%i\n", g.expr(n.Children[0]))
	g.emitForCommands(n.Children[1])

	if elseNode := n.Children[2]; !elseNode.IsEmpty() {
		g.f.Format("%u} else {%i\n")
		g.emitForCommands(elseNode.Children[0])
	}

	g.f.Format("%u}\n")
}

// emitForCase expands every label range into one case per integer.
func (g *CodeGenerator) emitForCase(n *ast.Node) {
	g.f.Format("switch (%s) {%i\n", g.expr(n.Children[0]))

	for _, item := range n.Children[1].Items() {
		for _, label := range item.Children[0].Items() {
			g.emitForCaseLabel(label)
		}

		g.f.Format("%i")
		g.emitForCommands(item.Children[1])
		g.f.Format("break;\n%u")
	}

	if elseNode := n.Children[2]; !elseNode.IsEmpty() {
		g.f.Format("default:%i\n")
		g.emitForCommands(elseNode.Children[0])
		g.f.Format("break;\n%u")
	}

	g.f.Format("%u}\n")
}

// emitForCaseLabel writes one case per integer of a label range. Bounds
// that do not fit an int are written as they were lexed, a range of them
// as a GNU case range.
func (g *CodeGenerator) emitForCaseLabel(label *ast.Node) {
	lo, hi, ok := label.Range()
	if !ok {
		first := label.Children[0].Text() + label.Children[1].Text()
		if end := label.Children[2]; !end.IsEmpty() {
			g.f.Format("case %s ... %s:\n", first, end.Text())
			return
		}

		g.f.Format("case %s:\n", first)
		return
	}

	if lo > hi {
		return
	}

	for i := lo; ; i++ {
		g.f.Format("case %d:\n", i)
		if i == hi {
			break
		}
	}
}

func (g *CodeGenerator) emitForFor(n *ast.Node) {
	counter := n.Children[0].Token.Value
	g.f.Format(
		"for (%s = %s; %s <= %s; %s++) {%i\n",
		counter, g.expr(n.Children[1]), counter, g.expr(n.Children[2]), counter,
	)
	g.emitForCommands(n.Children[3])
	g.f.Format("%u}\n")
}

// emitForAssign copies literals with strcpy and writes through '^' targets.
func (g *CodeGenerator) emitForAssign(n *ast.Node) {
	identifier := n.Children[1]
	t := identifier.Type(g.scopes())
	target := g.identifier(identifier)
	if n.HasCaret() {
		t = types.Deref(t)
		if !isCadeia(t) {
			target = "*" + target
		}
	}

	value := g.expr(n.Children[2])
	if isCadeia(t) {
		g.f.Format("strcpy(%s, %s);\n", target, value)
		return
	}

	g.f.Format("%s = %s;\n", target, value)
}
