package emitter

import (
	"strings"

	"github.com/kievzenit/lac/internal/ast"
	"github.com/kievzenit/lac/internal/lexer"
)

var relationalOperators = map[lexer.TokenKind]string{
	lexer.EQ:  "==",
	lexer.NEQ: "!=",
	lexer.LT:  "<",
	lexer.LEQ: "<=",
	lexer.GT:  ">",
	lexer.GEQ: ">=",
}

// expr renders an expression subtree as a single line of C.
func (g *CodeGenerator) expr(n *ast.Node) string {
	switch n.Rule {
	case ast.Empty:
		return ""

	case ast.Expr, ast.LogicTerm, ast.ArithExpr, ast.Term, ast.Factor:
		return g.expr(n.Children[0]) + g.expr(n.Children[1])
	case ast.LogicTerms, ast.LogicFactors, ast.Terms, ast.Factors, ast.Parcels:
		return " " + g.operator(n.Children[0]) + " " + g.expr(n.Children[1]) + g.expr(n.Children[2])

	case ast.LogicFactor:
		operand := g.expr(n.Children[1])
		if n.Children[0].Rule == ast.Not {
			return "!(" + operand + ")"
		}
		return operand
	case ast.RelExpr:
		return g.relational(n)

	case ast.Parcel:
		if n.Children[0].Rule == ast.UnaryMinus {
			return "-" + g.expr(n.Children[1])
		}
		return g.expr(n.Children[1])
	case ast.VarParcel:
		if n.HasCaret() {
			return "*" + g.identifier(n.Children[1])
		}
		return g.identifier(n.Children[1])
	case ast.CallParcel:
		return g.call(n)
	case ast.ParenParcel:
		return "(" + g.expr(n.Children[0]) + ")"
	case ast.AddressOf:
		return "&" + g.identifier(n.Children[0])
	case ast.Identifier:
		return g.identifier(n)

	case ast.LogicConst, ast.ConstantValue:
		return constantValue(n)
	}

	return n.Text()
}

func (g *CodeGenerator) operator(n *ast.Node) string {
	switch n.Rule {
	case ast.OpOr:
		return "||"
	case ast.OpAnd:
		return "&&"
	case ast.OpRel:
		return relationalOperators[n.Token.Kind]
	}

	return n.Token.Value
}

// relational compares literals through strcmp, everything else with the C
// operator.
func (g *CodeGenerator) relational(n *ast.Node) string {
	left := g.expr(n.Children[0])
	tail := n.Children[1]
	if tail.IsEmpty() {
		return left
	}

	op := g.operator(tail.Children[0])
	right := g.expr(tail.Children[1])

	if isCadeia(n.Children[0].Type(g.scopes())) && isCadeia(tail.Children[1].Type(g.scopes())) {
		return "strcmp(" + left + ", " + right + ") " + op + " 0"
	}

	return left + " " + op + " " + right
}

func (g *CodeGenerator) call(n *ast.Node) string {
	args := n.Args()
	rendered := make([]string, len(args))
	for i, arg := range args {
		rendered[i] = g.expr(arg)
	}

	return n.Callee() + "(" + strings.Join(rendered, ", ") + ")"
}

// identifier renders an Identifier with its member accesses and
// dimensions.
func (g *CodeGenerator) identifier(n *ast.Node) string {
	if n.Rule != ast.Identifier {
		return n.Text()
	}

	var sb strings.Builder
	sb.WriteString(n.DottedName())
	for dim := n.Children[2]; dim.Rule == ast.Dimension; dim = dim.Children[1] {
		sb.WriteString("[" + g.expr(dim.Children[0]) + "]")
	}

	return sb.String()
}
