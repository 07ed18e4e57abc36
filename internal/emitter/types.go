package emitter

import (
	"strconv"
	"strings"

	"github.com/kievzenit/lac/internal/ast"
	"github.com/kievzenit/lac/internal/lexer"
	types "github.com/kievzenit/lac/internal/types"
)

// cadeiaLength is the fixed capacity of every literal variable.
const cadeiaLength = 80

// readTemp holds a logico value while scanf reads it as an int.
const readTemp = "lac_leia"

// typeSpec is a C type name plus the decoration its declarators need.
type typeSpec struct {
	name    string
	pointer bool
	cadeia  bool
}

func (s typeSpec) declarator(name string) string {
	switch {
	case s.pointer:
		return "*" + name
	case s.cadeia:
		return name + "[" + strconv.Itoa(cadeiaLength) + "]"
	}

	return name
}

func (s typeSpec) returnType() string {
	if s.pointer || s.cadeia {
		return s.name + "*"
	}

	return s.name
}

func (s typeSpec) param(name string) string {
	return s.returnType() + " " + name
}

func (g *CodeGenerator) extendedTypeSpec(n *ast.Node) typeSpec {
	if n.Rule != ast.ExtendedType {
		return typeSpec{name: "int"}
	}

	spec := typeSpec{pointer: n.HasCaret()}

	inner := n.Children[1]
	if inner.Rule == ast.Ident {
		spec.name = inner.Token.Value
		return spec
	}

	switch inner.Token.Kind {
	case lexer.LITERAL:
		spec.name = "char"
		spec.cadeia = true
	case lexer.REAL:
		spec.name = "float"
	case lexer.LOGICO:
		spec.name = "bool"
	default:
		spec.name = "int"
	}

	return spec
}

func (g *CodeGenerator) params(n *ast.Node) string {
	params := make([]string, 0)
	for _, param := range n.Items() {
		spec := g.extendedTypeSpec(param.DeclaredType())
		for _, name := range param.DeclaredNames() {
			params = append(params, spec.param(name.Value))
		}
	}

	if len(params) == 0 {
		return "void"
	}

	return strings.Join(params, ", ")
}

// formatVerb picks the printf/scanf conversion for a resolved type.
func formatVerb(t types.Type) string {
	switch types.Returned(t).(type) {
	case *types.CadeiaType:
		return "%s"
	case *types.RealType:
		return "%f"
	}

	return "%d"
}

func isLogico(t types.Type) bool {
	_, ok := types.Returned(t).(*types.LogicoType)
	return ok
}

func isCadeia(t types.Type) bool {
	_, ok := types.Returned(t).(*types.CadeiaType)
	return ok
}

func constantValue(n *ast.Node) string {
	switch n.Token.Kind {
	case lexer.VERDADEIRO:
		return "true"
	case lexer.FALSO:
		return "false"
	}

	return n.Token.Value
}
