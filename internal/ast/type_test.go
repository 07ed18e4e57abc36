package ast_test

import (
	"strings"
	"testing"

	"github.com/kievzenit/lac/internal/ast"
	"github.com/kievzenit/lac/internal/lexer"
	"github.com/kievzenit/lac/internal/parser"
	"github.com/kievzenit/lac/internal/scope"
	types "github.com/kievzenit/lac/internal/types"
)

func parse(t *testing.T, input string) *ast.Node {
	t.Helper()

	root := parser.NewParser(lexer.NewLexer(strings.NewReader(input))).Programa()
	if root.IsError() {
		t.Fatalf("unexpected syntax error: %s", root.Message)
	}

	return root
}

func assignedExpr(t *testing.T, expr string) *ast.Node {
	t.Helper()

	root := parse(t, "algoritmo\n x <- "+expr+"\nfim_algoritmo")
	return root.Children[1].Children[1].Items()[0].Children[2]
}

func testScope() *scope.Stack {
	s := scope.NewStack(types.Vazio)
	s.Insert("i", types.Inteiro)
	s.Insert("r", types.Real)
	s.Insert("s", types.Cadeia)
	s.Insert("b", types.Logico)
	s.Insert("p", types.NewPonteiro(types.Inteiro))
	s.Insert("f", types.NewFuncao([]types.Field{{Name: "a", Type: types.Inteiro}}, types.Real))

	return s
}

func TestExpressionTypes(t *testing.T) {
	tests := []struct {
		expr     string
		expected types.Type
	}{
		{"1", types.Inteiro},
		{"1 + 2.5", types.Real},
		{"i * r", types.Real},
		{"i % 2", types.Inteiro},
		{"(i + 1) * 2", types.Inteiro},
		{"-r", types.Real},
		{"s", types.Cadeia},
		{`"ola"`, types.Cadeia},
		{"verdadeiro", types.Logico},
		{"nao b", types.Logico},
		{"i > 1", types.Logico},
		{"i > 1 e b", types.Logico},
		{"b ou falso", types.Logico},
		{`s = "x"`, types.Logico},
		{"s + i", types.Invalido},
		{`s = 1`, types.Invalido},
		{"^p", types.Inteiro},
		{"p", types.NewPonteiro(types.Inteiro)},
		{"&i", types.NewPonteiro(types.Inteiro)},
		{"f(1) + 1", types.Real},
		{"nada", types.Invalido},
	}

	s := testScope()
	for _, tt := range tests {
		got := assignedExpr(t, tt.expr).Type(s)
		if !got.SameAs(tt.expected) {
			t.Errorf("%s: expected %s, got %s", tt.expr, tt.expected.Type(), got.Type())
		}
	}
}

func TestDeclarationTypes(t *testing.T) {
	root := parse(t, `
constante LIMITE: inteiro = 10
tipo pessoa: registro
	nome: literal
	idade, altura: real
fim_registro
procedimento mostra(a, b: inteiro, var c: literal)
fim_procedimento
funcao ponto(x: real): ^real
fim_funcao
algoritmo
fim_algoritmo`)

	decls := root.Children[0].Items()
	s := scope.NewStack(types.Vazio)

	if got := decls[0].Type(s); !got.SameAs(types.Inteiro) {
		t.Errorf("constant: expected inteiro, got %s", got.Type())
	}

	registro, ok := decls[1].Type(s).(*types.RegistroType)
	if !ok {
		t.Fatalf("type declaration: expected a record, got %s", decls[1].Type(s).Type())
	}
	if len(registro.Fields) != 3 || registro.Fields[2].Name != "altura" || !registro.Fields[2].SameAs(types.Real) {
		t.Errorf("expected fields nome, idade, altura, got %s", registro.Type())
	}

	params, ok := types.Signature(decls[2].Type(s))
	if !ok || len(params) != 3 {
		t.Fatalf("procedure: expected 3 parameters, got %v", params)
	}
	if params[1].Name != "b" || !params[2].SameAs(types.Cadeia) {
		t.Errorf("procedure: unexpected parameters %s", decls[2].Type(s).Type())
	}

	funcao, ok := decls[3].Type(s).(*types.FuncaoType)
	if !ok {
		t.Fatalf("function: expected a function type")
	}
	if !funcao.Return.SameAs(types.NewPonteiro(types.Real)) {
		t.Errorf("function: expected return ^real, got %s", funcao.Return.Type())
	}
}

func TestNodeLineAndText(t *testing.T) {
	root := parse(t, "algoritmo\n\n  ^p.campo[i + 1] <- &x\nfim_algoritmo")

	assign := root.Children[1].Children[1].Items()[0]
	if line := assign.Line(); line != 3 {
		t.Errorf("expected line 3, got %d", line)
	}

	target := assign.Children[1]
	if got := target.DottedName(); got != "p.campo" {
		t.Errorf("expected dotted name p.campo, got %s", got)
	}
	if got := target.Text(); got != "p.campo[i+1]" {
		t.Errorf("expected text p.campo[i+1], got %s", got)
	}
	if got := assign.Children[2].Text(); got != "&x" {
		t.Errorf("expected text &x, got %s", got)
	}
}

func TestEmptyNodeHasNoLine(t *testing.T) {
	if line := ast.NewEmpty().Line(); line != 0 {
		t.Fatalf("expected line 0, got %d", line)
	}
	if items := ast.NewEmpty().Items(); len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
}

func TestWalkVisitsPreOrder(t *testing.T) {
	root := parse(t, "algoritmo\n x <- 1\nfim_algoritmo")

	var rules []ast.Rule
	root.Walk(func(n *ast.Node) {
		if !n.IsEmpty() {
			rules = append(rules, n.Rule)
		}
	})

	if len(rules) < 3 || rules[0] != ast.Program || rules[1] != ast.Body || rules[2] != ast.Commands {
		t.Fatalf("unexpected walk order %v", rules)
	}
}
