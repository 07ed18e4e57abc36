package semantic_analyzer

import (
	"strings"
	"testing"

	"github.com/sanity-io/litter"

	"github.com/kievzenit/lac/internal/lexer"
	"github.com/kievzenit/lac/internal/parser"
)

func analyze(t *testing.T, input string) []string {
	t.Helper()

	root := parser.NewParser(lexer.NewLexer(strings.NewReader(input))).Programa()
	if root.IsError() {
		t.Fatalf("unexpected syntax error: %s", root.Message)
	}

	sa := NewSemanticAnalyzer()
	sa.Traverse(root)

	return sa.GetErrors()
}

func checkErrors(t *testing.T, input string, expected ...string) {
	t.Helper()

	got := analyze(t, input)
	if len(got) != len(expected) {
		t.Fatalf("expected %d errors, got %d:\n%s", len(expected), len(got), litter.Sdump(got))
	}

	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("error %d: expected %q, got %q", i, expected[i], got[i])
		}
	}
}

func TestWellTypedProgram(t *testing.T) {
	checkErrors(t, `
tipo ponto: registro
	x, y: real
fim_registro
funcao soma(a, b: inteiro): inteiro
	retorne a + b
fim_funcao
procedimento mostra(p: ponto)
	escreva(p.x, " ", p.y)
fim_procedimento
algoritmo
	declare i, v[3]: inteiro
	declare r: real
	declare nome: literal
	declare pt: ponto
	declare ptr: ^inteiro
	leia(nome, i)
	r <- i * 2.5
	i <- r
	v[0] <- soma(i, 2)
	pt.x <- r
	ptr <- &i
	^ptr <- 3
	mostra(pt)
	para i <- 1 ate 3 faca
		escreva(v[i])
	fim_para
	se nome = "fim" entao
		escreva("tchau")
	fim_se
fim_algoritmo`)
}

func TestUndeclaredIdentifiers(t *testing.T) {
	checkErrors(t, `
algoritmo
	declare x: inteiro
	y <- 1
	escreva(z)
	para k <- 1 ate 2 faca
	fim_para
fim_algoritmo`,
		"Linha 4: identificador y nao declarado",
		"Linha 5: identificador z nao declarado",
		"Linha 6: identificador k nao declarado",
	)
}

func TestUndeclaredRecordField(t *testing.T) {
	checkErrors(t, `
algoritmo
	declare p: registro
		nome: literal
	fim_registro
	p.idade <- 3
fim_algoritmo`,
		"Linha 6: identificador p.idade nao declarado",
	)
}

func TestDuplicateDeclarations(t *testing.T) {
	checkErrors(t, `
declare x: inteiro
constante x: real = 1.5
algoritmo
	declare a, a: literal
fim_algoritmo`,
		"Linha 3: identificador x ja declarado anteriormente",
		"Linha 5: identificador a ja declarado anteriormente",
	)
}

func TestUndeclaredType(t *testing.T) {
	checkErrors(t, `
algoritmo
	declare p: pessoa
fim_algoritmo`,
		"Linha 3: tipo pessoa nao declarado",
	)
}

func TestIncompatibleAssignment(t *testing.T) {
	checkErrors(t, `
algoritmo
	declare x: inteiro
	declare s: literal
	declare b: logico
	declare p: ^inteiro
	x <- "texto"
	s <- 1
	b <- x > 1
	b <- 2
	^p <- "a"
	p <- &s
	x <- 1.5
fim_algoritmo`,
		"Linha 7: atribuicao nao compativel para x",
		"Linha 8: atribuicao nao compativel para s",
		"Linha 10: atribuicao nao compativel para b",
		"Linha 11: atribuicao nao compativel para ^p",
		"Linha 12: atribuicao nao compativel para p",
	)
}

func TestReturnOutsideFunction(t *testing.T) {
	checkErrors(t, `
procedimento p()
	retorne 1
fim_procedimento
funcao f(): inteiro
	retorne 1
fim_funcao
algoritmo
	retorne 0
fim_algoritmo`,
		"Linha 3: comando retorne nao permitido nesse escopo",
		"Linha 9: comando retorne nao permitido nesse escopo",
	)
}

func TestCallParameterMismatch(t *testing.T) {
	checkErrors(t, `
funcao dobro(n: inteiro): inteiro
	retorne n * 2
fim_funcao
procedimento mostra(s: literal, r: real)
fim_procedimento
algoritmo
	declare x: inteiro
	x <- dobro("a")
	x <- dobro(1, 2)
	mostra("a", 1)
	mostra("a", 1.5)
	x <- dobro(dobro(2))
fim_algoritmo`,
		"Linha 9: incompatibilidade de parametros na chamada de dobro",
		"Linha 10: incompatibilidade de parametros na chamada de dobro",
		"Linha 11: incompatibilidade de parametros na chamada de mostra",
	)
}

func TestCallToUndeclared(t *testing.T) {
	checkErrors(t, `
algoritmo
	nada(1)
fim_algoritmo`,
		"Linha 3: identificador nada nao declarado",
	)
}

func TestErrorsKeepVisitOrder(t *testing.T) {
	checkErrors(t, `
algoritmo
	declare x: inteiro
	a <- 1
	x <- "s"
	b <- 2
fim_algoritmo`,
		"Linha 4: identificador a nao declarado",
		"Linha 5: atribuicao nao compativel para x",
		"Linha 6: identificador b nao declarado",
	)
}

func TestErrorsCarryLines(t *testing.T) {
	root := parser.NewParser(lexer.NewLexer(strings.NewReader("algoritmo\n\n y <- 1\nfim_algoritmo"))).Programa()

	sa := NewSemanticAnalyzer()
	sa.Traverse(root)

	errors := sa.Errors()
	if len(errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errors))
	}
	if msg := errors[0].GetMessage(); msg != "Linha 3: identificador y nao declarado" {
		t.Fatalf("expected the error on line 3, got %q", msg)
	}
}
