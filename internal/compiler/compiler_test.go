package compiler

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, input string, stage func(io.Reader, io.Writer) error) string {
	t.Helper()

	var out bytes.Buffer
	if err := stage(strings.NewReader(input), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return out.String()
}

func TestTokenize(t *testing.T) {
	got := run(t, "algoritmo\n x <- 1.5 { comentario }\n escreva(\"oi\")", Tokenize)

	expected := strings.Join([]string{
		"<'algoritmo','algoritmo'>",
		"<'x',IDENT>",
		"<'<-','<-'>",
		"<'1.5',NUM_REAL>",
		"<'escreva','escreva'>",
		"<'(','('>",
		`<'"oi"',CADEIA>`,
		"<')',')'>",
	}, "\n") + "\n"

	if got != expected {
		t.Fatalf("expected:\n%s\ngot:\n%s", expected, got)
	}
}

func TestTokenizeStopsAtLexicalError(t *testing.T) {
	got := run(t, "algoritmo $ x", Tokenize)

	expected := "<'algoritmo','algoritmo'>\nLinha 1: $ - simbolo nao identificado\n"
	if got != expected {
		t.Fatalf("expected:\n%s\ngot:\n%s", expected, got)
	}
}

func TestCheckSyntax(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"algoritmo\nfim_algoritmo", "Fim da compilacao\n"},
		{"algoritmo\n declare x inteiro\nfim_algoritmo", "Linha 2: erro sintatico proximo a inteiro\nFim da compilacao\n"},
		{"algoritmo\n x <- \"aberta\nfim_algoritmo", "Linha 2: cadeia literal nao fechada\nFim da compilacao\n"},
	}

	for _, tt := range tests {
		if got := run(t, tt.input, CheckSyntax); got != tt.expected {
			t.Errorf("input %q: expected %q, got %q", tt.input, tt.expected, got)
		}
	}
}

func TestCheckSemantics(t *testing.T) {
	got := run(t, `algoritmo
	declare x: inteiro
	declare x: real
	y <- 1
	x <- "a"
fim_algoritmo`, CheckSemantics)

	expected := "Linha 3: identificador x ja declarado anteriormente\n" +
		"Linha 4: identificador y nao declarado\n" +
		"Linha 5: atribuicao nao compativel para x\n" +
		"Fim da compilacao\n"
	if got != expected {
		t.Fatalf("expected:\n%s\ngot:\n%s", expected, got)
	}
}

func TestCheckSemanticsReportsSyntaxFirst(t *testing.T) {
	got := run(t, "algoritmo\n y <- 1\n se\nfim_algoritmo", CheckSemantics)

	expected := "Linha 4: erro sintatico proximo a fim_algoritmo\nFim da compilacao\n"
	if got != expected {
		t.Fatalf("expected:\n%s\ngot:\n%s", expected, got)
	}
}

func TestCompile(t *testing.T) {
	got := run(t, `algoritmo
	declare x: inteiro
	leia(x)
	escreva(x * 2)
fim_algoritmo`, Compile)

	expected := "#include <stdio.h>\n" +
		"#include <stdlib.h>\n" +
		"#include <string.h>\n" +
		"#include <stdbool.h>\n" +
		"\n" +
		"int main(void) {\n" +
		"\tint x;\n" +
		"\tscanf(\"%d\", &x);\n" +
		"\tprintf(\"%d\", x * 2);\n" +
		"\treturn 0;\n" +
		"}\n"
	if got != expected {
		t.Fatalf("expected:\n%s\ngot:\n%s", expected, got)
	}
}

func TestCompileSkipsGenerationOnErrors(t *testing.T) {
	got := run(t, "algoritmo\n escreva(z)\nfim_algoritmo", Compile)

	expected := "Linha 2: identificador z nao declarado\nFim da compilacao\n"
	if got != expected {
		t.Fatalf("expected:\n%s\ngot:\n%s", expected, got)
	}
}

func TestParseReturnsErrorNode(t *testing.T) {
	root, err := Parse(strings.NewReader("algoritmo"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !root.IsError() {
		t.Fatalf("expected an error node, got %s", root.Rule)
	}
}

func TestCompileFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.la")
	if err := os.WriteFile(path, []byte("algoritmo\n escreva(\"ola\")\nfim_algoritmo\n"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	var out bytes.Buffer
	if err := RunFile(path, &out, GenerateStage); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "\tprintf(\"%s\", \"ola\");\n") {
		t.Fatalf("expected a printf of the literal, got:\n%s", out.String())
	}
}

func TestRunFileMissingSource(t *testing.T) {
	var out bytes.Buffer
	if err := RunFile(filepath.Join(t.TempDir(), "missing.la"), &out, LexStage); err == nil {
		t.Fatalf("expected an error for a missing source file")
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.la")
	if err := os.WriteFile(path, []byte("algoritmo\n declare x inteiro\nfim_algoritmo\n"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	root, err := ParseFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !root.IsError() || root.Line() != 2 {
		t.Fatalf("expected a syntax error on line 2, got %s at line %d", root.Rule, root.Line())
	}
}
