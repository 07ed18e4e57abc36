package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	rootCmd.SetErr(&stderr)
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs(args)
	defer func() {
		verbose = false
		dumpTree = false
	}()

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeSource(t *testing.T, source string) (string, string) {
	t.Helper()

	dir := t.TempDir()
	input := filepath.Join(dir, "prog.la")
	if err := os.WriteFile(input, []byte(source), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	return input, filepath.Join(dir, "out.txt")
}

func TestGenWritesC(t *testing.T) {
	input, output := writeSource(t, "algoritmo\n escreva(1)\nfim_algoritmo\n")

	if _, _, err := runCommand(t, "gen", input, output); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "int main(void) {") {
		t.Fatalf("expected a C main function, got:\n%s", data)
	}
}

func TestCheckWritesDiagnostics(t *testing.T) {
	input, output := writeSource(t, "algoritmo\n x <- 1\nfim_algoritmo\n")

	if _, _, err := runCommand(t, "check", input, output); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	expected := "Linha 2: identificador x nao declarado\nFim da compilacao\n"
	if string(data) != expected {
		t.Fatalf("expected %q, got %q", expected, data)
	}
}

func TestVerboseReportsSizes(t *testing.T) {
	input, output := writeSource(t, "algoritmo\nfim_algoritmo\n")

	_, stderr, err := runCommand(t, "lex", "-v", input, output)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(stderr, "lex: read 24 B from "+input) {
		t.Fatalf("expected a size report, got %q", stderr)
	}
}

func TestParseDumpWritesTree(t *testing.T) {
	input, output := writeSource(t, "algoritmo\nfim_algoritmo\n")

	stdout, _, err := runCommand(t, "parse", "--dump", input, output)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(stdout, "ast.Node{") {
		t.Fatalf("expected a dump of the syntax tree, got %q", stdout)
	}
}

func TestMissingInput(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := runCommand(t, "parse", filepath.Join(dir, "missing.la"), filepath.Join(dir, "out.txt")); err == nil {
		t.Fatalf("expected an error for a missing input file")
	}
}

func TestWrongArgumentCount(t *testing.T) {
	if _, _, err := runCommand(t, "gen", "only-one"); err == nil {
		t.Fatalf("expected an error for a missing output argument")
	}
}
