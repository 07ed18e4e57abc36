package compiler_errors

import (
	"bytes"
	"testing"
)

type message string

func (m message) GetMessage() string {
	return string(m)
}

func TestReportWritesTrailer(t *testing.T) {
	var out bytes.Buffer
	eh := NewErrorHandler(&out)

	if eh.HasErrors() {
		t.Fatalf("expected a fresh handler to have no errors")
	}

	if err := eh.Report(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "Fim da compilacao\n" {
		t.Fatalf("expected only the trailer, got %q", out.String())
	}
}

func TestReportKeepsOrder(t *testing.T) {
	var out bytes.Buffer
	eh := NewErrorHandler(&out)
	eh.AddError(message("Linha 2: b"))
	eh.AddError(message("Linha 1: a"))

	if !eh.HasErrors() || len(eh.Errors()) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(eh.Errors()))
	}

	if err := eh.Report(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "Linha 2: b\nLinha 1: a\nFim da compilacao\n"
	if out.String() != expected {
		t.Fatalf("expected %q, got %q", expected, out.String())
	}
}
