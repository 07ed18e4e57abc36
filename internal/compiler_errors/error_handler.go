package compiler_errors

import (
	"fmt"
	"io"
)

const trailer = "Fim da compilacao"

type CompilerError interface {
	GetMessage() string
}

type ErrorHandler interface {
	AddError(err CompilerError)
	HasErrors() bool
	Errors() []CompilerError
	// Report writes every message, one per line, then the end of
	// compilation trailer.
	Report() error
}

type CompilerErrorHandler struct {
	errors []CompilerError
	writer io.Writer
}

func NewErrorHandler(outputWriter io.Writer) ErrorHandler {
	return &CompilerErrorHandler{
		errors: make([]CompilerError, 0),
		writer: outputWriter,
	}
}

func (eh *CompilerErrorHandler) AddError(err CompilerError) {
	eh.errors = append(eh.errors, err)
}

func (eh *CompilerErrorHandler) HasErrors() bool {
	return len(eh.errors) > 0
}

func (eh *CompilerErrorHandler) Errors() []CompilerError {
	return eh.errors
}

func (eh *CompilerErrorHandler) Report() error {
	for _, err := range eh.errors {
		if _, werr := fmt.Fprintln(eh.writer, err.GetMessage()); werr != nil {
			return fmt.Errorf("write diagnostic: %w", werr)
		}
	}

	if _, err := fmt.Fprintln(eh.writer, trailer); err != nil {
		return fmt.Errorf("write diagnostic: %w", err)
	}

	return nil
}
