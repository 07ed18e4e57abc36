package lexer

import (
	"testing"
)

type sliceSource struct {
	tokens []Token
	pulls  int
}

func (s *sliceSource) NextToken() Token {
	s.pulls++
	if len(s.tokens) == 0 {
		return Token{Kind: EOF, Value: "EOF"}
	}

	token := s.tokens[0]
	s.tokens = s.tokens[1:]
	return token
}

func idents(names ...string) []Token {
	tokens := make([]Token, 0, len(names)+1)
	for _, name := range names {
		tokens = append(tokens, Token{Kind: IDENT, Value: name, Line: 1})
	}

	return append(tokens, Token{Kind: EOF, Value: "EOF", Line: 1})
}

func TestTokenBufferPeekAndRead(t *testing.T) {
	b := NewTokenBuffer(&sliceSource{tokens: idents("a", "b", "c")})

	if got := b.Peek(2).Value; got != "b" {
		t.Fatalf("Peek(2): expected \"b\", got %q", got)
	}
	if got := b.Peek(1).Value; got != "a" {
		t.Fatalf("Peek(1): expected \"a\", got %q", got)
	}

	for _, expected := range []string{"a", "b", "c", "EOF", "EOF"} {
		if got := b.Read().Value; got != expected {
			t.Fatalf("Read: expected %q, got %q", expected, got)
		}
	}
}

func TestTokenBufferPeekPastEOF(t *testing.T) {
	b := NewTokenBuffer(&sliceSource{tokens: idents("a")})

	if got := b.Peek(5); got.Kind != EOF {
		t.Fatalf("expected EOF beyond the last token, got %s", got.Kind)
	}
}

func TestTokenBufferStopsPullingAfterEOF(t *testing.T) {
	source := &sliceSource{tokens: idents("a", "b")}
	b := NewTokenBuffer(source)

	for i := 0; i < 6; i++ {
		b.Read()
	}

	if source.pulls != 3 {
		t.Fatalf("expected 3 pulls from the source, got %d", source.pulls)
	}
}

func TestTokenBufferRefillsPastCapacity(t *testing.T) {
	names := make([]string, 0, 3*lookaheadCapacity)
	for i := 0; i < 3*lookaheadCapacity; i++ {
		names = append(names, string(rune('a'+i%26)))
	}
	b := NewTokenBuffer(&sliceSource{tokens: idents(names...)})

	for i, name := range names {
		if got := b.Peek(lookaheadCapacity).Kind; i+lookaheadCapacity <= len(names) && got != IDENT {
			t.Fatalf("position %d: expected a full lookahead window, got %s", i, got)
		}

		if got := b.Read().Value; got != name {
			t.Fatalf("position %d: expected %q, got %q", i, name, got)
		}
	}

	if got := b.Read().Kind; got != EOF {
		t.Fatalf("expected EOF, got %s", got)
	}
}
