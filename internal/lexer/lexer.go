package lexer

import (
	"fmt"
	"io"
	"os"
)

type LexerError struct {
	Message string
}

func NewLexerError(token Token) *LexerError {
	return &LexerError{
		Message: token.Value,
	}
}

func (e *LexerError) GetMessage() string {
	return e.Message
}

// Lexer groups scanner characters into tokens. It never fails: input it
// cannot classify becomes an ERROR token whose value is the finished
// diagnostic.
type Lexer struct {
	scanner *Scanner
	closer  io.Closer

	line int
}

func NewLexer(r io.Reader) *Lexer {
	return &Lexer{
		scanner: NewScanner(r),
		line:    1,
	}
}

// OpenLexer opens the source file at path. Close releases it.
func OpenLexer(path string) (*Lexer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}

	l := NewLexer(file)
	l.closer = file

	return l, nil
}

func (l *Lexer) Close() error {
	if l.closer == nil {
		return nil
	}

	return l.closer.Close()
}

func (l *Lexer) Line() int {
	return l.line
}

// Err reports a read error hit by the underlying scanner, if any.
func (l *Lexer) Err() error {
	return l.scanner.Err()
}

type recognizer func() (Token, bool)

// NextToken tries each recognizer in priority order. A recognizer either
// succeeds and its characters are confirmed, or the scanner is reset for the
// next one.
func (l *Lexer) NextToken() Token {
	token, ok := l.whitespaceAndComments()
	l.scanner.Confirm()
	if ok {
		return token
	}

	recognizers := []recognizer{
		l.end,
		l.keyword,
		l.identifier,
		l.number,
		l.arithmeticOperator,
		l.relationalOperator,
		l.specialCharacter,
		l.stringLiteral,
	}
	for _, recognize := range recognizers {
		token, ok := recognize()
		if ok {
			l.scanner.Confirm()
			return token
		}

		l.scanner.Reset()
	}

	c := l.scanner.Next()
	l.scanner.Confirm()

	return l.errorToken(fmt.Sprintf("%s - simbolo nao identificado", string([]byte{c})))
}

func (l *Lexer) token(kind TokenKind) Token {
	return Token{
		Kind:  kind,
		Value: l.scanner.Lexeme(),
		Line:  l.line,
	}
}

func (l *Lexer) errorToken(message string) Token {
	return Token{
		Kind:  ERROR,
		Value: fmt.Sprintf("Linha %d: %s", l.line, message),
		Line:  l.line,
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}

	return false
}

// whitespaceAndComments skips blanks and {...} comments. It only produces a
// token when a comment is left open at the end of its line.
func (l *Lexer) whitespaceAndComments() (Token, bool) {
	inComment := false
	for {
		c := l.scanner.Next()

		switch {
		case inComment:
			switch c {
			case '\n', 0:
				token := l.errorToken("comentario nao fechado")
				if c == '\n' {
					l.line++
				}
				return token, true
			case '}':
				inComment = false
			}
		case c == '{':
			inComment = true
		case isWhitespace(c):
			if c == '\n' {
				l.line++
			}
		default:
			l.scanner.Decrement()
			return Token{}, false
		}
	}
}

func (l *Lexer) end() (Token, bool) {
	if l.scanner.Next() != 0 {
		return Token{}, false
	}

	return Token{
		Kind:  EOF,
		Value: "EOF",
		Line:  l.line,
	}, true
}

// keyword consumes a maximal [A-Za-z_] run and accepts it only on an exact
// reserved word match. A run followed by a digit belongs to an identifier.
func (l *Lexer) keyword() (Token, bool) {
	for {
		c := l.scanner.Next()
		if isLetter(c) || c == '_' {
			continue
		}

		if isDigit(c) {
			return Token{}, false
		}

		l.scanner.Decrement()
		kind, ok := LookupKeyword(l.scanner.Lexeme())
		if !ok {
			return Token{}, false
		}

		return l.token(kind), true
	}
}

func (l *Lexer) identifier() (Token, bool) {
	if !isLetter(l.scanner.Next()) {
		return Token{}, false
	}

	for {
		c := l.scanner.Next()
		if !isLetter(c) && !isDigit(c) && c != '_' {
			l.scanner.Decrement()
			return l.token(IDENT), true
		}
	}
}

// number reads an integer or a real. A dot not followed by a digit is left
// in the input, so "1..5" is NUM_INT RANGE NUM_INT.
func (l *Lexer) number() (Token, bool) {
	if !isDigit(l.scanner.Next()) {
		return Token{}, false
	}

	for {
		c := l.scanner.Next()
		if isDigit(c) {
			continue
		}

		if c != '.' {
			l.scanner.Decrement()
			return l.token(NUM_INT), true
		}

		if !isDigit(l.scanner.Next()) {
			l.scanner.Decrement()
			l.scanner.Decrement()
			return l.token(NUM_INT), true
		}

		for {
			if !isDigit(l.scanner.Next()) {
				l.scanner.Decrement()
				return l.token(NUM_REAL), true
			}
		}
	}
}

func (l *Lexer) arithmeticOperator() (Token, bool) {
	switch l.scanner.Next() {
	case '*':
		return l.token(MULT), true
	case '/':
		return l.token(DIV), true
	case '+':
		return l.token(PLUS), true
	case '-':
		return l.token(MINUS), true
	}

	return Token{}, false
}

// relationalOperator handles "<", "<=", "<>", "=", ">" and ">=". The
// assignment arrow "<-" is rejected here and left to specialCharacter.
func (l *Lexer) relationalOperator() (Token, bool) {
	switch l.scanner.Next() {
	case '<':
		switch l.scanner.Next() {
		case '>':
			return l.token(NEQ), true
		case '=':
			return l.token(LEQ), true
		case '-':
			l.scanner.Decrement()
			l.scanner.Decrement()
			return Token{}, false
		default:
			l.scanner.Decrement()
			return l.token(LT), true
		}
	case '=':
		return l.token(EQ), true
	case '>':
		if l.scanner.Next() == '=' {
			return l.token(GEQ), true
		}

		l.scanner.Decrement()
		return l.token(GT), true
	}

	return Token{}, false
}

func (l *Lexer) specialCharacter() (Token, bool) {
	switch l.scanner.Next() {
	case '(':
		return l.token(LPAREN), true
	case ')':
		return l.token(RPAREN), true
	case '[':
		return l.token(LBRACKET), true
	case ']':
		return l.token(RBRACKET), true
	case ',':
		return l.token(COMMA), true
	case '%':
		return l.token(PERCENT), true
	case ':':
		return l.token(COLON), true
	case '^':
		return l.token(CARET), true
	case '&':
		return l.token(AMPERSAND), true
	case '.':
		if l.scanner.Next() == '.' {
			return l.token(RANGE), true
		}

		l.scanner.Decrement()
		return l.token(DOT), true
	case '<':
		if l.scanner.Next() == '-' {
			return l.token(ASSIGN), true
		}

		return Token{}, false
	}

	return Token{}, false
}

// stringLiteral reads a double-quoted literal, quotes included. The literal
// must close on the line it starts.
func (l *Lexer) stringLiteral() (Token, bool) {
	if l.scanner.Next() != '"' {
		return Token{}, false
	}

	for {
		c := l.scanner.Next()
		if c == '\\' {
			c = l.scanner.Next()
			if c != '\n' && c != 0 {
				continue
			}
		}

		switch c {
		case '\n', 0:
			token := l.errorToken("cadeia literal nao fechada")
			if c == '\n' {
				l.line++
			}
			return token, true
		case '"':
			return l.token(CADEIA), true
		}
	}
}
