package lexer

import (
	"fmt"
)

type TokenKind int

const (
	EOF TokenKind = iota
	ERROR

	IDENT
	NUM_INT
	NUM_REAL
	CADEIA

	MULT  // *
	DIV   // /
	PLUS  // +
	MINUS // -

	LT     // <
	LEQ    // <=
	GEQ    // >=
	GT     // >
	EQ     // =
	NEQ    // <>
	ASSIGN // <-

	COLON     // :
	LPAREN    // (
	RPAREN    // )
	LBRACKET  // [
	RBRACKET  // ]
	COMMA     // ,
	PERCENT   // %
	CARET     // ^
	AMPERSAND // &
	DOT       // .
	RANGE     // ..

	ALGORITMO
	DECLARE
	LITERAL
	INTEIRO
	LEIA
	ESCREVA
	FIM_ALGORITMO
	REAL
	LOGICO
	FIM_SE
	SENAO
	ENTAO
	SE
	FIM_CASO
	PARA
	ATE
	FACA
	FIM_PARA
	FIM_ENQUANTO
	SEJA
	CASO
	ENQUANTO
	REGISTRO
	FIM_REGISTRO
	TIPO
	FIM_PROCEDIMENTO
	PROCEDIMENTO
	VAR
	FUNCAO
	FIM_FUNCAO
	RETORNE
	CONSTANTE
	FALSO
	VERDADEIRO
	NAO
	OU
	E
)

var keywords = map[string]TokenKind{
	"algoritmo":        ALGORITMO,
	"declare":          DECLARE,
	"literal":          LITERAL,
	"inteiro":          INTEIRO,
	"leia":             LEIA,
	"escreva":          ESCREVA,
	"fim_algoritmo":    FIM_ALGORITMO,
	"real":             REAL,
	"logico":           LOGICO,
	"fim_se":           FIM_SE,
	"senao":            SENAO,
	"entao":            ENTAO,
	"se":               SE,
	"fim_caso":         FIM_CASO,
	"para":             PARA,
	"ate":              ATE,
	"faca":             FACA,
	"fim_para":         FIM_PARA,
	"fim_enquanto":     FIM_ENQUANTO,
	"seja":             SEJA,
	"caso":             CASO,
	"enquanto":         ENQUANTO,
	"registro":         REGISTRO,
	"fim_registro":     FIM_REGISTRO,
	"tipo":             TIPO,
	"fim_procedimento": FIM_PROCEDIMENTO,
	"procedimento":     PROCEDIMENTO,
	"var":              VAR,
	"funcao":           FUNCAO,
	"fim_funcao":       FIM_FUNCAO,
	"retorne":          RETORNE,
	"constante":        CONSTANTE,
	"falso":            FALSO,
	"verdadeiro":       VERDADEIRO,
	"nao":              NAO,
	"ou":               OU,
	"e":                E,
}

// LookupKeyword reports the reserved word kind for an exact lexeme.
func LookupKeyword(lexeme string) (TokenKind, bool) {
	kind, ok := keywords[lexeme]
	return kind, ok
}

func (tk TokenKind) String() string {
	switch tk {
	case EOF:
		return "EOF"
	case ERROR:
		return "ERROR"
	case IDENT:
		return "IDENT"
	case NUM_INT:
		return "NUM_INT"
	case NUM_REAL:
		return "NUM_REAL"
	case CADEIA:
		return "CADEIA"
	case MULT:
		return "*"
	case DIV:
		return "/"
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case LT:
		return "<"
	case LEQ:
		return "<="
	case GEQ:
		return ">="
	case GT:
		return ">"
	case EQ:
		return "="
	case NEQ:
		return "<>"
	case ASSIGN:
		return "<-"
	case COLON:
		return ":"
	case LPAREN:
		return "("
	case RPAREN:
		return ")"
	case LBRACKET:
		return "["
	case RBRACKET:
		return "]"
	case COMMA:
		return ","
	case PERCENT:
		return "%"
	case CARET:
		return "^"
	case AMPERSAND:
		return "&"
	case DOT:
		return "."
	case RANGE:
		return ".."
	}

	for lexeme, kind := range keywords {
		if kind == tk {
			return lexeme
		}
	}

	panic(fmt.Sprintf("TokenKind.String(): received illegal token kind: %d", tk))
}

type Token struct {
	Kind  TokenKind
	Value string
	Line  int
}

func (t *Token) hasClassName() bool {
	switch t.Kind {
	case IDENT, NUM_INT, NUM_REAL, CADEIA:
		return true
	}

	return false
}

// ClassName is the second field of the debug form: the kind name for
// identifiers and literals, the quoted lexeme for everything else.
func (t *Token) ClassName() string {
	if !t.hasClassName() {
		return "'" + t.Value + "'"
	}

	return t.Kind.String()
}

func (t *Token) String() string {
	return fmt.Sprintf("<'%s',%s>", t.Value, t.ClassName())
}
