package parser

import (
	"slices"

	"github.com/kievzenit/lac/internal/ast"
	"github.com/kievzenit/lac/internal/lexer"
)

// Parser is a predictive recursive-descent parser for LA. Every rule
// returns a node; the first failed match becomes an Error node that is
// handed back unchanged to the root.
type Parser struct {
	scanner lexer.TokenScanner
}

func NewParser(source lexer.TokenSource) *Parser {
	return &Parser{
		scanner: lexer.NewTokenBuffer(source),
	}
}

func (p *Parser) peek(k int) lexer.Token {
	return p.scanner.Peek(k)
}

func (p *Parser) isCurrAny(kinds ...lexer.TokenKind) bool {
	return slices.Contains(kinds, p.peek(1).Kind)
}

func (p *Parser) expect(kind lexer.TokenKind) (lexer.Token, *ast.Node) {
	if p.peek(1).Kind != kind {
		return lexer.Token{}, p.unexpected()
	}

	return p.scanner.Read(), nil
}

func (p *Parser) unexpected() *ast.Node {
	token := p.peek(1)
	return ast.NewError(syntaxErrorMessage(token), token)
}

var (
	basicTypeKinds      = []lexer.TokenKind{lexer.LITERAL, lexer.INTEIRO, lexer.REAL, lexer.LOGICO}
	constantValueKinds  = []lexer.TokenKind{lexer.CADEIA, lexer.NUM_INT, lexer.NUM_REAL, lexer.VERDADEIRO, lexer.FALSO}
	localDeclKinds      = []lexer.TokenKind{lexer.DECLARE, lexer.CONSTANTE, lexer.TIPO}
	globalDeclKinds     = []lexer.TokenKind{lexer.PROCEDIMENTO, lexer.FUNCAO}
	relationalKinds     = []lexer.TokenKind{lexer.EQ, lexer.NEQ, lexer.GEQ, lexer.LEQ, lexer.GT, lexer.LT}
	unaryParcelKinds    = []lexer.TokenKind{lexer.MINUS, lexer.CARET, lexer.IDENT, lexer.NUM_INT, lexer.NUM_REAL, lexer.LPAREN}
	nonUnaryParcelKinds = []lexer.TokenKind{lexer.AMPERSAND, lexer.CADEIA}
	parcelKinds         = slices.Concat(unaryParcelKinds, nonUnaryParcelKinds)
	declarationKinds    = slices.Concat(localDeclKinds, globalDeclKinds)
	typeKinds           = slices.Concat(basicTypeKinds, []lexer.TokenKind{lexer.CARET, lexer.IDENT})
	commandKinds        = []lexer.TokenKind{
		lexer.LEIA, lexer.ESCREVA, lexer.SE, lexer.CASO, lexer.PARA, lexer.ENQUANTO,
		lexer.FACA, lexer.CARET, lexer.IDENT, lexer.RETORNE,
	}
)

// Programa parses a whole source file.
//
//	programa : declaracoes 'algoritmo' corpo 'fim_algoritmo' EOF
func (p *Parser) Programa() *ast.Node {
	return p.sequence().
		add(p.declaracoes).
		expect(lexer.ALGORITMO).
		add(p.corpo).
		expect(lexer.FIM_ALGORITMO).
		expect(lexer.EOF).
		node(ast.Program)
}

func (p *Parser) declaracoes() *ast.Node {
	if !p.isCurrAny(declarationKinds...) {
		return ast.NewEmpty()
	}

	return p.sequence().
		add(p.declaracao).
		add(p.declaracoes).
		node(ast.Declarations)
}

func (p *Parser) declaracao() *ast.Node {
	switch {
	case p.isCurrAny(localDeclKinds...):
		return p.declaracaoLocal()
	case p.isCurrAny(globalDeclKinds...):
		return p.declaracaoGlobal()
	}

	return p.unexpected()
}

func (p *Parser) declaracaoLocal() *ast.Node {
	switch p.peek(1).Kind {
	case lexer.DECLARE:
		return p.sequence().
			expect(lexer.DECLARE).
			add(p.variavel).
			node(ast.VariableDecl)
	case lexer.TIPO:
		return p.sequence().
			expect(lexer.TIPO).
			leaf(ast.Ident, lexer.IDENT).
			expect(lexer.COLON).
			add(p.tipo).
			node(ast.TypeDecl)
	case lexer.CONSTANTE:
		return p.sequence().
			expect(lexer.CONSTANTE).
			leaf(ast.Ident, lexer.IDENT).
			expect(lexer.COLON).
			add(p.tipoBasico).
			expect(lexer.EQ).
			add(p.valorConstante).
			node(ast.ConstantDecl)
	}

	return p.unexpected()
}

func (p *Parser) declaracoesLocais() *ast.Node {
	if !p.isCurrAny(localDeclKinds...) {
		return ast.NewEmpty()
	}

	return p.sequence().
		add(p.declaracaoLocal).
		add(p.declaracoesLocais).
		node(ast.LocalDeclarations)
}

func (p *Parser) variavel() *ast.Node {
	return p.sequence().
		add(p.identificador).
		add(p.identificadores).
		expect(lexer.COLON).
		add(p.tipo).
		node(ast.Variable)
}

func (p *Parser) variaveis() *ast.Node {
	if p.peek(1).Kind != lexer.IDENT {
		return ast.NewEmpty()
	}

	return p.sequence().
		add(p.variavel).
		add(p.variaveis).
		node(ast.Variables)
}

func (p *Parser) identificador() *ast.Node {
	return p.sequence().
		leaf(ast.Ident, lexer.IDENT).
		add(p.acessoMembro).
		add(p.dimensao).
		node(ast.Identifier)
}

func (p *Parser) acessoMembro() *ast.Node {
	if p.peek(1).Kind != lexer.DOT {
		return ast.NewEmpty()
	}

	return p.sequence().
		expect(lexer.DOT).
		leaf(ast.Ident, lexer.IDENT).
		add(p.acessoMembro).
		node(ast.MemberAccess)
}

func (p *Parser) identificadores() *ast.Node {
	if p.peek(1).Kind != lexer.COMMA {
		return ast.NewEmpty()
	}

	return p.sequence().
		expect(lexer.COMMA).
		add(p.identificador).
		add(p.identificadores).
		node(ast.Identifiers)
}

func (p *Parser) dimensao() *ast.Node {
	if p.peek(1).Kind != lexer.LBRACKET {
		return ast.NewEmpty()
	}

	return p.sequence().
		expect(lexer.LBRACKET).
		add(p.expAritmetica).
		expect(lexer.RBRACKET).
		add(p.dimensao).
		node(ast.Dimension)
}

func (p *Parser) tipo() *ast.Node {
	switch {
	case p.peek(1).Kind == lexer.REGISTRO:
		return p.registro()
	case p.isCurrAny(typeKinds...):
		return p.tipoEstendido()
	}

	return p.unexpected()
}

func (p *Parser) tipoBasico() *ast.Node {
	if !p.isCurrAny(basicTypeKinds...) {
		return p.unexpected()
	}

	return ast.NewLeaf(ast.BasicType, p.scanner.Read())
}

func (p *Parser) tipoBasicoIdent() *ast.Node {
	if p.peek(1).Kind == lexer.IDENT {
		return ast.NewLeaf(ast.Ident, p.scanner.Read())
	}

	return p.tipoBasico()
}

func (p *Parser) tipoEstendido() *ast.Node {
	return p.sequence().
		add(p.circunflexo).
		add(p.tipoBasicoIdent).
		node(ast.ExtendedType)
}

func (p *Parser) circunflexo() *ast.Node {
	return p.optionalLeaf(ast.Caret, lexer.CARET)
}

func (p *Parser) optionalLeaf(rule ast.Rule, kind lexer.TokenKind) *ast.Node {
	if p.peek(1).Kind != kind {
		return ast.NewEmpty()
	}

	return ast.NewLeaf(rule, p.scanner.Read())
}

func (p *Parser) valorConstante() *ast.Node {
	if !p.isCurrAny(constantValueKinds...) {
		return p.unexpected()
	}

	return ast.NewLeaf(ast.ConstantValue, p.scanner.Read())
}

func (p *Parser) registro() *ast.Node {
	return p.sequence().
		expect(lexer.REGISTRO).
		add(p.variaveis).
		expect(lexer.FIM_REGISTRO).
		closeScope().
		node(ast.Record)
}

func (p *Parser) declaracaoGlobal() *ast.Node {
	switch p.peek(1).Kind {
	case lexer.PROCEDIMENTO:
		return p.sequence().
			expect(lexer.PROCEDIMENTO).
			leaf(ast.Ident, lexer.IDENT).
			expect(lexer.LPAREN).
			add(p.parametros).
			expect(lexer.RPAREN).
			add(p.declaracoesLocais).
			add(p.cmds).
			expect(lexer.FIM_PROCEDIMENTO).
			closeScope().
			node(ast.ProcedureDecl)
	case lexer.FUNCAO:
		return p.sequence().
			expect(lexer.FUNCAO).
			leaf(ast.Ident, lexer.IDENT).
			expect(lexer.LPAREN).
			add(p.parametros).
			expect(lexer.RPAREN).
			expect(lexer.COLON).
			add(p.tipoEstendido).
			add(p.declaracoesLocais).
			add(p.cmds).
			expect(lexer.FIM_FUNCAO).
			closeScope().
			node(ast.FunctionDecl)
	}

	return p.unexpected()
}

func (p *Parser) parametros() *ast.Node {
	if !p.isCurrAny(lexer.VAR, lexer.IDENT) {
		return ast.NewEmpty()
	}

	return p.sequence().
		add(p.parametro).
		add(p.maisParametros).
		node(ast.Params)
}

func (p *Parser) maisParametros() *ast.Node {
	if p.peek(1).Kind != lexer.COMMA {
		return ast.NewEmpty()
	}

	return p.sequence().
		expect(lexer.COMMA).
		add(p.parametro).
		add(p.maisParametros).
		node(ast.Params)
}

func (p *Parser) parametro() *ast.Node {
	return p.sequence().
		add(p.varMarker).
		add(p.identificador).
		add(p.identificadores).
		expect(lexer.COLON).
		add(p.tipoEstendido).
		node(ast.Param)
}

func (p *Parser) varMarker() *ast.Node {
	return p.optionalLeaf(ast.Var, lexer.VAR)
}

func (p *Parser) corpo() *ast.Node {
	return p.sequence().
		add(p.declaracoesLocais).
		add(p.cmds).
		node(ast.Body)
}
