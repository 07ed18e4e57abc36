package parser

import (
	"github.com/kievzenit/lac/internal/ast"
	"github.com/kievzenit/lac/internal/lexer"
)

func (p *Parser) expressao() *ast.Node {
	return p.sequence().
		add(p.termoLogico).
		add(p.termosLogicos).
		node(ast.Expr)
}

func (p *Parser) expressoes() *ast.Node {
	if p.peek(1).Kind != lexer.COMMA {
		return ast.NewEmpty()
	}

	return p.sequence().
		expect(lexer.COMMA).
		add(p.expressao).
		add(p.expressoes).
		node(ast.Exprs)
}

func (p *Parser) termoLogico() *ast.Node {
	return p.sequence().
		add(p.fatorLogico).
		add(p.fatoresLogicos).
		node(ast.LogicTerm)
}

func (p *Parser) termosLogicos() *ast.Node {
	if p.peek(1).Kind != lexer.OU {
		return ast.NewEmpty()
	}

	return p.sequence().
		leaf(ast.OpOr, lexer.OU).
		add(p.termoLogico).
		add(p.termosLogicos).
		node(ast.LogicTerms)
}

func (p *Parser) fatorLogico() *ast.Node {
	return p.sequence().
		add(p.nao).
		add(p.parcelaLogica).
		node(ast.LogicFactor)
}

func (p *Parser) fatoresLogicos() *ast.Node {
	if p.peek(1).Kind != lexer.E {
		return ast.NewEmpty()
	}

	return p.sequence().
		leaf(ast.OpAnd, lexer.E).
		add(p.fatorLogico).
		add(p.fatoresLogicos).
		node(ast.LogicFactors)
}

func (p *Parser) nao() *ast.Node {
	return p.optionalLeaf(ast.Not, lexer.NAO)
}

func (p *Parser) parcelaLogica() *ast.Node {
	switch {
	case p.isCurrAny(lexer.VERDADEIRO, lexer.FALSO):
		return ast.NewLeaf(ast.LogicConst, p.scanner.Read())
	case p.isCurrAny(parcelKinds...):
		return p.expRelacional()
	}

	return p.unexpected()
}

func (p *Parser) expRelacional() *ast.Node {
	return p.sequence().
		add(p.expAritmetica).
		add(p.restoRelacional).
		node(ast.RelExpr)
}

func (p *Parser) restoRelacional() *ast.Node {
	if !p.isCurrAny(relationalKinds...) {
		return ast.NewEmpty()
	}

	return p.sequence().
		leaf(ast.OpRel, p.peek(1).Kind).
		add(p.expAritmetica).
		node(ast.RelTail)
}

func (p *Parser) expAritmetica() *ast.Node {
	return p.sequence().
		add(p.termo).
		add(p.termos).
		node(ast.ArithExpr)
}

func (p *Parser) termos() *ast.Node {
	if !p.isCurrAny(lexer.PLUS, lexer.MINUS) {
		return ast.NewEmpty()
	}

	return p.sequence().
		leaf(ast.Op1, p.peek(1).Kind).
		add(p.termo).
		add(p.termos).
		node(ast.Terms)
}

func (p *Parser) termo() *ast.Node {
	return p.sequence().
		add(p.fator).
		add(p.fatores).
		node(ast.Term)
}

func (p *Parser) fatores() *ast.Node {
	if !p.isCurrAny(lexer.MULT, lexer.DIV) {
		return ast.NewEmpty()
	}

	return p.sequence().
		leaf(ast.Op2, p.peek(1).Kind).
		add(p.fator).
		add(p.fatores).
		node(ast.Factors)
}

func (p *Parser) fator() *ast.Node {
	return p.sequence().
		add(p.parcela).
		add(p.parcelas).
		node(ast.Factor)
}

func (p *Parser) parcelas() *ast.Node {
	if p.peek(1).Kind != lexer.PERCENT {
		return ast.NewEmpty()
	}

	return p.sequence().
		leaf(ast.Op3, lexer.PERCENT).
		add(p.parcela).
		add(p.parcelas).
		node(ast.Parcels)
}

func (p *Parser) parcela() *ast.Node {
	switch {
	case p.isCurrAny(unaryParcelKinds...):
		return p.sequence().
			add(p.opUnario).
			add(p.parcelaUnario).
			node(ast.Parcel)
	case p.isCurrAny(nonUnaryParcelKinds...):
		return p.parcelaNaoUnario()
	}

	return p.unexpected()
}

func (p *Parser) parcelaUnario() *ast.Node {
	switch p.peek(1).Kind {
	case lexer.CARET:
		return p.parcelaVariavel()
	case lexer.IDENT:
		if p.peek(2).Kind == lexer.LPAREN {
			return p.sequence().
				leaf(ast.Ident, lexer.IDENT).
				expect(lexer.LPAREN).
				add(p.expressao).
				add(p.expressoes).
				expect(lexer.RPAREN).
				node(ast.CallParcel)
		}
		return p.parcelaVariavel()
	case lexer.LPAREN:
		return p.sequence().
			expect(lexer.LPAREN).
			add(p.expressao).
			expect(lexer.RPAREN).
			node(ast.ParenParcel)
	case lexer.NUM_INT:
		return ast.NewLeaf(ast.NumInt, p.scanner.Read())
	case lexer.NUM_REAL:
		return ast.NewLeaf(ast.NumReal, p.scanner.Read())
	}

	return p.unexpected()
}

func (p *Parser) parcelaVariavel() *ast.Node {
	return p.sequence().
		add(p.circunflexo).
		add(p.identificador).
		node(ast.VarParcel)
}

func (p *Parser) parcelaNaoUnario() *ast.Node {
	switch p.peek(1).Kind {
	case lexer.AMPERSAND:
		return p.sequence().
			expect(lexer.AMPERSAND).
			add(p.identificador).
			node(ast.AddressOf)
	case lexer.CADEIA:
		return ast.NewLeaf(ast.StringLit, p.scanner.Read())
	}

	return p.unexpected()
}
