package parser

import (
	"github.com/kievzenit/lac/internal/ast"
	"github.com/kievzenit/lac/internal/lexer"
)

func (p *Parser) cmds() *ast.Node {
	if !p.isCurrAny(commandKinds...) {
		return ast.NewEmpty()
	}

	return p.sequence().
		add(p.cmd).
		add(p.cmds).
		node(ast.Commands)
}

func (p *Parser) cmd() *ast.Node {
	switch p.peek(1).Kind {
	case lexer.LEIA:
		return p.cmdLeia()
	case lexer.ESCREVA:
		return p.cmdEscreva()
	case lexer.SE:
		return p.cmdSe()
	case lexer.CASO:
		return p.cmdCaso()
	case lexer.PARA:
		return p.cmdPara()
	case lexer.ENQUANTO:
		return p.cmdEnquanto()
	case lexer.FACA:
		return p.cmdFaca()
	case lexer.CARET:
		return p.cmdAtribuicao()
	case lexer.IDENT:
		if p.peek(2).Kind == lexer.LPAREN {
			return p.cmdChamada()
		}
		return p.cmdAtribuicao()
	case lexer.RETORNE:
		return p.cmdRetorne()
	}

	return p.unexpected()
}

func (p *Parser) cmdLeia() *ast.Node {
	return p.sequence().
		expect(lexer.LEIA).
		expect(lexer.LPAREN).
		add(p.circunflexo).
		add(p.identificador).
		add(p.maisLeia).
		expect(lexer.RPAREN).
		node(ast.ReadCmd)
}

func (p *Parser) maisLeia() *ast.Node {
	if p.peek(1).Kind != lexer.COMMA {
		return ast.NewEmpty()
	}

	return p.sequence().
		expect(lexer.COMMA).
		add(p.circunflexo).
		add(p.identificador).
		add(p.maisLeia).
		node(ast.MoreReads)
}

func (p *Parser) cmdEscreva() *ast.Node {
	return p.sequence().
		expect(lexer.ESCREVA).
		expect(lexer.LPAREN).
		add(p.expressao).
		add(p.expressoes).
		expect(lexer.RPAREN).
		node(ast.WriteCmd)
}

func (p *Parser) cmdSe() *ast.Node {
	return p.sequence().
		expect(lexer.SE).
		add(p.expressao).
		expect(lexer.ENTAO).
		add(p.cmds).
		add(p.senao).
		expect(lexer.FIM_SE).
		node(ast.IfCmd)
}

func (p *Parser) senao() *ast.Node {
	if p.peek(1).Kind != lexer.SENAO {
		return ast.NewEmpty()
	}

	return p.sequence().
		expect(lexer.SENAO).
		add(p.cmds).
		node(ast.Else)
}

func (p *Parser) cmdCaso() *ast.Node {
	return p.sequence().
		expect(lexer.CASO).
		add(p.expAritmetica).
		expect(lexer.SEJA).
		add(p.selecao).
		add(p.senao).
		expect(lexer.FIM_CASO).
		node(ast.CaseCmd)
}

func (p *Parser) cmdPara() *ast.Node {
	return p.sequence().
		expect(lexer.PARA).
		leaf(ast.Ident, lexer.IDENT).
		expect(lexer.ASSIGN).
		add(p.expAritmetica).
		expect(lexer.ATE).
		add(p.expAritmetica).
		expect(lexer.FACA).
		add(p.cmds).
		expect(lexer.FIM_PARA).
		node(ast.ForCmd)
}

func (p *Parser) cmdEnquanto() *ast.Node {
	return p.sequence().
		expect(lexer.ENQUANTO).
		add(p.expressao).
		expect(lexer.FACA).
		add(p.cmds).
		expect(lexer.FIM_ENQUANTO).
		node(ast.WhileCmd)
}

func (p *Parser) cmdFaca() *ast.Node {
	return p.sequence().
		expect(lexer.FACA).
		add(p.cmds).
		expect(lexer.ATE).
		add(p.expressao).
		node(ast.DoCmd)
}

func (p *Parser) cmdAtribuicao() *ast.Node {
	return p.sequence().
		add(p.circunflexo).
		add(p.identificador).
		expect(lexer.ASSIGN).
		add(p.expressao).
		node(ast.AssignCmd)
}

func (p *Parser) cmdChamada() *ast.Node {
	return p.sequence().
		leaf(ast.Ident, lexer.IDENT).
		expect(lexer.LPAREN).
		add(p.expressao).
		add(p.expressoes).
		expect(lexer.RPAREN).
		node(ast.CallCmd)
}

func (p *Parser) cmdRetorne() *ast.Node {
	return p.sequence().
		expect(lexer.RETORNE).
		add(p.expressao).
		node(ast.ReturnCmd)
}

func (p *Parser) selecao() *ast.Node {
	if !p.isCurrAny(lexer.MINUS, lexer.NUM_INT) {
		return ast.NewEmpty()
	}

	return p.sequence().
		add(p.itemSelecao).
		add(p.selecao).
		node(ast.Selection)
}

func (p *Parser) itemSelecao() *ast.Node {
	return p.sequence().
		add(p.constantes).
		expect(lexer.COLON).
		add(p.cmds).
		node(ast.SelectionItem)
}

func (p *Parser) constantes() *ast.Node {
	return p.sequence().
		add(p.numeroIntervalo).
		add(p.maisConstantes).
		node(ast.Constants)
}

func (p *Parser) maisConstantes() *ast.Node {
	if p.peek(1).Kind != lexer.COMMA {
		return ast.NewEmpty()
	}

	return p.sequence().
		expect(lexer.COMMA).
		add(p.numeroIntervalo).
		add(p.maisConstantes).
		node(ast.Constants)
}

func (p *Parser) numeroIntervalo() *ast.Node {
	return p.sequence().
		add(p.opUnario).
		leaf(ast.NumInt, lexer.NUM_INT).
		add(p.fimIntervalo).
		node(ast.NumberRange)
}

func (p *Parser) fimIntervalo() *ast.Node {
	if p.peek(1).Kind != lexer.RANGE {
		return ast.NewEmpty()
	}

	return p.sequence().
		expect(lexer.RANGE).
		add(p.opUnario).
		leaf(ast.NumInt, lexer.NUM_INT).
		node(ast.RangeEnd)
}

func (p *Parser) opUnario() *ast.Node {
	return p.optionalLeaf(ast.UnaryMinus, lexer.MINUS)
}
