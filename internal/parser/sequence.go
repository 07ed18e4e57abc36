package parser

import (
	"github.com/kievzenit/lac/internal/ast"
	"github.com/kievzenit/lac/internal/lexer"
)

// sequence collects the children of one production. After the first
// failure every further step is skipped and node returns the error.
type sequence struct {
	p        *Parser
	children []*ast.Node
	err      *ast.Node
}

func (p *Parser) sequence() *sequence {
	return &sequence{p: p}
}

func (s *sequence) expect(kind lexer.TokenKind) *sequence {
	if s.err != nil {
		return s
	}

	if _, err := s.p.expect(kind); err != nil {
		s.err = err
	}

	return s
}

func (s *sequence) leaf(rule ast.Rule, kind lexer.TokenKind) *sequence {
	if s.err != nil {
		return s
	}

	token, err := s.p.expect(kind)
	if err != nil {
		s.err = err
		return s
	}

	s.children = append(s.children, ast.NewLeaf(rule, token))
	return s
}

func (s *sequence) add(parse func() *ast.Node) *sequence {
	if s.err != nil {
		return s
	}

	child := parse()
	if child.IsError() {
		s.err = child
		return s
	}

	s.children = append(s.children, child)
	return s
}

func (s *sequence) closeScope() *sequence {
	if s.err == nil {
		s.children = append(s.children, ast.NewCloseScope())
	}

	return s
}

func (s *sequence) node(rule ast.Rule) *ast.Node {
	if s.err != nil {
		return s.err
	}

	return ast.NewNode(rule, s.children...)
}
