package ast

import (
	"strconv"

	"github.com/kievzenit/lac/internal/lexer"
)

// Items flattens a list rule into its elements in source order. An Empty
// list has no items.
func (n *Node) Items() []*Node {
	switch n.Rule {
	case Declarations, LocalDeclarations, Commands, Variables, Params,
		Identifiers, Exprs, Selection, Constants:
		return chain(n, n.Rule, 0, 1)
	}

	return nil
}

// Declarators returns the Identifier nodes introduced by a Variable or a
// Param.
func (n *Node) Declarators() []*Node {
	var first, rest *Node
	switch n.Rule {
	case Variable:
		first, rest = n.Children[0], n.Children[1]
	case Param:
		first, rest = n.Children[1], n.Children[2]
	default:
		return nil
	}

	return append([]*Node{first}, rest.Items()...)
}

// DeclaredNames returns the base identifier tokens of a Variable or a Param.
func (n *Node) DeclaredNames() []lexer.Token {
	declarators := n.Declarators()
	names := make([]lexer.Token, len(declarators))
	for i, declarator := range declarators {
		names[i] = declarator.Children[0].Token
	}

	return names
}

// DeclaredType returns the node holding the declared type of a Variable or
// a Param.
func (n *Node) DeclaredType() *Node {
	switch n.Rule {
	case Variable:
		return n.Children[2]
	case Param:
		return n.Children[3]
	}

	return nil
}

// ReadTargets returns the ReadCmd node and its MoreReads tail. Each target
// holds [Caret, Identifier, rest].
func (n *Node) ReadTargets() []*Node {
	var targets []*Node
	for cur := n; cur.Rule == ReadCmd || cur.Rule == MoreReads; cur = cur.Children[2] {
		targets = append(targets, cur)
	}

	return targets
}

// Range returns the inclusive bounds of a case label.
func (n *Node) Range() (int, int, bool) {
	if n.Rule != NumberRange {
		return 0, 0, false
	}

	lo, err := signedInt(n.Children[0], n.Children[1])
	if err != nil {
		return 0, 0, false
	}

	end := n.Children[2]
	if end.IsEmpty() {
		return lo, lo, true
	}

	hi, err := signedInt(end.Children[0], end.Children[1])
	if err != nil {
		return 0, 0, false
	}

	return lo, hi, true
}

func signedInt(minus, num *Node) (int, error) {
	value := num.Token.Value
	if !minus.IsEmpty() {
		value = "-" + value
	}

	return strconv.Atoi(value)
}
