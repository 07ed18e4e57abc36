package ast

// DottedName is the scope name of an Identifier: its base name followed by
// any member accesses, dimensions excluded.
func (n *Node) DottedName() string {
	if n.Rule != Identifier {
		return n.Text()
	}

	return n.Children[0].Text() + n.Children[1].Text()
}

// Args returns the argument expressions of a call.
func (n *Node) Args() []*Node {
	if n.Rule != CallCmd && n.Rule != CallParcel {
		return nil
	}

	return append([]*Node{n.Children[1]}, n.Children[2].Items()...)
}

// Callee returns the called name of a call.
func (n *Node) Callee() string {
	if n.Rule != CallCmd && n.Rule != CallParcel {
		return ""
	}

	return n.Children[0].Token.Value
}

// HasCaret reports whether the first child of n is a present '^'.
func (n *Node) HasCaret() bool {
	return len(n.Children) > 0 && n.Children[0].Rule == Caret
}
