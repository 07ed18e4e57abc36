package ast

import (
	"strings"

	"github.com/kievzenit/lac/internal/lexer"
)

type Rule int

const (
	Empty Rule = iota
	Error
	CloseScope

	Program
	Declarations
	LocalDeclarations
	VariableDecl
	TypeDecl
	ConstantDecl
	ProcedureDecl
	FunctionDecl

	Variable
	Variables
	Identifier
	Identifiers
	MemberAccess
	Dimension
	ExtendedType
	Record
	Params
	Param

	Body
	Commands
	ReadCmd
	MoreReads
	WriteCmd
	IfCmd
	Else
	CaseCmd
	ForCmd
	WhileCmd
	DoCmd
	AssignCmd
	CallCmd
	ReturnCmd
	Selection
	SelectionItem
	Constants
	NumberRange
	RangeEnd

	Expr
	Exprs
	LogicTerm
	LogicTerms
	LogicFactor
	LogicFactors
	RelExpr
	RelTail
	ArithExpr
	Terms
	Term
	Factors
	Factor
	Parcels
	Parcel
	VarParcel
	CallParcel
	ParenParcel
	AddressOf

	// leaves, each keeps the token it was built from
	Ident
	BasicType
	ConstantValue
	Caret
	Var
	UnaryMinus
	Not
	OpOr
	OpAnd
	OpRel
	Op1
	Op2
	Op3
	NumInt
	NumReal
	StringLit
	LogicConst
)

var ruleNames = [...]string{
	Empty:             "Empty",
	Error:             "Error",
	CloseScope:        "CloseScope",
	Program:           "Program",
	Declarations:      "Declarations",
	LocalDeclarations: "LocalDeclarations",
	VariableDecl:      "VariableDecl",
	TypeDecl:          "TypeDecl",
	ConstantDecl:      "ConstantDecl",
	ProcedureDecl:     "ProcedureDecl",
	FunctionDecl:      "FunctionDecl",
	Variable:          "Variable",
	Variables:         "Variables",
	Identifier:        "Identifier",
	Identifiers:       "Identifiers",
	MemberAccess:      "MemberAccess",
	Dimension:         "Dimension",
	ExtendedType:      "ExtendedType",
	Record:            "Record",
	Params:            "Params",
	Param:             "Param",
	Body:              "Body",
	Commands:          "Commands",
	ReadCmd:           "ReadCmd",
	MoreReads:         "MoreReads",
	WriteCmd:          "WriteCmd",
	IfCmd:             "IfCmd",
	Else:              "Else",
	CaseCmd:           "CaseCmd",
	ForCmd:            "ForCmd",
	WhileCmd:          "WhileCmd",
	DoCmd:             "DoCmd",
	AssignCmd:         "AssignCmd",
	CallCmd:           "CallCmd",
	ReturnCmd:         "ReturnCmd",
	Selection:         "Selection",
	SelectionItem:     "SelectionItem",
	Constants:         "Constants",
	NumberRange:       "NumberRange",
	RangeEnd:          "RangeEnd",
	Expr:              "Expr",
	Exprs:             "Exprs",
	LogicTerm:         "LogicTerm",
	LogicTerms:        "LogicTerms",
	LogicFactor:       "LogicFactor",
	LogicFactors:      "LogicFactors",
	RelExpr:           "RelExpr",
	RelTail:           "RelTail",
	ArithExpr:         "ArithExpr",
	Terms:             "Terms",
	Term:              "Term",
	Factors:           "Factors",
	Factor:            "Factor",
	Parcels:           "Parcels",
	Parcel:            "Parcel",
	VarParcel:         "VarParcel",
	CallParcel:        "CallParcel",
	ParenParcel:       "ParenParcel",
	AddressOf:         "AddressOf",
	Ident:             "Ident",
	BasicType:         "BasicType",
	ConstantValue:     "ConstantValue",
	Caret:             "Caret",
	Var:               "Var",
	UnaryMinus:        "UnaryMinus",
	Not:               "Not",
	OpOr:              "OpOr",
	OpAnd:             "OpAnd",
	OpRel:             "OpRel",
	Op1:               "Op1",
	Op2:               "Op2",
	Op3:               "Op3",
	NumInt:            "NumInt",
	NumReal:           "NumReal",
	StringLit:         "StringLit",
	LogicConst:        "LogicConst",
}

func (r Rule) String() string {
	if r < 0 || int(r) >= len(ruleNames) {
		return "Rule(?)"
	}

	return ruleNames[r]
}

func (r Rule) IsLeaf() bool {
	return r >= Ident
}

// Node is one syntax tree node. Children are positional and have a fixed
// count per rule, absent optional parts are Empty nodes. Leaves carry their
// token, an Error node carries its finished message and the token it failed
// at.
type Node struct {
	Rule     Rule
	Token    lexer.Token
	Children []*Node
	Message  string
}

func NewNode(rule Rule, children ...*Node) *Node {
	return &Node{
		Rule:     rule,
		Children: children,
	}
}

func NewLeaf(rule Rule, token lexer.Token) *Node {
	return &Node{
		Rule:  rule,
		Token: token,
	}
}

func NewEmpty() *Node {
	return &Node{Rule: Empty}
}

func NewCloseScope() *Node {
	return &Node{Rule: CloseScope}
}

// NewError builds an Error node for a failure at token.
func NewError(message string, token lexer.Token) *Node {
	return &Node{
		Rule:    Error,
		Token:   token,
		Message: message,
	}
}

func (n *Node) IsError() bool {
	return n.Rule == Error
}

func (n *Node) IsEmpty() bool {
	return n.Rule == Empty
}

// Line is the line of the first token found in pre-order, 0 when the
// subtree holds no token.
func (n *Node) Line() int {
	if n.Rule.IsLeaf() || n.Rule == Error {
		return n.Token.Line
	}

	for _, child := range n.Children {
		if line := child.Line(); line > 0 {
			return line
		}
	}

	return 0
}

// Text renders the subtree back to LA source text.
func (n *Node) Text() string {
	if n.Rule.IsLeaf() {
		return n.Token.Value
	}

	switch n.Rule {
	case MemberAccess:
		return "." + n.Children[0].Text() + n.Children[1].Text()
	case Identifiers, Exprs:
		return ", " + n.Children[0].Text() + n.Children[1].Text()
	case Dimension:
		return "[" + n.Children[0].Text() + "]" + n.Children[1].Text()
	case ParenParcel:
		return "(" + n.Children[0].Text() + ")"
	case AddressOf:
		return "&" + n.Children[0].Text()
	}

	var sb strings.Builder
	for _, child := range n.Children {
		sb.WriteString(child.Text())
	}

	return sb.String()
}

// Walk visits the subtree in pre-order.
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, child := range n.Children {
		child.Walk(visit)
	}
}

// chain flattens a right-recursive list rule. item and next are the
// positions of the element and of the rest of the list.
func chain(n *Node, rule Rule, item, next int) []*Node {
	var items []*Node
	for ; n.Rule == rule; n = n.Children[next] {
		items = append(items, n.Children[item])
	}

	return items
}
