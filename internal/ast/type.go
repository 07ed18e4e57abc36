package ast

import (
	"github.com/kievzenit/lac/internal/lexer"
	"github.com/kievzenit/lac/internal/scope"
	types "github.com/kievzenit/lac/internal/types"
)

// Type resolves the type of the subtree against r. It re-traverses the
// subtree on every call and never mutates r.
func (n *Node) Type(r scope.Resolver) types.Type {
	switch n.Rule {
	case LogicConst:
		return types.Logico
	case StringLit:
		return types.Cadeia
	case NumInt:
		return types.Inteiro
	case NumReal:
		return types.Real
	case ConstantValue:
		return constantType(n.Token)
	case BasicType:
		return basicType(n.Token)

	case Ident:
		return resolve(r, n.Token.Value)
	case Identifier:
		return resolve(r, n.DottedName())

	case Record:
		return types.NewRegistro(n.Fields(r))
	case ProcedureDecl:
		return types.NewProcedimento(n.Params(r))
	case FunctionDecl:
		return types.NewFuncao(n.Params(r), n.Children[2].Type(r))

	case ExtendedType:
		inner := n.Children[1].Type(r)
		if n.HasCaret() {
			return types.NewPonteiro(inner)
		}
		return inner

	case Variable, Param:
		return n.DeclaredType().Type(r)
	case TypeDecl:
		return n.Children[1].Type(r)
	case ConstantDecl:
		t := n.Children[1].Type(r)
		if types.IsVazio(t) {
			return types.Inteiro
		}
		return t

	case AddressOf:
		return types.NewPonteiro(n.Children[0].Type(r))
	case VarParcel:
		t := n.Children[1].Type(r)
		if n.HasCaret() {
			return types.Deref(t)
		}
		return t
	case CallParcel:
		return types.Returned(n.Children[0].Type(r))
	case ParenParcel:
		return n.Children[0].Type(r)
	case Parcel, LogicFactor, RelTail:
		return n.Children[1].Type(r)

	case Expr, LogicTerm, ArithExpr, Term, Factor:
		return types.Unify(n.Children[0].Type(r), n.Children[1].Type(r))
	case LogicTerms, LogicFactors, Terms, Factors, Parcels:
		return types.Unify(n.Children[1].Type(r), n.Children[2].Type(r))
	case Exprs:
		return types.Unify(n.Children[0].Type(r), n.Children[1].Type(r))

	case RelExpr:
		left, right := n.Children[0].Type(r), n.Children[1].Type(r)
		if types.IsVazio(right) {
			return left
		}
		if types.IsInvalido(types.Unify(left, right)) {
			return types.Invalido
		}
		return types.Logico
	}

	return types.Vazio
}

// Fields returns the fields of a Record, one per declared name.
func (n *Node) Fields(r scope.Resolver) []types.Field {
	if n.Rule != Record {
		return nil
	}

	return flatten(n.Children[0].Items(), r)
}

// Params returns the parameters of a subroutine, one per declared name.
func (n *Node) Params(r scope.Resolver) []types.Field {
	if n.Rule != ProcedureDecl && n.Rule != FunctionDecl {
		return nil
	}

	return flatten(n.Children[1].Items(), r)
}

func flatten(decls []*Node, r scope.Resolver) []types.Field {
	fields := make([]types.Field, 0, len(decls))
	for _, decl := range decls {
		t := decl.Type(r)
		for _, name := range decl.DeclaredNames() {
			fields = append(fields, types.Field{Name: name.Value, Type: t})
		}
	}

	return fields
}

func resolve(r scope.Resolver, name string) types.Type {
	if t, ok := r.Resolve(name); ok {
		return t
	}

	return types.Invalido
}

func basicType(token lexer.Token) types.Type {
	switch token.Kind {
	case lexer.LITERAL:
		return types.Cadeia
	case lexer.INTEIRO:
		return types.Inteiro
	case lexer.REAL:
		return types.Real
	case lexer.LOGICO:
		return types.Logico
	}

	return types.Vazio
}

func constantType(token lexer.Token) types.Type {
	switch token.Kind {
	case lexer.CADEIA:
		return types.Cadeia
	case lexer.NUM_INT:
		return types.Inteiro
	case lexer.NUM_REAL:
		return types.Real
	case lexer.VERDADEIRO, lexer.FALSO:
		return types.Logico
	}

	return types.Vazio
}
