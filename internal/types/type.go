package types

// Type is a resolved LA type. Composite types compare structurally, by the
// types of their members and never by declared names.
type Type interface {
	Type() string
	SameAs(t Type) bool
	CanBeImplicitlyCastedTo(t Type) bool
}

var (
	Cadeia   Type = &CadeiaType{}
	Inteiro  Type = &InteiroType{}
	Real     Type = &RealType{}
	Logico   Type = &LogicoType{}
	Vazio    Type = &VazioType{}
	Invalido Type = &InvalidoType{}
)

func IsNumeric(t Type) bool {
	switch t.(type) {
	case *InteiroType, *RealType:
		return true
	}

	return false
}

func IsVazio(t Type) bool {
	_, ok := t.(*VazioType)
	return ok
}

func IsInvalido(t Type) bool {
	_, ok := t.(*InvalidoType)
	return ok
}

// Returned unwraps a function type to its return type. Other types are
// returned unchanged.
func Returned(t Type) Type {
	if funcao, ok := t.(*FuncaoType); ok {
		return funcao.Return
	}

	return t
}

// Unify combines the operand types of a binary rule. A Vazio right operand
// means the rule had no right operand at all.
func Unify(left, right Type) Type {
	left, right = Returned(left), Returned(right)

	if IsVazio(right) {
		return left
	}

	if IsNumeric(left) && IsNumeric(right) {
		if _, ok := left.(*RealType); ok {
			return Real
		}
		if _, ok := right.(*RealType); ok {
			return Real
		}
		return Inteiro
	}

	if left.SameAs(right) {
		return left
	}

	return Invalido
}

// Compatible reports whether a value of type from may be stored in to.
func Compatible(from, to Type) bool {
	return from.SameAs(to) || from.CanBeImplicitlyCastedTo(to)
}
