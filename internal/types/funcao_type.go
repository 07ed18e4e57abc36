package types

type FuncaoType struct {
	Params []Field
	Return Type
}

func NewFuncao(params []Field, ret Type) *FuncaoType {
	return &FuncaoType{
		Params: params,
		Return: ret,
	}
}

func (t *FuncaoType) Type() string {
	return "funcao(" + joinFields(t.Params) + "): " + t.Return.Type()
}

func (t *FuncaoType) SameAs(other Type) bool {
	funcao, ok := other.(*FuncaoType)
	if !ok {
		return false
	}

	return t.Return.SameAs(funcao.Return) && sameFields(t.Params, funcao.Params)
}

func (t *FuncaoType) CanBeImplicitlyCastedTo(Type) bool {
	return false
}

// Signature returns the parameter list of a callable type.
func Signature(t Type) ([]Field, bool) {
	switch callable := t.(type) {
	case *FuncaoType:
		return callable.Params, true
	case *ProcedimentoType:
		return callable.Params, true
	}

	return nil, false
}
