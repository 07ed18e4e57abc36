package types

type ProcedimentoType struct {
	Params []Field
}

func NewProcedimento(params []Field) *ProcedimentoType {
	return &ProcedimentoType{
		Params: params,
	}
}

func (t *ProcedimentoType) Type() string {
	return "procedimento(" + joinFields(t.Params) + ")"
}

func (t *ProcedimentoType) SameAs(other Type) bool {
	procedimento, ok := other.(*ProcedimentoType)
	if !ok {
		return false
	}

	return sameFields(t.Params, procedimento.Params)
}

func (t *ProcedimentoType) CanBeImplicitlyCastedTo(Type) bool {
	return false
}
