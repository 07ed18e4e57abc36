package types

type InteiroType struct{}

func (*InteiroType) Type() string {
	return "inteiro"
}

func (*InteiroType) SameAs(t Type) bool {
	_, ok := t.(*InteiroType)
	return ok
}

func (*InteiroType) CanBeImplicitlyCastedTo(t Type) bool {
	_, ok := t.(*RealType)
	return ok
}
