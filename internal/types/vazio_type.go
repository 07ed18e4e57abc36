package types

type VazioType struct{}

func (*VazioType) Type() string {
	return "vazio"
}

func (*VazioType) SameAs(t Type) bool {
	_, ok := t.(*VazioType)
	return ok
}

func (*VazioType) CanBeImplicitlyCastedTo(Type) bool {
	return false
}
