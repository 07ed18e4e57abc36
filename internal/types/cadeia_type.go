package types

type CadeiaType struct{}

func (*CadeiaType) Type() string {
	return "literal"
}

func (*CadeiaType) SameAs(t Type) bool {
	_, ok := t.(*CadeiaType)
	return ok
}

func (*CadeiaType) CanBeImplicitlyCastedTo(Type) bool {
	return false
}
