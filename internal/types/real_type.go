package types

type RealType struct{}

func (*RealType) Type() string {
	return "real"
}

func (*RealType) SameAs(t Type) bool {
	_, ok := t.(*RealType)
	return ok
}

// LA lets reals be stored in integers, the value is truncated.
func (*RealType) CanBeImplicitlyCastedTo(t Type) bool {
	_, ok := t.(*InteiroType)
	return ok
}
