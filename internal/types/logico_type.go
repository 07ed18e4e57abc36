package types

type LogicoType struct{}

func (*LogicoType) Type() string {
	return "logico"
}

func (*LogicoType) SameAs(t Type) bool {
	_, ok := t.(*LogicoType)
	return ok
}

func (*LogicoType) CanBeImplicitlyCastedTo(Type) bool {
	return false
}
