package types

// InvalidoType marks an expression whose type could not be resolved.
type InvalidoType struct{}

func (*InvalidoType) Type() string {
	return "invalido"
}

func (*InvalidoType) SameAs(t Type) bool {
	_, ok := t.(*InvalidoType)
	return ok
}

func (*InvalidoType) CanBeImplicitlyCastedTo(Type) bool {
	return false
}
