package types

type PonteiroType struct {
	Inner Type
}

func NewPonteiro(inner Type) *PonteiroType {
	return &PonteiroType{
		Inner: inner,
	}
}

func (t *PonteiroType) Type() string {
	return "^" + t.Inner.Type()
}

func (t *PonteiroType) SameAs(other Type) bool {
	if ponteiro, ok := other.(*PonteiroType); ok {
		return t.Inner.SameAs(ponteiro.Inner)
	}
	return false
}

func (t *PonteiroType) CanBeImplicitlyCastedTo(Type) bool {
	return false
}

// Deref returns the pointee of a pointer type, or t itself.
func Deref(t Type) Type {
	if ponteiro, ok := t.(*PonteiroType); ok {
		return ponteiro.Inner
	}

	return t
}
