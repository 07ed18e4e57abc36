package types

import "strings"

type Field struct {
	Name string
	Type
}

type RegistroType struct {
	Fields []Field
}

func NewRegistro(fields []Field) *RegistroType {
	return &RegistroType{
		Fields: fields,
	}
}

func (t *RegistroType) Type() string {
	return "registro{" + joinFields(t.Fields) + "}"
}

func (t *RegistroType) SameAs(other Type) bool {
	registro, ok := other.(*RegistroType)
	if !ok {
		return false
	}

	return sameFields(t.Fields, registro.Fields)
}

func (t *RegistroType) CanBeImplicitlyCastedTo(Type) bool {
	return false
}

func sameFields(a, b []Field) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !a[i].Type.SameAs(b[i].Type) {
			return false
		}
	}

	return true
}

func joinFields(fields []Field) string {
	parts := make([]string, len(fields))
	for i, field := range fields {
		parts[i] = field.Name + ": " + field.Type.Type()
	}

	return strings.Join(parts, ", ")
}
