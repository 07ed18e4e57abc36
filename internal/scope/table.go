package scope

import (
	types "github.com/kievzenit/lac/internal/types"
)

type Symbol struct {
	Name string
	Type types.Type
}

// Table is the namespace of one scope. ReturnType is the type a retorne
// inside the scope must produce, Vazio where retorne is not allowed.
type Table struct {
	ReturnType types.Type

	symbols map[string]Symbol
}

func NewTable(returnType types.Type) *Table {
	return &Table{
		ReturnType: returnType,
		symbols:    make(map[string]Symbol),
	}
}

func (t *Table) Exists(name string) bool {
	_, ok := t.symbols[name]
	return ok
}

func (t *Table) Lookup(name string) (Symbol, bool) {
	s, ok := t.symbols[name]
	return s, ok
}

// Insert binds name in this table, replacing an earlier binding.
func (t *Table) Insert(name string, typ types.Type) {
	t.symbols[name] = Symbol{Name: name, Type: typ}
}

func (t *Table) clone() *Table {
	c := &Table{
		ReturnType: t.ReturnType,
		symbols:    make(map[string]Symbol, len(t.symbols)),
	}
	for name, symbol := range t.symbols {
		c.symbols[name] = symbol
	}

	return c
}
