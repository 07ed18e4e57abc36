package scope

import (
	types "github.com/kievzenit/lac/internal/types"
)

// Resolver is the read-only view of a scope stack used for type queries.
type Resolver interface {
	Resolve(name string) (types.Type, bool)
}

// Stack holds the open scopes, outermost first. The global table is never
// popped, so a stack is never empty.
type Stack struct {
	tables []*Table
}

func NewStack(returnType types.Type) *Stack {
	return &Stack{
		tables: []*Table{NewTable(returnType)},
	}
}

func (s *Stack) Push(returnType types.Type) {
	s.tables = append(s.tables, NewTable(returnType))
}

// Pop closes the innermost scope. It reports false when only the global
// scope is left, which is kept.
func (s *Stack) Pop() bool {
	if len(s.tables) == 1 {
		return false
	}

	s.tables = s.tables[:len(s.tables)-1]
	return true
}

func (s *Stack) Current() *Table {
	return s.tables[len(s.tables)-1]
}

func (s *Stack) Depth() int {
	return len(s.tables)
}

func (s *Stack) Insert(name string, typ types.Type) {
	s.Current().Insert(name, typ)
}

// Lookup scans the scopes from the innermost outwards.
func (s *Stack) Lookup(name string) (Symbol, bool) {
	for i := len(s.tables) - 1; i >= 0; i-- {
		if symbol, ok := s.tables[i].Lookup(name); ok {
			return symbol, true
		}
	}

	return Symbol{}, false
}

func (s *Stack) Exists(name string) bool {
	_, ok := s.Lookup(name)
	return ok
}

func (s *Stack) Resolve(name string) (types.Type, bool) {
	symbol, ok := s.Lookup(name)
	if !ok {
		return nil, false
	}

	return symbol.Type, true
}

// Snapshot returns a copy that later inserts into s do not affect.
func (s *Stack) Snapshot() *Stack {
	tables := make([]*Table, len(s.tables))
	for i, table := range s.tables {
		tables[i] = table.clone()
	}

	return &Stack{
		tables: tables,
	}
}
