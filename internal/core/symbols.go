package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"xacro-convert/internal/xmltree"
)

// Symbol is one property table entry: a literal string, or the
// property element's own subtree for definitions without a value
// attribute.
type Symbol struct {
	Literal string
	Subtree *xmltree.Element
}

// IsComplex reports whether the symbol stores a subtree instead of a
// literal.
func (s Symbol) IsComplex() bool {
	return s.Subtree != nil
}

// SymbolTable is a chain of scopes. Lookup walks the chain toward the
// root; definitions always land in the innermost scope. Whole-document
// expansion only ever builds a single scope, but the chain is kept so
// nested scopes stay correct.
type SymbolTable struct {
	parent  *SymbolTable
	entries map[string]Symbol
}

func NewSymbolTable(parent *SymbolTable) *SymbolTable {
	return &SymbolTable{parent: parent, entries: map[string]Symbol{}}
}

// Define records a symbol in this scope, overwriting any earlier
// definition of the same name.
func (t *SymbolTable) Define(name string, sym Symbol) {
	t.entries[name] = sym
}

// Lookup resolves a name through the scope chain.
func (t *SymbolTable) Lookup(name string) (Symbol, error) {
	for scope := t; scope != nil; scope = scope.parent {
		if sym, ok := scope.entries[name]; ok {
			return sym, nil
		}
	}
	return Symbol{}, errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("undefined property %q", name))
}

// Names returns the names defined in this scope only.
func (t *SymbolTable) Names() []string {
	names := make([]string, 0, len(t.entries))
	for name := range t.entries {
		names = append(names, name)
	}
	return names
}

// Len reports the number of entries in this scope only.
func (t *SymbolTable) Len() int {
	return len(t.entries)
}
