package shell

import (
	"fmt"
	"math/big"

	"github.com/npillmayer/numseq/rational"
)

// Symbol table for variables of the command language.

// --- Bindings --------------------------------------------------------------

// Binding is the type of entries in a symbol table. It binds the result of
// a command to a variable name.
type Binding struct {
	name  string
	Value interface{} // result of a command
}

// NewBinding creates a new, unbound variable binding.
func NewBinding(nm string) *Binding {
	return &Binding{name: nm}
}

// Name gets the binding's variable name.
func (b *Binding) Name() string {
	return b.name
}

// String is a debug Stringer for bindings.
func (b *Binding) String() string {
	return fmt.Sprintf("<binding '%s' = %v>", b.name, b.Value)
}

// Int returns the value of a binding as an integer, if possible.
func (b *Binding) Int() (int64, bool) {
	switch v := b.Value.(type) {
	case int64:
		return v, true
	case *big.Int:
		return v.Int64(), v.IsInt64()
	case rational.Rat:
		if v.IsInt() {
			num := v.Num()
			return num.Int64(), num.IsInt64()
		}
	}
	return 0, false
}

// === Symbol Tables =========================================================

// SymbolTable is a symbol table to store bindings (map-like semantics).
type SymbolTable struct {
	Table map[string]*Binding
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		Table: make(map[string]*Binding),
	}
}

// Resolve checks for a binding in the symbol table.
// Returns a binding or nil.
func (t *SymbolTable) Resolve(name string) *Binding {
	return t.Table[name]
}

// Define creates a new binding to store into the symbol table.
// The name may not be empty.
// Overwrites an existing binding with this name, if any.
// Returns the new binding and the previously stored binding (or nil).
func (t *SymbolTable) Define(name string) (*Binding, *Binding) {
	if len(name) == 0 {
		return nil, nil
	}
	b := NewBinding(name)
	old := t.Table[name]
	t.Table[name] = b
	return b, old
}

// Size counts the bindings in a symbol table.
func (t *SymbolTable) Size() int {
	return len(t.Table)
}

// Each iterates over each binding in the table, executing a mapper function.
func (t *SymbolTable) Each(mapper func(string, *Binding)) {
	for k, v := range t.Table {
		mapper(k, v)
	}
}
