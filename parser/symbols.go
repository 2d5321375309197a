package parser

import "fmt"

// SymbolTable maps label identifiers to byte addresses (spec §3). It is
// populated during the first pass and read-only during the second.
type SymbolTable struct {
	addrs map[string]uint32
	pos   map[string]Position
	// Strict rejects a re-binding of an already-defined label as a fatal
	// error. When false, the last definition wins (SPEC_FULL.md Open
	// Question resolution, matching the original C++'s unguarded overwrite).
	Strict bool
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable(strict bool) *SymbolTable {
	return &SymbolTable{
		addrs:  make(map[string]uint32),
		pos:    make(map[string]Position),
		Strict: strict,
	}
}

// Define binds name to address. A re-binding of an already-defined label is
// a fatal error when Strict is set (spec §4.5).
func (st *SymbolTable) Define(name string, address uint32, pos Position) error {
	if prior, exists := st.pos[name]; exists && st.Strict {
		return fmt.Errorf("label %q already defined at %s", name, prior)
	}
	st.addrs[name] = address
	st.pos[name] = pos
	return nil
}

// Get returns the address bound to name, if any.
func (st *SymbolTable) Get(name string) (uint32, bool) {
	addr, ok := st.addrs[name]
	return addr, ok
}

// All returns every defined symbol, keyed by name.
func (st *SymbolTable) All() map[string]uint32 {
	return st.addrs
}
