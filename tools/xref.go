package tools

import (
	"sort"

	"github.com/Priisciila/Montador-myRV32I/parser"
)

// XrefEntry is every instruction address that references one label.
type XrefEntry struct {
	Label        string
	DefinedAt    uint32
	ReferencedBy []uint32
}

// Xref cross-references every defined label against the instructions whose
// final B/J operand names it, sorted by label for stable reporting.
func Xref(program *parser.Program) []XrefEntry {
	refs := make(map[string][]uint32)
	for _, inst := range program.Instructions {
		if len(inst.Operands) == 0 {
			continue
		}
		target := inst.Operands[len(inst.Operands)-1]
		if _, ok := program.Symbols.Get(target); ok {
			refs[target] = append(refs[target], inst.Address)
		}
	}

	names := make([]string, 0, len(program.Symbols.All()))
	for name := range program.Symbols.All() {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]XrefEntry, 0, len(names))
	for _, name := range names {
		addr, _ := program.Symbols.Get(name)
		entries = append(entries, XrefEntry{
			Label:        name,
			DefinedAt:    addr,
			ReferencedBy: refs[name],
		})
	}
	return entries
}
