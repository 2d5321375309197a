package parser

import (
	"bufio"
	"io"
)

// Program is the output of the first pass: the ordered Instruction List and
// the Symbol Table built alongside it (spec §3).
type Program struct {
	Instructions []*Instruction
	Symbols      *SymbolTable
}

// FirstPass walks the source once, assigning addresses and populating the
// symbol table (spec §4.5). Pseudo-instructions are expanded immediately
// after parsing, before being appended to the Instruction List, so every
// entry in the returned Program is already canonical. Duplicate-label
// errors are accumulated rather than stopping the scan, so the caller sees
// every problem in the source, not just the first.
func FirstPass(r io.Reader, filename string, strictDuplicateLabels bool) (*Program, *ErrorList) {
	program := &Program{
		Symbols: NewSymbolTable(strictDuplicateLabels),
	}
	errs := &ErrorList{}

	var address uint32
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		pos := Position{File: filename, Line: lineNum}
		inst := ParseLine(scanner.Text(), pos)

		if inst.Label != "" {
			if err := program.Symbols.Define(inst.Label, address, pos); err != nil {
				errs.AddError(NewError(pos, ErrDuplicateLabel, err.Error()))
			}
		}

		if inst.Mnemonic == "" {
			continue
		}

		expanded := ExpandPseudo(inst)
		expanded.Address = address
		program.Instructions = append(program.Instructions, expanded)
		address += 4
	}

	if err := scanner.Err(); err != nil {
		errs.AddError(NewError(Position{File: filename, Line: lineNum}, ErrIO, err.Error()))
	}

	return program, errs
}
