package parser

import (
	"fmt"
	"strconv"
)

// Validate checks every instruction against the Opcode Table, operand
// counts, register validity, and label existence (spec §4.6). It
// accumulates every error found rather than stopping at the first, so the
// orchestrator can report everything in one run.
func Validate(instructions []*Instruction, symbols *SymbolTable) *ErrorList {
	errs := &ErrorList{}

	for _, inst := range instructions {
		entry, ok := LookupOpcode(inst.Mnemonic)
		if !ok {
			errs.AddError(NewError(inst.Pos, ErrUnknownMnemonic,
				fmt.Sprintf("unknown mnemonic %q", inst.Mnemonic)))
			continue
		}

		validateOperandCount(inst, entry.Form, errs)
		validateRegisters(inst, entry.Form, errs)
		validateSymbolOperand(inst, entry.Form, symbols, errs)
	}

	return errs
}

func validateOperandCount(inst *Instruction, form Form, errs *ErrorList) {
	if form == FormIJalr {
		if len(inst.Operands) != 2 && len(inst.Operands) != 3 {
			errs.AddError(NewError(inst.Pos, ErrOperandCount,
				fmt.Sprintf("jalr requires 2 or 3 operands, got %d", len(inst.Operands))))
		}
		return
	}

	min := MinOperands(form)
	if len(inst.Operands) < min {
		errs.AddError(NewError(inst.Pos, ErrOperandCount,
			fmt.Sprintf("%s requires at least %d operand(s), got %d", inst.Mnemonic, min, len(inst.Operands))))
	}
}

// validateRegisters checks every operand that must resolve to a register,
// extracting the register embedded in imm(rs1) for S-type and I-load forms.
func validateRegisters(inst *Instruction, form Form, errs *ErrorList) {
	checkReg := func(tok string) {
		if ResolveRegister(tok) == UnresolvedRegister {
			errs.AddError(NewError(inst.Pos, ErrUnknownRegister,
				fmt.Sprintf("unknown register %q", tok)))
		}
	}

	switch form {
	case FormR:
		for _, op := range firstN(inst.Operands, 3) {
			checkReg(op)
		}
	case FormIArith:
		for _, op := range firstN(inst.Operands, 2) {
			checkReg(op)
		}
	case FormILoad:
		if len(inst.Operands) >= 2 {
			checkReg(inst.Operands[0])
			checkMemOperand(inst, inst.Operands[1], errs)
		}
	case FormIJalr:
		if len(inst.Operands) >= 1 {
			checkReg(inst.Operands[0])
		}
		if len(inst.Operands) >= 2 {
			if imm, reg, ok := SplitMemOperand(inst.Operands[1]); ok {
				_ = imm
				checkReg(reg)
			} else {
				checkReg(inst.Operands[1])
			}
		}
	case FormS:
		if len(inst.Operands) >= 1 {
			checkReg(inst.Operands[0])
		}
		if len(inst.Operands) >= 2 {
			checkMemOperand(inst, inst.Operands[1], errs)
		}
	case FormB:
		for _, op := range firstN(inst.Operands, 2) {
			checkReg(op)
		}
	case FormU, FormJ:
		if len(inst.Operands) >= 1 {
			checkReg(inst.Operands[0])
		}
	}
}

func checkMemOperand(inst *Instruction, operand string, errs *ErrorList) {
	_, reg, ok := SplitMemOperand(operand)
	if !ok {
		errs.AddError(NewError(inst.Pos, ErrMalformedMemOperand,
			fmt.Sprintf("malformed memory operand %q, expected imm(reg)", operand)))
		return
	}
	if ResolveRegister(reg) == UnresolvedRegister {
		errs.AddError(NewError(inst.Pos, ErrUnknownRegister,
			fmt.Sprintf("unknown register %q in %q", reg, operand)))
	}
}

// validateSymbolOperand checks that the final B/J operand is either a
// parseable signed integer or a label present in the symbol table.
func validateSymbolOperand(inst *Instruction, form Form, symbols *SymbolTable, errs *ErrorList) {
	if form != FormB && form != FormJ {
		return
	}
	if len(inst.Operands) == 0 {
		return
	}
	target := inst.Operands[len(inst.Operands)-1]
	if _, err := strconv.ParseInt(target, 10, 64); err == nil {
		return
	}
	if _, ok := symbols.Get(target); ok {
		return
	}
	errs.AddError(NewError(inst.Pos, ErrUnknownSymbol,
		fmt.Sprintf("undefined symbol %q", target)))
}

func firstN(s []string, n int) []string {
	if len(s) < n {
		return s
	}
	return s[:n]
}
