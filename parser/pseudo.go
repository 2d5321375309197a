package parser

// ExpandPseudo rewrites a pseudo-mnemonic into its canonical single-instruction
// form (spec §4.4). Each rewrite preserves the 1:1 instruction-count
// invariant the first pass relies on for address assignment. Instructions
// that are not one of the recognized pseudo forms (including real
// instructions and malformed pseudo-instructions the validator will reject)
// are returned unchanged.
func ExpandPseudo(inst *Instruction) *Instruction {
	switch inst.Mnemonic {
	case "j":
		if len(inst.Operands) == 1 {
			return rewrite(inst, "jal", []string{"zero", inst.Operands[0]})
		}
	case "jr":
		if len(inst.Operands) == 1 {
			return rewrite(inst, "jalr", []string{"zero", inst.Operands[0], "0"})
		}
	case "mv":
		if len(inst.Operands) == 2 {
			return rewrite(inst, "addi", []string{inst.Operands[0], inst.Operands[1], "0"})
		}
	case "li":
		if len(inst.Operands) == 2 {
			return rewrite(inst, "addi", []string{inst.Operands[0], "zero", inst.Operands[1]})
		}
	case "nop":
		if len(inst.Operands) == 0 {
			return rewrite(inst, "addi", []string{"zero", "zero", "0"})
		}
	case "bgt":
		if len(inst.Operands) == 3 {
			return rewrite(inst, "blt", []string{inst.Operands[1], inst.Operands[0], inst.Operands[2]})
		}
	case "ble":
		if len(inst.Operands) == 3 {
			return rewrite(inst, "bge", []string{inst.Operands[1], inst.Operands[0], inst.Operands[2]})
		}
	}
	return inst
}

// rewrite returns a copy of inst with mnemonic and operands replaced,
// keeping the label, position and raw line of the original, and recording
// the pseudo-mnemonic it was expanded from.
func rewrite(inst *Instruction, mnemonic string, operands []string) *Instruction {
	out := *inst
	out.OriginalMnemonic = inst.Mnemonic
	out.Mnemonic = mnemonic
	out.Operands = operands
	return &out
}
