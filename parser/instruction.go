package parser

import "strings"

// Instruction is a parsed source line (spec §3). Operand strings are kept
// verbatim until encoding; a memory-access operand of the form imm(reg) is
// kept as one string and decomposed inside the encoder/validator.
type Instruction struct {
	Label    string
	Mnemonic string
	Operands []string
	Pos      Position
	RawLine  string
	Address  uint32 // filled in by the first pass; index*4 (spec §3)

	// OriginalMnemonic is the pseudo-mnemonic this instruction was expanded
	// from (e.g. "li"), empty if the source already named a real
	// instruction. Kept around for diagnostics that care about the
	// surface form, such as the li-out-of-range lint check.
	OriginalMnemonic string
}

// Empty reports whether the line carried neither a label nor a mnemonic.
func (i *Instruction) Empty() bool {
	return i.Label == "" && i.Mnemonic == ""
}

// ParseLine normalizes one raw source line into a tentative Instruction
// Record, per the Line Parser algorithm in spec §4.3.
func ParseLine(raw string, pos Position) *Instruction {
	inst := &Instruction{Pos: pos, RawLine: raw}

	line := raw
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		line = line[:idx]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return inst
	}

	if idx := strings.IndexByte(line, ':'); idx >= 0 {
		inst.Label = strings.TrimSpace(line[:idx])
		line = strings.TrimSpace(line[idx+1:])
	}
	if line == "" {
		return inst
	}

	idx := strings.IndexAny(line, " \t")
	var mnemonic, rest string
	if idx < 0 {
		mnemonic = line
	} else {
		mnemonic = line[:idx]
		rest = strings.TrimSpace(line[idx+1:])
	}
	inst.Mnemonic = mnemonic

	if rest != "" {
		for _, part := range strings.Split(rest, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				inst.Operands = append(inst.Operands, part)
			}
		}
	}

	return inst
}

// SplitMemOperand decomposes an imm(reg) operand into its immediate and
// register substrings. ok is false if either parenthesis is missing.
func SplitMemOperand(s string) (imm string, reg string, ok bool) {
	open := strings.IndexByte(s, '(')
	close := strings.IndexByte(s, ')')
	if open < 0 || close < 0 || close < open {
		return "", "", false
	}
	imm = strings.TrimSpace(s[:open])
	reg = strings.TrimSpace(s[open+1 : close])
	return imm, reg, true
}
