package tools

import (
	"fmt"
	"strings"

	"github.com/Priisciila/Montador-myRV32I/parser"
)

// FormatStyle selects how operands are rendered back to text.
type FormatStyle int

const (
	// StyleAligned pads mnemonics to a common column width.
	StyleAligned FormatStyle = iota
	// StyleCompact emits one space between every token.
	StyleCompact
)

// FormatOptions configures Format's rendering.
type FormatOptions struct {
	Style         FormatStyle
	MnemonicWidth int
}

// Format renders a parsed program's instructions back into canonical
// source text, one line per instruction, with labels attached to the
// first instruction at their address.
func Format(program *parser.Program, opts FormatOptions) string {
	labelsByAddr := make(map[uint32][]string)
	for name, addr := range program.Symbols.All() {
		labelsByAddr[addr] = append(labelsByAddr[addr], name)
	}

	var sb strings.Builder
	for _, inst := range program.Instructions {
		for _, label := range labelsByAddr[inst.Address] {
			sb.WriteString(label)
			sb.WriteString(":\n")
		}
		sb.WriteString(formatInstruction(inst, opts))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func formatInstruction(inst *parser.Instruction, opts FormatOptions) string {
	operands := strings.Join(inst.Operands, ", ")

	if opts.Style == StyleCompact || opts.MnemonicWidth == 0 {
		if operands == "" {
			return inst.Mnemonic
		}
		return inst.Mnemonic + " " + operands
	}

	padded := fmt.Sprintf("%-*s", opts.MnemonicWidth, inst.Mnemonic)
	if operands == "" {
		return strings.TrimRight(padded, " ")
	}
	return padded + operands
}
