// Package encoder turns a validated parser.Instruction into its 32-bit
// RISC-V RV32I/M machine word (spec §5). Each instruction form has its own
// file; this file holds the dispatch table and the helpers shared across
// forms (register/immediate parsing, funct3/funct7 lookup).
package encoder

import (
	"fmt"
	"strconv"

	"github.com/Priisciila/Montador-myRV32I/parser"
)

// Encode dispatches a single instruction to its form-specific encoder.
// B-type and J-type use inst.Address, the instruction's own byte address,
// to compute a PC-relative offset against a label target.
func Encode(inst *parser.Instruction, symbols *parser.SymbolTable) (uint32, error) {
	entry, ok := parser.LookupOpcode(inst.Mnemonic)
	if !ok {
		return 0, fmt.Errorf("%s: unknown mnemonic %q", inst.Pos, inst.Mnemonic)
	}

	switch entry.Form {
	case parser.FormR:
		return encodeRType(inst, entry.Opcode)
	case parser.FormIArith:
		return encodeIArith(inst, entry.Opcode)
	case parser.FormILoad:
		return encodeILoad(inst, entry.Opcode)
	case parser.FormIJalr:
		return encodeIJalr(inst, entry.Opcode)
	case parser.FormS:
		return encodeSType(inst, entry.Opcode)
	case parser.FormB:
		return encodeBType(inst, entry.Opcode, symbols)
	case parser.FormU:
		return encodeUType(inst, entry.Opcode)
	case parser.FormJ:
		return encodeJType(inst, entry.Opcode, symbols)
	default:
		return 0, fmt.Errorf("%s: unhandled instruction form", inst.Pos)
	}
}

func reg(inst *parser.Instruction, operand string) (uint32, error) {
	r := parser.ResolveRegister(operand)
	if r == parser.UnresolvedRegister {
		return 0, fmt.Errorf("%s: unknown register %q", inst.Pos, operand)
	}
	return uint32(r), nil
}

// signedImm parses a decimal immediate and checks it fits within bits
// (two's complement, inclusive of the sign bit).
func signedImm(inst *parser.Instruction, operand string, bits uint) (int64, error) {
	v, err := strconv.ParseInt(operand, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: malformed immediate %q", inst.Pos, operand)
	}
	lo := -(int64(1) << (bits - 1))
	hi := (int64(1) << (bits - 1)) - 1
	if v < lo || v > hi {
		return 0, fmt.Errorf("%s: immediate %d out of range [%d, %d]", inst.Pos, v, lo, hi)
	}
	return v, nil
}

// branchTarget resolves a B/J instruction's final operand to an absolute
// byte address, accepting either a literal signed offset already relative
// to the instruction (uncommon, but not excluded by the grammar) or a
// label defined in the symbol table.
func branchTarget(inst *parser.Instruction, operand string, symbols *parser.SymbolTable) (uint32, error) {
	if addr, ok := symbols.Get(operand); ok {
		return addr, nil
	}
	if v, err := strconv.ParseInt(operand, 10, 64); err == nil {
		return uint32(int64(inst.Address) + v), nil
	}
	return 0, fmt.Errorf("%s: undefined symbol %q", inst.Pos, operand)
}

// funct3Table and funct7Table hold the funct3/funct7 bits that disambiguate
// mnemonics sharing one opcode (RV32I/M §2.4, §2.6, M extension §7).
var funct3Table = map[string]uint32{
	"add": 0b000, "sub": 0b000, "sll": 0b001, "slt": 0b010, "sltu": 0b011,
	"xor": 0b100, "srl": 0b101, "sra": 0b101, "or": 0b110, "and": 0b111,
	"mul": 0b000, "mulh": 0b001, "mulhsu": 0b010, "mulhu": 0b011,
	"div": 0b100, "divu": 0b101, "rem": 0b110, "remu": 0b111,

	"addi": 0b000, "slti": 0b010, "sltiu": 0b011, "xori": 0b100,
	"ori": 0b110, "andi": 0b111, "slli": 0b001, "srli": 0b101, "srai": 0b101,

	"lb": 0b000, "lh": 0b001, "lw": 0b010, "lbu": 0b100, "lhu": 0b101,

	"jalr": 0b000,

	"sb": 0b000, "sh": 0b001, "sw": 0b010,

	"beq": 0b000, "bne": 0b001, "blt": 0b100, "bge": 0b101, "bltu": 0b110, "bgeu": 0b111,
}

var funct7Table = map[string]uint32{
	"add": 0b0000000, "sub": 0b0100000, "sll": 0b0000000, "slt": 0b0000000,
	"sltu": 0b0000000, "xor": 0b0000000, "srl": 0b0000000, "sra": 0b0100000,
	"or": 0b0000000, "and": 0b0000000,
	"mul": 0b0000001, "mulh": 0b0000001, "mulhsu": 0b0000001, "mulhu": 0b0000001,
	"div": 0b0000001, "divu": 0b0000001, "rem": 0b0000001, "remu": 0b0000001,
	"srai": 0b0100000,
}
