package encoder

import (
	"fmt"

	"github.com/Priisciila/Montador-myRV32I/parser"
)

// encodeUType packs lui/auipc: the operand is the raw 20-bit value placed
// directly into the word's high bits, not a 32-bit value to be split
// (spec §5.5, §9): imm[31:12] rd[11:7] opcode[6:0].
func encodeUType(inst *parser.Instruction, opcode uint32) (uint32, error) {
	rd, err := reg(inst, inst.Operands[0])
	if err != nil {
		return 0, err
	}
	imm, err := signedImm(inst, inst.Operands[1], 20)
	if err != nil {
		return 0, err
	}

	word := opcode
	word |= rd << 7
	word |= (uint32(imm) & 0xFFFFF) << 12
	return word, nil
}

// encodeJType packs jal. The 21-bit signed PC-relative offset (bit 0
// implicitly zero) is scattered across four non-contiguous fields
// (spec §5.6, correcting the same REDESIGN FLAG as B-type):
// imm[20] imm[10:1] imm[11] imm[19:12] rd[11:7] opcode[6:0].
func encodeJType(inst *parser.Instruction, opcode uint32, symbols *parser.SymbolTable) (uint32, error) {
	rd, err := reg(inst, inst.Operands[0])
	if err != nil {
		return 0, err
	}

	target, err := branchTarget(inst, inst.Operands[1], symbols)
	if err != nil {
		return 0, err
	}
	offset := int64(int32(target) - int32(inst.Address))
	if offset%2 != 0 {
		return 0, fmt.Errorf("%s: jump offset %d is not even", inst.Pos, offset)
	}
	const lo, hi = -1048576, 1048574
	if offset < lo || offset > hi {
		return 0, fmt.Errorf("%s: jump offset %d out of range [%d, %d]", inst.Pos, offset, lo, hi)
	}
	uoff := uint32(offset)

	word := opcode
	word |= rd << 7
	word |= ((uoff >> 12) & 0xFF) << 12
	word |= ((uoff >> 11) & 0x1) << 20
	word |= ((uoff >> 1) & 0x3FF) << 21
	word |= ((uoff >> 20) & 0x1) << 31
	return word, nil
}
