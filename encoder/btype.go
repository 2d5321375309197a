package encoder

import (
	"fmt"

	"github.com/Priisciila/Montador-myRV32I/parser"
)

// encodeBType packs a conditional branch. The 13-bit signed PC-relative
// offset (bit 0 implicitly zero) is scattered across four non-contiguous
// fields (spec §5.4, correcting the REDESIGN FLAG in the original source
// that pre-halved the offset before packing it):
// imm[12] imm[10:5] rs2 rs1 funct3 imm[4:1] imm[11] opcode.
func encodeBType(inst *parser.Instruction, opcode uint32, symbols *parser.SymbolTable) (uint32, error) {
	rs1, err := reg(inst, inst.Operands[0])
	if err != nil {
		return 0, err
	}
	rs2, err := reg(inst, inst.Operands[1])
	if err != nil {
		return 0, err
	}

	target, err := branchTarget(inst, inst.Operands[2], symbols)
	if err != nil {
		return 0, err
	}
	offset := int64(int32(target) - int32(inst.Address))
	if offset%2 != 0 {
		return 0, fmt.Errorf("%s: branch offset %d is not even", inst.Pos, offset)
	}
	const lo, hi = -4096, 4094
	if offset < lo || offset > hi {
		return 0, fmt.Errorf("%s: branch offset %d out of range [%d, %d]", inst.Pos, offset, lo, hi)
	}
	uoff := uint32(offset)

	funct3 := funct3Table[inst.Mnemonic]
	word := opcode
	word |= ((uoff >> 11) & 0x1) << 7
	word |= ((uoff >> 1) & 0xF) << 8
	word |= funct3 << 12
	word |= rs1 << 15
	word |= rs2 << 20
	word |= ((uoff >> 5) & 0x3F) << 25
	word |= ((uoff >> 12) & 0x1) << 31
	return word, nil
}
