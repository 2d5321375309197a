package encoder

import (
	"fmt"

	"github.com/Priisciila/Montador-myRV32I/parser"
)

// encodeSType packs an S-type store, splitting the 12-bit immediate across
// two non-contiguous fields (spec §5.3):
// imm[11:5] rs2[24:20] rs1[19:15] funct3[14:12] imm[4:0] opcode[6:0].
func encodeSType(inst *parser.Instruction, opcode uint32) (uint32, error) {
	rs2, err := reg(inst, inst.Operands[0])
	if err != nil {
		return 0, err
	}
	immTok, regTok, ok := parser.SplitMemOperand(inst.Operands[1])
	if !ok {
		return 0, fmt.Errorf("%s: malformed memory operand %q", inst.Pos, inst.Operands[1])
	}
	rs1, err := reg(inst, regTok)
	if err != nil {
		return 0, err
	}
	imm, err := signedImm(inst, immTok, 12)
	if err != nil {
		return 0, err
	}
	uimm := uint32(imm) & 0xFFF

	funct3 := funct3Table[inst.Mnemonic]
	word := opcode
	word |= (uimm & 0x1F) << 7
	word |= funct3 << 12
	word |= rs1 << 15
	word |= rs2 << 20
	word |= ((uimm >> 5) & 0x7F) << 25
	return word, nil
}
