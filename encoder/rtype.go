package encoder

import "github.com/Priisciila/Montador-myRV32I/parser"

// encodeRType packs rd, funct3, rs1, rs2, funct7 into an R-type word
// (spec §5.1): funct7[31:25] rs2[24:20] rs1[19:15] funct3[14:12] rd[11:7] opcode[6:0].
func encodeRType(inst *parser.Instruction, opcode uint32) (uint32, error) {
	rd, err := reg(inst, inst.Operands[0])
	if err != nil {
		return 0, err
	}
	rs1, err := reg(inst, inst.Operands[1])
	if err != nil {
		return 0, err
	}
	rs2, err := reg(inst, inst.Operands[2])
	if err != nil {
		return 0, err
	}

	funct3 := funct3Table[inst.Mnemonic]
	funct7 := funct7Table[inst.Mnemonic]

	word := opcode
	word |= rd << 7
	word |= funct3 << 12
	word |= rs1 << 15
	word |= rs2 << 20
	word |= funct7 << 25
	return word, nil
}
