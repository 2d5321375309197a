package encoder

import (
	"fmt"

	"github.com/Priisciila/Montador-myRV32I/parser"
)

var shiftMnemonics = map[string]bool{"slli": true, "srli": true, "srai": true}

// encodeIArith packs rd, rs1, and a 12-bit immediate into an I-type word
// (spec §5.2): imm[11:0] rs1[19:15] funct3[14:12] rd[11:7] opcode[6:0].
// slli/srli/srai instead carry a 5-bit shift amount plus the funct7 bits
// that distinguish srai from srli in the top of the immediate field.
func encodeIArith(inst *parser.Instruction, opcode uint32) (uint32, error) {
	rd, err := reg(inst, inst.Operands[0])
	if err != nil {
		return 0, err
	}
	rs1, err := reg(inst, inst.Operands[1])
	if err != nil {
		return 0, err
	}

	funct3 := funct3Table[inst.Mnemonic]
	word := opcode
	word |= rd << 7
	word |= funct3 << 12
	word |= rs1 << 15

	if shiftMnemonics[inst.Mnemonic] {
		shamt, err := signedImm(inst, inst.Operands[2], 6)
		if err != nil {
			return 0, err
		}
		if shamt < 0 || shamt > 31 {
			return 0, fmt.Errorf("%s: shift amount %d out of range [0, 31]", inst.Pos, shamt)
		}
		word |= uint32(shamt) << 20
		word |= funct7Table[inst.Mnemonic] << 25
		return word, nil
	}

	imm, err := signedImm(inst, inst.Operands[2], 12)
	if err != nil {
		return 0, err
	}
	word |= (uint32(imm) & 0xFFF) << 20
	return word, nil
}

// encodeILoad packs an I-type load, whose second operand is imm(rs1).
func encodeILoad(inst *parser.Instruction, opcode uint32) (uint32, error) {
	rd, err := reg(inst, inst.Operands[0])
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

	funct3 := funct3Table[inst.Mnemonic]
	word := opcode
	word |= rd << 7
	word |= funct3 << 12
	word |= rs1 << 15
	word |= (uint32(imm) & 0xFFF) << 20
	return word, nil
}

// encodeIJalr packs jalr rd, rs1, imm. It accepts all three forms spec §4.7
// allows: "rd, imm(rs1)" (2 operands, preferred), "rd, rs1" (2 operands,
// implicit imm=0), and "rd, rs1, imm" (3 operands).
func encodeIJalr(inst *parser.Instruction, opcode uint32) (uint32, error) {
	rd, err := reg(inst, inst.Operands[0])
	if err != nil {
		return 0, err
	}

	var rs1Tok, immTok string
	switch {
	case len(inst.Operands) == 3:
		rs1Tok, immTok = inst.Operands[1], inst.Operands[2]
	default:
		if immTok2, reg2, ok := parser.SplitMemOperand(inst.Operands[1]); ok {
			immTok, rs1Tok = immTok2, reg2
		} else if parser.ResolveRegister(inst.Operands[1]) != parser.UnresolvedRegister {
			rs1Tok, immTok = inst.Operands[1], "0"
		} else {
			return 0, fmt.Errorf("%s: malformed jalr operand %q", inst.Pos, inst.Operands[1])
		}
	}

	rs1, err := reg(inst, rs1Tok)
	if err != nil {
		return 0, err
	}
	imm, err := signedImm(inst, immTok, 12)
	if err != nil {
		return 0, err
	}

	word := opcode
	word |= rd << 7
	word |= funct3Table["jalr"] << 12
	word |= rs1 << 15
	word |= (uint32(imm) & 0xFFF) << 20
	return word, nil
}
