package parser

import (
	"strings"
	"testing"
)

const examplePassSource = `start:
    addi x1, x0, 5
loop:
    beq x1, x0, done
    addi x1, x1, -1
    j loop
done:
    jalr x0, ra, 0
`

func TestFirstPassAssignsAddressesAndSymbols(t *testing.T) {
	program, errs := FirstPass(strings.NewReader(examplePassSource), "in.asm", true)
	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs.Error())
	}

	if len(program.Instructions) != 5 {
		t.Fatalf("got %d instructions, want 5 (j must expand to jal, not add an instruction)", len(program.Instructions))
	}

	wantAddrs := []uint32{0, 4, 8, 12, 16}
	for i, inst := range program.Instructions {
		if inst.Address != wantAddrs[i] {
			t.Errorf("instruction %d address = %d, want %d", i, inst.Address, wantAddrs[i])
		}
	}

	if addr, ok := program.Symbols.Get("start"); !ok || addr != 0 {
		t.Errorf("start = %d, %v, want 0, true", addr, ok)
	}
	if addr, ok := program.Symbols.Get("loop"); !ok || addr != 4 {
		t.Errorf("loop = %d, %v, want 4, true", addr, ok)
	}
	if addr, ok := program.Symbols.Get("done"); !ok || addr != 16 {
		t.Errorf("done = %d, %v, want 16, true", addr, ok)
	}
}

func TestFirstPassExpandsJToJal(t *testing.T) {
	program, errs := FirstPass(strings.NewReader(examplePassSource), "in.asm", true)
	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs.Error())
	}

	jInst := program.Instructions[3]
	if jInst.Mnemonic != "jal" {
		t.Fatalf("expanded j mnemonic = %q, want jal", jInst.Mnemonic)
	}
	if len(jInst.Operands) != 2 || jInst.Operands[0] != "zero" || jInst.Operands[1] != "loop" {
		t.Errorf("expanded j operands = %v, want [zero loop]", jInst.Operands)
	}
}

func TestFirstPassReportsDuplicateLabelsStrict(t *testing.T) {
	src := "loop: addi x1, x0, 1\nloop: addi x2, x0, 2\n"
	_, errs := FirstPass(strings.NewReader(src), "in.asm", true)
	if !errs.HasErrors() {
		t.Fatal("expected a duplicate-label error")
	}
}

func TestFirstPassSkipsBlankAndCommentOnlyLines(t *testing.T) {
	src := "\n# a comment\n   \naddi x1, x0, 1\n"
	program, errs := FirstPass(strings.NewReader(src), "in.asm", true)
	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs.Error())
	}
	if len(program.Instructions) != 1 {
		t.Fatalf("got %d instructions, want 1", len(program.Instructions))
	}
}
