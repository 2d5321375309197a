package tools

import (
	"strings"
	"testing"

	"github.com/Priisciila/Montador-myRV32I/parser"
)

func parseProgram(t *testing.T, src string) *parser.Program {
	t.Helper()
	program, errs := parser.FirstPass(strings.NewReader(src), "in.asm", true)
	if errs.HasErrors() {
		t.Fatalf("FirstPass: unexpected errors: %v", errs.Error())
	}
	return program
}

func TestLintUnusedLabel(t *testing.T) {
	program := parseProgram(t, "unused:\n    addi x1, x0, 1\n")
	issues := Lint(program, LintOptions{WarnUnusedLabels: true})
	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1", len(issues))
	}
	if !strings.Contains(issues[0].Message, "unused") {
		t.Errorf("message = %q, want it to mention the label", issues[0].Message)
	}
}

func TestLintReferencedLabelNotFlagged(t *testing.T) {
	program := parseProgram(t, "loop:\n    beq x1, x0, loop\n")
	issues := Lint(program, LintOptions{WarnUnusedLabels: true})
	if len(issues) != 0 {
		t.Errorf("got %d issues, want 0: %v", len(issues), issues)
	}
}

func TestLintDisabledChecksProduceNoIssues(t *testing.T) {
	program := parseProgram(t, "unused:\n    addi x1, x0, 1\n")
	issues := Lint(program, LintOptions{})
	if len(issues) != 0 {
		t.Errorf("got %d issues with all checks disabled, want 0", len(issues))
	}
}

func TestLintFlagsOutOfRangeLiLiteral(t *testing.T) {
	program := parseProgram(t, "    li x1, 5000\n")
	issues := Lint(program, LintOptions{})
	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1", len(issues))
	}
	if !strings.Contains(issues[0].Message, "5000") {
		t.Errorf("message = %q, want it to mention the literal", issues[0].Message)
	}
}

func TestLintDoesNotFlagInRangeLiLiteral(t *testing.T) {
	program := parseProgram(t, "    li x1, 100\n")
	issues := Lint(program, LintOptions{})
	if len(issues) != 0 {
		t.Errorf("got %d issues, want 0: %v", len(issues), issues)
	}
}

func TestLintDoesNotFlagPlainAddiAsLi(t *testing.T) {
	program := parseProgram(t, "    addi x1, x0, 5000\n")
	issues := Lint(program, LintOptions{})
	if len(issues) != 0 {
		t.Errorf("got %d issues, want 0 (not a li expansion): %v", len(issues), issues)
	}
}

func TestUnreferencedLiteralRange(t *testing.T) {
	if UnreferencedLiteral("2047") {
		t.Error("2047 should be in range")
	}
	if !UnreferencedLiteral("2048") {
		t.Error("2048 should be out of range")
	}
	if !UnreferencedLiteral("-2049") {
		t.Error("-2049 should be out of range")
	}
}
