// Package tools holds post-assembly analyses that are advisory rather
// than fatal: lint warnings and canonical source formatting
// (SPEC_FULL.md Domain Stack supplements).
package tools

import (
	"fmt"
	"strconv"

	"github.com/Priisciila/Montador-myRV32I/parser"
)

// LintLevel distinguishes advisory severities.
type LintLevel int

const (
	LintWarning LintLevel = iota
	LintInfo
)

// LintIssue is a single non-fatal observation about an assembled program.
type LintIssue struct {
	Pos     parser.Position
	Level   LintLevel
	Message string
}

// LintOptions toggles individual checks, mirroring config.LintConfig.
type LintOptions struct {
	WarnUnusedLabels    bool
	WarnFallthroughRisk bool
}

// Lint runs the enabled checks over an assembled program and returns every
// issue found; it never mutates the program and never fails the build.
func Lint(program *parser.Program, opts LintOptions) []LintIssue {
	var issues []LintIssue

	if opts.WarnUnusedLabels {
		issues = append(issues, unusedLabels(program)...)
	}
	if opts.WarnFallthroughRisk {
		issues = append(issues, fallthroughRisks(program)...)
	}
	issues = append(issues, outOfRangeLiterals(program)...)

	return issues
}

// unusedLabels reports every defined symbol that no operand of any
// instruction ever names.
func unusedLabels(program *parser.Program) []LintIssue {
	referenced := make(map[string]bool)
	for _, inst := range program.Instructions {
		for _, op := range inst.Operands {
			referenced[op] = true
		}
	}

	var issues []LintIssue
	for name := range program.Symbols.All() {
		if !referenced[name] {
			issues = append(issues, LintIssue{
				Level:   LintWarning,
				Message: fmt.Sprintf("label %q is defined but never referenced", name),
			})
		}
	}
	return issues
}

// fallthroughRisks flags a conditional branch immediately followed by an
// unconditional jal to a different target, a pattern that usually signals
// an inverted condition in hand-written assembly.
func fallthroughRisks(program *parser.Program) []LintIssue {
	var issues []LintIssue
	insts := program.Instructions
	for i := 0; i+1 < len(insts); i++ {
		cur := insts[i]
		next := insts[i+1]
		if !isBranch(cur.Mnemonic) || next.Mnemonic != "jal" {
			continue
		}
		if len(cur.Operands) > 0 && len(next.Operands) > 0 &&
			cur.Operands[len(cur.Operands)-1] == next.Operands[len(next.Operands)-1] {
			continue
		}
		issues = append(issues, LintIssue{
			Pos:     cur.Pos,
			Level:   LintInfo,
			Message: fmt.Sprintf("branch at %s immediately falls through to an unconditional jump; verify the condition is intended", cur.Pos),
		})
	}
	return issues
}

func isBranch(mnemonic string) bool {
	switch mnemonic {
	case "beq", "bne", "blt", "bge", "bltu", "bgeu":
		return true
	default:
		return false
	}
}

// outOfRangeLiterals flags every li pseudo-instruction (expanded to
// addi rd, zero, imm by the first pass) whose immediate falls outside the
// 12-bit range addi can directly represent.
func outOfRangeLiterals(program *parser.Program) []LintIssue {
	var issues []LintIssue
	for _, inst := range program.Instructions {
		if inst.OriginalMnemonic != "li" {
			continue
		}
		imm := inst.Operands[len(inst.Operands)-1]
		if UnreferencedLiteral(imm) {
			issues = append(issues, LintIssue{
				Pos:     inst.Pos,
				Level:   LintWarning,
				Message: fmt.Sprintf("li at %s loads %s, outside the 12-bit range addi can represent directly", inst.Pos, imm),
			})
		}
	}
	return issues
}

// UnreferencedLiteral reports whether an li pseudo-instruction's immediate
// operand is a decimal integer outside the signed 12-bit range
// [-2048, 2047] that addi's immediate field holds after expansion. A value
// that does not parse as an integer is not reported.
func UnreferencedLiteral(value string) bool {
	v, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return false
	}
	return v < -2048 || v > 2047
}
