// Package assembler sequences the first pass, validator, encoder, and
// emitter into the single assemble operation the CLI front-end drives
// (spec §4.1, §6). It exists as its own package, separate from parser and
// encoder, so that it can depend on both without creating an import cycle.
package assembler

import (
	"fmt"
	"io"
	"os"

	"github.com/Priisciila/Montador-myRV32I/emitter"
	"github.com/Priisciila/Montador-myRV32I/encoder"
	"github.com/Priisciila/Montador-myRV32I/parser"
)

// Options configures a single assemble run.
type Options struct {
	InputPath             string
	OutputPath            string
	StrictDuplicateLabels bool
}

// EncodedInstruction pairs a parsed instruction with its encoded word and
// little-endian bytes, the shape the CLI's debug dump needs (spec §6).
type EncodedInstruction struct {
	Index int
	Inst  *parser.Instruction
	Word  uint32
	Bytes [4]byte
}

// Result carries everything the CLI front-end needs to report success or
// drive a debug dump: the parsed program, its symbol table, and the
// encoded form of every instruction in source order.
type Result struct {
	Program      *parser.Program
	Instructions []EncodedInstruction
}

// Assemble runs the full pipeline: first pass, validation, encoding, and
// emission. It aborts before writing any output if the first pass or the
// validator reports errors (spec §7: "fatal errors abort before any output
// file is written").
func Assemble(opts Options) (*Result, *parser.ErrorList, error) {
	in, err := os.Open(opts.InputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	program, errs := parser.FirstPass(in, opts.InputPath, opts.StrictDuplicateLabels)
	if errs.HasErrors() {
		return nil, errs, nil
	}

	validationErrs := parser.Validate(program.Instructions, program.Symbols)
	if validationErrs.HasErrors() {
		return nil, validationErrs, nil
	}

	result := &Result{Program: program}

	out, err := os.Create(opts.OutputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()

	if err := encodeAndEmit(program, out, result); err != nil {
		return nil, nil, err
	}

	return result, nil, nil
}

func encodeAndEmit(program *parser.Program, out io.Writer, result *Result) error {
	em := emitter.New(out)
	for i, inst := range program.Instructions {
		word, err := encoder.Encode(inst, program.Symbols)
		if err != nil {
			return fmt.Errorf("encoding instruction %d: %w", i, err)
		}
		if err := em.WriteWord(word); err != nil {
			return fmt.Errorf("writing instruction %d: %w", i, err)
		}
		result.Instructions = append(result.Instructions, EncodedInstruction{
			Index: i,
			Inst:  inst,
			Word:  word,
			Bytes: emitter.SplitLE(word),
		})
	}
	return em.Flush()
}
