// Command rv32asm assembles RV32I/M source into a little-endian MIF-style
// machine image (spec §6).
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Priisciila/Montador-myRV32I/assembler"
	"github.com/Priisciila/Montador-myRV32I/config"
	"github.com/Priisciila/Montador-myRV32I/tools"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("rv32asm", flag.ContinueOnError)
	output := fs.String("o", "", "output file path (default memoria.mif, or config assemble.default_output)")
	debug := fs.Bool("d", false, "dump per-instruction encoding detail and the symbol table")
	debugLong := fs.Bool("debug", false, "alias for -d")
	configPath := fs.String("config", "rv32asm.toml", "path to an optional TOML config file")
	dumpSymbols := fs.Bool("dump-symbols", false, "print the symbol table after assembly")
	lint := fs.Bool("lint", false, "run advisory lint checks after assembly")
	xref := fs.Bool("xref", false, "print a label cross-reference after assembly")
	verbose := fs.Bool("verbose", false, "print progress to stderr")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: rv32asm [-d] [-o path] [-config path] <input.asm> [output.mif]")
		return 2
	}

	inputPath := fs.Arg(0)
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rv32asm: loading config: %v\n", err)
		return 1
	}

	outputPath := cfg.Assemble.DefaultOutput
	if fs.NArg() >= 2 {
		outputPath = fs.Arg(1)
	}
	if *output != "" {
		outputPath = *output
	}

	if *verbose {
		fmt.Fprintf(os.Stderr, "rv32asm: assembling %s -> %s\n", inputPath, outputPath)
	}

	result, errs, err := assembler.Assemble(assembler.Options{
		InputPath:             inputPath,
		OutputPath:            outputPath,
		StrictDuplicateLabels: cfg.Assemble.StrictDuplicateLabels,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "rv32asm: %v\n", err)
		return 1
	}
	if errs != nil && errs.HasErrors() {
		fmt.Fprint(os.Stderr, errs.Error())
		return 1
	}

	if *debug || *debugLong {
		dumpDebug(result)
	}
	if *dumpSymbols {
		dumpSymbolTable(result)
	}
	if *lint {
		runLint(result, cfg)
	}
	if *xref {
		dumpXref(result)
	}

	return 0
}

func dumpDebug(result *assembler.Result) {
	for _, enc := range result.Instructions {
		fmt.Printf("%4d  %#06x  %-28s  %032b  ", enc.Index, enc.Inst.Address, rawOperands(enc), enc.Word)
		for _, b := range enc.Bytes {
			fmt.Printf("%08b ", b)
		}
		fmt.Println()
	}
	dumpSymbolTable(result)
}

func rawOperands(enc assembler.EncodedInstruction) string {
	text := enc.Inst.Mnemonic
	if len(enc.Inst.Operands) > 0 {
		text += " " + strings.Join(enc.Inst.Operands, ", ")
	}
	if enc.Inst.Label != "" {
		return enc.Inst.Label + ": " + text
	}
	return text
}

func dumpSymbolTable(result *assembler.Result) {
	names := make([]string, 0)
	all := result.Program.Symbols.All()
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("symbol table:")
	for _, name := range names {
		addr, _ := result.Program.Symbols.Get(name)
		fmt.Printf("  %-20s %#06x\n", name, addr)
	}
}

func dumpXref(result *assembler.Result) {
	fmt.Println("label cross-reference:")
	for _, entry := range tools.Xref(result.Program) {
		fmt.Printf("  %-20s %#06x  referenced by: %v\n", entry.Label, entry.DefinedAt, entry.ReferencedBy)
	}
}

func runLint(result *assembler.Result, cfg *config.Config) {
	issues := tools.Lint(result.Program, tools.LintOptions{
		WarnUnusedLabels:    cfg.Lint.WarnUnusedLabels,
		WarnFallthroughRisk: cfg.Lint.WarnFallthroughRisk,
	})
	for _, issue := range issues {
		fmt.Fprintf(os.Stderr, "lint: %s\n", issue.Message)
	}
}
