// Package config loads optional TOML configuration overriding the
// assembler's defaults (SPEC_FULL.md Ambient Stack: Configuration).
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config mirrors the [assemble], [diagnostics], and [lint] tables a
// project-level rv32asm.toml may declare.
type Config struct {
	Assemble    AssembleConfig    `toml:"assemble"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	Lint        LintConfig        `toml:"lint"`
}

type AssembleConfig struct {
	DefaultOutput         string `toml:"default_output"`
	StrictDuplicateLabels bool   `toml:"strict_duplicate_labels"`
}

type DiagnosticsConfig struct {
	ColorOutput  bool `toml:"color_output"`
	ContextLines int  `toml:"context_lines"`
}

type LintConfig struct {
	WarnUnusedLabels    bool `toml:"warn_unused_labels"`
	WarnFallthroughRisk bool `toml:"warn_fallthrough_risk"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Assemble: AssembleConfig{
			DefaultOutput:         "memoria.mif",
			StrictDuplicateLabels: true,
		},
		Diagnostics: DiagnosticsConfig{
			ColorOutput:  false,
			ContextLines: 1,
		},
		Lint: LintConfig{
			WarnUnusedLabels:    true,
			WarnFallthroughRisk: false,
		},
	}
}

// Load reads a TOML config file at path, overlaying it onto the defaults.
// A missing file is not an error: the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
