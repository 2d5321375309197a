package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}
	if cfg.Assemble.DefaultOutput != "memoria.mif" {
		t.Errorf("DefaultOutput = %q, want memoria.mif", cfg.Assemble.DefaultOutput)
	}
	if !cfg.Assemble.StrictDuplicateLabels {
		t.Error("StrictDuplicateLabels default should be true")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	content := `
[assemble]
default_output = "custom.mif"
strict_duplicate_labels = false

[lint]
warn_unused_labels = false
`
	dir := t.TempDir()
	path := filepath.Join(dir, "rv32asm.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "custom.mif", cfg.Assemble.DefaultOutput)
	assert.False(t, cfg.Assemble.StrictDuplicateLabels)
	assert.False(t, cfg.Lint.WarnUnusedLabels)
	assert.False(t, cfg.Diagnostics.ColorOutput, "unset diagnostics.color_output should keep its default")
}
