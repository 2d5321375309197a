package emitter

import (
	"bytes"
	"strings"
	"testing"
)

func TestSplitLEOrdersLeastSignificantByteFirst(t *testing.T) {
	got := SplitLE(0x00500093)
	want := [4]byte{0x93, 0x00, 0x50, 0x00}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEmitterWritesFourLinesPerWord(t *testing.T) {
	var buf bytes.Buffer
	em := New(&buf)

	if err := em.WriteWord(0x00500093); err != nil {
		t.Fatalf("WriteWord: unexpected error: %v", err)
	}
	if err := em.WriteWord(0x000000EF); err != nil {
		t.Fatalf("WriteWord: unexpected error: %v", err)
	}
	if err := em.Flush(); err != nil {
		t.Fatalf("Flush: unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("got %d lines, want 8 (2 words * 4 bytes)", len(lines))
	}
	for _, line := range lines {
		if len(line) != 8 {
			t.Errorf("line %q: want 8 binary digits, got %d", line, len(line))
		}
	}

	if lines[0] != "10010011" {
		t.Errorf("first byte = %q, want 10010011 (0x93 little-endian)", lines[0])
	}
}
