// Package emitter renders encoded instruction words into the MIF-style
// output format: one 8-bit binary digit string per byte, little-endian,
// one byte per line (spec §6).
package emitter

import (
	"bufio"
	"fmt"
	"io"
)

// SplitLE decomposes a 32-bit word into its four bytes, least-significant
// byte first, matching the original source's little-endian byte order.
func SplitLE(word uint32) [4]byte {
	return [4]byte{
		byte(word),
		byte(word >> 8),
		byte(word >> 16),
		byte(word >> 24),
	}
}

// Emitter writes little-endian byte lines to an underlying writer,
// buffering output the way the teacher buffers file writes and checking
// every write for an I/O failure.
type Emitter struct {
	w *bufio.Writer
}

// New wraps w in a buffered Emitter.
func New(w io.Writer) *Emitter {
	return &Emitter{w: bufio.NewWriter(w)}
}

// WriteWord appends the four little-endian byte lines for word.
func (e *Emitter) WriteWord(word uint32) error {
	for _, b := range SplitLE(word) {
		if _, err := fmt.Fprintf(e.w, "%08b\n", b); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes any buffered output to the underlying writer.
func (e *Emitter) Flush() error {
	return e.w.Flush()
}
