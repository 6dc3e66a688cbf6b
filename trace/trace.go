// Package trace provides an optional pre-instruction observer for
// diagnosing CPU execution: a nestest-style one-line-per-step log of
// register state, independent of any particular bus or PPU wiring.
package trace

import (
	"fmt"
	"io"

	"github.com/claude/feuernes/mos6502"
)

// Logger writes one line per CPU step to w.
type Logger struct {
	w     io.Writer
	steps uint64
}

// New returns a Logger that writes to w.
func New(w io.Writer) *Logger {
	return &Logger{w: w}
}

// Hook satisfies mos6502.Hook; pass it to CPU.Step to log register state
// immediately before the next instruction (or NMI service) executes.
func (l *Logger) Hook(c *mos6502.CPU) {
	l.steps++
	n, v, u, b, d, i, z, cy := c.Flags()
	fmt.Fprintf(l.w, "%7d  %s  [%s]\n", l.steps, c, flagString(n, v, u, b, d, i, z, cy))
}

func flagString(n, v, u, b, d, i, z, cy bool) string {
	bits := []struct {
		set  bool
		name string
	}{
		{n, "N"}, {v, "V"}, {u, "U"}, {b, "B"}, {d, "D"}, {i, "I"}, {z, "Z"}, {cy, "C"},
	}
	out := make([]byte, len(bits))
	for idx, bit := range bits {
		ch := "-"
		if bit.set {
			ch = bit.name
		}
		out[idx] = ch[0]
	}
	return string(out)
}
