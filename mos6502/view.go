package mos6502

import "fmt"

// String renders the register file the way the teacher's debug REPL did,
// useful for ad-hoc trace output and test failure messages.
func (c *CPU) String() string {
	return fmt.Sprintf("PC:%04X A:%02X X:%02X Y:%02X SP:%02X P:%02X", c.PC, c.A, c.X, c.Y, c.SP, c.P)
}

// Flags reports the individual status bits for trace formatting.
func (c *CPU) Flags() (n, v, u, b, d, i, z, cy bool) {
	return c.flag(flagN), c.flag(flagV), c.flag(flagU), c.flag(flagB),
		c.flag(flagD), c.flag(flagI), c.flag(flagZ), c.flag(flagC)
}
