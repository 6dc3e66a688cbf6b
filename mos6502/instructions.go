package mos6502

// Each method here implements one documented 6502 instruction and matches
// the func(*CPU, AddressingMode) signature the opcode table dispatches
// through directly, as a method expression.

func (c *CPU) ADC(mode AddressingMode) {
	_, m := c.operand(mode)
	sum := uint16(c.A) + uint16(m) + uint16(b2u8(c.flag(flagC)))
	result := uint8(sum)
	c.setFlag(flagC, sum > 0xFF)
	c.setFlag(flagV, (c.A^m)&0x80 == 0 && (c.A^result)&0x80 != 0)
	c.A = result
	c.setZN(c.A)
}

func (c *CPU) SBC(mode AddressingMode) {
	_, m := c.operand(mode)
	value := m ^ 0xFF
	sum := uint16(c.A) + uint16(value) + uint16(b2u8(c.flag(flagC)))
	result := uint8(sum)
	c.setFlag(flagC, sum > 0xFF)
	c.setFlag(flagV, (c.A^value)&0x80 == 0 && (c.A^result)&0x80 != 0)
	c.A = result
	c.setZN(c.A)
}

func (c *CPU) AND(mode AddressingMode) {
	_, m := c.operand(mode)
	c.A &= m
	c.setZN(c.A)
}

func (c *CPU) ORA(mode AddressingMode) {
	_, m := c.operand(mode)
	c.A |= m
	c.setZN(c.A)
}

func (c *CPU) EOR(mode AddressingMode) {
	_, m := c.operand(mode)
	c.A ^= m
	c.setZN(c.A)
}

func (c *CPU) ASL(mode AddressingMode) {
	if mode == Accumulator {
		c.setFlag(flagC, c.A&0x80 != 0)
		c.A <<= 1
		c.setZN(c.A)
		return
	}
	addr := c.resolve(mode)
	m := c.busRead(addr)
	c.setFlag(flagC, m&0x80 != 0)
	m <<= 1
	c.busWrite(addr, m)
	c.setZN(m)
}

func (c *CPU) LSR(mode AddressingMode) {
	if mode == Accumulator {
		c.setFlag(flagC, c.A&0x01 != 0)
		c.A >>= 1
		c.setZN(c.A)
		return
	}
	addr := c.resolve(mode)
	m := c.busRead(addr)
	c.setFlag(flagC, m&0x01 != 0)
	m >>= 1
	c.busWrite(addr, m)
	c.setZN(m)
}

func (c *CPU) ROL(mode AddressingMode) {
	carryIn := b2u8(c.flag(flagC))
	if mode == Accumulator {
		c.setFlag(flagC, c.A&0x80 != 0)
		c.A = (c.A << 1) | carryIn
		c.setZN(c.A)
		return
	}
	addr := c.resolve(mode)
	m := c.busRead(addr)
	c.setFlag(flagC, m&0x80 != 0)
	m = (m << 1) | carryIn
	c.busWrite(addr, m)
	c.setZN(m)
}

func (c *CPU) ROR(mode AddressingMode) {
	carryIn := b2u8(c.flag(flagC)) << 7
	if mode == Accumulator {
		c.setFlag(flagC, c.A&0x01 != 0)
		c.A = (c.A >> 1) | carryIn
		c.setZN(c.A)
		return
	}
	addr := c.resolve(mode)
	m := c.busRead(addr)
	c.setFlag(flagC, m&0x01 != 0)
	m = (m >> 1) | carryIn
	c.busWrite(addr, m)
	c.setZN(m)
}

func (c *CPU) BIT(mode AddressingMode) {
	_, m := c.operand(mode)
	c.setFlag(flagZ, c.A&m == 0)
	c.setFlag(flagV, m&0x40 != 0)
	c.setFlag(flagN, m&0x80 != 0)
}

func (c *CPU) BCC(AddressingMode) { c.branch(!c.flag(flagC)) }
func (c *CPU) BCS(AddressingMode) { c.branch(c.flag(flagC)) }
func (c *CPU) BEQ(AddressingMode) { c.branch(c.flag(flagZ)) }
func (c *CPU) BNE(AddressingMode) { c.branch(!c.flag(flagZ)) }
func (c *CPU) BMI(AddressingMode) { c.branch(c.flag(flagN)) }
func (c *CPU) BPL(AddressingMode) { c.branch(!c.flag(flagN)) }
func (c *CPU) BVC(AddressingMode) { c.branch(!c.flag(flagV)) }
func (c *CPU) BVS(AddressingMode) { c.branch(c.flag(flagV)) }

// BRK pushes the return address as PC+1 past the implied padding byte
// that follows a BRK opcode, matching hardware: the byte after BRK is
// always skipped on return from the interrupt handler.
func (c *CPU) BRK(AddressingMode) {
	c.push16(c.PC + 1)
	c.push8(c.P | flagB | flagU)
	c.setFlag(flagI, true)
	c.PC = c.read16(0xFFFE)
}

func (c *CPU) CLC(AddressingMode) { c.setFlag(flagC, false) }
func (c *CPU) CLD(AddressingMode) { c.setFlag(flagD, false) }
func (c *CPU) CLI(AddressingMode) { c.setFlag(flagI, false) }
func (c *CPU) CLV(AddressingMode) { c.setFlag(flagV, false) }
func (c *CPU) SEC(AddressingMode) { c.setFlag(flagC, true) }
func (c *CPU) SED(AddressingMode) { c.setFlag(flagD, true) }
func (c *CPU) SEI(AddressingMode) { c.setFlag(flagI, true) }

func (c *CPU) CMP(mode AddressingMode) {
	_, m := c.operand(mode)
	c.compare(c.A, m)
}

func (c *CPU) CPX(mode AddressingMode) {
	_, m := c.operand(mode)
	c.compare(c.X, m)
}

func (c *CPU) CPY(mode AddressingMode) {
	_, m := c.operand(mode)
	c.compare(c.Y, m)
}

func (c *CPU) DEC(mode AddressingMode) {
	addr := c.resolve(mode)
	m := c.busRead(addr) - 1
	c.busWrite(addr, m)
	c.setZN(m)
}

func (c *CPU) DEX(AddressingMode) { c.X--; c.setZN(c.X) }
func (c *CPU) DEY(AddressingMode) { c.Y--; c.setZN(c.Y) }

func (c *CPU) INC(mode AddressingMode) {
	addr := c.resolve(mode)
	m := c.busRead(addr) + 1
	c.busWrite(addr, m)
	c.setZN(m)
}

func (c *CPU) INX(AddressingMode) { c.X++; c.setZN(c.X) }
func (c *CPU) INY(AddressingMode) { c.Y++; c.setZN(c.Y) }

func (c *CPU) JMP(mode AddressingMode) {
	c.PC = c.resolve(mode)
}

// JSR pushes the address of the last byte of the JSR instruction (not
// the next instruction); RTS adds one back when it pops.
func (c *CPU) JSR(mode AddressingMode) {
	addr := c.resolve(mode)
	c.push16(c.PC - 1)
	c.PC = addr
}

func (c *CPU) RTS(AddressingMode) {
	c.PC = c.pop16() + 1
}

func (c *CPU) RTI(AddressingMode) {
	c.P = (c.pop8() &^ flagB) | flagU
	c.PC = c.pop16()
}

func (c *CPU) LDA(mode AddressingMode) {
	_, m := c.operand(mode)
	c.A = m
	c.setZN(c.A)
}

func (c *CPU) LDX(mode AddressingMode) {
	_, m := c.operand(mode)
	c.X = m
	c.setZN(c.X)
}

func (c *CPU) LDY(mode AddressingMode) {
	_, m := c.operand(mode)
	c.Y = m
	c.setZN(c.Y)
}

func (c *CPU) STA(mode AddressingMode) {
	addr := c.resolve(mode)
	c.busWrite(addr, c.A)
}

func (c *CPU) STX(mode AddressingMode) {
	addr := c.resolve(mode)
	c.busWrite(addr, c.X)
}

func (c *CPU) STY(mode AddressingMode) {
	addr := c.resolve(mode)
	c.busWrite(addr, c.Y)
}

func (c *CPU) NOP(AddressingMode) {}

func (c *CPU) PHA(AddressingMode) { c.push8(c.A) }
func (c *CPU) PHP(AddressingMode) { c.push8(c.P | flagB | flagU) }
func (c *CPU) PLA(AddressingMode) { c.A = c.pop8(); c.setZN(c.A) }
func (c *CPU) PLP(AddressingMode) { c.P = (c.pop8() &^ flagB) | flagU }

func (c *CPU) TAX(AddressingMode) { c.X = c.A; c.setZN(c.X) }
func (c *CPU) TAY(AddressingMode) { c.Y = c.A; c.setZN(c.Y) }
func (c *CPU) TSX(AddressingMode) { c.X = c.SP; c.setZN(c.X) }
func (c *CPU) TXA(AddressingMode) { c.A = c.X; c.setZN(c.A) }
func (c *CPU) TXS(AddressingMode) { c.SP = c.X }
func (c *CPU) TYA(AddressingMode) { c.A = c.Y; c.setZN(c.A) }
