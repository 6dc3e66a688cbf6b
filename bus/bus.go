// Package bus implements the NES's 16-bit CPU address decoder: it maps
// reads and writes onto mirrored CPU RAM, the PPU's memory-mapped
// registers, OAM DMA, the controller port, and cartridge PRG-ROM.
package bus

import (
	"errors"
	"fmt"
	"log"

	"github.com/claude/feuernes/cartridge"
	"github.com/claude/feuernes/controller"
	"github.com/claude/feuernes/mos6502"
	"github.com/claude/feuernes/ppu"
)

const (
	ramSize    = 0x0800
	ramEnd     = 0x1FFF
	ppuRegEnd  = 0x3FFF
	ioRegStart = 0x4000
	oamDMAAddr = 0x4014
	joy1Addr   = 0x4016
	joy2Addr   = 0x4017
	ioRegEnd   = 0x401F
	sramEnd    = 0x7FFF
	prgStart   = 0x8000
)

// Sentinel errors surfaced for register-direction violations and ROM
// writes; unmapped-region access is non-fatal and only logged.
var (
	ErrReadFromWriteOnly = errors.New("bus: read from write-only register")
	ErrWriteToReadOnly   = errors.New("bus: write to read-only register")
	ErrWriteToROM        = errors.New("bus: write to PRG-ROM")
)

// Bus ties a cartridge, PPU and controller to the CPU's address space and
// drives the combined CPU/PPU step loop.
type Bus struct {
	cart *cartridge.Cartridge
	ppu  *ppu.PPU
	cpu  *mos6502.CPU

	pad1 controller.Controller

	ram [ramSize]uint8

	cpuCycles uint64
	dmaCycles int
}

// New wires a freshly parsed cartridge into a new PPU and CPU.
func New(cart *cartridge.Cartridge) *Bus {
	b := &Bus{
		cart: cart,
		ppu:  ppu.New(cart.CHR, cart.Mirroring, cart.ChrIsRAM()),
	}
	b.cpu = mos6502.New(b)
	return b
}

// CPU returns the bus's CPU, for hosts that want direct register access
// (tracing, debugging) alongside the step loop.
func (b *Bus) CPU() *mos6502.CPU { return b.cpu }

// PPU returns the bus's PPU, for hosts that blit its framebuffer.
func (b *Bus) PPU() *ppu.PPU { return b.ppu }

// Controller returns the joypad port so a host can feed button state in
// before each frame. There is no second port: $4017 always reads 0.
func (b *Bus) Controller() *controller.Controller {
	return &b.pad1
}

// Reset re-reads the CPU's reset vector, per mos6502.CPU.Reset.
func (b *Bus) Reset() {
	b.cpu.Reset()
}

// Step advances the CPU by one instruction (or NMI service), ticks the
// PPU by the matching number of dots (3 per CPU cycle), and folds in any
// OAM DMA cycles incurred by writes during this step.
func (b *Bus) Step(hook mos6502.Hook) (int, error) {
	b.dmaCycles = 0

	cycles, err := b.cpu.Step(hook)
	if err != nil {
		return cycles, err
	}

	cycles += b.dmaCycles
	b.cpuCycles += uint64(cycles)
	b.ppu.Tick(cycles * 3)

	return cycles, nil
}

// PollNMI satisfies mos6502.Bus by delegating to the PPU's NMI latch.
func (b *Bus) PollNMI() bool {
	return b.ppu.PollNMI()
}

// Read implements mos6502.Bus.
func (b *Bus) Read(addr uint16) (uint8, error) {
	switch {
	case addr <= ramEnd:
		return b.ram[addr&(ramSize-1)], nil
	case addr <= ppuRegEnd:
		return b.readPPUReg(addr)
	case addr == oamDMAAddr:
		return 0, fmt.Errorf("%w: $4014 (OAMDMA)", ErrReadFromWriteOnly)
	case addr == joy1Addr:
		return b.pad1.Read(), nil
	case addr == joy2Addr:
		// No second controller port, no APU status register.
		return 0, nil
	case addr <= ioRegEnd:
		log.Printf("bus: read from unmapped IO register $%04X", addr)
		return 0, nil
	case addr <= sramEnd:
		log.Printf("bus: read from unmapped SRAM $%04X", addr)
		return 0, nil
	default:
		return b.readPRG(addr), nil
	}
}

// Write implements mos6502.Bus.
func (b *Bus) Write(addr uint16, val uint8) error {
	switch {
	case addr <= ramEnd:
		b.ram[addr&(ramSize-1)] = val
		return nil
	case addr <= ppuRegEnd:
		return b.writePPUReg(addr, val)
	case addr == oamDMAAddr:
		return b.oamDMA(val)
	case addr == joy1Addr:
		b.pad1.Write(val)
		return nil
	case addr == joy2Addr:
		log.Printf("bus: write to read-only $4017")
		return nil
	case addr <= ioRegEnd:
		log.Printf("bus: write to unmapped IO register $%04X", addr)
		return nil
	case addr <= sramEnd:
		log.Printf("bus: write to unmapped SRAM $%04X", addr)
		return nil
	default:
		return fmt.Errorf("%w: $%04X", ErrWriteToROM, addr)
	}
}

func (b *Bus) readPRG(addr uint16) uint8 {
	off := addr - prgStart
	return b.cart.PRG[int(off)%len(b.cart.PRG)]
}

// oamDMA copies 256 bytes from CPU page val<<8 directly into OAM offsets
// 0-255 (bypassing OAMDATA, so OAMADDR is neither used nor changed) and
// records the 513/514-cycle cost, added back by Step.
func (b *Bus) oamDMA(val uint8) error {
	base := uint16(val) << 8
	for i := 0; i < 256; i++ {
		v, err := b.Read(base + uint16(i))
		if err != nil {
			return err
		}
		b.ppu.WriteOAMByte(uint8(i), v)
	}

	extra := 513
	if b.cpuCycles%2 != 0 {
		extra = 514
	}
	b.dmaCycles += extra
	return nil
}
