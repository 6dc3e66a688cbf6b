// Package ppu implements the NES Picture Processing Unit: internal VRAM,
// palette and OAM storage, the eight memory-mapped registers, scanline/
// cycle accounting, and NMI generation.
package ppu

import "github.com/claude/feuernes/cartridge"

const (
	vramSize    = 2048
	oamSize     = 256
	paletteSize = 32

	cyclesPerScanline = 341
	scanlinesPerFrame = 262
	vblankScanline    = 241
)

// Resolution of the NES's visible framebuffer.
const (
	Width  = 256
	Height = 240
)

// PPU is the register file plus internal memories of the Picture
// Processing Unit. The zero value is not usable; construct with New.
type PPU struct {
	chr      []byte
	chrIsRAM bool

	mirroring cartridge.Mirroring

	vram    [vramSize]uint8
	palette [paletteSize]uint8
	oam     [oamSize]uint8

	ctrl, mask, status uint8
	oamAddr            uint8

	v, t uint16 // current / temporary VRAM address, 15 bits used
	x    uint8  // fine X scroll, 3 bits used
	w    uint8  // shared write-toggle latch for SCROLL/ADDR

	readBuffer uint8

	cycles   int
	scanline int

	nmiPending bool
	frameReady bool
}

// New constructs a PPU bound to a cartridge's CHR data and mirroring
// mode. chr may be a writable CHR-RAM buffer (chrIsRAM) or fixed CHR-ROM.
func New(chr []byte, mirroring cartridge.Mirroring, chrIsRAM bool) *PPU {
	return &PPU{
		chr:       chr,
		chrIsRAM:  chrIsRAM,
		mirroring: mirroring,
		scanline:  -1,
	}
}

func (p *PPU) readCHR(addr uint16) uint8 {
	return p.chr[addr]
}

func (p *PPU) writeCHR(addr uint16, v uint8) {
	if p.chrIsRAM {
		p.chr[addr] = v
	}
}

// mirrorNT maps a $2000-$2FFF nametable address onto this cartridge's
// two physical 1 KiB nametables according to its mirroring mode.
// FourScreen cartridges would need mapper-provided extra VRAM the spec's
// mapper-0-only scope doesn't model; this repo folds them onto the same
// 2 KiB VRAM as Vertical mirroring rather than panicking.
func (p *PPU) mirrorNT(addr uint16) uint16 {
	offset := (addr & 0x2FFF) - 0x2000
	idx := offset / 0x400

	switch p.mirroring {
	case cartridge.Horizontal:
		switch idx {
		case 0:
			return offset
		case 1, 2:
			return offset - 0x400
		default:
			return offset - 0x800
		}
	default: // Vertical and (as a graceful fallback) FourScreen
		switch idx {
		case 0, 1:
			return offset
		default:
			return offset - 0x800
		}
	}
}

// PollNMI reports and clears a pending NMI request, one-shot like the
// CPU's own interrupt latch.
func (p *PPU) PollNMI() bool {
	v := p.nmiPending
	p.nmiPending = false
	return v
}

// FrameReady reports and clears whether the most recent Tick crossed into
// vblank, so a host can pump exactly one frame per transition.
func (p *PPU) FrameReady() bool {
	v := p.frameReady
	p.frameReady = false
	return v
}

// Tick advances the PPU by n dots (pixel clocks); the caller multiplies
// CPU cycles by 3 before calling, since the PPU runs at 3x the CPU clock.
func (p *PPU) Tick(n int) {
	for i := 0; i < n; i++ {
		p.tick()
	}
}

func (p *PPU) tick() {
	p.cycles++
	if p.cycles < cyclesPerScanline {
		return
	}
	p.cycles -= cyclesPerScanline
	p.scanline++

	if p.scanline == vblankScanline {
		p.status |= statusVBlank
		p.status &^= statusSprite0Hit
		p.frameReady = true
		if p.ctrl&ctrlNMIEnable != 0 {
			p.nmiPending = true
		}
	}
	if p.scanline >= scanlinesPerFrame {
		p.scanline = 0
		p.status &^= statusVBlank | statusSprite0Hit
		p.nmiPending = false
	}
}

// VRAM, Palette and OAM expose read-only views for host-side rendering.
func (p *PPU) VRAM() [vramSize]uint8       { return p.vram }
func (p *PPU) Palette() [paletteSize]uint8 { return p.palette }
func (p *PPU) OAM() [oamSize]uint8         { return p.oam }
