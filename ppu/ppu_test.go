package ppu

import (
	"testing"

	"github.com/claude/feuernes/cartridge"
)

func newTestPPU() *PPU {
	chr := make([]byte, 0x2000)
	return New(chr, cartridge.Vertical, false)
}

func TestWriteADDRLatchThenData(t *testing.T) {
	p := newTestPPU()
	p.WriteADDR(0x23) // high byte
	p.WriteADDR(0x05) // low byte -> v = $2305
	if p.v != 0x2305 {
		t.Fatalf("v = %04X, want 2305", p.v)
	}

	p.WriteDATA(0x42)
	if p.v != 0x2306 {
		t.Errorf("v after write = %04X, want 2306 (increment-by-1)", p.v)
	}
	if got := p.vram[p.mirrorNT(0x2305)]; got != 0x42 {
		t.Errorf("vram = %02X, want 42", got)
	}
}

func TestWriteADDRIncrementBy32(t *testing.T) {
	p := newTestPPU()
	p.WriteCTRL(ctrlIncrement32)
	p.WriteADDR(0x20)
	p.WriteADDR(0x00)
	p.WriteDATA(0xAA)
	if p.v != 0x2020 {
		t.Errorf("v = %04X, want 2020", p.v)
	}
}

func TestReadSTATUSResetsLatch(t *testing.T) {
	p := newTestPPU()
	p.WriteADDR(0x23) // first write, latch = 1
	p.ReadSTATUS()    // should reset latch
	p.WriteADDR(0x45) // now treated as a first write again (high byte masked to $05)
	p.WriteADDR(0x67)
	if p.v != 0x0567 {
		t.Errorf("v = %04X, want 0567 (latch was reset by STATUS read)", p.v)
	}
}

func TestReadSTATUSClearsVBlank(t *testing.T) {
	p := newTestPPU()
	p.status |= statusVBlank
	got := p.ReadSTATUS()
	if got&statusVBlank == 0 {
		t.Errorf("ReadSTATUS did not report vblank bit")
	}
	if p.status&statusVBlank != 0 {
		t.Errorf("vblank bit not cleared after read")
	}
}

func TestDataPortNametableReadIsBuffered(t *testing.T) {
	p := newTestPPU()
	p.vram[p.mirrorNT(0x2000)] = 0x11
	p.vram[p.mirrorNT(0x2001)] = 0x22

	p.WriteADDR(0x20)
	p.WriteADDR(0x00)

	first := p.ReadDATA()
	if first != 0 {
		t.Errorf("first buffered read = %02X, want 0 (stale buffer)", first)
	}
	second := p.ReadDATA()
	if second != 0x11 {
		t.Errorf("second read = %02X, want 11", second)
	}
}

func TestDataPortPaletteReadIsImmediate(t *testing.T) {
	p := newTestPPU()
	p.palette[0x00] = 0x30

	p.WriteADDR(0x3F)
	p.WriteADDR(0x00)

	got := p.ReadDATA()
	if got != 0x30 {
		t.Errorf("palette read = %02X, want 30 (not buffered)", got)
	}
}

func TestPaletteMirroring(t *testing.T) {
	p := newTestPPU()
	p.WriteADDR(0x3F)
	p.WriteADDR(0x10)
	p.WriteDATA(0x07)
	if p.palette[0x00] != 0x07 {
		t.Errorf("$3F10 did not mirror onto $3F00: palette[0]=%02X", p.palette[0x00])
	}
}

func TestNametableMirroringVertical(t *testing.T) {
	p := newTestPPU()
	if a, b := p.mirrorNT(0x2000), p.mirrorNT(0x2800); a != b {
		t.Errorf("vertical mirroring: %04X should mirror %04X", 0x2800, 0x2000)
	}
	if a, b := p.mirrorNT(0x2400), p.mirrorNT(0x2C00); a != b {
		t.Errorf("vertical mirroring: %04X should mirror %04X", 0x2C00, 0x2400)
	}
}

func TestNametableMirroringHorizontal(t *testing.T) {
	p := New(make([]byte, 0x2000), cartridge.Horizontal, false)
	if a, b := p.mirrorNT(0x2000), p.mirrorNT(0x2400); a != b {
		t.Errorf("horizontal mirroring: %04X should mirror %04X", 0x2400, 0x2000)
	}
	if a, b := p.mirrorNT(0x2800), p.mirrorNT(0x2C00); a != b {
		t.Errorf("horizontal mirroring: %04X should mirror %04X", 0x2C00, 0x2800)
	}
}

func TestOAMDATAAutoIncrementsOnWriteNotRead(t *testing.T) {
	p := newTestPPU()
	p.WriteOAMADDR(0x10)
	p.WriteOAMDATA(0x99)
	if p.oamAddr != 0x11 {
		t.Errorf("oamAddr = %02X, want 11 after write", p.oamAddr)
	}
	p.ReadOAMDATA()
	if p.oamAddr != 0x11 {
		t.Errorf("oamAddr = %02X, want unchanged after read", p.oamAddr)
	}
}

func TestTickEntersVBlankAndSignalsNMI(t *testing.T) {
	p := newTestPPU()
	p.WriteCTRL(ctrlNMIEnable)

	// One scanline is 341 dots; vblank begins at scanline 241.
	p.Tick(341 * 242)

	if p.status&statusVBlank == 0 {
		t.Fatal("vblank flag not set")
	}
	if !p.PollNMI() {
		t.Fatal("expected NMI to be pending after entering vblank")
	}
	if p.PollNMI() {
		t.Error("PollNMI should be one-shot")
	}
}

func TestTickWrapsFrameAndClearsVBlank(t *testing.T) {
	p := newTestPPU()
	p.Tick(341 * 263) // past scanline 262 wraparound
	if p.status&statusVBlank != 0 {
		t.Error("vblank flag should be cleared after frame wraparound")
	}
}

func TestFrameReadyIsOneShot(t *testing.T) {
	p := newTestPPU()
	p.Tick(341 * 242)
	if !p.FrameReady() {
		t.Fatal("expected frame ready after entering vblank")
	}
	if p.FrameReady() {
		t.Error("FrameReady should be one-shot")
	}
}

func TestSpritesDecodesAttributeByte(t *testing.T) {
	p := newTestPPU()
	p.WriteOAMADDR(0)
	p.WriteOAMDATA(0x50) // Y
	p.WriteOAMDATA(0x07) // tile
	p.WriteOAMDATA(0xE3) // attr: palette=3, priority+flipH+flipV all set
	p.WriteOAMDATA(0x20) // X

	s := p.Sprites()[0]
	if s.Y != 0x50 || s.Tile != 0x07 || s.X != 0x20 {
		t.Fatalf("sprite = %+v", s)
	}
	if s.Palette != 3 || !s.Behind || !s.FlipH || !s.FlipV {
		t.Errorf("sprite attrs = %+v", s)
	}
}
