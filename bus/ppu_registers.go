package bus

import "fmt"

// PPU register offsets within the 8-byte mirrored window at $2000-$2007.
const (
	regCTRL = iota
	regMASK
	regSTATUS
	regOAMADDR
	regOAMDATA
	regSCROLL
	regADDR
	regDATA
)

func (b *Bus) readPPUReg(addr uint16) (uint8, error) {
	switch addr & 0x0007 {
	case regSTATUS:
		return b.ppu.ReadSTATUS(), nil
	case regOAMDATA:
		return b.ppu.ReadOAMDATA(), nil
	case regDATA:
		return b.ppu.ReadDATA(), nil
	default:
		return 0, fmt.Errorf("%w: $%04X", ErrReadFromWriteOnly, addr)
	}
}

func (b *Bus) writePPUReg(addr uint16, val uint8) error {
	switch addr & 0x0007 {
	case regCTRL:
		b.ppu.WriteCTRL(val)
	case regMASK:
		b.ppu.WriteMASK(val)
	case regOAMADDR:
		b.ppu.WriteOAMADDR(val)
	case regOAMDATA:
		b.ppu.WriteOAMDATA(val)
	case regSCROLL:
		b.ppu.WriteSCROLL(val)
	case regADDR:
		b.ppu.WriteADDR(val)
	case regDATA:
		b.ppu.WriteDATA(val)
	default:
		return fmt.Errorf("%w: $%04X", ErrWriteToReadOnly, addr)
	}
	return nil
}
