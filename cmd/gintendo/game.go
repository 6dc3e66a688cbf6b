package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/claude/feuernes/bus"
	"github.com/claude/feuernes/controller"
	"github.com/claude/feuernes/ppu"
)

// game adapts a bus.Bus to the ebiten.Game interface: it owns the window,
// polls keyboard state into the controller, and draws the PPU's OAM-
// decoded sprite positions once per frame. All emulation state lives in bus;
// game is deliberately thin, per the core packages' "no display backend"
// rule.
type game struct {
	bus *bus.Bus
	img *ebiten.Image
}

// Buttons, as bits, matching controller.A..controller.Right order.
var keys = []struct {
	key ebiten.Key
	bit uint8
}{
	{ebiten.KeyZ, controller.A},
	{ebiten.KeyX, controller.B},
	{ebiten.KeyShift, controller.Select},
	{ebiten.KeyEnter, controller.Start},
	{ebiten.KeyUp, controller.Up},
	{ebiten.KeyDown, controller.Down},
	{ebiten.KeyLeft, controller.Left},
	{ebiten.KeyRight, controller.Right},
}

func newGame(b *bus.Bus) *game {
	return &game{
		bus: b,
		img: ebiten.NewImage(ppu.Width, ppu.Height),
	}
}

// Layout returns the NES's fixed native resolution; ebiten scales the
// window around it rather than the core rendering anything at a
// different size.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ppu.Width, ppu.Height
}

// Update polls input and steps the emulation core until a frame is ready.
func (g *game) Update() error {
	var mask uint8
	for _, k := range keys {
		if ebiten.IsKeyPressed(k.key) {
			mask |= k.bit
		}
	}
	g.bus.Controller().SetButtons(mask)

	for {
		_, err := g.bus.Step(nil)
		if err != nil {
			return err
		}
		if g.bus.PPU().FrameReady() {
			return nil
		}
	}
}

// Draw blits the most recently decoded sprite state. Actual
// pixel compositing from nametable/pattern-table data is out of this
// spec's scope (see SPEC_FULL.md §1); Draw renders sprites only, using
// PPU.Sprites() and the system palette, onto a solid backdrop color.
func (g *game) Draw(screen *ebiten.Image) {
	g.img.Fill(color.RGBA{0, 0, 0, 0xFF})

	pal := g.bus.PPU().Palette()
	for _, s := range g.bus.PPU().Sprites() {
		if s.Y >= ppu.Height {
			continue
		}
		rgb := ppu.SystemPalette[pal[0x10+s.Palette*4]&0x3F]
		g.img.Set(int(s.X), int(s.Y), rgb)
	}

	screen.DrawImage(g.img, nil)
}
