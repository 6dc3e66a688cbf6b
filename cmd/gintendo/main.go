// Command gintendo is the thin host adapter: it loads a ROM file, wires
// it through bus.Bus, and either opens an ebiten window or (with
// -headless) just drives the step loop for smoke-testing the core
// without a display.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/claude/feuernes/bus"
	"github.com/claude/feuernes/cartridge"
	"github.com/claude/feuernes/ppu"
)

var (
	romFile  = flag.String("nes_rom", "", "Path to NES ROM to run.")
	scale    = flag.Int("scale", 2, "Integer window-scale factor.")
	headless = flag.Bool("headless", false, "Run the core step loop without opening a window.")
)

func main() {
	flag.Parse()

	if *romFile == "" {
		log.Fatal("gintendo: -nes_rom is required")
	}

	f, err := os.Open(*romFile)
	if err != nil {
		log.Fatalf("gintendo: opening ROM: %v", err)
	}
	defer f.Close()

	cart, err := cartridge.Load(f)
	if err != nil {
		log.Fatalf("gintendo: invalid ROM: %v", err)
	}

	b := bus.New(cart)
	b.Reset()

	if *headless {
		runHeadless(b)
		return
	}

	g := newGame(b)
	ebiten.SetWindowSize(ppu.Width*(*scale), ppu.Height*(*scale))
	ebiten.SetWindowTitle("feuernes")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// runHeadless drives the core for a fixed number of frames, useful in CI
// to confirm a ROM boots and runs without a bus error, without requiring
// a display.
func runHeadless(b *bus.Bus) {
	const frames = 60
	seen := 0
	for seen < frames {
		if _, err := b.Step(nil); err != nil {
			log.Fatalf("gintendo: halted: %v", err)
		}
		if b.PPU().FrameReady() {
			seen++
		}
	}
}
