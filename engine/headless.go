package engine

import (
	"github.com/ezrec/chip8/cpu"
	"github.com/ezrec/chip8/display"
	"github.com/ezrec/chip8/emulator"
	"github.com/ezrec/chip8/xorshift"
)

// Headless keeps the frame buffer in memory and never asks to quit.
type Headless struct {
	display.Display
	Rng *xorshift.Rng

	Clears int                  // ClearScreen calls.
	Draws  int                  // DrawSprite calls.
	Keys   [cpu.KEY_COUNT]bool // Keypad handed to the CPU on Poll.
}

var _ emulator.Host = (*Headless)(nil)

// NewHeadless creates a blank headless engine.
func NewHeadless() *Headless {
	return &Headless{
		Rng: xorshift.New(),
	}
}

func (hl *Headless) ClearScreen() {
	hl.Clears++
	hl.Display.Clear()
}

func (hl *Headless) DrawSprite(x, y, height uint8, sprite []byte) bool {
	hl.Draws++
	return hl.Display.DrawSprite(x, y, height, sprite)
}

func (hl *Headless) Rand() uint8 {
	return hl.Rng.Next()
}

// Poll copies the headless keypad to the CPU.
func (hl *Headless) Poll(keys *[cpu.KEY_COUNT]bool) (quit bool, err error) {
	*keys = hl.Keys
	return
}
