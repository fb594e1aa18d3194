// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package engine

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ezrec/chip8/cpu"
	"github.com/ezrec/chip8/display"
	"github.com/ezrec/chip8/emulator"
	"github.com/ezrec/chip8/xorshift"
)

const (
	DEFAULT_SCALE = 20   // Window pixels per CHIP-8 pixel.
	COLOR_ON      = 0xff // Lit pixel intensity.
	COLOR_OFF     = 0x00 // Dark pixel intensity.
	PIXEL_BYTES   = 4    // RGBA.
)

const WINDOW_TITLE = "CHIP-8 - ESC to exit"

// FRAME_BYTES is the size of the RGBA frame handed to ebiten.
const FRAME_BYTES = display.WIDTH * display.HEIGHT * PIXEL_BYTES

// Window renders to a desktop window with ebiten. Ebiten owns the main loop,
// so the window drives the emulator itself: each Update runs one frame.
type Window struct {
	display.Display
	Rng   *xorshift.Rng
	Scale int

	emu    *emulator.Emulator
	pixels []byte
}

var _ emulator.Host = (*Window)(nil)
var _ ebiten.Game = (*Window)(nil)

// NewWindow creates a window engine at the given scale.
func NewWindow(scale int) *Window {
	if scale <= 0 {
		scale = DEFAULT_SCALE
	}

	return &Window{
		Rng:    xorshift.New(),
		Scale:  scale,
		pixels: make([]byte, FRAME_BYTES),
	}
}

// Run opens the window and runs the emulator until the window is closed,
// ESC is pressed, or an instruction fails.
func (w *Window) Run(emu *emulator.Emulator) (err error) {
	w.emu = emu

	ebiten.SetWindowSize(display.WIDTH*w.Scale, display.HEIGHT*w.Scale)
	ebiten.SetWindowTitle(WINDOW_TITLE)
	ebiten.SetTPS(emulator.TIMER_HZ)

	err = ebiten.RunGame(w)
	return
}

func (w *Window) ClearScreen() {
	w.Display.Clear()
}

func (w *Window) DrawSprite(x, y, height uint8, sprite []byte) bool {
	return w.Display.DrawSprite(x, y, height, sprite)
}

func (w *Window) Rand() uint8 {
	return w.Rng.Next()
}

// Poll reads the keypad from the keyboard.
func (w *Window) Poll(keys *[cpu.KEY_COUNT]bool) (quit bool, err error) {
	for row, line := range ebitenKeys {
		for col, key := range line {
			keys[KEYPAD[row][col]] = ebiten.IsKeyPressed(key)
		}
	}

	quit = ebiten.IsKeyPressed(ebiten.KeyEscape)
	return
}

// Update runs one emulator frame per ebiten tick.
func (w *Window) Update() (err error) {
	quit, err := w.Poll(&w.emu.Cpu.Keys)
	if err != nil {
		return
	}
	if quit {
		err = ebiten.Termination
		return
	}

	err = w.emu.Frame()
	return
}

// Draw blits the frame buffer; ebiten scales it to the window.
func (w *Window) Draw(screen *ebiten.Image) {
	w.fill()
	screen.WritePixels(w.pixels)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return display.WIDTH, display.HEIGHT
}

// fill converts the display to RGBA.
func (w *Window) fill() {
	for y, row := range w.Pixels {
		for x, lit := range row {
			color := byte(COLOR_OFF)
			if lit {
				color = COLOR_ON
			}
			offset := (y*display.WIDTH + x) * PIXEL_BYTES
			w.pixels[offset+0] = color
			w.pixels[offset+1] = color
			w.pixels[offset+2] = color
			w.pixels[offset+3] = 0xff
		}
	}
}
