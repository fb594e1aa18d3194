// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package display implements the CHIP-8 monochrome frame buffer and its XOR
// sprite blitter.
package display

import (
	"strings"
)

const (
	WIDTH      = 64 // Pixels per row.
	HEIGHT     = 32 // Rows.
	SPRITE_BIT = 8  // Pixels per sprite row.
)

// Display is a 64x32 grid of pixels, row-major.
type Display struct {
	Pixels [HEIGHT][WIDTH]bool
}

// Clear turns every pixel off.
func (d *Display) Clear() {
	for row := range d.Pixels {
		clear(d.Pixels[row][:])
	}
}

// DrawSprite XORs height rows of sprite at (x, y). Coordinates wrap at the
// screen edges. Returns true if any lit pixel was turned off.
func (d *Display) DrawSprite(x, y, height uint8, sprite []byte) (collided bool) {
	rows := min(int(height), len(sprite))
	for row := range rows {
		bits := sprite[row]
		py := (int(y) + row) % HEIGHT
		for col := range SPRITE_BIT {
			if bits&(0x80>>col) == 0 {
				continue
			}
			px := (int(x) + col) % WIDTH
			pixel := &d.Pixels[py][px]
			if *pixel {
				collided = true
			}
			*pixel = !*pixel
		}
	}

	return
}

// Pixel reports whether the pixel at (x, y) is lit. Coordinates wrap.
func (d *Display) Pixel(x, y int) bool {
	x %= WIDTH
	if x < 0 {
		x += WIDTH
	}
	y %= HEIGHT
	if y < 0 {
		y += HEIGHT
	}
	return d.Pixels[y][x]
}

// Lit counts the lit pixels.
func (d *Display) Lit() (count int) {
	for _, row := range d.Pixels {
		for _, pixel := range row {
			if pixel {
				count++
			}
		}
	}
	return
}

// String renders the display as rows of '#' and ' '.
func (d *Display) String() string {
	var sb strings.Builder
	sb.Grow(HEIGHT * (WIDTH + 1))
	for _, row := range d.Pixels {
		for _, pixel := range row {
			if pixel {
				sb.WriteByte('#')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
