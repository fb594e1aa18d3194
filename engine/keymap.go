package engine

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// KEYPAD is the CHIP-8 hex keypad as laid out on the COSMAC VIP.
//
//	1 2 3 C
//	4 5 6 D
//	7 8 9 E
//	A 0 B F
var KEYPAD = [4][4]uint8{
	{0x1, 0x2, 0x3, 0xc},
	{0x4, 0x5, 0x6, 0xd},
	{0x7, 0x8, 0x9, 0xe},
	{0xa, 0x0, 0xb, 0xf},
}

// KEYBOARD is the left hand block of a QWERTY keyboard, position for
// position with KEYPAD.
var KEYBOARD = [4]string{
	"1234",
	"qwer",
	"asdf",
	"zxcv",
}

// RuneKey maps a typed character to a hex key.
func RuneKey(r rune) (key uint8, ok bool) {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}

	for row, keys := range KEYBOARD {
		for col, kr := range keys {
			if kr == r {
				key = KEYPAD[row][col]
				ok = true
				return
			}
		}
	}

	return
}

var ebitenKeys = [4][4]ebiten.Key{
	{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4},
	{ebiten.KeyQ, ebiten.KeyW, ebiten.KeyE, ebiten.KeyR},
	{ebiten.KeyA, ebiten.KeyS, ebiten.KeyD, ebiten.KeyF},
	{ebiten.KeyZ, ebiten.KeyX, ebiten.KeyC, ebiten.KeyV},
}
