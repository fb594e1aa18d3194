package cpu

// Engine is the set of side effects an instruction may need from its host.
// Implementations are called synchronously from Tick and must not call back
// into the Cpu.
type Engine interface {
	// ClearScreen blanks the display.
	ClearScreen()
	// DrawSprite XORs a sprite of height rows at (x, y), wrapping at the
	// screen edges. Returns true if any lit pixel was turned off.
	// The sprite slice aliases machine memory and must not be retained.
	DrawSprite(x, y, height uint8, sprite []byte) (collided bool)
	// Rand returns the next pseudo-random byte.
	Rand() uint8
}
