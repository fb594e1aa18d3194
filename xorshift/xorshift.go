// Package xorshift provides the small deterministic byte generator used for
// the CHIP-8 random opcode.
//
// The generator is not suitable for anything but reproducible emulation:
// every Rng starts from the same state and there is no way to reseed it.
package xorshift

// Rng is a four lane 8-bit xorshift generator.
type Rng struct {
	x, y, z, a uint8
}

// New returns a generator at the fixed start state (0, 0, 0, 1).
func New() *Rng {
	return &Rng{a: 1}
}

// Next advances the generator and returns its next byte.
func (r *Rng) Next() uint8 {
	t := r.x ^ (r.x << 4)
	r.x = r.y
	r.y = r.z
	r.z = r.a
	r.a = r.z ^ t ^ (r.z >> 1) ^ (t << 1)
	return r.a
}
