// Package engine provides the hosts a CHIP-8 emulator can run against: a
// headless frame buffer for tests and scripts, a raw-mode terminal, and an
// ebiten window.
//
// All hosts own their own display buffer and random number generator, so
// two sessions never share state.
package engine
