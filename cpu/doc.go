// Package cpu implements the interpreter and disassembler for the CHIP-8
// virtual machine.
//
// The machine consists of 4K of byte addressable memory with a built-in hex
// font at address 0, sixteen 8-bit registers (V0-VF, with VF doubling as the
// carry/borrow/collision flag), a 16-bit index register (I), a program
// counter starting at 0x200, a 16 entry return stack, and the delay and
// sound timers.
//
// Screen, randomness and the keypad live outside the package. Screen and
// randomness are reached through the Engine interface; key state is written
// by the caller with SetKey. Timers only change through DecrementTimers, so
// the caller decides the pacing of both instructions and timers.
package cpu
