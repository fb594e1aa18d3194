package cpu

import (
	"errors"

	"github.com/ezrec/chip8/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrStackEmpty  = errors.New(f("stack empty"))
	ErrStackFull   = errors.New(f("stack full"))
	ErrMemoryRange = errors.New(f("memory access out of range"))
	ErrKeyRange    = errors.New(f("key out of range"))
	ErrRomSize     = errors.New(f("rom too large"))
	ErrRomOdd      = errors.New(f("rom has odd length"))

	// Instruction decode errors
	ErrOpcodeDecode        = errors.New(f("decode"))
	ErrOpcodeUnimplemented = errors.New(f("unimplemented"))
)

// ErrOpcode identifies the instruction word and its address when an
// instruction fails.
type ErrOpcode struct {
	Pc   uint16
	Word uint16
}

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%04x at 0x%03x", eo.Word, eo.Pc)
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrAddress reports the address range that a memory access fell outside of.
type ErrAddress struct {
	Addr   int
	Length int
}

func (err ErrAddress) Error() string {
	return f("address 0x%04x+%v", err.Addr, err.Length)
}

func (err ErrAddress) Unwrap() error {
	return ErrMemoryRange
}
