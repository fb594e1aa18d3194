// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"log"
)

const (
	MEMORY_SIZE      = 4096  // Addressable memory in bytes.
	PROGRAM_START    = 0x200 // Load address and initial PC.
	REGISTER_COUNT   = 16    // V0 through VF.
	REGISTER_FLAG    = 0xf   // VF, the carry/borrow/collision flag.
	KEY_COUNT        = 16    // Hex keypad.
	INSTRUCTION_SIZE = 2     // Bytes per instruction word.
)

// PROGRAM_SIZE is the largest ROM that fits in memory.
const PROGRAM_SIZE = MEMORY_SIZE - PROGRAM_START

// Quirks select between interpreter behaviours that real programs disagree
// on. They are fixed for the life of a Cpu.
type Quirks struct {
	LoadStore bool // FX55/FX65 advance I by X+1.
}

// Cpu is the CHIP-8 machine state.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory [MEMORY_SIZE]byte     // Font, program and RAM.
	V      [REGISTER_COUNT]uint8 // Register bank.
	I      uint16                // Index register.
	Pc     uint16                // Program counter.
	Stack  Stack                 // Return addresses.
	Delay  uint8                 // Delay timer.
	Sound  uint8                 // Sound timer.
	Keys   [KEY_COUNT]bool       // Keypad state.

	Ticks int // Instructions executed since reset.

	quirks Quirks
}

// NewCpu creates a reset CPU with the selected quirks.
func NewCpu(quirks Quirks) (cpu *Cpu) {
	cpu = &Cpu{
		quirks: quirks,
	}

	cpu.Reset()

	return
}

// Quirks returns the quirks the CPU was created with.
func (cpu *Cpu) Quirks() Quirks {
	return cpu.quirks
}

// Reset the CPU state.
// - Clears memory and reinstalls the font.
// - Clears the registers, stack, timers and keypad.
// - Sets the PC to the program start.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Memory[:])
	copy(cpu.Memory[FONT_BASE:], FONT[:])
	clear(cpu.V[:])
	clear(cpu.Keys[:])
	cpu.Stack.Reset()
	cpu.I = 0
	cpu.Pc = PROGRAM_START
	cpu.Delay = 0
	cpu.Sound = 0
	cpu.Ticks = 0
}

// Load copies a ROM image into program memory.
func (cpu *Cpu) Load(rom []byte) (err error) {
	if len(rom) > PROGRAM_SIZE {
		err = fmt.Errorf("%w: %v > %v", ErrRomSize, len(rom), PROGRAM_SIZE)
		return
	}

	copy(cpu.Memory[PROGRAM_START:], rom)

	if cpu.Verbose {
		log.Printf("cpu: loaded %v bytes", len(rom))
	}

	return
}

// memory returns a checked window of length bytes at addr.
func (cpu *Cpu) memory(addr int, length int) (window []byte, err error) {
	if addr < 0 || length < 0 || addr+length > len(cpu.Memory) {
		err = ErrAddress{Addr: addr, Length: length}
		return
	}

	window = cpu.Memory[addr : addr+length]
	return
}

// Peek reads a byte of memory.
func (cpu *Cpu) Peek(addr int) (value byte, err error) {
	window, err := cpu.memory(addr, 1)
	if err != nil {
		return
	}

	value = window[0]
	return
}

// SetKey records the state of a keypad key.
func (cpu *Cpu) SetKey(key uint8, pressed bool) (err error) {
	if int(key) >= len(cpu.Keys) {
		err = fmt.Errorf("%w: 0x%x", ErrKeyRange, key)
		return
	}

	cpu.Keys[key] = pressed
	return
}

// DecrementTimers counts both timers down by one, stopping at zero.
func (cpu *Cpu) DecrementTimers() {
	if cpu.Delay > 0 {
		cpu.Delay--
	}
	if cpu.Sound > 0 {
		cpu.Sound--
	}
}

// FetchCode reads the instruction word at the PC.
func (cpu *Cpu) FetchCode() (code Code, err error) {
	window, err := cpu.memory(int(cpu.Pc), INSTRUCTION_SIZE)
	if err != nil {
		return
	}

	code = Code{Word: uint16(window[0])<<8 | uint16(window[1])}
	return
}

// Tick executes a single CPU instruction cycle.
func (cpu *Cpu) Tick(engine Engine) (err error) {
	code, err := cpu.FetchCode()
	if err != nil {
		return
	}

	err = cpu.Execute(code, engine)
	if err != nil {
		return
	}

	cpu.Ticks++

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %03X\n", "pc", cpu.Pc)
	text += fmt.Sprintf("% 5s: %03X\n", "i", cpu.I)
	for n, val := range cpu.V {
		text += fmt.Sprintf("% 5s: %02X\n", fmt.Sprintf("v%x", n), val)
	}

	strval := "---"
	if val, ok := cpu.Stack.Peek(); ok {
		strval = fmt.Sprintf("%03X", val)
	}
	text += fmt.Sprintf("% 5s: %v (%v)\n", "stack", strval, cpu.Stack.Depth())
	text += fmt.Sprintf("% 5s: %02X\n", "delay", cpu.Delay)
	text += fmt.Sprintf("% 5s: %02X\n", "sound", cpu.Sound)

	keys := ""
	for n, down := range cpu.Keys {
		if down {
			keys += fmt.Sprintf("%X", n)
		} else {
			keys += "."
		}
	}
	text += fmt.Sprintf("% 5s: %v\n", "keys", keys)

	return
}
