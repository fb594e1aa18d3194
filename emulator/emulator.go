// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator paces a CHIP-8 CPU against its display engine.
package emulator

import (
	"context"
	"log"
	"slices"
	"time"

	"github.com/ezrec/chip8/cpu"
)

const (
	CPU_HZ           = 600                // Instructions per second.
	TIMER_HZ         = 60                 // Timer decrements per second.
	CYCLES_PER_FRAME = CPU_HZ / TIMER_HZ // Instructions per timer tick.
)

// Host is an engine that also owns the keypad, and may ask the emulator to
// stop. Poll is called once per frame, before the frame's instructions run.
type Host interface {
	cpu.Engine
	Poll(keys *[cpu.KEY_COUNT]bool) (quit bool, err error)
}

// Emulator state. CPU + engine + loaded ROM.
type Emulator struct {
	Verbose  bool       // If set, enables verbose logging.
	*cpu.Cpu            // Reference to the CPU simulation.
	Engine   cpu.Engine // Display and randomness for the CPU.
	Rom      []byte     // ROM image reloaded on every reset.

	CyclesPerFrame int // Instructions per timer tick.
	Frames         int // Frames run since reset.
}

// NewEmulator creates a new emulator.
func NewEmulator(engine cpu.Engine, quirks cpu.Quirks) (emu *Emulator) {
	emu = &Emulator{
		Cpu:            cpu.NewCpu(quirks),
		Engine:         engine,
		CyclesPerFrame: CYCLES_PER_FRAME,
	}

	return
}

// Load a ROM image and reset the machine.
func (emu *Emulator) Load(rom []byte) (err error) {
	emu.Rom = slices.Clone(rom)

	err = emu.Reset()
	return
}

// Reset the machine and reload the ROM.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.Frames = 0

	err = emu.Cpu.Load(emu.Rom)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: reset, %v byte rom", len(emu.Rom))
	}

	return
}

// Tick performs a single instruction of the emulator.
func (emu *Emulator) Tick() (err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Pc
	err = emu.Cpu.Tick(emu.Engine)
	if err != nil {
		err = &ErrRuntime{Pc: pc, Err: err}
	}

	return
}

// Frame runs one timer period worth of instructions, then ticks the timers.
func (emu *Emulator) Frame() (err error) {
	for range emu.CyclesPerFrame {
		err = emu.Tick()
		if err != nil {
			return
		}
	}

	emu.Cpu.DecrementTimers()
	emu.Frames++

	return
}

// Run frames at TIMER_HZ until the context is done, the engine asks to
// quit, or an instruction fails. If the engine is a Host it is polled for
// keypad state before each frame.
func (emu *Emulator) Run(ctx context.Context) (err error) {
	host, _ := emu.Engine.(Host)

	ticker := time.NewTicker(time.Second / TIMER_HZ)
	defer ticker.Stop()

	if emu.Verbose {
		log.Printf("emulator: run at %v Hz, %v cycles/frame", TIMER_HZ, emu.CyclesPerFrame)
		defer func() {
			log.Printf("emulator: stopped after %v frames: %v", emu.Frames, err)
		}()
	}

	for {
		if host != nil {
			var quit bool
			quit, err = host.Poll(&emu.Cpu.Keys)
			if err != nil || quit {
				return
			}
		}

		err = emu.Frame()
		if err != nil {
			return
		}

		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		case <-ticker.C:
		}
	}
}
