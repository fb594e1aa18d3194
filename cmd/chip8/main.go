// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/ezrec/chip8/cpu"
	"github.com/ezrec/chip8/emulator"
	"github.com/ezrec/chip8/engine"
	"github.com/ezrec/chip8/script"
)

func main() {
	var mode string
	var scale int
	var disassemble bool
	var loadStore bool
	var scriptFile string
	var frames int
	var verbose bool

	flag.StringVar(&mode, "m", "window", "Front-end: window, term, or headless")
	flag.IntVar(&scale, "s", engine.DEFAULT_SCALE, "Window pixel scale")
	flag.BoolVar(&disassemble, "d", false, "Disassemble the ROM, do not execute")
	flag.BoolVar(&loadStore, "q", false, "FX55/FX65 advance I (load/store quirk)")
	flag.StringVar(&scriptFile, "x", "", ".star script to drive a headless run")
	flag.IntVar(&frames, "n", 600, "Frames to run in headless mode")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: expected one ROM path, got %v", os.Args[0], flag.Args())
	}

	path := flag.Arg(0)

	if disassemble {
		inf, err := os.Open(path)
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}
		defer inf.Close()

		err = cpu.Disassemble(inf, os.Stdout)
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}
		return
	}

	rom, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	quirks := cpu.Quirks{LoadStore: loadStore}

	if len(scriptFile) != 0 {
		mode = "headless"
	}

	switch mode {
	case "window":
		win := engine.NewWindow(scale)
		emu := newEmulator(win, quirks, rom, verbose, path)
		err = win.Run(emu)
	case "term":
		term := engine.NewTerminal(os.Stdin, os.Stdout)
		emu := newEmulator(term, quirks, rom, verbose, path)

		err = term.Start()
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		err = emu.Run(ctx)
		stop()

		serr := term.Stop()
		if errors.Is(err, context.Canceled) {
			err = nil
		}
		err = errors.Join(err, serr)
	case "headless":
		hl := engine.NewHeadless()
		emu := newEmulator(hl, quirks, rom, verbose, path)

		if len(scriptFile) != 0 {
			err = script.Run(emu, scriptFile, nil, os.Stdout)
			if err != nil {
				log.Fatalf("%v: %v", scriptFile, err)
			}
			return
		}

		for range frames {
			err = emu.Frame()
			if err != nil {
				break
			}
		}
		fmt.Print(hl.String())
		if verbose {
			fmt.Print(emu.Cpu.String())
		}
	default:
		log.Fatalf("%v: unknown mode %q", os.Args[0], mode)
	}

	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}
}

func newEmulator(eng cpu.Engine, quirks cpu.Quirks, rom []byte, verbose bool, path string) (emu *emulator.Emulator) {
	emu = emulator.NewEmulator(eng, quirks)
	emu.Verbose = verbose

	err := emu.Load(rom)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	return
}
