// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package engine

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/ezrec/chip8/cpu"
	"github.com/ezrec/chip8/display"
	"github.com/ezrec/chip8/emulator"
	"github.com/ezrec/chip8/xorshift"
)

const (
	KEY_HOLD_FRAMES = 6    // Frames a key stays down after a keystroke.
	KEY_ESC         = 0x1b // Quit.
	KEY_CTRL_C      = 0x03 // Quit.
)

const (
	ansiHome       = "\x1b[H"
	ansiClear      = "\x1b[2J"
	ansiHideCursor = "\x1b[?25l"
	ansiShowCursor = "\x1b[?25h"
)

// Terminal renders to an ANSI terminal and reads the keypad from a raw mode
// stdin. Terminals report key presses but not releases, so a key is held
// for KEY_HOLD_FRAMES frames after each keystroke.
type Terminal struct {
	display.Display
	Rng *xorshift.Rng

	input  *os.File
	output io.Writer

	events   chan byte
	held     [cpu.KEY_COUNT]int
	dirty    bool
	oldState *term.State
}

var _ emulator.Host = (*Terminal)(nil)

// NewTerminal creates a terminal engine reading keys from input and drawing
// to output.
func NewTerminal(input *os.File, output io.Writer) *Terminal {
	return &Terminal{
		Rng:    xorshift.New(),
		input:  input,
		output: output,
		events: make(chan byte, 64),
	}
}

// Start switches the input to raw mode and begins reading keystrokes.
func (tm *Terminal) Start() (err error) {
	fd := int(tm.input.Fd())
	if !term.IsTerminal(fd) {
		err = ErrNotTerminal
		return
	}

	width, height, err := term.GetSize(fd)
	if err == nil && (width < display.WIDTH || height < display.HEIGHT) {
		err = fmt.Errorf("%w: %vx%v", ErrTerminalSize, width, height)
	}
	if err != nil {
		return
	}

	tm.oldState, err = term.MakeRaw(fd)
	if err != nil {
		return
	}

	_, err = io.WriteString(tm.output, ansiHideCursor+ansiClear)
	if err != nil {
		return
	}

	// The reader blocks in Read and exits with the process.
	go func() {
		buf := make([]byte, 16)
		for {
			n, err := tm.input.Read(buf)
			for _, b := range buf[:n] {
				tm.events <- b
			}
			if err != nil {
				close(tm.events)
				return
			}
		}
	}()

	tm.dirty = true

	return
}

// Stop restores the terminal.
func (tm *Terminal) Stop() (err error) {
	if tm.oldState == nil {
		return
	}

	_, err = io.WriteString(tm.output, ansiShowCursor+"\r\n")
	rerr := term.Restore(int(tm.input.Fd()), tm.oldState)
	tm.oldState = nil
	if err == nil {
		err = rerr
	}

	return
}

func (tm *Terminal) ClearScreen() {
	tm.Display.Clear()
	tm.dirty = true
}

func (tm *Terminal) DrawSprite(x, y, height uint8, sprite []byte) bool {
	tm.dirty = true
	return tm.Display.DrawSprite(x, y, height, sprite)
}

func (tm *Terminal) Rand() uint8 {
	return tm.Rng.Next()
}

// Poll drains pending keystrokes into the keypad and redraws the screen if
// the previous frame changed it.
func (tm *Terminal) Poll(keys *[cpu.KEY_COUNT]bool) (quit bool, err error) {
	for n := range tm.held {
		if tm.held[n] > 0 {
			tm.held[n]--
		}
	}

	quit = tm.drain()

	for n, frames := range tm.held {
		keys[n] = frames > 0
	}

	if tm.dirty {
		err = tm.render()
	}

	return
}

// drain consumes queued keystrokes without blocking.
func (tm *Terminal) drain() (quit bool) {
	for {
		select {
		case b, ok := <-tm.events:
			if !ok {
				quit = true
				return
			}
			if b == KEY_ESC || b == KEY_CTRL_C {
				quit = true
				continue
			}
			if key, ok := RuneKey(rune(b)); ok {
				tm.held[key] = KEY_HOLD_FRAMES
			}
		default:
			return
		}
	}
}

func (tm *Terminal) render() (err error) {
	var buf bytes.Buffer
	buf.WriteString(ansiHome)
	for _, row := range tm.Pixels {
		for _, lit := range row {
			if lit {
				buf.WriteByte('#')
			} else {
				buf.WriteByte(' ')
			}
		}
		// Raw mode does not translate LF.
		buf.WriteString("\r\n")
	}

	_, err = tm.output.Write(buf.Bytes())
	if err != nil {
		return
	}

	tm.dirty = false
	return
}
