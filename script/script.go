// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package script drives an emulator from a Starlark program, for scripted
// regression runs of ROMs without a front-end.
//
//	step(n=1)        run n instructions
//	frame(n=1)       run n frames (instructions plus a timer tick)
//	reg(x)           read Vx
//	set_reg(x, v)    write Vx
//	pc(), index()    read PC and I
//	peek(addr)       read a memory byte
//	delay(), sound() read the timers
//	ticks()          instructions since reset
//	press(k)         hold hex key k down
//	release(k)       let hex key k go
//	pixel(x, y)      read a display pixel (needs a headless engine)
//	screen()         the display as text (needs a headless engine)
package script

import (
	"fmt"
	"io"
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/chip8/cpu"
	"github.com/ezrec/chip8/emulator"
)

// pixelReader is satisfied by engines that keep their frame buffer.
type pixelReader interface {
	Pixel(x, y int) bool
	String() string
}

// Session binds a Starlark thread to an emulator.
type Session struct {
	Verbose bool
	Emu     *emulator.Emulator
	Output  io.Writer // Destination of print().
}

// Run executes a script against the emulator. src may be anything accepted
// by starlark.ExecFileOptions, or nil to read filename.
func Run(emu *emulator.Emulator, filename string, src any, out io.Writer) (err error) {
	ss := &Session{Emu: emu, Output: out, Verbose: emu.Verbose}
	_, err = ss.Exec(filename, src)
	return
}

// Exec runs a script and returns its globals.
func (ss *Session) Exec(filename string, src any) (globals starlark.StringDict, err error) {
	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			if ss.Output != nil {
				fmt.Fprintln(ss.Output, msg)
			}
		},
	}

	if ss.Verbose {
		log.Printf("script: %v", filename)
	}

	opts := syntax.FileOptions{}
	globals, err = starlark.ExecFileOptions(&opts, thread, filename, src, ss.builtins())
	return
}

func (ss *Session) builtins() starlark.StringDict {
	fns := map[string]func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error){
		"step":    ss.step,
		"frame":   ss.frame,
		"reg":     ss.reg,
		"set_reg": ss.setReg,
		"pc":      ss.pc,
		"index":   ss.index,
		"peek":    ss.peek,
		"delay":   ss.delay,
		"sound":   ss.sound,
		"ticks":   ss.ticks,
		"press":   ss.press,
		"release": ss.release,
		"pixel":   ss.pixel,
		"screen":  ss.screen,
	}

	dict := starlark.StringDict{}
	for name, fn := range fns {
		dict[name] = starlark.NewBuiltin(name, fn)
	}

	return dict
}

func (ss *Session) step(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	n := 1
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "n?", &n)
	if err != nil {
		return nil, err
	}

	for range n {
		err = ss.Emu.Tick()
		if err != nil {
			return nil, err
		}
	}

	return starlark.None, nil
}

func (ss *Session) frame(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	n := 1
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "n?", &n)
	if err != nil {
		return nil, err
	}

	for range n {
		err = ss.Emu.Frame()
		if err != nil {
			return nil, err
		}
	}

	return starlark.None, nil
}

// register unpacks a register index.
func register(x int) (index uint8, err error) {
	if x < 0 || x >= cpu.REGISTER_COUNT {
		err = fmt.Errorf("%w: v%v", ErrRegisterInvalid, x)
		return
	}

	index = uint8(x)
	return
}

func (ss *Session) reg(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x int
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &x)
	if err != nil {
		return nil, err
	}

	index, err := register(x)
	if err != nil {
		return nil, err
	}

	return starlark.MakeInt(int(ss.Emu.Cpu.V[index])), nil
}

func (ss *Session) setReg(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x, v int
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &x, &v)
	if err != nil {
		return nil, err
	}

	index, err := register(x)
	if err != nil {
		return nil, err
	}
	if v < 0 || v > 0xff {
		return nil, fmt.Errorf("%w: %v", ErrValueRange, v)
	}

	ss.Emu.Cpu.V[index] = uint8(v)
	return starlark.None, nil
}

func (ss *Session) pc(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0)
	if err != nil {
		return nil, err
	}

	return starlark.MakeInt(int(ss.Emu.Cpu.Pc)), nil
}

func (ss *Session) index(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0)
	if err != nil {
		return nil, err
	}

	return starlark.MakeInt(int(ss.Emu.Cpu.I)), nil
}

func (ss *Session) peek(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var addr int
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &addr)
	if err != nil {
		return nil, err
	}

	value, err := ss.Emu.Cpu.Peek(addr)
	if err != nil {
		return nil, err
	}

	return starlark.MakeInt(int(value)), nil
}

func (ss *Session) delay(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0)
	if err != nil {
		return nil, err
	}

	return starlark.MakeInt(int(ss.Emu.Cpu.Delay)), nil
}

func (ss *Session) sound(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0)
	if err != nil {
		return nil, err
	}

	return starlark.MakeInt(int(ss.Emu.Cpu.Sound)), nil
}

func (ss *Session) ticks(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0)
	if err != nil {
		return nil, err
	}

	return starlark.MakeInt(ss.Emu.Cpu.Ticks), nil
}

func (ss *Session) setKey(b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple, pressed bool) (starlark.Value, error) {
	var key int
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &key)
	if err != nil {
		return nil, err
	}
	if key < 0 || key > 0xff {
		return nil, fmt.Errorf("%w: %v", ErrValueRange, key)
	}

	err = ss.Emu.Cpu.SetKey(uint8(key), pressed)
	if err != nil {
		return nil, err
	}

	return starlark.None, nil
}

func (ss *Session) press(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	return ss.setKey(b, args, kwargs, true)
}

func (ss *Session) release(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	return ss.setKey(b, args, kwargs, false)
}

func (ss *Session) pixel(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x, y int
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &x, &y)
	if err != nil {
		return nil, err
	}

	pr, ok := ss.Emu.Engine.(pixelReader)
	if !ok {
		return nil, ErrNoDisplay
	}

	return starlark.Bool(pr.Pixel(x, y)), nil
}

func (ss *Session) screen(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0)
	if err != nil {
		return nil, err
	}

	pr, ok := ss.Emu.Engine.(pixelReader)
	if !ok {
		return nil, ErrNoDisplay
	}

	return starlark.String(pr.String()), nil
}
