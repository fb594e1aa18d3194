package script

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.starlark.net/starlark"

	"github.com/ezrec/chip8/cpu"
	"github.com/ezrec/chip8/emulator"
	"github.com/ezrec/chip8/engine"
)

func romOf(words ...uint16) (rom []byte) {
	for _, word := range words {
		rom = append(rom, byte(word>>8), byte(word))
	}
	return
}

// Draws the 'A' glyph at the origin, sets a delay, then spins.
var glyphRom = romOf(
	0x600a, // ld v0, 0xa
	0xf029, // ld f, v0
	0x6100, // ld v1, 0
	0xd115, // drw v1, v1, 5
	0x6203, // ld v2, 3
	0xf215, // ld dt, v2
	0x120c, // jp 0x20c
)

func newTestEmulator(t *testing.T) (emu *emulator.Emulator) {
	emu = emulator.NewEmulator(engine.NewHeadless(), cpu.Quirks{})
	err := emu.Load(glyphRom)
	assert.NoError(t, err)
	return
}

func TestRun(t *testing.T) {
	assert := assert.New(t)

	src := `
step(2)
print("v0", reg(0), "i", index())
if index() != 50:
    fail("bad index %d" % index())
step(2)
if not pixel(0, 0) or pixel(4, 0):
    fail("bad glyph")
if pc() != 0x208:
    fail("bad pc")
print(ticks())
`
	emu := newTestEmulator(t)

	var out strings.Builder
	err := Run(emu, "glyph.star", src, &out)
	assert.NoError(err)
	assert.Equal("v0 10 i 50\n4\n", out.String())
}

func TestRun_Frame(t *testing.T) {
	assert := assert.New(t)

	src := `
frame()
d = delay()
frame(2)
result = [d, delay(), sound()]
`
	emu := newTestEmulator(t)
	ss := &Session{Emu: emu}

	globals, err := ss.Exec("frame.star", src)
	assert.NoError(err)
	assert.Equal("[2, 0, 0]", globals["result"].String())
	assert.Equal(3, emu.Frames)
}

func TestRun_Registers(t *testing.T) {
	assert := assert.New(t)

	src := `
set_reg(0xf, 0x42)
result = [reg(15), peek(0x200), peek(0x201)]
press(5)
press(0xa)
release(0xa)
`
	emu := newTestEmulator(t)
	ss := &Session{Emu: emu}

	globals, err := ss.Exec("regs.star", src)
	assert.NoError(err)
	assert.Equal("[66, 96, 10]", globals["result"].String())
	assert.Equal(uint8(0x42), emu.Cpu.V[cpu.REGISTER_FLAG])
	assert.True(emu.Cpu.Keys[5])
	assert.False(emu.Cpu.Keys[0xa])
}

func TestRun_Screen(t *testing.T) {
	assert := assert.New(t)

	emu := newTestEmulator(t)
	ss := &Session{Emu: emu}

	globals, err := ss.Exec("screen.star", "step(4)\ntext = screen()\n")
	assert.NoError(err)

	text, ok := globals["text"].(starlark.String)
	assert.True(ok)

	lines := strings.Split(string(text), "\n")
	assert.True(strings.HasPrefix(lines[0], "#### "))
}

func TestRun_Errors(t *testing.T) {
	table := [](struct {
		name string
		src  string
		text string
	}){
		{"fail", `fail("nope")`, "nope"},
		{"register", `reg(16)`, "v16"},
		{"set_reg", `set_reg(1, 256)`, "256"},
		{"peek", `peek(4096)`, "address 0x1000"},
		{"key", `press(16)`, "key out of range"},
		{"args", `step("x")`, "step"},
		{"undefined", `explode()`, "explode"},
	}

	for _, entry := range table {
		t.Run(entry.name, func(t *testing.T) {
			emu := newTestEmulator(t)
			err := Run(emu, entry.name+".star", entry.src, nil)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), entry.text)
		})
	}
}

func TestRun_Fault(t *testing.T) {
	assert := assert.New(t)

	emu := emulator.NewEmulator(engine.NewHeadless(), cpu.Quirks{})
	assert.NoError(emu.Load(romOf(0x00ee)))

	err := Run(emu, "fault.star", "step()", nil)
	assert.Error(err)
	assert.Contains(err.Error(), "stack empty")
}

// blindEngine draws nowhere.
type blindEngine struct{}

func (blindEngine) ClearScreen()                                      {}
func (blindEngine) DrawSprite(x, y, height uint8, sprite []byte) bool { return false }
func (blindEngine) Rand() uint8                                       { return 0 }

func TestRun_NoDisplay(t *testing.T) {
	assert := assert.New(t)

	emu := emulator.NewEmulator(blindEngine{}, cpu.Quirks{})
	assert.NoError(emu.Load(glyphRom))

	err := Run(emu, "blind.star", "pixel(0, 0)", nil)
	assert.ErrorContains(err, ErrNoDisplay.Error())

	err = Run(emu, "blind.star", "screen()", nil)
	assert.ErrorContains(err, ErrNoDisplay.Error())
}
