package cpu

import (
	"github.com/ezrec/chip8/display"
	"github.com/ezrec/chip8/xorshift"
)

// testEngine is a headless engine backed by a real display and generator.
type testEngine struct {
	display.Display
	rng    *xorshift.Rng
	clears int
}

var _ Engine = (*testEngine)(nil)

func newTestEngine() *testEngine {
	return &testEngine{rng: xorshift.New()}
}

func (te *testEngine) ClearScreen() {
	te.clears++
	te.Display.Clear()
}

func (te *testEngine) Rand() uint8 {
	return te.rng.Next()
}

// romOf packs instruction words big-endian.
func romOf(words ...uint16) (rom []byte) {
	for _, word := range words {
		rom = append(rom, byte(word>>8), byte(word))
	}
	return
}

func newTestCpu(quirks Quirks, words ...uint16) (cpu *Cpu, engine *testEngine) {
	cpu = NewCpu(quirks)
	engine = newTestEngine()
	err := cpu.Load(romOf(words...))
	if err != nil {
		panic(err)
	}
	return
}
