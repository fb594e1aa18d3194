package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzExecute(f *testing.F) {
	for _, word := range []uint16{0x00e0, 0x00ee, 0x2300, 0x8124, 0xd125, 0xf155, 0xf265, 0xf00a, 0x5121} {
		f.Add(word, uint16(0x300), uint8(0x12), uint8(0x34), false)
		f.Add(word, uint16(0xffe), uint8(0xff), uint8(0x01), true)
	}

	f.Fuzz(func(t *testing.T, word uint16, index uint16, vx uint8, vy uint8, quirk bool) {
		assert := assert.New(t)

		cpu, engine := newTestCpu(Quirks{LoadStore: quirk})
		cpu.I = index
		code := Code{Word: word}
		cpu.V[code.X()] = vx
		cpu.V[code.Y()] = vy

		memory := cpu.Memory
		regs := cpu.V
		depth := cpu.Stack.Depth()
		lit := engine.Lit()

		err := cpu.Execute(code, engine)

		op, ok := code.Decode()
		if !ok {
			assert.ErrorIs(err, ErrOpcodeDecode)
		}
		if op == OP_LD_K {
			assert.ErrorIs(err, ErrOpcodeUnimplemented)
		}

		assert.LessOrEqual(cpu.Stack.Depth(), STACK_LIMIT)

		if err != nil {
			var eo ErrOpcode
			assert.True(errors.As(err, &eo))
			assert.Equal(word, eo.Word)
			assert.Equal(uint16(PROGRAM_START), cpu.Pc)
			assert.Equal(memory, cpu.Memory)
			assert.Equal(regs, cpu.V)
			assert.Equal(index, cpu.I)
			assert.Equal(depth, cpu.Stack.Depth())
			assert.Equal(lit, engine.Lit())
			return
		}

		// Font is never overwritten unless I points into it.
		if index >= uint16(len(FONT)) {
			assert.Equal(FONT[:], cpu.Memory[:len(FONT)])
		}
	})
}
