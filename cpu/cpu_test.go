package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCpu(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(Quirks{})

	assert.False(cpu.Verbose)
	assert.False(cpu.Quirks().LoadStore)
	assert.Equal(uint16(PROGRAM_START), cpu.Pc)
	assert.Equal(uint16(0), cpu.I)
	assert.True(cpu.Stack.Empty())
	assert.Equal(FONT[:], cpu.Memory[FONT_BASE:FONT_BASE+len(FONT)])
	for _, b := range cpu.Memory[len(FONT):] {
		if b != 0 {
			assert.Fail("memory not zeroed")
			break
		}
	}

	assert.True(NewCpu(Quirks{LoadStore: true}).Quirks().LoadStore)
}

func TestCpu_Load(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(Quirks{})
	assert.NoError(cpu.Load([]byte{0x60, 0x05}))
	assert.Equal(byte(0x60), cpu.Memory[PROGRAM_START])
	assert.Equal(byte(0x05), cpu.Memory[PROGRAM_START+1])

	big := make([]byte, PROGRAM_SIZE)
	big[len(big)-1] = 0xaa
	assert.NoError(cpu.Load(big))
	assert.Equal(byte(0xaa), cpu.Memory[MEMORY_SIZE-1])

	err := cpu.Load(make([]byte, PROGRAM_SIZE+1))
	assert.ErrorIs(err, ErrRomSize)
}

func TestCpu_Reset(t *testing.T) {
	assert := assert.New(t)

	cpu, engine := newTestCpu(Quirks{}, 0x6005, 0xa300, 0x2400)
	for range 3 {
		assert.NoError(cpu.Tick(engine))
	}
	cpu.Delay = 3
	cpu.Sound = 4
	assert.NoError(cpu.SetKey(0xa, true))

	cpu.Reset()

	assert.Equal(uint16(PROGRAM_START), cpu.Pc)
	assert.Equal(uint16(0), cpu.I)
	assert.Equal(uint8(0), cpu.V[0])
	assert.Equal(0, cpu.Stack.Depth())
	assert.Equal(uint8(0), cpu.Delay)
	assert.Equal(uint8(0), cpu.Sound)
	assert.False(cpu.Keys[0xa])
	assert.Equal(0, cpu.Ticks)
	assert.Equal(byte(0), cpu.Memory[PROGRAM_START])
	assert.Equal(FONT[0], cpu.Memory[FONT_BASE])
}

func TestCpu_SetKey(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(Quirks{})
	assert.NoError(cpu.SetKey(0xf, true))
	assert.True(cpu.Keys[0xf])
	assert.NoError(cpu.SetKey(0xf, false))
	assert.False(cpu.Keys[0xf])

	assert.ErrorIs(cpu.SetKey(0x10, true), ErrKeyRange)
}

func TestCpu_DecrementTimers(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(Quirks{})
	cpu.Delay = 0
	cpu.Sound = 2

	cpu.DecrementTimers()
	assert.Equal(uint8(0), cpu.Delay)
	assert.Equal(uint8(1), cpu.Sound)

	cpu.Delay = 1
	cpu.DecrementTimers()
	assert.Equal(uint8(0), cpu.Delay)
	assert.Equal(uint8(0), cpu.Sound)

	cpu.DecrementTimers()
	assert.Equal(uint8(0), cpu.Delay)
	assert.Equal(uint8(0), cpu.Sound)
}

func TestCpu_Peek(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(Quirks{})
	val, err := cpu.Peek(0)
	assert.NoError(err)
	assert.Equal(FONT[0], val)

	_, err = cpu.Peek(MEMORY_SIZE)
	assert.ErrorIs(err, ErrMemoryRange)
	_, err = cpu.Peek(-1)
	assert.ErrorIs(err, ErrMemoryRange)
}

func TestCpu_String(t *testing.T) {
	assert := assert.New(t)

	cpu, engine := newTestCpu(Quirks{}, 0x6a42, 0x2300)
	assert.NoError(cpu.Tick(engine))
	assert.NoError(cpu.Tick(engine))
	assert.NoError(cpu.SetKey(3, true))

	text := cpu.String()
	assert.Contains(text, "   pc: 300\n")
	assert.Contains(text, "   va: 42\n")
	assert.Contains(text, "stack: 204 (1)\n")
	assert.Contains(text, " keys: ...3............\n")
	assert.Equal(REGISTER_COUNT+6, strings.Count(text, "\n"))
}
