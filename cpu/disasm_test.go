package cpu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisassemble(t *testing.T) {
	assert := assert.New(t)

	rom := []byte{
		0x00, 0xe0, // disp_clear
		0x60, 0x05, // V0=05
		0x70, 0x03, // V0+=03
		0xa2, 0x0a, // I=0x20A
		0xd0, 0x15, // draw(V0, V1, 0x5)
		0x23, 0x00, // call 300;
		0x12, 0x00, // goto 200;
		0x00, 0xee, // return;
		0x80, 0x1e, // V0=V1<<1
		0x5a, 0xb1, // unknown
	}

	out := &bytes.Buffer{}
	err := Disassemble(bytes.NewReader(rom), out)
	assert.NoError(err)

	expected := []string{
		"01) 0000\tdisp_clear",
		"02) 0002\tV0=05",
		"03) 0004\tV0+=03",
		"04) 0006\tI=0x20A",
		"05) 0008\tdraw(V0, V1, 0x5)",
		"06) 000A\tcall 300;",
		"07) 000C\tgoto 200;",
		"08) 000E\treturn;",
		"09) 0010\tV0=V1<<1",
		"10) 0012\tUNKNOWN INSTRUCTION 5AB1",
	}
	assert.Equal(strings.Join(expected, "\n")+"\n", out.String())
}

func TestDisassemble_Empty(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	assert.NoError(Disassemble(bytes.NewReader(nil), out))
	assert.Equal("", out.String())
}

func TestDisassemble_Odd(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	err := Disassemble(bytes.NewReader([]byte{0x60, 0x05, 0x70}), out)
	assert.ErrorIs(err, ErrRomOdd)
	assert.Equal("01) 0000\tV0=05\n", out.String())
}
