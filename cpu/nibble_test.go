package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNibbles(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		word    [2]byte
		nibbles [4]uint8
	}){
		{[2]byte{0x00, 0x00}, [4]uint8{0, 0, 0, 0}},
		{[2]byte{0x12, 0x34}, [4]uint8{1, 2, 3, 4}},
		{[2]byte{0xd0, 0x1f}, [4]uint8{0xd, 0x0, 0x1, 0xf}},
		{[2]byte{0xff, 0xff}, [4]uint8{0xf, 0xf, 0xf, 0xf}},
	}

	for _, entry := range table {
		assert.Equal(entry.nibbles, Nibbles(entry.word), "%#v", entry.word)
	}
}

func TestMergeNibbles(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint8(0x00), MergeNibbles8(0, 0))
	assert.Equal(uint8(0xa5), MergeNibbles8(0xa, 0x5))
	assert.Equal(uint8(0xff), MergeNibbles8(0xf, 0xf))

	assert.Equal(uint16(0x000), MergeNibbles12(0, 0, 0))
	assert.Equal(uint16(0x300), MergeNibbles12(3, 0, 0))
	assert.Equal(uint16(0xabc), MergeNibbles12(0xa, 0xb, 0xc))

	// Round trip through the nibble split.
	for word := range 0x10000 {
		n := Nibbles([2]byte{byte(word >> 8), byte(word)})
		assert.Equal(uint16(word&0xfff), MergeNibbles12(n[1], n[2], n[3]))
		assert.Equal(uint8(word&0xff), MergeNibbles8(n[2], n[3]))
	}
}
