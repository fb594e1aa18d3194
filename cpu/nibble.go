package cpu

// Nibbles splits an instruction word into its four 4-bit fields, most
// significant first.
func Nibbles(word [2]byte) [4]uint8 {
	return [4]uint8{
		(word[0] & 0xf0) >> 4,
		word[0] & 0x0f,
		(word[1] & 0xf0) >> 4,
		word[1] & 0x0f,
	}
}

// MergeNibbles8 joins two nibbles, first one high.
func MergeNibbles8(a, b uint8) uint8 {
	return (a&0xf)<<4 | (b & 0xf)
}

// MergeNibbles12 joins three nibbles, first one high.
func MergeNibbles12(a, b, c uint8) uint16 {
	return uint16(a&0xf)<<8 | uint16(b&0xf)<<4 | uint16(c&0xf)
}
