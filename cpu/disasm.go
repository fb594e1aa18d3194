package cpu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Disassemble writes a pseudo-C listing of a ROM image, one line per
// instruction word:
//
//	01) 0000	V0=05
//
// Data embedded in the ROM is listed as instructions too, since the decode
// is purely linear.
func Disassemble(r io.Reader, w io.Writer) (err error) {
	in := bufio.NewReader(r)
	out := bufio.NewWriter(w)
	defer func() {
		ferr := out.Flush()
		if err == nil {
			err = ferr
		}
	}()

	var word [INSTRUCTION_SIZE]byte
	offset := 0
	for n := 1; ; n++ {
		var read int
		read, err = io.ReadFull(in, word[:])
		if errors.Is(err, io.EOF) {
			err = nil
			return
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			err = fmt.Errorf("%w: offset 0x%04x", ErrRomOdd, offset)
			return
		}
		if err != nil {
			return
		}

		code := Code{Word: uint16(word[0])<<8 | uint16(word[1])}
		_, err = fmt.Fprintf(out, "%02d) %04X\t%v\n", n, offset, code)
		if err != nil {
			return
		}

		offset += read
	}
}
