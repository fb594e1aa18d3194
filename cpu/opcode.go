package cpu

import (
	"fmt"
)

// Op is a decoded CHIP-8 operation.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_INVALID = Op(0)  // ???
	OP_CLS     = Op(1)  // cls
	OP_RET     = Op(2)  // ret
	OP_SYS     = Op(3)  // sys
	OP_JP      = Op(4)  // jp
	OP_CALL    = Op(5)  // call
	OP_SE      = Op(6)  // se
	OP_SNE     = Op(7)  // sne
	OP_SE_V    = Op(8)  // se.v
	OP_LD      = Op(9)  // ld
	OP_ADD     = Op(10) // add
	OP_LD_V    = Op(11) // ld.v
	OP_OR      = Op(12) // or
	OP_AND     = Op(13) // and
	OP_XOR     = Op(14) // xor
	OP_ADD_V   = Op(15) // add.v
	OP_SUB     = Op(16) // sub
	OP_SHR     = Op(17) // shr
	OP_SUBN    = Op(18) // subn
	OP_SHL     = Op(19) // shl
	OP_SNE_V   = Op(20) // sne.v
	OP_LD_I    = Op(21) // ld.i
	OP_JP_V0   = Op(22) // jp.v0
	OP_RND     = Op(23) // rnd
	OP_DRW     = Op(24) // drw
	OP_SKP     = Op(25) // skp
	OP_SKNP    = Op(26) // sknp
	OP_LD_VDT  = Op(27) // ld.vdt
	OP_LD_K    = Op(28) // ld.k
	OP_LD_DT   = Op(29) // ld.dt
	OP_LD_ST   = Op(30) // ld.st
	OP_ADD_I   = Op(31) // add.i
	OP_LD_F    = Op(32) // ld.f
	OP_LD_B    = Op(33) // ld.b
	OP_LD_IV   = Op(34) // ld.iv
	OP_LD_VI   = Op(35) // ld.vi
)

// OP_COUNT is the number of valid operations.
const OP_COUNT = 35

// Code is a single 16-bit instruction word.
type Code struct {
	Word uint16
}

// MakeCode assembles an instruction from its four nibbles.
func MakeCode(n1, n2, n3, n4 uint8) Code {
	return Code{Word: uint16(n1&0xf)<<12 | MergeNibbles12(n2, n3, n4)}
}

// Nibbles returns the four nibbles of the instruction word.
func (code Code) Nibbles() [4]uint8 {
	return Nibbles([2]byte{byte(code.Word >> 8), byte(code.Word)})
}

// X is the first register operand.
func (code Code) X() uint8 {
	return code.Nibbles()[1]
}

// Y is the second register operand.
func (code Code) Y() uint8 {
	return code.Nibbles()[2]
}

// N is the trailing 4-bit immediate.
func (code Code) N() uint8 {
	return code.Nibbles()[3]
}

// NN is the trailing 8-bit immediate.
func (code Code) NN() uint8 {
	n := code.Nibbles()
	return MergeNibbles8(n[2], n[3])
}

// NNN is the trailing 12-bit address.
func (code Code) NNN() uint16 {
	n := code.Nibbles()
	return MergeNibbles12(n[1], n[2], n[3])
}

// Decode selects the operation for the instruction word.
// Words outside of the instruction set decode to OP_INVALID.
func (code Code) Decode() (op Op, ok bool) {
	n := code.Nibbles()

	switch n[0] {
	case 0x0:
		switch {
		case n[1] == 0 && n[2] == 0xe && n[3] == 0x0:
			op = OP_CLS
		case n[1] == 0 && n[2] == 0xe && n[3] == 0xe:
			op = OP_RET
		default:
			op = OP_SYS
		}
	case 0x1:
		op = OP_JP
	case 0x2:
		op = OP_CALL
	case 0x3:
		op = OP_SE
	case 0x4:
		op = OP_SNE
	case 0x5:
		if n[3] == 0 {
			op = OP_SE_V
		}
	case 0x6:
		op = OP_LD
	case 0x7:
		op = OP_ADD
	case 0x8:
		switch n[3] {
		case 0x0:
			op = OP_LD_V
		case 0x1:
			op = OP_OR
		case 0x2:
			op = OP_AND
		case 0x3:
			op = OP_XOR
		case 0x4:
			op = OP_ADD_V
		case 0x5:
			op = OP_SUB
		case 0x6:
			op = OP_SHR
		case 0x7:
			op = OP_SUBN
		case 0xe:
			op = OP_SHL
		}
	case 0x9:
		if n[3] == 0 {
			op = OP_SNE_V
		}
	case 0xa:
		op = OP_LD_I
	case 0xb:
		op = OP_JP_V0
	case 0xc:
		op = OP_RND
	case 0xd:
		op = OP_DRW
	case 0xe:
		switch MergeNibbles8(n[2], n[3]) {
		case 0x9e:
			op = OP_SKP
		case 0xa1:
			op = OP_SKNP
		}
	case 0xf:
		switch MergeNibbles8(n[2], n[3]) {
		case 0x07:
			op = OP_LD_VDT
		case 0x0a:
			op = OP_LD_K
		case 0x15:
			op = OP_LD_DT
		case 0x18:
			op = OP_LD_ST
		case 0x1e:
			op = OP_ADD_I
		case 0x29:
			op = OP_LD_F
		case 0x33:
			op = OP_LD_B
		case 0x55:
			op = OP_LD_IV
		case 0x65:
			op = OP_LD_VI
		}
	}

	ok = op != OP_INVALID
	return
}

// String returns the pseudo-C rendering of the instruction.
func (code Code) String() (out string) {
	op, _ := code.Decode()
	x := code.X()
	y := code.Y()

	switch op {
	case OP_CLS:
		out = "disp_clear"
	case OP_RET:
		out = "return;"
	case OP_SYS:
		out = fmt.Sprintf("sys %03X", code.NNN())
	case OP_JP:
		out = fmt.Sprintf("goto %03X;", code.NNN())
	case OP_CALL:
		out = fmt.Sprintf("call %03X;", code.NNN())
	case OP_SE:
		out = fmt.Sprintf("if(V%X==%02X) skip_next;", x, code.NN())
	case OP_SNE:
		out = fmt.Sprintf("if(V%X!=%02X) skip_next;", x, code.NN())
	case OP_SE_V:
		out = fmt.Sprintf("if(V%X==V%X) skip_next;", x, y)
	case OP_LD:
		out = fmt.Sprintf("V%X=%02X", x, code.NN())
	case OP_ADD:
		out = fmt.Sprintf("V%X+=%02X", x, code.NN())
	case OP_LD_V:
		out = fmt.Sprintf("V%X=V%X", x, y)
	case OP_OR:
		out = fmt.Sprintf("V%X=V%X|V%X", x, x, y)
	case OP_AND:
		out = fmt.Sprintf("V%X=V%X&V%X", x, x, y)
	case OP_XOR:
		out = fmt.Sprintf("V%X=V%X^V%X", x, x, y)
	case OP_ADD_V:
		out = fmt.Sprintf("V%X+=V%X", x, y)
	case OP_SUB:
		out = fmt.Sprintf("V%X-=V%X", x, y)
	case OP_SHR:
		out = fmt.Sprintf("V%X=V%X>>1", x, y)
	case OP_SUBN:
		out = fmt.Sprintf("V%X=V%X-V%X", x, y, x)
	case OP_SHL:
		out = fmt.Sprintf("V%X=V%X<<1", x, y)
	case OP_SNE_V:
		out = fmt.Sprintf("if(V%X!=V%X) skip_next;", x, y)
	case OP_LD_I:
		out = fmt.Sprintf("I=0x%03X", code.NNN())
	case OP_JP_V0:
		out = fmt.Sprintf("PC=V0+0x%03X", code.NNN())
	case OP_RND:
		out = fmt.Sprintf("V%X=rand() & 0x%02X", x, code.NN())
	case OP_DRW:
		out = fmt.Sprintf("draw(V%X, V%X, 0x%X)", x, y, code.N())
	case OP_SKP:
		out = fmt.Sprintf("if(key()==V%X)", x)
	case OP_SKNP:
		out = fmt.Sprintf("if(key()!=V%X)", x)
	case OP_LD_VDT:
		out = fmt.Sprintf("V%X=get_delay()", x)
	case OP_LD_K:
		out = fmt.Sprintf("V%X=get_key()", x)
	case OP_LD_DT:
		out = fmt.Sprintf("delay_timer(V%X)", x)
	case OP_LD_ST:
		out = fmt.Sprintf("sound_timer(V%X)", x)
	case OP_ADD_I:
		out = fmt.Sprintf("I += V%X", x)
	case OP_LD_F:
		out = fmt.Sprintf("I = sprite_addr(V%X)", x)
	case OP_LD_B:
		out = fmt.Sprintf("set_BCD(V%X)", x)
	case OP_LD_IV:
		out = fmt.Sprintf("reg_dump(V%X, &I)", x)
	case OP_LD_VI:
		out = fmt.Sprintf("reg_load(V%X, &I)", x)
	default:
		out = fmt.Sprintf("UNKNOWN INSTRUCTION %04X", code.Word)
	}

	return
}
