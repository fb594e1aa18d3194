// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"log"
)

// Execute executes a single decoded instruction located at the PC.
//
// On error no machine state has been modified, and the error wraps
// ErrOpcode with the failing word and address.
func (cpu *Cpu) Execute(code Code, engine Engine) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode{Pc: cpu.Pc, Word: code.Word}, err)
		}
	}()

	op, ok := code.Decode()
	if !ok {
		err = ErrOpcodeDecode
		return
	}

	if cpu.Verbose {
		log.Printf("%03x: %04x %v", cpu.Pc, code.Word, code)
	}

	v := &cpu.V
	x := code.X()
	y := code.Y()

	next_pc := cpu.Pc + INSTRUCTION_SIZE
	skip_pc := next_pc + INSTRUCTION_SIZE

	switch op {
	case OP_CLS:
		engine.ClearScreen()
	case OP_RET:
		next_pc, err = cpu.Stack.Pop()
	case OP_SYS:
		// Machine code routines do not exist on this host.
	case OP_JP:
		next_pc = code.NNN()
	case OP_CALL:
		err = cpu.Stack.Push(next_pc)
		next_pc = code.NNN()
	case OP_SE:
		if v[x] == code.NN() {
			next_pc = skip_pc
		}
	case OP_SNE:
		if v[x] != code.NN() {
			next_pc = skip_pc
		}
	case OP_SE_V:
		if v[x] == v[y] {
			next_pc = skip_pc
		}
	case OP_LD:
		v[x] = code.NN()
	case OP_ADD:
		v[x] += code.NN()
	case OP_LD_V:
		v[x] = v[y]
	case OP_OR:
		v[x] |= v[y]
	case OP_AND:
		v[x] &= v[y]
	case OP_XOR:
		v[x] ^= v[y]
	case OP_ADD_V:
		sum := uint16(v[x]) + uint16(v[y])
		cpu.setWithFlag(x, uint8(sum), sum > 0xff)
	case OP_SUB:
		a, b := v[x], v[y]
		cpu.setWithFlag(x, a-b, a >= b)
	case OP_SHR:
		src := v[y]
		cpu.setWithFlag(x, src>>1, src&0x01 != 0)
	case OP_SUBN:
		a, b := v[x], v[y]
		cpu.setWithFlag(x, b-a, b >= a)
	case OP_SHL:
		src := v[y]
		cpu.setWithFlag(x, src<<1, src&0x80 != 0)
	case OP_SNE_V:
		if v[x] != v[y] {
			next_pc = skip_pc
		}
	case OP_LD_I:
		cpu.I = code.NNN()
	case OP_JP_V0:
		next_pc = uint16(v[0]) + code.NNN()
	case OP_RND:
		v[x] = engine.Rand() & code.NN()
	case OP_DRW:
		var sprite []byte
		sprite, err = cpu.memory(int(cpu.I), int(code.N()))
		if err != nil {
			break
		}
		collided := engine.DrawSprite(v[x], v[y], code.N(), sprite)
		v[REGISTER_FLAG] = flag(collided)
	case OP_SKP:
		if cpu.Keys[v[x]&0xf] {
			next_pc = skip_pc
		}
	case OP_SKNP:
		if !cpu.Keys[v[x]&0xf] {
			next_pc = skip_pc
		}
	case OP_LD_VDT:
		v[x] = cpu.Delay
	case OP_LD_K:
		err = ErrOpcodeUnimplemented
	case OP_LD_DT:
		cpu.Delay = v[x]
	case OP_LD_ST:
		cpu.Sound = v[x]
	case OP_ADD_I:
		cpu.I += uint16(v[x])
	case OP_LD_F:
		cpu.I = FONT_BASE + uint16(v[x]&0xf)*FONT_GLYPH_SIZE
	case OP_LD_B:
		var bcd []byte
		bcd, err = cpu.memory(int(cpu.I), 3)
		if err != nil {
			break
		}
		bcd[0] = v[x] / 100
		bcd[1] = (v[x] / 10) % 10
		bcd[2] = v[x] % 10
	case OP_LD_IV:
		var block []byte
		block, err = cpu.memory(int(cpu.I), int(x)+1)
		if err != nil {
			break
		}
		copy(block, v[:x+1])
		cpu.advanceIndex(x)
	case OP_LD_VI:
		var block []byte
		block, err = cpu.memory(int(cpu.I), int(x)+1)
		if err != nil {
			break
		}
		copy(v[:x+1], block)
		cpu.advanceIndex(x)
	default:
		err = ErrOpcodeDecode
	}

	if err != nil {
		return
	}

	cpu.Pc = next_pc

	return
}

// setWithFlag stores an ALU result, then VF. When the target is VF the flag
// is what remains.
func (cpu *Cpu) setWithFlag(x uint8, result uint8, carry bool) {
	cpu.V[x] = result
	cpu.V[REGISTER_FLAG] = flag(carry)
}

// advanceIndex applies the load/store quirk after a register block transfer.
func (cpu *Cpu) advanceIndex(x uint8) {
	if cpu.quirks.LoadStore {
		cpu.I += uint16(x) + 1
	}
}

func flag(set bool) uint8 {
	if set {
		return 1
	}
	return 0
}
