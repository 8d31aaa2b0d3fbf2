package cpu

import (
	"errors"

	"github.com/ezrec/sicxe/memory"
)

// Format 3/4 addressing flags.
const (
	FLAG_N = 0x02 // Indirect (byte 0)
	FLAG_I = 0x01 // Immediate (byte 0)
	FLAG_X = 0x80 // Indexed (byte 1)
	FLAG_B = 0x40 // Base relative (byte 1)
	FLAG_P = 0x20 // PC relative (byte 1)
	FLAG_E = 0x10 // Extended, format 4 (byte 1)

	ADDRESS_MASK = 0xFFFFF // SIC/XE addresses are 20 bits.
)

// isJump is true for opcodes whose effective address is a branch target.
func isJump(op Opcode) bool {
	switch op {
	case OP_J, OP_JEQ, OP_JGT, OP_JLT, OP_JSUB:
		return true
	}
	return false
}

// Decode reads the instruction at byte address pc, and resolves its
// effective address against the current register state.
func (cpu *Cpu) Decode(pc int) (inst Instruction, length int, err error) {
	var code [4]byte

	err = cpu.Memory.Read(pc, code[:1])
	if err != nil {
		return
	}

	op := Opcode(code[0])
	switch {
	case op.Valid() && op.Format() == FORMAT_1:
		inst = Instruction{Opcode: op}
		length = 1
		return
	case op.Valid() && op.Format() == FORMAT_2:
		err = cpu.Memory.Read(pc, code[:2])
		if err != nil {
			return
		}
		r1 := int(code[1] >> 4)
		r2 := int(code[1] & 0xf)
		inst = Instruction{Opcode: op}
		switch op {
		case OP_SHIFTL, OP_SHIFTR:
			// The count is encoded as n-1.
			inst.Operands = []int{r1, r2 + 1}
		default:
			inst.Operands = []int{r1, r2}[:op.Operands()]
		}
		length = 2
		return
	}

	op = Opcode(code[0] &^ (FLAG_N | FLAG_I))
	if !op.Valid() || op.Format() != FORMAT_3 {
		err = errors.Join(ErrOpcodeInvalid, memory.ErrAddress(pc))
		return
	}

	err = cpu.Memory.Read(pc, code[:3])
	if err != nil {
		return
	}

	inst = Instruction{Opcode: op}
	ni := code[0] & (FLAG_N | FLAG_I)
	flags := code[1]
	length = 3

	var address int
	switch {
	case ni == 0:
		// SIC compatible: 15-bit direct address.
		address = int(code[1]&0x7f)<<8 | int(code[2])
	case flags&FLAG_E != 0:
		if flags&(FLAG_B|FLAG_P) != 0 {
			err = errors.Join(ErrAddressMode, memory.ErrAddress(pc))
			return
		}
		err = cpu.Memory.Read(pc, code[:4])
		if err != nil {
			return
		}
		address = int(code[1]&0xf)<<16 | int(code[2])<<8 | int(code[3])
		length = 4
	default:
		disp := int(code[1]&0xf)<<8 | int(code[2])
		switch flags & (FLAG_B | FLAG_P) {
		case 0:
			address = disp
		case FLAG_P:
			if disp&0x800 != 0 {
				disp -= 0x1000
			}
			address = pc + length + disp
		case FLAG_B:
			address = int(cpu.Register.Get(REG_B).Unsigned()) + disp
		default:
			err = errors.Join(ErrAddressMode, memory.ErrAddress(pc))
			return
		}
	}

	if flags&FLAG_X != 0 {
		inst.Indexed = true
		address += int(cpu.Register.Get(REG_X).Unsigned())
	}
	address &= ADDRESS_MASK

	switch ni {
	case FLAG_N:
		var pointer [memory.WORD_SIZE]byte
		err = cpu.Memory.Read(address, pointer[:])
		if err != nil {
			return
		}
		address = int(memory.Word(pointer).Value()) & ADDRESS_MASK
	case FLAG_I:
		if !isJump(op) {
			err = errors.Join(ErrAddressMode, memory.ErrAddress(pc))
			return
		}
	}

	inst.Address = address
	return
}
