package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/sicxe/memory"
)

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		pc     int
		code   []byte
		regs   map[RegisterID]int64
		words  map[int]uint32
		inst   Instruction
		length int
	}){
		{"fix", 0x10, []byte{0xC4}, nil, nil,
			Instruction{Opcode: OP_FIX}, 1},
		{"addr", 0x10, []byte{0x90, 0x01}, nil, nil,
			Instruction{Opcode: OP_ADDR, Operands: []int{0, 1}}, 2},
		{"clear", 0x10, []byte{0xB4, 0x30}, nil, nil,
			Instruction{Opcode: OP_CLEAR, Operands: []int{3}}, 2},
		{"shiftl", 0x10, []byte{0xA4, 0x03}, nil, nil,
			Instruction{Opcode: OP_SHIFTL, Operands: []int{0, 4}}, 2},
		{"sic", 0x10, []byte{0x00, 0x05, 0xDC}, nil, nil,
			Instruction{Opcode: OP_LDA, Address: 0x05DC}, 3},
		{"sic_indexed", 0x10, []byte{0x00, 0x85, 0xDC}, map[RegisterID]int64{REG_X: 3}, nil,
			Instruction{Opcode: OP_LDA, Indexed: true, Address: 0x05DF}, 3},
		{"pc_relative", 0x100, []byte{0x03, 0x20, 0x10}, nil, nil,
			Instruction{Opcode: OP_LDA, Address: 0x113}, 3},
		{"pc_relative_negative", 0x100, []byte{0x03, 0x2F, 0xFD}, nil, nil,
			Instruction{Opcode: OP_LDA, Address: 0x100}, 3},
		{"base_relative", 0x100, []byte{0x03, 0x40, 0x10}, map[RegisterID]int64{REG_B: 0x200}, nil,
			Instruction{Opcode: OP_LDA, Address: 0x210}, 3},
		{"direct", 0x100, []byte{0x0F, 0x00, 0x30}, nil, nil,
			Instruction{Opcode: OP_STA, Address: 0x030}, 3},
		{"extended", 0x100, []byte{0x4B, 0x11, 0x23, 0x45}, nil, nil,
			Instruction{Opcode: OP_JSUB, Address: 0x12345}, 4},
		{"indirect", 0x100, []byte{0x3E, 0x00, 0x30}, nil, map[int]uint32{0x30: 0x000300},
			Instruction{Opcode: OP_J, Address: 0x300}, 3},
		{"immediate_jump", 0x100, []byte{0x3D, 0x00, 0x30}, nil, nil,
			Instruction{Opcode: OP_J, Address: 0x030}, 3},
		{"rsub", 0x100, []byte{0x4F, 0x00, 0x00}, nil, nil,
			Instruction{Opcode: OP_RSUB}, 3},
	}

	for _, entry := range table {
		cpu := newTestCpu()
		for id, value := range entry.regs {
			cpu.Register.Get(id).Set(value)
		}
		for address, value := range entry.words {
			setWord(t, cpu, address, value)
		}
		assert.NoError(cpu.Memory.Write(entry.pc, entry.code), entry.name)

		inst, length, err := cpu.Decode(entry.pc)
		if !assert.NoError(err, entry.name) {
			continue
		}
		assert.Equal(entry.inst, inst, entry.name)
		assert.Equal(entry.length, length, entry.name)
	}
}

func TestDecodeFault(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		pc   int
		code []byte
		err  error
	}){
		{"invalid", 0x10, []byte{0xFF, 0x00, 0x00}, ErrOpcodeInvalid},
		{"format_mismatch", 0x10, []byte{0x93, 0x00, 0x00}, ErrOpcodeInvalid},
		{"immediate_load", 0x10, []byte{0x01, 0x00, 0x30}, ErrAddressMode},
		{"base_and_pc", 0x10, []byte{0x03, 0x60, 0x00}, ErrAddressMode},
		{"extended_relative", 0x10, []byte{0x03, 0x30, 0x00, 0x00}, ErrAddressMode},
		{"truncated", testMemorySize - 2, []byte{0x03, 0x20}, memory.ErrRange},
		{"out_of_range", testMemorySize, nil, memory.ErrRange},
	}

	for _, entry := range table {
		cpu := newTestCpu()
		assert.NoError(cpu.Memory.Write(entry.pc, entry.code), entry.name)

		_, _, err := cpu.Decode(entry.pc)
		assert.ErrorIs(err, entry.err, entry.name)
	}
}

func TestInstructionString(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		inst   Instruction
		expect string
	}){
		{Instruction{Opcode: OP_FIX}, "FIX"},
		{Instruction{Opcode: OP_ADDR, Operands: []int{0, 1}}, "ADDR 0,1"},
		{Instruction{Opcode: OP_LDA, Address: 1500}, "LDA 0005DC"},
		{Instruction{Opcode: OP_STCH, Indexed: true, Address: 0x30}, "STCH 000030,X"},
		{Instruction{Opcode: OP_RSUB}, "RSUB"},
	}

	for _, entry := range table {
		assert.Equal(entry.expect, entry.inst.String())
	}
}
