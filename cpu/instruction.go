package cpu

import (
	"fmt"
	"strings"
)

// Instruction is a decoded instruction with its effective address resolved.
type Instruction struct {
	Opcode   Opcode // Operation to perform.
	Operands []int  // Register ordinals or counts, for format 2 opcodes.
	Indexed  bool   // Set if X was added into Address.
	Address  int    // Effective byte address, for format 3/4 opcodes.
}

func (inst Instruction) String() string {
	switch inst.Opcode.Format() {
	case FORMAT_1:
		return inst.Opcode.String()
	case FORMAT_2:
		args := make([]string, len(inst.Operands))
		for n, arg := range inst.Operands {
			args[n] = fmt.Sprint(arg)
		}
		return inst.Opcode.String() + " " + strings.Join(args, ",")
	}

	if inst.Opcode == OP_RSUB {
		return inst.Opcode.String()
	}

	text := fmt.Sprintf("%v %06X", inst.Opcode, inst.Address)
	if inst.Indexed {
		text += ",X"
	}
	return text
}
