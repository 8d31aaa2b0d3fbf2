package cpu

import (
	"errors"
	"log"
)

// loadTarget maps word load opcodes to their destination register.
var loadTarget = map[Opcode]RegisterID{
	OP_LDA: REG_A,
	OP_LDB: REG_B,
	OP_LDL: REG_L,
	OP_LDS: REG_S,
	OP_LDT: REG_T,
	OP_LDX: REG_X,
}

// storeSource maps word store opcodes to their source register.
var storeSource = map[Opcode]RegisterID{
	OP_STA:  REG_A,
	OP_STB:  REG_B,
	OP_STL:  REG_L,
	OP_STS:  REG_S,
	OP_STT:  REG_T,
	OP_STX:  REG_X,
	OP_STSW: REG_SW,
}

// jumpCond maps conditional jumps to the condition code they require.
var jumpCond = map[Opcode]CondCode{
	OP_JEQ: CC_EQ,
	OP_JLT: CC_LT,
	OP_JGT: CC_GT,
}

// Execute applies the effect of a single decoded instruction.
//
// All faults are detected before the first register or memory write, so a
// failed Execute leaves the machine state untouched.
func (cpu *Cpu) Execute(inst Instruction) (result Result, err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(inst.Opcode), err)
		}
	}()

	if cpu.Verbose {
		log.Printf("cpu: %06X: %v", cpu.Register.Get(REG_PC).Unsigned(), inst)
	}

	if !inst.Opcode.Valid() {
		err = ErrOpcodeInvalid
		return
	}

	result = Result{
		Instruction: inst,
		Width:       WIDTH_WORD,
	}

	if !inst.Opcode.Implemented() {
		if cpu.Verbose {
			log.Printf("cpu: %v: not implemented", inst.Opcode)
		}
		result.Outcome = OUTCOME_UNIMPLEMENTED
		cpu.Ticks++
		return
	}

	rs := &cpu.Register
	op := inst.Opcode

	switch op {
	case OP_ADD, OP_SUB, OP_MUL, OP_DIV, OP_AND, OP_OR:
		var value int64
		value, err = cpu.loadWord(inst.Address)
		if err != nil {
			return
		}
		if op == OP_DIV && value == 0 {
			err = ErrDivideByZero
			return
		}
		a := rs.Get(REG_A)
		a.Set(doAlu(op, a.Value(), value))
		result.Value = a.Value()
		cpu.setCond(&result, result.Value)
	case OP_ADDR, OP_SUBR, OP_MULR, OP_DIVR:
		var regs []*Register
		regs, err = cpu.ordinals(inst, 2)
		if err != nil {
			return
		}
		r1, r2 := regs[0], regs[1]
		if op == OP_DIVR && r1.Value() == 0 {
			err = ErrDivideByZero
			return
		}
		r2.Set(doAlu(op, r2.Value(), r1.Value()))
		result.Value = r2.Value()
		cpu.setCond(&result, result.Value)
	case OP_ADDF, OP_SUBF, OP_MULF, OP_DIVF:
		// The F register holds a plain 48-bit integer, not a float.
		var value int64
		value, err = cpu.loadLong(inst.Address)
		if err != nil {
			return
		}
		if op == OP_DIVF && value == 0 {
			err = ErrDivideByZero
			return
		}
		fr := rs.Get(REG_F)
		fr.Set(doAlu(op, fr.Value(), value))
		result.Width = WIDTH_LONG
		result.Value = fr.Value()
	case OP_COMPF:
		var value int64
		value, err = cpu.loadLong(inst.Address)
		if err != nil {
			return
		}
		result.Width = WIDTH_LONG
		result.Left = rs.Get(REG_F).Value()
		result.Right = value
		cpu.setCond(&result, result.Left-result.Right)
	case OP_FIX:
		a := rs.Get(REG_A)
		a.Set(rs.Get(REG_F).Value())
		result.Value = a.Value()
	case OP_FLOAT:
		fr := rs.Get(REG_F)
		fr.Set(rs.Get(REG_A).Value())
		result.Width = WIDTH_LONG
		result.Value = fr.Value()
	case OP_J:
		pc := rs.Get(REG_PC)
		pc.Set(int64(inst.Address))
		result.Value = pc.Value()
	case OP_JEQ, OP_JLT, OP_JGT:
		if rs.Cond() != jumpCond[op] {
			result.Outcome = OUTCOME_SKIPPED
			break
		}
		pc := rs.Get(REG_PC)
		pc.Set(int64(inst.Address))
		result.Value = pc.Value()
	case OP_JSUB:
		pc := rs.Get(REG_PC)
		result.Link = pc.Value()
		rs.Get(REG_L).Set(result.Link)
		pc.Set(int64(inst.Address))
		result.Value = pc.Value()
	case OP_RSUB:
		pc := rs.Get(REG_PC)
		link := rs.Get(REG_L)
		if link.Unsigned() == 0 {
			pc.Set(0)
			result.Outcome = OUTCOME_HALT
			break
		}
		pc.Set(link.Value())
		result.Value = pc.Value()
	case OP_LDA, OP_LDB, OP_LDL, OP_LDS, OP_LDT, OP_LDX:
		var value int64
		value, err = cpu.loadWord(inst.Address)
		if err != nil {
			return
		}
		reg := rs.Get(loadTarget[op])
		reg.Set(value)
		result.Value = reg.Value()
	case OP_STA, OP_STB, OP_STL, OP_STS, OP_STT, OP_STX, OP_STSW:
		reg := rs.Get(storeSource[op])
		err = cpu.storeWord(inst.Address, reg.Unsigned())
		if err != nil {
			return
		}
		result.Value = reg.Value()
	case OP_LDCH:
		// Character access shares the word aligned path of all other
		// memory opcodes, and addresses the first byte of the word.
		var index int
		index, err = cpu.wordIndex(inst.Address, 1)
		if err != nil {
			return
		}
		var value byte
		value, err = cpu.Memory.Byte(index)
		if err != nil {
			return
		}
		a := rs.Get(REG_A)
		a.Set(int64(a.Unsigned()&^0xff | uint64(value)))
		result.Width = WIDTH_BYTE
		result.Value = int64(value)
	case OP_STCH:
		var index int
		index, err = cpu.wordIndex(inst.Address, 1)
		if err != nil {
			return
		}
		value := byte(rs.Get(REG_A).Unsigned())
		err = cpu.Memory.SetByte(index, value)
		if err != nil {
			return
		}
		result.Width = WIDTH_BYTE
		result.Value = int64(value)
	case OP_LDF:
		var value int64
		value, err = cpu.loadLong(inst.Address)
		if err != nil {
			return
		}
		fr := rs.Get(REG_F)
		fr.Set(value)
		result.Width = WIDTH_LONG
		result.Value = fr.Value()
	case OP_STF:
		fr := rs.Get(REG_F)
		err = cpu.storeLong(inst.Address, fr.Unsigned())
		if err != nil {
			return
		}
		result.Width = WIDTH_LONG
		result.Value = fr.Value()
	case OP_CLEAR:
		var regs []*Register
		regs, err = cpu.ordinals(inst, 1)
		if err != nil {
			return
		}
		regs[0].Set(0)
	case OP_COMP:
		var value int64
		value, err = cpu.loadWord(inst.Address)
		if err != nil {
			return
		}
		result.Left = rs.Get(REG_A).Value()
		result.Right = value
		cpu.setCond(&result, result.Left-result.Right)
	case OP_COMPR:
		var regs []*Register
		regs, err = cpu.ordinals(inst, 2)
		if err != nil {
			return
		}
		result.Left = regs[0].Value()
		result.Right = regs[1].Value()
		cpu.setCond(&result, result.Left-result.Right)
	case OP_SHIFTL, OP_SHIFTR:
		var regs []*Register
		regs, err = cpu.ordinals(inst, 1)
		if err != nil {
			return
		}
		if len(inst.Operands) < 2 {
			err = ErrOperandMissing
			return
		}
		count := inst.Operands[1]
		if count < 0 {
			err = ErrShiftCount
			return
		}
		reg := regs[0]
		if op == OP_SHIFTL {
			reg.Set(reg.Value() << uint(count))
		} else {
			reg.Set(int64(reg.Unsigned() >> uint(count)))
		}
		result.Value = reg.Value()
		cpu.setCond(&result, result.Value)
	case OP_RMO:
		var regs []*Register
		regs, err = cpu.ordinals(inst, 2)
		if err != nil {
			return
		}
		regs[1].Set(regs[0].Value())
		result.Value = regs[1].Value()
	case OP_TIX:
		var value int64
		value, err = cpu.loadWord(inst.Address)
		if err != nil {
			return
		}
		x := rs.Get(REG_X)
		x.Set(x.Value() + 1)
		result.Left = x.Value()
		result.Right = value
		cpu.setCond(&result, result.Left-result.Right)
	case OP_TIXR:
		var regs []*Register
		regs, err = cpu.ordinals(inst, 1)
		if err != nil {
			return
		}
		x := rs.Get(REG_X)
		x.Set(x.Value() + 1)
		result.Left = x.Value()
		result.Right = regs[0].Value()
		cpu.setCond(&result, result.Left-result.Right)
	default:
		err = ErrOpcodeInvalid
		return
	}

	cpu.Ticks++

	return
}

// doAlu performs the arithmetic or logic operation of op on a and b.
// Register forms compute r2 op r1, so callers pass r2 as a.
func doAlu(op Opcode, a int64, b int64) (output int64) {
	switch op {
	case OP_ADD, OP_ADDR, OP_ADDF:
		output = a + b
	case OP_SUB, OP_SUBR, OP_SUBF:
		output = a - b
	case OP_MUL, OP_MULR, OP_MULF:
		output = a * b
	case OP_DIV, OP_DIVR, OP_DIVF:
		output = a / b
	case OP_AND:
		output = a & b
	case OP_OR:
		output = a | b
	}

	return
}
