package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"

	"github.com/ezrec/sicxe/memory"
)

// Cpu is the execution unit of a SIC/XE machine.
//
// A Cpu is not safe for concurrent use; the owner must have at most
// one Execute in flight.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Register RegisterSet    // Register file.
	Memory   *memory.Memory // Reference to the machine memory.

	Ticks int // Instructions executed since reset.
}

// NewCpu creates a new CPU attached to a memory.
func NewCpu(mem *memory.Memory) (cpu *Cpu) {
	cpu = &Cpu{
		Memory: mem,
	}

	cpu.Register.Reset()

	return
}

// Reset the CPU state: zero all registers and the tick counter.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Register.Reset()
	cpu.Ticks = 0
}

// Defines returns the register values, by mnemonic, plus the condition code.
func (cpu *Cpu) Defines() iter.Seq2[string, int64] {
	return func(yield func(name string, value int64) bool) {
		for id, reg := range cpu.Register.All() {
			value := reg.Value()
			if id == REG_PC || id == REG_SW {
				value = int64(reg.Unsigned())
			}
			if !yield(id.String(), value) {
				return
			}
		}
		yield("CC", int64(cpu.Register.Cond()))
	}
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	for id, reg := range cpu.Register.All() {
		var strval string
		switch id {
		case REG_F:
			val := reg.Unsigned()
			strval = fmt.Sprintf("%06X_%06X", val>>24, val&0xffffff)
		case REG_SW:
			strval = fmt.Sprintf("%06X (cc %v)", reg.Unsigned(), cpu.Register.Cond())
		default:
			strval = fmt.Sprintf("%06X", reg.Unsigned())
		}
		text += fmt.Sprintf("% 3s: %v\n", id, strval)
	}

	return
}

// wordIndex checks that count words at address can be accessed,
// and returns the index of the first.
func (cpu *Cpu) wordIndex(address int, count int) (index int, err error) {
	index, err = memory.ToWordAddress(address)
	if err != nil {
		return
	}

	err = cpu.Memory.CheckWords(index, count)
	return
}

// loadWord reads the signed 24-bit word at address.
func (cpu *Cpu) loadWord(address int) (value int64, err error) {
	index, err := cpu.wordIndex(address, 1)
	if err != nil {
		return
	}

	word, err := cpu.Memory.Word(index)
	if err != nil {
		return
	}

	value = signExtend(uint64(word.Value()), WIDTH_WORD)
	return
}

// loadLong reads the signed 48-bit value held in the two words at address.
func (cpu *Cpu) loadLong(address int) (value int64, err error) {
	index, err := cpu.wordIndex(address, 2)
	if err != nil {
		return
	}

	hi, err := cpu.Memory.Word(index)
	if err != nil {
		return
	}
	lo, err := cpu.Memory.Word(index + 1)
	if err != nil {
		return
	}

	value = signExtend(uint64(hi.Value())<<WIDTH_WORD|uint64(lo.Value()), WIDTH_LONG)
	return
}

// storeWord writes the low 24 bits of value to the word at address.
func (cpu *Cpu) storeWord(address int, value uint64) (err error) {
	index, err := cpu.wordIndex(address, 1)
	if err != nil {
		return
	}

	return cpu.Memory.SetWord(index, memory.MakeWord(uint32(value)))
}

// storeLong writes the low 48 bits of value to the two words at address.
func (cpu *Cpu) storeLong(address int, value uint64) (err error) {
	index, err := cpu.wordIndex(address, 2)
	if err != nil {
		return
	}

	err = errors.Join(
		cpu.Memory.SetWord(index, memory.MakeWord(uint32(value>>WIDTH_WORD))),
		cpu.Memory.SetWord(index+1, memory.MakeWord(uint32(value))),
	)
	return
}

// ordinals resolves the first count operands of inst as ordinal registers.
func (cpu *Cpu) ordinals(inst Instruction, count int) (regs []*Register, err error) {
	if len(inst.Operands) < count {
		err = ErrOperandMissing
		return
	}

	regs = make([]*Register, count)
	for n, ordinal := range inst.Operands[:count] {
		regs[n], err = cpu.Register.Ordinal(ordinal)
		if err != nil {
			return
		}
	}

	return
}

// setCond updates SW from the sign of value and records it in the result.
func (cpu *Cpu) setCond(result *Result, value int64) {
	result.Cond = condOf(value)
	result.CondSet = true
	cpu.Register.SetCond(result.Cond)
}
