package cpu

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// Register widths, in bits.
const (
	WIDTH_BYTE = 8
	WIDTH_WORD = 24
	WIDTH_LONG = 48
)

// RegisterID identifies one of the machine registers.
type RegisterID int

const (
	REG_A  = RegisterID(0) // A
	REG_X  = RegisterID(1) // X
	REG_L  = RegisterID(2) // L
	REG_B  = RegisterID(3) // B
	REG_S  = RegisterID(4) // S
	REG_T  = RegisterID(5) // T
	REG_F  = RegisterID(6) // F
	REG_PC = RegisterID(7) // PC
	REG_SW = RegisterID(8) // SW

	REG_COUNT     = 9 // Number of registers.
	ORDINAL_LIMIT = 6 // Registers A through T are addressable by ordinal.
)

var registerName = [REG_COUNT]string{"A", "X", "L", "B", "S", "T", "F", "PC", "SW"}

// Valid returns true if id is one of the REG_* registers.
func (id RegisterID) Valid() bool {
	return id >= 0 && int(id) < REG_COUNT
}

// String returns the register mnemonic.
func (id RegisterID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("R?%d", int(id))
	}
	return registerName[id]
}

// Width returns the register width in bits.
func (id RegisterID) Width() uint {
	if id == REG_F {
		return WIDTH_LONG
	}
	return WIDTH_WORD
}

// ParseRegister returns the register with the given mnemonic.
func ParseRegister(name string) (id RegisterID, err error) {
	for n, reg := range registerName {
		if strings.EqualFold(reg, name) {
			id = RegisterID(n)
			return
		}
	}

	err = errors.Join(ErrRegisterUnknown, ErrRegisterName(name))
	return
}

// RegisterOrdinal returns the general purpose register with ordinal n.
func RegisterOrdinal(n int) (id RegisterID, err error) {
	if n < 0 || n >= ORDINAL_LIMIT {
		err = errors.Join(ErrRegisterOrdinal, ErrOrdinal(n))
		return
	}

	id = RegisterID(n)
	return
}

// signExtend interprets the low width bits of value as two's-complement.
func signExtend(value uint64, width uint) int64 {
	shift := 64 - width
	return int64(value<<shift) >> shift
}

// truncate masks value to width bits.
func truncate(value int64, width uint) uint64 {
	return uint64(value) & (1<<width - 1)
}

// Register is a fixed width two's-complement register.
type Register struct {
	id    RegisterID
	value uint64 // Always within the register width.
}

// ID returns the register identity.
func (r Register) ID() RegisterID {
	return r.id
}

// Width returns the register width in bits.
func (r Register) Width() uint {
	return r.id.Width()
}

// Value returns the signed value of the register.
func (r Register) Value() int64 {
	return signExtend(r.value, r.Width())
}

// Unsigned returns the raw bits of the register.
func (r Register) Unsigned() uint64 {
	return r.value
}

// Set the register, wrapping value to the register width.
func (r *Register) Set(value int64) {
	r.value = truncate(value, r.Width())
}

func (r Register) String() string {
	if r.Width() == WIDTH_LONG {
		return fmt.Sprintf("%v=%012X", r.id, r.value)
	}
	return fmt.Sprintf("%v=%06X", r.id, r.value)
}

// RegisterSet is the complete register file of the machine.
type RegisterSet struct {
	register [REG_COUNT]Register
}

// NewRegisterSet creates a zeroed register set.
func NewRegisterSet() (rs *RegisterSet) {
	rs = &RegisterSet{}
	rs.Reset()
	return
}

// Reset zeroes every register.
func (rs *RegisterSet) Reset() {
	for n := range rs.register {
		rs.register[n] = Register{id: RegisterID(n)}
	}
}

// Get returns the register for id, which must be one of the REG_*
// constants; Get panics otherwise. Names and ordinals from instructions
// or users go through Lookup and Ordinal, which fault instead.
func (rs *RegisterSet) Get(id RegisterID) *Register {
	reg := &rs.register[id]
	reg.id = id
	return reg
}

// Lookup returns the register with the given mnemonic.
func (rs *RegisterSet) Lookup(name string) (reg *Register, err error) {
	id, err := ParseRegister(name)
	if err != nil {
		return
	}

	reg = rs.Get(id)
	return
}

// Ordinal returns the general purpose register with ordinal n (0-5).
func (rs *RegisterSet) Ordinal(n int) (reg *Register, err error) {
	id, err := RegisterOrdinal(n)
	if err != nil {
		return
	}

	reg = rs.Get(id)
	return
}

// All returns copies of every register, for observation only.
func (rs *RegisterSet) All() iter.Seq2[RegisterID, Register] {
	return func(yield func(id RegisterID, reg Register) bool) {
		for n := range rs.register {
			if !yield(RegisterID(n), *rs.Get(RegisterID(n))) {
				return
			}
		}
	}
}

// Cond returns the condition code held in the low bits of SW.
func (rs *RegisterSet) Cond() CondCode {
	return CondCode(rs.Get(REG_SW).Unsigned() & CC_MASK)
}

// SetCond replaces the condition code bits of SW.
func (rs *RegisterSet) SetCond(cc CondCode) {
	sw := rs.Get(REG_SW)
	sw.Set(int64((sw.Unsigned() &^ CC_MASK) | uint64(cc)))
}
