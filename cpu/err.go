package cpu

import (
	"errors"

	"github.com/ezrec/sicxe/translate"
)

var f = translate.From

var (
	// Execution faults
	ErrDivideByZero    = errors.New(f("divide by zero"))
	ErrRegisterOrdinal = errors.New(f("register ordinal invalid"))
	ErrRegisterUnknown = errors.New(f("register unknown"))
	ErrOperandMissing  = errors.New(f("operand missing"))
	ErrShiftCount      = errors.New(f("shift count invalid"))

	// Instruction decode errors
	ErrOpcodeInvalid = errors.New(f("opcode invalid"))
	ErrAddressMode   = errors.New(f("addressing mode unsupported"))
)

// ErrOpcode marks the opcode of a failed instruction.
type ErrOpcode Opcode

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%02X %v", int(eo), Opcode(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrOrdinal is a register ordinal that was out of range.
type ErrOrdinal int

func (err ErrOrdinal) Error() string {
	return f("register ordinal %v", int(err))
}

// ErrRegisterName is a register mnemonic that was not recognized.
type ErrRegisterName string

func (err ErrRegisterName) Error() string {
	return f("'%v' is not a register", string(err))
}

// ErrMnemonic is an opcode mnemonic that was not recognized.
type ErrMnemonic string

func (err ErrMnemonic) Error() string {
	return f("'%v' is not an opcode", string(err))
}
