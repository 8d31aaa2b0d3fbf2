package cpu

import (
	"errors"
	"fmt"
	"strings"
)

// Opcode is a SIC/XE operation, valued by its opcode byte.
type Opcode int

const (
	OP_LDA    = Opcode(0x00) // LDA
	OP_LDX    = Opcode(0x04) // LDX
	OP_LDL    = Opcode(0x08) // LDL
	OP_STA    = Opcode(0x0C) // STA
	OP_STX    = Opcode(0x10) // STX
	OP_STL    = Opcode(0x14) // STL
	OP_ADD    = Opcode(0x18) // ADD
	OP_SUB    = Opcode(0x1C) // SUB
	OP_MUL    = Opcode(0x20) // MUL
	OP_DIV    = Opcode(0x24) // DIV
	OP_COMP   = Opcode(0x28) // COMP
	OP_TIX    = Opcode(0x2C) // TIX
	OP_JEQ    = Opcode(0x30) // JEQ
	OP_JGT    = Opcode(0x34) // JGT
	OP_JLT    = Opcode(0x38) // JLT
	OP_J      = Opcode(0x3C) // J
	OP_AND    = Opcode(0x40) // AND
	OP_OR     = Opcode(0x44) // OR
	OP_JSUB   = Opcode(0x48) // JSUB
	OP_RSUB   = Opcode(0x4C) // RSUB
	OP_LDCH   = Opcode(0x50) // LDCH
	OP_STCH   = Opcode(0x54) // STCH
	OP_ADDF   = Opcode(0x58) // ADDF
	OP_SUBF   = Opcode(0x5C) // SUBF
	OP_MULF   = Opcode(0x60) // MULF
	OP_DIVF   = Opcode(0x64) // DIVF
	OP_LDB    = Opcode(0x68) // LDB
	OP_LDS    = Opcode(0x6C) // LDS
	OP_LDF    = Opcode(0x70) // LDF
	OP_LDT    = Opcode(0x74) // LDT
	OP_STB    = Opcode(0x78) // STB
	OP_STS    = Opcode(0x7C) // STS
	OP_STF    = Opcode(0x80) // STF
	OP_STT    = Opcode(0x84) // STT
	OP_COMPF  = Opcode(0x88) // COMPF
	OP_ADDR   = Opcode(0x90) // ADDR
	OP_SUBR   = Opcode(0x94) // SUBR
	OP_MULR   = Opcode(0x98) // MULR
	OP_DIVR   = Opcode(0x9C) // DIVR
	OP_COMPR  = Opcode(0xA0) // COMPR
	OP_SHIFTL = Opcode(0xA4) // SHIFTL
	OP_SHIFTR = Opcode(0xA8) // SHIFTR
	OP_RMO    = Opcode(0xAC) // RMO
	OP_SVC    = Opcode(0xB0) // SVC
	OP_CLEAR  = Opcode(0xB4) // CLEAR
	OP_TIXR   = Opcode(0xB8) // TIXR
	OP_FLOAT  = Opcode(0xC0) // FLOAT
	OP_FIX    = Opcode(0xC4) // FIX
	OP_NORM   = Opcode(0xC8) // NORM
	OP_LPS    = Opcode(0xD0) // LPS
	OP_STI    = Opcode(0xD4) // STI
	OP_RD     = Opcode(0xD8) // RD
	OP_WD     = Opcode(0xDC) // WD
	OP_TD     = Opcode(0xE0) // TD
	OP_STSW   = Opcode(0xE8) // STSW
	OP_SSK    = Opcode(0xEC) // SSK
	OP_SIO    = Opcode(0xF0) // SIO
	OP_HIO    = Opcode(0xF4) // HIO
	OP_TIO    = Opcode(0xF8) // TIO
)

// Format is the instruction encoding length class.
type Format int

const (
	FORMAT_1 = Format(1) // Opcode byte only.
	FORMAT_2 = Format(2) // Opcode byte, two register nibbles.
	FORMAT_3 = Format(3) // Memory reference, 3 bytes (4 bytes extended).
)

type opcodeInfo struct {
	name     string
	format   Format
	operands int  // Register operands of a format 2 opcode.
	io       bool // Recognized, but not implemented.
}

var opcodeTable = map[Opcode]opcodeInfo{
	OP_LDA:    {name: "LDA", format: FORMAT_3},
	OP_LDX:    {name: "LDX", format: FORMAT_3},
	OP_LDL:    {name: "LDL", format: FORMAT_3},
	OP_STA:    {name: "STA", format: FORMAT_3},
	OP_STX:    {name: "STX", format: FORMAT_3},
	OP_STL:    {name: "STL", format: FORMAT_3},
	OP_ADD:    {name: "ADD", format: FORMAT_3},
	OP_SUB:    {name: "SUB", format: FORMAT_3},
	OP_MUL:    {name: "MUL", format: FORMAT_3},
	OP_DIV:    {name: "DIV", format: FORMAT_3},
	OP_COMP:   {name: "COMP", format: FORMAT_3},
	OP_TIX:    {name: "TIX", format: FORMAT_3},
	OP_JEQ:    {name: "JEQ", format: FORMAT_3},
	OP_JGT:    {name: "JGT", format: FORMAT_3},
	OP_JLT:    {name: "JLT", format: FORMAT_3},
	OP_J:      {name: "J", format: FORMAT_3},
	OP_AND:    {name: "AND", format: FORMAT_3},
	OP_OR:     {name: "OR", format: FORMAT_3},
	OP_JSUB:   {name: "JSUB", format: FORMAT_3},
	OP_RSUB:   {name: "RSUB", format: FORMAT_3},
	OP_LDCH:   {name: "LDCH", format: FORMAT_3},
	OP_STCH:   {name: "STCH", format: FORMAT_3},
	OP_ADDF:   {name: "ADDF", format: FORMAT_3},
	OP_SUBF:   {name: "SUBF", format: FORMAT_3},
	OP_MULF:   {name: "MULF", format: FORMAT_3},
	OP_DIVF:   {name: "DIVF", format: FORMAT_3},
	OP_LDB:    {name: "LDB", format: FORMAT_3},
	OP_LDS:    {name: "LDS", format: FORMAT_3},
	OP_LDF:    {name: "LDF", format: FORMAT_3},
	OP_LDT:    {name: "LDT", format: FORMAT_3},
	OP_STB:    {name: "STB", format: FORMAT_3},
	OP_STS:    {name: "STS", format: FORMAT_3},
	OP_STF:    {name: "STF", format: FORMAT_3},
	OP_STT:    {name: "STT", format: FORMAT_3},
	OP_COMPF:  {name: "COMPF", format: FORMAT_3},
	OP_ADDR:   {name: "ADDR", format: FORMAT_2, operands: 2},
	OP_SUBR:   {name: "SUBR", format: FORMAT_2, operands: 2},
	OP_MULR:   {name: "MULR", format: FORMAT_2, operands: 2},
	OP_DIVR:   {name: "DIVR", format: FORMAT_2, operands: 2},
	OP_COMPR:  {name: "COMPR", format: FORMAT_2, operands: 2},
	OP_SHIFTL: {name: "SHIFTL", format: FORMAT_2, operands: 2},
	OP_SHIFTR: {name: "SHIFTR", format: FORMAT_2, operands: 2},
	OP_RMO:    {name: "RMO", format: FORMAT_2, operands: 2},
	OP_SVC:    {name: "SVC", format: FORMAT_2, operands: 1, io: true},
	OP_CLEAR:  {name: "CLEAR", format: FORMAT_2, operands: 1},
	OP_TIXR:   {name: "TIXR", format: FORMAT_2, operands: 1},
	OP_FLOAT:  {name: "FLOAT", format: FORMAT_1},
	OP_FIX:    {name: "FIX", format: FORMAT_1},
	OP_NORM:   {name: "NORM", format: FORMAT_1, io: true},
	OP_LPS:    {name: "LPS", format: FORMAT_3, io: true},
	OP_STI:    {name: "STI", format: FORMAT_3, io: true},
	OP_RD:     {name: "RD", format: FORMAT_3, io: true},
	OP_WD:     {name: "WD", format: FORMAT_3, io: true},
	OP_TD:     {name: "TD", format: FORMAT_3, io: true},
	OP_STSW:   {name: "STSW", format: FORMAT_3},
	OP_SSK:    {name: "SSK", format: FORMAT_3, io: true},
	OP_SIO:    {name: "SIO", format: FORMAT_1, io: true},
	OP_HIO:    {name: "HIO", format: FORMAT_1, io: true},
	OP_TIO:    {name: "TIO", format: FORMAT_1, io: true},
}

// ParseOpcode returns the opcode for a mnemonic.
func ParseOpcode(mnemonic string) (op Opcode, err error) {
	mnemonic = strings.ToUpper(mnemonic)
	for code, info := range opcodeTable {
		if info.name == mnemonic {
			op = code
			return
		}
	}

	err = errors.Join(ErrOpcodeInvalid, ErrMnemonic(mnemonic))
	return
}

// Valid returns true if the opcode is in the instruction set.
func (op Opcode) Valid() bool {
	_, ok := opcodeTable[op]
	return ok
}

// Format returns the encoding class of the opcode.
func (op Opcode) Format() Format {
	return opcodeTable[op].format
}

// Operands returns the number of register operands of a format 2 opcode.
func (op Opcode) Operands() int {
	return opcodeTable[op].operands
}

// Implemented returns false for the recognized opcodes that have no effect.
func (op Opcode) Implemented() bool {
	info, ok := opcodeTable[op]
	return ok && !info.io
}

// String returns the mnemonic of the opcode.
func (op Opcode) String() string {
	info, ok := opcodeTable[op]
	if !ok {
		return fmt.Sprintf("OP_%02X", int(op))
	}
	return info.name
}
