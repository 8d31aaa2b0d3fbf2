// Package object reads SIC/XE object programs, and loads them into memory.
//
// An object program is a sequence of records, one per line:
//
//	H^NAME  ^001000^00107A     header: name, start address, length
//	T^001000^03^141033         text: start address, byte count, bytes
//	M^000007^05+NAME           modification: address, half-byte count
//	E^001000                   end: entry point
//
// The '^' separators are optional; without them the fields are read
// from their fixed columns.
package object

import (
	"errors"

	"github.com/ezrec/sicxe/memory"
)

// Text is a run of program bytes.
type Text struct {
	Start int    // Address of the first byte.
	Data  []byte // Bytes to load.
}

// End returns the address after the last byte of the record.
func (txt Text) End() int {
	return txt.Start + len(txt.Data)
}

// Modification marks a field that holds an address, and must be
// adjusted when the program is relocated.
type Modification struct {
	Address   int    // Address of the first byte of the field.
	HalfBytes int    // Width of the field, in half-bytes.
	Negative  bool   // Set if the relocation is subtracted.
	Symbol    string // Optional external symbol.
}

// Program is a parsed object program.
type Program struct {
	Name   string
	Start  int // Load address the program was assembled for.
	Length int // Length of the program, in bytes.
	Entry  int // Address of the first instruction.

	Text          []Text
	Modifications []Modification
}

// Relocation returns the delta applied when loading at address.
// An address of zero keeps the program's own start.
func (prog *Program) Relocation(address int) int {
	if address == 0 {
		return 0
	}
	return address - prog.Start
}

// Load writes the program into memory at address, and returns the
// relocated entry point.
func (prog *Program) Load(mem *memory.Memory, address int) (entry int, err error) {
	delta := prog.Relocation(address)

	for _, txt := range prog.Text {
		err = mem.Write(txt.Start+delta, txt.Data)
		if err != nil {
			return
		}
	}

	if delta != 0 {
		for _, mod := range prog.Modifications {
			err = mod.apply(mem, delta)
			if err != nil {
				return
			}
		}
	}

	entry = prog.Entry + delta
	return
}

// apply adds delta to the field of a loaded program.
func (mod Modification) apply(mem *memory.Memory, delta int) (err error) {
	if mod.HalfBytes <= 0 || mod.HalfBytes > 6 {
		err = errors.Join(ErrRecordSyntax, memory.ErrAddress(mod.Address))
		return
	}

	var field [3]byte
	size := (mod.HalfBytes + 1) / 2
	data := field[:size]
	address := mod.Address + delta

	err = mem.Read(address, data)
	if err != nil {
		return
	}

	var value uint32
	for _, b := range data {
		value = value<<8 | uint32(b)
	}

	mask := uint32(1)<<(4*mod.HalfBytes) - 1
	if mod.Negative {
		delta = -delta
	}
	value = value&^mask | (value+uint32(delta))&mask

	for n := size - 1; n >= 0; n-- {
		data[n] = byte(value)
		value >>= 8
	}

	err = mem.Write(address, data)
	return
}
