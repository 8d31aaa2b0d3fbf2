// Package memory implements the byte addressable store of a SIC/XE machine.
//
// Memory is a flat array of bytes that is also viewed as 3-byte words.
// A word index is a byte address divided by WORD_SIZE; all word oriented
// accesses require the byte address to be a multiple of WORD_SIZE.
package memory

import (
	"errors"
	"fmt"
)

const (
	WORD_SIZE = 3 // Bytes per word.
)

// Word is a 24-bit big-endian memory word.
type Word [WORD_SIZE]byte

// Value returns the word as an unsigned 24-bit value.
func (w Word) Value() uint32 {
	return uint32(w[0])<<16 | uint32(w[1])<<8 | uint32(w[2])
}

// MakeWord creates a word from the low 24 bits of value.
func MakeWord(value uint32) Word {
	return Word{byte(value >> 16), byte(value >> 8), byte(value)}
}

// Memory is a fixed capacity byte store.
type Memory struct {
	data []byte
}

// NewMemory creates a zeroed memory of size bytes.
func NewMemory(size int) (mem *Memory) {
	if size < 0 {
		size = 0
	}

	mem = &Memory{
		data: make([]byte, size),
	}

	return
}

// ToWordAddress converts an effective byte address to a word index.
func ToWordAddress(address int) (index int, err error) {
	if address < 0 {
		err = errors.Join(ErrRange, ErrAddress(address))
		return
	}

	if address%WORD_SIZE != 0 {
		err = errors.Join(ErrAlignment, ErrAddress(address))
		return
	}

	index = address / WORD_SIZE
	return
}

// Size returns the capacity in bytes.
func (mem *Memory) Size() int {
	return len(mem.data)
}

// Words returns the capacity in whole words.
func (mem *Memory) Words() int {
	return len(mem.data) / WORD_SIZE
}

// Reset zeroes all cells.
func (mem *Memory) Reset() {
	clear(mem.data)
}

// CheckWords verifies that count consecutive words starting at index
// are within memory.
func (mem *Memory) CheckWords(index int, count int) (err error) {
	if index < 0 || count < 0 || index > mem.Words()-count {
		err = errors.Join(ErrRange, ErrAddress(index*WORD_SIZE))
	}
	return
}

// Byte reads the byte that starts the word at index.
func (mem *Memory) Byte(index int) (value byte, err error) {
	err = mem.CheckWords(index, 1)
	if err != nil {
		return
	}

	value = mem.data[index*WORD_SIZE]
	return
}

// SetByte writes the byte that starts the word at index.
func (mem *Memory) SetByte(index int, value byte) (err error) {
	err = mem.CheckWords(index, 1)
	if err != nil {
		return
	}

	mem.data[index*WORD_SIZE] = value
	return
}

// Word reads the word at index.
func (mem *Memory) Word(index int) (word Word, err error) {
	err = mem.CheckWords(index, 1)
	if err != nil {
		return
	}

	copy(word[:], mem.data[index*WORD_SIZE:])
	return
}

// SetWord writes the word at index.
func (mem *Memory) SetWord(index int, word Word) (err error) {
	err = mem.CheckWords(index, 1)
	if err != nil {
		return
	}

	copy(mem.data[index*WORD_SIZE:], word[:])
	return
}

// Read copies len(p) bytes starting at byte address into p.
func (mem *Memory) Read(address int, p []byte) (err error) {
	if address < 0 || address > len(mem.data)-len(p) {
		err = errors.Join(ErrRange, ErrAddress(address))
		return
	}

	copy(p, mem.data[address:])
	return
}

// Write copies p into memory starting at byte address.
func (mem *Memory) Write(address int, p []byte) (err error) {
	if address < 0 || address > len(mem.data)-len(p) {
		err = errors.Join(ErrRange, ErrAddress(address))
		return
	}

	copy(mem.data[address:], p)
	return
}

// Dump returns a hex listing of count words starting at word index.
func (mem *Memory) Dump(index int, count int) (text string) {
	for n := range count {
		word, err := mem.Word(index + n)
		if err != nil {
			break
		}
		if n%4 == 0 {
			if n != 0 {
				text += "\n"
			}
			text += fmt.Sprintf("%06X:", (index+n)*WORD_SIZE)
		}
		text += fmt.Sprintf(" %06X", word.Value())
	}

	return
}
