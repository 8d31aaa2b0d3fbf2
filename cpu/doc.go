// Package cpu implements the instruction execution engine of a SIC/XE machine.
//
// The register file holds six 24-bit general purpose registers (A, X, L, B,
// S, T, addressable by ordinals 0-5), the 24-bit PC and SW, and the 48-bit F
// register. The condition code lives in the low two bits of SW.
//
// Execute applies one decoded instruction to the registers and memory, and
// reports what it did as a Result. Decode turns the bytes at an address into
// an Instruction with its effective address resolved.
//
// The F register and its opcodes (ADDF, SUBF, MULF, DIVF, COMPF, FIX, FLOAT)
// use plain 48-bit two's-complement integer arithmetic, not floating point.
package cpu
