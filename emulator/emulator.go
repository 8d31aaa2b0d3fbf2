// Package emulator steps a SIC/XE machine through a loaded program.
package emulator

import (
	"context"
	"iter"
	"log"
	"maps"
	"time"

	"github.com/ezrec/sicxe/cpu"
	"github.com/ezrec/sicxe/internal"
	"github.com/ezrec/sicxe/memory"
	"github.com/ezrec/sicxe/object"
	"github.com/ezrec/sicxe/trace"
)

const (
	MEMORY_SIZE = 1 << 20 // Default memory size, in bytes.
)

var _emulator_defines = map[string]int64{
	"MEMORY_SIZE": MEMORY_SIZE,
	"CC_EQ":       int64(cpu.CC_EQ),
	"CC_LT":       int64(cpu.CC_LT),
	"CC_GT":       int64(cpu.CC_GT),
}

//go:generate go tool stringer -linecomment -type=Stop

// Stop is the reason Run returned. STOP_NONE means Run returned early
// with an error.
type Stop int

const (
	STOP_NONE  = Stop(0) // none
	STOP_HALT  = Stop(1) // halt
	STOP_LIMIT = Stop(2) // limit
	STOP_WATCH = Stop(3) // watch
)

// Emulator state. CPU + memory + loaded program.
type Emulator struct {
	Verbose  bool            // If set, enables verbose logging.
	*cpu.Cpu                 // Reference to the CPU simulation.
	Program  *object.Program // Program loaded on Reset, if any.
	Address  int             // Load address of Program; 0 loads at its own start.
	Trace    trace.Sink      // Receives every executed instruction, if set.

	halted bool
}

// NewEmulator creates a new emulator with size bytes of memory.
func NewEmulator(size int) (emu *Emulator) {
	emu = &Emulator{
		Cpu: cpu.NewCpu(memory.NewMemory(size)),
	}

	return
}

// Defines returns an iterator over all of the defines.
func (emu *Emulator) Defines() iter.Seq2[string, int64] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Reset clears the machine, loads the program and points PC at its entry.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.Cpu.Memory.Reset()
	emu.halted = false

	if emu.Program == nil {
		return
	}

	entry, err := emu.Program.Load(emu.Cpu.Memory, emu.Address)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: loaded %v at 0x%06X, entry 0x%06X",
			emu.Program.Name, emu.Program.Relocation(emu.Address)+emu.Program.Start, entry)
	}

	emu.Cpu.Register.Get(cpu.REG_PC).Set(int64(entry))

	return
}

// Halted returns true once the program has executed its final RSUB.
func (emu *Emulator) Halted() bool {
	return emu.halted
}

// Pc returns current program counter.
func (emu *Emulator) Pc() int {
	return int(emu.Cpu.Register.Get(cpu.REG_PC).Unsigned())
}

// Tick performs a single instruction of the emulator.
//
// PC is advanced past the instruction before it executes, so jumps and
// JSUB see the address of the next instruction. A faulting instruction
// leaves all state, PC included, unchanged. An error from the trace sink
// is returned after the instruction has taken effect.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.halted {
		done = true
		return
	}

	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Pc()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, Err: err}
		}
	}()

	inst, length, err := emu.Cpu.Decode(pc)
	if err != nil {
		return
	}

	reg := emu.Cpu.Register.Get(cpu.REG_PC)
	reg.Set(int64(pc + length))

	res, err := emu.Cpu.Execute(inst)
	if err != nil {
		reg.Set(int64(pc))
		return
	}

	if res.Halted() {
		if emu.Verbose {
			log.Printf("emulator: halted after %d ticks", emu.Cpu.Ticks)
		}
		emu.halted = true
		done = true
	}

	// The instruction has completed; a trace failure is reported, but
	// does not undo it.
	if emu.Trace != nil {
		err = emu.Trace.Trace(res)
	}

	return
}

// Run ticks the emulator until the program halts, limit ticks have run,
// the watch expression is true, an error occurs, or ctx is done.
// A limit of 0 is unlimited, and a nil watch is never true.
//
// delay is waited between ticks.
func (emu *Emulator) Run(ctx context.Context, delay time.Duration, limit int, watch *Watch) (stop Stop, err error) {
	for steps := 0; ; steps++ {
		if limit > 0 && steps >= limit {
			stop = STOP_LIMIT
			return
		}

		err = ctx.Err()
		if err != nil {
			return
		}

		var done bool
		done, err = emu.Tick()
		if done {
			stop = STOP_HALT
		}
		if done || err != nil {
			return
		}

		if watch != nil {
			var hit bool
			hit, err = watch.Eval(emu)
			if err != nil {
				return
			}
			if hit {
				stop = STOP_WATCH
				return
			}
		}

		if delay > 0 {
			select {
			case <-ctx.Done():
				err = ctx.Err()
				return
			case <-time.After(delay):
			}
		}
	}
}
