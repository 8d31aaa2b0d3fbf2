package emulator

import (
	"errors"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/sicxe/memory"
)

// Watch is a compiled boolean expression over the machine state.
//
// The expression sees every name from Emulator.Defines, and a builtin
// word(addr) that returns the unsigned word at a byte address.
type Watch struct {
	Expr string

	program *starlark.Program
}

// NewWatch compiles a watch expression for the emulator.
// Names unknown to the emulator are rejected at compile time.
func (emu *Emulator) NewWatch(expr string) (watch *Watch, err error) {
	known := map[string]bool{"word": true}
	for name := range emu.Defines() {
		known[name] = true
	}

	opts := syntax.FileOptions{}
	src := "rc=(" + expr + ")\n"
	_, prog, err := starlark.SourceProgramOptions(&opts, "watch", src, func(name string) bool {
		return known[name]
	})
	if err != nil {
		err = errors.Join(ErrWatch(expr), err)
		return
	}

	watch = &Watch{
		Expr:    expr,
		program: prog,
	}

	return
}

// Eval evaluates the expression against the current emulator state.
func (watch *Watch) Eval(emu *Emulator) (hit bool, err error) {
	pred := starlark.StringDict{}
	for name, value := range emu.Defines() {
		pred[name] = starlark.MakeInt64(value)
	}
	pred["word"] = starlark.NewBuiltin("word", wordBuiltin(emu.Cpu.Memory))

	thread := starlark.Thread{Name: "watch"}
	dict, err := watch.program.Init(&thread, pred)
	if err != nil {
		err = errors.Join(ErrWatch(watch.Expr), err)
		return
	}

	rc, ok := dict["rc"]
	if !ok {
		err = ErrWatch(watch.Expr)
		return
	}

	hit = bool(rc.Truth())
	return
}

func wordBuiltin(mem *memory.Memory) func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error) {
	return func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
		var address int
		err = starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &address)
		if err != nil {
			return
		}

		index, err := memory.ToWordAddress(address)
		if err != nil {
			return
		}

		word, err := mem.Word(index)
		if err != nil {
			return
		}

		value = starlark.MakeUint(uint(word.Value()))
		return
	}
}
