package emulator

import (
	"github.com/ezrec/sicxe/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Pc  int // Address of the faulting instruction.
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("pc 0x%06X %v", err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrWatch indicates a watch expression that could not be compiled or evaluated.
type ErrWatch string

func (ew ErrWatch) Error() string {
	return f("watch '%v'", string(ew))
}
