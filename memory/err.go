package memory

import (
	"errors"

	"github.com/ezrec/sicxe/translate"
)

var f = translate.From

var (
	ErrAlignment = errors.New(f("address not word aligned"))
	ErrRange     = errors.New(f("address out of range"))
)

// ErrAddress is the byte address that caused a memory fault.
type ErrAddress int

func (ea ErrAddress) Error() string {
	return f("address 0x%06X", int(ea))
}
