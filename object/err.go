package object

import (
	"errors"

	"github.com/ezrec/sicxe/translate"
)

var f = translate.From

var (
	ErrRecordType      = errors.New(f("record type unknown"))
	ErrRecordSyntax    = errors.New(f("record syntax"))
	ErrHeaderMissing   = errors.New(f("header record missing"))
	ErrHeaderDuplicate = errors.New(f("header record duplicated"))
	ErrRecordAfterEnd  = errors.New(f("record after end record"))
)

// ErrSyntax reports the object file line that failed to parse.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
