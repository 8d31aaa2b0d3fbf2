package trace

import (
	"io"
	"log"

	"github.com/ezrec/sicxe/cpu"
)

// Sink receives the result of every executed instruction.
type Sink interface {
	Trace(res cpu.Result) error
}

// Tape writes one trace line per instruction to an output stream.
type Tape struct {
	Output io.Writer
}

// Trace writes the formatted result, followed by a newline.
func (tp *Tape) Trace(res cpu.Result) (err error) {
	_, err = io.WriteString(tp.Output, Format(res)+"\n")
	return
}

// Log sends trace lines to the standard logger.
type Log struct {
	Prefix string
}

// Trace logs the formatted result.
func (lg *Log) Trace(res cpu.Result) (err error) {
	log.Print(lg.Prefix + Format(res))
	return
}

// Buffer keeps trace lines in memory.
type Buffer struct {
	Lines []string
}

// Trace appends the formatted result.
func (buf *Buffer) Trace(res cpu.Result) (err error) {
	buf.Lines = append(buf.Lines, Format(res))
	return
}

// Reset discards all buffered lines.
func (buf *Buffer) Reset() {
	buf.Lines = nil
}

// Multi sends each result to all of its sinks, stopping at the first error.
type Multi []Sink

// Trace forwards the result.
func (ms Multi) Trace(res cpu.Result) (err error) {
	for _, sink := range ms {
		err = sink.Trace(res)
		if err != nil {
			return
		}
	}
	return
}
