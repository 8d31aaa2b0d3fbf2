package cpu

//go:generate go tool stringer -linecomment -type=Outcome

// Outcome classifies the effect of an executed instruction.
// A skipped instruction is a conditional jump whose condition was not met.
type Outcome int

const (
	OUTCOME_DONE          = Outcome(0) // done
	OUTCOME_SKIPPED       = Outcome(1) // skipped
	OUTCOME_UNIMPLEMENTED = Outcome(2) // unimplemented
	OUTCOME_HALT          = Outcome(3) // halt
)

// Result describes what an executed instruction did.
type Result struct {
	Instruction

	Outcome Outcome
	Width   uint  // Width in bits of Value, Left and Right.
	Value   int64 // Value produced, loaded, stored or jumped to.
	Link    int64 // Return address saved by JSUB.

	Left  int64 // First operand of a comparison.
	Right int64 // Second operand of a comparison.

	CondSet bool     // Set if the condition code was written.
	Cond    CondCode // Condition code after execution.
}

// Hex returns v as the unsigned bits of the result width.
func (res Result) Hex(v int64) uint64 {
	width := res.Width
	if width == 0 {
		width = WIDTH_WORD
	}
	return truncate(v, width)
}

// Halted returns true if the instruction signals the end of the program.
func (res Result) Halted() bool {
	return res.Outcome == OUTCOME_HALT
}
