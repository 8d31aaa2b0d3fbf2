package cpu

//go:generate go tool stringer -linecomment -type=CondCode

// CondCode is the condition code stored in the low bits of SW.
type CondCode int

const (
	CC_EQ = CondCode(0) // =
	CC_LT = CondCode(1) // <
	CC_GT = CondCode(2) // >

	CC_MASK = 0x3 // SW bits holding the condition code.
)

// condOf returns the condition code for the sign of value.
func condOf(value int64) CondCode {
	switch {
	case value < 0:
		return CC_LT
	case value > 0:
		return CC_GT
	}
	return CC_EQ
}
