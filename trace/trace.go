// Package trace renders executed instructions as single line trace text,
// and delivers that text to a Sink.
package trace

import (
	"fmt"
	"strings"

	"github.com/ezrec/sicxe/cpu"
)

// unimplemented lists the trace text of recognized opcodes without an effect.
var unimplemented = map[cpu.Opcode]string{
	cpu.OP_NORM: "NORM: Operação de normalização não implementada.",
	cpu.OP_SIO:  "SIO: Início de I/O não implementado.",
	cpu.OP_SSK:  "SSK: Operação de proteção não implementada.",
	cpu.OP_RD:   "RD: Operação de leitura de dispositivo não implementada.",
	cpu.OP_TIO:  "TIO: Teste de I/O não implementado.",
	cpu.OP_TD:   "TD: Teste de dispositivo não implementado.",
	cpu.OP_SVC:  "SVC: Chamada de sistema não implementada.",
	cpu.OP_WD:   "WD: Escrita para dispositivo não implementada.",
	cpu.OP_LPS:  "LPS: Operação não implementada.",
	cpu.OP_STI:  "STI: Operação de armazenamento para dispositivo não implementada.",
	cpu.OP_HIO:  "HIO: Operação não implementada.",
}

// Relation returns the comparison word for a condition code.
func Relation(cc cpu.CondCode) string {
	switch cc {
	case cpu.CC_LT:
		return "Menor"
	case cpu.CC_GT:
		return "Maior"
	}
	return "Igual"
}

// operand returns the n'th register operand, or 0 if absent.
func operand(res cpu.Result, n int) int {
	if n < len(res.Operands) {
		return res.Operands[n]
	}
	return 0
}

// Format returns the trace line of an executed instruction.
func Format(res cpu.Result) (text string) {
	op := res.Opcode
	name := op.String()

	if res.Outcome == cpu.OUTCOME_UNIMPLEMENTED {
		msg, ok := unimplemented[op]
		if !ok {
			msg = name + ": Operação não implementada."
		}
		return msg
	}

	value := res.Hex(res.Value)
	left := res.Hex(res.Left)
	right := res.Hex(res.Right)
	r1, r2 := operand(res, 0), operand(res, 1)

	switch op {
	case cpu.OP_ADD, cpu.OP_SUB, cpu.OP_MUL, cpu.OP_DIV, cpu.OP_AND, cpu.OP_OR:
		text = fmt.Sprintf("%s: Resultado = %06X", name, value)
	case cpu.OP_ADDR:
		text = fmt.Sprintf("ADDR: R%d + R%d = %06X", r1, r2, value)
	case cpu.OP_SUBR:
		text = fmt.Sprintf("SUBR: R%d - R%d = %06X", r2, r1, value)
	case cpu.OP_MULR:
		text = fmt.Sprintf("MULR: R%d * R%d = %06X", r1, r2, value)
	case cpu.OP_DIVR:
		text = fmt.Sprintf("DIVR: R%d / R%d = %06X", r2, r1, value)
	case cpu.OP_ADDF, cpu.OP_SUBF, cpu.OP_MULF, cpu.OP_DIVF:
		text = fmt.Sprintf("%s: Resultado = %012X", name, value)
	case cpu.OP_COMPF:
		text = fmt.Sprintf("COMPF: F=%012X vs Mem[%06X]=%012X => %s",
			left, res.Address, right, Relation(res.Cond))
	case cpu.OP_FIX:
		text = fmt.Sprintf("FIX: A ← %06X", value)
	case cpu.OP_FLOAT:
		text = fmt.Sprintf("FLOAT: F ← %012X", value)
	case cpu.OP_J:
		text = fmt.Sprintf("J: PC ← %06X", value)
	case cpu.OP_JEQ, cpu.OP_JGT, cpu.OP_JLT:
		if res.Outcome == cpu.OUTCOME_SKIPPED {
			text = name + ": Condição não satisfeita"
		} else {
			text = fmt.Sprintf("%s: PC ← %06X", name, value)
		}
	case cpu.OP_JSUB:
		text = fmt.Sprintf("JSUB: PC ← %06X | L = %06X", value, res.Hex(res.Link))
	case cpu.OP_RSUB:
		if res.Halted() {
			text = "RSUB: Encerrando execução (HALT)."
		} else {
			text = fmt.Sprintf("RSUB: Retornando para %06X", value)
		}
	case cpu.OP_LDA, cpu.OP_LDB, cpu.OP_LDL, cpu.OP_LDS, cpu.OP_LDT, cpu.OP_LDX:
		text = fmt.Sprintf("%s: %s ← %06X", name, strings.TrimPrefix(name, "LD"), value)
	case cpu.OP_LDCH:
		text = fmt.Sprintf("LDCH: A[byte] ← %02X", value)
	case cpu.OP_LDF:
		text = fmt.Sprintf("LDF: F ← %012X", value)
	case cpu.OP_STA, cpu.OP_STB, cpu.OP_STL, cpu.OP_STS, cpu.OP_STT, cpu.OP_STX, cpu.OP_STSW:
		text = fmt.Sprintf("%s: Mem[%06X] ← %06X", name, res.Address, value)
	case cpu.OP_STCH:
		text = fmt.Sprintf("STCH: Mem[%06X] ← %02X", res.Address, value)
	case cpu.OP_STF:
		text = fmt.Sprintf("STF: Mem[%06X] ← %012X", res.Address, value)
	case cpu.OP_CLEAR:
		text = fmt.Sprintf("CLEAR: R%d zerado", r1)
	case cpu.OP_COMP:
		text = fmt.Sprintf("COMP: A=%06X vs Mem[%06X]=%06X => %s",
			left, res.Address, right, Relation(res.Cond))
	case cpu.OP_COMPR:
		text = fmt.Sprintf("COMPR: R%d=%06X vs R%d=%06X => %s",
			r1, left, r2, right, Relation(res.Cond))
	case cpu.OP_SHIFTL:
		text = fmt.Sprintf("SHIFTL: R%d << %d = %06X", r1, r2, value)
	case cpu.OP_SHIFTR:
		text = fmt.Sprintf("SHIFTR: R%d >> %d = %06X", r1, r2, value)
	case cpu.OP_RMO:
		text = fmt.Sprintf("RMO: R%d → R%d | Valor = %06X", r1, r2, value)
	case cpu.OP_TIX:
		text = fmt.Sprintf("TIX: X=%06X vs Mem[%06X]=%06X => %s",
			left, res.Address, right, Relation(res.Cond))
	case cpu.OP_TIXR:
		text = fmt.Sprintf("TIXR: X=%06X vs R%d=%06X => %s",
			left, r1, right, Relation(res.Cond))
	default:
		text = res.Instruction.String()
	}

	return
}
