package irq

import (
	"github.com/rust-embedded/riscv-sub001/csr"
	"github.com/rust-embedded/riscv-sub001/field"
	"github.com/rust-embedded/riscv-sub001/hal"
)

// CauseInterruptFlag is the bit of the raw cause word that distinguishes
// interrupts (set) from exceptions (clear). The remaining bits hold the
// numeric cause code.
const CauseInterruptFlag = uintptr(1) << (field.WordBits - 1)

// Trap is a decoded trap cause. Exactly one of Interrupt and Exception is
// non-nil.
type Trap struct {
	Interrupt Interrupt
	Exception Exception
}

// DecodeCause splits a raw cause word into its interrupt/exception tag
// and cause code and resolves the code through the platform's source
// sets. It returns ErrInvalidVariant when the code is not declared; the
// caller should treat that as an unhandled trap.
func DecodeCause(raw uintptr, ints InterruptSet, excs ExceptionSet) (Trap, *hal.Error) {
	code := uint(raw &^ CauseInterruptFlag)

	if raw&CauseInterruptFlag != 0 {
		src, err := ints.InterruptFromNumber(code)
		if err != nil {
			return Trap{}, err
		}
		return Trap{Interrupt: src}, nil
	}

	cause, err := excs.ExceptionFromNumber(code)
	if err != nil {
		return Trap{}, err
	}
	return Trap{Exception: cause}, nil
}

// ReadCause decodes the cause of the trap currently being handled from
// the mcause register. It is only meaningful inside a trap handler.
func ReadCause(ints InterruptSet, excs ExceptionSet) (Trap, *hal.Error) {
	return DecodeCause(csr.ReadMcause().Bits(), ints, excs)
}
