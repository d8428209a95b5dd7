package csr

import "github.com/rust-embedded/riscv-sub001/field"

// causeInterrupt is the most significant bit of the cause word: set for
// interrupts, clear for exceptions. The remaining bits hold the numeric
// cause code.
var (
	causeInterrupt = field.Bit(field.WordBits - 1)
	causeCode      = field.Range(0, field.WordBits-2)
)

// Mcause is a snapshot of the mcause register value.
type Mcause uintptr

// ReadMcause returns the current mcause value.
func ReadMcause() Mcause {
	return Mcause(MCAUSE.Read())
}

// Bits returns the raw register value.
func (c Mcause) Bits() uintptr {
	return uintptr(c)
}

// IsInterrupt reports whether the trap cause is an interrupt rather than
// an exception.
func (c Mcause) IsInterrupt() bool {
	return causeInterrupt.IsSet(uintptr(c))
}

// Code returns the numeric cause code with the interrupt flag stripped.
func (c Mcause) Code() uintptr {
	return causeCode.Get(uintptr(c))
}
