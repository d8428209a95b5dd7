package irq

import "github.com/rust-embedded/riscv-sub001/csr"

// Token records whether interrupts were globally enabled when a critical
// section was entered. It is not a nesting counter: each token captures
// exactly the state its own Save observed, which is why nested sections
// compose without shared mutable state.
type Token struct {
	wasEnabled bool
}

// WasEnabled reports the interrupt-enable state captured at entry.
func (t Token) WasEnabled() bool {
	return t.wasEnabled
}

// Save enters a critical section: it captures the current global
// interrupt-enable state, masks interrupts and returns a token for
// Restore. Calling Save while already masked is fine; the token simply
// records that interrupts were already disabled and the matching Restore
// leaves the outer section's mask intact.
func Save() Token {
	enabled := csr.InterruptsEnabled()
	csr.DisableInterrupts()
	return Token{wasEnabled: enabled}
}

// Restore leaves a critical section, re-enabling interrupts only if the
// token recorded them enabled at entry.
//
// Tokens must be consumed exactly once and in LIFO order relative to
// their Save calls. Restoring out of order or twice is a caller contract
// violation with no runtime detection: it can unmask interrupts an outer
// section still relies on being masked.
func Restore(t Token) {
	if t.wasEnabled {
		csr.EnableInterrupts()
	}
}

// Free runs fn with interrupts masked and restores the previous state
// afterwards. The token never escapes, so the LIFO discipline holds by
// construction.
func Free(fn func()) {
	t := Save()
	defer Restore(t)
	fn()
}
