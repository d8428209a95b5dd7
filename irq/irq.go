// Package irq defines the numbering contract between platform-specific
// interrupt and exception enumerations and the generic trap dispatch and
// interrupt controller code, the decoded trap cause, and the critical
// section primitive used to mask interrupts around multi-step register
// sequences.
package irq

import "github.com/rust-embedded/riscv-sub001/hal"

// ErrInvalidVariant is returned by the reverse mappings of a source set
// when a raw number has no declared source. An unknown trap cause usually
// indicates a misconfigured platform and should be treated as fatal by
// the trap handler.
var ErrInvalidVariant = &hal.Error{Module: "irq", Message: "number does not map to a declared source"}

// Interrupt is implemented by platform-defined interrupt source
// enumerations. Each source converts to a fixed non-negative number that
// is stable across builds; the mapping must be injective within its set.
type Interrupt interface {
	// InterruptNumber returns the number wired to this source.
	InterruptNumber() uint
}

// Exception is implemented by platform-defined exception cause
// enumerations, under the same injectivity and stability rules as
// Interrupt.
type Exception interface {
	// ExceptionNumber returns the number wired to this cause.
	ExceptionNumber() uint
}

// InterruptSet describes the closed set of interrupt sources wired on a
// platform. It is the sole coupling point between generic dispatch code
// and the platform's enumeration.
type InterruptSet interface {
	// MaxInterruptNumber returns the highest valid source number. The
	// bound is inclusive and 0 is a legal source number.
	MaxInterruptNumber() uint

	// InterruptFromNumber maps a raw number back to its source. It
	// returns ErrInvalidVariant when n exceeds the maximum or falls in
	// a gap of the enumeration.
	InterruptFromNumber(n uint) (Interrupt, *hal.Error)
}

// ExceptionSet describes the closed set of exception causes wired on a
// platform.
type ExceptionSet interface {
	// MaxExceptionNumber returns the highest valid cause number,
	// inclusive.
	MaxExceptionNumber() uint

	// ExceptionFromNumber maps a raw number back to its cause. It
	// returns ErrInvalidVariant when n is not declared.
	ExceptionFromNumber(n uint) (Exception, *hal.Error)
}
