package irq

import "github.com/rust-embedded/riscv-sub001/hal"

// MachineInterrupt enumerates the standard machine-level interrupt
// causes. The values are the cause codes reported in mcause and the bit
// positions used by the mie and mip registers.
type MachineInterrupt uint

const (
	// SupervisorSoft is a software interrupt targeted at supervisor mode.
	SupervisorSoft MachineInterrupt = 1
	// MachineSoft is a software interrupt targeted at machine mode.
	MachineSoft MachineInterrupt = 3
	// SupervisorTimer is the supervisor timer interrupt.
	SupervisorTimer MachineInterrupt = 5
	// MachineTimer is the machine timer interrupt.
	MachineTimer MachineInterrupt = 7
	// SupervisorExternal is an external interrupt routed to supervisor mode.
	SupervisorExternal MachineInterrupt = 9
	// MachineExternal is an external interrupt routed to machine mode.
	MachineExternal MachineInterrupt = 11
)

// InterruptNumber returns the cause code of the interrupt.
func (i MachineInterrupt) InterruptNumber() uint {
	return uint(i)
}

// MachineException enumerates the standard exception causes.
type MachineException uint

const (
	// InstructionMisaligned is a misaligned instruction fetch address.
	InstructionMisaligned MachineException = 0
	// InstructionFault is an instruction access fault.
	InstructionFault MachineException = 1
	// IllegalInstruction is an illegal or unimplemented instruction.
	IllegalInstruction MachineException = 2
	// Breakpoint is an ebreak or trigger-module breakpoint.
	Breakpoint MachineException = 3
	// LoadMisaligned is a misaligned load address.
	LoadMisaligned MachineException = 4
	// LoadFault is a load access fault.
	LoadFault MachineException = 5
	// StoreMisaligned is a misaligned store or AMO address.
	StoreMisaligned MachineException = 6
	// StoreFault is a store or AMO access fault.
	StoreFault MachineException = 7
	// UserEnvCall is an ecall executed in user mode.
	UserEnvCall MachineException = 8
	// SupervisorEnvCall is an ecall executed in supervisor mode.
	SupervisorEnvCall MachineException = 9
	// MachineEnvCall is an ecall executed in machine mode.
	MachineEnvCall MachineException = 11
	// InstructionPageFault is an instruction fetch page fault.
	InstructionPageFault MachineException = 12
	// LoadPageFault is a load page fault.
	LoadPageFault MachineException = 13
	// StorePageFault is a store or AMO page fault.
	StorePageFault MachineException = 15
)

// ExceptionNumber returns the cause code of the exception.
func (e MachineException) ExceptionNumber() uint {
	return uint(e)
}

// StandardSet is the InterruptSet and ExceptionSet of the standard
// machine-level causes. Platforms without custom causes can use it
// directly; platforms with their own wiring declare their own sets.
type StandardSet struct{}

// MaxInterruptNumber returns the highest standard interrupt cause code.
func (StandardSet) MaxInterruptNumber() uint {
	return uint(MachineExternal)
}

// InterruptFromNumber maps a cause code back to its MachineInterrupt.
func (StandardSet) InterruptFromNumber(n uint) (Interrupt, *hal.Error) {
	switch MachineInterrupt(n) {
	case SupervisorSoft, MachineSoft, SupervisorTimer, MachineTimer,
		SupervisorExternal, MachineExternal:
		return MachineInterrupt(n), nil
	default:
		return nil, ErrInvalidVariant
	}
}

// MaxExceptionNumber returns the highest standard exception cause code.
func (StandardSet) MaxExceptionNumber() uint {
	return uint(StorePageFault)
}

// ExceptionFromNumber maps a cause code back to its MachineException.
func (StandardSet) ExceptionFromNumber(n uint) (Exception, *hal.Error) {
	switch MachineException(n) {
	case InstructionMisaligned, InstructionFault, IllegalInstruction,
		Breakpoint, LoadMisaligned, LoadFault, StoreMisaligned, StoreFault,
		UserEnvCall, SupervisorEnvCall, MachineEnvCall,
		InstructionPageFault, LoadPageFault, StorePageFault:
		return MachineException(n), nil
	default:
		return nil, ErrInvalidVariant
	}
}
