// Package clic implements the optional interrupt trigger registers of a
// core-local interrupt controller. Each source may expose one trigger
// register that routes the interrupt to a breakpoint exception, debug
// mode entry or a trace action.
package clic

import (
	"github.com/rust-embedded/riscv-sub001/field"
	"github.com/rust-embedded/riscv-sub001/mmio"
)

// Trigger register layout: bit 31 arms the trigger, bits [12:0] select
// the interrupt number routed to it.
var (
	trigEnable    = field.Bit(31)
	trigInterrupt = field.Range(0, 12)
)

// Trigger is the interrupt trigger register of one source. Hardware is
// not required to implement it; a Trigger constructed with address 0
// models the absent register, which behaves as hard-wired zero: reads
// return 0 and writes are silently discarded. That fallback is defined
// behavior, not an error.
type Trigger struct {
	reg mmio.RW32
}

// NewTrigger returns the trigger register at addr. Pass 0 for a source
// whose trigger is not implemented.
func NewTrigger(addr uintptr) Trigger {
	return Trigger{reg: mmio.NewRW32(addr)}
}

// Implemented reports whether the register is backed by hardware.
func (t Trigger) Implemented() bool {
	return t.reg.Addr() != 0
}

// Read returns the raw register value; 0 when unimplemented.
func (t Trigger) Read() uint32 {
	if !t.Implemented() {
		return 0
	}
	return t.reg.Read()
}

// Write replaces the raw register value. Writes to an unimplemented
// register are discarded.
func (t Trigger) Write(val uint32) {
	if !t.Implemented() {
		return
	}
	t.reg.Write(val)
}

// Enabled reports whether the trigger is armed.
func (t Trigger) Enabled() bool {
	return trigEnable.IsSet(uintptr(t.Read()))
}

// SetEnabled arms or disarms the trigger, preserving the routed
// interrupt number.
func (t Trigger) SetEnabled(enabled bool) {
	var bit uintptr
	if enabled {
		bit = 1
	}
	t.Write(uint32(trigEnable.Set(uintptr(t.Read()), bit)))
}

// Interrupt returns the interrupt number routed to the trigger.
func (t Trigger) Interrupt() uint32 {
	return uint32(trigInterrupt.Get(uintptr(t.Read())))
}

// SetInterrupt routes an interrupt number to the trigger, preserving the
// enable bit. Numbers wider than the field are truncated to it.
func (t Trigger) SetInterrupt(n uint32) {
	t.Write(uint32(trigInterrupt.Set(uintptr(t.Read()), uintptr(n))))
}
