// Package plic implements the driver for a platform-level external
// interrupt controller. The controller arbitrates the pending, enabled
// interrupt sources of each context (one context per hart and privilege
// level) and hands the winner to the hart through the claim/complete
// protocol.
//
// The driver is a thin, typed view of the controller's memory map; it
// never re-derives arbitration in software. All hardware state is reached
// through single-word volatile accesses, and the only read-modify-write
// sequences are the per-context enable bit updates, which the caller must
// wrap in a critical section when interrupt handlers touch the same
// enable word.
package plic

import (
	"github.com/rust-embedded/riscv-sub001/csr"
	"github.com/rust-embedded/riscv-sub001/hal"
	"github.com/rust-embedded/riscv-sub001/irq"
	"github.com/rust-embedded/riscv-sub001/mmio"
)

// Memory map of the controller, relative to its base address. Priorities
// are one word per source; the pending and enable bitmaps pack 32 sources
// per word.
const (
	priorityOffset = 0x0
	pendingOffset  = 0x1000
	enableOffset   = 0x2000
	enableStride   = 0x80
	contextOffset  = 0x20_0000
	contextStride  = 0x1000
	claimOffset    = 0x4

	wordBits = 32
)

var (
	// readWordFn and writeWordFn are mocked by tests to model the
	// controller's claim arbitration and are automatically inlined by
	// the compiler when building for real hardware.
	readWordFn  = mmio.Read32
	writeWordFn = mmio.Write32
)

// PLIC provides access to one interrupt controller instance. The base
// address comes from the platform memory map; constructing a PLIC over an
// address not backed by a controller is undefined.
type PLIC struct {
	base uintptr
}

// New returns a driver for the controller at base.
func New(base uintptr) PLIC {
	return PLIC{base: base}
}

// Base returns the base address the driver was constructed with.
func (p PLIC) Base() uintptr {
	return p.base
}

// Priority returns the priority of an interrupt source. Priorities are
// shared by all contexts.
func (p PLIC) Priority(src irq.Interrupt) uint32 {
	return readWordFn(p.base + priorityOffset + 4*uintptr(src.InterruptNumber()))
}

// SetPriority assigns the priority of an interrupt source. Priority 0
// permanently excludes the source from arbitration regardless of its
// enable bit; higher values win over lower ones.
func (p PLIC) SetPriority(src irq.Interrupt, priority uint32) {
	writeWordFn(p.base+priorityOffset+4*uintptr(src.InterruptNumber()), priority)
}

// IsPending reports whether an interrupt from the source is pending. The
// pending bitmap is read-only; the bit is cleared by claiming the source.
func (p PLIC) IsPending(src irq.Interrupt) bool {
	n := src.InterruptNumber()
	word := readWordFn(p.base + pendingOffset + 4*uintptr(n/wordBits))
	return word&(1<<(n%wordBits)) != 0
}

// Context returns the register proxy for a controller context. Context
// numbering is platform-wired; the driver does not bound-check it.
func (p PLIC) Context(index uint) Context {
	return Context{plic: p, index: index}
}

// Context provides access to the per-context registers of the
// controller: the enable bitmap, the priority threshold and the
// claim/complete register. Contexts of different harts are disjoint
// memory, so each hart may drive its own context without coordination;
// sharing one context across harts is undefined.
type Context struct {
	plic  PLIC
	index uint
}

// Index returns the context number of this proxy.
func (c Context) Index() uint {
	return c.index
}

func (c Context) enableWordAddr(n uint) uintptr {
	return c.plic.base + enableOffset + enableStride*uintptr(c.index) + 4*uintptr(n/wordBits)
}

func (c Context) thresholdAddr() uintptr {
	return c.plic.base + contextOffset + contextStride*uintptr(c.index)
}

func (c Context) claimAddr() uintptr {
	return c.thresholdAddr() + claimOffset
}

// IsEnabled reports whether the source is enabled for this context.
func (c Context) IsEnabled(src irq.Interrupt) bool {
	n := src.InterruptNumber()
	return readWordFn(c.enableWordAddr(n))&(1<<(n%wordBits)) != 0
}

// Enable allows interrupts from the source to be claimed by this
// context. The update is a read-modify-write of the enable word that
// preserves the enable state of every sibling source; the caller must
// hold a critical section if interrupt context can touch the same word.
func (c Context) Enable(src irq.Interrupt) {
	n := src.InterruptNumber()
	addr := c.enableWordAddr(n)
	writeWordFn(addr, readWordFn(addr)|1<<(n%wordBits))
}

// Disable stops interrupts from the source being claimed by this
// context. The same read-modify-write caveat as Enable applies.
func (c Context) Disable(src irq.Interrupt) {
	n := src.InterruptNumber()
	addr := c.enableWordAddr(n)
	writeWordFn(addr, readWordFn(addr)&^(1<<(n%wordBits)))
}

// DisableAll clears every enable word covering the set's sources.
func (c Context) DisableAll(set irq.InterruptSet) {
	for n := uint(0); n <= set.MaxInterruptNumber(); n += wordBits {
		writeWordFn(c.enableWordAddr(n), 0)
	}
}

// Threshold returns the context's priority threshold.
func (c Context) Threshold() uint32 {
	return readWordFn(c.thresholdAddr())
}

// SetThreshold sets the context's priority threshold. Sources whose
// priority is less than or equal to the threshold never claim-succeed for
// this context, even when pending and enabled. Threshold 0 accepts every
// source with a nonzero priority.
func (c Context) SetThreshold(threshold uint32) {
	writeWordFn(c.thresholdAddr(), threshold)
}

// Claim acknowledges the winning interrupt source for this context: the
// pending, enabled source with the highest priority above the threshold,
// lowest source number on a tie. The read atomically clears the source's
// pending bit in hardware. Claim returns nil, nil when no source
// qualifies, and ErrInvalidVariant when the controller hands back a
// number the platform set does not declare.
func (c Context) Claim(set irq.InterruptSet) (irq.Interrupt, *hal.Error) {
	n := readWordFn(c.claimAddr())
	if n == 0 {
		return nil, nil
	}
	return set.InterruptFromNumber(uint(n))
}

// Complete signals that the handler has finished servicing a claimed
// source, allowing the controller to raise it again. It must be called
// exactly once per successful Claim, by the context that claimed the
// source; completing a source this context never claimed is undefined at
// the hardware level and is not detected by the driver.
func (c Context) Complete(src irq.Interrupt) {
	writeWordFn(c.claimAddr(), uint32(src.InterruptNumber()))
}

// EnableExternal sets the machine external interrupt-enable bit of the
// mie register. The controller only interrupts the hart while the bit is
// set. Enabling it can break mask-based critical sections.
func EnableExternal() {
	csr.EnableMExternal()
}

// DisableExternal clears the machine external interrupt-enable bit.
func DisableExternal() {
	csr.DisableMExternal()
}

// ExternalEnabled reports whether machine external interrupts are
// enabled in mie.
func ExternalEnabled() bool {
	return csr.ReadMie().MExternal()
}

// ExternalPending reports whether a machine external interrupt is
// pending in mip.
func ExternalPending() bool {
	return csr.ReadMip().MExternal()
}
