// Package aclint implements the core-local interruptor peripherals: the
// machine-level software interrupt device (MSWI) and the machine-level
// timer (MTIMER). The two devices are commonly packaged together as a
// CLINT, whose fixed internal layout is captured by New.
package aclint

import "github.com/rust-embedded/riscv-sub001/mmio"

// CLINT internal layout, relative to the peripheral base address.
const (
	mtimecmpOffset = 0x4000
	mtimeOffset    = 0xbff8
)

// CLINT groups the software-interrupt and timer devices of a core-local
// interruptor instance.
type CLINT struct {
	MSWI   MSWI
	MTimer MTimer
}

// New returns the CLINT at base. The base address comes from the
// platform memory map; constructing a CLINT over an address not backed by
// the peripheral is undefined.
func New(base uintptr) CLINT {
	return CLINT{
		MSWI:   NewMSWI(base),
		MTimer: NewMTimer(base+mtimecmpOffset, base+mtimeOffset),
	}
}

// MSWI is the machine-level software interrupt device. Each hart owns
// one msip word at base + 4*hart; bit 0 pends a machine software
// interrupt for that hart and the upper bits are hard-wired zero.
type MSWI struct {
	base uintptr
}

// NewMSWI returns the software interrupt device whose msip words start
// at base.
func NewMSWI(base uintptr) MSWI {
	return MSWI{base: base}
}

func (m MSWI) msip(hart uint) mmio.RW32 {
	return mmio.NewRW32(m.base + 4*uintptr(hart))
}

// IsPending reports whether a machine software interrupt is pending for
// the hart.
func (m MSWI) IsPending(hart uint) bool {
	return m.msip(hart).Bit(0)
}

// Pend raises a machine software interrupt for the hart. Harts pend each
// other's msip words to implement inter-processor interrupts.
func (m MSWI) Pend(hart uint) {
	m.msip(hart).Write(1)
}

// Clear acknowledges the machine software interrupt of the hart. The
// handler must clear its own msip bit before returning or the interrupt
// retriggers immediately.
func (m MSWI) Clear(hart uint) {
	m.msip(hart).Write(0)
}

// MTimer is the machine-level timer device: one shared mtime counter and
// one mtimecmp compare register per hart at mtimecmp base + 8*hart. A
// machine timer interrupt is pending for a hart whenever mtime is greater
// than or equal to the hart's mtimecmp.
//
// The 64-bit accesses are single loads and stores, which is the RV64
// contract; on RV32 the hi/lo word sequencing belongs to platform glue.
type MTimer struct {
	cmpBase uintptr
	mtime   mmio.RW64
}

// NewMTimer returns the timer device with mtimecmp registers starting at
// cmpBase and the mtime counter at timeAddr.
func NewMTimer(cmpBase, timeAddr uintptr) MTimer {
	return MTimer{cmpBase: cmpBase, mtime: mmio.NewRW64(timeAddr)}
}

func (m MTimer) timecmp(hart uint) mmio.RW64 {
	return mmio.NewRW64(m.cmpBase + 8*uintptr(hart))
}

// Time returns the current value of the shared mtime counter.
func (m MTimer) Time() uint64 {
	return m.mtime.Read()
}

// SetTime replaces the shared mtime counter. Platforms normally only
// write it once at boot, if at all.
func (m MTimer) SetTime(val uint64) {
	m.mtime.Write(val)
}

// TimeCmp returns the hart's compare register value.
func (m MTimer) TimeCmp(hart uint) uint64 {
	return m.timecmp(hart).Read()
}

// SetTimeCmp schedules the hart's next timer interrupt: the interrupt
// pends once mtime reaches val. Writing the all-ones value parks the
// timer, since mtime never reaches it in practice.
func (m MTimer) SetTimeCmp(hart uint, val uint64) {
	m.timecmp(hart).Write(val)
}
