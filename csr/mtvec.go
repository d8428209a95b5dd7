package csr

import "github.com/rust-embedded/riscv-sub001/field"

// mtvec packs the handler base address and the vectoring mode into one
// word; the two low bits select the mode and the rest is the address
// shifted right by two.
var (
	mtvecMode = field.Range(0, 1)
	mtvecBase = field.Range(2, field.WordBits-1)
)

// TrapMode selects how the hart dispatches to the trap handler.
type TrapMode uint8

const (
	// TrapDirect routes every trap to the base address.
	TrapDirect TrapMode = 0
	// TrapVectored routes interrupts to base + 4*cause.
	TrapVectored TrapMode = 1
	// TrapReserved covers the two encodings the specification leaves
	// unassigned. The field is WARL so hardware never stores them; the
	// decoder keeps them representable instead of panicking.
	TrapReserved TrapMode = 2
)

// Mtvec is a snapshot of the mtvec register value.
type Mtvec uintptr

// ReadMtvec returns the current mtvec value.
func ReadMtvec() Mtvec {
	return Mtvec(MTVEC.Read())
}

// Base returns the trap handler base address.
func (m Mtvec) Base() uintptr {
	return mtvecBase.Get(uintptr(m)) << 2
}

// Mode returns the trap dispatch mode. Both reserved encodings decode to
// TrapReserved.
func (m Mtvec) Mode() TrapMode {
	mode := mtvecMode.Get(uintptr(m))
	switch mode {
	case 0:
		return TrapDirect
	case 1:
		return TrapVectored
	default:
		return TrapReserved
	}
}

// WriteMtvec installs a trap handler base address and dispatch mode. The
// base must be 4-byte aligned; the low bits are claimed by the mode
// field.
func WriteMtvec(base uintptr, mode TrapMode) {
	var v uintptr
	v = mtvecBase.Set(v, base>>2)
	v = mtvecMode.Set(v, uintptr(mode))
	MTVEC.Write(v)
}
