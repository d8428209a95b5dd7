// Package csr provides typed access to the processor control and status
// registers. Each register is a Register value bound to its CSR index and
// access mode by the descriptor set in regs.go; one generic accessor
// implementation serves all of them.
//
// The actual csrr/csrw/csrrs/csrrc instruction sequences cannot be
// expressed portably, so they live in platform startup glue which installs
// an Accessor via Install before any register is touched. Tests install a
// simulated register file through the same hook.
package csr

// Mode describes the legal access directions of a control register.
type Mode uint8

const (
	// ReadOnly registers trap on writes.
	ReadOnly Mode = iota
	// WriteOnly registers yield undefined values on reads.
	WriteOnly
	// ReadWrite registers support both directions.
	ReadWrite
)

// CanRead reports whether the mode permits reads.
func (m Mode) CanRead() bool {
	return m == ReadOnly || m == ReadWrite
}

// CanWrite reports whether the mode permits writes.
func (m Mode) CanWrite() bool {
	return m == WriteOnly || m == ReadWrite
}

// Accessor performs raw control-register accesses on behalf of Register.
// Read and Write map to the csrr and csrw instructions. Set and Clear map
// to csrrs and csrrc, which set or clear the masked bits as a single
// atomic operation, so bit updates through an Accessor never race with
// interrupt handlers touching the same register.
type Accessor interface {
	Read(reg uint16) uintptr
	Write(reg uint16, val uintptr)
	Set(reg uint16, mask uintptr)
	Clear(reg uint16, mask uintptr)
}

// accessor is installed once at startup and never torn down. There is no
// locking around it: installation must complete before the first register
// access (and before interrupts are enabled).
var accessor Accessor

// Install registers the Accessor used for every control-register access.
// Platform startup code must call it exactly once, before any Register is
// used; the zero state has no accessor and any access will fault.
func Install(a Accessor) {
	accessor = a
}

// Register is a handle to one control register. Register values are
// declared in the descriptor set in regs.go; code elsewhere only uses the
// exported handles and never constructs its own.
type Register struct {
	num  uint16
	mode Mode
}

// Num returns the CSR index of the register.
func (r Register) Num() uint16 {
	return r.num
}

// Mode returns the access mode of the register.
func (r Register) Mode() Mode {
	return r.mode
}

// Read returns the current register value. Calling Read on a write-only
// register is a caller contract violation; the result is whatever the
// hardware yields, matching the CSR contract.
func (r Register) Read() uintptr {
	return accessor.Read(r.num)
}

// Write replaces the register value. Calling Write on a read-only
// register is a caller contract violation and traps on real hardware.
func (r Register) Write(val uintptr) {
	accessor.Write(r.num, val)
}

// SetBits sets the bits selected by mask in a single atomic csrrs
// operation.
func (r Register) SetBits(mask uintptr) {
	accessor.Set(r.num, mask)
}

// ClearBits clears the bits selected by mask in a single atomic csrrc
// operation.
func (r Register) ClearBits(mask uintptr) {
	accessor.Clear(r.num, mask)
}
