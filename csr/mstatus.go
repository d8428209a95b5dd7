package csr

import "github.com/rust-embedded/riscv-sub001/field"

// mstatus field descriptors.
var (
	mstatusSIE  = field.Bit(1)
	mstatusMIE  = field.Bit(3)
	mstatusSPIE = field.Bit(5)
	mstatusMPIE = field.Bit(7)
	mstatusSPP  = field.Bit(8)
	mstatusMPP  = field.Range(11, 12)
	mstatusFS   = field.Range(13, 14)
	mstatusMPRV = field.Bit(17)
)

// PrivilegeMode encodes the privilege level recorded in the mstatus
// previous-privilege fields.
type PrivilegeMode uint8

const (
	// PrivUser is the unprivileged mode.
	PrivUser PrivilegeMode = 0
	// PrivSupervisor is the supervisor mode.
	PrivSupervisor PrivilegeMode = 1
	// PrivReserved is the encoding the specification leaves unassigned.
	// Hardware never stores it; a decoder returning it indicates a
	// corrupted or mis-wired register.
	PrivReserved PrivilegeMode = 2
	// PrivMachine is the highest privilege mode.
	PrivMachine PrivilegeMode = 3
)

// ExtState encodes the mstatus FS dirtiness tracking for the
// floating-point unit.
type ExtState uint8

const (
	// ExtOff means the unit is disabled.
	ExtOff ExtState = iota
	// ExtInitial means the unit holds its reset state.
	ExtInitial
	// ExtClean means the unit state matches what was last saved.
	ExtClean
	// ExtDirty means the unit state has changed since the last save.
	ExtDirty
)

// Mstatus is a snapshot of the mstatus register value.
type Mstatus uintptr

// ReadMstatus returns the current mstatus value.
func ReadMstatus() Mstatus {
	return Mstatus(MSTATUS.Read())
}

// SIE returns the supervisor global interrupt-enable bit.
func (m Mstatus) SIE() bool {
	return mstatusSIE.IsSet(uintptr(m))
}

// MIE returns the machine global interrupt-enable bit.
func (m Mstatus) MIE() bool {
	return mstatusMIE.IsSet(uintptr(m))
}

// SPIE returns the supervisor previous interrupt-enable bit.
func (m Mstatus) SPIE() bool {
	return mstatusSPIE.IsSet(uintptr(m))
}

// MPIE returns the machine previous interrupt-enable bit.
func (m Mstatus) MPIE() bool {
	return mstatusMPIE.IsSet(uintptr(m))
}

// SPP returns the privilege mode the hart was in before taking the most
// recent supervisor-level trap. The field is one bit wide so the result
// is always user or supervisor.
func (m Mstatus) SPP() PrivilegeMode {
	if mstatusSPP.IsSet(uintptr(m)) {
		return PrivSupervisor
	}
	return PrivUser
}

// MPP returns the privilege mode the hart was in before taking the most
// recent machine-level trap. The reserved two-bit pattern decodes to
// PrivReserved rather than panicking; the register is hardware-written
// and a decoder must tolerate any pattern it can observe.
func (m Mstatus) MPP() PrivilegeMode {
	return PrivilegeMode(mstatusMPP.Get(uintptr(m)))
}

// FS returns the floating-point unit state. All four patterns of the
// field are assigned, so the decode is total.
func (m Mstatus) FS() ExtState {
	return ExtState(mstatusFS.Get(uintptr(m)))
}

// MPRV returns the modify-memory-privilege bit.
func (m Mstatus) MPRV() bool {
	return mstatusMPRV.IsSet(uintptr(m))
}

// InterruptsEnabled reports whether machine interrupts are globally
// enabled on this hart.
func InterruptsEnabled() bool {
	return ReadMstatus().MIE()
}

// EnableInterrupts sets the machine global interrupt-enable bit. Calling
// it inside a critical section breaks the section's masking guarantee.
func EnableInterrupts() {
	MSTATUS.SetBits(mstatusMIE.Mask())
}

// DisableInterrupts clears the machine global interrupt-enable bit.
func DisableInterrupts() {
	MSTATUS.ClearBits(mstatusMIE.Mask())
}
