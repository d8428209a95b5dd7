package csr

import "github.com/rust-embedded/riscv-sub001/field"

// Per-source bits shared by the mie (enable) and mip (pending)
// registers. Bit positions match the standard machine-level interrupt
// cause numbers.
var (
	intSSoft     = field.Bit(1)
	intMSoft     = field.Bit(3)
	intSTimer    = field.Bit(5)
	intMTimer    = field.Bit(7)
	intSExternal = field.Bit(9)
	intMExternal = field.Bit(11)
)

// Mie is a snapshot of the mie interrupt-enable register value.
type Mie uintptr

// ReadMie returns the current mie value.
func ReadMie() Mie {
	return Mie(MIE.Read())
}

// MSoft returns the machine software interrupt-enable bit.
func (m Mie) MSoft() bool {
	return intMSoft.IsSet(uintptr(m))
}

// MTimer returns the machine timer interrupt-enable bit.
func (m Mie) MTimer() bool {
	return intMTimer.IsSet(uintptr(m))
}

// MExternal returns the machine external interrupt-enable bit.
func (m Mie) MExternal() bool {
	return intMExternal.IsSet(uintptr(m))
}

// SSoft returns the supervisor software interrupt-enable bit.
func (m Mie) SSoft() bool {
	return intSSoft.IsSet(uintptr(m))
}

// STimer returns the supervisor timer interrupt-enable bit.
func (m Mie) STimer() bool {
	return intSTimer.IsSet(uintptr(m))
}

// SExternal returns the supervisor external interrupt-enable bit.
func (m Mie) SExternal() bool {
	return intSExternal.IsSet(uintptr(m))
}

// EnableMSoft sets the machine software interrupt-enable bit.
func EnableMSoft() {
	MIE.SetBits(intMSoft.Mask())
}

// DisableMSoft clears the machine software interrupt-enable bit.
func DisableMSoft() {
	MIE.ClearBits(intMSoft.Mask())
}

// EnableMTimer sets the machine timer interrupt-enable bit.
func EnableMTimer() {
	MIE.SetBits(intMTimer.Mask())
}

// DisableMTimer clears the machine timer interrupt-enable bit.
func DisableMTimer() {
	MIE.ClearBits(intMTimer.Mask())
}

// EnableMExternal sets the machine external interrupt-enable bit. The
// external interrupt controller only raises machine external interrupts
// while this bit is set.
func EnableMExternal() {
	MIE.SetBits(intMExternal.Mask())
}

// DisableMExternal clears the machine external interrupt-enable bit.
func DisableMExternal() {
	MIE.ClearBits(intMExternal.Mask())
}

// Mip is a snapshot of the mip interrupt-pending register value.
type Mip uintptr

// ReadMip returns the current mip value.
func ReadMip() Mip {
	return Mip(MIP.Read())
}

// MSoft returns the machine software interrupt-pending bit.
func (m Mip) MSoft() bool {
	return intMSoft.IsSet(uintptr(m))
}

// MTimer returns the machine timer interrupt-pending bit.
func (m Mip) MTimer() bool {
	return intMTimer.IsSet(uintptr(m))
}

// MExternal returns the machine external interrupt-pending bit.
func (m Mip) MExternal() bool {
	return intMExternal.IsSet(uintptr(m))
}
