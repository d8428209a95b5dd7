package csr

import (
	"testing"

	"github.com/rust-embedded/riscv-sub001/field"
)

// simFile is a simulated control-register file implementing Accessor.
type simFile map[uint16]uintptr

func (f simFile) Read(reg uint16) uintptr        { return f[reg] }
func (f simFile) Write(reg uint16, val uintptr)  { f[reg] = val }
func (f simFile) Set(reg uint16, mask uintptr)   { f[reg] |= mask }
func (f simFile) Clear(reg uint16, mask uintptr) { f[reg] &^= mask }

func install(t *testing.T) simFile {
	t.Helper()

	sim := make(simFile)
	Install(sim)
	t.Cleanup(func() { Install(nil) })
	return sim
}

func TestRegisterAccess(t *testing.T) {
	sim := install(t)

	MSCRATCH.Write(0xabcd)
	if got := MSCRATCH.Read(); got != 0xabcd {
		t.Fatalf("expected Read to return abcd; got %x", got)
	}

	MSCRATCH.SetBits(0xf0000)
	MSCRATCH.ClearBits(0x000f)
	if got := sim[MSCRATCH.Num()]; got != 0xfabc0 {
		t.Fatalf("expected register to contain fabc0; got %x", got)
	}
}

func TestDescriptorModes(t *testing.T) {
	specs := []struct {
		reg      Register
		expNum   uint16
		expRead  bool
		expWrite bool
	}{
		{MSTATUS, 0x300, true, true},
		{MIE, 0x304, true, true},
		{MTVEC, 0x305, true, true},
		{MEPC, 0x341, true, true},
		{MCAUSE, 0x342, true, true},
		{MIP, 0x344, true, true},
		{MHARTID, 0xf14, true, false},
		{MVENDORID, 0xf11, true, false},
		{CYCLE, 0xc00, true, false},
		{TIME, 0xc01, true, false},
	}

	for specIndex, spec := range specs {
		if got := spec.reg.Num(); got != spec.expNum {
			t.Errorf("[spec %d] expected Num to return %x; got %x", specIndex, spec.expNum, got)
		}
		if got := spec.reg.Mode().CanRead(); got != spec.expRead {
			t.Errorf("[spec %d] expected CanRead to return %t; got %t", specIndex, spec.expRead, got)
		}
		if got := spec.reg.Mode().CanWrite(); got != spec.expWrite {
			t.Errorf("[spec %d] expected CanWrite to return %t; got %t", specIndex, spec.expWrite, got)
		}
	}
}

func TestMstatusFields(t *testing.T) {
	specs := []struct {
		val     Mstatus
		expMIE  bool
		expMPIE bool
		expMPP  PrivilegeMode
		expFS   ExtState
	}{
		{0, false, false, PrivUser, ExtOff},
		{1 << 3, true, false, PrivUser, ExtOff},
		{1 << 7, false, true, PrivUser, ExtOff},
		{3 << 11, false, false, PrivMachine, ExtOff},
		{1 << 11, false, false, PrivSupervisor, ExtOff},
		// the reserved MPP pattern must decode, not panic
		{2 << 11, false, false, PrivReserved, ExtOff},
		{3 << 13, false, false, PrivUser, ExtDirty},
		{1<<3 | 1<<7 | 3<<11 | 1<<13, true, true, PrivMachine, ExtInitial},
	}

	for specIndex, spec := range specs {
		if got := spec.val.MIE(); got != spec.expMIE {
			t.Errorf("[spec %d] expected MIE to return %t; got %t", specIndex, spec.expMIE, got)
		}
		if got := spec.val.MPIE(); got != spec.expMPIE {
			t.Errorf("[spec %d] expected MPIE to return %t; got %t", specIndex, spec.expMPIE, got)
		}
		if got := spec.val.MPP(); got != spec.expMPP {
			t.Errorf("[spec %d] expected MPP to return %d; got %d", specIndex, spec.expMPP, got)
		}
		if got := spec.val.FS(); got != spec.expFS {
			t.Errorf("[spec %d] expected FS to return %d; got %d", specIndex, spec.expFS, got)
		}
	}

	if got := Mstatus(1 << 8).SPP(); got != PrivSupervisor {
		t.Errorf("expected SPP to return supervisor; got %d", got)
	}
	if got := Mstatus(0).SPP(); got != PrivUser {
		t.Errorf("expected SPP to return user; got %d", got)
	}
}

func TestInterruptEnableHelpers(t *testing.T) {
	sim := install(t)

	if InterruptsEnabled() {
		t.Fatal("expected interrupts to start disabled")
	}

	EnableInterrupts()
	if !InterruptsEnabled() {
		t.Fatal("expected InterruptsEnabled to return true after EnableInterrupts")
	}
	if sim[MSTATUS.Num()] != 1<<3 {
		t.Fatalf("expected only the MIE bit to be set; got %x", sim[MSTATUS.Num()])
	}

	DisableInterrupts()
	if InterruptsEnabled() {
		t.Fatal("expected InterruptsEnabled to return false after DisableInterrupts")
	}
}

func TestMieMipHelpers(t *testing.T) {
	sim := install(t)

	EnableMSoft()
	EnableMTimer()
	EnableMExternal()

	mie := ReadMie()
	if !mie.MSoft() || !mie.MTimer() || !mie.MExternal() {
		t.Fatalf("expected machine enable bits to be set; got %x", sim[MIE.Num()])
	}
	if mie.SSoft() || mie.STimer() || mie.SExternal() {
		t.Fatalf("expected supervisor enable bits to be clear; got %x", sim[MIE.Num()])
	}

	DisableMTimer()
	if ReadMie().MTimer() {
		t.Fatal("expected MTimer to be clear after DisableMTimer")
	}
	if !ReadMie().MSoft() || !ReadMie().MExternal() {
		t.Fatal("expected sibling enable bits to survive DisableMTimer")
	}

	DisableMSoft()
	DisableMExternal()
	if sim[MIE.Num()] != 0 {
		t.Fatalf("expected mie to be empty; got %x", sim[MIE.Num()])
	}

	sim[MIP.Num()] = 1<<3 | 1<<11
	mip := ReadMip()
	if !mip.MSoft() || mip.MTimer() || !mip.MExternal() {
		t.Fatalf("expected msip and meip to be pending; got %x", sim[MIP.Num()])
	}
}

func TestMcauseFields(t *testing.T) {
	interruptFlag := Mcause(1) << (field.WordBits - 1)

	specs := []struct {
		val          Mcause
		expInterrupt bool
		expCode      uintptr
	}{
		{interruptFlag | 5, true, 5},
		{interruptFlag | 11, true, 11},
		{2, false, 2},
		{13, false, 13},
	}

	for specIndex, spec := range specs {
		if got := spec.val.IsInterrupt(); got != spec.expInterrupt {
			t.Errorf("[spec %d] expected IsInterrupt to return %t; got %t", specIndex, spec.expInterrupt, got)
		}
		if got := spec.val.Code(); got != spec.expCode {
			t.Errorf("[spec %d] expected Code to return %d; got %d", specIndex, spec.expCode, got)
		}
		if got := spec.val.Bits(); got != uintptr(spec.val) {
			t.Errorf("[spec %d] expected Bits to return the raw value", specIndex)
		}
	}
}

func TestMtvecRoundTrip(t *testing.T) {
	sim := install(t)

	WriteMtvec(0x8000_0100, TrapVectored)

	m := ReadMtvec()
	if got := m.Base(); got != 0x8000_0100 {
		t.Fatalf("expected Base to return 80000100; got %x", got)
	}
	if got := m.Mode(); got != TrapVectored {
		t.Fatalf("expected Mode to return vectored; got %d", got)
	}

	// reserved mode encodings decode to TrapReserved
	sim[MTVEC.Num()] = 2
	if got := ReadMtvec().Mode(); got != TrapReserved {
		t.Fatalf("expected Mode to return reserved; got %d", got)
	}
	sim[MTVEC.Num()] = 3
	if got := ReadMtvec().Mode(); got != TrapReserved {
		t.Fatalf("expected Mode to return reserved; got %d", got)
	}
}
