package mmio

// The types below wrap a register address together with its legal access
// direction. A register declared read-only simply has no Write method, so
// an access-mode violation is a compile error rather than a runtime check
// on the hot path.
//
// Constructing a handle over an address that is not backed by the expected
// hardware register is not detected; validity is a precondition supplied
// by the platform memory map.

// R32 is a handle to a read-only 32-bit register.
type R32 struct {
	addr uintptr
}

// NewR32 returns a read-only handle for the register at addr.
func NewR32(addr uintptr) R32 {
	return R32{addr: addr}
}

// Addr returns the address the handle was constructed with.
func (r R32) Addr() uintptr {
	return r.addr
}

// Read returns the current register value.
func (r R32) Read() uint32 {
	return Read32(r.addr)
}

// Bit reads the register and reports whether bit n is set.
func (r R32) Bit(n uint) bool {
	return Read32(r.addr)&(1<<n) != 0
}

// W32 is a handle to a write-only 32-bit register.
type W32 struct {
	addr uintptr
}

// NewW32 returns a write-only handle for the register at addr.
func NewW32(addr uintptr) W32 {
	return W32{addr: addr}
}

// Addr returns the address the handle was constructed with.
func (w W32) Addr() uintptr {
	return w.addr
}

// Write replaces the register value with val.
func (w W32) Write(val uint32) {
	Write32(w.addr, val)
}

// RW32 is a handle to a read-write 32-bit register.
type RW32 struct {
	addr uintptr
}

// NewRW32 returns a read-write handle for the register at addr.
func NewRW32(addr uintptr) RW32 {
	return RW32{addr: addr}
}

// Addr returns the address the handle was constructed with.
func (r RW32) Addr() uintptr {
	return r.addr
}

// Read returns the current register value.
func (r RW32) Read() uint32 {
	return Read32(r.addr)
}

// Write replaces the register value with val.
func (r RW32) Write(val uint32) {
	Write32(r.addr, val)
}

// Bit reads the register and reports whether bit n is set.
func (r RW32) Bit(n uint) bool {
	return Read32(r.addr)&(1<<n) != 0
}

// SetBits sets the bits selected by mask, leaving the rest of the register
// unchanged. This is a read-modify-write sequence, not an atomic
// operation: if an interrupt handler can touch the same register the
// caller must hold a critical section around the call.
func (r RW32) SetBits(mask uint32) {
	Write32(r.addr, Read32(r.addr)|mask)
}

// ClearBits clears the bits selected by mask, leaving the rest of the
// register unchanged. The same read-modify-write caveat as SetBits
// applies.
func (r RW32) ClearBits(mask uint32) {
	Write32(r.addr, Read32(r.addr)&^mask)
}

// AtomicSetBits sets the bits selected by mask using a compare-and-swap
// loop. Only valid on targets whose bus fabric supports atomic operations
// to the register's address region.
func (r RW32) AtomicSetBits(mask uint32) {
	for {
		old := Read32(r.addr)
		if cas32(r.addr, old, old|mask) {
			return
		}
	}
}

// AtomicClearBits clears the bits selected by mask using a
// compare-and-swap loop. The same target precondition as AtomicSetBits
// applies.
func (r RW32) AtomicClearBits(mask uint32) {
	for {
		old := Read32(r.addr)
		if cas32(r.addr, old, old&^mask) {
			return
		}
	}
}

// RW64 is a handle to a read-write 64-bit register.
type RW64 struct {
	addr uintptr
}

// NewRW64 returns a read-write handle for the register at addr.
func NewRW64(addr uintptr) RW64 {
	return RW64{addr: addr}
}

// Addr returns the address the handle was constructed with.
func (r RW64) Addr() uintptr {
	return r.addr
}

// Read returns the current register value.
func (r RW64) Read() uint64 {
	return Read64(r.addr)
}

// Write replaces the register value with val.
func (r RW64) Write(val uint64) {
	Write64(r.addr, val)
}
