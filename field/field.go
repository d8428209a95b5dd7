// Package field implements typed views over bit ranges of register
// values. A Field describes where a named field lives inside a register
// word; it operates on values that have already been read, so the same
// descriptor works for control-register and memory-mapped words alike.
//
// Descriptors are stateless and are normally declared once as package
// variables next to the register they belong to. Construction validates
// the bit range; Get and Set never do.
package field

// WordBits is the width of the register values a Field operates on.
const WordBits = 32 << (^uintptr(0) >> 63)

// Field is a view of the bit range [low, high] (both bounds inclusive) of
// a register value.
type Field struct {
	shift uint
	mask  uintptr
}

// Range returns the Field covering bits low through high, inclusive. It
// panics if the range is reversed or extends past the register width;
// descriptors are built at package init so an invalid range is a build
// defect, not a runtime condition.
func Range(low, high uint) Field {
	if low > high || high >= WordBits {
		panic("field: bit range outside register width")
	}
	width := high - low + 1
	var mask uintptr
	if width == WordBits {
		mask = ^uintptr(0)
	} else {
		mask = (uintptr(1)<<width - 1) << low
	}
	return Field{shift: low, mask: mask}
}

// Bit returns the single-bit Field at position n.
func Bit(n uint) Field {
	return Range(n, n)
}

// Get extracts the field value from reg, shifted down to bit 0.
func (f Field) Get(reg uintptr) uintptr {
	return (reg & f.mask) >> f.shift
}

// IsSet reports whether any bit of the field is set in reg. For
// single-bit fields this is the boolean value of the field.
func (f Field) IsSet(reg uintptr) bool {
	return reg&f.mask != 0
}

// Set returns reg with the field replaced by val. Bits of val beyond the
// field width are truncated; every bit of reg outside the field's mask is
// preserved.
func (f Field) Set(reg, val uintptr) uintptr {
	return (reg &^ f.mask) | ((val << f.shift) & f.mask)
}

// Mask returns the field's mask in register position.
func (f Field) Mask() uintptr {
	return f.mask
}

// Shift returns the bit offset of the field's least significant bit.
func (f Field) Shift() uint {
	return f.shift
}
