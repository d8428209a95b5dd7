package field

import "testing"

func TestFieldRoundTrip(t *testing.T) {
	specs := []struct {
		low, high uint
		initial   uintptr
		val       uintptr
		expGet    uintptr
	}{
		{0, 0, 0, 1, 1},
		{3, 3, 0xf0, 1, 1},
		{11, 12, 0, 0b11, 0b11},
		{8, 15, 0xffff0000, 0xab, 0xab},
		// value wider than the field is truncated to its width
		{4, 7, 0, 0x1f, 0xf},
		{0, WordBits - 1, 0, ^uintptr(0), ^uintptr(0)},
	}

	for specIndex, spec := range specs {
		f := Range(spec.low, spec.high)

		reg := f.Set(spec.initial, spec.val)
		if got := f.Get(reg); got != spec.expGet {
			t.Errorf("[spec %d] expected Get to return %x; got %x", specIndex, spec.expGet, got)
		}

		// bits outside the mask must be untouched
		if outside := reg &^ f.Mask(); outside != spec.initial&^f.Mask() {
			t.Errorf("[spec %d] expected bits outside the mask to remain %x; got %x",
				specIndex, spec.initial&^f.Mask(), outside)
		}
	}
}

func TestFieldBit(t *testing.T) {
	f := Bit(5)

	if f.Mask() != 1<<5 {
		t.Fatalf("expected mask to be %x; got %x", 1<<5, f.Mask())
	}

	if !f.IsSet(1 << 5) {
		t.Fatal("expected IsSet to return true when bit 5 is set")
	}

	if f.IsSet(^uintptr(1 << 5)) {
		t.Fatal("expected IsSet to return false when bit 5 is clear")
	}

	if got := f.Set(0, 1); got != 1<<5 {
		t.Fatalf("expected Set to return %x; got %x", 1<<5, got)
	}
}

func TestFieldShift(t *testing.T) {
	if got := Range(11, 12).Shift(); got != 11 {
		t.Fatalf("expected Shift to return 11; got %d", got)
	}
}

func TestRangeValidation(t *testing.T) {
	specs := []struct {
		low, high uint
	}{
		{1, 0},
		{0, WordBits},
		{WordBits, WordBits + 3},
	}

	for specIndex, spec := range specs {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("[spec %d] expected Range(%d, %d) to panic", specIndex, spec.low, spec.high)
				}
			}()
			Range(spec.low, spec.high)
		}()
	}
}
