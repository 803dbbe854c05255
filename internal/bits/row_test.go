package bits

import "testing"

func TestShlBoundaries(t *testing.T) {
	all := Row{Hi: ^uint64(0), Lo: ^uint64(0)}

	cases := []struct {
		k    uint
		want Row
	}{
		{0, all},
		{1, Row{Hi: ^uint64(0), Lo: ^uint64(1)}},
		{63, Row{Hi: ^uint64(0), Lo: 1 << 63}},
		{64, Row{Hi: ^uint64(0), Lo: 0}},
		{65, Row{Hi: ^uint64(1), Lo: 0}},
		{127, Row{Hi: 1 << 63, Lo: 0}},
	}
	for _, c := range cases {
		got := all.Shl(c.k)
		if got != c.want {
			t.Errorf("Shl(%d) = %+v, want %+v", c.k, got, c.want)
		}
	}
}

func TestShrLogicalBoundaries(t *testing.T) {
	all := Row{Hi: ^uint64(0), Lo: ^uint64(0)}

	cases := []struct {
		k    uint
		want Row
	}{
		{0, all},
		{1, Row{Hi: ^uint64(0) >> 1, Lo: ^uint64(0)}},
		{63, Row{Hi: 1, Lo: ^uint64(0)}},
		{64, Row{Hi: 0, Lo: ^uint64(0)}},
		{65, Row{Hi: 0, Lo: ^uint64(0) >> 1}},
		{127, Row{Hi: 0, Lo: 1}},
	}
	for _, c := range cases {
		got := all.ShrLogical(c.k)
		if got != c.want {
			t.Errorf("ShrLogical(%d) = %+v, want %+v", c.k, got, c.want)
		}
	}
}

func TestSingleBitShiftCarriesAcrossHalves(t *testing.T) {
	r := Row{Hi: 0, Lo: 1 << 63}
	got := r.Shl(1)
	want := Row{Hi: 1, Lo: 0}
	if got != want {
		t.Errorf("Shl(1) across boundary = %+v, want %+v", got, want)
	}
}

func TestAndOrXorNot(t *testing.T) {
	a := Row{Hi: 0xF0F0, Lo: 0x0F0F}
	b := Row{Hi: 0x0F0F, Lo: 0xF0F0}

	if got := a.And(b); got != (Row{}) {
		t.Errorf("And = %+v, want zero", got)
	}
	if got := a.Or(b); got != (Row{Hi: 0xFFFF, Lo: 0xFFFF}) {
		t.Errorf("Or = %+v", got)
	}
	if got := a.Xor(b); got != (Row{Hi: 0xFFFF, Lo: 0xFFFF}) {
		t.Errorf("Xor = %+v", got)
	}
	if got := (Row{}).Not(); got != (Row{Hi: ^uint64(0), Lo: ^uint64(0)}) {
		t.Errorf("Not = %+v", got)
	}
}

func TestSetBitAndBit(t *testing.T) {
	r := Row{}
	r = r.SetBit(0, true)
	r = r.SetBit(63, true)
	r = r.SetBit(64, true)
	r = r.SetBit(127, true)

	for _, pos := range []uint{0, 63, 64, 127} {
		if !r.Bit(pos) {
			t.Errorf("Bit(%d) = false, want true", pos)
		}
	}
	if r.Bit(1) {
		t.Errorf("Bit(1) = true, want false")
	}

	r = r.SetBit(64, false)
	if r.Bit(64) {
		t.Errorf("Bit(64) after clear = true, want false")
	}
}

func TestIsZero(t *testing.T) {
	if !(Row{}).IsZero() {
		t.Error("zero Row reports non-zero")
	}
	if (Row{Lo: 1}).IsZero() {
		t.Error("non-zero Row reports zero")
	}
}
