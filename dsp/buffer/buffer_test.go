package buffer

import "testing"

func TestNewPadded(t *testing.T) {
	sig := []float64{1, 2, 3}

	b := NewPadded(sig, 2, 3)
	want := []float64{0, 0, 1, 2, 3, 0, 0, 0}
	if b.Len() != len(want) {
		t.Fatalf("len=%d, want %d", b.Len(), len(want))
	}
	for i, v := range b.Samples() {
		if v != want[i] {
			t.Fatalf("sample[%d]=%v, want %v", i, v, want[i])
		}
	}

	// The padded buffer owns its memory.
	sig[0] = 99
	if b.Samples()[2] != 1 {
		t.Fatal("padded buffer must not alias the source signal")
	}
}

func TestNewPaddedClampsNegativePads(t *testing.T) {
	b := NewPadded([]float64{1}, -4, -1)
	if b.Len() != 1 || b.Samples()[0] != 1 {
		t.Fatalf("samples=%v, want [1]", b.Samples())
	}
}

func TestResizeZeroesStaleData(t *testing.T) {
	b := New(4)
	s := b.Samples()
	for i := range s {
		s[i] = 7
	}

	b.Resize(2)
	b.Resize(4)
	got := b.Samples()
	if got[2] != 0 || got[3] != 0 {
		t.Fatalf("stale data re-exposed: %v", got)
	}
}

func TestZeroRangeClamps(t *testing.T) {
	b := FromSlice([]float64{1, 2, 3})
	b.ZeroRange(-5, 2)
	if got := b.Samples(); got[0] != 0 || got[1] != 0 || got[2] != 3 {
		t.Fatalf("samples=%v", got)
	}
	b.ZeroRange(2, 99)
	if b.Samples()[2] != 0 {
		t.Fatalf("samples=%v", b.Samples())
	}
}

func TestCopyIsIndependent(t *testing.T) {
	b := FromSlice([]float64{1, 2})
	c := b.Copy()
	c.Samples()[0] = 9
	if b.Samples()[0] != 1 {
		t.Fatal("copy must not alias original")
	}
}
