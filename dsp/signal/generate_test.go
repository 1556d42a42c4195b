package signal

import (
	"math"
	"testing"
)

func TestSine(t *testing.T) {
	g := NewGenerator(WithSampleRate(8))

	out, err := g.Sine(1, 1, 8)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 8 {
		t.Fatalf("len=%d, want 8", len(out))
	}
	if out[0] != 0 {
		t.Fatalf("out[0]=%v, want 0", out[0])
	}
	if math.Abs(out[2]-1) > 1e-12 {
		t.Fatalf("out[2]=%v, want 1", out[2])
	}

	if _, err := g.Sine(1, 1, 0); err == nil {
		t.Fatal("expected error for zero samples")
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	a, err := NewGenerator(WithSeed(42)).WhiteNoise(0.5, 64)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewGenerator(WithSeed(42)).WhiteNoise(0.5, 64)
	if err != nil {
		t.Fatal(err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs: %v != %v", i, a[i], b[i])
		}
		if math.Abs(a[i]) > 0.5 {
			t.Fatalf("sample %d out of range: %v", i, a[i])
		}
	}

	if _, err := NewGenerator().WhiteNoise(-1, 8); err == nil {
		t.Fatal("expected error for negative amplitude")
	}
}

func TestImpulse(t *testing.T) {
	out, err := NewGenerator().Impulse(3, 8)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range out {
		want := 0.0
		if i == 3 {
			want = 1
		}
		if v != want {
			t.Fatalf("out[%d]=%v, want %v", i, v, want)
		}
	}

	if _, err := NewGenerator().Impulse(8, 8); err == nil {
		t.Fatal("expected error for offset out of range")
	}
}

func TestRamp(t *testing.T) {
	out, err := NewGenerator().Ramp(3, 4)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0, 1, 2, 3}
	for i, v := range out {
		if math.Abs(v-want[i]) > 1e-12 {
			t.Fatalf("out[%d]=%v, want %v", i, v, want[i])
		}
	}
}

func TestNormalize(t *testing.T) {
	out, err := Normalize([]float64{1, -2, 0.5}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(out[1]+1) > 1e-12 {
		t.Fatalf("out[1]=%v, want -1", out[1])
	}

	zeros, err := Normalize([]float64{0, 0}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if zeros[0] != 0 || zeros[1] != 0 {
		t.Fatalf("zeros=%v", zeros)
	}

	if _, err := Normalize(nil, 1); err == nil {
		t.Fatal("expected error for empty input")
	}
}
