package window

import "testing"

func TestVerifyCOLAPeriodicHann(t *testing.T) {
	w := Generate(TypeHann, 8, WithPeriodic())

	level, err := VerifyCOLA(w, 4)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(level, 1, 1e-12) {
		t.Fatalf("level=%v, want 1", level)
	}

	// Denser overlap doubles the level.
	level, err = VerifyCOLA(w, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(level, 2, 1e-12) {
		t.Fatalf("level=%v, want 2", level)
	}
}

func TestVerifyCOLATriangle(t *testing.T) {
	w := []float64{0, 0.25, 0.5, 0.75, 1, 0.75, 0.5, 0.25}

	level, err := VerifyCOLA(w, 4)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(level, 1, 1e-12) {
		t.Fatalf("level=%v, want 1", level)
	}
}

func TestVerifyCOLARejectsNonCOLAPairs(t *testing.T) {
	// Symmetric Hann misses the property its periodic form has.
	if _, err := VerifyCOLA(Generate(TypeHann, 8), 4); err == nil {
		t.Fatal("expected symmetric Hann at hop 4 to fail")
	}

	// Shifted sums alternate 1, 0.8, 0.8, 1.
	w := []float64{0, 0.2, 0.6, 1, 1, 0.6, 0.2, 0}
	if _, err := VerifyCOLA(w, 4); err == nil {
		t.Fatal("expected non-COLA window to fail")
	}
}

func TestVerifyCOLARectangularGapless(t *testing.T) {
	w := Generate(TypeRectangular, 8)

	level, err := VerifyCOLA(w, 8)
	if err != nil {
		t.Fatal(err)
	}
	if level != 1 {
		t.Fatalf("level=%v, want 1", level)
	}

	// Gapped framing leaves uncovered samples.
	if _, err := VerifyCOLA(w, 12); err == nil {
		t.Fatal("expected gapped rectangular framing to fail")
	}
}

func TestVerifyCOLAValidation(t *testing.T) {
	if _, err := VerifyCOLA(nil, 4); err == nil {
		t.Fatal("expected error for empty window")
	}
	if _, err := VerifyCOLA([]float64{1}, 0); err == nil {
		t.Fatal("expected error for non-positive hop")
	}
}
