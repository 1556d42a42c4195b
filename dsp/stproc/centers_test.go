package stproc

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-stproc/dsp/window"
)

func TestCentersAnalysisGrid(t *testing.T) {
	wind := window.Generate(window.TypeRectangular, 4)

	centers, err := Centers(6, 1, wind, window.HopSamples(2), false)
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{1.5, 3.5, 5.5}
	if len(centers) != len(want) {
		t.Fatalf("len=%d, want %d", len(centers), len(want))
	}
	for i, c := range centers {
		if math.Abs(c-want[i]) > 1e-12 {
			t.Fatalf("center[%d]=%v, want %v", i, c, want[i])
		}
	}
}

func TestCentersSynthesisGrid(t *testing.T) {
	wind := window.Generate(window.TypeRectangular, 4)

	centers, err := Centers(6, 2, wind, window.HopSamples(2), true)
	if err != nil {
		t.Fatal(err)
	}

	// Start is -2, so the first center is (-2+1.5)/2.
	if len(centers) != 4 {
		t.Fatalf("len=%d, want 4", len(centers))
	}
	if math.Abs(centers[0]-(-0.25)) > 1e-12 {
		t.Fatalf("center[0]=%v, want -0.25", centers[0])
	}
}

func TestCentersMatchesFrameCount(t *testing.T) {
	wind := window.Generate(window.TypeHann, 8, window.WithPeriodic())

	for _, signalLen := range []int{0, 1, 7, 8, 13, 64} {
		centers, err := Centers(signalLen, 16000, wind, window.HopFraction(0.5), true)
		if err != nil {
			t.Fatal(err)
		}
		n, err := NumFrames(signalLen, wind, window.HopFraction(0.5), true)
		if err != nil {
			t.Fatal(err)
		}
		if len(centers) != n {
			t.Fatalf("signalLen=%d: %d centers, %d frames", signalLen, len(centers), n)
		}
	}
}

func TestCentersValidation(t *testing.T) {
	wind := window.Generate(window.TypeRectangular, 4)

	if _, err := Centers(6, 0, wind, window.HopSamples(2), false); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
	if _, err := Centers(6, 1, nil, window.HopSamples(2), false); err == nil {
		t.Fatal("expected error for empty window")
	}
	if _, err := Centers(6, 1, wind, window.HopSamples(0), false); err == nil {
		t.Fatal("expected error for invalid hop")
	}
}
