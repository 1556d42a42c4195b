package window

import (
	"fmt"
	"math"
)

// Hop specifies the advance between consecutive analysis frames, either
// as a fraction of the window length in the open interval (0,1) or as an
// absolute sample count. The zero value is invalid; use HopFraction or
// HopSamples.
type Hop struct {
	fraction float64
	samples  int
	isFrac   bool
}

// HopFraction returns a hop specification as a fraction of the window
// length. Validation happens in Size, once the window is known.
func HopFraction(f float64) Hop {
	return Hop{fraction: f, isFrac: true}
}

// HopSamples returns a hop specification as an absolute sample count.
func HopSamples(n int) Hop {
	return Hop{samples: n}
}

// Size resolves the hop specification against a window and returns the
// hop size in samples. Fractions are truncated: a fraction f over a
// window of length N yields int(N*f). The result is always >= 1.
func (h Hop) Size(wind []float64) (int, error) {
	if len(wind) == 0 {
		return 0, errEmptyCoeffs
	}

	if h.isFrac {
		if h.fraction <= 0 || h.fraction >= 1 ||
			math.IsNaN(h.fraction) || math.IsInf(h.fraction, 0) {
			return 0, fmt.Errorf("%w: fraction %v", ErrInvalidHop, h.fraction)
		}

		hsize := int(float64(len(wind)) * h.fraction)
		if hsize < 1 {
			return 0, fmt.Errorf("%w: fraction %v of window length %d truncates to 0",
				ErrInvalidHop, h.fraction, len(wind))
		}
		return hsize, nil
	}

	if h.samples < 1 {
		return 0, fmt.Errorf("%w: %d samples", ErrInvalidHop, h.samples)
	}
	return h.samples, nil
}

// HopFromFrameRate converts a frame rate in Hz to a hop size in samples,
// computed as floor(sampleRate/frameRateHz).
func HopFromFrameRate(sampleRate, frameRateHz float64) (int, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, fmt.Errorf("sample rate must be positive and finite: %f", sampleRate)
	}
	if frameRateHz <= 0 || math.IsNaN(frameRateHz) || math.IsInf(frameRateHz, 0) {
		return 0, fmt.Errorf("frame rate must be positive and finite: %f", frameRateHz)
	}

	hsize := int(sampleRate / frameRateHz)
	if hsize < 1 {
		return 0, fmt.Errorf("%w: frame rate %f exceeds sample rate %f",
			ErrInvalidHop, frameRateHz, sampleRate)
	}
	return hsize, nil
}
