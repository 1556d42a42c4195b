package window

import (
	"fmt"
	"math"
)

// colaTolerance is the maximum relative deviation between shifted-window
// sums still considered constant. Analytic COLA pairs deviate only by
// floating-point rounding; anything past this is a genuinely non-COLA
// pair.
const colaTolerance = 1e-8

// VerifyCOLA checks the constant-overlap-add property of a (window, hop)
// pair: summing copies of the window shifted by multiples of hopSize must
// yield the same value at every sample position. On success it returns
// that constant level. On failure it returns an error describing the
// worst deviation.
//
// A window satisfying COLA at a given hop size makes overlap-add
// synthesis reconstruct the analyzed signal exactly, scaled by the
// returned level.
func VerifyCOLA(coeffs []float64, hopSize int) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}
	if hopSize <= 0 {
		return 0, fmt.Errorf("%w: %d samples", ErrInvalidHop, hopSize)
	}

	// The shifted sum is periodic with period hopSize, so one period of
	// residue sums covers every sample position.
	sums := make([]float64, hopSize)
	for i, c := range coeffs {
		sums[i%hopSize] += c
	}

	// Positions past the window end contribute nothing; with gapped
	// framing (hopSize > window length) those residues stay zero and the
	// check fails unless the window is zero too.
	level := 0.0
	for _, s := range sums {
		level += s
	}
	level /= float64(hopSize)

	worst := 0.0
	for _, s := range sums {
		if d := math.Abs(s - level); d > worst {
			worst = d
		}
	}

	scale := math.Max(math.Abs(level), 1)
	if worst/scale > colaTolerance {
		return 0, fmt.Errorf("window does not satisfy constant overlap-add at hop %d: level %g, worst deviation %g",
			hopSize, level, worst)
	}

	return level, nil
}
