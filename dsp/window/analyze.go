package window

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// spectrumOversample is the zero-padding factor used when evaluating the
// window spectrum. 16x interpolation keeps the numeric searches below
// within a small fraction of a bin.
const spectrumOversample = 16

// Analysis holds numerically computed spectral properties of a window.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// Bandwidth3dB is the 3 dB (half-power) main lobe width in bins.
	Bandwidth3dB float64
	// HighestSidelobedB is the highest sidelobe level relative to DC in dB.
	HighestSidelobedB float64
	// ScallopLossdB is the worst-case amplitude error for an off-bin signal.
	ScallopLossdB float64
}

// Analyze computes spectral properties of the given window coefficients
// from a zero-padded FFT of the window.
func Analyze(coeffs []float64) (Analysis, error) {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}, errEmptyCoeffs
	}

	sum := 0.0
	sumSq := 0.0
	for _, c := range coeffs {
		sum += c
		sumSq += c * c
	}
	if sum == 0 {
		return Analysis{}, fmt.Errorf("window coherent gain is zero")
	}

	magSq, err := spectrumMagSq(coeffs)
	if err != nil {
		return Analysis{}, err
	}

	dcRef := magSq[0]
	if dcRef == 0 {
		return Analysis{}, fmt.Errorf("window spectrum has no DC response")
	}

	// One window bin spans fftSize/n FFT bins.
	binScale := float64(len(magSq)*2) / float64(n)

	scallop := 0.0
	if half := magSqAt(magSq, 0.5*binScale); half > 0 {
		scallop = 10 * math.Log10(half/dcRef)
	}

	return Analysis{
		CoherentGain:      sum / float64(n),
		ENBW:              float64(n) * sumSq / (sum * sum),
		Bandwidth3dB:      searchBandwidth(magSq, dcRef) / binScale * 2,
		HighestSidelobedB: searchHighestSidelobe(magSq, dcRef),
		ScallopLossdB:     scallop,
	}, nil
}

// spectrumMagSq returns |W[k]|^2 over the non-negative frequency half of
// a zero-padded FFT of the window.
func spectrumMagSq(coeffs []float64) ([]float64, error) {
	fftSize := nextPowerOf2(len(coeffs) * spectrumOversample)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("window: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, c := range coeffs {
		in[i] = complex(c, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("window: failed to compute window spectrum: %w", err)
	}

	magSq := make([]float64, fftSize/2)
	for i := range magSq {
		re := real(out[i])
		im := imag(out[i])
		magSq[i] = re*re + im*im
	}
	return magSq, nil
}

// magSqAt linearly interpolates the magnitude-squared spectrum at a
// fractional FFT-bin position.
func magSqAt(magSq []float64, bin float64) float64 {
	if bin <= 0 {
		return magSq[0]
	}
	i := int(bin)
	if i >= len(magSq)-1 {
		return magSq[len(magSq)-1]
	}
	t := bin - float64(i)
	return magSq[i] + t*(magSq[i+1]-magSq[i])
}

// searchBandwidth finds the one-sided half-power point in FFT bins by
// scanning outward from DC and interpolating the 0.5 crossing.
func searchBandwidth(magSq []float64, dcRef float64) float64 {
	half := 0.5 * dcRef
	for i := 1; i < len(magSq); i++ {
		if magSq[i] < half {
			prev := magSq[i-1]
			t := 0.0
			if prev != magSq[i] {
				t = (prev - half) / (prev - magSq[i])
			}
			return float64(i-1) + t
		}
	}
	return float64(len(magSq) - 1)
}

// searchHighestSidelobe finds the peak level past the first spectral
// minimum, in dB relative to DC.
func searchHighestSidelobe(magSq []float64, dcRef float64) float64 {
	// Require descent to 10% of DC before accepting a turn-around, to
	// avoid false minima on the wide plateau of flat-top windows.
	threshold := dcRef * 0.1

	firstMin := -1
	for i := 1; i < len(magSq)-1; i++ {
		if magSq[i] < threshold && magSq[i+1] > magSq[i] {
			firstMin = i
			break
		}
	}
	if firstMin < 0 {
		return math.Inf(-1)
	}

	peak := 0.0
	for _, v := range magSq[firstMin:] {
		if v > peak {
			peak = v
		}
	}
	if peak <= 0 {
		return math.Inf(-1)
	}
	return 10 * math.Log10(peak/dcRef)
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
