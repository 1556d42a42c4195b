package stproc

import (
	"fmt"

	"github.com/cwbudde/algo-stproc/dsp/window"
)

// Centers returns the time in seconds of each frame's center sample for
// a signal of signalLen samples framed with wind and hop. The center of
// frame i is (start + i*hop + (len(wind)-1)/2) / sampleRate.
//
// The synth flag selects the synthesis-aligned grid, as in [Analyze].
// Centers is metadata only; nothing in the analysis/synthesis data path
// consumes it.
func Centers(signalLen int, sampleRate float64, wind []float64, hop window.Hop, synth bool) ([]float64, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be > 0: %f", sampleRate)
	}

	g, err := resolveGeometry(signalLen, wind, hop, synth)
	if err != nil {
		return nil, err
	}

	out := make([]float64, g.NumFrames)
	half := float64(g.FrameSize-1) / 2
	for i := range out {
		out[i] = (float64(g.FrameStart(i)) + half) / sampleRate
	}
	return out, nil
}

// NumFrames returns the number of frames [Analyze] produces for a
// signal of signalLen samples. Use it to pre-size per-frame pipelines.
func NumFrames(signalLen int, wind []float64, hop window.Hop, synth bool) (int, error) {
	g, err := resolveGeometry(signalLen, wind, hop, synth)
	if err != nil {
		return 0, err
	}
	return g.NumFrames, nil
}

// resolveGeometry resolves the hop specification against wind and
// computes the framing grid.
func resolveGeometry(signalLen int, wind []float64, hop window.Hop, synth bool) (Geometry, error) {
	if len(wind) == 0 {
		return Geometry{}, ErrEmptyWindow
	}

	hsize, err := hop.Size(wind)
	if err != nil {
		return Geometry{}, err
	}

	return NewGeometry(signalLen, len(wind), hsize, synth)
}
