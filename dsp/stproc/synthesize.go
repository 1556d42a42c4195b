package stproc

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-stproc/dsp/window"
)

// OverlapAdd reconstructs a time series from a sequence of frames by
// summing each frame at its hop-offset position, then trimming the
// padding implied by the synthesis-aligned framing convention. Frames
// must be in temporal order and are consumed with the same (wind, hop)
// parameterization used for analysis.
//
// Frames longer than the window (e.g. transform-domain frames) are
// truncated to the leading len(wind) samples; a frame shorter than the
// window fails with ErrShortFrame before any accumulation happens.
// Accumulation order is fixed (frame order, then forward sample order),
// so results are reproducible bit for bit.
//
// Perfect reconstruction of the analyzed signal holds exactly when the
// (window, hop) pair satisfies constant overlap-add at the resolved hop
// size; that property belongs to the caller's parameters and is not
// verified here (see window.VerifyCOLA).
func OverlapAdd(frames [][]float64, wind []float64, hop window.Hop) ([]float64, error) {
	if len(wind) == 0 {
		return nil, ErrEmptyWindow
	}

	hsize, err := hop.Size(wind)
	if err != nil {
		return nil, err
	}

	fsize := len(wind)
	nframe := len(frames)
	if nframe == 0 {
		return nil, nil
	}

	// Validate up front so no partially filled buffer escapes.
	for i, frame := range frames {
		if len(frame) < fsize {
			return nil, fmt.Errorf("%w: frame %d has %d samples, window has %d",
				ErrShortFrame, i, len(frame), fsize)
		}
	}

	// Full overlap-add extent including pad regions. The start offset is
	// the integer form of int(-fsize*(1-hsize/fsize)); computing it in
	// integer arithmetic avoids the truncation hazard of the float form
	// and matches the synthesis-aligned analysis grid exactly.
	ssize := hsize*(nframe-1) + fsize
	sstart := hsize - fsize
	send := ssize + sstart

	out := make([]float64, send)
	ii := sstart
	for _, frame := range frames {
		frame = frame[:fsize]
		switch {
		case ii < 0:
			// Left edge: only the frame's tail overlaps the output.
			addInto(out[:ii+fsize], frame[-ii:])
		case ii+fsize > send:
			// Right edge: only the frame's head fits.
			addInto(out[ii:send], frame[:send-ii])
		default:
			vecmath.AddBlockInPlace(out[ii:ii+fsize], frame)
		}
		ii += hsize
	}

	return out, nil
}

// OverlapAddReader drains a lazy frame sequence into random-access form
// and reconstructs it with [OverlapAdd]. The overlap-add extent depends
// on the total frame count, so the sequence must be finite.
func OverlapAddReader(r *FrameReader, wind []float64, hop window.Hop) ([]float64, error) {
	if r == nil {
		return nil, fmt.Errorf("frame reader must not be nil")
	}
	return OverlapAdd(r.Collect(), wind, hop)
}

func addInto(dst, src []float64) {
	for i, v := range src {
		dst[i] += v
	}
}
