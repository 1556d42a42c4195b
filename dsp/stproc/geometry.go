package stproc

// Geometry describes a framing grid: where frames start relative to the
// signal, how many there are, and how much zero padding boundary frames
// need. It is a pure function of its inputs and is never mutated after
// construction.
type Geometry struct {
	// Start is the sample offset of the first frame's start in
	// original-signal coordinates. 0 on the analysis grid; HopSize -
	// FrameSize on the synthesis-aligned grid, which is negative for
	// overlapping hops.
	Start int
	// End is the signal length.
	End int
	// HopSize is the sample advance between consecutive frame starts.
	HopSize int
	// FrameSize is the frame (window) length.
	FrameSize int
	// NumFrames is ceil((End-Start)/HopSize), clamped at 0.
	NumFrames int
	// PadLeft and PadRight are the zero-pad sample counts required so
	// that every frame lies within the padded signal.
	PadLeft  int
	PadRight int
}

// NewGeometry computes the framing grid for a signal of signalLen
// samples framed with frameSize-sample windows advancing by hopSize.
// With synth set, the grid is synthesis-aligned: the first frame starts
// at hopSize-frameSize so that overlap-add of the resulting frames
// covers sample 0 with the full window overlap.
//
// A zero signalLen is legal and yields zero frames on the analysis
// grid. On the synthesis-aligned grid it still yields the frames needed
// to cover the (empty) signal's left padding, matching the overlap-add
// convention.
func NewGeometry(signalLen, frameSize, hopSize int, synth bool) (Geometry, error) {
	if frameSize <= 0 {
		return Geometry{}, ErrEmptyWindow
	}
	if hopSize <= 0 {
		return Geometry{}, ErrNonPositiveHop
	}
	if err := validateSignalLen(signalLen); err != nil {
		return Geometry{}, err
	}

	start := 0
	if synth {
		start = hopSize - frameSize
	}

	g := Geometry{
		Start:     start,
		End:       signalLen,
		HopSize:   hopSize,
		FrameSize: frameSize,
	}

	if signalLen > start {
		g.NumFrames = ceilDiv(signalLen-start, hopSize)
	}
	if start < 0 {
		g.PadLeft = -start
	}
	if g.NumFrames > 0 {
		// Trailing zeros so the last frame fits. Equals
		// (NumFrames-1)*HopSize + FrameSize - PadLeft - End whenever
		// Start <= 0; for gapped synthesis-aligned grids (positive
		// Start) the last frame's actual extent is authoritative.
		if pr := g.FrameStart(g.NumFrames-1) + frameSize - signalLen; pr > 0 {
			g.PadRight = pr
		}
	}

	return g, nil
}

// FrameStart returns the start offset of frame i in original-signal
// coordinates; negative offsets fall into the left padding.
func (g Geometry) FrameStart(i int) int {
	return g.Start + i*g.HopSize
}

// PaddedLen returns the working-buffer length covering the signal and
// both padding regions.
func (g Geometry) PaddedLen() int {
	return g.PadLeft + g.End + g.PadRight
}

// ceilDiv returns ceil(a/b) for a > 0, b > 0.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
