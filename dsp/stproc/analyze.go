package stproc

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-stproc/dsp/buffer"
	"github.com/cwbudde/algo-stproc/dsp/core"
	"github.com/cwbudde/algo-stproc/dsp/window"
)

// padPool reuses padded working buffers across Analyze calls. Safe
// because every frame Analyze returns is an independent copy.
var padPool = buffer.NewPool()

// Analyze slices sig into overlapping frames of len(wind) samples
// advancing by the resolved hop size, multiplies each frame
// element-wise with wind, and returns the frames in temporal order.
//
// Boundary frames extending past the signal are completed with zeros;
// the whole padded signal is materialized once and shared across frame
// extraction. Every returned frame is an independent copy, safe for
// downstream mutation. A zero-length signal yields zero frames without
// error, and a window longer than the signal yields padded frames.
func Analyze(sig, wind []float64, hop window.Hop, synth bool) ([][]float64, error) {
	g, err := resolveGeometry(len(sig), wind, hop, synth)
	if err != nil {
		return nil, err
	}

	padded := sig
	var scratch *buffer.Buffer
	if g.PadLeft > 0 || g.PadRight > 0 {
		scratch = padPool.Get(g.PaddedLen())
		core.CopyInto(scratch.Samples()[g.PadLeft:g.PadLeft+g.End], sig)
		padded = scratch.Samples()
	}

	frames := make([][]float64, g.NumFrames)
	for i := range frames {
		off := g.FrameStart(i) + g.PadLeft
		frame := make([]float64, g.FrameSize)
		vecmath.MulBlock(frame, padded[off:off+g.FrameSize], wind)
		frames[i] = frame
	}

	if scratch != nil {
		padPool.Put(scratch)
	}
	return frames, nil
}

// ReaderOption configures a FrameReader.
type ReaderOption func(*readerConfig)

type readerConfig struct {
	reuseFrame bool
}

// WithFrameReuse makes the reader yield every frame in one reused
// internal buffer instead of allocating a copy per frame. The yielded
// slice is only valid until the next call to Next and must be treated
// as read-only.
func WithFrameReuse() ReaderOption {
	return func(c *readerConfig) {
		c.reuseFrame = true
	}
}

// FrameReader produces windowed frames one at a time, strictly forward.
// It is the lazy counterpart of [Analyze] for streaming consumers; the
// total frame count is known up front via Len. Abandoning a reader
// early needs no cleanup.
//
// The reader references sig and wind for its lifetime; callers must not
// mutate either while iterating.
type FrameReader struct {
	geo     Geometry
	wind    []float64
	padded  []float64
	next    int
	reuse   bool
	scratch []float64
}

// NewFrameReader returns a FrameReader over sig with the same framing
// semantics as [Analyze].
func NewFrameReader(sig, wind []float64, hop window.Hop, synth bool, opts ...ReaderOption) (*FrameReader, error) {
	var cfg readerConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	g, err := resolveGeometry(len(sig), wind, hop, synth)
	if err != nil {
		return nil, err
	}

	// One shared zero-padded working buffer; frames are strided views
	// into it before windowing. Without padding the signal is used
	// directly, which is safe because windowing writes into fresh
	// memory.
	padded := sig
	if g.PadLeft > 0 || g.PadRight > 0 {
		padded = buffer.NewPadded(sig, g.PadLeft, g.PadRight).Samples()
	}

	r := &FrameReader{
		geo:    g,
		wind:   wind,
		padded: padded,
		reuse:  cfg.reuseFrame,
	}
	if r.reuse {
		r.scratch = make([]float64, g.FrameSize)
	}
	return r, nil
}

// Len returns the total number of frames the reader produces.
func (r *FrameReader) Len() int {
	return r.geo.NumFrames
}

// Geometry returns the framing grid in use.
func (r *FrameReader) Geometry() Geometry {
	return r.geo
}

// Next returns the next windowed frame and true, or nil and false once
// the sequence is exhausted.
func (r *FrameReader) Next() ([]float64, bool) {
	if r.next >= r.geo.NumFrames {
		return nil, false
	}

	// Padded-buffer offset; identical to next*HopSize whenever the grid
	// start is non-positive.
	off := r.geo.FrameStart(r.next) + r.geo.PadLeft
	r.next++

	frame := r.scratch
	if !r.reuse {
		frame = make([]float64, r.geo.FrameSize)
	}
	vecmath.MulBlock(frame, r.padded[off:off+r.geo.FrameSize], r.wind)
	return frame, true
}

// Collect drains the remaining frames into a slice. Frames are
// independent copies even when the reader was created with
// WithFrameReuse.
func (r *FrameReader) Collect() [][]float64 {
	out := make([][]float64, 0, r.geo.NumFrames-r.next)
	for {
		frame, ok := r.Next()
		if !ok {
			return out
		}
		if r.reuse {
			frame = append([]float64(nil), frame...)
		}
		out = append(out, frame)
	}
}
