package buffer

// Buffer wraps a float64 slice with reuse-friendly semantics.
type Buffer struct {
	samples []float64
}

// New returns a zero-filled Buffer of the given length.
func New(length int) *Buffer {
	if length < 0 {
		length = 0
	}
	return &Buffer{samples: make([]float64, length)}
}

// FromSlice wraps an existing slice without copying.
// Mutations to the slice are visible through the Buffer and vice versa.
func FromSlice(s []float64) *Buffer {
	return &Buffer{samples: s}
}

// NewPadded returns a Buffer holding sig extended with left leading and
// right trailing zero samples, built in a single allocation. Negative pad
// counts are treated as zero. The signal itself is copied, so the result
// never aliases sig.
func NewPadded(sig []float64, left, right int) *Buffer {
	if left < 0 {
		left = 0
	}
	if right < 0 {
		right = 0
	}
	s := make([]float64, left+len(sig)+right)
	copy(s[left:], sig)
	return &Buffer{samples: s}
}

// Samples returns the underlying slice.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

// Len returns the current number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Resize sets the length to n, reusing existing capacity when possible.
// Elements beyond the previous length are zeroed, including stale data
// re-exposed from the backing array.
func (b *Buffer) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(b.samples)
	if n <= cap(b.samples) {
		b.samples = b.samples[:n]
	} else {
		s := make([]float64, n)
		copy(s, b.samples)
		b.samples = s
	}
	if n > oldLen {
		b.ZeroRange(oldLen, n)
	}
}

// Zero sets all samples to 0.
func (b *Buffer) Zero() {
	for i := range b.samples {
		b.samples[i] = 0
	}
}

// ZeroRange sets samples in [start, end) to 0.
// Indices are clamped to valid bounds.
func (b *Buffer) ZeroRange(start, end int) {
	if start < 0 {
		start = 0
	}
	if end > len(b.samples) {
		end = len(b.samples)
	}
	for i := start; i < end; i++ {
		b.samples[i] = 0
	}
}

// Copy returns a deep copy of the buffer.
func (b *Buffer) Copy() *Buffer {
	s := make([]float64, len(b.samples))
	copy(s, b.samples)
	return &Buffer{samples: s}
}
