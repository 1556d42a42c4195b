package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// Generator creates deterministic test signals.
type Generator struct {
	sampleRate float64
	seed       int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSampleRate sets the generator sample rate.
func WithSampleRate(sampleRate float64) Option {
	return func(g *Generator) {
		if sampleRate > 0 {
			g.sampleRate = sampleRate
		}
	}
}

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
// Defaults: 48 kHz sample rate, seed 1.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		sampleRate: 48000,
		seed:       1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// SampleRate returns the generator sample rate.
func (g *Generator) SampleRate() float64 {
	return g.sampleRate
}

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Impulse generates a unit impulse at the given sample offset.
func (g *Generator) Impulse(offset, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("impulse samples must be > 0: %d", samples)
	}
	if offset < 0 || offset >= samples {
		return nil, fmt.Errorf("impulse offset out of range: %d not in [0,%d)", offset, samples)
	}
	out := make([]float64, samples)
	out[offset] = 1
	return out, nil
}

// Ramp generates a linear ramp from 0 to amplitude over the given length.
func (g *Generator) Ramp(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("ramp samples must be > 0: %d", samples)
	}
	out := make([]float64, samples)
	if samples == 1 {
		out[0] = amplitude
		return out, nil
	}
	step := amplitude / float64(samples-1)
	for i := range out {
		out[i] = step * float64(i)
	}
	return out, nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		av := math.Abs(v)
		if av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}
