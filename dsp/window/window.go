package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeBlackmanHarris
	TypeFlatTop
	TypeTriangle
	TypeCosine
	TypeWelch
	TypeTukey
	TypeGauss
)

// Cosine-sum coefficient tables, evaluated as sum_k c[k]*cos(k*2*pi*x).
var (
	hannCoeffs           = []float64{0.5, -0.5}
	hammingCoeffs        = []float64{0.54, -0.46}
	blackmanCoeffs       = []float64{0.42, -0.5, 0.08}
	blackmanHarrisCoeffs = []float64{0.35875, -0.48829, 0.14128, -0.01168}
	flatTopCoeffs        = []float64{0.21557895, -0.41663158, 0.277263158, -0.083578947, 0.006947368}
)

var nameByType = map[Type]string{
	TypeRectangular:    "Rectangular",
	TypeHann:           "Hann",
	TypeHamming:        "Hamming",
	TypeBlackman:       "Blackman",
	TypeBlackmanHarris: "Blackman-Harris",
	TypeFlatTop:        "Flat Top",
	TypeTriangle:       "Triangle",
	TypeCosine:         "Cosine",
	TypeWelch:          "Welch",
	TypeTukey:          "Tukey",
	TypeGauss:          "Gauss",
}

// Name returns a human-readable name for a window type.
func Name(t Type) string {
	if n, ok := nameByType[t]; ok {
		return n
	}
	return "Unknown"
}

// Option configures window generation.
type Option func(*config)

type config struct {
	alpha    float64
	periodic bool
}

func defaultConfig() config {
	return config{alpha: 1}
}

// WithAlpha configures the alpha parameter for parametric windows
// (Tukey taper ratio, Gauss width).
func WithAlpha(v float64) Option {
	return func(c *config) {
		if v >= 0 {
			c.alpha = v
		}
	}
}

// WithPeriodic configures the periodic (DFT-even) form instead of the
// symmetric form. Periodic windows are the ones that satisfy
// constant-overlap-add at submultiple hop sizes; see VerifyCOLA.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Generate returns window coefficients of the given length.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, length)
	for i := range out {
		x := samplePosition(i, length, cfg.periodic)
		out[i] = evalWindow(t, x, cfg)
	}

	return out
}

// Hann returns Hann window coefficients.
func Hann(size int, opts ...Option) ([]float64, error) {
	return Generate(TypeHann, size, opts...), validateLength(size)
}

// Hamming returns Hamming window coefficients.
func Hamming(size int, opts ...Option) ([]float64, error) {
	return Generate(TypeHamming, size, opts...), validateLength(size)
}

// Blackman returns Blackman window coefficients.
func Blackman(size int, opts ...Option) ([]float64, error) {
	return Generate(TypeBlackman, size, opts...), validateLength(size)
}

// Tukey returns Tukey window coefficients with taper ratio alpha.
func Tukey(size int, alpha float64, opts ...Option) ([]float64, error) {
	if size <= 0 || alpha < 0 || alpha > 1 {
		return nil, validateTukey(size, alpha)
	}
	return Generate(TypeTukey, size, append(opts, WithAlpha(alpha))...), nil
}

// Gaussian returns Gaussian window coefficients with width parameter alpha.
func Gaussian(size int, alpha float64, opts ...Option) ([]float64, error) {
	if size <= 0 || alpha <= 0 {
		return nil, validateGauss(size, alpha)
	}
	return Generate(TypeGauss, size, append(opts, WithAlpha(alpha))...), nil
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 {
		return
	}

	coeffs := Generate(t, len(buf), opts...)
	if len(coeffs) != len(buf) {
		return
	}

	vecmath.MulBlockInPlace(buf, coeffs)
}

// ApplyCoefficients multiplies samples with coefficients and returns a new slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

// ApplyCoefficientsInPlace multiplies samples with coefficients in place.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

func evalWindow(t Type, x float64, cfg config) float64 {
	if x < 0 {
		x = 0
	}
	if x > 1 {
		x = 1
	}

	switch t {
	case TypeRectangular:
		return 1
	case TypeHann:
		return cosineFromCoeffs(x, hannCoeffs)
	case TypeHamming:
		return cosineFromCoeffs(x, hammingCoeffs)
	case TypeBlackman:
		return cosineFromCoeffs(x, blackmanCoeffs)
	case TypeBlackmanHarris:
		return cosineFromCoeffs(x, blackmanHarrisCoeffs)
	case TypeFlatTop:
		return cosineFromCoeffs(x, flatTopCoeffs)
	case TypeTriangle:
		if x <= 0.5 {
			return 2 * x
		}
		return 2 * (1 - x)
	case TypeCosine:
		return math.Sin(math.Pi * x)
	case TypeWelch:
		d := x - 0.5
		return 1 - 4*d*d
	case TypeTukey:
		return tukeyAt(x, cfg.alpha)
	case TypeGauss:
		v := (2*x - 1) * cfg.alpha
		return math.Exp(-math.Ln2 * v * v)
	default:
		return 1
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

func tukeyAt(x, alpha float64) float64 {
	if alpha <= 0 {
		return 1
	}
	if alpha >= 1 {
		return cosineFromCoeffs(x, hannCoeffs)
	}

	a := alpha / 2
	switch {
	case x < a:
		return 0.5 * (1 + math.Cos(math.Pi*(2*x/alpha-1)))
	case x <= 1-a:
		return 1
	default:
		return 0.5 * (1 + math.Cos(math.Pi*(2*x/alpha-2/alpha+1)))
	}
}

func samplePosition(n, size int, periodic bool) float64 {
	if size <= 1 {
		return 0
	}

	den := float64(size - 1)
	if periodic {
		den = float64(size)
	}

	return float64(n) / den
}
