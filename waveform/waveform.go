package waveform

import (
	"math"
	"math/cmplx"

	"github.com/synaptecltd/tsgen/configerr"
)

// Option configures a waveform call.
type Option func(*options)

type options struct {
	asInt     bool
	amplitude func(float64) float64
}

// AsInt truncates every output sample toward zero.
func AsInt() Option {
	return func(o *options) { o.asInt = true }
}

// WithAmplitude sets the amplitude function used by variable_amplitude when
// it is called through the registry.
func WithAmplitude(f func(float64) float64) Option {
	return func(o *options) { o.amplitude = f }
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// sampler maps a sample position to a waveform value.
type sampler func(x float64) float64

// generate is the validation wrapper shared by every waveform: it rejects an
// empty grid, lets build check the parameters, then samples every position.
// Nothing is evaluated if either check fails.
func generate(op string, time []float64, opts []Option, build func() (sampler, error)) ([]float64, error) {
	if len(time) < 1 {
		return nil, configerr.Errorf("%s: time grid must not be empty", op)
	}
	f, err := build()
	if err != nil {
		return nil, err
	}

	o := applyOptions(opts)
	y := make([]float64, len(time))
	for i, x := range time {
		y[i] = f(x)
		if o.asInt {
			y[i] = math.Trunc(y[i])
		}
	}
	return y, nil
}

// TrigonometricRow1 returns a*|sin(b*x+c)|^d * sign(sin(b*x+c)).
func TrigonometricRow1(time []float64, a, b, c, d float64, opts ...Option) ([]float64, error) {
	return generate("trigonometric_row_1", time, opts, func() (sampler, error) {
		return func(x float64) float64 {
			s := math.Sin(b*x + c)
			return a * math.Pow(math.Abs(s), d) * sign(s)
		}, nil
	})
}

// TrigonometricRow2 returns
// a0 + sum a[i]*cos(alpha*k*x^delta) + b[j]*sin(alpha*k*x^delta)
// over the terms resolved from a and b, k being the harmonic index.
func TrigonometricRow2(time []float64, a0 float64, a, b ParamSpec, alpha, delta float64, opts ...Option) ([]float64, error) {
	const op = "trigonometric_row_2"
	return generate(op, time, opts, func() (sampler, error) {
		terms, err := resolvePair(op, "a", a, "b", b)
		if err != nil {
			return nil, err
		}
		return func(x float64) float64 {
			xd := math.Pow(x, delta)
			season := 0.0
			for _, tm := range terms {
				arg := alpha * float64(tm.harmonic) * xd
				season += a.At(tm.i)*math.Cos(arg) + b.At(tm.j)*math.Sin(arg)
			}
			return a0 + season
		}, nil
	})
}

// FrequencySin returns a0 + sum a[i]*sin(alpha[j]*x).
func FrequencySin(time []float64, a0 float64, a, alpha ParamSpec, opts ...Option) ([]float64, error) {
	return frequencyFunction("frequency_function_sin", math.Sin, time, a0, a, alpha, opts)
}

// FrequencyCos returns a0 + sum a[i]*cos(alpha[j]*x).
func FrequencyCos(time []float64, a0 float64, a, alpha ParamSpec, opts ...Option) ([]float64, error) {
	return frequencyFunction("frequency_function_cos", math.Cos, time, a0, a, alpha, opts)
}

func frequencyFunction(op string, fn func(float64) float64, time []float64, a0 float64, a, alpha ParamSpec, opts []Option) ([]float64, error) {
	return generate(op, time, opts, func() (sampler, error) {
		terms, err := resolvePair(op, "a", a, "alpha", alpha)
		if err != nil {
			return nil, err
		}
		return func(x float64) float64 {
			season := 0.0
			for _, tm := range terms {
				season += a.At(tm.i) * fn(alpha.At(tm.j)*x)
			}
			return a0 + season
		}, nil
	})
}

// VariableAmplitude returns f(x)*sin(b*x+c).
func VariableAmplitude(time []float64, f func(float64) float64, b, c float64, opts ...Option) ([]float64, error) {
	const op = "variable_amplitude"
	return generate(op, time, opts, func() (sampler, error) {
		if f == nil {
			return nil, configerr.Errorf("%s: amplitude function is required", op)
		}
		return func(x float64) float64 {
			return f(x) * math.Sin(b*x+c)
		}, nil
	})
}

// FourierRow returns |sum c[i]*exp(j*x*lamb[k])|, the magnitude of a
// generalised complex Fourier series.
func FourierRow(time []float64, c, lamb ParamSpec, opts ...Option) ([]float64, error) {
	const op = "furier_row"
	return generate(op, time, opts, func() (sampler, error) {
		terms, err := resolvePair(op, "c", c, "lamb", lamb)
		if err != nil {
			return nil, err
		}
		return func(x float64) float64 {
			var sum complex128
			for _, tm := range terms {
				sum += complex(c.At(tm.i), 0) * cmplx.Exp(complex(0, x*lamb.At(tm.j)))
			}
			return cmplx.Abs(sum)
		}, nil
	})
}

// ModulatingSignal returns (a0+sin(f*x))*sin(x).
func ModulatingSignal(time []float64, a0, f float64, opts ...Option) ([]float64, error) {
	return generate("moduling_signal", time, opts, func() (sampler, error) {
		return func(x float64) float64 {
			return (a0 + math.Sin(f*x)) * math.Sin(x)
		}, nil
	})
}

// ModulatingSignal2 returns sin(alpha*x)*cos(beta*x).
func ModulatingSignal2(time []float64, alpha, beta float64, opts ...Option) ([]float64, error) {
	return generate("moduling_signal2", time, opts, func() (sampler, error) {
		return func(x float64) float64 {
			return math.Sin(alpha*x) * math.Cos(beta*x)
		}, nil
	})
}

// Weierstrass returns the partial Weierstrass sum
// sum_{i=1..n} alpha^i * cos(beta^i * pi * x). n <= 0 gives zeros.
func Weierstrass(time []float64, n int, alpha, beta float64, opts ...Option) ([]float64, error) {
	return generate("weierstrass", time, opts, func() (sampler, error) {
		return func(x float64) float64 {
			sum := 0.0
			for i := 1; i <= n; i++ {
				fi := float64(i)
				sum += math.Pow(alpha, fi) * math.Cos(math.Pow(beta, fi)*math.Pi*x)
			}
			return sum
		}, nil
	})
}

// LFM returns a linear frequency modulated chirp
// a0*cos(phi0 + 2*pi*(f0*x + (b/2)*x^2)), x^2 being the true square.
func LFM(time []float64, a0, phi0, f0, b float64, opts ...Option) ([]float64, error) {
	return generate("LFM", time, opts, func() (sampler, error) {
		return func(x float64) float64 {
			return a0 * math.Cos(phi0+2*math.Pi*(f0*x+(b/2)*x*x))
		}, nil
	})
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
