// Package mathfuncs is a registry of named shape functions y=f(t,A,T), used
// as trend components and as the amplitude function of variable-amplitude
// waveforms.
package mathfuncs

import (
	"math"
	"sort"

	"github.com/synaptecltd/tsgen/configerr"
	"github.com/stevenblair/sigourney/fast"
)

// A shape function y=f(t,A,T). Takes amplitude, A, and period or time
// constant, T, and returns the value of the function at position t.
type MathsFunction func(t, A, T float64) float64

var mathsFunctions = map[string]MathsFunction{
	"linear":                 linearRamp,
	"sine":                   sineWave,
	"cosine":                 cosineWave,
	"exponential":            exponentialRamp,
	"exponential_full":       exponentialRampSaturated,
	"exponential_decay":      exponentialDecay,
	"exponential_decay_full": exponentialDecaySaturated,
	"parabolic":              parabolicRamp,
	"step":                   stepFunction,
	"Lstep":                  lStepFunction,
	"square":                 squareWave,
	"sawtooth":               sawtoothWave,
	"impulse":                impulseTrain,
	"flat":                   flat,
	"warmup_sine":            warmupSine,
}

// GetFunctionNames returns the registered names in sorted order.
func GetFunctionNames() []string {
	names := make([]string, 0, len(mathsFunctions))
	for name := range mathsFunctions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetFunctionFromName returns the named shape function.
func GetFunctionFromName(name string) (MathsFunction, error) {
	fn, ok := mathsFunctions[name]
	if !ok {
		return nil, configerr.Errorf("shape function %q not found", name)
	}
	return fn, nil
}

// Bind fixes the amplitude and period of the named shape, leaving a function
// of position only.
func Bind(name string, A, T float64) (func(float64) float64, error) {
	fn, err := GetFunctionFromName(name)
	if err != nil {
		return nil, err
	}
	return func(t float64) float64 { return fn(t, A, T) }, nil
}

// y=(A/T)*t
func linearRamp(t, A, T float64) float64 {
	return A / T * t
}

// y=A*sin(2*pi*t/T)
func sineWave(t, A, T float64) float64 {
	return A * math.Sin(2*math.Pi*t/T)
}

// y=A*cos(2*pi*t/T)
func cosineWave(t, A, T float64) float64 {
	return A * fast.Cos(2*math.Pi*t/T)
}

// y=A*exp(t/T)-A
func exponentialRamp(t, A, T float64) float64 {
	return A*math.Exp(t/T) - A
}

// y=A*exp(5*t/T)-A, reaching roughly 150*A at t=T
func exponentialRampSaturated(t, A, T float64) float64 {
	return A*math.Exp(5*t/T) - A
}

// y=A*exp(-t/T)
func exponentialDecay(t, A, T float64) float64 {
	return A * math.Exp(-t/T)
}

// y=A*(1-exp(-t/T))
func exponentialDecaySaturated(t, A, T float64) float64 {
	return A * (1 - math.Exp(-t/T))
}

// y=A*(t/T)^2
func parabolicRamp(t, A, T float64) float64 {
	r := t / T
	return A * r * r
}

// Zero for the first half of every period T, A for the second.
func stepFunction(t, A, T float64) float64 {
	if math.Mod(t, T) < T/2 {
		return 0
	}
	return A
}

// A single downward step of size A at t=0 that stays flat afterwards.
func lStepFunction(t, A, _ float64) float64 {
	if t >= 0 {
		return -A
	}
	return 0
}

// A while sin(2*pi*t/T) is non-negative, else -A.
func squareWave(t, A, T float64) float64 {
	if fast.Sin(2*math.Pi*t/T) >= 0 {
		return A
	}
	return -A
}

// y=(2*A/pi)*atan(tan(pi*t/T))
func sawtoothWave(t, A, T float64) float64 {
	return (2 * A / math.Pi) * math.Atan(math.Tan(math.Pi*t/T))
}

// A spike of height A at the start of every period T, 1e-6 wide.
func impulseTrain(t, A, T float64) float64 {
	const spikeWidth = 1e-6
	if math.Mod(t, T) < spikeWidth {
		return A
	}
	return 0
}

func flat(_, A, _ float64) float64 {
	return A
}

// A sine of period T with a third harmonic at half amplitude on top.
func warmupSine(t, A, T float64) float64 {
	return A*math.Sin(2*math.Pi*t/T) + 0.5*A*math.Sin(6*math.Pi*t/T)
}
