package waveform

import (
	"math"
	"sort"

	"github.com/synaptecltd/tsgen/configerr"
)

// Params holds named waveform parameters for registry calls.
type Params map[string]ParamSpec

// Func is a catalog waveform called by name with named parameters.
// Missing parameters take the catalog defaults.
type Func func(time []float64, params Params, opts ...Option) ([]float64, error)

type entry struct {
	defaults Params
	call     func(time []float64, p Params, opts []Option) ([]float64, error)
}

// catalog maps waveform names to their parameter defaults and entry points.
var catalog = map[string]entry{
	"trigonometric_row_1": {
		defaults: Params{"a": Scalar(1), "b": Scalar(1), "c": Scalar(0), "d": Scalar(1)},
		call: func(time []float64, p Params, opts []Option) ([]float64, error) {
			v, err := p.scalars("trigonometric_row_1", "a", "b", "c", "d")
			if err != nil {
				return nil, err
			}
			return TrigonometricRow1(time, v[0], v[1], v[2], v[3], opts...)
		},
	},
	"trigonometric_row_2": {
		defaults: Params{"a0": Scalar(0), "a": Vector(1), "b": Vector(1), "alpha": Scalar(1), "delta": Scalar(1)},
		call: func(time []float64, p Params, opts []Option) ([]float64, error) {
			v, err := p.scalars("trigonometric_row_2", "a0", "alpha", "delta")
			if err != nil {
				return nil, err
			}
			return TrigonometricRow2(time, v[0], p["a"], p["b"], v[1], v[2], opts...)
		},
	},
	"frequency_function_sin": {
		defaults: Params{"a0": Scalar(1), "a": Vector(1), "alpha": Vector(1)},
		call: func(time []float64, p Params, opts []Option) ([]float64, error) {
			v, err := p.scalars("frequency_function_sin", "a0")
			if err != nil {
				return nil, err
			}
			return FrequencySin(time, v[0], p["a"], p["alpha"], opts...)
		},
	},
	"frequency_function_cos": {
		defaults: Params{"a0": Scalar(1), "a": Vector(1), "alpha": Vector(1)},
		call: func(time []float64, p Params, opts []Option) ([]float64, error) {
			v, err := p.scalars("frequency_function_cos", "a0")
			if err != nil {
				return nil, err
			}
			return FrequencyCos(time, v[0], p["a"], p["alpha"], opts...)
		},
	},
	"variable_amplitude": {
		defaults: Params{"b": Scalar(1), "c": Scalar(1)},
		call: func(time []float64, p Params, opts []Option) ([]float64, error) {
			v, err := p.scalars("variable_amplitude", "b", "c")
			if err != nil {
				return nil, err
			}
			f := applyOptions(opts).amplitude
			if f == nil {
				f = func(x float64) float64 { return x }
			}
			return VariableAmplitude(time, f, v[0], v[1], opts...)
		},
	},
	"furier_row": {
		defaults: Params{"c": Vector(1), "lamb": Vector(1)},
		call: func(time []float64, p Params, opts []Option) ([]float64, error) {
			return FourierRow(time, p["c"], p["lamb"], opts...)
		},
	},
	"moduling_signal": {
		defaults: Params{"a0": Scalar(1), "f": Scalar(1)},
		call: func(time []float64, p Params, opts []Option) ([]float64, error) {
			v, err := p.scalars("moduling_signal", "a0", "f")
			if err != nil {
				return nil, err
			}
			return ModulatingSignal(time, v[0], v[1], opts...)
		},
	},
	"moduling_signal2": {
		defaults: Params{"alpha": Scalar(1), "beta": Scalar(1)},
		call: func(time []float64, p Params, opts []Option) ([]float64, error) {
			v, err := p.scalars("moduling_signal2", "alpha", "beta")
			if err != nil {
				return nil, err
			}
			return ModulatingSignal2(time, v[0], v[1], opts...)
		},
	},
	"weierstrass": {
		defaults: Params{"alpha": Scalar(1), "beta": Scalar(1)},
		call: func(time []float64, p Params, opts []Option) ([]float64, error) {
			if _, ok := p["N"]; !ok {
				return nil, configerr.Errorf("weierstrass: parameter N is required")
			}
			v, err := p.scalars("weierstrass", "N", "alpha", "beta")
			if err != nil {
				return nil, err
			}
			if v[0] != math.Trunc(v[0]) {
				return nil, configerr.Errorf("weierstrass: N must be an integer, got %v", v[0])
			}
			return Weierstrass(time, int(v[0]), v[1], v[2], opts...)
		},
	},
	"LFM": {
		defaults: Params{"a0": Scalar(0), "phi0": Scalar(0), "f0": Scalar(1), "b": Scalar(2)},
		call: func(time []float64, p Params, opts []Option) ([]float64, error) {
			v, err := p.scalars("LFM", "a0", "phi0", "f0", "b")
			if err != nil {
				return nil, err
			}
			return LFM(time, v[0], v[1], v[2], v[3], opts...)
		},
	},
}

// Names returns the catalog waveform names in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named catalog waveform. Unknown parameter names passed
// to the returned Func are rejected.
func Lookup(name string) (Func, error) {
	e, ok := catalog[name]
	if !ok {
		return nil, configerr.Errorf("unknown waveform %q", name)
	}

	return func(time []float64, params Params, opts ...Option) ([]float64, error) {
		merged := make(Params, len(e.defaults)+len(params))
		for k, v := range e.defaults {
			merged[k] = v
		}
		for k, v := range params {
			if _, known := e.defaults[k]; !known && !(name == "weierstrass" && k == "N") {
				return nil, configerr.Errorf("%s: unknown parameter %q", name, k)
			}
			merged[k] = v
		}
		return e.call(time, merged, opts)
	}, nil
}

// scalars returns the named parameters, each of which must be a scalar.
func (p Params) scalars(op string, names ...string) ([]float64, error) {
	out := make([]float64, len(names))
	for i, name := range names {
		spec := p[name]
		if !spec.IsScalar() || spec.Len() != 1 {
			return nil, configerr.Errorf("%s: parameter %s must be a scalar, got %v", op, name, spec)
		}
		out[i] = spec.At(0)
	}
	return out, nil
}
