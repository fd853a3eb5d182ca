package waveform

import (
	"fmt"

	"github.com/synaptecltd/tsgen/configerr"
)

// ParamSpec is a waveform parameter that is either a single scalar or an
// ordered vector of scalars.
type ParamSpec struct {
	values []float64
	vector bool
}

// Scalar returns a scalar ParamSpec.
func Scalar(v float64) ParamSpec {
	return ParamSpec{values: []float64{v}}
}

// Vector returns a vector ParamSpec holding a copy of vs.
func Vector(vs ...float64) ParamSpec {
	return ParamSpec{values: append([]float64{}, vs...), vector: true}
}

// IsScalar reports whether p was built with Scalar.
func (p ParamSpec) IsScalar() bool { return !p.vector }

// Len returns the number of values; a scalar has length 1.
func (p ParamSpec) Len() int { return len(p.values) }

// At returns the i-th value.
func (p ParamSpec) At(i int) float64 { return p.values[i] }

// Values returns a copy of the values.
func (p ParamSpec) Values() []float64 { return append([]float64{}, p.values...) }

func (p ParamSpec) String() string {
	if p.IsScalar() && len(p.values) == 1 {
		return fmt.Sprint(p.values[0])
	}
	return fmt.Sprint(p.values)
}

// UnmarshalYAML accepts either a number or a sequence of numbers.
func (p *ParamSpec) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var scalar float64
	if err := unmarshal(&scalar); err == nil {
		*p = Scalar(scalar)
		return nil
	}

	var vector []float64
	if err := unmarshal(&vector); err != nil {
		return configerr.Errorf("parameter must be a number or a list of numbers")
	}
	*p = Vector(vector...)
	return nil
}

// ParseParamSpec converts a decoded configuration value, a number or a list of
// numbers, into a ParamSpec.
func ParseParamSpec(v any) (ParamSpec, error) {
	if f, ok := toFloat(v); ok {
		return Scalar(f), nil
	}
	list, ok := v.([]interface{})
	if !ok {
		return ParamSpec{}, configerr.Errorf("parameter must be a number or a list of numbers, got %T", v)
	}
	vs := make([]float64, len(list))
	for i, item := range list {
		f, ok := toFloat(item)
		if !ok {
			return ParamSpec{}, configerr.Errorf("parameter element %d must be a number, got %T", i, item)
		}
		vs[i] = f
	}
	return Vector(vs...), nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// term pairs the i-th value of the first vector with the j-th value of the
// second at the given harmonic index.
type term struct {
	i, j     int
	harmonic int
}

// resolvePair decides how two ParamSpecs combine. A scalar counts as a vector
// of length one.
//  1. either length is 1: full cross product, harmonic max(i,j)+1;
//  2. equal lengths: element-wise pairing, harmonic i+1;
//  3. otherwise the pair is a configuration error.
func resolvePair(op string, aName string, a ParamSpec, bName string, b ParamSpec) ([]term, error) {
	la, lb := a.Len(), b.Len()
	if la == 0 || lb == 0 {
		return nil, configerr.Errorf("%s: %s and %s must not be empty", op, aName, bName)
	}

	switch {
	case la == 1 || lb == 1:
		terms := make([]term, 0, la*lb)
		for i := 0; i < la; i++ {
			for j := 0; j < lb; j++ {
				terms = append(terms, term{i: i, j: j, harmonic: max(i, j) + 1})
			}
		}
		return terms, nil
	case la == lb:
		terms := make([]term, la)
		for i := range terms {
			terms[i] = term{i: i, j: i, harmonic: i + 1}
		}
		return terms, nil
	default:
		return nil, configerr.Errorf("%s: %s has %d values but %s has %d", op, aName, la, bName, lb)
	}
}
