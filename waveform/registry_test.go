package waveform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synaptecltd/tsgen/configerr"
	"github.com/synaptecltd/tsgen/waveform"
	"gopkg.in/yaml.v2"
)

func TestNames(t *testing.T) {
	names := waveform.Names()
	assert.Len(t, names, 10)
	assert.Contains(t, names, "furier_row")
	assert.Contains(t, names, "LFM")
	assert.IsIncreasing(t, names)
}

func TestLookupDefaults(t *testing.T) {
	time := waveform.Linspace(0, 2*math.Pi, 50)

	f, err := waveform.Lookup("trigonometric_row_1")
	require.NoError(t, err)
	y, err := f(time, nil)
	require.NoError(t, err)
	for i, x := range time {
		assert.InDelta(t, math.Sin(x), y[i], 1e-12)
	}

	f, err = waveform.Lookup("frequency_function_sin")
	require.NoError(t, err)
	y, err = f(time, waveform.Params{"a": waveform.Vector(2, 1), "alpha": waveform.Vector(1, 2)})
	require.NoError(t, err)
	for i, x := range time {
		assert.InDelta(t, 1+2*math.Sin(x)+math.Sin(2*x), y[i], 1e-9)
	}
}

func TestLookupVariableAmplitude(t *testing.T) {
	time := []float64{0.5, 1, 2}
	f, err := waveform.Lookup("variable_amplitude")
	require.NoError(t, err)

	byDefault, err := f(time, nil)
	require.NoError(t, err)
	withAmplitude, err := f(time, waveform.Params{"c": waveform.Scalar(0)}, waveform.WithAmplitude(func(float64) float64 { return 3 }))
	require.NoError(t, err)

	for i, x := range time {
		assert.InDelta(t, x*math.Sin(x+1), byDefault[i], 1e-12)
		assert.InDelta(t, 3*math.Sin(x), withAmplitude[i], 1e-12)
	}
}

func TestLookupErrors(t *testing.T) {
	time := waveform.Arange(10)

	_, err := waveform.Lookup("sawtooth")
	assert.ErrorIs(t, err, configerr.ErrConfiguration)

	testcases := []struct {
		name   string
		params waveform.Params
	}{
		{"moduling_signal", waveform.Params{"a0": waveform.Vector(1, 2)}},
		{"moduling_signal2", waveform.Params{"gamma": waveform.Scalar(1)}},
		{"weierstrass", waveform.Params{"alpha": waveform.Scalar(0.5)}},
		{"weierstrass", waveform.Params{"N": waveform.Scalar(2.5)}},
		{"furier_row", waveform.Params{"c": waveform.Vector(1, 2), "lamb": waveform.Vector(1, 2, 3)}},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := waveform.Lookup(tc.name)
			require.NoError(t, err)
			_, err = f(time, tc.params)
			assert.ErrorIs(t, err, configerr.ErrConfiguration)
		})
	}
}

func TestParamSpecYAML(t *testing.T) {
	var params map[string]waveform.ParamSpec
	err := yaml.Unmarshal([]byte("a: 1.5\nb: [1, 2]\nc: 3\n"), &params)
	require.NoError(t, err)

	assert.True(t, params["a"].IsScalar())
	assert.Equal(t, 1.5, params["a"].At(0))
	assert.False(t, params["b"].IsScalar())
	assert.Equal(t, []float64{1, 2}, params["b"].Values())
	assert.Equal(t, 3.0, params["c"].At(0))

	err = yaml.Unmarshal([]byte("a: {x: 1}\n"), &params)
	assert.Error(t, err)
}

func TestParseParamSpec(t *testing.T) {
	p, err := waveform.ParseParamSpec(2)
	require.NoError(t, err)
	assert.True(t, p.IsScalar())
	assert.Equal(t, 2.0, p.At(0))

	p, err = waveform.ParseParamSpec([]interface{}{1, 2.5})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5}, p.Values())

	_, err = waveform.ParseParamSpec("x")
	assert.ErrorIs(t, err, configerr.ErrConfiguration)
	_, err = waveform.ParseParamSpec([]interface{}{1, "x"})
	assert.ErrorIs(t, err, configerr.ErrConfiguration)
}
