package mathfuncs_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synaptecltd/tsgen/configerr"
	"github.com/synaptecltd/tsgen/mathfuncs"
)

func TestShapeFunctions(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 0))
	M := 1.0 + r.Float64()*99.0 // amplitude (between 1 and 100)
	x := 1.0 + r.Float64()*99.0 // position (between 1 and 100)

	testCases := []struct {
		name     string
		t        float64
		A        float64
		T        float64
		expected float64
		isError  bool
	}{
		{name: "not_a_function", isError: true},
		{name: "linear", t: x, A: M, T: M, expected: x},
		{name: "sine", t: x, A: M, T: 4 * x, expected: M},
		{name: "cosine", t: x, A: M, T: 4 * x, expected: 0},
		{name: "exponential", t: x, A: M, T: x, expected: M*math.Exp(1) - M},
		{name: "exponential_decay", t: x, A: M, T: x, expected: M / math.E},
		{name: "exponential_decay_full", t: x, A: M, T: x, expected: M * (1 - 1/math.E)},
		{name: "parabolic", t: x, A: M, T: 2 * x, expected: M / 4},
		{name: "step", t: 1.5 * x, A: M, T: 2 * x, expected: M},
		{name: "step", t: 0, A: M, T: x, expected: 0},
		{name: "Lstep", t: x, A: M, T: x, expected: -M},
		{name: "square", t: 0, A: M, T: x, expected: M},
		{name: "square", t: 1.5 * x, A: M, T: 2 * x, expected: -M},
		{name: "sawtooth", t: 3 * x, A: M, T: x, expected: 0},
		{name: "sawtooth", t: x, A: M, T: 4 * x, expected: M / 2},
		{name: "impulse", t: x / 2, A: M, T: x, expected: 0},
		{name: "impulse", t: x, A: M, T: x, expected: M},
		{name: "flat", t: x, A: M, T: x, expected: M},
		{name: "warmup_sine", t: x, A: M, T: 4 * x, expected: M - 0.5*M},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fn, err := mathfuncs.GetFunctionFromName(tc.name)
			if tc.isError {
				assert.ErrorIs(t, err, configerr.ErrConfiguration)
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tc.expected, fn(tc.t, tc.A, tc.T), 1e-6)
		})
	}
}

func TestBind(t *testing.T) {
	ramp, err := mathfuncs.Bind("linear", 2, 4)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, ramp(3), 1e-12)

	_, err = mathfuncs.Bind("gaussian_noise", 1, 1)
	assert.ErrorIs(t, err, configerr.ErrConfiguration)
}

func TestGetFunctionNames(t *testing.T) {
	names := mathfuncs.GetFunctionNames()
	assert.Contains(t, names, "linear")
	assert.Contains(t, names, "warmup_sine")
	assert.IsIncreasing(t, names)
}
