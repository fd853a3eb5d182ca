package waveform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synaptecltd/tsgen/configerr"
	"github.com/synaptecltd/tsgen/waveform"
)

func grid() []float64 {
	return waveform.Linspace(-5, 5, 101)
}

func TestTrigonometricRow1IsSine(t *testing.T) {
	time := grid()
	y, err := waveform.TrigonometricRow1(time, 1, 1, 0, 1)
	require.NoError(t, err)

	for i, x := range time {
		assert.InDelta(t, math.Sin(x), y[i], 1e-12, "x=%v", x)
	}
}

func TestTrigonometricRow1Exponent(t *testing.T) {
	y, err := waveform.TrigonometricRow1([]float64{math.Pi / 6, -math.Pi / 6}, 2, 1, 0, 2)
	require.NoError(t, err)
	// 2 * 0.5^2 keeping the sign of sin
	assert.InDeltaSlice(t, []float64{0.5, -0.5}, y, 1e-12)
}

func TestWeierstrassSingleTermIsCosine(t *testing.T) {
	time := grid()
	y, err := waveform.Weierstrass(time, 1, 1, 1)
	require.NoError(t, err)

	for i, x := range time {
		assert.InDelta(t, math.Cos(math.Pi*x), y[i], 1e-12, "x=%v", x)
	}
}

func TestWeierstrassPartialSum(t *testing.T) {
	y, err := waveform.Weierstrass([]float64{0, 1}, 3, 0.5, 2)
	require.NoError(t, err)
	// at x=0 every cosine is 1; at x=1 cos(2^i*pi) is 1 for i>=1
	assert.InDeltaSlice(t, []float64{0.875, 0.875}, y, 1e-12)
}

func TestTrigonometricRow2(t *testing.T) {
	time := grid()

	t.Run("cross combination", func(t *testing.T) {
		y, err := waveform.TrigonometricRow2(time, 0.5, waveform.Vector(2), waveform.Vector(1, 3), 1, 1)
		require.NoError(t, err)
		for i, x := range time {
			expected := 0.5 + 2*math.Cos(x) + math.Sin(x) + 2*math.Cos(2*x) + 3*math.Sin(2*x)
			assert.InDelta(t, expected, y[i], 1e-9)
		}
	})

	t.Run("element-wise", func(t *testing.T) {
		y, err := waveform.TrigonometricRow2(time, 0, waveform.Vector(1, 2), waveform.Vector(3, 4), 0.5, 1)
		require.NoError(t, err)
		for i, x := range time {
			expected := math.Cos(0.5*x) + 3*math.Sin(0.5*x) + 2*math.Cos(x) + 4*math.Sin(x)
			assert.InDelta(t, expected, y[i], 1e-9)
		}
	})

	t.Run("scalars", func(t *testing.T) {
		y, err := waveform.TrigonometricRow2([]float64{4}, 1, waveform.Scalar(2), waveform.Scalar(3), 1, 0.5)
		require.NoError(t, err)
		assert.InDelta(t, 1+2*math.Cos(2)+3*math.Sin(2), y[0], 1e-12)
	})
}

func TestFrequencyFunctions(t *testing.T) {
	time := grid()

	sinY, err := waveform.FrequencySin(time, 1, waveform.Vector(1, 2), waveform.Vector(1, 3))
	require.NoError(t, err)
	cosY, err := waveform.FrequencyCos(time, 1, waveform.Scalar(2), waveform.Vector(1, 3))
	require.NoError(t, err)

	for i, x := range time {
		assert.InDelta(t, 1+math.Sin(x)+2*math.Sin(3*x), sinY[i], 1e-9)
		assert.InDelta(t, 1+2*math.Cos(x)+2*math.Cos(3*x), cosY[i], 1e-9)
	}
}

func TestMismatchedVectorsAreConfigurationErrors(t *testing.T) {
	time := grid()

	_, err := waveform.FrequencySin(time, 0, waveform.Vector(1, 2), waveform.Vector(1, 2, 3))
	assert.ErrorIs(t, err, configerr.ErrConfiguration)

	_, err = waveform.TrigonometricRow2(time, 0, waveform.Vector(1, 2, 3), waveform.Vector(1, 2), 1, 1)
	assert.ErrorIs(t, err, configerr.ErrConfiguration)

	_, err = waveform.FourierRow(time, waveform.Vector(1, 2), waveform.Vector(1, 2, 3))
	assert.ErrorIs(t, err, configerr.ErrConfiguration)

	_, err = waveform.FrequencyCos(time, 0, waveform.Vector(), waveform.Scalar(1))
	assert.ErrorIs(t, err, configerr.ErrConfiguration)
}

func TestEmptyGridIsConfigurationError(t *testing.T) {
	_, err := waveform.ModulatingSignal(nil, 1, 1)
	assert.ErrorIs(t, err, configerr.ErrConfiguration)

	_, err = waveform.LFM([]float64{}, 1, 0, 1, 2)
	assert.ErrorIs(t, err, configerr.ErrConfiguration)
}

func TestFourierRow(t *testing.T) {
	time := grid()

	single, err := waveform.FourierRow(time, waveform.Scalar(2), waveform.Scalar(1))
	require.NoError(t, err)
	pair, err := waveform.FourierRow(time, waveform.Vector(1, 1), waveform.Vector(0, 1))
	require.NoError(t, err)

	for i, x := range time {
		assert.InDelta(t, 2.0, single[i], 1e-12)
		assert.InDelta(t, 2*math.Abs(math.Cos(x/2)), pair[i], 1e-9)
	}
}

func TestVariableAmplitude(t *testing.T) {
	time := grid()

	_, err := waveform.VariableAmplitude(time, nil, 1, 0)
	assert.ErrorIs(t, err, configerr.ErrConfiguration)

	y, err := waveform.VariableAmplitude(time, func(x float64) float64 { return x * x }, 2, 1)
	require.NoError(t, err)
	for i, x := range time {
		assert.InDelta(t, x*x*math.Sin(2*x+1), y[i], 1e-12)
	}
}

func TestModulatingSignals(t *testing.T) {
	time := grid()

	y1, err := waveform.ModulatingSignal(time, 1.5, 0.1)
	require.NoError(t, err)
	y2, err := waveform.ModulatingSignal2(time, 2, 0.5)
	require.NoError(t, err)

	for i, x := range time {
		assert.InDelta(t, (1.5+math.Sin(0.1*x))*math.Sin(x), y1[i], 1e-12)
		assert.InDelta(t, math.Sin(2*x)*math.Cos(0.5*x), y2[i], 1e-12)
	}
}

func TestLFMUsesSquare(t *testing.T) {
	time := []float64{0, 0.5, 1.5}
	y, err := waveform.LFM(time, 2, 0.25, 1, 2)
	require.NoError(t, err)

	for i, x := range time {
		assert.InDelta(t, 2*math.Cos(0.25+2*math.Pi*(x+x*x)), y[i], 1e-12)
	}
}

func TestAsIntTruncatesTowardZero(t *testing.T) {
	time := []float64{math.Pi / 2, 3 * math.Pi / 2}
	y, err := waveform.TrigonometricRow1(time, 2.7, 1, 0, 1, waveform.AsInt())
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{2, -2}, y, 0)
	assert.Equal(t, []int{2, -2}, waveform.Ints(y))
}

func TestLinspace(t *testing.T) {
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, waveform.Linspace(0, 1, 5))
	assert.Equal(t, []float64{3}, waveform.Linspace(3, 7, 1))
	assert.Empty(t, waveform.Linspace(0, 1, 0))
	assert.Equal(t, []float64{0, 1, 2}, waveform.Arange(3))
}
