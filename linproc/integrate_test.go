package linproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffWithPrepend(t *testing.T) {
	assert.Equal(t, []float64{-2, 0, 0}, Diff([]float64{0, 0, 0}, 2))
	assert.Equal(t, []float64{1, 2, 3}, Diff([]float64{1, 3, 6}, 0))
	assert.Empty(t, Diff(nil, 1))
}

func TestCumSum(t *testing.T) {
	assert.Equal(t, []float64{1, 3, 6, 10}, CumSum([]float64{1, 2, 3, 4}))
	assert.Equal(t, []float64{1, 4, 10, 20}, Integrate([]float64{1, 2, 3, 4}, 2))
}

func TestDifferenceInvertsIntegrate(t *testing.T) {
	x := []float64{0.5, -1.25, 3, 0, 2.75}
	for d := 0; d <= 3; d++ {
		assert.InDeltaSlice(t, x, Difference(Integrate(x, d), d), 1e-12)
	}
}

func TestIntegrateDoesNotAlias(t *testing.T) {
	x := []float64{1, 2, 3}
	out := Integrate(x, 0)
	out[0] = 99
	assert.Equal(t, 1.0, x[0])
}

func TestPastRejectsNonCausalRead(t *testing.T) {
	assert.Panics(t, func() { past([]float64{1, 2}, 1, 0) })
	assert.Equal(t, 0.0, past([]float64{1, 2}, 1, 2))
	assert.Equal(t, 1.0, past([]float64{1, 2}, 1, 1))
}
