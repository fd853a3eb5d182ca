package linproc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synaptecltd/tsgen/configerr"
	"github.com/synaptecltd/tsgen/linproc"
)

func TestNewModel(t *testing.T) {
	seasonal := &linproc.SeasonalOrder{P: 1, D: 0, Q: 1, S: 12}

	testcases := []struct {
		params linproc.Params
		name   string
	}{
		{linproc.Params{Model: "ar", AR: []float64{0.5}}, "ar"},
		{linproc.Params{Model: "MA", MA: []float64{0.5}}, "ma"},
		{linproc.Params{Model: "arma", AR: []float64{0.5}, MA: []float64{0.1}}, "arma"},
		{linproc.Params{Model: "arima", AR: []float64{0.5}, D: 1}, "arima"},
		{linproc.Params{Model: "sarimax", AR: []float64{0.5}, Seasonal: seasonal}, "sarimax"},
	}

	g := linproc.NewGenerator(linproc.WithNoise(linproc.SeededNoise{Seed: 3}))
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			model, err := linproc.NewModel(tc.params)
			require.NoError(t, err)
			assert.Equal(t, tc.name, model.Name())

			y, err := model.Generate(g, 64)
			require.NoError(t, err)
			assert.Len(t, y, 64)
		})
	}
}

func TestNewModelErrors(t *testing.T) {
	testcases := []linproc.Params{
		{Model: "garch"},
		{Model: "sarimax"},
		{Model: "sarimax", Seasonal: &linproc.SeasonalOrder{S: 0}},
		{Model: "arima", D: -1},
		{Model: "ar", NoiseStd: -0.1},
	}

	for _, params := range testcases {
		_, err := linproc.NewModel(params)
		assert.ErrorIs(t, err, configerr.ErrConfiguration, "params %+v", params)
	}
}

func TestModelMatchesGenerator(t *testing.T) {
	g := linproc.NewGenerator(linproc.WithNoise(linproc.SeededNoise{Seed: 11}))

	model, err := linproc.NewModel(linproc.Params{Model: "arima", AR: []float64{0.4}, D: 1, MA: []float64{0.2}, NoiseStd: 0.5})
	require.NoError(t, err)

	fromModel, err := model.Generate(g, 100)
	require.NoError(t, err)
	direct, err := g.ARIMA(100, []float64{0.4}, 1, []float64{0.2}, 0.5)
	require.NoError(t, err)

	assert.Equal(t, direct, fromModel)
}
