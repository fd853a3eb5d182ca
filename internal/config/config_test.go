package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synaptecltd/tsgen/spline"
	"go.uber.org/zap"
	"gotest.tools/v3/fs"
)

const scenarioYAML = `
grid:
  start: 0
  step: 0.5
  count: 8
series:
  - name: load
    seed: 42
    components:
      - name: daily
        type: waveform
        waveform: frequency_function_sin
        params:
          a0: 10
          a: [2]
          alpha: [0.26]
      - type: process
        model: ar
        ar: [0.5]
        noise_std: 0.1
  - name: ramp
    components:
      - type: trend
        magnitude: 1
        period: 2
envelope:
  series: load
  boundary: not-a-knot
`

func TestLoadScenario(t *testing.T) {
	file := fs.NewFile(t, "scenario", fs.WithContent(scenarioYAML))
	defer file.Remove()

	scenario, err := LoadScenario(file.Path())
	require.NoError(t, err)

	assert.Equal(t, Grid{Start: 0, Step: 0.5, Count: 8}, scenario.Grid)
	require.Len(t, scenario.Series, 2)
	assert.Equal(t, "load", scenario.Series[0].Name)
	assert.Len(t, scenario.Series[0].Components, 2)
	require.NotNil(t, scenario.Series[0].Seed)
	assert.Equal(t, uint64(42), *scenario.Series[0].Seed)
	assert.Nil(t, scenario.Series[1].Seed)

	require.NotNil(t, scenario.Envelope)
	assert.Equal(t, 1, scenario.Envelope.DMin)
	assert.Equal(t, 1, scenario.Envelope.DMax)
	assert.Equal(t, spline.NotAKnot, scenario.Envelope.SplineBoundary())
}

func TestLoadScenarioMissingFile(t *testing.T) {
	dir := fs.NewDir(t, "scenarios")
	defer dir.Remove()

	_, err := LoadScenario(dir.Join("missing.yaml"))
	assert.Error(t, err)
}

func TestParseScenarioErrors(t *testing.T) {
	series := "series:\n  - name: a\n    components:\n      - type: expression\n        expr: t\n"
	grid := "grid: {step: 1, count: 4}\n"

	testcases := []struct {
		name string
		yaml string
	}{
		{"unknown key", grid + series + "colour: red\n"},
		{"no series", grid + "series: []\n"},
		{"zero step", "grid: {step: 0, count: 4}\n" + series},
		{"no points", "grid: {step: 1, count: 0}\n" + series},
		{"no components", grid + "series:\n  - name: a\n    components: []\n"},
		{"unnamed series", grid + "series:\n  - components:\n      - type: expression\n        expr: t\n"},
		{"duplicate series", grid + series + "  - name: a\n    components:\n      - type: expression\n        expr: t\n"},
		{"unknown envelope series", grid + series + "envelope: {series: b}\n"},
		{"bad boundary", grid + series + "envelope: {series: a, boundary: clamped}\n"},
		{"bad component", grid + "series:\n  - name: a\n    components:\n      - type: sawtooth\n"},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tc.yaml))
			assert.Error(t, err)
		})
	}
}

func TestGridTimes(t *testing.T) {
	assert.Equal(t, []float64{1, 1.5, 2, 2.5}, Grid{Start: 1, Step: 0.5, Count: 4}.Times())
}

func TestEnvelopeBoundaryDefaultsToNatural(t *testing.T) {
	assert.Equal(t, spline.Natural, EnvelopeConfig{}.SplineBoundary())
	assert.Equal(t, spline.Natural, EnvelopeConfig{Boundary: "natural"}.SplineBoundary())
}

func TestSynthesizers(t *testing.T) {
	scenario, err := ParseScenario([]byte(scenarioYAML))
	require.NoError(t, err)

	seed := uint64(7)
	jobs := scenario.Synthesizers(&seed, zap.NewNop())
	require.Len(t, jobs, 2)
	assert.Equal(t, "load", jobs[0].Name)
	assert.Equal(t, "ramp", jobs[1].Name)
	assert.Len(t, jobs[0].Time, 8)

	// series seeds override the run seed, the rest use seed+i
	again := scenario.Synthesizers(&seed, nil)
	other := uint64(42)
	pinned := scenario.Synthesizers(&other, nil)
	a, err := jobs[0].Generate(context.Background())
	require.NoError(t, err)
	b, err := pinned[0].Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, a.Values, b.Values)

	r1, err := jobs[1].Generate(context.Background())
	require.NoError(t, err)
	r2, err := again[1].Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, r1.Values, r2.Values)
	assert.InDeltaSlice(t, []float64{0, 0.25, 0.5, 0.75, 1, 1.25, 1.5, 1.75}, r1.Values, 1e-12)
}

func TestLoadSettings(t *testing.T) {
	t.Setenv("TSGEN_LOG_LEVEL", "debug")
	t.Setenv("TSGEN_LOG_FORMAT", "json")
	t.Setenv("TSGEN_WORKERS", "3")
	t.Setenv("TSGEN_SEED", "11")

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "debug", settings.LogLevel)
	assert.Equal(t, "json", settings.LogFormat)
	assert.Equal(t, 3, settings.Workers)
	require.NotNil(t, settings.Seed)
	assert.Equal(t, uint64(11), *settings.Seed)
}

func TestLoadSettingsDefaults(t *testing.T) {
	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "info", settings.LogLevel)
	assert.Equal(t, "console", settings.LogFormat)
	assert.Equal(t, 0, settings.Workers)
	assert.Nil(t, settings.Seed)
}

func TestLoadSettingsErrors(t *testing.T) {
	testcases := []struct {
		name, key, value string
	}{
		{"bad level", "TSGEN_LOG_LEVEL", "loud"},
		{"bad format", "TSGEN_LOG_FORMAT", "xml"},
		{"negative workers", "TSGEN_WORKERS", "-1"},
		{"bad seed", "TSGEN_SEED", "abc"},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := LoadSettings()
			assert.Error(t, err)
		})
	}
}
