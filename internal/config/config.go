package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/synaptecltd/tsgen"
	"github.com/synaptecltd/tsgen/component"
	"github.com/synaptecltd/tsgen/spline"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

// Settings are the runtime settings read from TSGEN_* environment variables.
type Settings struct {
	LogLevel  string  `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	LogFormat string  `envconfig:"LOG_FORMAT" default:"console" validate:"oneof=console json"`
	Workers   int     `envconfig:"WORKERS" default:"0" validate:"gte=0"` // 0 uses one worker per CPU
	Seed      *uint64 `envconfig:"SEED"`                                 // unset draws fresh noise on every run
}

// Scenario describes the series to generate over a shared grid.
type Scenario struct {
	Grid     Grid            `yaml:"grid"`
	Series   []SeriesConfig  `yaml:"series" validate:"required,min=1,dive"`
	Envelope *EnvelopeConfig `yaml:"envelope"`
}

// Grid is an evenly spaced time grid of Count positions.
type Grid struct {
	Start float64 `yaml:"start"`
	Step  float64 `yaml:"step" validate:"gt=0"`
	Count int     `yaml:"count" validate:"gte=1"`
}

// SeriesConfig is one output series.
type SeriesConfig struct {
	Name       string              `yaml:"name" validate:"required"`
	Seed       *uint64             `yaml:"seed"` // overrides the run seed
	Components component.Container `yaml:"components" validate:"required,min=1"`
}

// EnvelopeConfig requests the envelopes of one series.
type EnvelopeConfig struct {
	Series   string `yaml:"series" validate:"required"`
	DMin     int    `yaml:"dmin" validate:"gte=1"`
	DMax     int    `yaml:"dmax" validate:"gte=1"`
	Split    bool   `yaml:"split"`
	Boundary string `yaml:"boundary" validate:"omitempty,oneof=natural not-a-knot"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Use yaml tag names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// LoadSettings reads and validates the environment settings.
func LoadSettings() (*Settings, error) {
	var s Settings
	if err := envconfig.Process("TSGEN", &s); err != nil {
		return nil, fmt.Errorf("failed to load settings from env: %w", err)
	}
	if err := validate.Struct(&s); err != nil {
		return nil, fmt.Errorf("settings validation failed: %w", err)
	}
	return &s, nil
}

// LoadScenario reads a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	scenario, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scenario, nil
}

// ParseScenario decodes and validates a scenario. Unknown keys are errors.
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return nil, err
	}
	if s.Envelope != nil {
		if s.Envelope.DMin == 0 {
			s.Envelope.DMin = 1
		}
		if s.Envelope.DMax == 0 {
			s.Envelope.DMax = 1
		}
	}

	if err := validate.Struct(&s); err != nil {
		return nil, fmt.Errorf("scenario validation failed: %w", err)
	}
	if err := s.checkNames(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) checkNames() error {
	seen := make(map[string]bool, len(s.Series))
	for _, series := range s.Series {
		if seen[series.Name] {
			return fmt.Errorf("duplicate series name: %s", series.Name)
		}
		seen[series.Name] = true
	}
	if s.Envelope != nil && !seen[s.Envelope.Series] {
		return fmt.Errorf("envelope refers to unknown series: %s", s.Envelope.Series)
	}
	return nil
}

// Times returns the grid positions.
func (g Grid) Times() []float64 {
	t := make([]float64, g.Count)
	for i := range t {
		t[i] = g.Start + float64(i)*g.Step
	}
	return t
}

// SplineBoundary returns the configured boundary, natural by default.
func (e EnvelopeConfig) SplineBoundary() spline.Boundary {
	if e.Boundary == "not-a-knot" {
		return spline.NotAKnot
	}
	return spline.Natural
}

// Synthesizers builds one synthesizer per series, each also given extra. A
// series without its own seed uses seed+i when seed is set, i being its
// position in the scenario.
func (s *Scenario) Synthesizers(seed *uint64, logger *zap.Logger, extra ...tsgen.Option) []*tsgen.Synthesizer {
	time := s.Grid.Times()
	jobs := make([]*tsgen.Synthesizer, len(s.Series))
	for i, series := range s.Series {
		opts := append([]tsgen.Option{tsgen.WithLogger(logger)}, extra...)
		switch {
		case series.Seed != nil:
			opts = append(opts, tsgen.WithSeed(*series.Seed))
		case seed != nil:
			opts = append(opts, tsgen.WithSeed(*seed+uint64(i)))
		}
		jobs[i] = tsgen.NewSynthesizer(series.Name, time, series.Components, opts...)
	}
	return jobs
}
