package tsgen

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/synaptecltd/tsgen/component"
	"github.com/synaptecltd/tsgen/envelope"
	"github.com/synaptecltd/tsgen/linproc"
	"github.com/synaptecltd/tsgen/spline"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Series is a generated series over its time grid.
type Series struct {
	Name   string
	Time   []float64
	Values []float64
}

// Synthesizer sums a container of components over a time grid.
type Synthesizer struct {
	Name       string
	Time       []float64
	Components component.Container

	seed     *uint64
	logger   *zap.Logger
	observer Observer
}

// Observer is told the outcome of every Generate call.
type Observer interface {
	ObserveSeries(name string, samples int, elapsed time.Duration, err error)
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithSeed makes generation reproducible. Component i, in name order, draws
// from stream i of the seeded generator.
func WithSeed(seed uint64) Option {
	return func(s *Synthesizer) {
		s.seed = &seed
	}
}

// WithLogger sets the logger handed to the components.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Synthesizer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithObserver reports each generation to o.
func WithObserver(o Observer) Option {
	return func(s *Synthesizer) {
		s.observer = o
	}
}

func NewSynthesizer(name string, grid []float64, components component.Container, opts ...Option) *Synthesizer {
	s := &Synthesizer{
		Name:       name,
		Time:       grid,
		Components: components,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Generate produces the series. It fails fast if ctx is already done.
func (s *Synthesizer) Generate(ctx context.Context) (Series, error) {
	if err := ctx.Err(); err != nil {
		return Series{}, err
	}

	start := time.Now()
	values, err := s.Components.Sum(s.Time, s.noise(), s.logger)
	if s.observer != nil {
		s.observer.ObserveSeries(s.Name, len(values), time.Since(start), err)
	}
	if err != nil {
		return Series{}, fmt.Errorf("series %s: %w", s.Name, err)
	}

	s.logger.Debug("series generated",
		zap.String("series", s.Name),
		zap.Int("samples", len(values)),
		zap.Int("components", len(s.Components)),
	)
	return Series{Name: s.Name, Time: s.Time, Values: values}, nil
}

func (s *Synthesizer) noise() component.NoiseFunc {
	if s.seed == nil {
		return nil
	}
	seed := *s.seed
	return func(i int) linproc.NoiseSource {
		return linproc.SeededNoise{Seed: seed, Stream: uint64(i)}
	}
}

// GenerateBatch runs every job with at most workers in flight, or one per
// CPU when workers < 1. Results keep the order of jobs. The first failure
// cancels the jobs not yet started and is returned.
func GenerateBatch(ctx context.Context, jobs []*Synthesizer, workers int) ([]Series, error) {
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	results := make([]Series, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, job := range jobs {
		g.Go(func() error {
			series, err := job.Generate(ctx)
			if err != nil {
				return err
			}
			results[i] = series
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Envelope returns the low and high envelopes of s, named <name>_low and
// <name>_high. Each envelope has one value per sample of s, spread evenly
// between the first and last extremum it passes through, so its Time spans
// those extrema rather than the grid of s.
func (s Series) Envelope(dmin, dmax int, split bool, boundary spline.Boundary) (low, high Series, err error) {
	lo, hi, err := envelope.Finder{Boundary: boundary}.Sample(s.Values, dmin, dmax, split)
	if err != nil {
		return Series{}, Series{}, fmt.Errorf("series %s: %w", s.Name, err)
	}
	return Series{Name: s.Name + "_low", Time: s.timeAt(lo.Positions), Values: lo.Values},
		Series{Name: s.Name + "_high", Time: s.timeAt(hi.Positions), Values: hi.Values},
		nil
}

// timeAt maps fractional sample positions onto s.Time by linear
// interpolation. Without a matching time grid the positions are returned.
func (s Series) timeAt(positions []float64) []float64 {
	n := len(s.Time)
	if n == 0 || n != len(s.Values) {
		return positions
	}

	out := make([]float64, len(positions))
	for k, p := range positions {
		i := int(p)
		if i >= n-1 {
			out[k] = s.Time[n-1]
			continue
		}
		out[k] = s.Time[i] + (p-float64(i))*(s.Time[i+1]-s.Time[i])
	}
	return out
}
