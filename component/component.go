// Package component assembles a series from configurable parts: catalog
// waveforms, linear processes, shaped trends, random spikes and expressions.
// Each part generates a full series over a shared time grid and a Container
// sums them.
package component

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/synaptecltd/tsgen/linproc"
	"go.uber.org/zap"
)

// Container is a collection of named components.
type Container map[string]Component

// Component is the interface for all component types.
type Component interface {
	TypeAsString() string                                                // Returns the component type as a string
	GetName() string                                                     // Returns the configured name, possibly empty
	Generate(time []float64, src linproc.NoiseSource) ([]float64, error) // Returns one value per grid position
}

// NoiseFunc returns the noise source for the i-th component in name order.
type NoiseFunc func(i int) linproc.NoiseSource

// ComponentBase is embedded by every component type.
type ComponentBase struct {
	name     string
	typeName string
}

// Returns the component type as a string.
func (b *ComponentBase) TypeAsString() string {
	return b.typeName
}

// Returns the name the component was configured with.
func (b *ComponentBase) GetName() string {
	return b.name
}

// Add component to container with a UUID and returns the UUID.
func (c *Container) AddComponent(component Component) uuid.UUID {
	if *c == nil {
		*c = make(Container)
	}
	id := uuid.New()
	(*c)[id.String()] = component
	return id
}

// Names returns the container keys in sorted order, the order in which
// components are generated.
func (c Container) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// loggingComponent is implemented by components that log while generating.
type loggingComponent interface {
	generateLogged(time []float64, src linproc.NoiseSource, logger *zap.Logger) ([]float64, error)
}

// Sum generates every component over time and returns their sum. The i-th
// component in name order draws its noise from noise(i); a nil noise gives
// every component freshly seeded noise. Components that log do so through
// logger, which may be nil. Sum does not modify the components, so one
// Container may be summed from several goroutines at once.
func (c Container) Sum(time []float64, noise NoiseFunc, logger *zap.Logger) ([]float64, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	sum := make([]float64, len(time))
	for i, name := range c.Names() {
		var src linproc.NoiseSource = linproc.RandomNoise{}
		if noise != nil {
			src = noise(i)
		}

		var y []float64
		var err error
		if l, ok := c[name].(loggingComponent); ok {
			y, err = l.generateLogged(time, src, logger)
		} else {
			y, err = c[name].Generate(time, src)
		}
		if err != nil {
			return nil, fmt.Errorf("component %s: %w", name, err)
		}
		if len(y) != len(time) {
			return nil, fmt.Errorf("component %s: generated %d values for %d grid positions", name, len(y), len(time))
		}
		for j, v := range y {
			sum[j] += v
		}
	}
	return sum, nil
}
