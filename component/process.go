package component

import (
	"github.com/synaptecltd/tsgen/linproc"
	"go.uber.org/zap"
)

// Generates a linear stochastic process of the grid's length, optionally
// shifted by a constant level.
type processComponent struct {
	ComponentBase

	Offset float64 // constant added to every sample

	model linproc.Model
}

// Parameters to use for the process component. The model fields are those of
// linproc.Params.
type ProcessParams struct {
	Name           string `yaml:"name" mapstructure:"name"`
	linproc.Params `yaml:",inline" mapstructure:",squash"`
	Offset         float64 `yaml:"offset" mapstructure:"offset"`
}

// Returns a processComponent pointer with the requested parameters, checking
// the model for invalid values.
func NewProcessComponent(params ProcessParams) (*processComponent, error) {
	model, err := linproc.NewModel(params.Params)
	if err != nil {
		return nil, err
	}

	return &processComponent{
		ComponentBase: ComponentBase{name: params.Name, typeName: "process"},
		Offset:        params.Offset,
		model:         model,
	}, nil
}

func (p *processComponent) Generate(time []float64, src linproc.NoiseSource) ([]float64, error) {
	return p.generateLogged(time, src, zap.NewNop())
}

func (p *processComponent) generateLogged(time []float64, src linproc.NoiseSource, logger *zap.Logger) ([]float64, error) {
	g := linproc.NewGenerator(linproc.WithNoise(src), linproc.WithLogger(logger))
	y, err := p.model.Generate(g, len(time))
	if err != nil {
		return nil, err
	}
	for i := range y {
		y[i] += p.Offset
	}
	return y, nil
}

// Returns the model name, e.g. "arima".
func (p *processComponent) GetModelName() string {
	return p.model.Name()
}

