package component

import (
	"github.com/synaptecltd/tsgen/expression"
	"github.com/synaptecltd/tsgen/linproc"
)

// Evaluates a formula of t over the grid and adds Gaussian noise.
type expressionComponent struct {
	ComponentBase

	NoiseStd float64

	expr *expression.Expression
}

// Parameters to use for the expression component.
type ExpressionParams struct {
	Name     string  `yaml:"name" mapstructure:"name"`
	Expr     string  `yaml:"expr" mapstructure:"expr"`
	NoiseStd float64 `yaml:"noise_std" mapstructure:"noise_std"`
}

// Returns an expressionComponent pointer, compiling the formula.
func NewExpressionComponent(params ExpressionParams) (*expressionComponent, error) {
	x, err := expression.Compile(params.Expr)
	if err != nil {
		return nil, err
	}
	e := &expressionComponent{
		ComponentBase: ComponentBase{name: params.Name, typeName: "expression"},
		NoiseStd:      params.NoiseStd,
		expr:          x,
	}
	if _, err := e.Generate([]float64{0}, linproc.FixedNoise{}); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *expressionComponent) Generate(time []float64, src linproc.NoiseSource) ([]float64, error) {
	return e.expr.Generate(time, e.NoiseStd, src)
}

// Returns the formula source.
func (e *expressionComponent) GetExpr() string {
	return e.expr.String()
}
