// Package expression generates series from a user-written formula of the
// grid position t, with Gaussian noise added to every sample.
//
// Formulas are compiled once by the expr engine against a fixed environment:
// the variable t, the constants pi and e, and the usual one-argument
// functions of package math (sin, cos, exp, log, sqrt, ...) plus pow and
// atan2. Of the engine's builtins only abs, floor, ceil, round, min and max
// are enabled, along with its ** operator. Nothing else is reachable from a
// formula.
package expression

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/synaptecltd/tsgen/configerr"
	"github.com/synaptecltd/tsgen/linproc"
)

// Expression is a compiled formula.
type Expression struct {
	source  string
	program *vm.Program
}

var numericBuiltins = []string{"abs", "floor", "ceil", "round", "min", "max"}

func compileOptions() []expr.Option {
	opts := []expr.Option{expr.Env(environment()), expr.AsFloat64(), expr.DisableAllBuiltins()}
	for _, name := range numericBuiltins {
		opts = append(opts, expr.EnableBuiltin(name))
	}
	return opts
}

func environment() map[string]any {
	return map[string]any{
		"t":     0.0,
		"pi":    math.Pi,
		"e":     math.E,
		"sin":   math.Sin,
		"cos":   math.Cos,
		"tan":   math.Tan,
		"asin":  math.Asin,
		"acos":  math.Acos,
		"atan":  math.Atan,
		"atan2": math.Atan2,
		"sinh":  math.Sinh,
		"cosh":  math.Cosh,
		"tanh":  math.Tanh,
		"exp":   math.Exp,
		"log":   math.Log,
		"log10": math.Log10,
		"sqrt":  math.Sqrt,
		"pow":   math.Pow,
	}
}

// Compile parses source and checks that it yields a number.
func Compile(source string) (*Expression, error) {
	program, err := expr.Compile(source, compileOptions()...)
	if err != nil {
		return nil, configerr.Errorf("expression %q: %v", source, err)
	}
	return &Expression{source: source, program: program}, nil
}

// String returns the source of the formula.
func (x *Expression) String() string {
	return x.source
}

// Evaluate computes the formula at every grid position.
func (x *Expression) Evaluate(time []float64) ([]float64, error) {
	if len(time) < 1 {
		return nil, configerr.Errorf("expression: time grid must not be empty")
	}

	env := environment()
	y := make([]float64, len(time))
	for i, t := range time {
		env["t"] = t
		out, err := expr.Run(x.program, env)
		if err != nil {
			return nil, fmt.Errorf("expression %q at t=%v: %w", x.source, t, err)
		}
		v, ok := out.(float64)
		if !ok {
			return nil, configerr.Errorf("expression %q: result %v is not a number", x.source, out)
		}
		y[i] = v
	}
	return y, nil
}

// Generate evaluates the formula over time and adds N(0, noiseStd) noise
// drawn from src. A nil src draws freshly seeded noise.
func (x *Expression) Generate(time []float64, noiseStd float64, src linproc.NoiseSource) ([]float64, error) {
	if noiseStd < 0 {
		return nil, configerr.Errorf("expression: noise standard deviation must be non-negative, got %v", noiseStd)
	}
	y, err := x.Evaluate(time)
	if err != nil {
		return nil, err
	}

	if src == nil {
		src = linproc.RandomNoise{}
	}
	for i, e := range src.Normal(len(y), noiseStd) {
		y[i] += e
	}
	return y, nil
}

// Generate compiles source and generates a noisy series from it.
func Generate(time []float64, source string, noiseStd float64, src linproc.NoiseSource) ([]float64, error) {
	x, err := Compile(source)
	if err != nil {
		return nil, err
	}
	return x.Generate(time, noiseStd, src)
}
