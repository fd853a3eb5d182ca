// Package spline fits piecewise cubic interpolants through ordered control
// points and samples them.
package spline

import (
	"github.com/synaptecltd/tsgen/configerr"
	"gonum.org/v1/gonum/interp"
)

// MinPoints is the fewest control points a cubic spline can be fitted to.
const MinPoints = 3

// Boundary selects the end conditions of the spline.
type Boundary int

const (
	// Natural sets the second derivative to zero at both ends.
	Natural Boundary = iota
	// NotAKnot makes the third derivative continuous across the second and
	// penultimate knots. With exactly three points this is the parabola
	// through them.
	NotAKnot
)

func (b Boundary) String() string {
	switch b {
	case Natural:
		return "natural"
	case NotAKnot:
		return "not-a-knot"
	default:
		return "unknown"
	}
}

// Curve is a fitted cubic interpolant.
type Curve struct {
	xs, ys    []float64
	boundary  Boundary
	predictor interp.Predictor
}

// Fit fits a natural cubic spline through (x[i], y[i]).
func Fit(x, y []float64) (*Curve, error) {
	return FitWithBoundary(x, y, Natural)
}

// FitWithBoundary fits a cubic spline with the given end conditions. x and y
// must have equal length of at least MinPoints and x must be strictly
// increasing.
func FitWithBoundary(x, y []float64, boundary Boundary) (*Curve, error) {
	if len(x) != len(y) {
		return nil, configerr.Errorf("spline: got %d x coordinates and %d y coordinates", len(x), len(y))
	}
	if len(x) < MinPoints {
		return nil, configerr.Errorf("spline: need at least %d points, got %d", MinPoints, len(x))
	}
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return nil, configerr.Errorf("spline: x must be strictly increasing, x[%d]=%v follows x[%d]=%v", i, x[i], i-1, x[i-1])
		}
	}

	c := &Curve{
		xs:       append([]float64(nil), x...),
		ys:       append([]float64(nil), y...),
		boundary: boundary,
	}

	switch {
	case boundary == Natural:
		var nc interp.NaturalCubic
		if err := nc.Fit(c.xs, c.ys); err != nil {
			return nil, configerr.Errorf("spline: %v", err)
		}
		c.predictor = &nc
	case boundary == NotAKnot && len(x) == MinPoints:
		c.predictor = newParabola(c.xs, c.ys)
	case boundary == NotAKnot:
		var nak interp.NotAKnotCubic
		if err := nak.Fit(c.xs, c.ys); err != nil {
			return nil, configerr.Errorf("spline: %v", err)
		}
		c.predictor = &nak
	default:
		return nil, configerr.Errorf("spline: unknown boundary condition %d", boundary)
	}
	return c, nil
}

// At evaluates the curve at x. Outside [Min, Max] the value is clamped to
// the value at the nearer end.
func (c *Curve) At(x float64) float64 {
	return c.predictor.Predict(x)
}

// Evaluate evaluates the curve at every query position.
func (c *Curve) Evaluate(queries []float64) []float64 {
	out := make([]float64, len(queries))
	for i, q := range queries {
		out[i] = c.At(q)
	}
	return out
}

// SampleUniform evaluates the curve at count evenly spaced positions across
// [Min, Max] and returns the positions with their values.
func (c *Curve) SampleUniform(count int) (xs, ys []float64) {
	xs = Linspace(c.Min(), c.Max(), count)
	return xs, c.Evaluate(xs)
}

// Min returns the first control abscissa.
func (c *Curve) Min() float64 { return c.xs[0] }

// Max returns the last control abscissa.
func (c *Curve) Max() float64 { return c.xs[len(c.xs)-1] }

// Boundary returns the end conditions the curve was fitted with.
func (c *Curve) Boundary() Boundary { return c.boundary }

// Linspace returns n evenly spaced positions from start to stop inclusive.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

// parabola is the quadratic through three points in Newton form.
type parabola struct {
	x0, x1     float64
	c0, c1, c2 float64
}

func newParabola(x, y []float64) *parabola {
	d01 := (y[1] - y[0]) / (x[1] - x[0])
	d12 := (y[2] - y[1]) / (x[2] - x[1])
	return &parabola{
		x0: x[0],
		x1: x[1],
		c0: y[0],
		c1: d01,
		c2: (d12 - d01) / (x[2] - x[0]),
	}
}

func (p *parabola) Predict(x float64) float64 {
	return p.c0 + (x-p.x0)*(p.c1+(x-p.x1)*p.c2)
}
