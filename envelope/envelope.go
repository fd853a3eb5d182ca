// Package envelope locates the local extrema of a signal and reconstructs
// smooth low and high envelopes through them with cubic splines.
package envelope

import (
	"fmt"

	"github.com/synaptecltd/tsgen/configerr"
	"github.com/synaptecltd/tsgen/spline"
	"gonum.org/v1/gonum/stat"
)

// Extrema holds the positions of local minima and maxima of a signal, each in
// increasing order.
type Extrema struct {
	Minima []int
	Maxima []int
}

// Finder extracts extrema and envelopes. The zero value fits natural splines.
type Finder struct {
	Boundary spline.Boundary
}

// FindExtrema locates extrema with the zero Finder.
func FindExtrema(signal []float64, dmin, dmax int, split bool) (Extrema, error) {
	return Finder{}.FindExtrema(signal, dmin, dmax, split)
}

// Envelope builds envelopes with the zero Finder.
func Envelope(signal []float64, dmin, dmax int, split bool) (low, high []float64, err error) {
	return Finder{}.Envelope(signal, dmin, dmax, split)
}

// FindExtrema returns the local minima and maxima of signal.
//
// A position is a local minimum where the sign of the first difference steps
// up and a local maximum where it steps down. With split set, minima at or
// above the signal mean and maxima at or below it are discarded. Finally the
// minima are cut into consecutive chunks of dmin positions (maxima into
// chunks of dmax) and only the lowest (highest) position of each chunk is
// kept; ties keep the earliest.
func (f Finder) FindExtrema(signal []float64, dmin, dmax int, split bool) (Extrema, error) {
	if dmin < 1 || dmax < 1 {
		return Extrema{}, configerr.Errorf("envelope: chunk sizes must be at least 1, got dmin=%d dmax=%d", dmin, dmax)
	}

	minima, maxima := curvatureExtrema(signal)

	if split && len(signal) > 0 {
		mid := stat.Mean(signal, nil)
		minima = filter(minima, func(i int) bool { return signal[i] < mid })
		maxima = filter(maxima, func(i int) bool { return signal[i] > mid })
	}

	return Extrema{
		Minima: thin(minima, dmin, func(a, b float64) bool { return a < b }, signal),
		Maxima: thin(maxima, dmax, func(a, b float64) bool { return a > b }, signal),
	}, nil
}

// Sampled is an envelope sampled at fractional signal positions.
type Sampled struct {
	Positions []float64
	Values    []float64
}

// Envelope fits a spline through the minima and another through the maxima
// of signal and samples each at len(signal) evenly spaced positions spanning
// that extremum set. Fewer than three extrema on either side is an error.
func (f Finder) Envelope(signal []float64, dmin, dmax int, split bool) (low, high []float64, err error) {
	lo, hi, err := f.Sample(signal, dmin, dmax, split)
	if err != nil {
		return nil, nil, err
	}
	return lo.Values, hi.Values, nil
}

// Sample is Envelope keeping the signal position of every envelope value.
func (f Finder) Sample(signal []float64, dmin, dmax int, split bool) (low, high Sampled, err error) {
	ext, err := f.FindExtrema(signal, dmin, dmax, split)
	if err != nil {
		return Sampled{}, Sampled{}, err
	}

	high, err = f.resample(signal, ext.Maxima)
	if err != nil {
		return Sampled{}, Sampled{}, fmt.Errorf("envelope: high: %w", err)
	}
	low, err = f.resample(signal, ext.Minima)
	if err != nil {
		return Sampled{}, Sampled{}, fmt.Errorf("envelope: low: %w", err)
	}
	return low, high, nil
}

func (f Finder) resample(signal []float64, idx []int) (Sampled, error) {
	x := make([]float64, len(idx))
	y := make([]float64, len(idx))
	for k, i := range idx {
		x[k] = float64(i)
		y[k] = signal[i]
	}

	curve, err := spline.FitWithBoundary(x, y, f.Boundary)
	if err != nil {
		return Sampled{}, err
	}
	positions, values := curve.SampleUniform(len(signal))
	return Sampled{Positions: positions, Values: values}, nil
}

// curvatureExtrema applies the discrete curvature test to the sign of the
// first difference.
func curvatureExtrema(signal []float64) (minima, maxima []int) {
	minima, maxima = []int{}, []int{}
	if len(signal) < 3 {
		return minima, maxima
	}

	prev := sign(signal[1] - signal[0])
	for i := 1; i+1 < len(signal); i++ {
		next := sign(signal[i+1] - signal[i])
		switch {
		case next > prev:
			minima = append(minima, i)
		case next < prev:
			maxima = append(maxima, i)
		}
		prev = next
	}
	return minima, maxima
}

func filter(idx []int, keep func(int) bool) []int {
	out := make([]int, 0, len(idx))
	for _, i := range idx {
		if keep(i) {
			out = append(out, i)
		}
	}
	return out
}

// thin keeps the best position of each consecutive chunk of size positions,
// better(a, b) reporting whether value a beats value b.
func thin(idx []int, size int, better func(a, b float64) bool, signal []float64) []int {
	out := make([]int, 0, (len(idx)+size-1)/size)
	for start := 0; start < len(idx); start += size {
		chunk := idx[start:min(start+size, len(idx))]
		best := chunk[0]
		for _, i := range chunk[1:] {
			if better(signal[i], signal[best]) {
				best = i
			}
		}
		out = append(out, best)
	}
	return out
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
