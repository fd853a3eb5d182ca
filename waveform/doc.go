// Package waveform provides closed-form seasonal signal generators.
//
// Each generator maps a time grid to a same-length sequence. Grids need not
// be uniform. All generators share one validation step: an empty grid, or
// parameters that cannot be combined, are rejected with
// configerr.ErrConfiguration before any sample is computed. The AsInt option
// truncates every output sample toward zero.
//
// # Parameter arity
//
// Two-parameter series (trigonometric_row_2, the frequency functions and
// furier_row) take ParamSpec values that are either scalars or vectors. A
// scalar behaves as a vector of length one. If either side has length one the
// series sums over every pair of indices (i, j) with harmonic index
// max(i,j)+1; vectors of equal length pair element-wise with harmonic index
// i+1; any other combination is an error.
//
//	time := waveform.Linspace(0, 10, 1000)
//	y, err := waveform.FrequencySin(time, 0, waveform.Vector(1, 0.5), waveform.Vector(1, 3))
//
// Generators are also reachable by catalog name through Lookup:
//
//	f, _ := waveform.Lookup("weierstrass")
//	y, err := f(time, waveform.Params{"N": waveform.Scalar(5), "alpha": waveform.Scalar(0.5)})
package waveform
