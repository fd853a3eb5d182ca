package linproc

// Diff returns the first difference of x with prepend used as the value
// preceding x[0]: out[0] = x[0]-prepend, out[i] = x[i]-x[i-1].
// The result has the same length as x.
func Diff(x []float64, prepend float64) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}
	out[0] = x[0] - prepend
	for i := 1; i < len(x); i++ {
		out[i] = x[i] - x[i-1]
	}
	return out
}

// CumSum returns the running sum of x.
func CumSum(x []float64) []float64 {
	out := make([]float64, len(x))
	sum := 0.0
	for i, v := range x {
		sum += v
		out[i] = sum
	}
	return out
}

// Integrate applies CumSum d times.
func Integrate(x []float64, d int) []float64 {
	out := append([]float64(nil), x...)
	for i := 0; i < d; i++ {
		out = CumSum(out)
	}
	if out == nil {
		out = []float64{}
	}
	return out
}

// Difference applies Diff with a zero boundary d times. It is the exact
// inverse of Integrate with the same d.
func Difference(x []float64, d int) []float64 {
	out := append([]float64(nil), x...)
	for i := 0; i < d; i++ {
		out = Diff(out, 0)
	}
	if out == nil {
		out = []float64{}
	}
	return out
}
