package waveform

// Linspace returns n evenly spaced positions from start to stop inclusive.
// n == 1 gives [start]; n <= 0 gives an empty grid.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	grid := make([]float64, n)
	if n == 1 {
		grid[0] = start
		return grid
	}
	step := (stop - start) / float64(n-1)
	for i := range grid {
		grid[i] = start + float64(i)*step
	}
	grid[n-1] = stop
	return grid
}

// Arange returns the integer positions 0..n-1.
func Arange(n int) []float64 {
	grid := make([]float64, max(n, 0))
	for i := range grid {
		grid[i] = float64(i)
	}
	return grid
}

// Ints converts samples produced with AsInt to ints.
func Ints(y []float64) []int {
	out := make([]int, len(y))
	for i, v := range y {
		out[i] = int(v)
	}
	return out
}
