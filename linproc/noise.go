package linproc

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// NoiseSource produces the innovation sequence e[0..n) driving a process.
type NoiseSource interface {
	Normal(n int, std float64) []float64
}

// RandomNoise draws i.i.d. N(0, std) samples from a generator seeded afresh
// on every call, so no random state survives between calls.
type RandomNoise struct{}

func (RandomNoise) Normal(n int, std float64) []float64 {
	src := rand.NewPCG(rand.Uint64(), rand.Uint64())
	return normalSamples(src, n, std)
}

// SeededNoise draws i.i.d. N(0, std) samples from a PCG generator seeded with
// Seed and Stream. Every call restarts from the seed, giving reproducible
// sequences; sources differing only in Stream are independent.
type SeededNoise struct {
	Seed   uint64
	Stream uint64
}

func (s SeededNoise) Normal(n int, std float64) []float64 {
	return normalSamples(rand.NewPCG(s.Seed, s.Stream), n, std)
}

// FixedNoise replays the given samples unscaled, padding with zeros when more
// samples are requested than it holds. The std argument is ignored.
type FixedNoise []float64

func (f FixedNoise) Normal(n int, _ float64) []float64 {
	e := make([]float64, max(n, 0))
	copy(e, f)
	return e
}

func normalSamples(src rand.Source, n int, std float64) []float64 {
	if n <= 0 {
		return []float64{}
	}
	dist := distuv.Normal{Mu: 0, Sigma: std, Src: src}
	e := make([]float64, n)
	for i := range e {
		e[i] = dist.Rand()
	}
	return e
}
