// Package linproc generates synthetic series from linear stochastic
// processes: AR(p), MA(q), ARMA(p,q), ARIMA(p,d,q) and SARIMAX(p,d,q)(P,D,Q,s).
//
// Every series is produced by a strictly causal recursion over a pre-allocated
// buffer: sample t depends only on samples and innovations before t. The
// innovations come from a NoiseSource, which by default is reseeded on every
// call.
//
//	g := linproc.NewGenerator()
//	y, err := g.ARIMA(500, []float64{0.5, -0.3}, 1, []float64{0.4}, 1.0)
//
// Use SeededNoise or FixedNoise for reproducible output:
//
//	g := linproc.NewGenerator(linproc.WithNoise(linproc.SeededNoise{Seed: 42}))
//
// # Warm-up
//
// AR, ARMA and ARIMA leave their warm-up prefix (p, max(p,q)+1 and max(p,q)
// samples respectively) untouched rather than seeding it with noise. ARIMA
// additionally copies the first d innovations into its differenced buffer
// before the recursion starts.
package linproc
