package linproc

import (
	"math"

	"github.com/synaptecltd/tsgen/configerr"
	"go.uber.org/zap"
)

// SeasonalOrder is the seasonal part (P, D, Q, s) of a SARIMAX order.
type SeasonalOrder struct {
	P int `yaml:"P" mapstructure:"P"` // seasonal AR order
	D int `yaml:"D" mapstructure:"D"` // seasonal differencing order
	Q int `yaml:"Q" mapstructure:"Q"` // seasonal MA order
	S int `yaml:"S" mapstructure:"S"` // season length in samples
}

func (so SeasonalOrder) validate() error {
	if so.P < 0 || so.D < 0 || so.Q < 0 {
		return configerr.Errorf("sarimax: seasonal orders must be non-negative, got (%d, %d, %d)", so.P, so.D, so.Q)
	}
	if so.S <= 0 {
		return configerr.Errorf("sarimax: season length must be positive, got %d", so.S)
	}
	return nil
}

// Generator produces synthetic series from linear stochastic processes.
// Each call draws a fresh innovation sequence from its NoiseSource.
type Generator struct {
	noise  NoiseSource
	logger *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithNoise replaces the default RandomNoise source.
func WithNoise(src NoiseSource) Option {
	return func(g *Generator) {
		if src != nil {
			g.noise = src
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGenerator returns a Generator using RandomNoise and a no-op logger
// unless overridden by opts.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		noise:  RandomNoise{},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// AR generates n samples of an AR(p) process with coefficients phi.
// The first p samples are exactly zero.
func (g *Generator) AR(n int, phi []float64, noiseStd float64) ([]float64, error) {
	if err := checkNoiseStd("ar", noiseStd); err != nil {
		return nil, err
	}
	if n <= 0 {
		return []float64{}, nil
	}

	p := len(phi)
	e := g.noise.Normal(n, noiseStd)
	y := make([]float64, n)
	for t := p; t < n; t++ {
		y[t] = arTerm(y, phi, t) + e[t]
	}

	g.logGenerated("ar", n, p, p, 0)
	return y, nil
}

// MA generates n samples of an MA(q) process with coefficients theta.
func (g *Generator) MA(n int, theta []float64, noiseStd float64) ([]float64, error) {
	if err := checkNoiseStd("ma", noiseStd); err != nil {
		return nil, err
	}
	if n <= 0 {
		return []float64{}, nil
	}

	e := g.noise.Normal(n, noiseStd)
	y := make([]float64, n)
	for t := range y {
		// lags before the first sample read as zero, so y[0] = e[0]
		y[t] = e[t] + maTerm(e, theta, t)
	}

	g.logGenerated("ma", n, 0, 0, len(theta))
	return y, nil
}

// ARMA generates n samples of an ARMA(p, q) process. The first max(p,q)+1
// samples are exactly zero.
func (g *Generator) ARMA(n int, phi, theta []float64, noiseStd float64) ([]float64, error) {
	if err := checkNoiseStd("arma", noiseStd); err != nil {
		return nil, err
	}
	if n <= 0 {
		return []float64{}, nil
	}

	e := g.noise.Normal(n, noiseStd)
	y := make([]float64, n)
	start := max(len(phi), len(theta)) + 1
	for t := start; t < n; t++ {
		y[t] = arTerm(y, phi, t) + maTerm(e, theta, t) + e[t]
	}

	g.logGenerated("arma", n, start, len(phi), len(theta))
	return y, nil
}

// ARIMA generates n samples of an ARIMA(p, d, q) process in level form.
func (g *Generator) ARIMA(n int, phi []float64, d int, theta []float64, noiseStd float64) ([]float64, error) {
	_, y, err := g.ARIMAComponents(n, phi, d, theta, noiseStd)
	return y, err
}

// ARIMAComponents is ARIMA returning both the differenced buffer built by the
// recursion and its d-fold integration. Integrate(differenced, d) == level.
func (g *Generator) ARIMAComponents(n int, phi []float64, d int, theta []float64, noiseStd float64) (differenced, level []float64, err error) {
	if err := checkNoiseStd("arima", noiseStd); err != nil {
		return nil, nil, err
	}
	if d < 0 {
		return nil, nil, configerr.Errorf("arima: differencing order must be non-negative, got %d", d)
	}
	if n <= 0 {
		return []float64{}, []float64{}, nil
	}

	e := g.noise.Normal(n, noiseStd)
	w := make([]float64, n)
	for i := 0; i < d && i < n; i++ {
		w[i] = e[i]
	}

	start := max(len(phi), len(theta))
	for t := start; t < n; t++ {
		w[t] = arTerm(w, phi, t) + maTerm(e, theta, t) + e[t]
	}

	g.logGenerated("arima", n, start, len(phi), len(theta))
	return w, Integrate(w, d), nil
}

// SARIMAX generates n samples of a SARIMAX(p, d, q)(P, D, Q, s) process.
//
// The seasonal terms multiply lagged values by the seasonal order counts P
// and Q; there are no per-lag seasonal coefficients. Before the recursion the
// zero buffer is differenced D times against e[0], which seeds its leading
// samples. The non-seasonal d is validated but does not enter the recursion,
// so configurations written for generators that difference d times instead
// do not carry over: with d=1 and D=0 those start at -e[0], this one at 0.
func (g *Generator) SARIMAX(n int, phi []float64, d int, theta []float64, seasonal SeasonalOrder, noiseStd float64) ([]float64, error) {
	if err := checkNoiseStd("sarimax", noiseStd); err != nil {
		return nil, err
	}
	if d < 0 {
		return nil, configerr.Errorf("sarimax: differencing order must be non-negative, got %d", d)
	}
	if err := seasonal.validate(); err != nil {
		return nil, err
	}
	if n <= 0 {
		return []float64{}, nil
	}

	e := g.noise.Normal(n, noiseStd)
	y := make([]float64, n)
	for i := 0; i < seasonal.D; i++ {
		y = Diff(y, e[0])
	}

	start := max(len(phi), len(theta), seasonal.P+seasonal.Q)
	for t := start; t < n; t++ {
		seasonalAR := 0.0
		for j := 0; j < seasonal.P; j++ {
			seasonalAR += float64(seasonal.P) * past(y, t, seasonal.S+j)
		}
		seasonalMA := 0.0
		for j := 0; j < seasonal.Q; j++ {
			seasonalMA += float64(seasonal.Q) * past(e, t, seasonal.S+j)
		}
		y[t] = arTerm(y, phi, t) + maTerm(e, theta, t) + seasonalAR + seasonalMA + e[t]
	}

	g.logGenerated("sarimax", n, start, len(phi), len(theta))
	return y, nil
}

// past returns x[t-k]. Only strictly earlier positions may be read; positions
// before the start of the series read as zero.
func past(x []float64, t, k int) float64 {
	if k < 1 {
		panic("linproc: non-causal read")
	}
	if t-k < 0 {
		return 0
	}
	return x[t-k]
}

// arTerm is sum_j phi[j]*y[t-1-j].
func arTerm(y, phi []float64, t int) float64 {
	sum := 0.0
	for j, c := range phi {
		sum += c * past(y, t, j+1)
	}
	return sum
}

// maTerm is sum_j theta[j]*e[t-1-j].
func maTerm(e, theta []float64, t int) float64 {
	sum := 0.0
	for j, c := range theta {
		sum += c * past(e, t, j+1)
	}
	return sum
}

func checkNoiseStd(model string, std float64) error {
	if std < 0 || math.IsNaN(std) {
		return configerr.Errorf("%s: noise standard deviation must be non-negative, got %v", model, std)
	}
	return nil
}

func (g *Generator) logGenerated(model string, n, warmup, p, q int) {
	if warmup >= n {
		g.logger.Warn("warm-up covers the whole series, output holds no recursion",
			zap.String("model", model), zap.Int("n", n), zap.Int("warmup", warmup))
	}
	g.logger.Debug("process generated",
		zap.String("model", model), zap.Int("n", n), zap.Int("p", p), zap.Int("q", q))
}
