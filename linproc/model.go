package linproc

import (
	"strings"

	"github.com/synaptecltd/tsgen/configerr"
)

// Model is a linear process with its parameters bound, ready to generate
// series of any length.
type Model interface {
	Name() string
	Generate(g *Generator, n int) ([]float64, error)
}

// Params describes a process by name. Fields irrelevant to the named model
// are ignored.
type Params struct {
	Model    string         `yaml:"model" mapstructure:"model"` // ar, ma, arma, arima or sarimax
	AR       []float64      `yaml:"ar" mapstructure:"ar"`
	MA       []float64      `yaml:"ma" mapstructure:"ma"`
	D        int            `yaml:"d" mapstructure:"d"`
	Seasonal *SeasonalOrder `yaml:"seasonal" mapstructure:"seasonal"`
	NoiseStd float64        `yaml:"noise_std" mapstructure:"noise_std"`
}

// NewModel builds the Model named in params, checking its parameters.
func NewModel(params Params) (Model, error) {
	if err := checkNoiseStd(params.Model, params.NoiseStd); err != nil {
		return nil, err
	}
	if params.D < 0 {
		return nil, configerr.Errorf("%s: differencing order must be non-negative, got %d", params.Model, params.D)
	}

	switch strings.ToLower(params.Model) {
	case "ar":
		return ARModel{Phi: params.AR, NoiseStd: params.NoiseStd}, nil
	case "ma":
		return MAModel{Theta: params.MA, NoiseStd: params.NoiseStd}, nil
	case "arma":
		return ARMAModel{Phi: params.AR, Theta: params.MA, NoiseStd: params.NoiseStd}, nil
	case "arima":
		return ARIMAModel{Phi: params.AR, D: params.D, Theta: params.MA, NoiseStd: params.NoiseStd}, nil
	case "sarimax":
		if params.Seasonal == nil {
			return nil, configerr.Errorf("sarimax: seasonal order is required")
		}
		if err := params.Seasonal.validate(); err != nil {
			return nil, err
		}
		return SARIMAXModel{
			Phi:      params.AR,
			D:        params.D,
			Theta:    params.MA,
			Seasonal: *params.Seasonal,
			NoiseStd: params.NoiseStd,
		}, nil
	default:
		return nil, configerr.Errorf("unknown process model %q", params.Model)
	}
}

type ARModel struct {
	Phi      []float64
	NoiseStd float64
}

func (m ARModel) Name() string { return "ar" }

func (m ARModel) Generate(g *Generator, n int) ([]float64, error) {
	return g.AR(n, m.Phi, m.NoiseStd)
}

type MAModel struct {
	Theta    []float64
	NoiseStd float64
}

func (m MAModel) Name() string { return "ma" }

func (m MAModel) Generate(g *Generator, n int) ([]float64, error) {
	return g.MA(n, m.Theta, m.NoiseStd)
}

type ARMAModel struct {
	Phi      []float64
	Theta    []float64
	NoiseStd float64
}

func (m ARMAModel) Name() string { return "arma" }

func (m ARMAModel) Generate(g *Generator, n int) ([]float64, error) {
	return g.ARMA(n, m.Phi, m.Theta, m.NoiseStd)
}

type ARIMAModel struct {
	Phi      []float64
	D        int
	Theta    []float64
	NoiseStd float64
}

func (m ARIMAModel) Name() string { return "arima" }

func (m ARIMAModel) Generate(g *Generator, n int) ([]float64, error) {
	return g.ARIMA(n, m.Phi, m.D, m.Theta, m.NoiseStd)
}

type SARIMAXModel struct {
	Phi      []float64
	D        int
	Theta    []float64
	Seasonal SeasonalOrder
	NoiseStd float64
}

func (m SARIMAXModel) Name() string { return "sarimax" }

func (m SARIMAXModel) Generate(g *Generator, n int) ([]float64, error) {
	return g.SARIMAX(n, m.Phi, m.D, m.Theta, m.Seasonal, m.NoiseStd)
}
