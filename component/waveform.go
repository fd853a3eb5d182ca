package component

import (
	"github.com/synaptecltd/tsgen/configerr"
	"github.com/synaptecltd/tsgen/linproc"
	"github.com/synaptecltd/tsgen/mathfuncs"
	"github.com/synaptecltd/tsgen/waveform"
)

// Samples a catalog waveform over the grid. Deterministic: noise is unused.
type waveformComponent struct {
	ComponentBase

	waveformName string
	params       waveform.Params
	fn           waveform.Func
	opts         []waveform.Option
}

// Parameters to use for the waveform component.
type WaveformParams struct {
	Name      string                        `yaml:"name" mapstructure:"name"`
	Waveform  string                        `yaml:"waveform" mapstructure:"waveform"`   // catalog name, e.g. trigonometric_row_1
	Params    map[string]waveform.ParamSpec `yaml:"params" mapstructure:"params"`       // overrides of the catalog defaults
	AsInt     bool                          `yaml:"as_int" mapstructure:"as_int"`       // truncate samples toward zero
	Amplitude *AmplitudeParams              `yaml:"amplitude" mapstructure:"amplitude"` // amplitude function for variable_amplitude
}

// AmplitudeParams names a shape function y=f(t,A,T) from package mathfuncs.
type AmplitudeParams struct {
	Func      string  `yaml:"func" mapstructure:"func"`
	Magnitude float64 `yaml:"magnitude" mapstructure:"magnitude"`
	Period    float64 `yaml:"period" mapstructure:"period"`
}

// Returns a waveformComponent pointer with the requested parameters. The
// waveform is tried on a single position so parameter errors surface here
// rather than at generation.
func NewWaveformComponent(params WaveformParams) (*waveformComponent, error) {
	fn, err := waveform.Lookup(params.Waveform)
	if err != nil {
		return nil, err
	}

	w := &waveformComponent{
		ComponentBase: ComponentBase{name: params.Name, typeName: "waveform"},
		waveformName:  params.Waveform,
		params:        waveform.Params(params.Params),
		fn:            fn,
	}
	if params.AsInt {
		w.opts = append(w.opts, waveform.AsInt())
	}
	if params.Amplitude != nil {
		if params.Waveform != "variable_amplitude" {
			return nil, configerr.Errorf("%s: amplitude function only applies to variable_amplitude", params.Waveform)
		}
		amp, err := mathfuncs.Bind(params.Amplitude.Func, params.Amplitude.Magnitude, params.Amplitude.Period)
		if err != nil {
			return nil, err
		}
		w.opts = append(w.opts, waveform.WithAmplitude(amp))
	}

	if _, err := w.Generate([]float64{0}, nil); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *waveformComponent) Generate(time []float64, _ linproc.NoiseSource) ([]float64, error) {
	return w.fn(time, w.params, w.opts...)
}

// Returns the catalog name of the waveform.
func (w *waveformComponent) GetWaveformName() string {
	return w.waveformName
}
