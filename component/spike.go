package component

import (
	"math"

	"github.com/synaptecltd/tsgen/configerr"
	"github.com/synaptecltd/tsgen/linproc"
	"github.com/synaptecltd/tsgen/mathfuncs"
	"gonum.org/v1/gonum/stat/distuv"
)

// Produces isolated spikes: each grid position inside an active window spikes
// with a given probability.
//
// All randomness comes from the noise source, which is asked for 3n standard
// normal draws: the first n decide occurrence, the next n the sign and the
// last n the magnitude variation. Occurrence and sign draws are mapped
// through the normal CDF to uniforms, so a seeded source gives reproducible
// spikes.
type spikeComponent struct {
	ComponentBase

	Magnitude     float64 // magnitude of spikes
	VaryMagnitude bool    // true scales each spike by a standard normal draw
	Repeats       uint64  // number of windows, 0 for unlimited

	startDelay  float64
	duration    float64
	probability float64 // probability of a spike at each active position
	spikeSign   float64 // in [-1, 1]; negative favours negative spikes, 0 is unbiased

	magFuncName  string
	probFuncName string
	magFunction  mathfuncs.MathsFunction // magnitude over elapsed window time, nil for constant
	probFunction mathfuncs.MathsFunction // probability over elapsed window time, nil for constant
}

// Parameters to use for the spike component.
type SpikeParams struct {
	Name          string  `yaml:"name" mapstructure:"name"`
	Magnitude     float64 `yaml:"magnitude" mapstructure:"magnitude"`
	MagFuncName   string  `yaml:"mag_func" mapstructure:"mag_func"` // shape of the magnitude within a window, empty for constant
	VaryMagnitude bool    `yaml:"vary_magnitude" mapstructure:"vary_magnitude"`
	SpikeSign     float64 `yaml:"sign" mapstructure:"sign"`
	Probability   float64 `yaml:"probability" mapstructure:"probability"`
	ProbFuncName  string  `yaml:"prob_func" mapstructure:"prob_func"` // shape of the probability within a window, empty for constant
	StartDelay    float64 `yaml:"start_delay" mapstructure:"start_delay"`
	Duration      float64 `yaml:"duration" mapstructure:"duration"` // window length, 0 for continuous spiking
	Repeats       uint64  `yaml:"repeats" mapstructure:"repeats"`
}

// Returns a spikeComponent pointer with the requested parameters, checking for
// invalid values.
func NewSpikeComponent(params SpikeParams) (*spikeComponent, error) {
	s := &spikeComponent{
		ComponentBase: ComponentBase{name: params.Name, typeName: "spike"},
		Magnitude:     params.Magnitude,
		VaryMagnitude: params.VaryMagnitude,
		Repeats:       params.Repeats,
	}

	if err := s.SetStartDelay(params.StartDelay); err != nil {
		return nil, err
	}
	if err := s.SetProbability(params.Probability); err != nil {
		return nil, err
	}
	if err := s.SetSpikeSign(params.SpikeSign); err != nil {
		return nil, err
	}
	if err := s.SetMagFunctionByName(params.MagFuncName); err != nil {
		return nil, err
	}
	if err := s.SetProbFunctionByName(params.ProbFuncName); err != nil {
		return nil, err
	}
	if err := s.SetDuration(params.Duration); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *spikeComponent) Generate(time []float64, src linproc.NoiseSource) ([]float64, error) {
	n := len(time)
	y := make([]float64, n)
	if n == 0 {
		return y, nil
	}

	if src == nil {
		src = linproc.RandomNoise{}
	}
	z := src.Normal(3*n, 1)
	occur, sign, vary := z[:n], z[n:2*n], z[2*n:]
	w := window{s.startDelay, s.duration, s.Repeats}
	origin := time[0]

	for i, x := range time {
		elapsed, active := w.elapsed(x - origin)
		if !active {
			continue
		}
		if distuv.UnitNormal.CDF(occur[i]) > s.fetchProbability(elapsed) {
			continue
		}

		delta := s.Magnitude
		if s.magFunction != nil {
			delta = s.magFunction(elapsed, s.Magnitude, s.duration)
		}
		if distuv.UnitNormal.CDF(sign[i])*2-1 > s.spikeSign {
			delta = -delta
		}
		if s.VaryMagnitude {
			delta *= vary[i]
		}
		y[i] = delta
	}
	return y, nil
}

// fetchProbability returns the spike probability after elapsed time in the
// current window.
func (s *spikeComponent) fetchProbability(elapsed float64) float64 {
	if s.probFunction == nil {
		return s.probability
	}
	return math.Abs(s.probFunction(elapsed, s.probability, s.duration))
}

// Setters

// Sets the window length if duration >= 0. Duration 0 means continuous
// spiking and is not allowed with a magnitude or probability shape.
func (s *spikeComponent) SetDuration(duration float64) error {
	if duration < 0 {
		return configerr.Errorf("spike: duration must be non-negative, got %v", duration)
	}
	if duration == 0 && (s.magFunction != nil || s.probFunction != nil) {
		return configerr.Errorf("spike: duration must be positive when a magnitude or probability shape is set")
	}
	s.duration = duration
	return nil
}

// Sets the delay before each window if startDelay >= 0.
func (s *spikeComponent) SetStartDelay(startDelay float64) error {
	if startDelay < 0 {
		return configerr.Errorf("spike: start delay must be non-negative, got %v", startDelay)
	}
	s.startDelay = startDelay
	return nil
}

// Sets the per-position spike probability if probability >= 0.
func (s *spikeComponent) SetProbability(probability float64) error {
	if probability < 0 {
		return configerr.Errorf("spike: probability must be non-negative, got %v", probability)
	}
	s.probability = probability
	return nil
}

// Sets the sign bias if it lies in [-1, 1].
func (s *spikeComponent) SetSpikeSign(spikeSign float64) error {
	if spikeSign < -1 || spikeSign > 1 {
		return configerr.Errorf("spike: sign must be between -1 and 1, got %v", spikeSign)
	}
	s.spikeSign = spikeSign
	return nil
}

func (s *spikeComponent) SetMagFunctionByName(name string) error {
	return setOptionalFunction("spike", name, &s.magFuncName, &s.magFunction)
}

func (s *spikeComponent) SetProbFunctionByName(name string) error {
	return setOptionalFunction("spike", name, &s.probFuncName, &s.probFunction)
}

// setOptionalFunction looks up a shape by name; an empty name clears it.
func setOptionalFunction(op, name string, nameField *string, fnField *mathfuncs.MathsFunction) error {
	if name == "" {
		*nameField, *fnField = "", nil
		return nil
	}
	fn, err := mathfuncs.GetFunctionFromName(name)
	if err != nil {
		return configerr.Errorf("%s: unknown shape %q, choose one of %v", op, name, mathfuncs.GetFunctionNames())
	}
	*nameField, *fnField = name, fn
	return nil
}

// Getters

func (s *spikeComponent) GetProbability() float64 {
	return s.probability
}

func (s *spikeComponent) GetSpikeSign() float64 {
	return s.spikeSign
}

func (s *spikeComponent) GetMagFuncName() string {
	return s.magFuncName
}

func (s *spikeComponent) GetProbFuncName() string {
	return s.probFuncName
}
