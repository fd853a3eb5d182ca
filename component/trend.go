package component

import (
	"github.com/synaptecltd/tsgen/configerr"
	"github.com/synaptecltd/tsgen/linproc"
	"github.com/synaptecltd/tsgen/mathfuncs"
)

// Shapes the series with a named function, optionally in repeating windows.
//
// Positions are measured from the first grid value. With Duration > 0 the
// timeline is cut into cycles of StartDelay followed by Duration; the trend is
// zero during the delay and follows the shape during the window, restarting
// each cycle. With Duration = 0 the trend starts after StartDelay and never
// restarts.
type trendComponent struct {
	ComponentBase

	Magnitude    float64 // magnitude of the trend
	Repeats      uint64  // number of windows, 0 for unlimited
	InvertTrend  bool    // true multiplies the shape by -1
	ReverseTrend bool    // true subtracts the shape from Magnitude (mirrors it along the horizontal axis)

	startDelay     float64
	duration       float64
	periodDuration float64 // period handed to the shape, Duration when unset

	magFuncName string
	magFunction mathfuncs.MathsFunction
}

// Parameters to use for the trend component.
type TrendParams struct {
	Name           string  `yaml:"name" mapstructure:"name"`
	Magnitude      float64 `yaml:"magnitude" mapstructure:"magnitude"`
	MagFuncName    string  `yaml:"mag_func" mapstructure:"mag_func"`       // mathfuncs shape, "linear" when empty
	PeriodDuration float64 `yaml:"period" mapstructure:"period"`           // period of the shape, Duration when 0
	StartDelay     float64 `yaml:"start_delay" mapstructure:"start_delay"` // delay before (and between) windows
	Duration       float64 `yaml:"duration" mapstructure:"duration"`       // window length, 0 for a single open-ended trend
	Repeats        uint64  `yaml:"repeats" mapstructure:"repeats"`
	InvertTrend    bool    `yaml:"invert" mapstructure:"invert"`
	ReverseTrend   bool    `yaml:"reverse" mapstructure:"reverse"`
}

// Returns a trendComponent pointer with the requested parameters, checking for
// invalid values.
func NewTrendComponent(params TrendParams) (*trendComponent, error) {
	t := &trendComponent{
		ComponentBase: ComponentBase{name: params.Name, typeName: "trend"},
		Magnitude:     params.Magnitude,
		Repeats:       params.Repeats,
		InvertTrend:   params.InvertTrend,
		ReverseTrend:  params.ReverseTrend,
	}

	if err := t.SetDuration(params.Duration); err != nil {
		return nil, err
	}
	if err := t.SetStartDelay(params.StartDelay); err != nil {
		return nil, err
	}
	if err := t.SetPeriodDuration(params.PeriodDuration); err != nil {
		return nil, err
	}
	if err := t.SetMagFunctionByName(params.MagFuncName); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *trendComponent) Generate(time []float64, _ linproc.NoiseSource) ([]float64, error) {
	y := make([]float64, len(time))
	if len(time) == 0 {
		return y, nil
	}

	origin := time[0]
	for i, x := range time {
		elapsed, active := window{t.startDelay, t.duration, t.Repeats}.elapsed(x - origin)
		if !active {
			continue
		}
		y[i] = t.delta(t.magFunction(elapsed, t.Magnitude, t.periodDuration))
	}
	return y, nil
}

// delta applies inverting and reversing to the shape value.
func (t *trendComponent) delta(shape float64) float64 {
	switch {
	case t.ReverseTrend && t.InvertTrend:
		return -(t.Magnitude - shape)
	case t.ReverseTrend:
		return t.Magnitude - shape
	case t.InvertTrend:
		return -shape
	default:
		return shape
	}
}

// Setters

// Sets the window length if duration >= 0; 0 means a single open-ended trend.
func (t *trendComponent) SetDuration(duration float64) error {
	if duration < 0 {
		return configerr.Errorf("trend: duration must be non-negative, got %v", duration)
	}
	t.duration = duration
	return nil
}

// Sets the delay before each window if startDelay >= 0.
func (t *trendComponent) SetStartDelay(startDelay float64) error {
	if startDelay < 0 {
		return configerr.Errorf("trend: start delay must be non-negative, got %v", startDelay)
	}
	t.startDelay = startDelay
	return nil
}

// Sets the period handed to the shape if periodDuration >= 0. If
// periodDuration=0 the window duration is used, which must then be positive.
func (t *trendComponent) SetPeriodDuration(periodDuration float64) error {
	if periodDuration < 0 {
		return configerr.Errorf("trend: period must be non-negative, got %v", periodDuration)
	}
	if periodDuration == 0 {
		if t.duration == 0 {
			return configerr.Errorf("trend: period is required when duration is 0")
		}
		t.periodDuration = t.duration
		return nil
	}
	t.periodDuration = periodDuration
	return nil
}

// Sets the shape function by name, defaulting to "linear".
func (t *trendComponent) SetMagFunctionByName(name string) error {
	if name == "" {
		name = "linear"
	}
	fn, err := mathfuncs.GetFunctionFromName(name)
	if err != nil {
		return configerr.Errorf("trend: unknown shape %q, choose one of %v", name, mathfuncs.GetFunctionNames())
	}
	t.magFuncName = name
	t.magFunction = fn
	return nil
}

// Getters

func (t *trendComponent) GetMagFuncName() string {
	return t.magFuncName
}

func (t *trendComponent) GetDuration() float64 {
	return t.duration
}

func (t *trendComponent) GetStartDelay() float64 {
	return t.startDelay
}

func (t *trendComponent) GetPeriodDuration() float64 {
	return t.periodDuration
}
