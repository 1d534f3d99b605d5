// Package delta implements the Dirac delta line shape: a peak occupying the
// single domain sample closest to its center.
//
// The delta is scaled by the domain spacing so that a Riemann sum of the
// output recovers the integrated intensity:
//
//	sum(Func(x, A, E0)) * dx == A
package delta

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-qens/lineshape"
)

// Parameter names, before prefixing.
const (
	ParamAmplitude = "amplitude"
	ParamCenter    = "center"
)

// Defaults used when a parameter is absent.
const (
	DefaultAmplitude = 1.0
	DefaultCenter    = 0.0
)

// Func evaluates the delta over x. The output is zero except at the sample
// nearest to center (the lower index on ties), which holds amplitude/dx.
// A center outside the domain lands on the closest boundary sample.
func Func(x []float64, amplitude, center float64) ([]float64, error) {
	dx, err := lineshape.Spacing(x)
	if err != nil {
		return nil, err
	}
	y := make([]float64, len(x))
	y[lineshape.Nearest(x, center)] = amplitude / dx
	return y, nil
}

// Model wraps Func with parameters amplitude and center.
type Model struct {
	cfg lineshape.Config
}

var (
	_ lineshape.Model   = (*Model)(nil)
	_ lineshape.Guesser = (*Model)(nil)
)

// New creates a delta model.
func New(opts ...lineshape.Option) *Model {
	return &Model{cfg: lineshape.ApplyOptions(opts...)}
}

func (m *Model) Name() string { return "delta" }
func (m *Model) Prefix() string { return m.cfg.Prefix }
func (m *Model) IndependentVar() string { return m.cfg.IndependentVar }

func (m *Model) ParamNames() []string {
	return m.cfg.Params(ParamAmplitude, ParamCenter)
}

// Eval evaluates the delta with the model's parameters taken from p.
func (m *Model) Eval(x []float64, p lineshape.Params) ([]float64, error) {
	return Func(x,
		p.Get(m.cfg.Param(ParamAmplitude), DefaultAmplitude),
		p.Get(m.cfg.Param(ParamCenter), DefaultCenter),
	)
}

// Guess takes the largest sample of y as the peak. Without a domain the
// center is 0 and the amplitude is the peak height. With a domain the
// center is the position of the first maximum and the height is converted
// to an integrated intensity by dividing by the spacing.
func (m *Model) Guess(y, x []float64) (lineshape.Params, error) {
	if len(y) == 0 {
		return nil, lineshape.ErrEmptyData
	}
	if x != nil && len(x) != len(y) {
		return nil, fmt.Errorf("%w: x %d, y %d", lineshape.ErrLengthMismatch, len(x), len(y))
	}

	i := floats.MaxIdx(y)
	amplitude := y[i]
	center := DefaultCenter
	if x != nil {
		dx, err := lineshape.Spacing(x)
		if err != nil {
			return nil, err
		}
		center = x[i]
		amplitude /= dx
	}

	return lineshape.Params{
		m.cfg.Param(ParamAmplitude): amplitude,
		m.cfg.Param(ParamCenter):    center,
	}, nil
}
