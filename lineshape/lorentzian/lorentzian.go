// Package lorentzian implements the Lorentzian line shape, the usual
// quasi-elastic broadening of a diffusive process and a common resolution
// stand-in.
//
//	L(x) = A/π · σ/((x-E0)² + σ²)
//
// A is the integrated intensity, E0 the peak position and σ the half width
// at half maximum.
package lorentzian

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-qens/lineshape"
)

// Parameter names, before prefixing.
const (
	ParamAmplitude = "amplitude"
	ParamCenter    = "center"
	ParamSigma     = "sigma"
)

// Defaults used when a parameter is absent.
const (
	DefaultAmplitude = 1.0
	DefaultCenter    = 0.0
	DefaultSigma     = 1.0
)

// Func evaluates the Lorentzian over x.
func Func(x []float64, amplitude, center, sigma float64) []float64 {
	y := make([]float64, len(x))
	for i, v := range x {
		d := v - center
		y[i] = sigma / (d*d + sigma*sigma)
	}
	floats.Scale(amplitude/math.Pi, y)
	return y
}

// Model wraps Func with parameters amplitude, center and sigma.
type Model struct {
	cfg lineshape.Config
}

var (
	_ lineshape.Model   = (*Model)(nil)
	_ lineshape.Guesser = (*Model)(nil)
)

// New creates a Lorentzian model.
func New(opts ...lineshape.Option) *Model {
	return &Model{cfg: lineshape.ApplyOptions(opts...)}
}

func (m *Model) Name() string { return "lorentzian" }
func (m *Model) Prefix() string { return m.cfg.Prefix }
func (m *Model) IndependentVar() string { return m.cfg.IndependentVar }

func (m *Model) ParamNames() []string {
	return m.cfg.Params(ParamAmplitude, ParamCenter, ParamSigma)
}

// Eval evaluates the Lorentzian with the model's parameters taken from p.
func (m *Model) Eval(x []float64, p lineshape.Params) ([]float64, error) {
	return Func(x,
		p.Get(m.cfg.Param(ParamAmplitude), DefaultAmplitude),
		p.Get(m.cfg.Param(ParamCenter), DefaultCenter),
		p.Get(m.cfg.Param(ParamSigma), DefaultSigma),
	), nil
}

// Guess estimates the peak from y sampled on x. The center is the position
// of the maximum, sigma is half the extent of the samples at or above half
// the maximum, and the amplitude follows from the peak height π·σ·max.
func (m *Model) Guess(y, x []float64) (lineshape.Params, error) {
	if len(y) == 0 {
		return nil, lineshape.ErrEmptyData
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: x %d, y %d", lineshape.ErrLengthMismatch, len(x), len(y))
	}
	dx, err := lineshape.Spacing(x)
	if err != nil {
		return nil, err
	}

	i := floats.MaxIdx(y)
	height := y[i]

	lo, hi := i, i
	for lo > 0 && y[lo-1] >= height/2 {
		lo--
	}
	for hi < len(y)-1 && y[hi+1] >= height/2 {
		hi++
	}
	sigma := math.Max(x[hi]-x[lo], math.Abs(dx)) / 2

	return lineshape.Params{
		m.cfg.Param(ParamAmplitude): height * math.Pi * sigma,
		m.cfg.Param(ParamCenter):    x[i],
		m.cfg.Param(ParamSigma):     sigma,
	}, nil
}
