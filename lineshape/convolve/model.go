package convolve

import (
	"fmt"

	"github.com/cwbudde/algo-qens/dsp/conv"
	"github.com/cwbudde/algo-qens/lineshape"
)

// Model convolves a response model with a resolution model.
// It holds no state beyond its constituents and is safe for concurrent use
// when they are.
type Model struct {
	resolution lineshape.Model
	response   lineshape.Model
	method     conv.Method
}

var _ lineshape.Composite = (*Model)(nil)

// Option configures a Model.
type Option func(*Model)

// WithMethod selects the convolution engine. The default is conv.MethodAuto.
func WithMethod(method conv.Method) Option {
	return func(m *Model) {
		m.method = method
	}
}

// New composes resolution and response. Both must be non-nil.
func New(resolution, response lineshape.Model, opts ...Option) *Model {
	m := &Model{
		resolution: resolution,
		response:   response,
		method:     conv.MethodAuto,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// Name reports both constituents, e.g. "convolve(lorentzian, delta)".
func (m *Model) Name() string {
	return fmt.Sprintf("convolve(%s, %s)", m.resolution.Name(), m.response.Name())
}

// Prefix is empty; parameters keep their constituents' prefixes.
func (m *Model) Prefix() string { return "" }

// ParamNames returns the resolution parameters followed by the response
// parameters not already listed.
func (m *Model) ParamNames() []string {
	return lineshape.UnionNames(m.resolution.ParamNames(), m.response.ParamNames())
}

// IndependentVar is the domain axis of the resolution model.
func (m *Model) IndependentVar() string { return m.resolution.IndependentVar() }

func (m *Model) Left() lineshape.Model { return m.resolution }
func (m *Model) Right() lineshape.Model { return m.response }

// Resolution returns the instrument resolution model.
func (m *Model) Resolution() lineshape.Model { return m.resolution }

// Response returns the physical response model.
func (m *Model) Response() lineshape.Model { return m.response }

// Method returns the configured convolution engine.
func (m *Model) Method() conv.Method { return m.method }

// Eval evaluates the resolution on x and the response on Extend(x), then
// convolves them with FuncWith. The result is the full valid convolution,
// which for a domain containing 0 has len(x) samples.
func (m *Model) Eval(x []float64, p lineshape.Params) ([]float64, error) {
	res, err := m.resolution.Eval(x, p)
	if err != nil {
		return nil, fmt.Errorf("convolve: resolution %s: %w", m.resolution.Name(), err)
	}

	ext, err := Extend(x)
	if err != nil {
		return nil, err
	}

	resp, err := m.response.Eval(ext, p)
	if err != nil {
		return nil, fmt.Errorf("convolve: response %s: %w", m.response.Name(), err)
	}

	return FuncWith(resp, res, m.method)
}
