package lineshape

// Model is a named, side-effect-free mapping from a domain and a parameter
// mapping to an array of evaluated values.
type Model interface {
	// Name identifies the model, e.g. "delta" or "convolve(lorentzian, delta)".
	Name() string

	// Prefix is prepended to every parameter name of the model.
	Prefix() string

	// ParamNames returns the prefixed parameter names in a stable order.
	ParamNames() []string

	// IndependentVar names the domain axis, "x" unless configured otherwise.
	IndependentVar() string

	// Eval evaluates the model over x. Neither x nor p is modified.
	Eval(x []float64, p Params) ([]float64, error)
}

// Guesser derives starting parameters from observed data y sampled on x.
// x may be nil when the domain is unknown.
type Guesser interface {
	Guess(y, x []float64) (Params, error)
}

// Composite is a model built from two constituent models.
type Composite interface {
	Model
	Left() Model
	Right() Model
}

// Params maps parameter names to values.
type Params map[string]float64

// Get returns the value of name, or def when it is absent.
func (p Params) Get(name string, def float64) float64 {
	if v, ok := p[name]; ok {
		return v
	}
	return def
}

// Clone returns an independent copy of p.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Merge returns a new mapping holding p overlaid by other.
func (p Params) Merge(other Params) Params {
	out := p.Clone()
	for k, v := range other {
		out[k] = v
	}
	return out
}

// UnionNames concatenates name lists, keeping the first occurrence of each.
func UnionNames(lists ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, l := range lists {
		for _, n := range l {
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}
	return out
}
