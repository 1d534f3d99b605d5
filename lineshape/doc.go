// Package lineshape defines the evaluation capability shared by spectral
// line-shape models used in quasi-elastic scattering fits.
//
// A model maps a domain (an energy axis) and a parameter mapping to an array
// of evaluated values. Atomic models such as [delta.Model] compute a closed
// form; composite models such as [convolve.Model] combine two constituents.
// Both satisfy [Model], so any model can be nested wherever another is
// expected:
//
//	res := lorentzian.New(lineshape.WithPrefix("r_"))
//	elastic := delta.New(lineshape.WithPrefix("e_"))
//	m := convolve.New(res, elastic)
//	y, err := m.Eval(x, lineshape.Params{"r_sigma": 0.02, "e_amplitude": 1})
//
// # Parameters
//
// Parameters are looked up by name, including the model prefix. Missing
// parameters fall back to the model's defaults. Models never modify the
// domain or the parameter mapping passed to them.
//
// # Guessing
//
// Atomic models implement [Guesser], which derives starting parameters from
// observed data for an external optimizer.
//
// # Errors
//
// Failures are reported with the sentinel errors of this package, possibly
// wrapped with detail; test them with [errors.Is].
//
// [delta.Model]: github.com/cwbudde/algo-qens/lineshape/delta.Model
// [convolve.Model]: github.com/cwbudde/algo-qens/lineshape/convolve.Model
package lineshape
