package cli

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-qens/dsp/conv"
	"github.com/cwbudde/algo-qens/lineshape"
	"github.com/cwbudde/algo-qens/lineshape/convolve"
	"github.com/cwbudde/algo-qens/lineshape/delta"
	"github.com/cwbudde/algo-qens/lineshape/lorentzian"
)

// Prefixes given to the operands of a convolution.
const (
	resolutionPrefix = "r_"
	responsePrefix   = "m_"
)

var errUnknownModel = errors.New("unknown model")

type factory func(opts ...lineshape.Option) lineshape.Model

var atomicModels = map[string]factory{
	"delta":      func(opts ...lineshape.Option) lineshape.Model { return delta.New(opts...) },
	"lorentzian": func(opts ...lineshape.Option) lineshape.Model { return lorentzian.New(opts...) },
}

// modelDef names the model to build; operands apply to "convolve" only.
type modelDef struct {
	name       string
	resolution string
	response   string
	method     conv.Method
}

func atomicNames() []string {
	names := make([]string, 0, len(atomicModels))
	for n := range atomicModels {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func newAtomic(name string, opts ...lineshape.Option) (lineshape.Model, error) {
	f, ok := atomicModels[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %s)", errUnknownModel, name, strings.Join(atomicNames(), ", "))
	}
	return f(opts...), nil
}

func buildModel(def modelDef) (lineshape.Model, error) {
	if def.name != "convolve" {
		return newAtomic(def.name)
	}

	res, err := newAtomic(def.resolution, lineshape.WithPrefix(resolutionPrefix))
	if err != nil {
		return nil, fmt.Errorf("resolution: %w", err)
	}
	resp, err := newAtomic(def.response, lineshape.WithPrefix(responsePrefix))
	if err != nil {
		return nil, fmt.Errorf("response: %w", err)
	}
	return convolve.New(res, resp, convolve.WithMethod(def.method)), nil
}

// parseParams converts name=value pairs to Params, rejecting names the model
// does not know.
func parseParams(m lineshape.Model, raw map[string]string) (lineshape.Params, error) {
	known := make(map[string]struct{})
	for _, n := range m.ParamNames() {
		known[n] = struct{}{}
	}

	p := make(lineshape.Params, len(raw))
	for k, v := range raw {
		if _, ok := known[k]; !ok {
			return nil, fmt.Errorf("unknown parameter %q for %s (have %s)", k, m.Name(), strings.Join(m.ParamNames(), ", "))
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %w", k, err)
		}
		p[k] = f
	}
	return p, nil
}
