package convolve

import (
	"fmt"

	"github.com/cwbudde/algo-qens/dsp/conv"
	"github.com/cwbudde/algo-qens/lineshape"
)

// Func convolves response with resolution using the automatic engine.
// See FuncWith.
func Func(response, resolution []float64) ([]float64, error) {
	return FuncWith(response, resolution, conv.MethodAuto)
}

// FuncWith returns the valid convolution of response with resolution,
// divided by the resolution area:
//
//	out[n] = sum_m response[n+len(resolution)-1-m] * resolution[m] / sum(resolution)
//
// The output has len(response)-len(resolution)+1 samples, one fewer when
// len(response) is a multiple of len(resolution); in that case the last
// sample repeats the boundary and is dropped.
func FuncWith(response, resolution []float64, method conv.Method) ([]float64, error) {
	if len(resolution) == 0 {
		return nil, fmt.Errorf("%w: resolution", lineshape.ErrEmptyData)
	}
	if len(response) < len(resolution) {
		return nil, fmt.Errorf("%w: response %d, resolution %d",
			lineshape.ErrResolutionTooShort, len(response), len(resolution))
	}
	norm := lineshape.Sum(resolution)
	if norm == 0 {
		return nil, lineshape.ErrDegenerateResolution
	}

	c, err := conv.ValidWith(response, resolution, method)
	if err != nil {
		return nil, err
	}
	if len(response)%len(resolution) == 0 {
		c = c[:len(c)-1]
	}

	for i := range c {
		c[i] /= norm
	}
	return c, nil
}

// Extend mirrors x beyond its bounds. The positive samples, reversed and
// subtracted from min(x), are prepended; the negative samples, reversed and
// subtracted from max(x), are appended:
//
//	[-1, -0.5, 0, 0.5, 1] -> [-2, -1.5, -1, -0.5, 0, 0.5, 1, 1.5, 2]
//
// x is not modified.
func Extend(x []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("%w: empty domain", lineshape.ErrIllFormedDomain)
	}

	lo, hi := x[0], x[0]
	var pos, neg []float64
	for _, v := range x {
		lo = min(lo, v)
		hi = max(hi, v)
		switch {
		case v > 0:
			pos = append(pos, v)
		case v < 0:
			neg = append(neg, v)
		}
	}
	if len(pos) == 0 || len(neg) == 0 {
		return nil, fmt.Errorf("%w: %d positive, %d negative samples",
			lineshape.ErrIllFormedDomain, len(pos), len(neg))
	}

	out := make([]float64, 0, len(pos)+len(x)+len(neg))
	for i := len(pos) - 1; i >= 0; i-- {
		out = append(out, lo-pos[i])
	}
	out = append(out, x...)
	for i := len(neg) - 1; i >= 0; i-- {
		out = append(out, hi-neg[i])
	}
	return out, nil
}
