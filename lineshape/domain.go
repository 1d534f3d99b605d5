package lineshape

import (
	"fmt"
	"math"
)

// Spacing returns the uniform spacing of x, (x[last]-x[0])/(len(x)-1).
// Non-uniform domains yield their mean spacing.
func Spacing(x []float64) (float64, error) {
	if len(x) < 2 {
		return 0, fmt.Errorf("%w: got %d", ErrDomainTooShort, len(x))
	}
	return (x[len(x)-1] - x[0]) / float64(len(x)-1), nil
}

// Nearest returns the index of the sample of x closest to v.
// When two samples are equally close the lower index wins.
// Returns -1 for an empty domain.
func Nearest(x []float64, v float64) int {
	if len(x) == 0 {
		return -1
	}
	best := 0
	bestDist := math.Abs(x[0] - v)
	for i := 1; i < len(x); i++ {
		// strict comparison keeps the first minimum
		if d := math.Abs(x[i] - v); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Sum adds the elements of v from left to right.
// Accumulation order is fixed so normalizations are reproducible.
func Sum(v []float64) float64 {
	s := 0.0
	for _, x := range v {
		s += x
	}
	return s
}

// Arange returns ceil((stop-start)/step) samples start, start+step, ...
// It returns nil unless step > 0 and stop > start.
func Arange(start, stop, step float64) []float64 {
	if !(step > 0) || !(stop > start) {
		return nil
	}
	n := int(math.Ceil((stop - start) / step))
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// Linspace returns n evenly spaced samples from start to stop inclusive.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}
