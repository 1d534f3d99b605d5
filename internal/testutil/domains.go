package testutil

import "math/rand"

// SymmetricDomain returns 2*half+1 samples spaced by step and centred on 0.
func SymmetricDomain(half int, step float64) []float64 {
	out := make([]float64, 2*half+1)
	for i := range out {
		out[i] = float64(i-half) * step
	}
	return out
}

// DeterministicNoise generates uniform values in [-amplitude, amplitude)
// with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

// Scaled returns a copy of v multiplied by k.
func Scaled(v []float64, k float64) []float64 {
	out := make([]float64, len(v))
	for i := range v {
		out[i] = v[i] * k
	}
	return out
}
