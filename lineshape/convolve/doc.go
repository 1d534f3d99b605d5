// Package convolve implements the resolution convolution operator.
//
// [Func] convolves a response array with a resolution array, keeping only
// fully overlapping samples and normalizing by the resolution area. [Model]
// composes a resolution model and a response model: the resolution is
// evaluated on the caller's domain, the response on a mirrored extension of
// it, and the two are combined with [Func].
//
// The resolution width is assumed independent of energy. Domains need not be
// symmetric, but they must contain both positive and negative samples.
package convolve
