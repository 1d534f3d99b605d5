// Package conv provides the convolution engines behind the line-shape
// operators.
//
// Two engines are available:
//
//   - Direct: O(N*M) time-domain convolution accelerated with vecmath block
//     operations, best for short kernels
//   - Overlap-add (OLA): FFT-based block convolution, efficient for long
//     resolution kernels
//
// # Usage
//
// Resolution convolution only needs the fully overlapping part:
//
//	out, err := conv.Valid(response, resolution)                 // auto engine
//	out, err := conv.ValidWith(response, resolution, conv.MethodFFT)
//
// Full and same-length outputs are available as well:
//
//	full, err := conv.Convolve(a, b)
//	same, err := conv.ConvolveMode(a, b, conv.ModeSame)
//
// For repeated convolution with the same kernel, create a reusable convolver:
//
//	c, err := conv.NewOverlapAdd(kernel, 0)
//	out, err := c.ProcessValid(signal)
//
// # Algorithm Selection
//
// [MethodAuto] uses direct convolution for kernels of up to 64 samples and
// overlap-add above. [MethodDirect] is exactly reproducible: every output
// accumulates the kernel taps in ascending order.
package conv
