package conv

import (
	"errors"
	"fmt"
	"strings"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput       = errors.New("conv: empty input")
	ErrEmptyKernel      = errors.New("conv: empty kernel")
	ErrLengthMismatch   = errors.New("conv: buffer length mismatch")
	ErrInvalidBlockSize = errors.New("conv: invalid block size")
	ErrKernelTooLong    = errors.New("conv: kernel longer than input")
	ErrUnknownMethod    = errors.New("conv: unknown method")
)

// Mode specifies the output mode for convolution.
type Mode int

const (
	// ModeFull returns the full convolution result with length len(a)+len(b)-1.
	ModeFull Mode = iota

	// ModeSame returns output with the same length as the first input.
	ModeSame

	// ModeValid returns only the portion where signals fully overlap,
	// with length max(len(a), len(b)) - min(len(a), len(b)) + 1.
	ModeValid
)

// Method selects the convolution engine.
type Method int

const (
	// MethodAuto uses direct convolution for kernels up to directThreshold
	// samples and FFT overlap-add above.
	MethodAuto Method = iota

	// MethodDirect always uses time-domain convolution.
	MethodDirect

	// MethodFFT always uses FFT overlap-add.
	MethodFFT
)

// directThreshold is the kernel length up to which direct convolution wins.
const directThreshold = 64

// simdThreshold is the run length from which vecmath block operations pay off.
const simdThreshold = 4

func (m Method) String() string {
	switch m {
	case MethodAuto:
		return "auto"
	case MethodDirect:
		return "direct"
	case MethodFFT:
		return "fft"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod converts "auto", "direct" or "fft" to a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return MethodAuto, nil
	case "direct":
		return MethodDirect, nil
	case "fft":
		return MethodFFT, nil
	default:
		return MethodAuto, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

func (m Method) useFFT(kernelLen int) bool {
	switch m {
	case MethodFFT:
		return true
	case MethodDirect:
		return false
	default:
		return kernelLen > directThreshold
	}
}

// Direct performs direct time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, len(a)+len(b)-1)
	DirectTo(result, a, b)
	return result, nil
}

// DirectTo performs direct convolution, writing to a pre-allocated destination.
// dst must have length len(a) + len(b) - 1.
func DirectTo(dst, a, b []float64) {
	clear(dst)

	m := len(b)
	if m < simdThreshold {
		for i, av := range a {
			for j, bv := range b {
				dst[i+j] += av * bv
			}
		}
		return
	}

	temp := make([]float64, m)
	for i, av := range a {
		vecmath.ScaleBlock(temp, b, av)
		vecmath.AddBlockInPlace(dst[i:i+m], temp)
	}
}

// Valid returns the valid part of the convolution of a with kernel,
// the len(a)-len(kernel)+1 samples computed without implicit zero padding.
// The engine is chosen with MethodAuto.
func Valid(a, kernel []float64) ([]float64, error) {
	return ValidWith(a, kernel, MethodAuto)
}

// ValidWith is Valid with an explicit engine.
func ValidWith(a, kernel []float64, method Method) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}
	if len(kernel) > len(a) {
		return nil, fmt.Errorf("%w: kernel %d, input %d", ErrKernelTooLong, len(kernel), len(a))
	}

	if method.useFFT(len(kernel)) {
		full, err := OverlapAddConvolve(a, kernel)
		if err != nil {
			return nil, err
		}
		return trimToMode(full, len(a), len(kernel), ModeValid), nil
	}

	out := make([]float64, len(a)-len(kernel)+1)
	ValidTo(out, a, kernel)
	return out, nil
}

// ValidTo computes the valid convolution directly into dst.
// dst must have length len(a) - len(kernel) + 1.
//
//	dst[i] = sum_j kernel[j] * a[i+m-1-j]
//
// Each output accumulates the kernel taps in ascending order.
func ValidTo(dst, a, kernel []float64) {
	clear(dst)

	m := len(kernel)
	l := len(dst)
	if l < simdThreshold {
		for i := range dst {
			for j, kv := range kernel {
				dst[i] += kv * a[i+m-1-j]
			}
		}
		return
	}

	temp := make([]float64, l)
	for j, kv := range kernel {
		off := m - 1 - j
		vecmath.ScaleBlock(temp, a[off:off+l], kv)
		vecmath.AddBlockInPlace(dst, temp)
	}
}

// Convolve performs full linear convolution with automatic algorithm selection.
func Convolve(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	// Keep the shorter operand as the kernel
	if len(b) > len(a) {
		a, b = b, a
	}

	if MethodAuto.useFFT(len(b)) {
		return OverlapAddConvolve(a, b)
	}
	return Direct(a, b)
}

// ConvolveMode performs convolution with specified output mode.
func ConvolveMode(a, b []float64, mode Mode) ([]float64, error) {
	full, err := Convolve(a, b)
	if err != nil {
		return nil, err
	}

	return trimToMode(full, len(a), len(b), mode), nil
}

// trimToMode extracts the appropriate portion of a full convolution result.
func trimToMode(full []float64, lenA, lenB int, mode Mode) []float64 {
	switch mode {
	case ModeSame:
		start := (lenB - 1) / 2
		return full[start : start+lenA]
	case ModeValid:
		if lenA >= lenB {
			return full[lenB-1 : lenA]
		}
		return full[lenA-1 : lenB]
	default:
		return full
	}
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
