package conv

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-qens/internal/testutil"
)

func TestDirect(t *testing.T) {
	tests := []struct {
		name     string
		a        []float64
		b        []float64
		expected []float64
	}{
		{
			name:     "simple 3x3",
			a:        []float64{1, 2, 3},
			b:        []float64{1, 1, 1},
			expected: []float64{1, 3, 6, 5, 3},
		},
		{
			name:     "impulse",
			a:        []float64{1, 2, 3, 4, 5},
			b:        []float64{1},
			expected: []float64{1, 2, 3, 4, 5},
		},
		{
			name:     "delayed impulse",
			a:        []float64{1, 2, 3, 4, 5},
			b:        []float64{0, 0, 1},
			expected: []float64{0, 0, 1, 2, 3, 4, 5},
		},
		{
			name:     "symmetric",
			a:        []float64{1, 2, 1},
			b:        []float64{1, 2, 1},
			expected: []float64{1, 4, 6, 4, 1},
		},
		{
			name:     "vectorized kernel",
			a:        []float64{1, 0, 0, 2},
			b:        []float64{1, 2, 3, 4},
			expected: []float64{1, 2, 3, 6, 4, 6, 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Direct(tt.a, tt.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, result, tt.expected, 1e-12)
		})
	}
}

func TestDirectErrors(t *testing.T) {
	_, err := Direct([]float64{}, []float64{1, 2})
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}

	_, err = Direct([]float64{1, 2}, []float64{})
	if !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("expected ErrEmptyKernel, got %v", err)
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		name     string
		a        []float64
		kernel   []float64
		expected []float64
	}{
		{"box", []float64{1, 2, 3, 4, 5}, []float64{1, 1, 1}, []float64{6, 9, 12}},
		{"equal length", []float64{1, 2, 3}, []float64{4, 5, 6}, []float64{1*6 + 2*5 + 3*4}},
		{"asymmetric kernel", []float64{1, 2, 3, 4}, []float64{1, 0}, []float64{2, 3, 4}},
		{"single tap", []float64{3, 1, 2}, []float64{2}, []float64{6, 2, 4}},
		{
			"vectorized output",
			[]float64{1, 2, 3, 4, 5, 6, 7, 8},
			[]float64{1, -1},
			[]float64{1, 1, 1, 1, 1, 1, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, m := range []Method{MethodAuto, MethodDirect, MethodFFT} {
				got, err := ValidWith(tt.a, tt.kernel, m)
				if err != nil {
					t.Fatalf("%v: unexpected error: %v", m, err)
				}
				testutil.RequireSliceNearlyEqual(t, got, tt.expected, 1e-9)
			}
		})
	}
}

func TestValidMatchesFullTrim(t *testing.T) {
	a := testutil.DeterministicNoise(7, 1, 300)
	kernel := testutil.DeterministicNoise(8, 1, 17)

	full, err := Direct(a, kernel)
	if err != nil {
		t.Fatal(err)
	}
	want := full[len(kernel)-1 : len(a)]

	got, err := ValidWith(a, kernel, MethodDirect)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestValidMethodsAgree(t *testing.T) {
	a := testutil.DeterministicNoise(1, 1, 2000)
	kernel := testutil.DeterministicNoise(2, 1, 150)

	direct, err := ValidWith(a, kernel, MethodDirect)
	if err != nil {
		t.Fatal(err)
	}
	fft, err := ValidWith(a, kernel, MethodFFT)
	if err != nil {
		t.Fatal(err)
	}
	auto, err := Valid(a, kernel)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, fft, direct, 1e-9)
	testutil.RequireSliceNearlyEqual(t, auto, direct, 1e-9)
}

func TestValidErrors(t *testing.T) {
	if _, err := Valid(nil, []float64{1}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if _, err := Valid([]float64{1}, nil); !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("expected ErrEmptyKernel, got %v", err)
	}
	if _, err := Valid([]float64{1, 2}, []float64{1, 2, 3}); !errors.Is(err, ErrKernelTooLong) {
		t.Errorf("expected ErrKernelTooLong, got %v", err)
	}
}

func TestValidDoesNotModifyInputs(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5, 6}
	kernel := []float64{0.5, 0.25, 0.25, 1}
	aCopy := append([]float64(nil), a...)
	kCopy := append([]float64(nil), kernel...)

	if _, err := Valid(a, kernel); err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, a, aCopy, 0)
	testutil.RequireSliceNearlyEqual(t, kernel, kCopy, 0)
}

func TestConvolveAutoSelection(t *testing.T) {
	signal := make([]float64, 1000)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * float64(i) / 100)
	}

	for _, kernelLen := range []int{3, 64, 65, 200} {
		kernel := testutil.DeterministicNoise(int64(kernelLen), 1, kernelLen)

		auto, err := Convolve(signal, kernel)
		if err != nil {
			t.Fatalf("kernel %d: %v", kernelLen, err)
		}
		direct, err := Direct(signal, kernel)
		if err != nil {
			t.Fatalf("kernel %d: %v", kernelLen, err)
		}
		testutil.RequireSliceNearlyEqual(t, auto, direct, 1e-9)
	}
}

func TestConvolveSwapsOperands(t *testing.T) {
	a := []float64{1, 2}
	b := []float64{1, 1, 1, 1}

	ab, err := Convolve(a, b)
	if err != nil {
		t.Fatal(err)
	}
	ba, err := Convolve(b, a)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, ab, ba, 1e-12)
}

func TestConvolveMode(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{1, 1, 1}

	tests := []struct {
		mode     Mode
		expected []float64
	}{
		{ModeFull, []float64{1, 3, 6, 9, 12, 9, 5}},
		{ModeSame, []float64{3, 6, 9, 12, 9}},
		{ModeValid, []float64{6, 9, 12}},
	}

	for _, tt := range tests {
		got, err := ConvolveMode(a, b, tt.mode)
		if err != nil {
			t.Fatalf("mode %d: %v", tt.mode, err)
		}
		testutil.RequireSliceNearlyEqual(t, got, tt.expected, 1e-12)
	}
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in   string
		want Method
	}{
		{"", MethodAuto},
		{"auto", MethodAuto},
		{"Direct", MethodDirect},
		{" fft ", MethodFFT},
	}
	for _, tt := range tests {
		got, err := ParseMethod(tt.in)
		if err != nil {
			t.Fatalf("ParseMethod(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseMethod(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if tt.in != "" && got.String() == "" {
			t.Errorf("empty String() for %v", got)
		}
	}

	if _, err := ParseMethod("winograd"); !errors.Is(err, ErrUnknownMethod) {
		t.Errorf("expected ErrUnknownMethod, got %v", err)
	}
}

func TestNextPowerOf2(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, 1}, {1, 1}, {2, 2}, {3, 4}, {255, 256}, {256, 256}, {257, 512},
	}
	for _, tt := range tests {
		if got := nextPowerOf2(tt.in); got != tt.want {
			t.Errorf("nextPowerOf2(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
