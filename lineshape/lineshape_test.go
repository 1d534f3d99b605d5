package lineshape

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpacing(t *testing.T) {
	dx, err := Spacing([]float64{-1, -0.5, 0, 0.5, 1})
	require.NoError(t, err)
	require.Equal(t, 0.5, dx)

	dx, err = Spacing([]float64{3, 1})
	require.NoError(t, err)
	require.Equal(t, -2.0, dx)

	for _, x := range [][]float64{nil, {}, {1}} {
		_, err := Spacing(x)
		require.ErrorIs(t, err, ErrDomainTooShort)
	}
}

func TestNearest(t *testing.T) {
	x := []float64{-1, -0.5, 0, 0.5, 1}
	tests := []struct {
		v    float64
		want int
	}{
		{0.1, 2},
		{-0.25, 1}, // tie between -0.5 and 0
		{0.25, 2},  // tie between 0 and 0.5
		{-7, 0},
		{7, 4},
		{0.5, 3},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Nearest(x, tt.v), "v=%v", tt.v)
	}
	require.Equal(t, -1, Nearest(nil, 0))
	require.Equal(t, 0, Nearest(x, math.NaN()))
}

func TestSum(t *testing.T) {
	require.Equal(t, 0.0, Sum(nil))
	require.Equal(t, 6.0, Sum([]float64{1, 2, 3}))
	// left to right: (1e16 + 1) + -1e16 == 0
	require.Equal(t, 0.0, Sum([]float64{1e16, 1, -1e16}))
}

func TestParams(t *testing.T) {
	p := Params{"a": 1}
	require.Equal(t, 1.0, p.Get("a", 5))
	require.Equal(t, 5.0, p.Get("b", 5))
	require.Equal(t, 5.0, Params(nil).Get("a", 5))

	c := p.Clone()
	c["a"] = 2
	require.Equal(t, 1.0, p["a"])

	m := p.Merge(Params{"a": 3, "b": 4})
	require.Equal(t, Params{"a": 3, "b": 4}, m)
	require.Equal(t, Params{"a": 1}, p)
}

func TestUnionNames(t *testing.T) {
	got := UnionNames([]string{"a", "b"}, []string{"b", "c"}, nil, []string{"a", "d"})
	require.Equal(t, []string{"a", "b", "c", "d"}, got)
}

func TestOptions(t *testing.T) {
	cfg := ApplyOptions()
	require.Equal(t, Config{IndependentVar: "x"}, cfg)

	cfg = ApplyOptions(WithPrefix("r_"), WithIndependentVar("energy"), nil, WithIndependentVar(""))
	require.Equal(t, "r_", cfg.Prefix)
	require.Equal(t, "energy", cfg.IndependentVar)
	require.Equal(t, "r_sigma", cfg.Param("sigma"))
	require.Equal(t, []string{"r_a", "r_b"}, cfg.Params("a", "b"))
}

func TestArange(t *testing.T) {
	x := Arange(-1, 1.01, 0.5)
	require.InDeltaSlice(t, []float64{-1, -0.5, 0, 0.5, 1}, x, 1e-15)

	// numpy.arange(-0.1, 0.5, 0.0004) has 1500 samples
	x = Arange(-0.1, 0.5, 0.0004)
	require.Len(t, x, 1500)
	require.Less(t, x[len(x)-1], 0.5)

	require.Nil(t, Arange(1, 0, 0.1))
}

func TestLinspace(t *testing.T) {
	x := Linspace(0, 1, 5)
	require.InDeltaSlice(t, []float64{0, 0.25, 0.5, 0.75, 1}, x, 1e-15)
	require.Equal(t, 1.0, x[4])
	require.Equal(t, []float64{3}, Linspace(3, 9, 1))
	require.Nil(t, Linspace(0, 1, 0))
}
