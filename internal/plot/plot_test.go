package plot

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-qens/lineshape"
	"github.com/cwbudde/algo-qens/lineshape/lorentzian"
)

func TestXYs(t *testing.T) {
	xy, err := XYs([]float64{0, 1, 2}, []float64{5, 6})
	if err != nil {
		t.Fatalf("XYs: %v", err)
	}
	if len(xy) != 2 || xy[1].X != 1 || xy[1].Y != 6 {
		t.Fatalf("unexpected points %v", xy)
	}

	if _, err := XYs([]float64{0}, []float64{1, 2}); err == nil {
		t.Fatal("expected error for too many values")
	}
}

func TestNewNoCurves(t *testing.T) {
	if _, err := New([]float64{0, 1}, nil, Options{}); !errors.Is(err, ErrNoCurves) {
		t.Fatalf("expected ErrNoCurves, got %v", err)
	}
}

func TestSavePNG(t *testing.T) {
	x := lineshape.Linspace(-1, 1, 201)
	curves := []Curve{
		{Name: "narrow", Y: lorentzian.Func(x, 1, 0, 0.05)},
		{Name: "wide", Y: lorentzian.Func(x, 1, 0.2, 0.2)},
	}

	path := filepath.Join(t.TempDir(), "lineshape.png")
	err := Save(path, x, curves, Options{Title: "Lorentzians", XLabel: "E (meV)", Width: 4, Height: 3})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("empty plot file")
	}
}
