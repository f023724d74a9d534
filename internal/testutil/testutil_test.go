package testutil

import (
	"math"
	"testing"
)

func TestSine(t *testing.T) {
	s := Sine(1000, 44100, 1.0, 64)
	if len(s) != 64 {
		t.Fatalf("len = %d, want 64", len(s))
	}
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	for i, v := range s {
		if v < -1 || v > 1 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
}

func TestNoiseReproducible(t *testing.T) {
	a := Noise(42, 0.5, 100)
	b := Noise(42, 0.5, 100)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
	}
}

func TestSilence(t *testing.T) {
	s := Silence(16)
	RequireAllZero(t, s, 0)
}

func TestUniformImage(t *testing.T) {
	img := UniformImage(4, 3, 200)
	b := img.Bounds()
	if b.Dx() != 4 || b.Dy() != 3 {
		t.Fatalf("bounds = %dx%d, want 4x3", b.Dx(), b.Dy())
	}
	for y := range 3 {
		for x := range 4 {
			if got := img.GrayAt(x, y).Y; got != 200 {
				t.Fatalf("pixel (%d,%d) = %d, want 200", x, y, got)
			}
		}
	}
}

func TestGradientImage(t *testing.T) {
	img := GradientImage(16, 2)
	if img.GrayAt(0, 0).Y != 0 {
		t.Fatalf("left edge = %d, want 0", img.GrayAt(0, 0).Y)
	}
	if img.GrayAt(15, 0).Y != 255 {
		t.Fatalf("right edge = %d, want 255", img.GrayAt(15, 0).Y)
	}
}

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1, 2, 3}, []float64{1, 2.5, 3})
	if err != nil {
		t.Fatalf("MaxAbsDiff() error = %v", err)
	}
	if d != 0.5 {
		t.Fatalf("MaxAbsDiff() = %v, want 0.5", d)
	}
	if _, err := MaxAbsDiff([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}
