package mask

import (
	"errors"
	"image"
	"math"
	"testing"

	"github.com/cwbudde/algo-watermark/internal/testutil"
)

func TestBuildShapeContract(t *testing.T) {
	tests := []struct {
		name string
		imgW int
		imgH int
		rows int
		cols int
	}{
		{name: "identity", imgW: 16, imgH: 16, rows: 16, cols: 16},
		{name: "stretch wide", imgW: 16, imgH: 16, rows: 8, cols: 200},
		{name: "stretch tall", imgW: 16, imgH: 16, rows: 488, cols: 87},
		{name: "single row", imgW: 16, imgH: 16, rows: 1, cols: 10},
		{name: "single column", imgW: 16, imgH: 16, rows: 10, cols: 1},
		{name: "upscale tiny image", imgW: 1, imgH: 1, rows: 40, cols: 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Build(testutil.UniformImage(tt.imgW, tt.imgH, 128), tt.rows, tt.cols)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if m.Rows() != tt.rows || m.Cols() != tt.cols {
				t.Fatalf("shape = %dx%d, want %dx%d", m.Rows(), m.Cols(), tt.rows, tt.cols)
			}
		})
	}
}

func TestBuildWhiteImageNoAttenuation(t *testing.T) {
	m, err := Build(testutil.UniformImage(16, 16, 255), 32, 64)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	for r := range m.Rows() {
		for c := range m.Cols() {
			if got := m.Weight(r, c); got != 1.0 {
				t.Fatalf("weight (%d,%d) = %v, want exactly 1.0", r, c, got)
			}
		}
	}
}

func TestBuildBlackImageFullAttenuation(t *testing.T) {
	const a = 0.05
	m, err := Build(testutil.UniformImage(16, 16, 0), 32, 64, WithAttenuation(a))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	for r := range m.Rows() {
		for c := range m.Cols() {
			if got := m.Weight(r, c); got != a {
				t.Fatalf("weight (%d,%d) = %v, want exactly %v", r, c, got, a)
			}
		}
	}
}

func TestBuildLinearMapping(t *testing.T) {
	const a = 0.2
	m, err := Build(testutil.UniformImage(8, 8, 51), 8, 8, WithAttenuation(a))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	want := a + (1-a)*51.0/255
	for r := range m.Rows() {
		for c := range m.Cols() {
			if diff := math.Abs(m.Weight(r, c) - want); diff > 1e-12 {
				t.Fatalf("weight (%d,%d) = %v, want %v", r, c, m.Weight(r, c), want)
			}
		}
	}
}

func TestBuildHorizontalMirror(t *testing.T) {
	// Gradient ramps dark to bright left to right; after the mirror the
	// first column must carry the bright (high weight) end.
	img := testutil.GradientImage(64, 8)
	m, err := Build(img, 8, 64, WithNearestNeighbor())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if first, last := m.Weight(0, 0), m.Weight(0, m.Cols()-1); first <= last {
		t.Fatalf("mirror missing: first col weight %v <= last col weight %v", first, last)
	}
	if got := m.Weight(0, 0); got != 1.0 {
		t.Fatalf("first column weight = %v, want 1.0 (mirrored bright edge)", got)
	}
	if got := m.Weight(0, m.Cols()-1); got != DefaultAttenuation {
		t.Fatalf("last column weight = %v, want %v (mirrored dark edge)", got, DefaultAttenuation)
	}

	for c := 1; c < m.Cols(); c++ {
		if m.Weight(0, c) > m.Weight(0, c-1) {
			t.Fatalf("weights not monotonically decreasing at column %d", c)
		}
	}
}

func TestBuildBinaryMode(t *testing.T) {
	const a = 0.1
	tests := []struct {
		intensity uint8
		want      float64
	}{
		{intensity: 0, want: a},
		{intensity: 127, want: a},
		{intensity: 128, want: 1},
		{intensity: 255, want: 1},
	}
	for _, tt := range tests {
		m, err := Build(testutil.UniformImage(4, 4, tt.intensity), 4, 4,
			WithAttenuation(a), WithBinary(DefaultBinaryThreshold))
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if got := m.Weight(0, 0); got != tt.want {
			t.Fatalf("intensity %d: weight = %v, want %v", tt.intensity, got, tt.want)
		}
	}
}

func TestBuildInvertedPolarity(t *testing.T) {
	m, err := Build(testutil.UniformImage(4, 4, 255), 4, 4,
		WithAttenuation(0.05), WithInvertedPolarity())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got := m.Weight(0, 0); got != 0.05 {
		t.Fatalf("inverted white weight = %v, want 0.05", got)
	}

	m, err = Build(testutil.UniformImage(4, 4, 0), 4, 4,
		WithAttenuation(0.05), WithInvertedPolarity())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got := m.Weight(0, 0); got != 1.0 {
		t.Fatalf("inverted black weight = %v, want 1.0", got)
	}
}

func TestBuildFlipVertical(t *testing.T) {
	// Top half black, bottom half white.
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for y := range 8 {
		for x := range 8 {
			if y >= 4 {
				img.Pix[y*img.Stride+x] = 255
			}
		}
	}

	m, err := Build(img, 8, 8, WithNearestNeighbor())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if m.Weight(0, 0) != DefaultAttenuation {
		t.Fatalf("row 0 weight = %v, want %v (image top, dark)", m.Weight(0, 0), DefaultAttenuation)
	}
	if m.Weight(7, 0) != 1.0 {
		t.Fatalf("row 7 weight = %v, want 1.0 (image bottom, bright)", m.Weight(7, 0))
	}

	flipped, err := Build(img, 8, 8, WithNearestNeighbor(), WithFlipVertical())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if flipped.Weight(0, 0) != 1.0 {
		t.Fatalf("flipped row 0 weight = %v, want 1.0", flipped.Weight(0, 0))
	}
	if flipped.Weight(7, 0) != DefaultAttenuation {
		t.Fatalf("flipped row 7 weight = %v, want %v", flipped.Weight(7, 0), DefaultAttenuation)
	}
}

func TestBuildErrors(t *testing.T) {
	valid := testutil.UniformImage(8, 8, 128)
	tests := []struct {
		name    string
		img     image.Image
		rows    int
		cols    int
		opts    []Option
		wantErr error
	}{
		{name: "nil image", img: nil, rows: 4, cols: 4, wantErr: ErrEmptyImage},
		{name: "zero size image", img: image.NewGray(image.Rect(0, 0, 0, 0)), rows: 4, cols: 4, wantErr: ErrEmptyImage},
		{name: "zero rows", img: valid, rows: 0, cols: 4, wantErr: ErrInvalidTargetShape},
		{name: "zero cols", img: valid, rows: 4, cols: 0, wantErr: ErrInvalidTargetShape},
		{name: "negative rows", img: valid, rows: -1, cols: 4, wantErr: ErrInvalidTargetShape},
		{name: "zero attenuation", img: valid, rows: 4, cols: 4, opts: []Option{WithAttenuation(0)}, wantErr: ErrInvalidAttenuation},
		{name: "attenuation above one", img: valid, rows: 4, cols: 4, opts: []Option{WithAttenuation(1.5)}, wantErr: ErrInvalidAttenuation},
		{name: "NaN attenuation", img: valid, rows: 4, cols: 4, opts: []Option{WithAttenuation(math.NaN())}, wantErr: ErrInvalidAttenuation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.img, tt.rows, tt.cols, tt.opts...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Build() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuildAttenuationOrdering(t *testing.T) {
	// Lower attenuation factors must never raise a weight.
	img := testutil.GradientImage(32, 8)
	strong, err := Build(img, 8, 32, WithAttenuation(0.01))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	weak, err := Build(img, 8, 32, WithAttenuation(0.5))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	for r := range strong.Rows() {
		for c := range strong.Cols() {
			if strong.Weight(r, c) > weak.Weight(r, c) {
				t.Fatalf("(%d,%d): weight %v with a=0.01 exceeds %v with a=0.5",
					r, c, strong.Weight(r, c), weak.Weight(r, c))
			}
		}
	}
}

func TestUniform(t *testing.T) {
	m, err := Uniform(3, 5, 1.0)
	if err != nil {
		t.Fatalf("Uniform() error = %v", err)
	}
	if m.Rows() != 3 || m.Cols() != 5 {
		t.Fatalf("shape = %dx%d, want 3x5", m.Rows(), m.Cols())
	}
	if m.Weight(2, 4) != 1.0 {
		t.Fatalf("weight = %v, want 1.0", m.Weight(2, 4))
	}

	if _, err := Uniform(0, 5, 1.0); !errors.Is(err, ErrInvalidTargetShape) {
		t.Fatalf("Uniform(0,5) error = %v, want ErrInvalidTargetShape", err)
	}
	if _, err := Uniform(3, 5, 1.5); err == nil {
		t.Fatal("expected error for out-of-range weight")
	}
}
