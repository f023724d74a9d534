package mask

import (
	"fmt"
	"image"
	stddraw "image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
)

const (
	// DefaultAttenuation is the reference attenuation factor.
	DefaultAttenuation = 0.05
	// DefaultBinaryThreshold is the intensity cutoff for binary mode.
	DefaultBinaryThreshold = 128
)

// Mask is a grid of attenuation weights in [0, 1], indexed
// [row][column] where rows correspond to frequency bins (row 0 = lowest
// bin of the target band) and columns to time frames. Weight 1 means no
// attenuation, weights toward 0 attenuate.
type Mask struct {
	weights [][]float64
}

// Rows returns the number of bin rows.
func (m *Mask) Rows() int { return len(m.weights) }

// Cols returns the number of frame columns.
func (m *Mask) Cols() int {
	if len(m.weights) == 0 {
		return 0
	}
	return len(m.weights[0])
}

// Weight returns the weight at the given row and column.
func (m *Mask) Weight(row, col int) float64 { return m.weights[row][col] }

// Uniform returns a rows x cols mask filled with a single weight.
func Uniform(rows, cols int, weight float64) (*Mask, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidTargetShape, rows, cols)
	}
	if math.IsNaN(weight) || weight < 0 || weight > 1 {
		return nil, fmt.Errorf("mask: uniform weight must be in [0, 1]: %f", weight)
	}
	w := make([][]float64, rows)
	for r := range w {
		w[r] = make([]float64, cols)
		for c := range w[r] {
			w[r][c] = weight
		}
	}
	return &Mask{weights: w}, nil
}

// Build converts a watermark image into a rows x cols attenuation mask.
//
// The image is reduced to grayscale, resampled to exactly rows x cols
// regardless of its aspect ratio (distortion is accepted), mirrored
// horizontally along the time axis, and mapped to weights. With the
// default linear mapping an intensity of 0 yields the attenuation
// factor and 255 yields 1; binary mode thresholds instead. Dark pixels
// attenuate unless the polarity is inverted.
func Build(img image.Image, rows, cols int, opts ...Option) (*Mask, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidTargetShape, rows, cols)
	}
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrEmptyImage)
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyImage, bounds.Dx(), bounds.Dy())
	}
	if math.IsNaN(cfg.attenuation) || cfg.attenuation <= 0 || cfg.attenuation > 1 {
		return nil, fmt.Errorf("%w: %f not in (0, 1]", ErrInvalidAttenuation, cfg.attenuation)
	}

	gray := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	stddraw.Draw(gray, gray.Bounds(), img, bounds.Min, stddraw.Src)

	scaled := image.NewGray(image.Rect(0, 0, cols, rows))
	cfg.scaler.Scale(scaled, scaled.Bounds(), gray, gray.Bounds(), xdraw.Src, nil)

	weights := make([][]float64, rows)
	for r := range weights {
		weights[r] = make([]float64, cols)

		y := r
		if cfg.flipVertical {
			y = rows - 1 - r
		}

		for c := range weights[r] {
			// Horizontal mirror compensates the time axis reading
			// direction of the rendered spectrogram.
			intensity := scaled.GrayAt(cols-1-c, y).Y
			if cfg.invertPolarity {
				intensity = 255 - intensity
			}
			weights[r][c] = cfg.mapIntensity(intensity)
		}
	}

	return &Mask{weights: weights}, nil
}

func (c *config) mapIntensity(intensity uint8) float64 {
	a := c.attenuation
	if c.binary {
		if intensity < c.threshold {
			return a
		}
		return 1
	}
	switch intensity {
	case 0:
		return a
	case 255:
		return 1
	default:
		return a + (1-a)*float64(intensity)/255
	}
}
