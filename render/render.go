package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
)

// Render converts a linear-scale [bin][frame] magnitude grid into a
// grayscale image with time on the x axis and frequency increasing
// upward. By default magnitudes are shown in decibels relative to the
// grid peak, windowed to [floor, ceiling] dB and mapped linearly onto
// black..white.
func Render(mag [][]float64, opts ...Option) (*image.Gray, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	bins := len(mag)
	if bins == 0 || len(mag[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	frames := len(mag[0])
	for k, row := range mag {
		if len(row) != frames {
			return nil, fmt.Errorf("%w: row %d has %d columns, row 0 has %d", ErrEmptyGrid, k, len(row), frames)
		}
	}
	if !(cfg.floorDB < cfg.ceilingDB) {
		return nil, fmt.Errorf("render: floor %f dB must be below ceiling %f dB", cfg.floorDB, cfg.ceilingDB)
	}

	peak := 0.0
	minVal := math.Inf(1)
	for _, row := range mag {
		for _, v := range row {
			if v > peak {
				peak = v
			}
			if v < minVal {
				minVal = v
			}
		}
	}

	img := image.NewGray(image.Rect(0, 0, frames, bins))
	for k, row := range mag {
		// Highest bin on top.
		y := bins - 1 - k
		for j, v := range row {
			img.Pix[y*img.Stride+j] = cfg.level(v, peak, minVal)
		}
	}
	return img, nil
}

// WritePNG renders the grid and encodes it as PNG.
func WritePNG(w io.Writer, mag [][]float64, opts ...Option) error {
	img, err := Render(mag, opts...)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: png encoding failed: %w", err)
	}
	return nil
}

func (c *config) level(v, peak, minVal float64) uint8 {
	var t float64
	if c.linear {
		if span := peak - minVal; span > 0 {
			t = (v - minVal) / span
		}
	} else {
		if peak <= 0 || v <= 0 {
			return 0
		}
		db := 20 * math.Log10(v/peak)
		t = (db - c.floorDB) / (c.ceilingDB - c.floorDB)
	}
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 255
	}
	return uint8(math.Round(t * 255))
}
