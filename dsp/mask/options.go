package mask

import xdraw "golang.org/x/image/draw"

// Option configures mask construction.
type Option func(*config)

type config struct {
	attenuation    float64
	binary         bool
	threshold      uint8
	invertPolarity bool
	flipVertical   bool
	scaler         xdraw.Scaler
}

func defaultConfig() config {
	return config{
		attenuation: DefaultAttenuation,
		threshold:   DefaultBinaryThreshold,
		scaler:      xdraw.BiLinear,
	}
}

// WithAttenuation sets the attenuation factor in (0, 1]. Values near 0
// produce a darker, more audible watermark.
func WithAttenuation(a float64) Option {
	return func(c *config) {
		c.attenuation = a
	}
}

// WithBinary switches to the thresholded mapping: intensities below
// threshold map to the attenuation factor, all others to 1.
func WithBinary(threshold uint8) Option {
	return func(c *config) {
		c.binary = true
		c.threshold = threshold
	}
}

// WithInvertedPolarity makes bright pixels attenuate instead of dark
// ones.
func WithInvertedPolarity() Option {
	return func(c *config) {
		c.invertPolarity = true
	}
}

// WithFlipVertical mirrors the mask along the frequency axis, for
// renderers that draw bin 0 at the top.
func WithFlipVertical() Option {
	return func(c *config) {
		c.flipVertical = true
	}
}

// WithNearestNeighbor resamples with nearest-neighbor interpolation
// instead of bilinear, preserving hard edges in the source image.
func WithNearestNeighbor() Option {
	return func(c *config) {
		c.scaler = xdraw.NearestNeighbor
	}
}
