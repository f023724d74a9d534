package watermark

import (
	"github.com/cwbudde/algo-dsp/dsp/window"

	"github.com/cwbudde/algo-watermark/dsp/mask"
	"github.com/cwbudde/algo-watermark/dsp/stft"
)

const (
	// DefaultStartHz is the lower edge of the reference embedding band.
	DefaultStartHz = 200.0
	// DefaultEndHz is the upper edge of the reference embedding band.
	DefaultEndHz = 10700.0
)

// Option configures an Embedder.
type Option func(*config)

type config struct {
	startHz     float64
	endHz       float64
	attenuation float64
	frameSize   int
	hopSize     int
	windowType  window.Type

	maskOpts         []mask.Option
	firstChannelOnly bool
	peakNormalize    bool
}

func defaultConfig() config {
	return config{
		startHz:     DefaultStartHz,
		endHz:       DefaultEndHz,
		attenuation: mask.DefaultAttenuation,
		frameSize:   stft.DefaultFrameSize,
		hopSize:     stft.DefaultHopSize,
		windowType:  window.TypeHann,
	}
}

// WithBand sets the embedding band edges in Hz.
func WithBand(startHz, endHz float64) Option {
	return func(c *config) {
		c.startHz = startHz
		c.endHz = endHz
	}
}

// WithAttenuation sets the attenuation factor in (0, 1]. Lower values
// yield a darker, more audible watermark.
func WithAttenuation(a float64) Option {
	return func(c *config) {
		c.attenuation = a
	}
}

// WithFrameSize sets the STFT analysis window length in samples.
func WithFrameSize(size int) Option {
	return func(c *config) {
		c.frameSize = size
	}
}

// WithHopSize sets the STFT hop between frames in samples.
func WithHopSize(hop int) Option {
	return func(c *config) {
		c.hopSize = hop
	}
}

// WithWindowType sets the STFT analysis window shape.
func WithWindowType(t window.Type) Option {
	return func(c *config) {
		c.windowType = t
	}
}

// WithBinaryMask switches the mask to a thresholded mapping:
// intensities below threshold attenuate fully, all others not at all.
func WithBinaryMask(threshold uint8) Option {
	return func(c *config) {
		c.maskOpts = append(c.maskOpts, mask.WithBinary(threshold))
	}
}

// WithInvertedPolarity makes bright image areas attenuate instead of
// dark ones.
func WithInvertedPolarity() Option {
	return func(c *config) {
		c.maskOpts = append(c.maskOpts, mask.WithInvertedPolarity())
	}
}

// WithMaskOptions appends further mask construction options, such as
// mask.WithNearestNeighbor or mask.WithFlipVertical.
func WithMaskOptions(opts ...mask.Option) Option {
	return func(c *config) {
		c.maskOpts = append(c.maskOpts, opts...)
	}
}

// WithFirstChannelOnly embeds the watermark into channel 0 only and
// passes the remaining channels through unchanged. The default applies
// the watermark identically to every channel.
func WithFirstChannelOnly() Option {
	return func(c *config) {
		c.firstChannelOnly = true
	}
}

// WithPeakNormalize always rescales the output to full scale. The
// default rescales only when the reconstruction exceeds the valid
// range.
func WithPeakNormalize() Option {
	return func(c *config) {
		c.peakNormalize = true
	}
}
