package stft

import "github.com/cwbudde/algo-dsp/dsp/window"

// Option configures a Transform.
type Option func(*config)

type config struct {
	frameSize  int
	hopSize    int
	windowType window.Type
}

func defaultConfig() config {
	return config{
		frameSize:  DefaultFrameSize,
		hopSize:    DefaultHopSize,
		windowType: window.TypeHann,
	}
}

// WithFrameSize sets the analysis window length in samples.
func WithFrameSize(size int) Option {
	return func(c *config) {
		c.frameSize = size
	}
}

// WithHopSize sets the hop between consecutive frames in samples.
func WithHopSize(hop int) Option {
	return func(c *config) {
		c.hopSize = hop
	}
}

// WithWindowType sets the analysis window shape.
func WithWindowType(t window.Type) Option {
	return func(c *config) {
		c.windowType = t
	}
}
