package audioio

import "fmt"

// Clip is decoded audio: one float64 slice per channel with samples in
// [-1, 1], plus the sample rate and the source bit depth.
type Clip struct {
	Channels   [][]float64
	SampleRate int
	BitDepth   int
}

// NumChannels returns the channel count.
func (c *Clip) NumChannels() int { return len(c.Channels) }

// Len returns the per-channel sample count.
func (c *Clip) Len() int {
	if len(c.Channels) == 0 {
		return 0
	}
	return len(c.Channels[0])
}

// Validate checks the channel-consistency invariant: at least one
// channel, all channels equally long and non-empty, positive sample
// rate.
func (c *Clip) Validate() error {
	if c == nil || len(c.Channels) == 0 {
		return fmt.Errorf("%w: no channels", ErrInvalidAudio)
	}
	n := len(c.Channels[0])
	if n == 0 {
		return fmt.Errorf("%w: zero samples", ErrInvalidAudio)
	}
	for i, ch := range c.Channels {
		if len(ch) != n {
			return fmt.Errorf("%w: channel %d has %d samples, channel 0 has %d", ErrInvalidAudio, i, len(ch), n)
		}
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidAudio, c.SampleRate)
	}
	return nil
}

// Mono returns a single channel: channel 0 for mono clips, the mean of
// all channels otherwise.
func (c *Clip) Mono() []float64 {
	if len(c.Channels) == 1 {
		return c.Channels[0]
	}
	n := c.Len()
	out := make([]float64, n)
	for _, ch := range c.Channels {
		for i, v := range ch {
			out[i] += v
		}
	}
	inv := 1 / float64(len(c.Channels))
	for i := range out {
		out[i] *= inv
	}
	return out
}
