package audioio

import (
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// ReadWAV decodes a WAV stream into a Clip.
func ReadWAV(r io.ReadSeeker) (*Clip, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("%w: not a valid WAV stream", ErrInvalidAudio)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("audioio: wav decode failed: %w", err)
	}
	if buf.Format == nil || buf.Format.NumChannels <= 0 {
		return nil, fmt.Errorf("%w: missing format information", ErrInvalidAudio)
	}

	numChans := buf.Format.NumChannels
	bitDepth := int(decoder.BitDepth)
	if bitDepth <= 0 {
		bitDepth = 16
	}

	frames := len(buf.Data) / numChans
	if frames == 0 {
		return nil, fmt.Errorf("%w: zero samples", ErrInvalidAudio)
	}

	scale := 1 / float64(int64(1)<<(bitDepth-1))
	channels := make([][]float64, numChans)
	for ch := range channels {
		channels[ch] = make([]float64, frames)
	}
	for i := range frames {
		for ch := range numChans {
			channels[ch][i] = float64(buf.Data[i*numChans+ch]) * scale
		}
	}

	return &Clip{
		Channels:   channels,
		SampleRate: buf.Format.SampleRate,
		BitDepth:   bitDepth,
	}, nil
}

// WriteWAV encodes a Clip as PCM WAV. A zero BitDepth defaults to 16.
func WriteWAV(w io.WriteSeeker, c *Clip) error {
	if err := c.Validate(); err != nil {
		return err
	}

	bitDepth := c.BitDepth
	if bitDepth == 0 {
		bitDepth = 16
	}
	if bitDepth != 8 && bitDepth != 16 && bitDepth != 24 && bitDepth != 32 {
		return fmt.Errorf("%w: unsupported bit depth %d", ErrInvalidAudio, bitDepth)
	}

	numChans := c.NumChannels()
	frames := c.Len()
	fullScale := float64(int64(1) << (bitDepth - 1))
	maxSample := int(fullScale) - 1
	minSample := -int(fullScale)

	data := make([]int, frames*numChans)
	for i := range frames {
		for ch := range numChans {
			v := int(math.Round(c.Channels[ch][i] * fullScale))
			if v > maxSample {
				v = maxSample
			} else if v < minSample {
				v = minSample
			}
			data[i*numChans+ch] = v
		}
	}

	enc := wav.NewEncoder(w, c.SampleRate, bitDepth, numChans, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: numChans, SampleRate: c.SampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("audioio: wav encode failed: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("audioio: wav finalize failed: %w", err)
	}
	return nil
}
