package audioio

import (
	"errors"
	"fmt"
	"io"

	"github.com/mewkiz/flac"
)

// ReadFLAC decodes a FLAC stream into a Clip.
func ReadFLAC(r io.Reader) (*Clip, error) {
	stream, err := flac.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: flac parse failed: %v", ErrInvalidAudio, err)
	}

	info := stream.Info
	numChans := int(info.NChannels)
	bitDepth := int(info.BitsPerSample)
	if numChans <= 0 || bitDepth <= 0 {
		return nil, fmt.Errorf("%w: missing stream information", ErrInvalidAudio)
	}

	scale := 1 / float64(int64(1)<<(bitDepth-1))
	channels := make([][]float64, numChans)
	if info.NSamples > 0 {
		for ch := range channels {
			channels[ch] = make([]float64, 0, info.NSamples)
		}
	}

	for {
		frame, err := stream.ParseNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: flac frame decode failed: %v", ErrInvalidAudio, err)
		}
		if len(frame.Subframes) != numChans {
			return nil, fmt.Errorf("%w: frame has %d subframes, stream declares %d channels", ErrInvalidAudio, len(frame.Subframes), numChans)
		}
		for ch, sub := range frame.Subframes {
			for _, s := range sub.Samples {
				channels[ch] = append(channels[ch], float64(s)*scale)
			}
		}
	}

	if len(channels[0]) == 0 {
		return nil, fmt.Errorf("%w: zero samples", ErrInvalidAudio)
	}

	return &Clip{
		Channels:   channels,
		SampleRate: int(info.SampleRate),
		BitDepth:   bitDepth,
	}, nil
}
