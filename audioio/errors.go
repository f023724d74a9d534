package audioio

import "errors"

var (
	// ErrInvalidAudio reports audio data that violates the channel
	// consistency rules or cannot be decoded.
	ErrInvalidAudio = errors.New("audioio: invalid audio")

	// ErrUnsupportedFormat reports a file extension with no codec.
	ErrUnsupportedFormat = errors.New("audioio: unsupported format")
)
