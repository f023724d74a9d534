package watermark

import "errors"

var (
	// ErrShapeMismatch reports a mask whose shape disagrees with the
	// band and frame it is applied to. The mask builder sizes masks from
	// the same parameters, so this signals an internal contract breach.
	ErrShapeMismatch = errors.New("watermark: mask shape does not match band and frame count")

	// ErrChannelMismatch reports input channels of differing lengths.
	ErrChannelMismatch = errors.New("watermark: channels differ in length")
)
