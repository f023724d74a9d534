package mask

import "errors"

var (
	// ErrEmptyImage reports a nil or zero-sized watermark image.
	ErrEmptyImage = errors.New("mask: watermark image is empty")

	// ErrInvalidTargetShape reports a degenerate target shape with zero
	// rows or columns.
	ErrInvalidTargetShape = errors.New("mask: target shape must have at least one row and column")

	// ErrInvalidAttenuation reports an attenuation factor outside (0, 1].
	ErrInvalidAttenuation = errors.New("mask: attenuation factor out of range")
)
