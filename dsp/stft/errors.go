package stft

import "errors"

var (
	// ErrEmptySignal reports a forward or inverse transform over zero
	// samples or zero frames.
	ErrEmptySignal = errors.New("stft: signal must not be empty")

	// ErrReconstructionLength reports a requested output length that the
	// overlap-add synthesis cannot cover. It signals an internal contract
	// breach rather than bad user input.
	ErrReconstructionLength = errors.New("stft: reconstruction length out of range")
)
