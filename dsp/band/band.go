package band

import (
	"fmt"
	"math"
)

// Band is a contiguous range of FFT bins selected from a frequency range
// in Hz. Start is inclusive, End is exclusive.
type Band struct {
	StartHz float64
	EndHz   float64
	Start   int
	End     int
}

// Width returns the number of bins covered by the band.
func (b Band) Width() int {
	return b.End - b.Start
}

// Contains reports whether bin lies inside the band.
func (b Band) Contains(bin int) bool {
	return bin >= b.Start && bin < b.End
}

// Map converts a frequency range in Hz into a bin range for an FFT of the
// given frame size at the given sample rate.
//
// The frequency resolution is sampleRate/frameSize; edge frequencies are
// rounded to the nearest bin and clamped to [0, frameSize/2+1]. The upper
// edge must not exceed the Nyquist frequency.
func Map(sampleRate float64, frameSize int, startHz, endHz float64) (Band, error) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return Band{}, fmt.Errorf("%w: sample rate must be positive and finite: %f", ErrInvalidBand, sampleRate)
	}
	if frameSize <= 0 {
		return Band{}, fmt.Errorf("%w: frame size must be > 0: %d", ErrInvalidBand, frameSize)
	}
	if math.IsNaN(startHz) || math.IsNaN(endHz) || math.IsInf(startHz, 0) || math.IsInf(endHz, 0) {
		return Band{}, fmt.Errorf("%w: band edges must be finite: [%f, %f]", ErrInvalidBand, startHz, endHz)
	}
	if startHz < 0 {
		return Band{}, fmt.Errorf("%w: start frequency must be >= 0 Hz: %f", ErrInvalidBand, startHz)
	}
	if startHz >= endHz {
		return Band{}, fmt.Errorf("%w: start frequency must be below end frequency: [%f, %f]", ErrInvalidBand, startHz, endHz)
	}
	nyquist := sampleRate / 2
	if endHz > nyquist {
		return Band{}, fmt.Errorf("%w: end frequency %f Hz exceeds Nyquist %f Hz", ErrInvalidBand, endHz, nyquist)
	}

	bins := frameSize/2 + 1
	resolution := sampleRate / float64(frameSize)

	start := clampBin(int(math.Round(startHz/resolution)), bins)
	end := clampBin(int(math.Round(endHz/resolution)), bins)
	if end <= start {
		return Band{}, fmt.Errorf("%w: band [%f, %f] Hz collapses to an empty bin range at resolution %f Hz",
			ErrInvalidBand, startHz, endHz, resolution)
	}

	return Band{StartHz: startHz, EndHz: endHz, Start: start, End: end}, nil
}

func clampBin(bin, bins int) int {
	if bin < 0 {
		return 0
	}
	if bin > bins {
		return bins
	}
	return bin
}
