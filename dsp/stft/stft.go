package stft

import (
	"fmt"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-dsp/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

const (
	// DefaultFrameSize is the reference analysis window length.
	DefaultFrameSize = 2048
	// DefaultHopSize is the reference hop between consecutive frames.
	DefaultHopSize = 512

	minFrameSize = 64

	// Samples whose window-energy sum falls below this fraction of the
	// peak sum have no usable coverage and are synthesized as zero.
	// Dividing by such sums would amplify spectral modifications at the
	// signal head by many orders of magnitude.
	normTinyRatio = 1e-8
)

// Transform computes forward and inverse short-time Fourier transforms
// with a fixed frame size, hop size, and analysis window.
//
// Analysis frames start at multiples of the hop size; the signal is
// zero-padded past its tail so the last frame is complete. The inverse
// uses windowed overlap-add normalized by the per-sample sum of squared
// window values, so Inverse(Forward(x), len(x)) reconstructs x within
// floating-point precision wherever the window energy is non-negligible.
// The first few samples of a zero-endpoint window carry no usable
// energy and are synthesized as zero.
//
// A Transform reuses internal scratch buffers and is not safe for
// concurrent use.
type Transform struct {
	frameSize  int
	hopSize    int
	windowType window.Type

	plan         *algofft.Plan[complex128]
	windowCoeffs []float64
	timeFrame    []complex128
	spectrum     []complex128
}

// New creates a Transform with the reference defaults (frame size 2048,
// hop 512, periodic Hann window), modified by opts.
func New(opts ...Option) (*Transform, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.frameSize < minFrameSize || !isPowerOf2(cfg.frameSize) {
		return nil, fmt.Errorf("stft: frame size must be a power of two and >= %d: %d", minFrameSize, cfg.frameSize)
	}
	if cfg.hopSize <= 0 || cfg.hopSize > cfg.frameSize {
		return nil, fmt.Errorf("stft: hop size must be in [1, %d]: %d", cfg.frameSize, cfg.hopSize)
	}

	plan, err := algofft.NewPlan64(cfg.frameSize)
	if err != nil {
		return nil, fmt.Errorf("stft: failed to create FFT plan: %w", err)
	}

	coeffs := window.Generate(cfg.windowType, cfg.frameSize, window.WithPeriodic())
	if len(coeffs) != cfg.frameSize {
		return nil, fmt.Errorf("stft: window generation failed for size %d", cfg.frameSize)
	}

	return &Transform{
		frameSize:    cfg.frameSize,
		hopSize:      cfg.hopSize,
		windowType:   cfg.windowType,
		plan:         plan,
		windowCoeffs: coeffs,
		timeFrame:    make([]complex128, cfg.frameSize),
		spectrum:     make([]complex128, cfg.frameSize),
	}, nil
}

// FrameSize returns the analysis window length in samples.
func (t *Transform) FrameSize() int { return t.frameSize }

// HopSize returns the hop between consecutive frames in samples.
func (t *Transform) HopSize() int { return t.hopSize }

// WindowType returns the analysis window shape.
func (t *Transform) WindowType() window.Type { return t.windowType }

// NumBins returns the number of non-negative frequency bins per frame.
func (t *Transform) NumBins() int { return t.frameSize/2 + 1 }

// NumFrames returns the number of analysis frames produced for a signal
// of the given length.
func (t *Transform) NumFrames(length int) int {
	if length <= 0 {
		return 0
	}
	return 1 + (length-1)/t.hopSize
}

// Forward computes the complex time-frequency matrix of samples.
func (t *Transform) Forward(samples []float64) (*Frame, error) {
	if len(samples) == 0 {
		return nil, ErrEmptySignal
	}

	bins := t.NumBins()
	frameCount := t.NumFrames(len(samples))

	data := make([][]complex128, bins)
	for k := range data {
		data[k] = make([]complex128, frameCount)
	}

	for frame := range frameCount {
		pos := frame * t.hopSize

		for i := range t.frameSize {
			x := 0.0
			if idx := pos + i; idx < len(samples) {
				x = samples[idx]
			}
			t.timeFrame[i] = complex(x*t.windowCoeffs[i], 0)
		}

		err := t.plan.Forward(t.spectrum, t.timeFrame)
		if err != nil {
			return nil, fmt.Errorf("stft: forward FFT failed: %w", err)
		}

		for k := range bins {
			data[k][frame] = t.spectrum[k]
		}
	}

	return &Frame{
		data:      data,
		frameSize: t.frameSize,
		hopSize:   t.hopSize,
		srcLen:    len(samples),
	}, nil
}

// Inverse reconstructs a time-domain signal of the given length from f.
//
// The frame's magnitudes may have been modified; phases are taken as
// stored. length must be positive and must not exceed the span covered
// by the frame's overlap-add synthesis.
func (t *Transform) Inverse(f *Frame, length int) ([]float64, error) {
	if f == nil || f.NumFrames() == 0 {
		return nil, ErrEmptySignal
	}
	if f.frameSize != t.frameSize || f.hopSize != t.hopSize {
		return nil, fmt.Errorf("stft: frame was produced with frame/hop %d/%d, transform uses %d/%d",
			f.frameSize, f.hopSize, t.frameSize, t.hopSize)
	}

	frameCount := f.NumFrames()
	olaLen := (frameCount-1)*t.hopSize + t.frameSize
	if length <= 0 || length > olaLen {
		return nil, fmt.Errorf("%w: requested %d samples, synthesis covers %d", ErrReconstructionLength, length, olaLen)
	}

	half := t.frameSize / 2
	out := make([]float64, olaLen)
	norm := make([]float64, olaLen)

	for frame := range frameCount {
		for k := 0; k <= half; k++ {
			t.spectrum[k] = f.data[k][frame]
		}

		// Mirror for real-valued IFFT.
		t.spectrum[0] = complex(real(t.spectrum[0]), 0)
		t.spectrum[half] = complex(real(t.spectrum[half]), 0)
		for k := 1; k < half; k++ {
			t.spectrum[t.frameSize-k] = cmplx.Conj(t.spectrum[k])
		}

		err := t.plan.Inverse(t.timeFrame, t.spectrum)
		if err != nil {
			return nil, fmt.Errorf("stft: inverse FFT failed: %w", err)
		}

		pos := frame * t.hopSize
		for i := range t.frameSize {
			w := t.windowCoeffs[i]
			out[pos+i] += real(t.timeFrame[i]) * w
			norm[pos+i] += w * w
		}
	}

	tiny := vecmath.MaxAbs(norm) * normTinyRatio
	for i := range out {
		if norm[i] > tiny {
			out[i] /= norm[i]
		} else {
			out[i] = 0
		}
	}

	result := make([]float64, length)
	copy(result, out)
	return result, nil
}

func isPowerOf2(v int) bool {
	return v > 0 && (v&(v-1)) == 0
}
