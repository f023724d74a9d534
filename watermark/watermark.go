package watermark

import (
	"fmt"
	"image"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-watermark/dsp/band"
	"github.com/cwbudde/algo-watermark/dsp/mask"
	"github.com/cwbudde/algo-watermark/dsp/stft"
)

// Embedder embeds a visible image into the spectrogram of an audio
// signal by attenuating time-frequency magnitudes inside a fixed
// frequency band. Phases and out-of-band content are never touched, so
// the output waveform stays close to the input.
//
// An Embedder is configured once and may be reused across signals of the
// same sample rate. It is not safe for concurrent use.
type Embedder struct {
	sampleRate float64
	cfg        config
	band       band.Band
	transform  *stft.Transform
}

// Result carries the watermarked audio together with the magnitude
// grids of the analysis channel, before and after embedding, for
// external visualization. Grids are linear-scale [bin][frame].
type Result struct {
	Channels           [][]float64
	OriginalMagnitudes [][]float64
	MarkedMagnitudes   [][]float64
}

// New creates an Embedder for audio at the given sample rate, using the
// reference parameters (band 200-10700 Hz, attenuation factor 0.05,
// frame size 2048, hop 512, Hann window) modified by opts.
func New(sampleRate float64, opts ...Option) (*Embedder, error) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("watermark: sample rate must be positive and finite: %f", sampleRate)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	b, err := band.Map(sampleRate, cfg.frameSize, cfg.startHz, cfg.endHz)
	if err != nil {
		return nil, err
	}

	transform, err := stft.New(
		stft.WithFrameSize(cfg.frameSize),
		stft.WithHopSize(cfg.hopSize),
		stft.WithWindowType(cfg.windowType),
	)
	if err != nil {
		return nil, err
	}

	return &Embedder{
		sampleRate: sampleRate,
		cfg:        cfg,
		band:       b,
		transform:  transform,
	}, nil
}

// SampleRate returns the configured sample rate in Hz.
func (e *Embedder) SampleRate() float64 { return e.sampleRate }

// Band returns the bin range the watermark is embedded into.
func (e *Embedder) Band() band.Band { return e.band }

// Attenuation returns the configured attenuation factor.
func (e *Embedder) Attenuation() float64 { return e.cfg.attenuation }

// Transform returns the spectral transform used by the pipeline.
func (e *Embedder) Transform() *stft.Transform { return e.transform }

// Apply scales the magnitude of every cell of f inside b by the
// corresponding mask weight, leaving phase and out-of-band cells
// untouched. The mask shape must equal (b.Width(), f.NumFrames()); Apply
// never resamples. f is mutated in place.
func Apply(f *stft.Frame, b band.Band, m *mask.Mask) error {
	if f == nil || m == nil {
		return fmt.Errorf("%w: nil frame or mask", ErrShapeMismatch)
	}
	if b.Start < 0 || b.End > f.NumBins() || b.Width() <= 0 {
		return fmt.Errorf("%w: band [%d, %d) outside frame bins [0, %d)",
			ErrShapeMismatch, b.Start, b.End, f.NumBins())
	}
	if m.Rows() != b.Width() || m.Cols() != f.NumFrames() {
		return fmt.Errorf("%w: mask is %dx%d, band x frames is %dx%d",
			ErrShapeMismatch, m.Rows(), m.Cols(), b.Width(), f.NumFrames())
	}

	for bin := b.Start; bin < b.End; bin++ {
		row := bin - b.Start
		for frame := range m.Cols() {
			f.ScaleCell(bin, frame, m.Weight(row, frame))
		}
	}
	return nil
}

// Embed runs the full pipeline on multi-channel audio: forward
// transform, mask application, inverse transform, and post-processing.
// All channels must share one length. By default the watermark is
// applied identically to every channel; with WithFirstChannelOnly only
// channel 0 is processed and the remaining channels pass through
// unchanged.
func (e *Embedder) Embed(channels [][]float64, img image.Image) (*Result, error) {
	if len(channels) == 0 {
		return nil, fmt.Errorf("watermark: no input channels")
	}
	length := len(channels[0])
	if length == 0 {
		return nil, stft.ErrEmptySignal
	}
	for i, ch := range channels {
		if len(ch) != length {
			return nil, fmt.Errorf("%w: channel %d has %d samples, channel 0 has %d",
				ErrChannelMismatch, i, len(ch), length)
		}
	}

	numFrames := e.transform.NumFrames(length)
	maskOpts := append([]mask.Option{mask.WithAttenuation(e.cfg.attenuation)}, e.cfg.maskOpts...)
	m, err := mask.Build(img, e.band.Width(), numFrames, maskOpts...)
	if err != nil {
		return nil, err
	}

	res := &Result{Channels: make([][]float64, len(channels))}

	for i, ch := range channels {
		if e.cfg.firstChannelOnly && i > 0 {
			res.Channels[i] = append([]float64(nil), ch...)
			continue
		}

		f, err := e.transform.Forward(ch)
		if err != nil {
			return nil, err
		}

		if i == 0 {
			res.OriginalMagnitudes = f.Magnitudes()
		}

		if err := Apply(f, e.band, m); err != nil {
			return nil, err
		}

		if i == 0 {
			res.MarkedMagnitudes = f.Magnitudes()
		}

		out, err := e.transform.Inverse(f, length)
		if err != nil {
			return nil, err
		}
		res.Channels[i] = out
	}

	e.postProcess(res.Channels)
	return res, nil
}

// EmbedMono runs the pipeline on a single channel and returns the
// watermarked samples.
func (e *Embedder) EmbedMono(samples []float64, img image.Image) ([]float64, error) {
	res, err := e.Embed([][]float64{samples}, img)
	if err != nil {
		return nil, err
	}
	return res.Channels[0], nil
}

// postProcess rescales and clamps the reconstructed channels to the
// [-1, 1] output range. The global peak across processed channels is
// used so their balance is preserved. Pass-through channels are never
// touched; they must leave the pipeline bit-identical to the input.
func (e *Embedder) postProcess(channels [][]float64) {
	processed := channels
	if e.cfg.firstChannelOnly {
		processed = channels[:1]
	}

	peak := 0.0
	for _, ch := range processed {
		if p := vecmath.MaxAbs(ch); p > peak {
			peak = p
		}
	}

	if peak > 0 && (peak > 1 || e.cfg.peakNormalize) {
		scale := 1 / peak
		for _, ch := range processed {
			vecmath.ScaleBlockInPlace(ch, scale)
		}
	}

	for _, ch := range processed {
		clamp(ch)
	}
}

// clamp guards against rounding just past full scale after rescaling.
func clamp(samples []float64) {
	for i, v := range samples {
		if v > 1 {
			samples[i] = 1
		} else if v < -1 {
			samples[i] = -1
		}
	}
}
