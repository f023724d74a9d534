// Command audiomark embeds a grayscale watermark image into the
// spectrogram of an audio file.
//
// Usage:
//
//	audiomark -in input.wav -image mark.png -out output.wav [flags]
//
// The watermark is applied by attenuating spectral magnitudes inside a
// frequency band; dark image pixels attenuate strongly, white pixels
// leave the audio untouched. The marked audio is written as PCM WAV.
//
// Examples:
//
//	audiomark -in song.wav -image logo.png -out marked.wav
//	audiomark -in song.flac -image logo.png -out marked.wav -start 500 -end 8000
//	audiomark -in song.wav -image logo.png -out marked.wav -binary -attenuation 0.1
//	audiomark -in song.wav -image logo.png -out marked.wav -spectrogram spec
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/cwbudde/algo-dsp/dsp/window"
	"github.com/cwbudde/algo-watermark/audioio"
	"github.com/cwbudde/algo-watermark/dsp/mask"
	"github.com/cwbudde/algo-watermark/dsp/stft"
	"github.com/cwbudde/algo-watermark/render"
	"github.com/cwbudde/algo-watermark/watermark"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	in := flag.String("in", "", "input audio file (.wav or .flac)")
	imagePath := flag.String("image", "", "watermark image (png or jpeg)")
	out := flag.String("out", "", "output audio file (.wav); defaults to watermarked.wav next to the input")
	startHz := flag.Float64("start", watermark.DefaultStartHz, "lower band edge in Hz")
	endHz := flag.Float64("end", watermark.DefaultEndHz, "upper band edge in Hz")
	attenuation := flag.Float64("attenuation", mask.DefaultAttenuation, "attenuation floor in (0, 1]")
	frameSize := flag.Int("frame", stft.DefaultFrameSize, "analysis frame size (power of two)")
	hopSize := flag.Int("hop", stft.DefaultHopSize, "hop size between frames")
	windowName := flag.String("window", "hann", "analysis window (hann, hamming, blackman, rectangular)")
	binary := flag.Bool("binary", false, "threshold the image to on/off instead of linear weights")
	threshold := flag.Uint("threshold", mask.DefaultBinaryThreshold, "intensity cutoff for -binary, 0..255")
	invert := flag.Bool("invert", false, "attenuate bright pixels instead of dark ones")
	flip := flag.Bool("flip", false, "flip the image vertically so it reads upright in a spectrogram view")
	normalize := flag.Bool("normalize", false, "always rescale the output to unit peak")
	firstOnly := flag.Bool("first-channel", false, "mark only the first channel, pass others through")
	spectrogram := flag.String("spectrogram", "", "write <prefix>-before.png and <prefix>-after.png band spectrograms")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: audiomark -in input.wav -image mark.png -out output.wav [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Embeds a grayscale image into an audio spectrogram by magnitude attenuation.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *in == "" || *imagePath == "" {
		flag.Usage()
		return fmt.Errorf("-in and -image are required")
	}
	outPath := *out
	if outPath == "" {
		outPath = defaultOutPath(*in)
	}
	if audioio.SamePath(*in, outPath) {
		return fmt.Errorf("output %q would overwrite the input", outPath)
	}

	windowType, err := parseWindow(*windowName)
	if err != nil {
		return err
	}

	clip, err := audioio.ReadFile(*in)
	if err != nil {
		return err
	}

	img, err := loadImage(*imagePath)
	if err != nil {
		return err
	}

	opts := []watermark.Option{
		watermark.WithBand(*startHz, *endHz),
		watermark.WithAttenuation(*attenuation),
		watermark.WithFrameSize(*frameSize),
		watermark.WithHopSize(*hopSize),
		watermark.WithWindowType(windowType),
	}
	if *binary {
		if *threshold > 255 {
			return fmt.Errorf("threshold %d out of range 0..255", *threshold)
		}
		opts = append(opts, watermark.WithBinaryMask(uint8(*threshold)))
	}
	if *invert {
		opts = append(opts, watermark.WithInvertedPolarity())
	}
	if *flip {
		opts = append(opts, watermark.WithMaskOptions(mask.WithFlipVertical()))
	}
	if *normalize {
		opts = append(opts, watermark.WithPeakNormalize())
	}
	if *firstOnly {
		opts = append(opts, watermark.WithFirstChannelOnly())
	}

	embedder, err := watermark.New(float64(clip.SampleRate), opts...)
	if err != nil {
		return err
	}

	result, err := embedder.Embed(clip.Channels, img)
	if err != nil {
		return err
	}

	marked := &audioio.Clip{
		Channels:   result.Channels,
		SampleRate: clip.SampleRate,
		BitDepth:   clip.BitDepth,
	}
	if err := audioio.WriteFile(outPath, marked); err != nil {
		return err
	}

	if *spectrogram != "" {
		if err := writeSpectrogram(*spectrogram+"-before.png", result.OriginalMagnitudes); err != nil {
			return err
		}
		if err := writeSpectrogram(*spectrogram+"-after.png", result.MarkedMagnitudes); err != nil {
			return err
		}
	}
	return nil
}

// defaultOutPath places watermarked.wav in the input's directory.
func defaultOutPath(in string) string {
	return filepath.Join(filepath.Dir(in), "watermarked.wav")
}

func parseWindow(name string) (window.Type, error) {
	switch name {
	case "hann":
		return window.TypeHann, nil
	case "hamming":
		return window.TypeHamming, nil
	case "blackman":
		return window.TypeBlackman, nil
	case "rectangular":
		return window.TypeRectangular, nil
	default:
		return 0, fmt.Errorf("unknown window %q (want hann, hamming, blackman or rectangular)", name)
	}
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	return img, nil
}

func writeSpectrogram(path string, mag [][]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.WritePNG(f, mag); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
