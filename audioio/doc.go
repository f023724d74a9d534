// Package audioio reads and writes audio files as float64 channel
// slices in [-1, 1].
//
// WAV decoding and encoding go through github.com/go-audio/wav; FLAC
// decoding goes through github.com/mewkiz/flac. Samples are scaled by
// the source bit depth on the way in and requantized with rounding and
// clamping on the way out.
package audioio
