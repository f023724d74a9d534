// Package watermark embeds a visible image into audio spectrograms.
//
// The watermark is an amplitude attenuation pattern, not an added
// signal: magnitudes of time-frequency cells inside a configured band
// are multiplied by weights derived from a grayscale image, phases are
// kept, and the signal is resynthesized. A spectrogram of the output
// reveals the image; the waveform itself stays close to the input.
//
// The scheme is deliberately fragile. It offers no robustness against
// re-encoding, resampling, or filtering, and no secrecy.
package watermark
