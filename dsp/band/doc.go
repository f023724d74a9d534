// Package band maps frequency ranges in Hz onto FFT bin ranges.
//
// A Band selects the rows of a time-frequency matrix that a processing
// stage may touch. Mapping depends only on the sample rate and the FFT
// frame size; it performs no I/O and keeps no state.
package band
