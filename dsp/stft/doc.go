// Package stft provides a short-time Fourier transform and its inverse
// over a complex [bin][frame] matrix.
//
// Framing policy: analysis frames start at multiples of the hop size,
// beginning at sample 0, and the signal is zero-padded past its tail so
// the final frame is complete. A signal of N samples yields
// 1 + (N-1)/hop frames and frameSize/2 + 1 bins per frame. The inverse
// transform assumes the identical policy and synthesizes by windowed
// overlap-add, dividing each output sample by the accumulated sum of
// squared window values, which cancels the analysis window exactly
// wherever that sum is above a small fraction of its peak. Samples
// below that fraction (the first few under a zero-endpoint window such
// as Hann) have no usable coverage and come out as zero.
package stft
