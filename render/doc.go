// Package render draws magnitude spectrograms as grayscale images.
//
// It is a display collaborator only: the embedding pipeline exposes
// magnitude grids and this package turns them into PNGs for visual
// verification of the watermark. No rendering happens inside the core.
package render
