// Package mask converts watermark images into attenuation-weight grids.
//
// A mask has exactly the shape of the spectrogram region it will be
// applied to: one row per frequency bin of the target band, one column
// per time frame. The source image is stretched to that shape whatever
// its aspect ratio, so non-matching proportions distort rather than
// fail.
//
// Row 0 carries the image's top row and maps to the band's lowest bin.
// A conventional spectrogram view draws low frequencies at the bottom,
// so the embedded image appears vertically mirrored there; build with
// WithFlipVertical when the mark should read upright in such a view.
package mask
