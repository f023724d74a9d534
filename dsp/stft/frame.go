package stft

import (
	"math"
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// Frame is a complex time-frequency matrix indexed [bin][frame].
//
// Bin 0 is DC, the last bin is Nyquist. Frames advance in time by the
// hop size of the Transform that produced the Frame.
type Frame struct {
	data      [][]complex128
	frameSize int
	hopSize   int
	srcLen    int
}

// NumBins returns the number of frequency bins.
func (f *Frame) NumBins() int { return len(f.data) }

// NumFrames returns the number of time frames.
func (f *Frame) NumFrames() int {
	if len(f.data) == 0 {
		return 0
	}
	return len(f.data[0])
}

// SourceLen returns the sample count of the signal the Frame was
// computed from.
func (f *Frame) SourceLen() int { return f.srcLen }

// At returns the cell at the given bin and frame.
func (f *Frame) At(bin, frame int) complex128 { return f.data[bin][frame] }

// Set replaces the cell at the given bin and frame.
func (f *Frame) Set(bin, frame int, v complex128) { f.data[bin][frame] = v }

// ScaleCell multiplies the magnitude of one cell by w, leaving its
// phase unchanged.
func (f *Frame) ScaleCell(bin, frame int, w float64) {
	f.data[bin][frame] *= complex(w, 0)
}

// Clone returns a deep copy of the Frame.
func (f *Frame) Clone() *Frame {
	data := make([][]complex128, len(f.data))
	for k := range f.data {
		data[k] = append([]complex128(nil), f.data[k]...)
	}
	return &Frame{data: data, frameSize: f.frameSize, hopSize: f.hopSize, srcLen: f.srcLen}
}

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitudes returns |X[k][j]| for every cell as a [bin][frame] grid.
//
// Extraction uses SIMD-optimized kernels when available; scratch buffers
// are pooled internally, so in steady state this allocates only the
// output grid.
func (f *Frame) Magnitudes() [][]float64 {
	frames := f.NumFrames()
	out := make([][]float64, len(f.data))
	if frames == 0 {
		return out
	}

	re, im, buf := getScratch(frames)
	for k, row := range f.data {
		for j, c := range row {
			re[j] = real(c)
			im[j] = imag(c)
		}
		out[k] = make([]float64, frames)
		vecmath.Magnitude(out[k], re, im)
	}
	putScratch(buf)
	return out
}

// Phases returns arg(X[k][j]) in radians for every cell as a
// [bin][frame] grid.
func (f *Frame) Phases() [][]float64 {
	out := make([][]float64, len(f.data))
	for k, row := range f.data {
		out[k] = make([]float64, len(row))
		for j, c := range row {
			out[k][j] = cmplx.Phase(c)
		}
	}
	return out
}

// MagnitudesDB returns the magnitude grid in decibels relative to the
// peak magnitude, floored at floorDB (a negative value such as -100).
// An all-zero frame yields floorDB everywhere.
func (f *Frame) MagnitudesDB(floorDB float64) [][]float64 {
	mag := f.Magnitudes()

	peak := 0.0
	for _, row := range mag {
		m := vecmath.MaxAbs(row)
		if m > peak {
			peak = m
		}
	}

	for _, row := range mag {
		for j, m := range row {
			if peak <= 0 || m <= 0 {
				row[j] = floorDB
				continue
			}
			db := 20 * math.Log10(m/peak)
			if db < floorDB {
				db = floorDB
			}
			row[j] = db
		}
	}
	return mag
}
