package audioio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadFile decodes the audio file at path, dispatching on its
// extension. WAV and FLAC are supported.
func ReadFile(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audioio: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return ReadWAV(f)
	case ".flac":
		return ReadFLAC(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// WriteFile encodes c to the file at path. Only WAV output is
// supported.
func WriteFile(path string, c *Clip) error {
	if strings.ToLower(filepath.Ext(path)) != ".wav" {
		return fmt.Errorf("%w: %q (output must be .wav)", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err := c.Validate(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("audioio: %w", err)
	}
	if err := WriteWAV(f, c); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("audioio: %w", err)
	}
	return nil
}

// SamePath reports whether two paths refer to the same file location
// after cleaning and resolving to absolute form. Callers use it to
// refuse writing a result over its own input.
func SamePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
