package band

import (
	"errors"
	"math"
	"testing"
)

func TestMap(t *testing.T) {
	tests := []struct {
		name       string
		sampleRate float64
		frameSize  int
		startHz    float64
		endHz      float64
		wantStart  int
		wantEnd    int
		wantErr    bool
	}{
		{name: "reference band", sampleRate: 44100, frameSize: 2048, startHz: 200, endHz: 10700, wantStart: 9, wantEnd: 497},
		{name: "full band", sampleRate: 48000, frameSize: 1024, startHz: 0, endHz: 24000, wantStart: 0, wantEnd: 512},
		{name: "narrow band", sampleRate: 44100, frameSize: 2048, startHz: 990, endHz: 1010, wantStart: 46, wantEnd: 47},
		{name: "reversed edges", sampleRate: 44100, frameSize: 2048, startHz: 5000, endHz: 200, wantErr: true},
		{name: "equal edges", sampleRate: 44100, frameSize: 2048, startHz: 1000, endHz: 1000, wantErr: true},
		{name: "negative start", sampleRate: 44100, frameSize: 2048, startHz: -1, endHz: 1000, wantErr: true},
		{name: "above nyquist", sampleRate: 44100, frameSize: 2048, startHz: 200, endHz: 23000, wantErr: true},
		{name: "empty after rounding", sampleRate: 44100, frameSize: 2048, startHz: 996, endHz: 1000, wantErr: true},
		{name: "zero sample rate", sampleRate: 0, frameSize: 2048, startHz: 200, endHz: 10700, wantErr: true},
		{name: "zero frame size", sampleRate: 44100, frameSize: 0, startHz: 200, endHz: 10700, wantErr: true},
		{name: "NaN edge", sampleRate: 44100, frameSize: 2048, startHz: math.NaN(), endHz: 10700, wantErr: true},
		{name: "Inf edge", sampleRate: 44100, frameSize: 2048, startHz: 200, endHz: math.Inf(1), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Map(tt.sampleRate, tt.frameSize, tt.startHz, tt.endHz)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Map() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidBand) {
					t.Fatalf("Map() error = %v, want ErrInvalidBand", err)
				}
				return
			}
			if b.Start != tt.wantStart || b.End != tt.wantEnd {
				t.Fatalf("Map() bins = [%d, %d), want [%d, %d)", b.Start, b.End, tt.wantStart, tt.wantEnd)
			}
			if b.StartHz != tt.startHz || b.EndHz != tt.endHz {
				t.Fatalf("Map() edges = [%f, %f], want [%f, %f]", b.StartHz, b.EndHz, tt.startHz, tt.endHz)
			}
		})
	}
}

func TestMapNyquistExact(t *testing.T) {
	b, err := Map(44100, 2048, 200, 22050)
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}
	if b.End != 1024 {
		t.Fatalf("End = %d, want 1024 (Nyquist bin for frame size 2048)", b.End)
	}
}

func TestBandWidthContains(t *testing.T) {
	b := Band{Start: 9, End: 497}
	if got := b.Width(); got != 488 {
		t.Fatalf("Width() = %d, want 488", got)
	}
	if !b.Contains(9) {
		t.Fatal("Contains(9) = false, want true")
	}
	if !b.Contains(496) {
		t.Fatal("Contains(496) = false, want true")
	}
	if b.Contains(497) {
		t.Fatal("Contains(497) = true, want false")
	}
	if b.Contains(8) {
		t.Fatal("Contains(8) = true, want false")
	}
}
