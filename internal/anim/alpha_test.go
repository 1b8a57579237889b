package anim

import (
	"math"
	"testing"
	"time"
)

func TestLabelAlpha(t *testing.T) {
	tests := []struct {
		progress float64
		want     float64
	}{
		{0, 0},
		{0.55, 0},
		{0.6, 0.25},
		{0.65, 0.5},
		{0.75, 1},
		{0.8, 1},
		{1.2, 1},
		{-1, 0},
	}
	for _, tt := range tests {
		if got := LabelAlpha(tt.progress); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("LabelAlpha(%v) = %v, want %v", tt.progress, got, tt.want)
		}
	}
}

func TestLabelAlphaAtFrameTimes(t *testing.T) {
	d := 5 * time.Second
	f := Frame{Elapsed: 3 * time.Second, Duration: d}
	if got := LabelAlpha(f.Progress()); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("alpha at 3s of 5s = %v, want 0.25", got)
	}
	f.Elapsed = 4 * time.Second
	if got := LabelAlpha(f.Progress()); got != 1 {
		t.Errorf("alpha at 4s of 5s = %v, want 1", got)
	}
}

func TestDurationOf(t *testing.T) {
	tests := []struct {
		name     string
		seconds  float64
		fallback float64
		want     time.Duration
	}{
		{"positive", 2.5, 5, 2500 * time.Millisecond},
		{"zero", 0, 5, 5 * time.Second},
		{"negative", -3, 3, 3 * time.Second},
		{"nan", math.NaN(), 3, 3 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DurationOf(tt.seconds, tt.fallback); got != tt.want {
				t.Errorf("DurationOf(%v) = %v, want %v", tt.seconds, got, tt.want)
			}
		})
	}
}
