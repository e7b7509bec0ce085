package utils

import (
	"math"
	"testing"
)

func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want float64
	}{
		{"起点", 0, 0},
		{"中点", 0.5, 0.875},
		{"终点", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EaseOutCubic(tt.t); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("EaseOutCubic(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-0.5, 0},
		{0.3, 0.3},
		{1.5, 1},
	}

	for _, tt := range tests {
		if got := Clamp01(tt.in); got != tt.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(10, 20, 0.25); got != 12.5 {
		t.Errorf("Lerp(10, 20, 0.25) = %v, want 12.5", got)
	}
	if got := Lerp(5, 5, 0.7); got != 5 {
		t.Errorf("Lerp of equal endpoints = %v, want 5", got)
	}
}

func TestAnyKeyJustPressed_NoKeys(t *testing.T) {
	if AnyKeyJustPressed() {
		t.Error("no keys should never report a press")
	}
}
