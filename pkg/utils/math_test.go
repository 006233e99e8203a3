package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundInt(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  int
	}{
		{name: "rounds down below half", value: 70.4, want: 70},
		{name: "rounds half up", value: 70.5, want: 71},
		{name: "exact integer", value: 100, want: 100},
		{name: "zero", value: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundInt(tt.value))
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		lo, hi float64
		want   float64
	}{
		{name: "below range", value: -0.3, lo: 0, hi: 1, want: 0},
		{name: "above range", value: 1.7, lo: 0, hi: 1, want: 1},
		{name: "inside range", value: 0.42, lo: 0, hi: 1, want: 0.42},
		{name: "at lower bound", value: 0, lo: 0, hi: 1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Clamp(tt.value, tt.lo, tt.hi), 1e-9)
		})
	}
}

func TestClamp01(t *testing.T) {
	assert.InDelta(t, 1.0, Clamp01(1.0001), 1e-9)
	assert.InDelta(t, 0.0, Clamp01(-0.0001), 1e-9)
	assert.InDelta(t, 0.8, Clamp01(0.8), 1e-9)
}
