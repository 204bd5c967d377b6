package angle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTurns(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"quarter", 0.25, math.Pi / 2},
		{"half", 0.5, math.Pi},
		{"full", 1, 2 * math.Pi},
		{"negative", -1, -2 * math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Turns(tt.in), 1e-12)
		})
	}
}

func TestDegrees(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"right angle", 90, math.Pi / 2},
		{"straight", 180, math.Pi},
		{"green hue", 120, 2 * math.Pi / 3},
		{"negative", -180, -math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Degrees(tt.in), 1e-12)
		})
	}
}

func TestDegreesAndTurnsAgree(t *testing.T) {
	for _, d := range []float64{0, 45, 90, 360, 720, -30} {
		assert.InDelta(t, Turns(d/360), Degrees(d), 1e-12, "degrees %v", d)
	}
}

func TestToDegrees(t *testing.T) {
	for _, d := range []float64{0, 1, 60, 240, 359.5, -90} {
		assert.InDelta(t, d, ToDegrees(Degrees(d)), 1e-9)
	}
}

func TestRadians(t *testing.T) {
	assert.Equal(t, 1.5, Radians(1.5))
}
