package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJitterStaysWithinBound(t *testing.T) {
	coordinates := []float64{116.397128, 39.916527, 0, -73.985664, 0.00000001}

	for _, coordinate := range coordinates {
		for range 1000 {
			jittered := Jitter(coordinate)
			assert.InDelta(t, coordinate, jittered, 0.00015001, "coordinate %v", coordinate)
		}
	}
}

func TestJitterQuantizedToEightDecimals(t *testing.T) {
	for range 100 {
		jittered := Jitter(116.397128)
		scaled := jittered * 1e8
		assert.InDelta(t, math.Round(scaled), scaled, 1e-4)
	}
}

func TestJitterRerandomizesPerCall(t *testing.T) {
	// Two calls collide with probability 1/30001; five identical draws in a
	// row would mean the offset is not being re-randomized.
	base := 39.916527
	first := Jitter(base)
	for range 4 {
		if Jitter(base) != first {
			return
		}
	}

	t.Fatalf("jitter returned %v five times in a row", first)
}
