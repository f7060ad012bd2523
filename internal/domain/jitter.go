package domain

import (
	"math"
	"math/rand/v2"
)

const (
	jitterScale     = 1e8
	jitterMaxOffset = 15000
)

// Jitter perturbs a GPS coordinate so repeated submissions do not carry
// identical values. The coordinate is quantized to 8 decimal places and a
// uniform integer offset in [-15000, 15000] is applied to the last-8-digit
// fraction, carrying into the integer part on overflow. The result stays
// within ±0.00015 of the input.
func Jitter(coordinate float64) float64 {
	scaled := int64(math.Round(coordinate * jitterScale))
	offset := int64(rand.IntN(2*jitterMaxOffset+1) - jitterMaxOffset)

	return float64(scaled+offset) / jitterScale
}
