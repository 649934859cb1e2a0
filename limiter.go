package wavesynth

import "math"

// Saturate soft-clips x into [-1, 1].  It is close to the identity for small
// x; a blend of two full-scale tables can exceed 1 and needs it before
// fixed-point export.
func Saturate(x float64) float64 {
	return math.Tanh(x)
}

// SaturateAll applies Saturate to every sample of x in place.
func SaturateAll(x []float64) {
	for i, v := range x {
		x[i] = Saturate(v)
	}
}
