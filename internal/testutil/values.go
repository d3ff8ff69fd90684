// Package testutil holds helpers shared by the package tests.
package testutil

import "math/rand"

// DeterministicFloat32 returns n values uniform in [lo, hi) from a fixed
// seed.
func DeterministicFloat32(seed int64, lo, hi float32, n int) []float32 {
	out := make([]float32, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = lo + (hi-lo)*rng.Float32()
	}
	return out
}

// Ramp returns 0, 1, ..., n-1 as float32.
func Ramp(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(i)
	}
	return out
}
