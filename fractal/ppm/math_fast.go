//go:build fastmath

package ppm

import "github.com/meko-christian/algo-approx"

// mathSqrt uses the approximate square root; grey levels may differ by one
// from the exact build.
func mathSqrt(x float64) float64 {
	return approx.FastSqrt(x)
}
