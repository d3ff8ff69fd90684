package profile

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Spectrum returns the one-sided power spectrum |X[k]|^2, k = 0..N/2, of
// the mean-removed cost profile zero-padded to the next power of two N.
func Spectrum(costs []int64) ([]float64, error) {
	if len(costs) == 0 {
		return nil, ErrEmpty
	}

	var sum float64
	for _, c := range costs {
		sum += float64(c)
	}
	mean := sum / float64(len(costs))

	n := nextPowerOf2(len(costs))
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("profile: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, n)
	for i, c := range costs {
		in[i] = complex(float64(c)-mean, 0)
	}
	freq := make([]complex128, n)
	if err := plan.Forward(freq, in); err != nil {
		return nil, fmt.Errorf("profile: forward FFT failed: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := 0; k < bins; k++ {
		re[k] = real(freq[k])
		im[k] = imag(freq[k])
	}

	power := make([]float64, bins)
	vecmath.Power(power, re, im)
	return power, nil
}

// LowBandRatio returns the share of non-DC energy in bins 1..bins of a
// power spectrum. It is 0 for a flat profile.
func LowBandRatio(power []float64, bins int) float64 {
	if len(power) < 2 || bins < 1 {
		return 0
	}
	bins = min(bins, len(power)-1)

	var low, total float64
	for k := 1; k < len(power); k++ {
		total += power[k]
		if k <= bins {
			low += power[k]
		}
	}
	if total == 0 {
		return 0
	}
	return low / total
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
