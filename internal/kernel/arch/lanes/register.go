//go:build !purego

// Package lanes provides Mandelbrot row kernels that advance several pixels
// in lockstep with a per-lane active mask, the same shape a SIMD
// implementation has. Lanes that have escaped stop updating while the rest
// keep iterating.
package lanes

import (
	"github.com/cwbudde/algo-par/internal/cpu"
	"github.com/cwbudde/algo-par/internal/kernel/registry"
)

// maxLanes bounds the per-call lane arrays.
const maxLanes = 8

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,
		Lanes:     4,
		Row:       row4,
	})
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,
		Lanes:     4,
		Row:       row4,
	})
	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
		Lanes:     8,
		Row:       row8,
	})
}

func row4(r registry.Region, row int, out []int) { rowLanes(r, row, out, 4) }
func row8(r registry.Region, row int, out []int) { rowLanes(r, row, out, 8) }

func rowLanes(r registry.Region, row int, out []int, lanes int) {
	var (
		cRe, zRe [maxLanes]float32
		zIm      [maxLanes]float32
		count    [maxLanes]int
		active   [maxLanes]bool
	)

	cIm := r.Y0 + float32(float32(row)*r.Dy)

	for base := 0; base < r.Width; base += lanes {
		n := min(lanes, r.Width-base)

		live := 0
		for l := 0; l < lanes; l++ {
			active[l] = l < n
			count[l] = 0
			if !active[l] {
				continue
			}
			cRe[l] = r.X0 + float32(float32(base+l)*r.Dx)
			zRe[l] = cRe[l]
			zIm[l] = cIm
			live++
		}

		for it := 0; it < r.MaxIterations && live > 0; it++ {
			for l := 0; l < n; l++ {
				if !active[l] {
					continue
				}
				re2 := float32(zRe[l] * zRe[l])
				im2 := float32(zIm[l] * zIm[l])
				if re2+im2 > 4 {
					active[l] = false
					live--
					continue
				}
				newIm := float32(2 * zRe[l] * zIm[l])
				zRe[l] = cRe[l] + (re2 - im2)
				zIm[l] = cIm + newIm
				count[l]++
			}
		}

		copy(out[base:base+n], count[:n])
	}
}
