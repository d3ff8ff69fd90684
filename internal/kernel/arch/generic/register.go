// Package generic provides the scalar Mandelbrot row kernel.
package generic

import (
	"github.com/cwbudde/algo-par/internal/cpu"
	"github.com/cwbudde/algo-par/internal/kernel/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Lanes:     1,
		Row:       Row,
	})
}

// Mandel returns the number of iterations before z = z^2 + c leaves the
// radius-2 disk, capped at count. z starts at c.
//
// Every product is rounded to float32 explicitly so the compiler cannot
// fuse it into an FMA; all kernels must agree bit for bit.
func Mandel(cRe, cIm float32, count int) int {
	zRe, zIm := cRe, cIm

	i := 0
	for ; i < count; i++ {
		re2 := float32(zRe * zRe)
		im2 := float32(zIm * zIm)
		if re2+im2 > 4 {
			break
		}
		newIm := float32(2 * zRe * zIm)
		zRe = cRe + (re2 - im2)
		zIm = cIm + newIm
	}
	return i
}

// Row is the scalar RowFn.
func Row(r registry.Region, row int, out []int) {
	y := r.Y0 + float32(float32(row)*r.Dy)
	for i := 0; i < r.Width; i++ {
		x := r.X0 + float32(float32(i)*r.Dx)
		out[i] = Mandel(x, y, r.MaxIterations)
	}
}
