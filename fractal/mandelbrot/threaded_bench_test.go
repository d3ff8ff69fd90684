package mandelbrot

import (
	"context"
	"fmt"
	"testing"

	"github.com/cwbudde/algo-par/internal/kernel/registry"
)

func benchParams() Params {
	return Params{View: DefaultView(), Width: 400, Height: 300, MaxIterations: 256}
}

func BenchmarkSerial(b *testing.B) {
	p := benchParams()
	out := make([]int, p.Pixels())
	for b.Loop() {
		if err := Serial(p, 0, p.Height, out); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkThreaded(b *testing.B) {
	p := benchParams()
	for _, s := range Schedules() {
		for _, workers := range []int{1, 2, 4, 8} {
			b.Run(fmt.Sprintf("%s/workers=%d", s, workers), func(b *testing.B) {
				out := make([]int, p.Pixels())
				ctx := context.Background()
				for b.Loop() {
					if _, err := Threaded(ctx, p, out, WithWorkers(workers), WithSchedule(s)); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// BenchmarkRowKernels runs every registered kernel directly, including ones
// the dispatcher would not pick on this host.
func BenchmarkRowKernels(b *testing.B) {
	p := benchParams()
	r := p.region()
	for _, name := range Kernels() {
		entry := registry.Global.LookupName(name)
		b.Run(name, func(b *testing.B) {
			out := make([]int, p.Width)
			for b.Loop() {
				for row := 0; row < p.Height; row++ {
					entry.Row(r, row, out)
				}
			}
		})
	}
}
