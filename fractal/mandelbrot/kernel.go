package mandelbrot

import (
	"sync"

	"github.com/cwbudde/algo-par/internal/cpu"
	"github.com/cwbudde/algo-par/internal/kernel/registry"
)

var (
	rowImpl     registry.RowFn
	rowName     string
	rowInitOnce sync.Once
)

func initRowKernel() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("mandelbrot: no row kernel registered (missing generic fallback?)")
	}
	if entry.Row == nil {
		panic("mandelbrot: selected kernel missing Row")
	}
	rowImpl = entry.Row
	rowName = entry.Name
}

func rowKernel() registry.RowFn {
	rowInitOnce.Do(initRowKernel)
	return rowImpl
}

// KernelName returns the name of the row kernel Threaded uses, e.g.
// "generic" or "avx2".
func KernelName() string {
	rowInitOnce.Do(initRowKernel)
	return rowName
}

// Kernels returns the names of all registered row kernels, highest priority
// first. Kernels the host cannot run are included.
func Kernels() []string {
	rowInitOnce.Do(initRowKernel)
	entries := registry.Global.ListEntries()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}
