// Package registry holds the Mandelbrot row kernels available to this build.
//
// Kernel packages register themselves from init functions. The mandelbrot
// package looks up the highest-priority kernel the detected CPU supports.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-par/internal/cpu"
)

// Region is the per-image state a row kernel needs. Pixel (i, j) maps to
// x = X0 + i*Dx, y = Y0 + j*Dy, each product rounded to float32.
type Region struct {
	X0, Y0        float32
	Dx, Dy        float32
	Width         int
	MaxIterations int
}

// RowFn fills out[0:Width] with escape iteration counts for image row row.
type RowFn func(r Region, row int, out []int)

// OpEntry is one registered row kernel.
type OpEntry struct {
	Name      string
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible entries; higher wins.
	//   - generic: 0
	//   - sse2: 10
	//   - neon: 15
	//   - avx2: 20
	Priority int

	// Lanes is the number of pixels the kernel advances together.
	Lanes int

	Row RowFn
}

// OpRegistry stores available implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default row kernel registry.
var Global = &OpRegistry{}

// Register adds an implementation entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority implementation supported by features,
// or nil when nothing matches.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// LookupName returns the entry registered under name, or nil.
func (r *OpRegistry) LookupName(name string) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			return &r.entries[i]
		}
	}
	return nil
}

func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of entries for tests/debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
