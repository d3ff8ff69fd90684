// Package cpu reports host SIMD capabilities.
//
// The results drive two decisions: which Mandelbrot row kernel the kernel
// registry selects, and the lane width suggested for the simulated vector
// unit when the caller does not pick one.
//
// Detection runs lazily on the first call to DetectFeatures and is cached.
package cpu

import (
	"sync"
)

// SIMDLevel names a SIMD instruction set extension.
// Levels are not comparable across architectures (AVX2 vs NEON).
type SIMDLevel int

const (
	// SIMDNone means pure Go scalar code.
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 is the amd64 baseline, four float32 lanes.
	SIMDSSE2

	// SIMDAVX2 provides eight float32 lanes.
	SIMDAVX2

	// SIMDNEON is ARM Advanced SIMD, four float32 lanes.
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX2:
		return "AVX2"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Lanes returns the number of float32 lanes one register holds at level s.
func (s SIMDLevel) Lanes() int {
	switch s {
	case SIMDSSE2, SIMDNEON:
		return 4
	case SIMDAVX2:
		return 8
	default:
		return 1
	}
}

// Features describes CPU capabilities relevant to kernel selection.
type Features struct {
	HasSSE2 bool
	HasAVX2 bool
	HasNEON bool

	// ForceGeneric disables every SIMD level except SIMDNone.
	ForceGeneric bool

	// Architecture is runtime.GOARCH.
	Architecture string
}

// Best returns the widest SIMD level f supports.
func (f Features) Best() SIMDLevel {
	switch {
	case f.ForceGeneric:
		return SIMDNone
	case f.HasAVX2:
		return SIMDAVX2
	case f.HasSSE2:
		return SIMDSSE2
	case f.HasNEON:
		return SIMDNEON
	default:
		return SIMDNone
	}
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
	detectMutex      sync.Mutex

	// forcedFeatures overrides hardware detection in tests.
	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the CPU features of the current system.
// It is safe for concurrent use.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// NativeLanes returns the float32 lane count of the widest detected level.
func NativeLanes() int {
	return DetectFeatures().Best().Lanes()
}

// SetForcedFeatures overrides CPU feature detection. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears forced features and the detection cache.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports reports whether features can run code built for level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
