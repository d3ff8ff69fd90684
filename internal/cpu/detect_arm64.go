//go:build arm64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl reports NEON, which is mandatory on ARMv8.
func detectFeaturesImpl() Features {
	return Features{
		HasNEON:      cpu.ARM64.HasASIMD,
		ForceGeneric: forceGenericDefault,
		Architecture: runtime.GOARCH,
	}
}
