// Package cpu reports processor capabilities and provides coarse cycle
// timing for the benchmark harness.
package cpu

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"
)

// Features describes CPU capabilities relevant to the integer kernels.
// The transforms themselves are pure Go; the flags exist so benchmark
// output records what the machine could do.
type Features struct {
	HasSSE2      bool
	HasAVX2      bool
	HasAVX512    bool
	HasNEON      bool
	Architecture string
}

// DetectFeatures reports the available CPU features for the current
// process.
func DetectFeatures() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}

// String renders the feature set as a one-line banner.
func (f Features) String() string {
	return fmt.Sprintf("arch=%s sse2=%v avx2=%v avx512=%v neon=%v",
		f.Architecture, f.HasSSE2, f.HasAVX2, f.HasAVX512, f.HasNEON)
}
