package cpu

import (
	"runtime"
	"strings"
	"testing"
)

func TestDetectFeatures(t *testing.T) {
	f := DetectFeatures()
	if f.Architecture != runtime.GOARCH {
		t.Fatalf("Architecture = %q, want %q", f.Architecture, runtime.GOARCH)
	}
	if !strings.Contains(f.String(), "arch="+runtime.GOARCH) {
		t.Fatalf("String() = %q missing architecture", f.String())
	}
}

func TestCyclesMonotonic(t *testing.T) {
	start := ReadCycleCounter()
	if d := CyclesSince(start); d < 0 {
		t.Fatalf("CyclesSince went backwards: %d", d)
	}
}
