//go:build cfftdebug

package cfft

import (
	"fmt"

	"github.com/cwbudde/mersenne-fft/internal/m31"
)

// Debug builds check the kernel contracts that release builds leave to
// the caller: buffer sizing and the essentially-reduced input
// invariant. Violations in release builds produce garbage output with
// no signal, never a panic.

func assertLen(a []Complex, n int) {
	if len(a) != n {
		panic(fmt.Sprintf("cfft: kernel for size %d called with buffer of length %d", n, len(a)))
	}
}

func assertReduced(elems ...*Complex) {
	for _, e := range elems {
		if e.Re < 0 || e.Re > m31.P || e.Im < 0 || e.Im > m31.P {
			panic(fmt.Sprintf("cfft: butterfly input (%d, %d) is not essentially reduced", e.Re, e.Im))
		}
	}
}
