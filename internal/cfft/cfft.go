// Package cfft implements fixed-size split-radix Fourier transforms
// over the complex extension of the Mersenne-31 field.
//
// The engine supports the power-of-two sizes 4 through 4096. All
// arithmetic is integer add/sub/mul on int64 with deferred modular
// reduction: every kernel is annotated with the magnitude bound its
// intermediates can reach, and reduction happens only at the designated
// checkpoints where the bound would otherwise outgrow the accumulator.
// Narrowing any of the arithmetic below 64 bits corrupts results
// silently, so the bounds are part of the contract, not commentary.
//
// Kernels mutate caller-owned buffers in place and never allocate. The
// output layout is the split-radix ordering internal to the kernel
// family; Inverse undoes Forward (up to the factor N), and
// internal/reference documents the ordering for validation.
package cfft

import "github.com/cwbudde/mersenne-fft/internal/m31"

// Complex is one element of F_p[i] with p = 2^31 - 1 (p = 3 mod 4, so
// x^2 + 1 is irreducible and the extension is a field). Kernel inputs
// and outputs use essentially reduced components in [0, P]; twiddle
// tables use balanced components in [-(P-1)/2, (P-1)/2] instead, which
// halves the worst-case product magnitude inside the butterflies.
type Complex struct {
	Re, Im int64
}

// mul returns the canonical product of two reduced elements. Table
// construction only; the transform kernels inline their multiplies to
// control reduction points.
func mul(x, y Complex) Complex {
	return Complex{
		Re: m31.Reduce(x.Re*y.Re - x.Im*y.Im),
		Im: m31.Reduce(x.Re*y.Im + x.Im*y.Re),
	}
}

// canon returns z with both components in canonical form.
func canon(z Complex) Complex {
	return Complex{m31.Canonical(z.Re), m31.Canonical(z.Im)}
}

// Normalize reduces every component of a to the essentially reduced
// range [0, P]. Forward output is reduced only at the kernel's
// checkpoint positions, so callers run this before feeding a transform
// result anywhere that expects the reduced invariant.
func Normalize(a []Complex) {
	for i := range a {
		a[i].Re = m31.Reduce(a[i].Re)
		a[i].Im = m31.Reduce(a[i].Im)
	}
}

// log2 returns the base-2 logarithm of n, which must be a power of two.
func log2(n int) uint {
	k := uint(0)
	for n > 1 {
		n >>= 1
		k++
	}
	return k
}
