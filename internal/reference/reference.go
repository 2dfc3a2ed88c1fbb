// Package reference evaluates the transform by direct summation. It is
// quadratic in the size and exists only to validate the split-radix
// engine and to document its output ordering.
package reference

import (
	"github.com/cwbudde/mersenne-fft/internal/cfft"
	"github.com/cwbudde/mersenne-fft/internal/m31"
)

// Order returns the output permutation of the engine for size n:
// output position p holds frequency Order(n)[p]. The permutation
// follows the transform's recursive structure. The half block keeps
// even frequencies in the half transform's own order; the first
// quarter block takes frequencies 1 mod 4 and the second takes
// frequencies 3 mod 4, the latter rotated by one quarter position.
func Order(n int) []int {
	switch n {
	case 1:
		return []int{0}
	case 2:
		return []int{0, 1}
	case 4:
		return []int{0, 2, 1, 3}
	}
	half := Order(n / 2)
	quarter := Order(n / 4)
	ord := make([]int, n)
	for p, f := range half {
		ord[p] = 2 * f
	}
	for p, f := range quarter {
		ord[n/2+p] = 4*f + 1
		ord[n/2+n/4+p] = 4*((f-1+n/4)%(n/4)) + 3
	}
	return ord
}

// DFT returns the transform of x by direct summation, in the engine's
// output ordering, with canonical components. x is not modified.
func DFT(x []cfft.Complex) []cfft.Complex {
	n := len(x)
	w := cfft.RootOfUnity(n)
	ord := Order(n)
	out := make([]cfft.Complex, n)
	for p := 0; p < n; p++ {
		wk := pow(w, ord[p])
		var acc cfft.Complex
		cur := cfft.Complex{Re: 1, Im: 0}
		for _, xv := range x {
			t := mul(xv, cur)
			acc.Re = m31.ReduceNarrow(acc.Re + t.Re)
			acc.Im = m31.ReduceNarrow(acc.Im + t.Im)
			cur = mul(cur, wk)
		}
		out[p] = cfft.Complex{Re: m31.Canonical(acc.Re), Im: m31.Canonical(acc.Im)}
	}
	return out
}

func mul(x, y cfft.Complex) cfft.Complex {
	return cfft.Complex{
		Re: m31.Reduce(x.Re*y.Re - x.Im*y.Im),
		Im: m31.Reduce(x.Re*y.Im + x.Im*y.Re),
	}
}

func pow(w cfft.Complex, e int) cfft.Complex {
	r := cfft.Complex{Re: 1, Im: 0}
	for e > 0 {
		if e&1 == 1 {
			r = mul(r, w)
		}
		w = mul(w, w)
		e >>= 1
	}
	return r
}
