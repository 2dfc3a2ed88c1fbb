// Package mersennefft provides integer Fourier transforms over the
// complex extension of the Mersenne prime field F_p[i], p = 2^31 - 1.
//
// Transforms are exact: no floating point is involved anywhere, so a
// round trip reproduces the input bit for bit (up to the canonical
// choice between 0 and P for the zero residue). Supported sizes are
// the powers of two from 4 through 4096.
//
// Forward output is produced in the engine's split-radix frequency
// ordering, not natural order, and some output components may exceed P
// until Normalize is applied. Inverse accepts normalized input and
// returns the original vector exactly, folding in the 1/N factor.
package mersennefft

import "github.com/cwbudde/mersenne-fft/internal/cfft"

// P is the field modulus 2^31 - 1. Components of Complex are residues
// modulo P; the values 0 and P both represent zero, and inputs must
// lie in [0, P].
const P int64 = 1<<31 - 1

// MinSize and MaxSize bound the supported transform lengths.
const (
	MinSize = 4
	MaxSize = 4096
)

// Complex is one element of F_p[i].
type Complex = cfft.Complex

// Sizes returns the supported transform lengths in increasing order.
func Sizes() []int {
	var s []int
	for n := MinSize; n <= MaxSize; n *= 2 {
		s = append(s, n)
	}
	return s
}

// supported reports whether n is a valid transform length.
func supported(n int) bool {
	return n >= MinSize && n <= MaxSize && n&(n-1) == 0
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
