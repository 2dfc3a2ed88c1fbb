package mersennefft

import (
	"github.com/cwbudde/mersenne-fft/internal/cfft"
	"github.com/cwbudde/mersenne-fft/internal/m31"
)

// Forward transforms a in place. Components must lie in [0, P] on
// entry. The result is in the engine's frequency ordering and may
// carry components outside [0, P] at a handful of positions; call
// Normalize before comparing values or feeding them to Inverse.
func Forward(a []Complex) error {
	if !supported(len(a)) {
		return ErrInvalidLength
	}
	cfft.Forward(a)
	return nil
}

// Inverse applies the inverse transform in place, including the 1/N
// scaling, so that Forward followed by Inverse is the identity.
// Components may be unnormalized Forward output; Inverse normalizes
// first. Output components lie in [0, P].
func Inverse(a []Complex) error {
	if !supported(len(a)) {
		return ErrInvalidLength
	}
	cfft.Normalize(a)
	cfft.Inverse(a)
	scale(a, m31.InvPow2(log2(len(a))))
	return nil
}

// Normalize reduces every component of a to [0, P] in place.
func Normalize(a []Complex) {
	cfft.Normalize(a)
}

// scale multiplies every component by the reduced scalar s.
func scale(a []Complex, s int64) {
	for i := range a {
		a[i].Re = m31.Mul(a[i].Re, s)
		a[i].Im = m31.Mul(a[i].Im, s)
	}
}
