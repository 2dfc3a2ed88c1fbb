package cfft

import "github.com/cwbudde/mersenne-fft/internal/m31"

// The three forward stage butterflies below realize one radix-4
// conjugate-pair split-radix step on a quadruple (a0, a1, a2, a3) of
// essentially reduced elements:
//
//	a0 <- a0 + a2
//	a1 <- a1 + a3
//	a2 <- w * ((a0 - a2) + i*(a1 - a3))
//	a3 <- conj(w) * ((a0 - a2) - i*(a1 - a3))
//
// They differ only in the twiddle: an arbitrary balanced table root,
// the fixed square-root-of-one-half factor, or the identity. The half
// and zero forms exist to skip multiplications at the statically known
// positions and are exactly equivalent to the general form with the
// corresponding twiddle value.

// transform is the general form. With 0 <= a.{Re,Im} <= P on input and
// a balanced twiddle (wre, wim), a0 and a1 stay within [0, 2P] before
// their narrow reduction, and the a2/a3 accumulators stay within
// 2 * 2P * (P-1)/2 = 2P^2 - 2P < 2^63. Reduced-form twiddles would
// push that to 4P^2 - 4P > 2^64, which is why the tables are balanced.
func transform(a0, a1, a2, a3 *Complex, wre, wim int64) {
	assertReduced(a0, a1, a2, a3)

	t6 := a2.Re
	t1 := a0.Re - t6 // a0.Re - a2.Re
	t6 += a0.Re
	a0.Re = m31.ReduceNarrow(t6)
	t3 := a3.Im
	t4 := a1.Im - t3 // a1.Im - a3.Im
	t8 := t1 - t4
	t1 += t4
	t3 += a1.Im
	a1.Im = m31.ReduceNarrow(t3)
	t5 := wre
	t7 := t8 * t5
	t4 = t1 * t5
	t8 *= wim
	t2 := a3.Re
	t3 = a1.Re - t2 // a1.Re - a3.Re
	t2 += a1.Re
	a1.Re = m31.ReduceNarrow(t2)

	t1 *= wim
	t6 = a2.Im
	t2 = a0.Im - t6 // a0.Im - a2.Im
	t6 += a0.Im
	a0.Im = m31.ReduceNarrow(t6)

	t6 = t2 + t3
	t2 -= t3
	t3 = t6 * wim
	t7 -= t3
	a2.Re = m31.Reduce(t7)
	t6 *= t5
	t6 += t8
	a2.Im = m31.Reduce(t6)

	t5 *= t2
	t5 -= t1
	a3.Im = m31.Reduce(t5)
	t2 *= wim
	t4 += t2
	a3.Re = m31.Reduce(t4)
}

// transformHalf fixes the twiddle at SqrtHalf * (1 + i), collapsing the
// complex multiply to one scalar multiply per output component. The
// a2/a3 accumulators stay within 4P * 2^15 = 2^17 * P.
func transformHalf(a0, a1, a2, a3 *Complex) {
	assertReduced(a0, a1, a2, a3)

	t1 := a2.Re
	t5 := a0.Re - t1
	t1 += a0.Re
	a0.Re = m31.ReduceNarrow(t1)
	t4 := a3.Im
	t8 := a1.Im - t4
	t1 = t5 - t8
	t5 += t8
	t4 += a1.Im
	a1.Im = m31.ReduceNarrow(t4)
	t3 := a3.Re
	t7 := a1.Re - t3
	t3 += a1.Re
	a1.Re = m31.ReduceNarrow(t3)

	t8 = a2.Im
	t6 := a0.Im - t8
	t2 := t6 + t7
	t6 -= t7
	t8 += a0.Im
	a0.Im = m31.ReduceNarrow(t8)

	t4 = t6 + t5
	t3 = m31.SqrtHalf
	t4 *= t3
	a3.Re = m31.Reduce(t4)
	t6 -= t5
	t6 *= t3
	a3.Im = m31.Reduce(t6)

	t7 = t1 - t2
	t7 *= t3
	a2.Re = m31.Reduce(t7)
	t2 += t1
	t2 *= t3
	a2.Im = m31.Reduce(t2)
}

// transformZero fixes the twiddle at 1: no multiplication at all, and
// the a2/a3 components stay within [-2P, 2P].
func transformZero(a0, a1, a2, a3 *Complex) {
	assertReduced(a0, a1, a2, a3)

	t5 := a2.Re
	t1 := a0.Re - t5
	t5 += a0.Re
	a0.Re = m31.ReduceNarrow(t5)
	t8 := a3.Im
	t4 := a1.Im - t8
	t7 := a3.Re
	t6 := t1 - t4
	a2.Re = m31.Reduce(t6)
	t1 += t4
	a3.Re = m31.Reduce(t1)
	t8 += a1.Im
	a1.Im = m31.ReduceNarrow(t8)
	t3 := a1.Re - t7
	t7 += a1.Re
	a1.Re = m31.ReduceNarrow(t7)

	t6 = a2.Im
	t2 := a0.Im - t6
	t7 = t2 + t3
	a2.Im = m31.Reduce(t7)
	t2 -= t3
	a3.Im = m31.Reduce(t2)
	t6 += a0.Im
	a0.Im = m31.ReduceNarrow(t6)
}

// The inverse stage butterflies are the conjugate transposes of the
// forward ones, taken stage by stage so that composing the inverse
// ladder with the forward ladder yields exactly N times the identity:
//
//	a0 <- b0 + conj(w)*b2 + w*b3
//	a1 <- b1 - i*conj(w)*b2 + i*w*b3
//	a2 <- b0 - conj(w)*b2 - w*b3
//	a3 <- b1 + i*conj(w)*b2 - i*w*b3
//
// All eight output components are wide-reduced, so inverse stages both
// consume and produce essentially reduced values.

// itransform is the general inverse form. The products stay within
// P^2 - P and the three-term sums within 2P^2 + P, inside int64.
func itransform(a0, a1, a2, a3 *Complex, wre, wim int64) {
	assertReduced(a0, a1, a2, a3)

	ure := wre*a2.Re + wim*a2.Im // conj(w) * b2
	uim := wre*a2.Im - wim*a2.Re
	vre := wre*a3.Re - wim*a3.Im // w * b3
	vim := wre*a3.Im + wim*a3.Re

	b0re, b0im := a0.Re, a0.Im
	b1re, b1im := a1.Re, a1.Im

	a0.Re = m31.Reduce(b0re + ure + vre)
	a0.Im = m31.Reduce(b0im + uim + vim)
	a2.Re = m31.Reduce(b0re - ure - vre)
	a2.Im = m31.Reduce(b0im - uim - vim)
	a1.Re = m31.Reduce(b1re + uim - vim)
	a1.Im = m31.Reduce(b1im - ure + vre)
	a3.Re = m31.Reduce(b1re - uim + vim)
	a3.Im = m31.Reduce(b1im + ure - vre)
}

// itransformHalf fixes the twiddle at SqrtHalf * (1 + i); one scalar
// multiply per combined term, bound 2^17 * P as in the forward half.
func itransformHalf(a0, a1, a2, a3 *Complex) {
	assertReduced(a0, a1, a2, a3)

	sre := m31.SqrtHalf * (a2.Re + a2.Im + a3.Re - a3.Im) // (u+v).Re
	sim := m31.SqrtHalf * (a2.Im - a2.Re + a3.Re + a3.Im) // (u+v).Im
	dre := m31.SqrtHalf * (a2.Re + a2.Im - a3.Re + a3.Im) // (u-v).Re
	dim := m31.SqrtHalf * (a2.Im - a2.Re - a3.Re - a3.Im) // (u-v).Im

	b0re, b0im := a0.Re, a0.Im
	b1re, b1im := a1.Re, a1.Im

	a0.Re = m31.Reduce(b0re + sre)
	a0.Im = m31.Reduce(b0im + sim)
	a2.Re = m31.Reduce(b0re - sre)
	a2.Im = m31.Reduce(b0im - sim)
	a1.Re = m31.Reduce(b1re + dim)
	a1.Im = m31.Reduce(b1im - dre)
	a3.Re = m31.Reduce(b1re - dim)
	a3.Im = m31.Reduce(b1im + dre)
}

// itransformZero fixes the twiddle at 1; purely additive, bound 3P.
func itransformZero(a0, a1, a2, a3 *Complex) {
	assertReduced(a0, a1, a2, a3)

	ure, uim := a2.Re, a2.Im
	vre, vim := a3.Re, a3.Im
	b0re, b0im := a0.Re, a0.Im
	b1re, b1im := a1.Re, a1.Im

	a0.Re = m31.Reduce(b0re + ure + vre)
	a0.Im = m31.Reduce(b0im + uim + vim)
	a2.Re = m31.Reduce(b0re - ure - vre)
	a2.Im = m31.Reduce(b0im - uim - vim)
	a1.Re = m31.Reduce(b1re + uim - vim)
	a1.Im = m31.Reduce(b1im - ure + vre)
	a3.Re = m31.Reduce(b1re - uim + vim)
	a3.Im = m31.Reduce(b1im + ure - vre)
}
