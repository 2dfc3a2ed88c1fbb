package cfft

import "github.com/cwbudde/mersenne-fft/internal/m31"

// Fully unrolled kernels for the smallest sizes. The recursion bottoms
// out here instead of degenerating into passes over two or four
// elements, which would spend most of their time on loop and slice
// overhead.

// fwd2 is the size-2 transform. Output components are reduced.
func fwd2(a []Complex) {
	assertLen(a, 2)
	tre, tim := a[1].Re, a[1].Im
	a[1].Re = m31.Reduce(a[0].Re - tre)
	a[1].Im = m31.Reduce(a[0].Im - tim)
	a[0].Re = m31.ReduceNarrow(a[0].Re + tre)
	a[0].Im = m31.ReduceNarrow(a[0].Im + tim)
}

// fwd4 is the size-4 transform: two levels of add/sub structure, no
// twiddles. Outputs are left unreduced, within a small multiple of P
// (under 8P even when fed fwd8's unreduced first half); they surface
// only as final transform output, never as input to a further stage,
// so the deferred reduction is safe. Normalize restores the reduced
// range.
func fwd4(a []Complex) {
	assertLen(a, 4)
	t5 := a[2].Re
	t1 := a[0].Re - t5
	t7 := a[3].Re
	t5 += a[0].Re
	t3 := a[1].Re - t7
	t7 += a[1].Re
	t8 := t5 + t7
	a[0].Re = t8
	t5 -= t7
	a[1].Re = t5
	t6 := a[2].Im
	t2 := a[0].Im - t6
	t6 += a[0].Im
	t5 = a[3].Im
	a[2].Im = t2 + t3
	t2 -= t3
	a[3].Im = t2
	t4 := a[1].Im - t5
	a[3].Re = t1 + t4
	t1 -= t4
	a[2].Re = t1
	t5 += a[1].Im
	a[0].Im = t6 + t5
	t6 -= t5
	a[1].Im = t6
}

// fwd8 is the size-8 transform: one unrolled decimation layer whose
// only nontrivial twiddle is SqrtHalf*(1+i), then fwd4 on the half.
// The second half is reduced before returning since its components
// reach magnitude 2^17 * P; the first half carries fwd4's unreduced
// output convention.
func fwd8(a []Complex) {
	assertLen(a, 8)
	t7 := a[4].Im
	t4 := a[0].Im - t7
	t7 += a[0].Im
	a[0].Im = t7

	t8 := a[6].Re
	t5 := a[2].Re - t8
	t8 += a[2].Re
	a[2].Re = t8

	t7b := a[6].Im
	a[6].Im = t4 - t5
	t4 += t5
	a[4].Im = t4

	t6 := a[2].Im - t7b
	t7b += a[2].Im
	a[2].Im = t7b

	t8 = a[4].Re
	t3 := a[0].Re - t8
	t8 += a[0].Re
	a[0].Re = t8

	a[4].Re = t3 - t6
	t3 += t6
	a[6].Re = t3

	t7 = a[5].Re
	t3 = a[1].Re - t7
	t7 += a[1].Re
	a[1].Re = t7

	t8 = a[7].Im
	t6 = a[3].Im - t8
	t8 += a[3].Im
	a[3].Im = t8
	t1 := t3 - t6
	t3 += t6

	t7 = a[5].Im
	t4 = a[1].Im - t7
	t7 += a[1].Im
	a[1].Im = t7

	t8 = a[7].Re
	t5 = a[3].Re - t8
	t8 += a[3].Re
	a[3].Re = t8

	t2 := t4 - t5
	t4 += t5

	t6 = t1 - t4
	t8 = m31.SqrtHalf
	t6 *= t8
	a[5].Re = a[4].Re - t6
	t1 += t4
	t1 *= t8
	a[5].Im = a[4].Im - t1
	t6 += a[4].Re
	a[4].Re = t6
	t1 += a[4].Im
	a[4].Im = t1

	t5 = t2 - t3
	t5 *= t8
	a[7].Im = a[6].Im - t5
	t2 += t3
	t2 *= t8
	a[7].Re = a[6].Re - t2
	t2 += a[6].Re
	a[6].Re = t2
	t5 += a[6].Im
	a[6].Im = t5

	fwd4(a[:4])

	Normalize(a[4:])
}

// fwd16 is the size-16 transform: one explicit four-butterfly pass
// (identity, omega16, half, then omega16 with components swapped,
// since omega16^3 = i * conj(omega16)), then the three sub-blocks.
func fwd16(a []Complex) {
	assertLen(a, 16)
	transformZero(&a[0], &a[4], &a[8], &a[12])
	w := roots[4][0]
	transform(&a[1], &a[5], &a[9], &a[13], w.Re, w.Im)
	transformHalf(&a[2], &a[6], &a[10], &a[14])
	transform(&a[3], &a[7], &a[11], &a[15], w.Im, w.Re)

	fwd4(a[8:12])
	fwd4(a[12:16])
	fwd8(a[:8])
}

// inv2 inverts fwd2; the size-2 transform is self-adjoint.
func inv2(a []Complex) {
	assertLen(a, 2)
	tre, tim := a[1].Re, a[1].Im
	a[1].Re = m31.Reduce(a[0].Re - tre)
	a[1].Im = m31.Reduce(a[0].Im - tim)
	a[0].Re = m31.ReduceNarrow(a[0].Re + tre)
	a[0].Im = m31.ReduceNarrow(a[0].Im + tim)
}

// inv4 is the conjugate transpose of fwd4, applied as a dense 4x4
// combination. Outputs are reduced.
func inv4(a []Complex) {
	assertLen(a, 4)
	b0, b1, b2, b3 := a[0], a[1], a[2], a[3]
	a[0].Re = m31.Reduce(b0.Re + b1.Re + b2.Re + b3.Re)
	a[0].Im = m31.Reduce(b0.Im + b1.Im + b2.Im + b3.Im)
	a[1].Re = m31.Reduce(b0.Re - b1.Re + b2.Im - b3.Im)
	a[1].Im = m31.Reduce(b0.Im - b1.Im - b2.Re + b3.Re)
	a[2].Re = m31.Reduce(b0.Re + b1.Re - b2.Re - b3.Re)
	a[2].Im = m31.Reduce(b0.Im + b1.Im - b2.Im - b3.Im)
	a[3].Re = m31.Reduce(b0.Re - b1.Re - b2.Im + b3.Im)
	a[3].Im = m31.Reduce(b0.Im - b1.Im + b2.Re - b3.Re)
}
