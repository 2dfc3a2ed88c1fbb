package cfft

// pass applies one decimation layer over the whole buffer: quarter i
// of the work pairs element i of each contiguous quarter through one
// butterfly. w is the balanced twiddle table for this size, with
// w[i-1] = omega^i; position 0 takes the identity butterfly.
func pass(a []Complex, w []Complex) {
	q := len(a) / 4
	a1 := a[q : 2*q]
	a2 := a[2*q : 3*q]
	a3 := a[3*q:]
	transformZero(&a[0], &a1[0], &a2[0], &a3[0])
	for i := 1; i < q; i++ {
		t := w[i-1]
		transform(&a[i], &a1[i], &a2[i], &a3[i], t.Re, t.Im)
	}
}

// ipass is the conjugate transpose of pass. The table entry at
// position len(a)/8 is omega^(N/8) = SqrtHalf*(1+i) for every size, so
// the loop is split there to use the multiplierless half form; at
// N = 8 both side loops are empty and only the zero and half
// butterflies run.
func ipass(a []Complex, w []Complex) {
	q := len(a) / 4
	a1 := a[q : 2*q]
	a2 := a[2*q : 3*q]
	a3 := a[3*q:]
	itransformZero(&a[0], &a1[0], &a2[0], &a3[0])
	h := len(a) / 8
	for i := 1; i < h; i++ {
		t := w[i-1]
		itransform(&a[i], &a1[i], &a2[i], &a3[i], t.Re, t.Im)
	}
	itransformHalf(&a[h], &a1[h], &a2[h], &a3[h])
	for i := h + 1; i < q; i++ {
		t := w[i-1]
		itransform(&a[i], &a1[i], &a2[i], &a3[i], t.Re, t.Im)
	}
}
