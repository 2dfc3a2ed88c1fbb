package cfft

// inverseKernels maps log2(N) to the inverse kernel for size N. The
// table reaches down to N = 2 because the inverse recursion, unlike
// the forward one, does not bottom out in unrolled 8- and 16-point
// kernels and so visits size-2 quarters.
var inverseKernels [maxLogN + 1]func([]Complex)

func init() {
	inverseKernels[1] = inv2
	inverseKernels[2] = inv4
	for k := 3; k <= maxLogN; k++ {
		inverseKernels[k] = invSplit
	}
}

// Inverse applies the conjugate transpose of Forward in place, so that
// Inverse(Forward(x)) = N * x. len(a) must be a power of two in
// [4, 4096] with essentially reduced components: Forward output must
// be normalized first. Output components are essentially reduced; the
// caller folds in the 1/N factor.
func Inverse(a []Complex) {
	inverseKernels[log2(len(a))](a)
}

// invSplit transposes fwdSplit: the sub-block inverses run first, then
// the adjoint pass recombines the quarters.
func invSplit(a []Complex) {
	k := log2(len(a))
	q := len(a) / 4
	inverseKernels[k-1](a[:2*q])
	inverseKernels[k-2](a[2*q : 3*q])
	inverseKernels[k-2](a[3*q:])
	ipass(a, roots[k])
}
