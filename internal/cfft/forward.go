package cfft

// forwardKernels maps log2(N) to the forward kernel for size N.
// Resolved once at init so the recursion dispatches through a table
// instead of re-deriving the size class on every level.
var forwardKernels [maxLogN + 1]func([]Complex)

func init() {
	forwardKernels[2] = fwd4
	forwardKernels[3] = fwd8
	forwardKernels[4] = fwd16
	for k := 5; k <= maxLogN; k++ {
		forwardKernels[k] = fwdSplit
	}
}

// Forward transforms a in place. len(a) must be a power of two in
// [4, 4096] with essentially reduced components; the caller validates.
// Output is in the engine's split-radix ordering and is unreduced at
// the positions fwd4 leaves unreduced; run Normalize before handing
// the result to anything expecting the reduced invariant.
func Forward(a []Complex) {
	forwardKernels[log2(len(a))](a)
}

// fwdSplit handles N >= 32: one decimation pass, then the two quarter
// sub-transforms and the half sub-transform. The quarters run before
// the half only by convention; the three regions are disjoint.
func fwdSplit(a []Complex) {
	k := log2(len(a))
	pass(a, roots[k])
	q := len(a) / 4
	forwardKernels[k-2](a[2*q : 3*q])
	forwardKernels[k-2](a[3*q:])
	forwardKernels[k-1](a[:2*q])
}
