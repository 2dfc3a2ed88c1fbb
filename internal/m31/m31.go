// Package m31 provides scalar arithmetic over the Mersenne prime field
// F_p with p = 2^31 - 1.
//
// Most of the package works with "essentially reduced" values in the
// closed range [0, P] rather than canonical residues in [0, P): keeping
// P as an admissible representative of zero lets the transform kernels
// fold the sum of two reduced values back into range with a single
// conditional subtraction.
package m31

const (
	// P is the field modulus, the Mersenne prime 2^31 - 1.
	P int64 = 1<<31 - 1

	// MaxBalanced is (P-1)/2, the component magnitude bound of the
	// balanced representation used for twiddle factors.
	MaxBalanced int64 = (P - 1) / 2

	// SqrtHalf is a square root of one half: (2^15)^2 = 2^30 = 1/2 (mod P).
	SqrtHalf int64 = 1 << 15
)

// ReduceNarrow maps x, which must lie in [0, 2P], back to [0, P] with a
// single conditional subtraction. It is the designated reduction for
// the sum of two essentially reduced values.
func ReduceNarrow(x int64) int64 {
	if x > P {
		x -= P
	}
	return x
}

// Reduce maps any int64 magnitude the kernels can produce (up to
// 2P^2 + P, well inside the signed 64-bit range) to [0, P]. Two
// Mersenne folds using 2^31 = 1 (mod P) bring x into [-2, P+3]; the
// conditional adjustments finish the job.
func Reduce(x int64) int64 {
	x = (x & P) + (x >> 31)
	x = (x & P) + (x >> 31)
	if x < 0 {
		x += P
	}
	if x > P {
		x -= P
	}
	return x
}

// Canonical maps an essentially reduced value to its least nonnegative
// residue, folding P to 0.
func Canonical(x int64) int64 {
	if x == P {
		return 0
	}
	return x
}

// Add returns x+y in [0, P]. Both inputs must be essentially reduced.
func Add(x, y int64) int64 {
	return ReduceNarrow(x + y)
}

// Sub returns x-y in [0, P]. Both inputs must be essentially reduced.
func Sub(x, y int64) int64 {
	return ReduceNarrow(x - y + P)
}

// Mul returns x*y in [0, P]. Both inputs must be essentially reduced,
// so the product is below P^2 and a single wide reduction suffices.
func Mul(x, y int64) int64 {
	return Reduce(x * y)
}

// Pow returns base^exp in [0, P) by square and multiply.
func Pow(base, exp int64) int64 {
	result := int64(1)
	b := Canonical(Reduce(base))
	for e := exp; e > 0; e >>= 1 {
		if e&1 == 1 {
			result = Canonical(Mul(result, b))
		}
		b = Canonical(Mul(b, b))
	}
	return result
}

// Inv returns the multiplicative inverse of x via Fermat's little
// theorem. x must be nonzero mod P.
func Inv(x int64) int64 {
	return Pow(x, P-2)
}

// InvPow2 returns the inverse of 2^k for 0 <= k <= 31, using
// 2^31 = 1 (mod P): (2^k)^-1 = 2^(31-k).
func InvPow2(k uint) int64 {
	return ReduceNarrow(1 << (31 - k))
}

// Sqrt returns a square root of x when one exists. P = 3 (mod 4), so
// the candidate is x^((P+1)/4); ok reports whether it squares back to x.
func Sqrt(x int64) (root int64, ok bool) {
	root = Pow(x, (P+1)/4)
	if Canonical(Mul(root, root)) != Canonical(Reduce(x)) {
		return 0, false
	}
	return root, true
}

// ToBalanced maps an essentially reduced value into the balanced
// representation [-(P-1)/2, (P-1)/2].
func ToBalanced(x int64) int64 {
	x = Canonical(x)
	if x > MaxBalanced {
		x -= P
	}
	return x
}

// FromBalanced maps a balanced value back to its canonical residue.
func FromBalanced(x int64) int64 {
	if x < 0 {
		x += P
	}
	return x
}
