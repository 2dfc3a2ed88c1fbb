package cfft

import "github.com/cwbudde/mersenne-fft/internal/m31"

// The supported kernel sizes are 1<<minLogN through 1<<maxLogN.
const (
	minLogN = 2  // N = 4
	maxLogN = 12 // N = 4096
)

// omega[k] is the primitive 2^k-th root of unity the tables are built
// from, in canonical form. The chain is pinned at omega[3] = the 8th
// root 2^15 * (1 + i), whose square is i; every larger root is a
// square root of its predecessor, so omega[k]^(2^(k-3)) = omega[3] for
// all k and the half-point twiddle is always exactly SqrtHalf*(1+i).
var omega [maxLogN + 1]Complex

// roots[k] is the twiddle table for the decimation pass over N = 1<<k
// elements, k >= 3: 2n-1 balanced entries w[i-1] = omega[k]^i, where
// n = N/8. Tables are built once at package initialization and shared
// read-only by all transform invocations; concurrent readers need no
// synchronization.
var roots [maxLogN + 1][]Complex

func init() {
	omega[3] = Complex{m31.SqrtHalf, m31.SqrtHalf}
	for k := 4; k <= maxLogN; k++ {
		omega[k] = sqrtUnit(omega[k-1])
	}
	omega[2] = mul(omega[3], omega[3]) // i
	omega[1] = mul(omega[2], omega[2]) // -1
	omega[0] = Complex{1, 0}

	for k := 3; k <= maxLogN; k++ {
		roots[k] = buildTable(omega[k], 1<<k)
	}
}

// sqrtUnit returns a square root of the unit-norm element w = a + bi.
// Since norm(w) = a^2 + b^2 = 1, the root x + yi satisfies
// x^2 = (a+1)/2 and y = b/(2x). Either sign of x yields a valid chain
// member; the principal scalar root is used. Only reachable from init
// with roots of unity of 2-power order, for which a != -1, so x != 0.
func sqrtUnit(w Complex) Complex {
	x2 := m31.Mul(m31.Add(w.Re, 1), m31.InvPow2(1))
	x, ok := m31.Sqrt(x2)
	if !ok {
		panic("cfft: twiddle chain: (re+1)/2 is not a quadratic residue")
	}
	y := m31.Mul(w.Im, m31.Inv(m31.Add(x, x)))
	s := Complex{x, y}
	if canon(mul(s, s)) != canon(w) {
		panic("cfft: twiddle chain: square root does not square back")
	}
	return s
}

// buildTable returns the balanced twiddles w, w^2, ..., w^(2n-1) for
// the pass over size elements, n = size/8.
func buildTable(w Complex, size int) []Complex {
	table := make([]Complex, 2*(size/8)-1)
	cur := w
	for i := range table {
		table[i] = Complex{m31.ToBalanced(cur.Re), m31.ToBalanced(cur.Im)}
		cur = mul(cur, w)
	}
	return table
}

// RootOfUnity returns the canonical primitive n-th root of unity the
// engine's tables are derived from. It is exported for the reference
// DFT used in validation.
func RootOfUnity(n int) Complex {
	return omega[log2(n)]
}
