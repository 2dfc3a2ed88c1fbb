package m31

import (
	"math/rand"
	"testing"
)

func TestReduceNarrow(t *testing.T) {
	t.Parallel()

	cases := []struct{ in, want int64 }{
		{0, 0},
		{1, 1},
		{P, P},
		{P + 1, 1},
		{2 * P, P},
	}
	for _, c := range cases {
		if got := ReduceNarrow(c.in); got != c.want {
			t.Errorf("ReduceNarrow(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestReduceMatchesModP(t *testing.T) {
	t.Parallel()

	// Edge magnitudes the butterfly kernels can produce, then random
	// values across the full documented range.
	edges := []int64{
		0, 1, -1, P, -P, P + 1, 2 * P, -2 * P,
		2*P*P - 2*P, -(2*P*P - 2*P), 2*P*P + P, -(2*P*P + P),
		1<<17*P, -(1 << 17 * P),
	}
	for _, x := range edges {
		checkReduce(t, x)
	}

	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		x := rnd.Int63n(2*P*P + P + 1)
		if rnd.Intn(2) == 1 {
			x = -x
		}
		checkReduce(t, x)
	}
}

func checkReduce(t *testing.T, x int64) {
	t.Helper()

	got := Reduce(x)
	if got < 0 || got > P {
		t.Fatalf("Reduce(%d) = %d out of [0, P]", x, got)
	}
	want := x % P
	if want < 0 {
		want += P
	}
	if Canonical(got) != want {
		t.Fatalf("Reduce(%d) = %d, want residue %d", x, got, want)
	}
}

func TestMulPowInv(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		x := rnd.Int63n(P-1) + 1
		inv := Inv(x)
		if got := Canonical(Mul(x, inv)); got != 1 {
			t.Fatalf("x * Inv(x) = %d for x=%d", got, x)
		}
	}

	if got := Pow(2, 31); got != 1 {
		t.Errorf("2^31 = %d, want 1", got)
	}
	if got := Canonical(Mul(SqrtHalf, SqrtHalf)); got != Canonical(Mul(1, InvPow2(1))) {
		t.Errorf("SqrtHalf^2 = %d, want 1/2", got)
	}
}

func TestInvPow2(t *testing.T) {
	t.Parallel()

	for k := uint(0); k <= 12; k++ {
		inv := InvPow2(k)
		if got := Canonical(Mul(inv, int64(1)<<k)); got != 1 {
			t.Errorf("InvPow2(%d) * 2^%d = %d, want 1", k, k, got)
		}
	}
}

func TestSqrt(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		x := rnd.Int63n(P)
		sq := Mul(x, x)
		r, ok := Sqrt(sq)
		if !ok {
			t.Fatalf("Sqrt(%d^2) reported no root", x)
		}
		if got := Canonical(Mul(r, r)); got != Canonical(sq) {
			t.Fatalf("Sqrt(%d)^2 = %d, want %d", sq, got, Canonical(sq))
		}
	}

	// 7 is a quadratic non-residue mod P and must be rejected.
	if _, ok := Sqrt(7); ok {
		t.Error("Sqrt(7) reported a root; 7 is a non-residue mod P")
	}
}

func TestBalancedRoundTrip(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(4))
	for i := 0; i < 1000; i++ {
		x := rnd.Int63n(P + 1)
		b := ToBalanced(x)
		if b < -MaxBalanced || b > MaxBalanced {
			t.Fatalf("ToBalanced(%d) = %d out of range", x, b)
		}
		if got := FromBalanced(b); got != Canonical(x) {
			t.Fatalf("FromBalanced(ToBalanced(%d)) = %d", x, got)
		}
	}
}
