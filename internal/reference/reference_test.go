package reference

import "testing"

func TestOrderSmall(t *testing.T) {
	cases := []struct {
		n    int
		want []int
	}{
		{1, []int{0}},
		{2, []int{0, 1}},
		{4, []int{0, 2, 1, 3}},
		{8, []int{0, 4, 2, 6, 1, 5, 7, 3}},
	}
	for _, tc := range cases {
		got := Order(tc.n)
		if len(got) != len(tc.want) {
			t.Fatalf("Order(%d) length = %d, want %d", tc.n, len(got), len(tc.want))
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("Order(%d) = %v, want %v", tc.n, got, tc.want)
			}
		}
	}
}

func TestOrderIsPermutation(t *testing.T) {
	for n := 4; n <= 4096; n *= 2 {
		ord := Order(n)
		seen := make([]bool, n)
		for p, f := range ord {
			if f < 0 || f >= n {
				t.Fatalf("n=%d: frequency %d at position %d out of range", n, f, p)
			}
			if seen[f] {
				t.Fatalf("n=%d: frequency %d appears twice", n, f)
			}
			seen[f] = true
		}
	}
}

func TestOrderBlockStructure(t *testing.T) {
	for n := 8; n <= 4096; n *= 2 {
		ord := Order(n)
		for p := 0; p < n/2; p++ {
			if ord[p]%2 != 0 {
				t.Fatalf("n=%d: odd frequency %d in half block", n, ord[p])
			}
		}
		for p := n / 2; p < n/2+n/4; p++ {
			if ord[p]%4 != 1 {
				t.Fatalf("n=%d: frequency %d in first quarter block is not 1 mod 4", n, ord[p])
			}
		}
		for p := n/2 + n/4; p < n; p++ {
			if ord[p]%4 != 3 {
				t.Fatalf("n=%d: frequency %d in second quarter block is not 3 mod 4", n, ord[p])
			}
		}
	}
}
