package mersennefft_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fft "github.com/cwbudde/mersenne-fft"
)

func TestNewPlanRejectsInvalidSizes(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 6, 100, 8192} {
		_, err := fft.NewPlan(n)
		require.ErrorIs(t, err, fft.ErrInvalidLength, "n=%d", n)
	}
}

func TestPlanMatchesPackageFunctions(t *testing.T) {
	rnd := rand.New(rand.NewSource(21))
	for _, n := range []int{4, 64, 1024} {
		p, err := fft.NewPlan(n)
		require.NoError(t, err)
		assert.Equal(t, n, p.Len())

		x := randVec(rnd, n)
		y := append([]fft.Complex(nil), x...)

		p.Forward(x)
		require.NoError(t, fft.Forward(y))
		fft.Normalize(x)
		fft.Normalize(y)
		assert.Equal(t, x, y, "forward n=%d", n)

		p.Inverse(x)
		require.NoError(t, fft.Inverse(y))
		assert.Equal(t, x, y, "inverse n=%d", n)
	}
}

func TestPlanRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(22))
	p, err := fft.NewPlan(256)
	require.NoError(t, err)

	x := randVec(rnd, 256)
	want := canonical(x)
	p.Forward(x)
	p.Inverse(x)
	assert.Equal(t, want, canonical(x))
}

// Plans share only immutable tables, so one plan may serve many
// goroutines as long as each works on its own buffer.
func TestPlanConcurrentUse(t *testing.T) {
	p, err := fft.NewPlan(128)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rnd := rand.New(rand.NewSource(seed))
			x := randVec(rnd, 128)
			want := canonical(x)
			for iter := 0; iter < 50; iter++ {
				p.Forward(x)
				p.Inverse(x)
			}
			assert.Equal(t, want, canonical(x))
		}(int64(g))
	}
	wg.Wait()
}
