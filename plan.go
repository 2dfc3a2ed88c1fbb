package mersennefft

import (
	"github.com/cwbudde/mersenne-fft/internal/cfft"
	"github.com/cwbudde/mersenne-fft/internal/m31"
)

// Plan provides transforms with all validation and dispatch resolved
// at creation time, for callers running many transforms of one size.
//
// Unlike the package-level functions, Plan methods perform no
// validation: the caller guarantees len(a) == Len(). Plans hold no
// mutable state and are safe for concurrent use.
type Plan struct {
	n     int
	scale int64
}

// NewPlan creates a plan for size n. Returns ErrInvalidLength if n is
// not a power of two in [MinSize, MaxSize].
func NewPlan(n int) (*Plan, error) {
	if !supported(n) {
		return nil, ErrInvalidLength
	}
	return &Plan{n: n, scale: m31.InvPow2(log2(n))}, nil
}

// Len returns the transform size.
func (p *Plan) Len() int {
	return p.n
}

// Forward transforms a in place without validation.
func (p *Plan) Forward(a []Complex) {
	cfft.Forward(a)
}

// Inverse applies the scaled inverse transform in place without
// validation.
func (p *Plan) Inverse(a []Complex) {
	cfft.Normalize(a)
	cfft.Inverse(a)
	scale(a, p.scale)
}
