package iir

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/internal/polyroot"
)

// ErrNotFactorable is returned by [Filter.Sections] when the numerator has
// lower degree than the denominator (a pure delay that a cascade of
// sections cannot express) or is identically zero.
var ErrNotFactorable = errors.New("iir: filter cannot be factored into sections")

// Sections factors the filter into a cascade of second-order sections
// (with one first-order section for odd orders) behind an overall gain.
// Zeros and poles are grouped into conjugate pairs and pairs of real
// roots.
func (f *Filter) Sections() (*biquad.Chain, error) {
	if f.num.IsZero() || len(f.zeros) != len(f.poles) {
		return nil, fmt.Errorf("%w: %d zeros, %d poles", ErrNotFactorable, len(f.zeros), len(f.poles))
	}

	zq, zl, err := polyroot.Factor(f.zeros)
	if err != nil {
		return nil, fmt.Errorf("iir: pairing zeros: %w", err)
	}

	pq, pl, err := polyroot.Factor(f.poles)
	if err != nil {
		return nil, fmt.Errorf("iir: pairing poles: %w", err)
	}

	if len(zq) != len(pq) || len(zl) != len(pl) {
		return nil, fmt.Errorf("%w: unbalanced real roots", ErrNotFactorable)
	}

	coeffs := make([]biquad.Coefficients, 0, len(pq)+len(pl))
	for i := range pq {
		coeffs = append(coeffs, biquad.Coefficients{B0: 1, B1: zq[i].C1, B2: zq[i].C0, A1: pq[i].C1, A2: pq[i].C0})
	}
	for i := range pl {
		coeffs = append(coeffs, biquad.Coefficients{B0: 1, B1: -zl[i], A1: -pl[i]})
	}

	// leading numerator coefficient; the denominator is monic
	gain := real(f.num.Coefficients()[f.num.Degree()])

	return biquad.NewChain(coeffs, biquad.WithGain(gain)), nil
}
