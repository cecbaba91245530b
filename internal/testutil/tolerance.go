package testutil

import (
	"math"
	"math/cmplx"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Tolerances used across the filter tests.
const (
	CoefficientTolerance = 1e-9
	RootTolerance        = 1e-6
	GainTolerance        = 1e-6
	DBTolerance          = 0.01
)

// AssertSliceInDelta checks that got and want have the same length and
// agree element-wise within tolerance.
func AssertSliceInDelta(t *testing.T, want, got []float64, tolerance float64) bool {
	t.Helper()
	if !assert.Len(t, got, len(want)) {
		return false
	}
	for i := range want {
		if !assert.InDelta(t, want[i], got[i], tolerance, "index %d", i) {
			return false
		}
	}
	return true
}

// AssertComplexInDelta checks |want-got| <= tolerance element-wise.
func AssertComplexInDelta(t *testing.T, want, got []complex128, tolerance float64) bool {
	t.Helper()
	if !assert.Len(t, got, len(want)) {
		return false
	}
	for i := range want {
		if d := cmplx.Abs(want[i] - got[i]); d > tolerance {
			return assert.Fail(t, "complex values differ",
				"index %d: want %v, got %v (|diff| %g > %g)", i, want[i], got[i], d, tolerance)
		}
	}
	return true
}

// AssertRootsMatch compares two root sets irrespective of order.
func AssertRootsMatch(t *testing.T, want, got []complex128, tolerance float64) bool {
	t.Helper()
	return AssertComplexInDelta(t, SortRoots(want), SortRoots(got), tolerance)
}

// SortRoots returns a copy of r ordered by real part, then imaginary part.
// Real parts closer than 1e-6 are treated as equal.
func SortRoots(r []complex128) []complex128 {
	out := append([]complex128(nil), r...)
	sort.Slice(out, func(i, j int) bool {
		if math.Abs(real(out[i])-real(out[j])) > 1e-6 {
			return real(out[i]) < real(out[j])
		}
		return imag(out[i]) < imag(out[j])
	})
	return out
}

// AssertFinite checks that no element is NaN or Inf.
func AssertFinite(t *testing.T, s []float64) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return assert.Fail(t, "non-finite value", "s[%d] = %v", i, v)
		}
	}
	return true
}
