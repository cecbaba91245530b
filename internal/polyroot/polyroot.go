// Package polyroot holds the numeric kernels behind dsp/poly and the
// section factoring of dsp/filter/iir: Horner evaluation, simultaneous
// (Weierstrass) root iteration for complex coefficients and grouping of
// roots into real quadratic factors.
//
// Coefficient slices are in ascending power order, c[0] + c[1]x + ...
package polyroot

import (
	"errors"
	"math"
	"math/cmplx"
	"slices"
)

var (
	// ErrDegenerate is returned for polynomials without a non-zero leading
	// coefficient of degree >= 1.
	ErrDegenerate = errors.New("polyroot: degenerate polynomial")
	// ErrNoConvergence is returned when the iteration leaves residuals
	// above the acceptance threshold.
	ErrNoConvergence = errors.New("polyroot: iteration did not converge")
	// ErrUnpaired is returned by Factor when a complex root has no
	// conjugate partner.
	ErrUnpaired = errors.New("polyroot: complex root without conjugate")
)

// Tol is the relative tolerance used to classify roots as real and to
// match conjugates.
const Tol = 1e-7

const (
	maxSweeps  = 1000
	stepTol    = 1e-14
	residualOK = 1e-8
)

// Horner evaluates c at x.
func Horner(c []complex128, x complex128) complex128 {
	var v complex128
	for i := len(c) - 1; i >= 0; i-- {
		v = v*x + c[i]
	}
	return v
}

// Simultaneous returns all roots of c using the Weierstrass (Durand-Kerner)
// iteration. Starting points lie on a circle of half the Cauchy bound,
// rotated off the real axis.
func Simultaneous(c []complex128) ([]complex128, error) {
	n := len(c) - 1
	if n < 1 || c[n] == 0 {
		return nil, ErrDegenerate
	}

	monic := make([]complex128, n+1)
	bound := 0.0
	for i, v := range c {
		monic[i] = v / c[n]
		if i < n {
			bound = math.Max(bound, cmplx.Abs(monic[i]))
		}
	}
	bound = 0.5 * (1 + bound)

	z := make([]complex128, n)
	for k := range z {
		z[k] = cmplx.Rect(bound, 2*math.Pi*float64(k)/float64(n)+math.Pi/(2*float64(n)))
	}

	for range maxSweeps {
		if sweep(monic, z) {
			return z, nil
		}
	}

	for _, r := range z {
		if cmplx.Abs(Horner(monic, r)) > residualOK*math.Max(1, math.Pow(cmplx.Abs(r), float64(n))) {
			return nil, ErrNoConvergence
		}
	}
	return z, nil
}

// sweep performs one in-place Weierstrass update and reports convergence.
func sweep(monic, z []complex128) bool {
	done := true
	for i := range z {
		w := complex(1, 0)
		for j := range z {
			if j != i {
				w *= z[i] - z[j]
			}
		}
		if w == 0 {
			z[i] += complex(1e-10, 1e-10)
			done = false
			continue
		}
		step := Horner(monic, z[i]) / w
		z[i] -= step
		if cmplx.Abs(step) > stepTol*math.Max(1, cmplx.Abs(z[i])) {
			done = false
		}
	}
	return done
}

// Quadratic is the real monic factor x^2 + C1*x + C0.
type Quadratic struct {
	C1, C0 float64
}

// Roots returns the two roots of q.
func (q Quadratic) Roots() [2]complex128 {
	d := cmplx.Sqrt(complex(q.C1*q.C1-4*q.C0, 0))
	return [2]complex128{(complex(-q.C1, 0) + d) / 2, (complex(-q.C1, 0) - d) / 2}
}

// IsReal reports whether the imaginary part of r is negligible relative to
// its magnitude.
func IsReal(r complex128) bool {
	return math.Abs(imag(r)) <= Tol*math.Max(1, math.Abs(real(r)))
}

// Factor groups roots into real quadratic factors. Each complex root in the
// upper half plane is matched with the nearest lower half plane root, which
// must be its conjugate within Tol. Real roots are sorted ascending and
// paired neighbour by neighbour; an odd one out (the largest) is returned
// in linear. Complex factors come first.
func Factor(roots []complex128) (quads []Quadratic, linear []float64, err error) {
	var (
		reals        []float64
		upper, lower []complex128
	)
	for _, r := range roots {
		switch {
		case IsReal(r):
			reals = append(reals, real(r))
		case imag(r) > 0:
			upper = append(upper, r)
		default:
			lower = append(lower, r)
		}
	}
	if len(upper) != len(lower) {
		return nil, nil, ErrUnpaired
	}

	for _, r := range upper {
		k := nearest(lower, cmplx.Conj(r))
		if k < 0 || cmplx.Abs(lower[k]-cmplx.Conj(r)) > Tol*math.Max(1, cmplx.Abs(r)) {
			return nil, nil, ErrUnpaired
		}
		m := (r + cmplx.Conj(lower[k])) / 2
		lower = slices.Delete(lower, k, k+1)
		quads = append(quads, Quadratic{C1: -2 * real(m), C0: real(m)*real(m) + imag(m)*imag(m)})
	}

	slices.Sort(reals)
	for i := 0; i+1 < len(reals); i += 2 {
		a, b := reals[i], reals[i+1]
		quads = append(quads, Quadratic{C1: -(a + b), C0: a * b})
	}
	if len(reals)%2 == 1 {
		linear = []float64{reals[len(reals)-1]}
	}
	return quads, linear, nil
}

func nearest(set []complex128, target complex128) int {
	best, dist := -1, math.Inf(1)
	for i, v := range set {
		if d := cmplx.Abs(v - target); d < dist {
			best, dist = i, d
		}
	}
	return best
}
