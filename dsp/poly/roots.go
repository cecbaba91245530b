package poly

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-iir/internal/polyroot"
)

// ErrRootsNotFound is returned when the eigenvalue decomposition of the
// companion matrix (or the iterative fallback) does not converge.
var ErrRootsNotFound = errors.New("poly: roots not found")

// Roots returns all roots of p. Constant and zero polynomials have no
// roots; linear polynomials are solved directly.
func (p Polynomial) Roots() ([]complex128, error) {
	switch p.Degree() {
	case -1, 0:
		return []complex128{}, nil
	case 1:
		return unsignedZeros([]complex128{-p.c[0] / p.c[1]}), nil
	}

	if !p.IsReal() {
		return p.rootsIterative()
	}

	var eig mat.Eigen
	if ok := eig.Factorize(p.CompanionMatrix(), mat.EigenNone); !ok {
		return nil, fmt.Errorf("%w: degree %d", ErrRootsNotFound, p.Degree())
	}

	return unsignedZeros(eig.Values(nil)), nil
}

// unsignedZeros replaces negative-zero imaginary parts so real roots print
// as (x+0i).
func unsignedZeros(r []complex128) []complex128 {
	for i, v := range r {
		if imag(v) == 0 {
			r[i] = complex(real(v), 0)
		}
	}
	return r
}

// CompanionMatrix returns the n-by-n companion matrix of a real polynomial
// of degree n >= 1. The first row holds the negated, reversed coefficients
// normalized by the leading coefficient; an identity block sits below it.
// Imaginary parts are ignored. It returns nil for degree < 1.
func (p Polynomial) CompanionMatrix() *mat.Dense {
	n := p.Degree()
	if n < 1 {
		return nil
	}

	lead := real(p.c[n])
	m := mat.NewDense(n, n, nil)

	for j := range n {
		m.Set(0, j, -real(p.c[n-1-j])/lead)
	}

	for i := 1; i < n; i++ {
		m.Set(i, i-1, 1)
	}

	return m
}

func (p Polynomial) rootsIterative() ([]complex128, error) {
	roots, err := polyroot.Simultaneous(p.c)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRootsNotFound, err)
	}

	return roots, nil
}
