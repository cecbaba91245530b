package design

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-iir/dsp/filter/iir"
)

// chebyshevShape returns kappa = sinh(v0) and lambda = cosh(v0) with
// v0 = asinh(x)/order, where x = 1/eps for Type I and x = eps for Type II
// and eps^2 = 10^(ripple/10) - 1.
func chebyshevShape(ripple float64, order int, typeII bool) (kappa, lambda float64) {
	eps := math.Sqrt(math.Pow(10, ripple/10) - 1)

	x := 1 / eps
	if typeII {
		x = eps
	}

	v0 := math.Asinh(x) / float64(order)

	return math.Sinh(v0), math.Cosh(v0)
}

// chebyshevQuartic returns the ascending coefficients of the fourth-order
// Type I denominator, the product of its two pole-pair quadratics.
func chebyshevQuartic(k, l float64) []float64 {
	s1 := -math.Cos(5 * math.Pi / 8)
	s2 := -math.Cos(7 * math.Pi / 8)
	q1 := k*k*s1*s1 + l*l*s2*s2
	q2 := k*k*s2*s2 + l*l*s1*s1
	r1 := 2 * k * s1
	r2 := 2 * k * s2

	return []float64{q1 * q2, r1*q2 + r2*q1, q1 + q2 + r1*r2, r1 + r2, 1}
}

// chebyshev1 is the all-pole Type I prototype scaled to unity gain at DC.
func chebyshev1(p iir.Parameters, order int) ([]float64, []float64, error) {
	ripple, err := requireRipple(p)
	if err != nil {
		return nil, nil, err
	}

	k, l := chebyshevShape(ripple, order, false)
	k2, l2 := k*k, l*l

	var den []float64

	switch order {
	case 1:
		den = []float64{k, 1}
	case 2:
		den = []float64{k2 + l2, 2 * math.Sqrt2 * k, 2}
	case 3:
		den = []float64{k * (k2 + 3*l2), 5*k2 + 3*l2, 8 * k, 4}
	case 4:
		den = chebyshevQuartic(k, l)
	default:
		return nil, nil, fmt.Errorf("%w: chebyshev I prototype order %d", ErrUnsupportedOrder, order)
	}

	return []float64{den[0]}, den, nil
}

// chebyshev2 is the inverse Chebyshev prototype with stopband zeros and
// unity gain at DC.
func chebyshev2(p iir.Parameters, order int) ([]float64, []float64, error) {
	ripple, err := requireRipple(p)
	if err != nil {
		return nil, nil, err
	}

	k, l := chebyshevShape(ripple, order, true)
	k2, l2 := k*k, l*l

	switch order {
	case 1:
		return []float64{1}, []float64{1, k}, nil
	case 2:
		return []float64{2, 0, 1}, []float64{2, 2 * math.Sqrt2 * k, k2 + l2}, nil
	case 3:
		return []float64{4, 0, 3}, []float64{4, 8 * k, 5*k2 + 3*l2, k * (k2 + 3*l2)}, nil
	case 4:
		q := chebyshevQuartic(k, l)
		den := make([]float64, len(q))
		for i, v := range q {
			den[len(q)-1-i] = 8 * v
		}

		return []float64{8, 0, 8, 0, 1}, den, nil
	default:
		return nil, nil, fmt.Errorf("%w: chebyshev II prototype order %d", ErrUnsupportedOrder, order)
	}
}
