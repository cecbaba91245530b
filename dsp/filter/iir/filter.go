package iir

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-iir/dsp/poly"
)

// ErrCoefficientLength is returned when len(B) != len(A)+1.
var ErrCoefficientLength = errors.New("iir: len(B) must equal len(A)+1")

// Filter is an immutable IIR filter with transfer function
//
//	H(z) = (B[0] + B[1]*z^-1 + ... + B[N]*z^-N) / (1 + A[0]*z^-1 + ... + A[N-1]*z^-N)
//
// The numerator and denominator are also kept as polynomials in z with
// positive powers, so their roots are the filter zeros and poles.
type Filter struct {
	a, b   []float64
	params Parameters

	num, den     poly.Polynomial
	zeros, poles []complex128
}

// New returns a filter for feedback coefficients a and feedforward
// coefficients b. The leading denominator coefficient 1 is implicit and
// not part of a. Poles and zeros are computed eagerly; a root-finding
// failure is returned as an error wrapping [poly.ErrRootsNotFound].
func New(a, b []float64, params Parameters) (*Filter, error) {
	if len(b) != len(a)+1 {
		return nil, fmt.Errorf("%w: len(A)=%d len(B)=%d", ErrCoefficientLength, len(a), len(b))
	}

	f := &Filter{
		a:      append([]float64(nil), a...),
		b:      append([]float64(nil), b...),
		params: params,
	}

	numCoeffs := make([]float64, len(b))
	for i, v := range b {
		numCoeffs[len(b)-1-i] = v
	}

	denCoeffs := make([]float64, len(a)+1)
	denCoeffs[len(a)] = 1
	for i, v := range a {
		denCoeffs[len(a)-1-i] = v
	}

	f.num = poly.NewReal(numCoeffs...)
	f.den = poly.NewReal(denCoeffs...)

	var err error
	if f.zeros, err = f.num.Roots(); err != nil {
		return nil, fmt.Errorf("iir: zeros: %w", err)
	}

	if f.poles, err = f.den.Roots(); err != nil {
		return nil, fmt.Errorf("iir: poles: %w", err)
	}

	return f, nil
}

// FromPolesZeros returns the filter whose numerator is the monic
// polynomial with the given zeros and whose denominator is the monic
// polynomial with the given poles. Complex roots should come in conjugate
// pairs; imaginary residue in the expanded coefficients is discarded.
// There must not be more zeros than poles.
func FromPolesZeros(zeros, poles []complex128, params Parameters) (*Filter, error) {
	if len(zeros) > len(poles) {
		return nil, fmt.Errorf("%w: %d zeros for %d poles", ErrCoefficientLength, len(zeros), len(poles))
	}

	num := poly.FromRoots(zeros...).Coefficients()
	den := poly.FromRoots(poles...).Coefficients()
	order := len(poles)

	// H(z) * z^-order written in negative powers of z.
	b := make([]float64, order+1)
	for m := range b {
		if k := order - m; k < len(num) {
			b[m] = real(num[k])
		}
	}

	a := make([]float64, order)
	for m := range a {
		a[m] = real(den[order-1-m])
	}

	return New(a, b, params)
}

// A returns a copy of the feedback coefficients.
func (f *Filter) A() []float64 { return append([]float64(nil), f.a...) }

// B returns a copy of the feedforward coefficients.
func (f *Filter) B() []float64 { return append([]float64(nil), f.b...) }

// Parameters returns the design parameters the filter was built from.
func (f *Filter) Parameters() Parameters { return f.params }

// Numerator returns the numerator polynomial in z (B reversed).
func (f *Filter) Numerator() poly.Polynomial { return f.num }

// Denominator returns the denominator polynomial in z ([1, A...] reversed).
func (f *Filter) Denominator() poly.Polynomial { return f.den }

// Zeros returns a copy of the numerator roots.
func (f *Filter) Zeros() []complex128 { return append([]complex128(nil), f.zeros...) }

// Poles returns a copy of the denominator roots.
func (f *Filter) Poles() []complex128 { return append([]complex128(nil), f.poles...) }

// Order returns the filter order, len(A).
func (f *Filter) Order() int { return len(f.a) }

// IsStable reports whether every pole lies strictly inside the unit circle.
func (f *Filter) IsStable() bool {
	for _, p := range f.poles {
		if !(cmplx.Abs(p) < 1) {
			return false
		}
	}
	return true
}

// String renders the difference equation, for example
//
//	y_n = 0.25x_n + 0.5x_n-1 + 0.25x_n-2 + 0.2y_n-1 - 0.04y_n-2
func (f *Filter) String() string {
	var sb strings.Builder

	sb.WriteString("y_n = ")

	for i, v := range f.b {
		switch {
		case v < 0 && i == 0:
			sb.WriteString("-")
		case v < 0:
			sb.WriteString(" - ")
		case i > 0:
			sb.WriteString(" + ")
		}
		sb.WriteString(formatTerm(math.Abs(v), "x", i))
	}

	for i, v := range f.a {
		// feedback enters the equation with the opposite sign
		if v > 0 {
			sb.WriteString(" - ")
		} else {
			sb.WriteString(" + ")
		}
		sb.WriteString(formatTerm(math.Abs(v), "y", i+1))
	}

	return sb.String()
}

func formatTerm(v float64, sym string, delay int) string {
	s := strconv.FormatFloat(v, 'g', 6, 64) + sym + "_n"
	if delay > 0 {
		s += "-" + strconv.Itoa(delay)
	}
	return s
}
