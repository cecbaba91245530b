package poly

import (
	"strconv"
	"strings"
)

// Polynomial is an immutable polynomial with complex coefficients in
// ascending power order.
type Polynomial struct {
	c []complex128
}

// New returns the polynomial c[0] + c[1]*x + ... with trailing zero
// coefficients removed.
func New(c ...complex128) Polynomial {
	n := len(c)
	for n > 0 && c[n-1] == 0 {
		n--
	}

	if n == 0 {
		return Polynomial{}
	}

	out := make([]complex128, n)
	copy(out, c[:n])

	return Polynomial{c: out}
}

// NewReal returns a polynomial from real coefficients in ascending order.
func NewReal(c ...float64) Polynomial {
	cc := make([]complex128, len(c))
	for i, v := range c {
		cc[i] = complex(v, 0)
	}

	return New(cc...)
}

// One returns the constant polynomial 1.
func One() Polynomial {
	return Polynomial{c: []complex128{1}}
}

// FromRoots returns the monic polynomial (x-r[0])(x-r[1])... . With no
// roots the result is the constant 1.
func FromRoots(roots ...complex128) Polynomial {
	p := One()
	for _, r := range roots {
		p = p.Mul(Polynomial{c: []complex128{-r, 1}})
	}

	return p
}

// Coefficients returns a copy of the coefficients in ascending order.
func (p Polynomial) Coefficients() []complex128 {
	out := make([]complex128, len(p.c))
	copy(out, p.c)

	return out
}

// Degree returns the polynomial degree, or -1 for the zero polynomial.
func (p Polynomial) Degree() int {
	return len(p.c) - 1
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool {
	return len(p.c) == 0
}

// IsReal reports whether every coefficient has a zero imaginary part.
func (p Polynomial) IsReal() bool {
	for _, v := range p.c {
		if imag(v) != 0 {
			return false
		}
	}

	return true
}

// Evaluate returns p(x) using Horner's method.
func (p Polynomial) Evaluate(x complex128) complex128 {
	var y complex128
	for i := len(p.c) - 1; i >= 0; i-- {
		y = y*x + p.c[i]
	}

	return y
}

// Add returns the sum p+q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	n := max(len(p.c), len(q.c))
	out := make([]complex128, n)

	copy(out, p.c)

	for i, v := range q.c {
		out[i] += v
	}

	return New(out...)
}

// Mul returns the product p*q.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if p.IsZero() || q.IsZero() {
		return Polynomial{}
	}

	out := make([]complex128, len(p.c)+len(q.c)-1)
	for i, a := range p.c {
		for j, b := range q.c {
			out[i+j] += a * b
		}
	}

	return New(out...)
}

// Reverse returns x^Degree * p(1/x), the polynomial with its coefficient
// order reversed.
func (p Polynomial) Reverse() Polynomial {
	out := make([]complex128, len(p.c))
	for i, v := range p.c {
		out[len(p.c)-1-i] = v
	}

	return New(out...)
}

// String formats p as "c0+c1x+c2x^2", omitting zero terms.
func (p Polynomial) String() string {
	var chunks []string

	for i, v := range p.c {
		if v == 0 {
			continue
		}

		term := formatCoefficient(v)

		switch {
		case i == 1:
			term += "x"
		case i > 1:
			term += "x^" + strconv.Itoa(i)
		}

		chunks = append(chunks, term)
	}

	if len(chunks) == 0 {
		return "0"
	}

	return strings.Join(chunks, "+")
}

func formatCoefficient(v complex128) string {
	re, im := real(v), imag(v)

	switch {
	case im == 0:
		return strconv.FormatFloat(re, 'g', -1, 64)
	case re == 0:
		return strconv.FormatFloat(im, 'g', -1, 64) + "j"
	}

	s := strconv.FormatComplex(v, 'g', -1, 128)
	return strings.Replace(s, "i", "j", 1)
}
